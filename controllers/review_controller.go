package controllers

import (
	"strconv"

	"github.com/Yeshwanth-lb/hotel-bombaat-project/config"
	"github.com/Yeshwanth-lb/hotel-bombaat-project/models"
	"github.com/Yeshwanth-lb/hotel-bombaat-project/utils"

	"github.com/gin-gonic/gin"
)

const reviewUploadDir = "static/uploads"

// ListReviews returns all reviews, newest first. Public.
func ListReviews(c *gin.Context) {
	var reviews []models.Review
	if err := config.DB.Order("created_at desc").Find(&reviews).Error; err != nil {
		utils.LogError("Failed to fetch reviews: %v", err)
		utils.InternalServerError(c, "Failed to fetch reviews", nil)
		return
	}
	utils.Success(c, "Reviews retrieved successfully", gin.H{"reviews": reviews})
}

// SubmitReview stores a review with an optional image. Accepts multipart
// form data.
func SubmitReview(c *gin.Context) {
	utils.LogInfo("SubmitReview called")

	user := c.MustGet("user").(models.User)

	rating, err := strconv.Atoi(c.PostForm("rating"))
	if err != nil || rating < utils.MinRating || rating > utils.MaxRating {
		utils.BadRequest(c, "Rating must be between 1 and 5", nil)
		return
	}
	reviewType := c.PostForm("review_type")
	comment := utils.SanitizeString(c.PostForm("comment"))

	var imageFile string
	if file, err := c.FormFile("review_image"); err == nil && file != nil {
		imageFile, err = utils.SaveUploadedFile(file, reviewUploadDir)
		if err != nil {
			utils.LogError("Failed to save review image for %s: %v", user.Email, err)
			utils.BadRequest(c, err.Error(), nil)
			return
		}
	}

	review := models.Review{
		UserEmail:  user.Email,
		Username:   user.Username,
		Rating:     rating,
		ReviewType: reviewType,
		Comment:    comment,
		ImageFile:  imageFile,
	}
	if err := config.DB.Create(&review).Error; err != nil {
		utils.LogError("Failed to save review for %s: %v", user.Email, err)
		utils.InternalServerError(c, "Failed to save review", nil)
		return
	}

	utils.LogInfo("Review saved for %s, rating %d", user.Email, rating)
	utils.Created(c, "Thank you for your review!", gin.H{"review": review})
}
