package controllers

import (
	"time"

	"github.com/Yeshwanth-lb/hotel-bombaat-project/config"
	"github.com/Yeshwanth-lb/hotel-bombaat-project/models"
	"github.com/Yeshwanth-lb/hotel-bombaat-project/utils"

	"github.com/gin-gonic/gin"
)

// ContactRequest represents a contact form submission
type ContactRequest struct {
	Name    string `json:"name" binding:"required"`
	Email   string `json:"email" binding:"required"`
	Subject string `json:"subject" binding:"required"`
	Message string `json:"message" binding:"required"`
}

// SubmitContact stores a contact form message. Public.
func SubmitContact(c *gin.Context) {
	var req ContactRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}
	if !utils.ValidateEmail(req.Email) {
		utils.BadRequest(c, utils.ErrInvalidEmail, nil)
		return
	}

	contact := models.Contact{
		Name:        utils.SanitizeString(req.Name),
		Email:       req.Email,
		Subject:     utils.SanitizeString(req.Subject),
		Message:     utils.SanitizeString(req.Message),
		SubmittedAt: time.Now().UTC(),
	}
	if err := config.DB.Create(&contact).Error; err != nil {
		utils.LogError("Failed to save contact message from %s: %v", req.Email, err)
		utils.InternalServerError(c, "Failed to send message", nil)
		return
	}

	utils.Created(c, "Your message has been sent. We will get back to you soon.", nil)
}
