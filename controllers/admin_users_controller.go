package controllers

import (
	"github.com/Yeshwanth-lb/hotel-bombaat-project/config"
	"github.com/Yeshwanth-lb/hotel-bombaat-project/models"
	"github.com/Yeshwanth-lb/hotel-bombaat-project/utils"

	"github.com/gin-gonic/gin"
)

// ListUsers returns all users, paginated
func ListUsers(c *gin.Context) {
	utils.LogInfo("ListUsers called")

	pagination := utils.NewPagination(c)

	var total int64
	if err := config.DB.Model(&models.User{}).Count(&total).Error; err != nil {
		utils.LogError("Failed to count users: %v", err)
		utils.InternalServerError(c, "Failed to fetch users", nil)
		return
	}
	pagination.SetTotal(total)

	var users []models.User
	if err := config.DB.Order("created_at desc").
		Offset(pagination.Offset).Limit(pagination.Limit).
		Find(&users).Error; err != nil {
		utils.LogError("Failed to fetch users: %v", err)
		utils.InternalServerError(c, "Failed to fetch users", nil)
		return
	}

	utils.SendPaginatedResponse(c, "Users retrieved successfully", users, pagination)
}

// DeleteUser removes a user account
func DeleteUser(c *gin.Context) {
	utils.LogInfo("DeleteUser called")

	id := c.Param("id")
	res := config.DB.Delete(&models.User{}, "id = ?", id)
	if res.Error != nil {
		utils.LogError("Failed to delete user %s: %v", id, res.Error)
		utils.InternalServerError(c, "Failed to delete user", nil)
		return
	}
	if res.RowsAffected == 0 {
		utils.NotFound(c, utils.ErrRecordNotFound)
		return
	}

	utils.LogInfo("Deleted user %s", id)
	utils.Success(c, "User deleted successfully.", nil)
}

// BlockUser toggles the blocked flag on a user account
func BlockUser(c *gin.Context) {
	utils.LogInfo("BlockUser called")

	id := c.Param("id")

	var user models.User
	if err := config.DB.First(&user, "id = ?", id).Error; err != nil {
		utils.NotFound(c, utils.ErrRecordNotFound)
		return
	}

	if err := config.DB.Model(&user).Update("is_blocked", !user.IsBlocked).Error; err != nil {
		utils.LogError("Failed to toggle block for user %s: %v", id, err)
		utils.InternalServerError(c, "Failed to update user", nil)
		return
	}

	msg := "User blocked successfully."
	if user.IsBlocked {
		msg = "User unblocked successfully."
	}
	utils.Success(c, msg, gin.H{"is_blocked": !user.IsBlocked})
}
