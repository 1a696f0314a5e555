package controllers

import (
	"errors"

	"github.com/Yeshwanth-lb/hotel-bombaat-project/config"
	"github.com/Yeshwanth-lb/hotel-bombaat-project/middleware"
	"github.com/Yeshwanth-lb/hotel-bombaat-project/models"
	"github.com/Yeshwanth-lb/hotel-bombaat-project/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// RegisterRequest represents the registration request body
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
	Phone    string `json:"phone"`
}

// Register creates a new guest account
func Register(c *gin.Context) {
	utils.LogInfo("Register called")

	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid registration request: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	var validationErrors utils.FieldValidationErrors
	if !utils.ValidateUsername(req.Username) {
		validationErrors = append(validationErrors, utils.FieldValidationError{Field: "username", Message: "Username must be 3-50 characters"})
	}
	if !utils.ValidateEmail(req.Email) {
		validationErrors = append(validationErrors, utils.FieldValidationError{Field: "email", Message: utils.ErrInvalidEmail})
	}
	if !utils.ValidatePassword(req.Password) {
		validationErrors = append(validationErrors, utils.FieldValidationError{Field: "password", Message: utils.ErrInvalidPassword})
	}
	if req.Phone != "" && !utils.ValidatePhone(req.Phone) {
		validationErrors = append(validationErrors, utils.FieldValidationError{Field: "phone", Message: utils.ErrInvalidPhone})
	}
	if len(validationErrors) > 0 {
		utils.LogError("Registration validation failed for %s: %v", req.Email, validationErrors)
		utils.ValidationError(c, "Validation failed", validationErrors)
		return
	}

	var existing models.User
	if err := config.DB.Where("email = ?", req.Email).First(&existing).Error; err == nil {
		utils.LogError("Registration attempted with existing email: %s", req.Email)
		utils.Conflict(c, "Email already registered. Please login.", nil)
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		utils.LogError("Failed to hash password for %s: %v", req.Email, err)
		utils.InternalServerError(c, "Failed to create account", nil)
		return
	}

	user := models.User{
		Username: utils.SanitizeString(req.Username),
		Email:    req.Email,
		Password: hashed,
		Phone:    req.Phone,
	}
	if err := config.DB.Create(&user).Error; err != nil {
		utils.LogError("Failed to create user %s: %v", req.Email, err)
		utils.InternalServerError(c, "Failed to create account", nil)
		return
	}

	utils.LogInfo("Registered new user: %s", user.Email)
	utils.Created(c, "Registration successful! Please login.", gin.H{
		"username": user.Username,
		"email":    user.Email,
	})
}

// LoginRequest represents the login request body
type LoginRequest struct {
	Email    string `json:"email" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login authenticates a guest and stores the identity in the session
func Login(c *gin.Context) {
	utils.LogInfo("Login called")

	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.LogError("Invalid login request: %v", err)
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		utils.LogError("Login failed, user not found: %s", req.Email)
		utils.Unauthorized(c, utils.ErrInvalidCredentials)
		return
	}

	if !utils.CheckPassword(req.Password, user.Password) {
		utils.LogError("Login failed, wrong password for: %s", req.Email)
		utils.Unauthorized(c, utils.ErrInvalidCredentials)
		return
	}

	if user.IsBlocked {
		utils.LogError("Blocked user attempted login: %s", req.Email)
		utils.Forbidden(c, "Your account has been blocked")
		return
	}

	session := sessions.Default(c)
	session.Set(middleware.SessionUserKey, user.Email)
	if err := session.Save(); err != nil {
		utils.LogError("Failed to save session for %s: %v", req.Email, err)
		utils.InternalServerError(c, "Failed to create session", nil)
		return
	}

	utils.LogInfo("User logged in: %s", user.Email)
	utils.Success(c, "Login successful! Welcome back.", gin.H{
		"username": user.Username,
		"email":    user.Email,
		"is_admin": user.IsAdmin,
	})
}

// Logout clears the session
func Logout(c *gin.Context) {
	session := sessions.Default(c)
	session.Clear()
	if err := session.Save(); err != nil {
		utils.LogError("Failed to clear session: %v", err)
		utils.InternalServerError(c, "Failed to logout", nil)
		return
	}
	utils.Success(c, "You have been logged out.", nil)
}

// ForgotPassword emails a reset link for an existing account
func ForgotPassword(c *gin.Context) {
	utils.LogInfo("ForgotPassword called")

	var req struct {
		Email string `json:"email" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	var user models.User
	if err := config.DB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.LogError("Password reset requested for unknown email: %s", req.Email)
			utils.NotFound(c, "Email not found. Please register.")
			return
		}
		utils.InternalServerError(c, "Failed to look up account", nil)
		return
	}

	token, err := utils.GenerateResetToken(user.Email)
	if err != nil {
		utils.LogError("Failed to generate reset token for %s: %v", user.Email, err)
		utils.InternalServerError(c, "Failed to generate reset token", nil)
		return
	}

	if err := utils.SendPasswordResetEmail(user.Email, token); err != nil {
		utils.LogError("Failed to send reset email to %s: %v", user.Email, err)
		utils.InternalServerError(c, "Failed to send email", err.Error())
		return
	}

	utils.LogInfo("Password reset link sent to: %s", user.Email)
	utils.Success(c, "Password reset link sent! Check your email.", nil)
}

// ResetPassword sets a new password from a valid reset token
func ResetPassword(c *gin.Context) {
	utils.LogInfo("ResetPassword called")

	var req struct {
		Token           string `json:"token" binding:"required"`
		Password        string `json:"password" binding:"required"`
		ConfirmPassword string `json:"confirm_password" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	email, err := utils.ValidateResetToken(req.Token)
	if err != nil {
		utils.LogError("Invalid or expired reset token: %v", err)
		utils.BadRequest(c, "The password reset link is invalid or has expired.", nil)
		return
	}

	if req.Password != req.ConfirmPassword {
		utils.BadRequest(c, "Passwords do not match.", nil)
		return
	}
	if !utils.ValidatePassword(req.Password) {
		utils.ValidationError(c, utils.ErrInvalidPassword, nil)
		return
	}

	hashed, err := utils.HashPassword(req.Password)
	if err != nil {
		utils.LogError("Failed to hash new password for %s: %v", email, err)
		utils.InternalServerError(c, "Failed to reset password", nil)
		return
	}

	if err := config.DB.Model(&models.User{}).Where("email = ?", email).
		Update("password", hashed).Error; err != nil {
		utils.LogError("Failed to update password for %s: %v", email, err)
		utils.InternalServerError(c, "Failed to reset password", nil)
		return
	}

	utils.LogInfo("Password reset completed for: %s", email)
	utils.Success(c, "Your password has been reset! You can now login.", nil)
}
