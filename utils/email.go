package utils

import (
	"fmt"
	"os"
	"strconv"

	"github.com/Yeshwanth-lb/hotel-bombaat-project/models"

	"gopkg.in/gomail.v2"
)

// EmailConfig holds SMTP configuration
type EmailConfig struct {
	Host     string
	Port     int
	Username string
	Password string
	From     string
}

func emailConfigFromEnv() EmailConfig {
	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil || port == 0 {
		port = 587
	}
	return EmailConfig{
		Host:     os.Getenv("SMTP_HOST"),
		Port:     port,
		Username: os.Getenv("SMTP_USERNAME"),
		Password: os.Getenv("SMTP_PASSWORD"),
		From:     os.Getenv("SMTP_FROM"),
	}
}

func sendHTMLEmail(to, subject, body string) error {
	config := emailConfigFromEnv()

	m := gomail.NewMessage()
	m.SetHeader("From", config.From)
	m.SetHeader("To", to)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", body)

	d := gomail.NewDialer(config.Host, config.Port, config.Username, config.Password)
	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("failed to send email: %v", err)
	}
	return nil
}

// SendBookingConfirmation emails a guest after a room is booked
func SendBookingConfirmation(username string, booking *models.Booking) error {
	body := fmt.Sprintf(`
		<h2>Booking Confirmed - %s</h2>
		<p>Dear %s,</p>
		<p>Your %s (room %d) is booked from %s to %s for %d guest(s).</p>
		<p>Total: %.2f INR. Payment is due on the billing page.</p>
		<p>Booking reference: %s</p>
	`, AppName, username, booking.RoomType, booking.RoomNumber,
		booking.CheckIn, booking.CheckOut, booking.Guests, booking.TotalCost, booking.BookingID)

	return sendHTMLEmail(booking.UserEmail, "Booking Confirmation - "+AppName, body)
}

// SendFoodOrderConfirmation emails a guest after a food order is placed
func SendFoodOrderConfirmation(username string, order *models.FoodOrder) error {
	items := ""
	for _, item := range order.Items {
		items += fmt.Sprintf("<li>%dx %s - %.2f INR</li>", item.Quantity, item.Name, item.Price)
	}
	body := fmt.Sprintf(`
		<h2>Food Order Confirmed - %s</h2>
		<p>Dear %s,</p>
		<p>Your order will be delivered to room %d.</p>
		<ul>%s</ul>
		<p>Total: %.2f INR. Payment is due on the billing page.</p>
	`, AppName, username, order.RoomNumber, items, order.TotalCost)

	return sendHTMLEmail(order.UserEmail, "Food Order Confirmation - "+AppName, body)
}

// SendPasswordResetEmail sends a password reset link
func SendPasswordResetEmail(to, resetToken string) error {
	body := fmt.Sprintf(`
		<h2>Password Reset Request</h2>
		<p>You have requested to reset your %s password. Click the link below to proceed:</p>
		<p><a href="%s/reset-password?token=%s">Reset Password</a></p>
		<p>This link will expire in 1 hour. If you didn't request this reset, please ignore this email.</p>
	`, AppName, os.Getenv("FRONTEND_URL"), resetToken)

	return sendHTMLEmail(to, "Password Reset Request for "+AppName, body)
}
