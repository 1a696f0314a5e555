package controllers

import (
	"strings"

	"github.com/Yeshwanth-lb/hotel-bombaat-project/utils"

	"github.com/gin-gonic/gin"
)

// chatRule pairs trigger keywords with a canned reply. Rules are evaluated
// in order; the first match wins.
type chatRule struct {
	keywords []string
	reply    string
}

var chatRules = []chatRule{
	{[]string{"hello", "hi", "hey", "namaskara"},
		"Namaskara! Welcome to Hotel Bombaat. How can I assist you today?"},
	{[]string{"who are you", "your name"},
		"I am Robot Bombaat, your virtual assistant for the hotel."},
	{[]string{"room", "price", "cost", "rate", "tariff"},
		"We have five room types, from Standard (1500 INR) to Presidential Suite (15000 INR). Please see the room catalog for details."},
	{[]string{"book", "reservation"},
		"You can book a room from the room catalog by selecting your dates."},
	{[]string{"food", "hungry", "restaurant", "eat", "dinner", "lunch"},
		"We offer a multi-cuisine menu. You can order from the food section in your dashboard."},
	{[]string{"breakfast", "tiffin"},
		"Our complimentary breakfast buffet is served from 7:00 AM to 10:30 AM."},
	{[]string{"pool", "swim"},
		"Yes, we have an infinity pool on the terrace, open from 6 AM to 10 PM."},
	{[]string{"gym", "fitness", "workout"},
		"Our fitness center is open 24/7 and is fully equipped for all your workout needs."},
	{[]string{"wifi", "internet"},
		"We offer complimentary high-speed Wi-Fi for all guests."},
	{[]string{"parking", "car"},
		"Yes, we offer complimentary and secure basement parking for all our guests."},
	{[]string{"check-in", "check in"},
		"Our standard check-in time is 12:00 PM."},
	{[]string{"check-out", "check out"},
		"Our standard check-out time is 11:00 AM."},
	{[]string{"cancel", "refund"},
		"You can cancel active bookings from your bookings page. Please check our cancellation policy for refund details."},
	{[]string{"location", "address", "where"},
		"We are located in Indiranagar, Bengaluru, known for its vibrant restaurants and shopping."},
	{[]string{"airport"},
		"Kempegowda International Airport (BLR) is approximately 40km away, 60-90 minutes by taxi depending on traffic."},
	{[]string{"offer", "discount", "promo"},
		"Yes! Use code 'SAKKATH' for 10% off or 'BOMBAAT' for 20% off on the billing page."},
	{[]string{"thank", "dhanyavadagalu"},
		"You're welcome! Is there anything else I can help you with?"},
}

const chatDefaultReply = "I'm sorry, I don't understand that. Please ask about rooms, food, check-in times, or our location."

// ChatReply resolves the canned reply for a message.
func ChatReply(message string) string {
	msg := strings.ToLower(message)
	for _, rule := range chatRules {
		for _, kw := range rule.keywords {
			if strings.Contains(msg, kw) {
				return rule.reply
			}
		}
	}
	return chatDefaultReply
}

// Chatbot answers a guest message with a keyword-matched canned response
func Chatbot(c *gin.Context) {
	var req struct {
		Message string `json:"message"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	utils.Success(c, "Chatbot reply", gin.H{"response": ChatReply(req.Message)})
}
