package controllers

import (
	"fmt"
	"time"

	"github.com/Yeshwanth-lb/hotel-bombaat-project/config"
	"github.com/Yeshwanth-lb/hotel-bombaat-project/models"
	"github.com/Yeshwanth-lb/hotel-bombaat-project/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// MenuItem describes one dish on the menu
type MenuItem struct {
	Name        string  `json:"name"`
	Price       float64 `json:"price"`
	Description string  `json:"description"`
}

// Menu is the static restaurant menu grouped by cuisine.
var Menu = map[string][]MenuItem{
	"North Indian": {
		{Name: "Butter Chicken", Price: 450, Description: "Creamy chicken curry."},
		{Name: "Dal Makhani", Price: 300, Description: "Black lentils and kidney beans."},
		{Name: "Paneer Tikka", Price: 350, Description: "Marinated cheese cubes."},
	},
	"South Indian": {
		{Name: "Masala Dosa", Price: 150, Description: "Crispy crepe with potato filling."},
		{Name: "Idli Sambar", Price: 100, Description: "Steamed rice cakes."},
	},
	"Chinese": {
		{Name: "Hakka Noodles", Price: 250, Description: "Stir-fried noodles."},
		{Name: "Manchurian", Price: 280, Description: "Fried vegetable balls."},
	},
	"Continental": {
		{Name: "Veg Au Gratin", Price: 400, Description: "Baked vegetables with cheese."},
		{Name: "Grilled Chicken", Price: 500, Description: "Served with mashed potatoes."},
	},
	"Desserts": {
		{Name: "Gulab Jamun", Price: 120, Description: "Sweet milk solids balls."},
		{Name: "Chocolate Brownie", Price: 200, Description: "With ice cream."},
	},
	"Beverages": {
		{Name: "Masala Chai", Price: 50, Description: "Spiced Indian tea."},
		{Name: "Fresh Lime Soda", Price: 80, Description: "Sweet or salted."},
	},
}

func findMenuItem(name string) (MenuItem, bool) {
	for _, items := range Menu {
		for _, item := range items {
			if item.Name == name {
				return item, true
			}
		}
	}
	return MenuItem{}, false
}

func cartTotal(items []models.CartItem) float64 {
	var total float64
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return total
}

// GetMenu returns the menu and the user's current cart
func GetMenu(c *gin.Context) {
	user := c.MustGet("user").(models.User)

	var cart []models.CartItem
	if err := config.DB.Where("user_email = ?", user.Email).Find(&cart).Error; err != nil {
		utils.LogError("Failed to fetch cart for %s: %v", user.Email, err)
		utils.InternalServerError(c, "Failed to fetch cart", nil)
		return
	}

	utils.Success(c, "Menu retrieved successfully", gin.H{
		"menu":       Menu,
		"cart":       cart,
		"cart_total": fmt.Sprintf("%.2f", cartTotal(cart)),
	})
}

// AddToCart adds one unit of a menu item to the user's cart
func AddToCart(c *gin.Context) {
	utils.LogInfo("AddToCart called")

	user := c.MustGet("user").(models.User)

	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request", err.Error())
		return
	}

	// Price always comes from the menu, never from the client.
	item, ok := findMenuItem(req.Name)
	if !ok {
		utils.LogError("Unknown menu item %q requested by %s", req.Name, user.Email)
		utils.NotFound(c, "Menu item not found")
		return
	}

	var cartItem models.CartItem
	err := config.DB.Where("user_email = ? AND name = ?", user.Email, item.Name).First(&cartItem).Error
	switch {
	case err == nil:
		if err := config.DB.Model(&cartItem).
			UpdateColumn("quantity", gorm.Expr("quantity + ?", 1)).Error; err != nil {
			utils.LogError("Failed to bump cart quantity for %s: %v", user.Email, err)
			utils.InternalServerError(c, "Failed to update cart", nil)
			return
		}
	case err == gorm.ErrRecordNotFound:
		cartItem = models.CartItem{
			UserEmail: user.Email,
			Name:      item.Name,
			Price:     item.Price,
			Quantity:  1,
		}
		if err := config.DB.Create(&cartItem).Error; err != nil {
			utils.LogError("Failed to add cart item for %s: %v", user.Email, err)
			utils.InternalServerError(c, "Failed to update cart", nil)
			return
		}
	default:
		utils.LogError("Failed to read cart for %s: %v", user.Email, err)
		utils.InternalServerError(c, "Failed to update cart", nil)
		return
	}

	utils.LogInfo("Added %s to cart for %s", item.Name, user.Email)
	utils.Success(c, fmt.Sprintf("Added %s to cart.", item.Name), nil)
}

// RemoveFromCart removes one unit of a menu item from the user's cart
func RemoveFromCart(c *gin.Context) {
	utils.LogInfo("RemoveFromCart called")

	user := c.MustGet("user").(models.User)
	name := c.Param("name")

	var cartItem models.CartItem
	if err := config.DB.Where("user_email = ? AND name = ?", user.Email, name).First(&cartItem).Error; err != nil {
		utils.NotFound(c, "Item not in cart")
		return
	}

	if cartItem.Quantity <= 1 {
		if err := config.DB.Delete(&cartItem).Error; err != nil {
			utils.LogError("Failed to remove cart item for %s: %v", user.Email, err)
			utils.InternalServerError(c, "Failed to update cart", nil)
			return
		}
	} else {
		if err := config.DB.Model(&cartItem).
			UpdateColumn("quantity", gorm.Expr("quantity - ?", 1)).Error; err != nil {
			utils.LogError("Failed to decrement cart item for %s: %v", user.Email, err)
			utils.InternalServerError(c, "Failed to update cart", nil)
			return
		}
	}

	utils.Success(c, fmt.Sprintf("Removed one %s from cart.", name), nil)
}

// PlaceFoodOrderRequest represents a food order request
type PlaceFoodOrderRequest struct {
	RoomNumber int `json:"room_number" binding:"required"`
}

// PlaceFoodOrder converts the user's cart into an unpaid food order
// delivered to one of their active bookings
func PlaceFoodOrder(c *gin.Context) {
	utils.LogInfo("PlaceFoodOrder called")

	user := c.MustGet("user").(models.User)

	var req PlaceFoodOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Please provide a room number for delivery.", err.Error())
		return
	}

	var booking models.Booking
	if err := config.DB.Where("user_email = ? AND room_number = ? AND status = ?",
		user.Email, req.RoomNumber, models.BookingStatusActive).First(&booking).Error; err != nil {
		utils.LogError("No active booking for room %d, user %s", req.RoomNumber, user.Email)
		utils.BadRequest(c, fmt.Sprintf("You do not have an active booking for room %d.", req.RoomNumber), nil)
		return
	}

	var order models.FoodOrder
	err := config.DB.Transaction(func(tx *gorm.DB) error {
		var cart []models.CartItem
		if err := tx.Where("user_email = ?", user.Email).Find(&cart).Error; err != nil {
			return utils.WrapError(err, "failed to fetch cart")
		}
		if len(cart) == 0 {
			return utils.BadRequestError("Your cart is empty.", nil)
		}

		order = models.FoodOrder{
			OrderID:       utils.NewEntityID(),
			UserEmail:     user.Email,
			RoomNumber:    req.RoomNumber,
			TotalCost:     cartTotal(cart),
			PaymentStatus: models.PaymentStatusUnpaid,
			CreatedAt:     time.Now().UTC(),
		}
		for _, item := range cart {
			order.Items = append(order.Items, models.FoodOrderItem{
				Name:     item.Name,
				Price:    item.Price,
				Quantity: item.Quantity,
			})
		}
		if err := tx.Create(&order).Error; err != nil {
			return utils.WrapError(err, "failed to create food order")
		}

		if err := tx.Where("user_email = ?", user.Email).Delete(&models.CartItem{}).Error; err != nil {
			return utils.WrapError(err, "failed to clear cart")
		}
		return nil
	})
	if err != nil {
		if appErr := utils.GetAppError(err); appErr != nil {
			utils.Error(c, appErr.Code, appErr.Message, nil)
			return
		}
		utils.LogError("Failed to place food order for %s: %v", user.Email, err)
		utils.InternalServerError(c, "Failed to place order", nil)
		return
	}
	utils.LogInfo("Placed food order %s for %s, total: %.2f", order.OrderID, user.Email, order.TotalCost)

	emailSent := true
	if err := utils.SendFoodOrderConfirmation(user.Username, &order); err != nil {
		utils.LogError("Failed to send food order confirmation to %s: %v", user.Email, err)
		emailSent = false
	}

	utils.Created(c, "Order placed successfully! Proceed to billing.", gin.H{
		"order":      order,
		"email_sent": emailSent,
	})
}
