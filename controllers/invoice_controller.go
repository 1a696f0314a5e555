package controllers

import (
	"bytes"
	"fmt"
	"net/http"

	"github.com/Yeshwanth-lb/hotel-bombaat-project/config"
	"github.com/Yeshwanth-lb/hotel-bombaat-project/models"
	"github.com/Yeshwanth-lb/hotel-bombaat-project/utils"

	"github.com/gin-gonic/gin"
	"github.com/jung-kurt/gofpdf"
)

// BuildInvoicePDF renders the fixed-layout invoice for a payment: header,
// one line per settled charge, then subtotal, discount (only when one was
// applied) and the grand total, which always equals the payment amount.
func BuildInvoicePDF(payment *models.Payment, bookings []models.Booking, orders []models.FoodOrder) *gofpdf.Fpdf {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	// Hotel header
	pdf.SetFont("Arial", "B", 18)
	pdf.Cell(100, 10, utils.AppName)
	pdf.Ln(8)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(100, 8, utils.HotelAddress)
	pdf.Ln(12)

	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(100, 10, "INVOICE")
	pdf.Ln(12)
	pdf.SetFont("Arial", "", 12)
	pdf.Cell(60, 8, "Order ID: "+payment.OrderID)
	pdf.Cell(70, 8, "Date: "+payment.CreatedAt.Format("2006-01-02 15:04"))
	pdf.Ln(8)
	pdf.Cell(60, 8, "Payment Method: "+payment.PaymentMethod)
	pdf.Ln(12)

	// Items table
	pdf.SetFont("Arial", "B", 12)
	pdf.CellFormat(130, 8, "Description", "1", 0, "L", false, 0, "")
	pdf.CellFormat(40, 8, "Amount (INR)", "1", 0, "R", false, 0, "")
	pdf.Ln(-1)

	pdf.SetFont("Arial", "", 12)
	for _, b := range bookings {
		pdf.CellFormat(130, 8, "Room Booking: "+b.RoomType, "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 8, fmt.Sprintf("%.2f", b.TotalCost), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}
	for _, f := range orders {
		pdf.CellFormat(130, 8, "Food Order #"+f.OrderID[:8], "1", 0, "L", false, 0, "")
		pdf.CellFormat(40, 8, fmt.Sprintf("%.2f", f.TotalCost), "1", 0, "R", false, 0, "")
		pdf.Ln(-1)
	}

	// Summary
	pdf.Ln(4)
	if payment.DiscountApplied > 0 {
		pdf.SetFont("Arial", "", 12)
		pdf.CellFormat(130, 8, "Subtotal:", "", 0, "R", false, 0, "")
		pdf.CellFormat(40, 8, fmt.Sprintf("%.2f", payment.OriginalAmount), "", 1, "R", false, 0, "")
		pdf.SetFont("Arial", "B", 12)
		pdf.SetTextColor(0, 128, 0)
		pdf.CellFormat(130, 8, fmt.Sprintf("Discount (%s):", payment.PromoCode), "", 0, "R", false, 0, "")
		pdf.CellFormat(40, 8, fmt.Sprintf("-%.2f", payment.DiscountApplied), "", 1, "R", false, 0, "")
		pdf.SetTextColor(0, 0, 0)
	}
	pdf.SetFont("Arial", "B", 14)
	pdf.CellFormat(130, 10, "GRAND TOTAL:", "", 0, "R", false, 0, "")
	pdf.CellFormat(40, 10, fmt.Sprintf("%.2f", payment.Amount), "", 1, "R", false, 0, "")

	pdf.Ln(10)
	pdf.SetFont("Arial", "I", 11)
	pdf.Cell(0, 10, "Thank you for staying with "+utils.AppName+"!")

	return pdf
}

// DownloadInvoice generates and returns the PDF invoice for a settled
// payment. The payment must belong to the logged-in user.
func DownloadInvoice(c *gin.Context) {
	utils.LogInfo("DownloadInvoice called")

	user := c.MustGet("user").(models.User)
	orderID := c.Param("order_id")

	var payment models.Payment
	if err := config.DB.Where("order_id = ? AND user_email = ?", orderID, user.Email).
		First(&payment).Error; err != nil {
		utils.LogError("Invoice not found: %s for %s", orderID, user.Email)
		utils.NotFound(c, "Invoice not found.")
		return
	}

	var bookings []models.Booking
	if ids := payment.SettledBookingIDs(); len(ids) > 0 {
		if err := config.DB.Where("booking_id IN ?", ids).Find(&bookings).Error; err != nil {
			utils.LogError("Failed to resolve bookings for invoice %s: %v", orderID, err)
			utils.InternalServerError(c, "Failed to generate invoice", nil)
			return
		}
	}
	var orders []models.FoodOrder
	if ids := payment.SettledFoodOrderIDs(); len(ids) > 0 {
		if err := config.DB.Where("order_id IN ?", ids).Find(&orders).Error; err != nil {
			utils.LogError("Failed to resolve food orders for invoice %s: %v", orderID, err)
			utils.InternalServerError(c, "Failed to generate invoice", nil)
			return
		}
	}

	pdf := BuildInvoicePDF(&payment, bookings, orders)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		utils.LogError("Failed to render invoice PDF for %s: %v", orderID, err)
		utils.InternalServerError(c, "Failed to generate invoice", nil)
		return
	}
	utils.LogInfo("Invoice generated for order %s, %d bytes", orderID, buf.Len())

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=Invoice_%s.pdf", payment.OrderID))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
