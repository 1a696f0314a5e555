package controllers

import (
	"bytes"
	"fmt"
	"math"
	"net/http"
	"strings"
	"time"

	"github.com/Yeshwanth-lb/hotel-bombaat-project/config"
	"github.com/Yeshwanth-lb/hotel-bombaat-project/models"
	"github.com/Yeshwanth-lb/hotel-bombaat-project/utils"

	"github.com/gin-gonic/gin"
	"github.com/tealeg/xlsx"
)

func reportRange(period string) (time.Time, time.Time, bool) {
	now := time.Now()
	switch period {
	case "day":
		start := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
		return start, start.AddDate(0, 0, 1), true
	case "week":
		end := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
		return end.AddDate(0, 0, -7), end, true
	case "month":
		end := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location()).AddDate(0, 0, 1)
		return end.AddDate(0, -1, 0), end, true
	}
	return time.Time{}, time.Time{}, false
}

// DownloadRevenueReport exports settled payments for a period as an Excel
// workbook: hotel header, a summary block and one row per payment
func DownloadRevenueReport(c *gin.Context) {
	utils.LogInfo("DownloadRevenueReport called")

	period := c.DefaultQuery("period", "day")
	startDate, endDate, ok := reportRange(period)
	if !ok {
		utils.LogError("Invalid report period: %s", period)
		utils.BadRequest(c, "Invalid period", "Period must be day, week, or month")
		return
	}
	utils.LogDebug("Generating revenue report for period %s: %s to %s",
		period, startDate.Format(dateLayout), endDate.Format(dateLayout))

	var payments []models.Payment
	if err := config.DB.Where("created_at >= ? AND created_at < ?", startDate, endDate).
		Order("created_at desc").Find(&payments).Error; err != nil {
		utils.LogError("Failed to fetch payments for report: %v", err)
		utils.InternalServerError(c, "Failed to fetch payments", nil)
		return
	}

	var gross, discounts float64
	guestSet := make(map[string]bool)
	for _, p := range payments {
		gross += p.OriginalAmount
		discounts += p.DiscountApplied
		guestSet[p.UserEmail] = true
	}
	net := math.Round((gross-discounts)*100) / 100

	file := xlsx.NewFile()
	sheet, err := file.AddSheet("Revenue Report")
	if err != nil {
		utils.LogError("Failed to create report sheet: %v", err)
		utils.InternalServerError(c, "Failed to create report", nil)
		return
	}

	addLine := func(text string) {
		row := sheet.AddRow()
		row.AddCell().SetString(text)
	}
	addLine(strings.ToUpper(utils.AppName) + " - Revenue Report")
	addLine(utils.HotelAddress)
	addLine("Period: " + strings.ToUpper(period) + " | " +
		startDate.Format(dateLayout) + " to " + endDate.AddDate(0, 0, -1).Format(dateLayout))
	sheet.AddRow()

	addLine(fmt.Sprintf("Payments: %d", len(payments)))
	addLine(fmt.Sprintf("Guests: %d", len(guestSet)))
	addLine(fmt.Sprintf("Gross: %.2f", gross))
	addLine(fmt.Sprintf("Discounts: %.2f", discounts))
	addLine(fmt.Sprintf("Net Revenue: %.2f", net))
	sheet.AddRow()

	headers := []string{"Order ID", "Guest", "Date", "Original", "Discount", "Promo", "Net", "Method", "Status"}
	headerRow := sheet.AddRow()
	for _, h := range headers {
		cell := headerRow.AddCell()
		cell.SetString(h)
		style := xlsx.NewStyle()
		font := xlsx.DefaultFont()
		font.Bold = true
		style.Font = *font
		cell.SetStyle(style)
	}

	for _, p := range payments {
		row := sheet.AddRow()
		row.AddCell().SetString(p.OrderID)
		row.AddCell().SetString(p.UserEmail)
		row.AddCell().SetString(p.CreatedAt.Format("2006-01-02 15:04"))
		row.AddCell().SetFloat(p.OriginalAmount)
		row.AddCell().SetFloat(p.DiscountApplied)
		row.AddCell().SetString(p.PromoCode)
		row.AddCell().SetFloat(p.Amount)
		row.AddCell().SetString(p.PaymentMethod)
		row.AddCell().SetString(p.Status)
	}

	var buf bytes.Buffer
	if err := file.Write(&buf); err != nil {
		utils.LogError("Failed to write report workbook: %v", err)
		utils.InternalServerError(c, "Failed to generate report", nil)
		return
	}
	utils.LogInfo("Revenue report generated for period %s: %d payments", period, len(payments))

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=revenue_report_%s.xlsx", period))
	c.Data(http.StatusOK, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet", buf.Bytes())
}
