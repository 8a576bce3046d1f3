package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"olympus-app/models"
	"olympus-app/repositories"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"golang.org/x/exp/slices"
	"gorm.io/gorm"
)

type AccountsController struct {
	DB *gorm.DB
}

func NewAccountsController(db *gorm.DB) *AccountsController {
	return &AccountsController{DB: db}
}

// ListTransactions filters the ledger. Every filter is optional and they
// stack.
func (c *AccountsController) ListTransactions(ctx *fiber.Ctx) error {
	query := c.DB.Model(&models.Transaction{}).Order("transaction_date desc, id desc")

	if start := ctx.Query("start_date"); start != "" {
		query = query.Where("transaction_date >= ?", start)
	}
	if end := ctx.Query("end_date"); end != "" {
		query = query.Where("transaction_date <= ?", end)
	}
	if txType := ctx.Query("type"); txType != "" {
		query = query.Where("transaction_type = ?", txType)
	}
	if category := ctx.Query("category"); category != "" {
		query = query.Where("category = ?", category)
	}
	if status := ctx.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if customerID := ctx.QueryInt("customer_id"); customerID > 0 {
		query = query.Where("customer_id = ?", customerID)
	}
	if vendorID := ctx.QueryInt("vendor_id"); vendorID > 0 {
		query = query.Where("vendor_id = ?", vendorID)
	}
	if search := ctx.Query("search"); search != "" {
		like := "%" + search + "%"
		query = query.Where("description ILIKE ? OR notes ILIKE ?", like, like)
	}

	limit := ctx.QueryInt("limit", 100)
	if limit <= 0 || limit > 1000 {
		limit = 100
	}

	var transactions []models.Transaction
	if err := query.Limit(limit).Find(&transactions).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Transactions found", "data": transactions})
}

type transactionInput struct {
	TransactionDate string  `json:"transaction_date" validate:"required"`
	TransactionType string  `json:"transaction_type" validate:"required"`
	Category        string  `json:"category" validate:"required"`
	Amount          float64 `json:"amount" validate:"required,gt=0"`
	Description     string  `json:"description"`
	ReferenceID     *uint   `json:"reference_id"`
	ReferenceType   string  `json:"reference_type"`
	PaymentMethod   string  `json:"payment_method"`
	CustomerID      *uint   `json:"customer_id"`
	VendorID        *uint   `json:"vendor_id"`
	Status          string  `json:"status"`
	Notes           string  `json:"notes"`
}

func (in *transactionInput) check() error {
	if !slices.Contains(models.TxTypes, in.TransactionType) {
		return fmt.Errorf("invalid transaction_type '%s'", in.TransactionType)
	}
	if !slices.Contains(models.TxCategories, in.Category) {
		return fmt.Errorf("invalid category '%s'", in.Category)
	}
	if in.PaymentMethod != "" && !slices.Contains(models.PaymentMethods, in.PaymentMethod) {
		return fmt.Errorf("invalid payment_method '%s'", in.PaymentMethod)
	}
	if _, err := time.Parse(dateLayout, in.TransactionDate); err != nil {
		return errors.New("transaction_date must be YYYY-MM-DD")
	}
	return nil
}

func (c *AccountsController) CreateTransaction(ctx *fiber.Ctx) error {
	var input transactionInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := input.check(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	status := input.Status
	if status == "" {
		status = models.TxStatusCompleted
	}

	tx := models.Transaction{
		TransactionDate: input.TransactionDate,
		TransactionType: input.TransactionType,
		Category:        input.Category,
		Amount:          input.Amount,
		Description:     input.Description,
		ReferenceID:     input.ReferenceID,
		ReferenceType:   input.ReferenceType,
		PaymentMethod:   input.PaymentMethod,
		CustomerID:      input.CustomerID,
		VendorID:        input.VendorID,
		Status:          status,
		Notes:           input.Notes,
	}
	if err := c.DB.Create(&tx).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": "Transaction created", "data": tx})
}

func (c *AccountsController) UpdateTransaction(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid transaction id"})
	}

	var tx models.Transaction
	if err := c.DB.First(&tx, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Transaction not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	if tx.Status == models.TxStatusCancelled {
		return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Cancelled transactions cannot be edited"})
	}

	var input transactionInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if err := input.check(); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	updates := map[string]interface{}{
		"transaction_date": input.TransactionDate,
		"transaction_type": input.TransactionType,
		"category":         input.Category,
		"amount":           input.Amount,
		"description":      input.Description,
		"payment_method":   input.PaymentMethod,
		"notes":            input.Notes,
	}
	if input.Status != "" {
		updates["status"] = input.Status
	}
	if err := c.DB.Model(&tx).Updates(updates).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Transaction updated", "data": tx})
}

// DeleteTransaction soft-cancels; the row stays for the audit trail.
func (c *AccountsController) DeleteTransaction(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid transaction id"})
	}

	res := c.DB.Model(&models.Transaction{}).
		Where("id = ? AND status <> ?", id, models.TxStatusCancelled).
		Update("status", models.TxStatusCancelled)
	if res.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": res.Error.Error()})
	}
	if res.RowsAffected == 0 {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Transaction not found or already cancelled"})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Transaction cancelled"})
}

func periodWindow(period string, now time.Time) (curStart, curEnd, prevStart, prevEnd time.Time) {
	curEnd = now
	switch period {
	case "quarter":
		curStart = now.AddDate(0, -3, 0)
	case "year":
		curStart = now.AddDate(-1, 0, 0)
	default: // month
		curStart = now.AddDate(0, -1, 0)
	}
	span := curEnd.Sub(curStart)
	prevEnd = curStart
	prevStart = curStart.Add(-span)
	return
}

// GetSummary compares the current period against the previous one and adds
// outstanding receivables/payables.
func (c *AccountsController) GetSummary(ctx *fiber.Ctx) error {
	repo := repositories.NewAccountsRepository(c.DB)

	curStart, curEnd, prevStart, prevEnd := periodWindow(ctx.Query("period", "month"), time.Now())

	current, err := repo.PeriodTotals(curStart.Format(dateLayout), curEnd.Format(dateLayout))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	previous, err := repo.PeriodTotals(prevStart.Format(dateLayout), prevEnd.Format(dateLayout))
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	receivables, err := repo.PendingReceivables()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	payables, err := repo.PendingPayables()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	change := func(cur, prev float64) float64 {
		if prev == 0 {
			if cur == 0 {
				return 0
			}
			return 100
		}
		return (cur - prev) / prev * 100
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Summary computed",
		"data": fiber.Map{
			"revenue":             current.Revenue,
			"expenses":            current.Expenses,
			"profit":              current.Revenue - current.Expenses,
			"revenue_change_pct":  change(current.Revenue, previous.Revenue),
			"expenses_change_pct": change(current.Expenses, previous.Expenses),
			"profit_change_pct": change(current.Revenue-current.Expenses,
				previous.Revenue-previous.Expenses),
			"pending_receivables": receivables,
			"pending_payables":    payables,
		},
	})
}

// GetAnalytics bundles the SQL aggregations behind the finance dashboard.
func (c *AccountsController) GetAnalytics(ctx *fiber.Ctx) error {
	repo := repositories.NewAccountsRepository(c.DB)

	now := time.Now()
	windowStart := now.AddDate(0, -6, 0).Format(dateLayout)
	today := now.Format(dateLayout)

	breakdown, err := repo.ExpenseBreakdown(windowStart, today)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	trends, err := repo.MonthlyTrends(windowStart)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	topCustomers, err := repo.TopCustomers(5)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	topVendors, err := repo.TopVendors(5)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Analytics computed",
		"data": fiber.Map{
			"expense_breakdown": breakdown,
			"monthly_trends":    trends,
			"top_customers":     topCustomers,
			"top_vendors":       topVendors,
		},
	})
}

// RecordPayment writes a payment transaction and settles what it references:
// a work order flips isPaid, a purchase order stays as-is (its cost was
// already booked) but the ledger row links back to it.
func (c *AccountsController) RecordPayment(ctx *fiber.Ctx) error {
	var input struct {
		ReferenceType string  `json:"reference_type" validate:"required"`
		ReferenceID   uint    `json:"reference_id" validate:"required"`
		Amount        float64 `json:"amount" validate:"required,gt=0"`
		PaymentMethod string  `json:"payment_method"`
		Notes         string  `json:"notes"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if input.PaymentMethod != "" && !slices.Contains(models.PaymentMethods, input.PaymentMethod) {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid payment_method"})
	}

	today := time.Now().Format(dateLayout)
	var payment models.Transaction

	err := c.DB.Transaction(func(tx *gorm.DB) error {
		switch input.ReferenceType {
		case models.RefTypeWorkOrder:
			var order models.WorkOrder
			if err := tx.First(&order, input.ReferenceID).Error; err != nil {
				return errors.New("work order not found")
			}
			if err := tx.Model(&order).Update("is_paid", true).Error; err != nil {
				return err
			}
			payment = models.Transaction{
				TransactionDate: today,
				TransactionType: models.TxTypePaymentReceived,
				Category:        "sales",
				Amount:          input.Amount,
				Description:     "Payment for " + order.OrderNo,
				ReferenceID:     &order.ID,
				ReferenceType:   models.RefTypeWorkOrder,
				PaymentMethod:   input.PaymentMethod,
				CustomerID:      order.CustomerID,
				Status:          models.TxStatusCompleted,
				Notes:           input.Notes,
			}
		case models.RefTypePurchaseOrder:
			var po models.PurchaseOrder
			if err := tx.First(&po, input.ReferenceID).Error; err != nil {
				return errors.New("purchase order not found")
			}
			payment = models.Transaction{
				TransactionDate: today,
				TransactionType: models.TxTypePaymentMade,
				Category:        "purchase_order",
				Amount:          input.Amount,
				Description:     fmt.Sprintf("Payment for PO-%d (%s)", po.ID, po.Name),
				ReferenceID:     &po.ID,
				ReferenceType:   models.RefTypePurchaseOrder,
				PaymentMethod:   input.PaymentMethod,
				VendorID:        po.VendorID,
				Status:          models.TxStatusCompleted,
				Notes:           input.Notes,
			}
		default:
			return errors.New("reference_type must be work_order or purchase_order")
		}
		return tx.Create(&payment).Error
	})
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": "Payment recorded", "data": payment})
}

// ExportExcel streams the ledger as a workbook.
func (c *AccountsController) ExportExcel(ctx *fiber.Ctx) error {
	var transactions []models.Transaction
	query := c.DB.Order("transaction_date desc, id desc")
	if start := ctx.Query("start_date"); start != "" {
		query = query.Where("transaction_date >= ?", start)
	}
	if end := ctx.Query("end_date"); end != "" {
		query = query.Where("transaction_date <= ?", end)
	}
	if err := query.Find(&transactions).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	f := excelize.NewFile()
	sheet := "Sheet1"

	f.SetCellValue(sheet, "A1", "Date")
	f.SetCellValue(sheet, "B1", "Type")
	f.SetCellValue(sheet, "C1", "Category")
	f.SetCellValue(sheet, "D1", "Amount")
	f.SetCellValue(sheet, "E1", "Description")
	f.SetCellValue(sheet, "F1", "Payment Method")
	f.SetCellValue(sheet, "G1", "Status")

	for i, tx := range transactions {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", i+2), tx.TransactionDate)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", i+2), tx.TransactionType)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", i+2), tx.Category)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", i+2), tx.Amount)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", i+2), tx.Description)
		f.SetCellValue(sheet, fmt.Sprintf("F%d", i+2), tx.PaymentMethod)
		f.SetCellValue(sheet, fmt.Sprintf("G%d", i+2), tx.Status)
	}

	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set("Content-Disposition", `attachment; filename="ledger.xlsx"`)

	if err := f.Write(ctx.Response().BodyWriter()); err != nil {
		return ctx.Status(http.StatusInternalServerError).SendString("Failed to generate Excel")
	}

	return nil
}
