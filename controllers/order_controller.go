package controllers

import (
	"errors"
	"time"

	"olympus-app/controllers/idgen"
	"olympus-app/models"
	"olympus-app/services"
	"olympus-app/utils"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type OrderController struct {
	DB *gorm.DB
}

func NewOrderController(db *gorm.DB) *OrderController {
	return &OrderController{DB: db}
}

const dateLayout = "2006-01-02"

// GenerateOrder creates a work order from a configured pen: prices the
// payable, snapshots the bill of materials and derives the promised
// schedule (ordering days are added when stock is short).
func (c *OrderController) GenerateOrder(ctx *fiber.Ctx) error {
	var input struct {
		PenID      uint     `json:"pen_id" validate:"required"`
		CustomerID *uint    `json:"customer_id"`
		Count      int      `json:"count" validate:"required,min=1"`
		IsBusiness bool     `json:"is_business"`
		TaxPercent *float64 `json:"tax_percent"`
	}

	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var pen models.Pen
	if err := c.DB.First(&pen, "pen_id = ?", input.PenID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Pen not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	payable := services.CalculatePayable(pen.Cost, input.Count, input.TaxPercent)

	bom := services.NewBOMService(c.DB)
	weights, err := bom.PenMaterialWeights(pen.PenID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	availability, err := bom.CheckAvailability(weights, input.Count)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var backlog int64
	c.DB.Model(&models.WorkOrder{}).Where("status = ?", models.StatusInProduction).Count(&backlog)

	today := time.Now()
	days := services.ManufacturingDays(!availability.AllAvailable, backlog)

	order := models.WorkOrder{
		OrderNo:     idgen.OrderNo(),
		CustomerID:  input.CustomerID,
		PenID:       pen.PenID,
		Status:      models.StatusAwaitingConfirmation,
		Count:       input.Count,
		StartDate:   today.Format(dateLayout),
		EndDate:     today.AddDate(0, 0, days).Format(dateLayout),
		UnitCost:    pen.Cost,
		Subtotal:    payable.Subtotal,
		TaxAmt:      payable.TaxAmount,
		GrandTotal:  payable.TotalWithTax,
		IsBusiness:  input.IsBusiness,
		MaterialWts: weights,
	}

	if err := c.DB.Create(&order).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	utils.InsertAuditLog(c.DB, order.OrderNo, "work_order", "created",
		"Work order generated", utils.ActorID(ctx.Locals("userID")))

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Work order created successfully",
		"data": fiber.Map{
			"order":        order,
			"availability": availability,
		},
	})
}

// AcceptOrder moves an awaiting order into production.
func (c *OrderController) AcceptOrder(ctx *fiber.Ctx) error {
	var input struct {
		OrderID uint `json:"order_id" validate:"required"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if input.OrderID == 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "order_id is required"})
	}

	var order models.WorkOrder
	if err := c.DB.First(&order, input.OrderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Work order not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if !models.CanTransition(order.Status, models.StatusInProduction) {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot accept order in status '" + order.Status + "'",
		})
	}

	updates := map[string]interface{}{
		"status":      models.StatusInProduction,
		"is_accepted": true,
	}
	if err := c.DB.Model(&order).Updates(updates).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	utils.InsertAuditLog(c.DB, order.OrderNo, "work_order", "accepted",
		"Order accepted, moved to production", utils.ActorID(ctx.Locals("userID")))

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Order accepted"})
}

// CancelOrder is reachable from both pre-completion states.
func (c *OrderController) CancelOrder(ctx *fiber.Ctx) error {
	var input struct {
		OrderID uint   `json:"order_id"`
		Reason  string `json:"reason"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var order models.WorkOrder
	if err := c.DB.First(&order, input.OrderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Work order not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if !models.CanTransition(order.Status, models.StatusCancelled) {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot cancel order in status '" + order.Status + "'",
		})
	}

	if err := c.DB.Model(&order).Update("status", models.StatusCancelled).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	utils.InsertAuditLog(c.DB, order.OrderNo, "work_order", "cancelled",
		input.Reason, utils.ActorID(ctx.Locals("userID")))

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Order cancelled"})
}

// ListOrders feeds the order board, earliest start date first.
func (c *OrderController) ListOrders(ctx *fiber.Ctx) error {
	var orders []models.WorkOrder
	query := c.DB.Order("start_date asc")
	if status := ctx.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if err := query.Find(&orders).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Work orders found", "data": orders})
}

// GetBillOfMaterial expands a work order's material snapshot into total grams.
func (c *OrderController) GetBillOfMaterial(ctx *fiber.Ctx) error {
	workOrderID := ctx.QueryInt("work_order_id")
	if workOrderID <= 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "work_order_id is required"})
	}

	var order models.WorkOrder
	if err := c.DB.First(&order, workOrderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Work order not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	lines := make([]fiber.Map, 0, len(order.MaterialWts))
	for material, perUnit := range order.MaterialWts {
		lines = append(lines, fiber.Map{
			"material":       material,
			"grams_per_unit": perUnit,
			"total_grams":    perUnit * float64(order.Count),
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Bill of material found",
		"data": fiber.Map{
			"work_order_id": order.ID,
			"order_no":      order.OrderNo,
			"count":         order.Count,
			"materials":     lines,
		},
	})
}

// GetQuote returns the latest order for a pen plus the cost division table.
func (c *OrderController) GetQuote(ctx *fiber.Ctx) error {
	penID := ctx.QueryInt("pen_id")
	if penID <= 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "pen_id is required"})
	}

	var order models.WorkOrder
	if err := c.DB.Where("pen = ?", penID).Order("created_at desc").First(&order).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "No work order for this pen"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	pen, err := penDetails(c.DB, order.PenID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Quote found",
		"data": fiber.Map{
			"order":         order,
			"pen":           pen,
			"cost_division": services.GetAmountSummary(),
		},
	})
}

// UpdateSchedule lets staff reschedule start/end dates from the planner.
func (c *OrderController) UpdateSchedule(ctx *fiber.Ctx) error {
	var input struct {
		ID        uint   `json:"id" validate:"required"`
		StartDate string `json:"start_date" validate:"required"`
		EndDate   string `json:"end_date" validate:"required"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	for _, d := range []string{input.StartDate, input.EndDate} {
		if _, err := time.Parse(dateLayout, d); err != nil {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Dates must be YYYY-MM-DD"})
		}
	}

	res := c.DB.Model(&models.WorkOrder{}).Where("id = ?", input.ID).Updates(map[string]interface{}{
		"start_date": input.StartDate,
		"end_date":   input.EndDate,
	})
	if res.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": res.Error.Error()})
	}
	if res.RowsAffected == 0 {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Work order not found"})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Work order schedule updated"})
}
