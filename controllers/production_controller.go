package controllers

import (
	"errors"
	"time"

	"olympus-app/models"
	"olympus-app/services"
	"olympus-app/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type ProductionController struct {
	DB     *gorm.DB
	Mailer *services.Mailer
}

func NewProductionController(db *gorm.DB) *ProductionController {
	return &ProductionController{DB: db, Mailer: services.NewMailer()}
}

// StartProduction deducts the BOM grams for an accepted order. The flag flip
// and every stock deduction run in one transaction, so a short material line
// rolls everything back and a second call cannot deduct twice.
func (c *ProductionController) StartProduction(ctx *fiber.Ctx) error {
	var input struct {
		WorkOrderID uint `json:"work_order_id"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if input.WorkOrderID == 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "work_order_id is required"})
	}

	var order models.WorkOrder
	if err := c.DB.First(&order, input.WorkOrderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Work order not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	bom := services.NewBOMService(c.DB)

	err := c.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.WorkOrder{}).
			Where("id = ? AND status = ? AND materials_taken = ?",
				order.ID, models.StatusInProduction, false).
			Update("materials_taken", true)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errProductionNotStartable
		}
		return bom.DeductMaterials(tx, order.MaterialWts, order.Count)
	})

	if err != nil {
		if errors.Is(err, errProductionNotStartable) {
			return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "Order is not in production or materials already taken",
			})
		}
		if errors.Is(err, services.ErrInsufficientStock) {
			report, rerr := bom.CheckAvailability(order.MaterialWts, order.Count)
			if rerr != nil {
				return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": rerr.Error()})
			}
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": err.Error(),
				"data":  report,
			})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	utils.InsertAuditLog(c.DB, order.OrderNo, "work_order", "production_started",
		"Materials deducted from inventory", utils.ActorID(ctx.Locals("userID")))

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Production started, materials deducted"})
}

var (
	errProductionNotStartable  = errors.New("work order not startable")
	errProductionNotFinishable = errors.New("work order not finishable")
)

// FinishProduction closes a production run: successful = count - defective,
// defective grams go back on the shelf, a pending QA record is opened and,
// when units were rejected, the customer gets a grievance plus a mail.
func (c *ProductionController) FinishProduction(ctx *fiber.Ctx) error {
	var input struct {
		WorkOrderID uint `json:"work_order_id"`
		Defective   int  `json:"defective"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if input.WorkOrderID == 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "work_order_id is required"})
	}

	var order models.WorkOrder
	if err := c.DB.First(&order, input.WorkOrderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Work order not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if input.Defective < 0 || input.Defective > order.Count {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "defective must be between 0 and the order count",
		})
	}
	if !models.CanTransition(order.Status, models.StatusCompleted) {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Cannot finish order in status '" + order.Status + "'",
		})
	}

	bom := services.NewBOMService(c.DB)
	today := time.Now().Format(dateLayout)

	err := c.DB.Transaction(func(tx *gorm.DB) error {
		// The status predicate makes the close-out single-shot: of two
		// concurrent finishes only one row update wins, the loser rolls back
		// before touching inventory or QA.
		updates := map[string]interface{}{
			"status":      models.StatusCompleted,
			"defective":   input.Defective,
			"is_finished": true,
			"end_date":    today,
		}
		res := tx.Model(&models.WorkOrder{}).
			Where("id = ? AND status = ?", order.ID, models.StatusInProduction).
			Updates(updates)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errProductionNotFinishable
		}

		if input.Defective > 0 && order.MaterialsTaken {
			if err := bom.ReturnMaterials(tx, order.MaterialWts, input.Defective); err != nil {
				return err
			}
		}

		qa := models.QARecord{
			WorkOrderID:    order.ID,
			InspectionDate: today,
			Status:         models.QAStatusPending,
			DefectsFound:   input.Defective,
		}
		if err := tx.Create(&qa).Error; err != nil {
			return err
		}

		if input.Defective > 0 && order.CustomerID != nil {
			grievance := models.Grievance{
				CustomerID:     *order.CustomerID,
				Message:        services.DefectNoticeBody(input.Defective, order.Count),
				DefectiveCount: input.Defective,
			}
			if err := tx.Create(&grievance).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		if errors.Is(err, errProductionNotFinishable) {
			return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "Work order is no longer in production",
			})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if input.Defective > 0 && order.CustomerID != nil {
		var customer models.Customer
		if err := c.DB.First(&customer, *order.CustomerID).Error; err == nil {
			c.Mailer.SendDefectNotice(customer.Email, input.Defective, order.Count)
		}
	}

	utils.InsertAuditLog(c.DB, order.OrderNo, "work_order", "finished",
		"Production finished", utils.ActorID(ctx.Locals("userID")))

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Production finished",
		"data": fiber.Map{
			"successful": order.Count - input.Defective,
			"defective":  input.Defective,
		},
	})
}

// GetWorkOrder returns one order with its pen summary and material lines.
func (c *ProductionController) GetWorkOrder(ctx *fiber.Ctx) error {
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

	pen, err := penDetails(c.DB, order.PenID)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	materials := make([]fiber.Map, 0, len(order.MaterialWts))
	for material, perUnit := range order.MaterialWts {
		materials = append(materials, fiber.Map{
			"material":       material,
			"grams_per_unit": perUnit,
			"total_grams":    perUnit * float64(order.Count),
		})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Work order found",
		"data": fiber.Map{
			"order":     order,
			"pen":       pen,
			"materials": materials,
		},
	})
}

// GetAvailability reports per-material stock sufficiency for an order.
func (c *ProductionController) GetAvailability(ctx *fiber.Ctx) error {
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

	bom := services.NewBOMService(c.DB)
	report, err := bom.CheckAvailability(order.MaterialWts, order.Count)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Availability checked",
		"data":    report,
	})
}
