package controllers

import (
	"errors"
	"time"

	"olympus-app/models"
	"olympus-app/utils"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type QAController struct {
	DB *gorm.DB
}

func NewQAController(db *gorm.DB) *QAController {
	return &QAController{DB: db}
}

func (c *QAController) ListRecords(ctx *fiber.Ctx) error {
	query := c.DB.Order("created_at desc")
	if status := ctx.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var records []models.QARecord
	if err := query.Find(&records).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "QA records found", "data": records})
}

func (c *QAController) CreateRecord(ctx *fiber.Ctx) error {
	var input struct {
		WorkOrderID       uint   `json:"work_order_id" validate:"required"`
		InspectorName     string `json:"inspector_name"`
		InspectionDate    string `json:"inspection_date"`
		DefectsFound      int    `json:"defects_found" validate:"gte=0"`
		DefectDescription string `json:"defect_description"`
		Notes             string `json:"notes"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var order models.WorkOrder
	if err := c.DB.First(&order, input.WorkOrderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Work order not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	if input.InspectionDate == "" {
		input.InspectionDate = time.Now().Format(dateLayout)
	}

	record := models.QARecord{
		WorkOrderID:       order.ID,
		InspectorName:     input.InspectorName,
		InspectionDate:    input.InspectionDate,
		Status:            models.QAStatusPending,
		DefectsFound:      input.DefectsFound,
		DefectDescription: input.DefectDescription,
		Notes:             input.Notes,
	}
	if err := c.DB.Create(&record).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": "QA record created", "data": record})
}

func (c *QAController) UpdateRecord(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid QA record id"})
	}

	var record models.QARecord
	if err := c.DB.First(&record, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "QA record not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var input struct {
		InspectorName     *string `json:"inspector_name"`
		InspectionDate    *string `json:"inspection_date"`
		Status            *string `json:"status"`
		DefectsFound      *int    `json:"defects_found"`
		DefectDescription *string `json:"defect_description"`
		Notes             *string `json:"notes"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	updates := map[string]interface{}{}
	if input.InspectorName != nil {
		updates["inspector_name"] = *input.InspectorName
	}
	if input.InspectionDate != nil {
		updates["inspection_date"] = *input.InspectionDate
	}
	if input.Status != nil {
		// Passing must go through the pass endpoint so shipping is created.
		if *input.Status == models.QAStatusPassed {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"error": "Use the pass endpoint to pass a QA record",
			})
		}
		if *input.Status != models.QAStatusPending && *input.Status != models.QAStatusFailed {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid status"})
		}
		updates["status"] = *input.Status
	}
	if input.DefectsFound != nil {
		updates["defects_found"] = *input.DefectsFound
	}
	if input.DefectDescription != nil {
		updates["defect_description"] = *input.DefectDescription
	}
	if input.Notes != nil {
		updates["notes"] = *input.Notes
	}
	if len(updates) == 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Nothing to update"})
	}

	if err := c.DB.Model(&record).Updates(updates).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "QA record updated", "data": record})
}

func (c *QAController) DeleteRecord(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid QA record id"})
	}

	res := c.DB.Delete(&models.QARecord{}, id)
	if res.Error != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": res.Error.Error()})
	}
	if res.RowsAffected == 0 {
		return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "QA record not found"})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "QA record deleted"})
}

// PassRecord flips a pending QA record to passed and opens the shipping
// record in the same transaction. shipped_count is the survivor count and
// arrival is promised a week out. A record that already passed gets 409, so
// an order can never ship twice.
func (c *QAController) PassRecord(ctx *fiber.Ctx) error {
	var input struct {
		QAID        uint `json:"qa_id"`
		WorkOrderID uint `json:"work_order_id"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if input.QAID == 0 || input.WorkOrderID == 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "qa_id and work_order_id are required"})
	}

	var order models.WorkOrder
	if err := c.DB.First(&order, input.WorkOrderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Work order not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var customerID uint
	if order.CustomerID != nil {
		customerID = *order.CustomerID
	}

	var shipping models.ShippingRecord
	err := c.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.QARecord{}).
			Where("id = ? AND work_order_id = ? AND status = ?",
				input.QAID, order.ID, models.QAStatusPending).
			Update("status", models.QAStatusPassed)
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errQANotPassable
		}

		shipping = models.ShippingRecord{
			CustomerID:     customerID,
			PenID:          order.PenID,
			WorkOrderID:    order.ID,
			TotalCount:     order.Count,
			DefectiveCount: order.Defective,
			ShippedCount:   order.Successful(),
			ArrivalDate:    time.Now().AddDate(0, 0, 7).Format(dateLayout),
		}
		return tx.Create(&shipping).Error
	})
	if err != nil {
		if errors.Is(err, errQANotPassable) {
			return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{
				"error": "QA record is not pending for this work order",
			})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	utils.InsertAuditLog(c.DB, order.OrderNo, "qa", "passed",
		"QA passed, shipping record created", utils.ActorID(ctx.Locals("userID")))

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "QA passed, shipment scheduled",
		"data":    shipping,
	})
}

var errQANotPassable = errors.New("qa record not passable")
