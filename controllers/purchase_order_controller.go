package controllers

import (
	"errors"
	"fmt"
	"time"

	"olympus-app/models"
	"olympus-app/services"
	"olympus-app/utils"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type PurchaseOrderController struct {
	DB     *gorm.DB
	Mailer *services.Mailer
}

func NewPurchaseOrderController(db *gorm.DB) *PurchaseOrderController {
	return &PurchaseOrderController{DB: db, Mailer: services.NewMailer()}
}

// CreatePurchaseOrders opens one PO per inventory row. The body maps
// inventory id -> grams; total cost snapshots the current per-gram price so a
// later price change does not rewrite history.
func (c *PurchaseOrderController) CreatePurchaseOrders(ctx *fiber.Ctx) error {
	var input struct {
		Items    map[string]float64 `json:"items"` // inventory id -> grams
		VendorID *uint              `json:"vendor"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if len(input.Items) == 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "items is required"})
	}

	actor := utils.ActorID(ctx.Locals("userID"))
	created := make([]models.PurchaseOrder, 0, len(input.Items))

	err := c.DB.Transaction(func(tx *gorm.DB) error {
		for idStr, grams := range input.Items {
			if grams <= 0 {
				return fmt.Errorf("quantity for material %s must be positive", idStr)
			}

			var material models.InventoryMaterial
			if err := tx.Where("id = ? AND is_pen = ?", idStr, false).First(&material).Error; err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("material %s not found", idStr)
				}
				return err
			}

			po := models.PurchaseOrder{
				MaterialID: material.ID,
				Quantity:   grams,
				Name:       material.MaterialName,
				TotalCost:  grams * material.CostPGram,
				VendorID:   input.VendorID,
				CreatedBy:  actor,
			}
			if po.VendorID == nil {
				po.VendorID = material.VendorID
			}
			if err := tx.Create(&po).Error; err != nil {
				return err
			}
			created = append(created, po)
		}
		return nil
	})
	if err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	// Vendor mail goes out after commit; a bounced mail must not undo the POs.
	for _, po := range created {
		if po.VendorID == nil {
			continue
		}
		var vendor models.Vendor
		if err := c.DB.First(&vendor, *po.VendorID).Error; err == nil && vendor.VendorEmail != "" {
			c.Mailer.SendPurchaseOrderNotice(vendor.VendorEmail, po.Name, po.Quantity, po.TotalCost)
		}
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"message": "Purchase orders created",
		"data":    created,
	})
}

// ListPurchaseOrders supports ?received=true|false.
func (c *PurchaseOrderController) ListPurchaseOrders(ctx *fiber.Ctx) error {
	query := c.DB.Order("created_at desc")
	if received := ctx.Query("received"); received != "" {
		query = query.Where("is_received = ?", received == "true")
	}

	var orders []models.PurchaseOrder
	if err := query.Find(&orders).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Purchase orders found", "data": orders})
}

// ReceivePurchaseOrder books the grams into inventory exactly once. The
// guarded UPDATE flips is_received and the stock increment in one
// transaction; a second receive for the same PO gets 409.
func (c *PurchaseOrderController) ReceivePurchaseOrder(ctx *fiber.Ctx) error {
	var input struct {
		PurchaseOrderID uint `json:"purchase_order_id"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}
	if input.PurchaseOrderID == 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "purchase_order_id is required"})
	}

	var po models.PurchaseOrder
	if err := c.DB.First(&po, input.PurchaseOrderID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Purchase order not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	now := time.Now()
	err := c.DB.Transaction(func(tx *gorm.DB) error {
		res := tx.Model(&models.PurchaseOrder{}).
			Where("id = ? AND is_received = ?", po.ID, false).
			Updates(map[string]interface{}{
				"is_received": true,
				"received_at": now,
			})
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return errAlreadyReceived
		}

		return tx.Model(&models.InventoryMaterial{}).
			Where("id = ?", po.MaterialID).
			Update("weight", gorm.Expr("weight + ?", po.Quantity)).Error
	})
	if err != nil {
		if errors.Is(err, errAlreadyReceived) {
			return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Purchase order already received"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	utils.InsertAuditLog(c.DB, fmt.Sprintf("PO-%d", po.ID), "purchase_order", "received",
		fmt.Sprintf("%.0f g of %s booked into inventory", po.Quantity, po.Name),
		utils.ActorID(ctx.Locals("userID")))

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Purchase order received"})
}

var errAlreadyReceived = errors.New("purchase order already received")
