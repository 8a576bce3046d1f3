package controllers

import (
	"errors"

	"olympus-app/models"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

type VendorController struct {
	DB *gorm.DB
}

func NewVendorController(db *gorm.DB) *VendorController {
	return &VendorController{DB: db}
}

type vendorInput struct {
	VendorName  string `json:"vendor_name" validate:"required"`
	VendorEmail string `json:"vendor_email" validate:"omitempty,email"`
	VendorPhone string `json:"vendor_phone"`
	Address     *struct {
		State       string `json:"state"`
		City        string `json:"city"`
		Pincode     string `json:"pincode"`
		AddressLine string `json:"address_line"`
	} `json:"address"`
}

func (c *VendorController) CreateVendor(ctx *fiber.Ctx) error {
	var input vendorInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var vendor models.Vendor
	err := c.DB.Transaction(func(tx *gorm.DB) error {
		vendor = models.Vendor{
			VendorName:  input.VendorName,
			VendorEmail: input.VendorEmail,
			VendorPhone: input.VendorPhone,
		}
		if input.Address != nil {
			address := models.Address{
				State:       input.Address.State,
				City:        input.Address.City,
				Pincode:     input.Address.Pincode,
				AddressLine: input.Address.AddressLine,
			}
			if err := tx.Create(&address).Error; err != nil {
				return err
			}
			vendor.VendorAddressID = &address.ID
		}
		return tx.Create(&vendor).Error
	})
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": "Vendor created", "data": vendor})
}

func (c *VendorController) ListVendors(ctx *fiber.Ctx) error {
	var vendors []models.Vendor
	if err := c.DB.Preload("Address").Order("vendor_name asc").Find(&vendors).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Vendors found", "data": vendors})
}

// GetVendor adds purchase order count and the material names supplied.
func (c *VendorController) GetVendor(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid vendor id"})
	}

	var vendor models.Vendor
	if err := c.DB.Preload("Address").First(&vendor, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Vendor not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var poCount int64
	c.DB.Model(&models.PurchaseOrder{}).Where("vendor = ?", vendor.ID).Count(&poCount)

	var supplied []string
	c.DB.Model(&models.InventoryMaterial{}).
		Where("vendor = ? AND is_pen = ?", vendor.ID, false).
		Pluck("material_name", &supplied)

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"message": "Vendor found",
		"data": fiber.Map{
			"vendor":                vendor,
			"purchase_orders_count": poCount,
			"materials_supplied":    supplied,
		},
	})
}

func (c *VendorController) UpdateVendor(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid vendor id"})
	}

	var vendor models.Vendor
	if err := c.DB.First(&vendor, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Vendor not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var input vendorInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	err = c.DB.Transaction(func(tx *gorm.DB) error {
		updates := map[string]interface{}{}
		if input.VendorName != "" {
			updates["vendor_name"] = input.VendorName
		}
		if input.VendorEmail != "" {
			updates["vendor_email"] = input.VendorEmail
		}
		if input.VendorPhone != "" {
			updates["vendor_phone"] = input.VendorPhone
		}
		if len(updates) > 0 {
			if err := tx.Model(&vendor).Updates(updates).Error; err != nil {
				return err
			}
		}

		if input.Address == nil {
			return nil
		}
		address := models.Address{
			State:       input.Address.State,
			City:        input.Address.City,
			Pincode:     input.Address.Pincode,
			AddressLine: input.Address.AddressLine,
		}
		if vendor.VendorAddressID != nil {
			address.ID = *vendor.VendorAddressID
			return tx.Save(&address).Error
		}
		if err := tx.Create(&address).Error; err != nil {
			return err
		}
		return tx.Model(&vendor).Update("vendor_address", address.ID).Error
	})
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Vendor updated"})
}

// DeleteVendor refuses while purchase orders still reference the vendor.
func (c *VendorController) DeleteVendor(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid vendor id"})
	}

	var poCount int64
	c.DB.Model(&models.PurchaseOrder{}).Where("vendor = ?", id).Count(&poCount)
	if poCount > 0 {
		return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": "Vendor has purchase orders and cannot be deleted",
		})
	}

	var vendor models.Vendor
	if err := c.DB.First(&vendor, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Vendor not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	err = c.DB.Transaction(func(tx *gorm.DB) error {
		if vendor.VendorAddressID != nil {
			if err := tx.Delete(&models.Address{}, *vendor.VendorAddressID).Error; err != nil {
				return err
			}
		}
		return tx.Delete(&vendor).Error
	})
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Vendor deleted"})
}
