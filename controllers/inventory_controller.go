package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"olympus-app/models"
	"olympus-app/repositories"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"github.com/xuri/excelize/v2"
	"gorm.io/gorm"
)

type InventoryController struct {
	DB *gorm.DB
}

func NewInventoryController(db *gorm.DB) *InventoryController {
	return &InventoryController{DB: db}
}

// GetInventory lists every row, raw stones and finished pens alike.
func (c *InventoryController) GetInventory(ctx *fiber.Ctx) error {
	var rows []models.InventoryMaterial
	if err := c.DB.Order("material_name asc").Find(&rows).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "data": fiber.Map{"inventory": rows}})
}

// GetMaterials returns raw-material stock with the low-stock shortlist.
func (c *InventoryController) GetMaterials(ctx *fiber.Ctx) error {
	repo := repositories.NewInventoryRepository(c.DB)

	summary, err := repo.StockSummary()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}
	lowStock, err := repo.LowStock()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{
		"success": true,
		"data": fiber.Map{
			"materials": summary,
			"low_stock": lowStock,
		},
	})
}

// CreateMaterial adds a raw material row. Names are stored lowercased so BOM
// lookups match.
func (c *InventoryController) CreateMaterial(ctx *fiber.Ctx) error {
	var input struct {
		MaterialName string  `json:"material_name" validate:"required"`
		CostPGram    float64 `json:"cost_p_gram" validate:"required,gt=0"`
		Weight       float64 `json:"weight" validate:"gte=0"`
		VendorID     *uint   `json:"vendor"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	name := strings.ToLower(strings.TrimSpace(input.MaterialName))

	var count int64
	c.DB.Model(&models.InventoryMaterial{}).
		Where("material_name = ? AND is_pen = ?", name, false).
		Count(&count)
	if count > 0 {
		return ctx.Status(fiber.StatusConflict).JSON(fiber.Map{"error": "Material already exists"})
	}

	row := models.InventoryMaterial{
		MaterialName: name,
		CostPGram:    input.CostPGram,
		Weight:       input.Weight,
		VendorID:     input.VendorID,
	}
	if err := c.DB.Create(&row).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": "Material created", "data": row})
}

// UpdateMaterial adjusts cost, weight or vendor on an existing row.
func (c *InventoryController) UpdateMaterial(ctx *fiber.Ctx) error {
	id, err := ctx.ParamsInt("id")
	if err != nil || id <= 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid inventory id"})
	}

	var row models.InventoryMaterial
	if err := c.DB.First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Inventory row not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	var input struct {
		CostPGram *float64 `json:"cost_p_gram"`
		Weight    *float64 `json:"weight"`
		VendorID  *uint    `json:"vendor"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	updates := map[string]interface{}{}
	if input.CostPGram != nil {
		if *input.CostPGram <= 0 {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "cost_p_gram must be positive"})
		}
		updates["cost_p_gram"] = *input.CostPGram
	}
	if input.Weight != nil {
		if *input.Weight < 0 {
			return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "weight cannot be negative"})
		}
		updates["weight"] = *input.Weight
	}
	if input.VendorID != nil {
		updates["vendor"] = *input.VendorID
	}
	if len(updates) == 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Nothing to update"})
	}

	if err := c.DB.Model(&row).Updates(updates).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Material updated", "data": row})
}

// ExportExcel streams the raw-material stock as a workbook.
func (c *InventoryController) ExportExcel(ctx *fiber.Ctx) error {
	repo := repositories.NewInventoryRepository(c.DB)
	lines, err := repo.StockSummary()
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	f := excelize.NewFile()
	sheet := "Sheet1"

	f.SetCellValue(sheet, "A1", "Material")
	f.SetCellValue(sheet, "B1", "Weight (g)")
	f.SetCellValue(sheet, "C1", "Cost / gram")
	f.SetCellValue(sheet, "D1", "Stock Value")
	f.SetCellValue(sheet, "E1", "Incoming (g)")

	for i, line := range lines {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", i+2), line.MaterialName)
		f.SetCellValue(sheet, fmt.Sprintf("B%d", i+2), line.Weight)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", i+2), line.CostPGram)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", i+2), line.StockValue)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", i+2), line.IncomingGrams)
	}

	ctx.Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	ctx.Set("Content-Disposition", `attachment; filename="material-stock.xlsx"`)

	if err := f.Write(ctx.Response().BodyWriter()); err != nil {
		return ctx.Status(http.StatusInternalServerError).SendString("Failed to generate Excel")
	}

	return nil
}
