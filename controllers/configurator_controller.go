package controllers

import (
	"errors"
	"strings"

	"olympus-app/models"
	"olympus-app/services"

	"github.com/go-playground/validator"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// ConfiguratorController backs the pen builder: component configs are
// created piecewise (cap, barrel, nib, ink) and assembled into a Pen whose
// cost is the component roll-up.
type ConfiguratorController struct {
	DB *gorm.DB
}

func NewConfiguratorController(db *gorm.DB) *ConfiguratorController {
	return &ConfiguratorController{DB: db}
}

type materialInput struct {
	Name   string  `json:"name" validate:"required"`
	Weight float64 `json:"weight" validate:"required,gt=0"`
}

type designInput struct {
	Description string  `json:"description"`
	Font        string  `json:"font"`
	Colour      string  `json:"colour"`
	HexCode     string  `json:"hex_code"`
	Cost        float64 `json:"cost"`
}

type engravingInput struct {
	Font        string  `json:"font"`
	TypeName    string  `json:"type_name"`
	Description string  `json:"description"`
	Cost        float64 `json:"cost"`
}

type coatingInput struct {
	Colour  string `json:"colour" validate:"required"`
	HexCode string `json:"hex_code"`
	Type    string `json:"type"`
}

// createOrGetCoating reuses an identical coating row when one exists;
// coatings are a finite palette, not per-pen rows.
func createOrGetCoating(tx *gorm.DB, in coatingInput) (models.Coating, error) {
	var coating models.Coating
	err := tx.Where("colour = ? AND hex_code = ? AND type = ?",
		in.Colour, in.HexCode, in.Type).First(&coating).Error
	if err == nil {
		return coating, nil
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return coating, err
	}

	coating = models.Coating{Colour: in.Colour, HexCode: in.HexCode, Type: in.Type}
	err = tx.Create(&coating).Error
	return coating, err
}

// createMaterial prices a stone cut by weight x the per-gram rate.
func createMaterial(tx *gorm.DB, in materialInput) (models.Material, error) {
	material := models.Material{
		Name:   strings.ToLower(strings.TrimSpace(in.Name)),
		Weight: in.Weight,
		Cost:   in.Weight * services.StonePricePerGram(in.Name),
	}
	err := tx.Create(&material).Error
	return material, err
}

func createDesign(tx *gorm.DB, in designInput) (models.Design, error) {
	design := models.Design{
		Description: in.Description,
		Font:        in.Font,
		Colour:      in.Colour,
		HexCode:     in.HexCode,
		Cost:        in.Cost,
	}
	err := tx.Create(&design).Error
	return design, err
}

func createEngraving(tx *gorm.DB, in engravingInput) (models.Engraving, error) {
	engraving := models.Engraving{
		Font:        in.Font,
		TypeName:    in.TypeName,
		Description: in.Description,
		Cost:        in.Cost,
	}
	err := tx.Create(&engraving).Error
	return engraving, err
}

// ConfigureCap creates a cap config with its nested material, design,
// engraving and clip design. Cost rolls up from every part.
func (c *ConfiguratorController) ConfigureCap(ctx *fiber.Ctx) error {
	var input struct {
		Description string         `json:"description"`
		Material    materialInput  `json:"material" validate:"required"`
		Design      designInput    `json:"design"`
		Engraving   engravingInput `json:"engraving"`
		CoatingID   uint           `json:"coating_id"`
		Coating     *coatingInput  `json:"coating"`
		Clip        *struct {
			Description string         `json:"description"`
			Material    materialInput  `json:"material" validate:"required"`
			Design      designInput    `json:"design"`
			Engraving   engravingInput `json:"engraving"`
		} `json:"clip"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var cap models.CapConfig
	err := c.DB.Transaction(func(tx *gorm.DB) error {
		material, err := createMaterial(tx, input.Material)
		if err != nil {
			return err
		}
		design, err := createDesign(tx, input.Design)
		if err != nil {
			return err
		}
		engraving, err := createEngraving(tx, input.Engraving)
		if err != nil {
			return err
		}

		coatingID := input.CoatingID
		if input.Coating != nil {
			coating, err := createOrGetCoating(tx, *input.Coating)
			if err != nil {
				return err
			}
			coatingID = coating.CoatingID
		}

		cost := material.Cost + design.Cost + engraving.Cost

		var clipID uint
		if input.Clip != nil {
			clipMaterial, err := createMaterial(tx, input.Clip.Material)
			if err != nil {
				return err
			}
			clipDesign, err := createDesign(tx, input.Clip.Design)
			if err != nil {
				return err
			}
			clipEngraving, err := createEngraving(tx, input.Clip.Engraving)
			if err != nil {
				return err
			}
			clip := models.ClipDesign{
				Description: input.Clip.Description,
				MaterialID:  clipMaterial.ID,
				DesignID:    clipDesign.DesignID,
				EngravingID: clipEngraving.EngravingID,
				Cost:        clipMaterial.Cost + clipDesign.Cost + clipEngraving.Cost,
			}
			if err := tx.Create(&clip).Error; err != nil {
				return err
			}
			clipID = clip.ID
			cost += clip.Cost
		}

		cap = models.CapConfig{
			Description:  input.Description,
			MaterialID:   material.ID,
			DesignID:     design.DesignID,
			EngravingID:  engraving.EngravingID,
			CoatingID:    coatingID,
			ClipDesignID: clipID,
			Cost:         cost,
		}
		return tx.Create(&cap).Error
	})
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": "Cap configured", "data": cap})
}

func (c *ConfiguratorController) ConfigureBarrel(ctx *fiber.Ctx) error {
	var input struct {
		Description string         `json:"description"`
		Shape       string         `json:"shape"`
		GripType    string         `json:"grip_type"`
		Material    materialInput  `json:"material" validate:"required"`
		Design      designInput    `json:"design"`
		Engraving   engravingInput `json:"engraving"`
		CoatingID   uint           `json:"coating_id"`
		Coating     *coatingInput  `json:"coating"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var barrel models.BarrelConfig
	err := c.DB.Transaction(func(tx *gorm.DB) error {
		material, err := createMaterial(tx, input.Material)
		if err != nil {
			return err
		}
		design, err := createDesign(tx, input.Design)
		if err != nil {
			return err
		}
		engraving, err := createEngraving(tx, input.Engraving)
		if err != nil {
			return err
		}

		coatingID := input.CoatingID
		if input.Coating != nil {
			coating, err := createOrGetCoating(tx, *input.Coating)
			if err != nil {
				return err
			}
			coatingID = coating.CoatingID
		}

		barrel = models.BarrelConfig{
			Description: input.Description,
			Shape:       input.Shape,
			GripType:    input.GripType,
			MaterialID:  material.ID,
			DesignID:    design.DesignID,
			EngravingID: engraving.EngravingID,
			CoatingID:   coatingID,
			Cost:        material.Cost + design.Cost + engraving.Cost,
		}
		return tx.Create(&barrel).Error
	})
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": "Barrel configured", "data": barrel})
}

// ConfigureCoating registers a coating colour so caps and barrels can
// reference it by id. An identical existing coating is returned as-is.
func (c *ConfiguratorController) ConfigureCoating(ctx *fiber.Ctx) error {
	var input coatingInput
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	coating, err := createOrGetCoating(c.DB, input)
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": "Coating configured", "data": coating})
}

func (c *ConfiguratorController) ConfigureNib(ctx *fiber.Ctx) error {
	var input struct {
		Description string        `json:"description"`
		Size        string        `json:"size"`
		Material    materialInput `json:"material" validate:"required"`
		Design      designInput   `json:"design"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var nib models.NibConfig
	err := c.DB.Transaction(func(tx *gorm.DB) error {
		material, err := createMaterial(tx, input.Material)
		if err != nil {
			return err
		}
		design, err := createDesign(tx, input.Design)
		if err != nil {
			return err
		}

		nib = models.NibConfig{
			Description: input.Description,
			Size:        input.Size,
			MaterialID:  material.ID,
			DesignID:    design.DesignID,
			Cost:        material.Cost + design.Cost,
		}
		return tx.Create(&nib).Error
	})
	if err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": "Nib configured", "data": nib})
}

func (c *ConfiguratorController) ConfigureInk(ctx *fiber.Ctx) error {
	var input struct {
		TypeName    string  `json:"type_name" validate:"required"`
		Description string  `json:"description"`
		HexCode     string  `json:"hexcode"`
		Cost        float64 `json:"cost" validate:"gte=0"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	ink := models.InkConfig{
		TypeName:    input.TypeName,
		Description: input.Description,
		HexCode:     input.HexCode,
		Cost:        input.Cost,
	}
	if err := c.DB.Create(&ink).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": "Ink configured", "data": ink})
}

// CreatePen assembles a pen from component config ids. Cost is the sum of
// the component costs at assembly time.
func (c *ConfiguratorController) CreatePen(ctx *fiber.Ctx) error {
	var input struct {
		Pentype   string `json:"pentype" validate:"required"`
		NibTypeID uint   `json:"nibtype_id" validate:"required"`
		InkTypeID uint   `json:"ink_type_id" validate:"required"`
		CapTypeID uint   `json:"cap_type_id" validate:"required"`
		BarrelID  uint   `json:"barrel_id" validate:"required"`

		Model             string `json:"model"`
		BodyColor         string `json:"body_color"`
		BodyMaterial      string `json:"body_material"`
		BodyFinish        string `json:"body_finish"`
		TrimFinish        string `json:"trim_finish"`
		NibMaterial       string `json:"nib_material"`
		EngravingText     string `json:"engraving_text"`
		EngravingFont     string `json:"engraving_font"`
		EngravingLocation string `json:"engraving_location"`
	}
	if err := ctx.BodyParser(&input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	validate := validator.New()
	if err := validate.Struct(input); err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	var cap models.CapConfig
	if err := c.DB.First(&cap, "cap_type_id = ?", input.CapTypeID).Error; err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cap config not found"})
	}
	var barrel models.BarrelConfig
	if err := c.DB.First(&barrel, "barrel_id = ?", input.BarrelID).Error; err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Barrel config not found"})
	}
	var nib models.NibConfig
	if err := c.DB.First(&nib, "nibtype_id = ?", input.NibTypeID).Error; err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Nib config not found"})
	}
	var ink models.InkConfig
	if err := c.DB.First(&ink, "ink_type_id = ?", input.InkTypeID).Error; err != nil {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Ink config not found"})
	}

	pen := models.Pen{
		Pentype:   input.Pentype,
		NibTypeID: input.NibTypeID,
		InkTypeID: input.InkTypeID,
		CapTypeID: input.CapTypeID,
		BarrelID:  input.BarrelID,
		Cost:      cap.Cost + barrel.Cost + nib.Cost + ink.Cost,

		PenModel:          input.Model,
		BodyColor:         input.BodyColor,
		BodyMaterial:      input.BodyMaterial,
		BodyFinish:        input.BodyFinish,
		TrimFinish:        input.TrimFinish,
		NibMaterial:       input.NibMaterial,
		EngravingText:     input.EngravingText,
		EngravingFont:     input.EngravingFont,
		EngravingLocation: input.EngravingLocation,
	}
	if err := c.DB.Create(&pen).Error; err != nil {
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{"success": true, "message": "Pen created", "data": pen})
}

// GetPenDetails shows the full configuration behind one pen.
func (c *ConfiguratorController) GetPenDetails(ctx *fiber.Ctx) error {
	penID := ctx.QueryInt("pen_id")
	if penID <= 0 {
		return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "pen_id is required"})
	}

	details, err := penDetails(c.DB, uint(penID))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ctx.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Pen not found"})
		}
		return ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": err.Error()})
	}

	return ctx.Status(fiber.StatusOK).JSON(fiber.Map{"success": true, "message": "Pen found", "data": details})
}

// penDetails resolves a pen's component rows into one nested view. Shared by
// the quote, production and shipping screens.
func penDetails(db *gorm.DB, penID uint) (fiber.Map, error) {
	var pen models.Pen
	if err := db.First(&pen, "pen_id = ?", penID).Error; err != nil {
		return nil, err
	}

	details := fiber.Map{
		"pen_id":             pen.PenID,
		"pentype":            pen.Pentype,
		"cost":               pen.Cost,
		"model":              pen.PenModel,
		"body_color":         pen.BodyColor,
		"body_material":      pen.BodyMaterial,
		"body_finish":        pen.BodyFinish,
		"trim_finish":        pen.TrimFinish,
		"nib_material":       pen.NibMaterial,
		"engraving_text":     pen.EngravingText,
		"engraving_font":     pen.EngravingFont,
		"engraving_location": pen.EngravingLocation,
	}

	var cap models.CapConfig
	if err := db.First(&cap, "cap_type_id = ?", pen.CapTypeID).Error; err == nil {
		capView := fiber.Map{"description": cap.Description, "cost": cap.Cost}
		var material models.Material
		if err := db.First(&material, cap.MaterialID).Error; err == nil {
			capView["material"] = material
		}
		var clip models.ClipDesign
		if err := db.First(&clip, cap.ClipDesignID).Error; err == nil {
			capView["clip"] = clip
		}
		details["cap"] = capView
	}

	var barrel models.BarrelConfig
	if err := db.First(&barrel, "barrel_id = ?", pen.BarrelID).Error; err == nil {
		barrelView := fiber.Map{
			"description": barrel.Description,
			"shape":       barrel.Shape,
			"grip_type":   barrel.GripType,
			"cost":        barrel.Cost,
		}
		var material models.Material
		if err := db.First(&material, barrel.MaterialID).Error; err == nil {
			barrelView["material"] = material
		}
		details["barrel"] = barrelView
	}

	var nib models.NibConfig
	if err := db.First(&nib, "nibtype_id = ?", pen.NibTypeID).Error; err == nil {
		nibView := fiber.Map{"description": nib.Description, "size": nib.Size, "cost": nib.Cost}
		var material models.Material
		if err := db.First(&material, nib.MaterialID).Error; err == nil {
			nibView["material"] = material
		}
		details["nib"] = nibView
	}

	var ink models.InkConfig
	if err := db.First(&ink, "ink_type_id = ?", pen.InkTypeID).Error; err == nil {
		details["ink"] = ink
	}

	return details, nil
}
