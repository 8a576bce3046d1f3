package models

import "time"

// Component tables keep the column names of the original storefront schema
// (design_id, nibtype_id, cap_type_id, ...) so exports stay compatible.

type Material struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	CreatedAt time.Time `json:"created_at"`
	Name      string    `json:"name"`
	Weight    float64   `json:"weight"` // grams used per unit
	Cost      float64   `json:"cost"`
}

type Design struct {
	DesignID    uint    `json:"design_id" gorm:"primaryKey;column:design_id"`
	Description string  `json:"description"`
	Font        string  `json:"font"`
	Colour      string  `json:"colour"`
	HexCode     string  `json:"hex_code"`
	Cost        float64 `json:"cost"`
}

type Engraving struct {
	EngravingID uint    `json:"engraving_id" gorm:"primaryKey;column:engraving_id"`
	Font        string  `json:"font"`
	TypeName    string  `json:"type_name"`
	Description string  `json:"description"`
	Cost        float64 `json:"cost"`
}

type Coating struct {
	CoatingID uint   `json:"coating_id" gorm:"primaryKey;column:coating_id"`
	Colour    string `json:"colour"`
	HexCode   string `json:"hex_code"`
	Type      string `json:"type"`
}

type ClipDesign struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	CreatedAt   time.Time `json:"created_at"`
	Description string    `json:"description"`
	MaterialID  uint      `json:"material" gorm:"column:material"`
	DesignID    uint      `json:"design" gorm:"column:design"`
	EngravingID uint      `json:"engraving" gorm:"column:engraving"`
	Cost        float64   `json:"cost"`
}

type CapConfig struct {
	CapTypeID    uint    `json:"cap_type_id" gorm:"primaryKey;column:cap_type_id"`
	Description  string  `json:"description"`
	MaterialID   uint    `json:"material_id"`
	DesignID     uint    `json:"design_id"`
	EngravingID  uint    `json:"engraving_id"`
	CoatingID    uint    `json:"coating_id"`
	ClipDesignID uint    `json:"clip_design" gorm:"column:clip_design"`
	Cost         float64 `json:"cost"`
}

type BarrelConfig struct {
	BarrelID    uint    `json:"barrel_id" gorm:"primaryKey;column:barrel_id"`
	Description string  `json:"description"`
	Shape       string  `json:"shape"`
	GripType    string  `json:"grip_type"`
	MaterialID  uint    `json:"material_id"`
	DesignID    uint    `json:"design_id"`
	EngravingID uint    `json:"engraving_id"`
	CoatingID   uint    `json:"coating_id"`
	Cost        float64 `json:"cost"`
}

type NibConfig struct {
	NibTypeID   uint    `json:"nibtype_id" gorm:"primaryKey;column:nibtype_id"`
	Description string  `json:"description"`
	Size        string  `json:"size"`
	MaterialID  uint    `json:"material_id"`
	DesignID    uint    `json:"design_id"`
	Cost        float64 `json:"cost"`
}

type InkConfig struct {
	InkTypeID   uint    `json:"ink_type_id" gorm:"primaryKey;column:ink_type_id"`
	TypeName    string  `json:"type_name"`
	Description string  `json:"description"`
	HexCode     string  `json:"hexcode" gorm:"column:hexcode"`
	Cost        float64 `json:"cost"`
}

// Pen is an assembled configuration. Cost is the component roll-up; the
// display fields mirror what the 3D configurator shows.
type Pen struct {
	PenID     uint      `json:"pen_id" gorm:"primaryKey;column:pen_id"`
	CreatedAt time.Time `json:"created_at"`
	Pentype   string    `json:"pentype"`
	NibTypeID uint      `json:"nibtype_id" gorm:"column:nibtype_id"`
	InkTypeID uint      `json:"ink_type_id"`
	CapTypeID uint      `json:"cap_type_id"`
	BarrelID  uint      `json:"barrel_id"`
	Cost      float64   `json:"cost"`

	PenModel          string `json:"model" gorm:"column:model"`
	BodyColor         string `json:"body_color"`
	BodyMaterial      string `json:"body_material"`
	BodyFinish        string `json:"body_finish"`
	TrimFinish        string `json:"trim_finish"`
	NibMaterial       string `json:"nib_material"`
	EngravingText     string `json:"engraving_text"`
	EngravingFont     string `json:"engraving_font"`
	EngravingLocation string `json:"engraving_location"`
}
