package services

import (
	"errors"
	"fmt"
	"strings"

	"olympus-app/models"
	"olympus-app/types"

	"gorm.io/gorm"
)

// BOMService derives a pen's bill of materials and moves raw-material stock.
type BOMService struct {
	DB *gorm.DB
}

func NewBOMService(db *gorm.DB) *BOMService {
	return &BOMService{DB: db}
}

// PenMaterialWeights resolves the material rows behind a pen's cap, clip,
// barrel and nib and returns name -> grams per unit.
func (s *BOMService) PenMaterialWeights(penID uint) (types.GramMap, error) {
	var pen models.Pen
	if err := s.DB.First(&pen, "pen_id = ?", penID).Error; err != nil {
		return nil, err
	}

	materialIDs := make([]uint, 0, 4)

	var cap models.CapConfig
	if err := s.DB.First(&cap, "cap_type_id = ?", pen.CapTypeID).Error; err == nil {
		if cap.MaterialID > 0 {
			materialIDs = append(materialIDs, cap.MaterialID)
		}
		var clip models.ClipDesign
		if err := s.DB.First(&clip, "id = ?", cap.ClipDesignID).Error; err == nil && clip.MaterialID > 0 {
			materialIDs = append(materialIDs, clip.MaterialID)
		}
	}

	var barrel models.BarrelConfig
	if err := s.DB.First(&barrel, "barrel_id = ?", pen.BarrelID).Error; err == nil && barrel.MaterialID > 0 {
		materialIDs = append(materialIDs, barrel.MaterialID)
	}

	var nib models.NibConfig
	if err := s.DB.First(&nib, "nibtype_id = ?", pen.NibTypeID).Error; err == nil && nib.MaterialID > 0 {
		materialIDs = append(materialIDs, nib.MaterialID)
	}

	if len(materialIDs) == 0 {
		return types.GramMap{}, nil
	}

	var materials []models.Material
	if err := s.DB.Where("id IN ?", materialIDs).Find(&materials).Error; err != nil {
		return nil, err
	}

	weights := types.GramMap{}
	for _, m := range materials {
		key := strings.ToLower(m.Name)
		weights[key] += m.Weight
	}
	return weights, nil
}

type AvailabilityItem struct {
	Material       string  `json:"material"`
	RequestedGrams float64 `json:"requestedGrams"`
	AvailableGrams float64 `json:"availableGrams"`
	IsAvailable    bool    `json:"isAvailable"`
}

type AvailabilityResult struct {
	Items                []AvailabilityItem `json:"items"`
	UnavailableMaterials []string           `json:"unavailableMaterials"`
	AllAvailable         bool               `json:"allAvailable"`
}

// BuildAvailability compares per-unit gram requirements x count against the
// on-hand grams. Pure so the report logic is testable without a database.
func BuildAvailability(weights types.GramMap, count int, onHand map[string]float64) AvailabilityResult {
	if count <= 0 {
		count = 1
	}

	result := AvailabilityResult{AllAvailable: true}
	for material, perUnit := range weights {
		if perUnit <= 0 {
			continue
		}
		requested := perUnit * float64(count)
		available := onHand[strings.ToLower(material)]
		item := AvailabilityItem{
			Material:       material,
			RequestedGrams: requested,
			AvailableGrams: available,
			IsAvailable:    available >= requested,
		}
		if !item.IsAvailable {
			result.AllAvailable = false
			result.UnavailableMaterials = append(result.UnavailableMaterials, material)
		}
		result.Items = append(result.Items, item)
	}
	return result
}

// CheckAvailability loads the inventory rows for the requested materials and
// builds the sufficiency report.
func (s *BOMService) CheckAvailability(weights types.GramMap, count int) (AvailabilityResult, error) {
	names := make([]string, 0, len(weights))
	for name := range weights {
		names = append(names, strings.ToLower(name))
	}
	if len(names) == 0 {
		return AvailabilityResult{AllAvailable: true}, nil
	}

	var rows []models.InventoryMaterial
	if err := s.DB.Where("is_pen = ? AND material_name IN ?", false, names).Find(&rows).Error; err != nil {
		return AvailabilityResult{}, err
	}

	onHand := make(map[string]float64, len(rows))
	for _, row := range rows {
		onHand[strings.ToLower(row.MaterialName)] = row.Weight
	}

	return BuildAvailability(weights, count, onHand), nil
}

var ErrInsufficientStock = errors.New("insufficient material stock")

// DeductMaterials consumes grams-per-unit x count for every BOM entry. The
// guarded UPDATE keeps weight from going negative; callers run this inside a
// transaction so a failed line aborts the whole deduction.
func (s *BOMService) DeductMaterials(tx *gorm.DB, weights types.GramMap, count int) error {
	for material, perUnit := range weights {
		if perUnit <= 0 {
			continue
		}
		grams := perUnit * float64(count)
		res := tx.Model(&models.InventoryMaterial{}).
			Where("material_name = ? AND is_pen = ? AND weight >= ?", strings.ToLower(material), false, grams).
			Update("weight", gorm.Expr("weight - ?", grams))
		if res.Error != nil {
			return res.Error
		}
		if res.RowsAffected == 0 {
			return fmt.Errorf("%w: %s", ErrInsufficientStock, material)
		}
	}
	return nil
}

// ReturnMaterials puts defective units' grams back on the shelf.
func (s *BOMService) ReturnMaterials(tx *gorm.DB, weights types.GramMap, count int) error {
	for material, perUnit := range weights {
		if perUnit <= 0 {
			continue
		}
		grams := perUnit * float64(count)
		if err := tx.Model(&models.InventoryMaterial{}).
			Where("material_name = ? AND is_pen = ?", strings.ToLower(material), false).
			Update("weight", gorm.Expr("weight + ?", grams)).Error; err != nil {
			return err
		}
	}
	return nil
}
