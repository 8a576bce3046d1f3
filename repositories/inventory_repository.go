package repositories

import (
	"olympus-app/models"

	"gorm.io/gorm"
)

type InventoryRepository struct {
	db *gorm.DB
}

func NewInventoryRepository(db *gorm.DB) *InventoryRepository {
	return &InventoryRepository{db}
}

type LowStockMaterial struct {
	ID           uint    `json:"id"`
	MaterialName string  `json:"material_name"`
	Weight       float64 `json:"weight"`
}

// LowStock lists raw materials under the reorder threshold.
func (r *InventoryRepository) LowStock() ([]LowStockMaterial, error) {
	var rows []LowStockMaterial
	err := r.db.Model(&models.InventoryMaterial{}).
		Select("id, material_name, weight").
		Where("is_pen = ? AND weight < ?", false, models.LowStockThresholdGrams).
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	return rows, nil
}

type StockLine struct {
	ID            uint    `json:"id"`
	MaterialName  string  `json:"material_name"`
	Weight        float64 `json:"weight"`
	CostPGram     float64 `json:"cost_p_gram"`
	StockValue    float64 `json:"stock_value"`
	IncomingGrams float64 `json:"incoming_grams"`
}

// StockSummary values the raw-material shelf and attaches grams already on
// order but not yet received.
func (r *InventoryRepository) StockSummary() ([]StockLine, error) {
	sql := `select i.id, i.material_name, i.weight, i.cost_p_gram,
	i.weight * i.cost_p_gram as stock_value,
	coalesce(p.incoming, 0) as incoming_grams
	from inventory_materials i
	left join (
		select material, sum(quantity) as incoming
		from purchase_orders
		where is_received = false
		group by material
	) p on p.material = i.id
	where i.is_pen = false
	order by i.material_name`

	var rows []StockLine
	if err := r.db.Raw(sql).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}
