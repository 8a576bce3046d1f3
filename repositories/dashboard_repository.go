package repositories

import (
	"time"

	"olympus-app/models"

	"gorm.io/gorm"
)

type DashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) *DashboardRepository {
	return &DashboardRepository{db}
}

type StatusCount struct {
	Status string `json:"status"`
	Count  int64  `json:"count"`
}

type DashboardSummary struct {
	OrdersByStatus []StatusCount `json:"orders_by_status"`
	WIPCount       int64         `json:"wip_count"`
	PendingQA      int64         `json:"pending_qa"`
	Unshipped      int64         `json:"unshipped"`
	OpenReturns    int64         `json:"open_returns"`
	LowStockCount  int64         `json:"low_stock_count"`
	MonthRevenue   float64       `json:"month_revenue"`
}

func (r *DashboardRepository) Summary() (DashboardSummary, error) {
	var summary DashboardSummary

	if err := r.db.Model(&models.WorkOrder{}).
		Select("status, count(*) as count").
		Group("status").
		Scan(&summary.OrdersByStatus).Error; err != nil {
		return summary, err
	}
	for _, sc := range summary.OrdersByStatus {
		if sc.Status == models.StatusInProduction {
			summary.WIPCount = sc.Count
		}
	}

	if err := r.db.Model(&models.QARecord{}).
		Where("status = ?", models.QAStatusPending).
		Count(&summary.PendingQA).Error; err != nil {
		return summary, err
	}

	// Completed orders that have no shipping record yet.
	unshippedSQL := `select count(*)
	from work_orders w
	where w.status = ?
	and not exists (select 1 from shipping_records s where s.work_order_id = w.id)`
	if err := r.db.Raw(unshippedSQL, models.StatusCompleted).Scan(&summary.Unshipped).Error; err != nil {
		return summary, err
	}

	if err := r.db.Model(&models.Return{}).
		Where("status = ?", models.ReturnStatusRequested).
		Count(&summary.OpenReturns).Error; err != nil {
		return summary, err
	}

	if err := r.db.Model(&models.InventoryMaterial{}).
		Where("is_pen = ? AND weight < ?", false, models.LowStockThresholdGrams).
		Count(&summary.LowStockCount).Error; err != nil {
		return summary, err
	}

	now := time.Now()
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).Format("2006-01-02")
	monthEnd := now.Format("2006-01-02")
	totals, err := NewAccountsRepository(r.db).PeriodTotals(monthStart, monthEnd)
	if err != nil {
		return summary, err
	}
	summary.MonthRevenue = totals.Revenue

	return summary, nil
}
