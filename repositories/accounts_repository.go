package repositories

import (
	"gorm.io/gorm"
)

type AccountsRepository struct {
	db *gorm.DB
}

func NewAccountsRepository(db *gorm.DB) *AccountsRepository {
	return &AccountsRepository{db}
}

type CategoryBreakdown struct {
	Category   string  `json:"category"`
	Amount     float64 `json:"amount"`
	Count      int     `json:"count"`
	Percentage float64 `json:"percentage"`
}

// ExpenseBreakdown groups completed outgoing transactions by category for a
// date window. Percentages are filled against the window total.
func (r *AccountsRepository) ExpenseBreakdown(startDate, endDate string) ([]CategoryBreakdown, error) {
	sql := `select category, sum(amount) as amount, count(*) as count
	from transactions
	where status = 'completed'
	and transaction_type in ('expense', 'payment_made')
	and transaction_date between ? and ?
	group by category
	order by amount desc`

	var rows []CategoryBreakdown
	if err := r.db.Raw(sql, startDate, endDate).Scan(&rows).Error; err != nil {
		return nil, err
	}

	var total float64
	for _, row := range rows {
		total += row.Amount
	}
	if total > 0 {
		for i := range rows {
			rows[i].Percentage = rows[i].Amount / total * 100
		}
	}
	return rows, nil
}

type MonthlyTrend struct {
	Month    string  `json:"month"`
	Revenue  float64 `json:"revenue"`
	Expenses float64 `json:"expenses"`
	Profit   float64 `json:"profit"`
}

// MonthlyTrends returns revenue/expense totals per month since startDate.
func (r *AccountsRepository) MonthlyTrends(startDate string) ([]MonthlyTrend, error) {
	sql := `select to_char(transaction_date, 'YYYY-MM') as month,
	sum(case when transaction_type in ('income', 'payment_received') then amount else 0 end) as revenue,
	sum(case when transaction_type in ('expense', 'payment_made') then amount else 0 end) as expenses
	from transactions
	where status = 'completed' and transaction_date >= ?
	group by to_char(transaction_date, 'YYYY-MM')
	order by month`

	var rows []MonthlyTrend
	if err := r.db.Raw(sql, startDate).Scan(&rows).Error; err != nil {
		return nil, err
	}
	for i := range rows {
		rows[i].Profit = rows[i].Revenue - rows[i].Expenses
	}
	return rows, nil
}

type TopCustomer struct {
	CustomerID       uint    `json:"customer_id"`
	CustomerName     string  `json:"customer_name"`
	TotalAmount      float64 `json:"total_amount"`
	TransactionCount int     `json:"transaction_count"`
}

func (r *AccountsRepository) TopCustomers(limit int) ([]TopCustomer, error) {
	sql := `select t.customer_id, c.first_name || ' ' || c.last_name as customer_name,
	sum(t.amount) as total_amount, count(*) as transaction_count
	from transactions t
	inner join customers c on t.customer_id = c.id
	where t.status = 'completed'
	and t.transaction_type in ('income', 'payment_received')
	group by t.customer_id, c.first_name, c.last_name
	order by total_amount desc
	limit ?`

	var rows []TopCustomer
	if err := r.db.Raw(sql, limit).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

type TopVendor struct {
	VendorID         uint    `json:"vendor_id"`
	VendorName       string  `json:"vendor_name"`
	TotalAmount      float64 `json:"total_amount"`
	TransactionCount int     `json:"transaction_count"`
}

func (r *AccountsRepository) TopVendors(limit int) ([]TopVendor, error) {
	sql := `select t.vendor_id, v.vendor_name,
	sum(t.amount) as total_amount, count(*) as transaction_count
	from transactions t
	inner join vendors v on t.vendor_id = v.id
	where t.status = 'completed'
	and t.transaction_type in ('expense', 'payment_made')
	group by t.vendor_id, v.vendor_name
	order by total_amount desc
	limit ?`

	var rows []TopVendor
	if err := r.db.Raw(sql, limit).Scan(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

type PeriodTotals struct {
	Revenue  float64 `json:"revenue"`
	Expenses float64 `json:"expenses"`
}

// PeriodTotals sums completed transactions inside a date window.
func (r *AccountsRepository) PeriodTotals(startDate, endDate string) (PeriodTotals, error) {
	sql := `select
	coalesce(sum(case when transaction_type in ('income', 'payment_received') then amount else 0 end), 0) as revenue,
	coalesce(sum(case when transaction_type in ('expense', 'payment_made') then amount else 0 end), 0) as expenses
	from transactions
	where status = 'completed' and transaction_date between ? and ?`

	var totals PeriodTotals
	if err := r.db.Raw(sql, startDate, endDate).Scan(&totals).Error; err != nil {
		return PeriodTotals{}, err
	}
	return totals, nil
}

// PendingReceivables totals unpaid, uncancelled work orders.
func (r *AccountsRepository) PendingReceivables() (float64, error) {
	var total float64
	sql := `select coalesce(sum(grand_total), 0)
	from work_orders
	where is_paid = false and status <> 'cancelled'`
	if err := r.db.Raw(sql).Scan(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}

// PendingPayables totals purchase orders not yet received.
func (r *AccountsRepository) PendingPayables() (float64, error) {
	var total float64
	sql := `select coalesce(sum(total_cost), 0)
	from purchase_orders
	where is_received = false`
	if err := r.db.Raw(sql).Scan(&total).Error; err != nil {
		return 0, err
	}
	return total, nil
}
