package models

import "time"

const (
	TxTypeIncome          = "income"
	TxTypeExpense         = "expense"
	TxTypePaymentReceived = "payment_received"
	TxTypePaymentMade     = "payment_made"

	TxStatusCompleted = "completed"
	TxStatusPending   = "pending"
	TxStatusCancelled = "cancelled"

	RefTypeWorkOrder     = "work_order"
	RefTypePurchaseOrder = "purchase_order"
	RefTypeInvoice       = "invoice"
	RefTypeManual        = "manual"
)

// TxCategories are the ledger buckets the dashboard groups by.
var TxCategories = []string{
	"sales", "purchase_order", "labor", "shipping", "materials",
	"utilities", "rent", "salaries", "other",
}

var TxTypes = []string{
	TxTypeIncome, TxTypeExpense, TxTypePaymentReceived, TxTypePaymentMade,
}

var PaymentMethods = []string{"cash", "card", "bank_transfer", "credit", "cheque"}

// Transaction is the manual income/expense ledger. Deleting cancels instead
// of removing the row.
type Transaction struct {
	ID              uint      `json:"id" gorm:"primaryKey"`
	CreatedAt       time.Time `json:"created_at"`
	TransactionDate string    `json:"transaction_date" gorm:"type:date"`
	TransactionType string    `json:"transaction_type"`
	Category        string    `json:"category"`
	Amount          float64   `json:"amount"`
	Description     string    `json:"description"`
	ReferenceID     *uint     `json:"reference_id"`
	ReferenceType   string    `json:"reference_type"`
	PaymentMethod   string    `json:"payment_method"`
	CustomerID      *uint     `json:"customer_id"`
	VendorID        *uint     `json:"vendor_id"`
	Status          string    `json:"status" gorm:"default:completed"`
	Notes           string    `json:"notes"`
}
