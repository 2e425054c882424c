package domain

// Payment methods accepted at the counter.
const (
	MethodCash   = "cash"
	MethodCard   = "card"
	MethodCredit = "credit"
)

// Payment statuses derived from paid_amount and balance.
const (
	StatusPending = "pending"
	StatusPartial = "partial"
	StatusPaid    = "paid"
)

type Sale struct {
	ID            int64   `db:"id" json:"id"`
	InvoiceNumber string  `db:"invoice_number" json:"invoice_number"`
	CustomerID    *int64  `db:"customer_id" json:"customer_id,omitempty"`
	SaleDate      string  `db:"sale_date" json:"sale_date"`
	Subtotal      float64 `db:"subtotal" json:"subtotal"`
	Discount      float64 `db:"discount" json:"discount"`
	Tax           float64 `db:"tax" json:"tax"`
	TotalAmount   float64 `db:"total_amount" json:"total_amount"`
	PaymentMethod string  `db:"payment_method" json:"payment_method"`
	PaymentStatus string  `db:"payment_status" json:"payment_status"`
	PaidAmount    float64 `db:"paid_amount" json:"paid_amount"`
	Balance       float64 `db:"balance" json:"balance"`
	CreatedAt     string  `db:"created_at" json:"created_at"`
}

type Purchase struct {
	ID            int64   `db:"id" json:"id"`
	InvoiceNumber string  `db:"invoice_number" json:"invoice_number"`
	SupplierID    *int64  `db:"supplier_id" json:"supplier_id,omitempty"`
	PurchaseDate  string  `db:"purchase_date" json:"purchase_date"`
	Subtotal      float64 `db:"subtotal" json:"subtotal"`
	Discount      float64 `db:"discount" json:"discount"`
	Tax           float64 `db:"tax" json:"tax"`
	TotalAmount   float64 `db:"total_amount" json:"total_amount"`
	PaymentMethod string  `db:"payment_method" json:"payment_method"`
	PaymentStatus string  `db:"payment_status" json:"payment_status"`
	PaidAmount    float64 `db:"paid_amount" json:"paid_amount"`
	Balance       float64 `db:"balance" json:"balance"`
	Notes         string  `db:"notes" json:"notes,omitempty"`
	CreatedAt     string  `db:"created_at" json:"created_at"`
}

type Payment struct {
	ID            int64   `db:"id" json:"id"`
	SaleID        *int64  `db:"sale_id" json:"sale_id,omitempty"`
	PurchaseID    *int64  `db:"purchase_id" json:"purchase_id,omitempty"`
	Amount        float64 `db:"amount" json:"amount"`
	PaymentMethod string  `db:"payment_method" json:"payment_method"`
	PaymentDate   string  `db:"payment_date" json:"payment_date"`
	Notes         string  `db:"notes" json:"notes,omitempty"`
}
