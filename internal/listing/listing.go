package listing

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Result is the paginated envelope returned by every listing.
type Result struct {
	Total int64 `json:"total"`
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Data  any   `json:"data"`
}

// Service provides filtered, paginated read access over orders and inventory.
type Service struct {
	db *sqlx.DB
}

func NewService(db *sqlx.DB) *Service {
	return &Service{db: db}
}

func normalizePage(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	return page, limit
}

type SalesQuery struct {
	DateFrom   string
	DateTo     string
	Search     string
	Status     string
	CustomerID int64
	Page       int
	Limit      int
}

type SaleRow struct {
	ID            int64   `db:"id" json:"id"`
	InvoiceNumber string  `db:"invoice_number" json:"invoice_number"`
	SaleDate      string  `db:"sale_date" json:"sale_date"`
	TotalAmount   float64 `db:"total_amount" json:"total_amount"`
	PaymentMethod string  `db:"payment_method" json:"payment_method"`
	PaymentStatus string  `db:"payment_status" json:"payment_status"`
	PaidAmount    float64 `db:"paid_amount" json:"paid_amount"`
	Balance       float64 `db:"balance" json:"balance"`
	CustomerName  *string `db:"customer_name" json:"customer_name,omitempty"`
	ItemCount     int64   `db:"item_count" json:"item_count"`
}

// Sales lists sales matching the query, newest first.
func (s *Service) Sales(ctx context.Context, q SalesQuery) (Result, error) {
	var f Filter
	f.DateBetween("s.sale_date", q.DateFrom, q.DateTo)
	f.Search(q.Search, "s.invoice_number", "c.name")
	if q.Status != "" {
		f.Equals("s.payment_status", q.Status)
	}
	if q.CustomerID > 0 {
		f.Equals("s.customer_id", q.CustomerID)
	}
	where, args := f.Clause()

	var total int64
	countQuery := `SELECT COUNT(*) FROM sales s LEFT JOIN customers c ON c.id = s.customer_id` + where
	if err := s.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return Result{}, fmt.Errorf("count sales: %w", err)
	}

	page, limit := normalizePage(q.Page, q.Limit)
	rows := []SaleRow{}
	dataQuery := `
		SELECT s.id, s.invoice_number, s.sale_date, s.total_amount,
		       s.payment_method, s.payment_status, s.paid_amount, s.balance,
		       c.name AS customer_name,
		       (SELECT COUNT(*) FROM sale_items WHERE sale_id = s.id) AS item_count
		  FROM sales s
		  LEFT JOIN customers c ON c.id = s.customer_id` + where + `
		 ORDER BY s.sale_date DESC, s.id DESC
		 LIMIT ? OFFSET ?`
	if err := s.db.SelectContext(ctx, &rows, dataQuery, append(args, limit, (page-1)*limit)...); err != nil {
		return Result{}, fmt.Errorf("list sales: %w", err)
	}

	return Result{Total: total, Page: page, Limit: limit, Data: rows}, nil
}

type PurchasesQuery struct {
	DateFrom   string
	DateTo     string
	Search     string
	Status     string
	SupplierID int64
	Page       int
	Limit      int
}

type PurchaseRow struct {
	ID            int64   `db:"id" json:"id"`
	InvoiceNumber string  `db:"invoice_number" json:"invoice_number"`
	PurchaseDate  string  `db:"purchase_date" json:"purchase_date"`
	TotalAmount   float64 `db:"total_amount" json:"total_amount"`
	PaymentMethod string  `db:"payment_method" json:"payment_method"`
	PaymentStatus string  `db:"payment_status" json:"payment_status"`
	PaidAmount    float64 `db:"paid_amount" json:"paid_amount"`
	Balance       float64 `db:"balance" json:"balance"`
	SupplierName  *string `db:"supplier_name" json:"supplier_name,omitempty"`
	ItemCount     int64   `db:"item_count" json:"item_count"`
}

// Purchases lists purchase orders matching the query, newest first.
func (s *Service) Purchases(ctx context.Context, q PurchasesQuery) (Result, error) {
	var f Filter
	f.DateBetween("p.purchase_date", q.DateFrom, q.DateTo)
	f.Search(q.Search, "p.invoice_number", "sp.name")
	if q.Status != "" {
		f.Equals("p.payment_status", q.Status)
	}
	if q.SupplierID > 0 {
		f.Equals("p.supplier_id", q.SupplierID)
	}
	where, args := f.Clause()

	var total int64
	countQuery := `SELECT COUNT(*) FROM purchases p LEFT JOIN suppliers sp ON sp.id = p.supplier_id` + where
	if err := s.db.GetContext(ctx, &total, countQuery, args...); err != nil {
		return Result{}, fmt.Errorf("count purchases: %w", err)
	}

	page, limit := normalizePage(q.Page, q.Limit)
	rows := []PurchaseRow{}
	dataQuery := `
		SELECT p.id, p.invoice_number, p.purchase_date, p.total_amount,
		       p.payment_method, p.payment_status, p.paid_amount, p.balance,
		       sp.name AS supplier_name,
		       (SELECT COUNT(*) FROM purchase_items WHERE purchase_id = p.id) AS item_count
		  FROM purchases p
		  LEFT JOIN suppliers sp ON sp.id = p.supplier_id` + where + `
		 ORDER BY p.purchase_date DESC, p.id DESC
		 LIMIT ? OFFSET ?`
	if err := s.db.SelectContext(ctx, &rows, dataQuery, append(args, limit, (page-1)*limit)...); err != nil {
		return Result{}, fmt.Errorf("list purchases: %w", err)
	}

	return Result{Total: total, Page: page, Limit: limit, Data: rows}, nil
}

type InventoryQuery struct {
	Search      string
	CategoryID  int64
	BrandID     int64
	StockStatus string // "low" or "out"
	Page        int
	Limit       int
}

type InventoryRow struct {
	ID           int64   `db:"id" json:"id"`
	PartCode     string  `db:"part_code" json:"part_code"`
	Name         string  `db:"name" json:"name"`
	Quantity     int64   `db:"quantity" json:"quantity"`
	ReorderLevel int64   `db:"reorder_level" json:"reorder_level"`
	CostPrice    float64 `db:"cost_price" json:"cost_price"`
	SellingPrice float64 `db:"selling_price" json:"selling_price"`
	Barcode      string  `db:"barcode" json:"barcode,omitempty"`
	Category     *string `db:"category" json:"category,omitempty"`
	Brand        *string `db:"brand" json:"brand,omitempty"`
}

// Inventory lists inventory items matching the query, ordered by name.
func (s *Service) Inventory(ctx context.Context, q InventoryQuery) (Result, error) {
	var f Filter
	f.Search(q.Search, "i.name", "i.part_code", "i.barcode")
	if q.CategoryID > 0 {
		f.Equals("i.category_id", q.CategoryID)
	}
	if q.BrandID > 0 {
		f.Equals("i.brand_id", q.BrandID)
	}
	switch q.StockStatus {
	case "low":
		f.Raw("i.quantity <= i.reorder_level AND i.quantity > 0")
	case "out":
		f.Raw("i.quantity = 0")
	}
	where, args := f.Clause()

	var total int64
	if err := s.db.GetContext(ctx, &total, `SELECT COUNT(*) FROM inventory i`+where, args...); err != nil {
		return Result{}, fmt.Errorf("count inventory: %w", err)
	}

	page, limit := normalizePage(q.Page, q.Limit)
	rows := []InventoryRow{}
	dataQuery := `
		SELECT i.id, i.part_code, i.name, i.quantity, i.reorder_level,
		       i.cost_price, i.selling_price, i.barcode,
		       c.name AS category, b.name AS brand
		  FROM inventory i
		  LEFT JOIN categories c ON c.id = i.category_id
		  LEFT JOIN brands b ON b.id = i.brand_id` + where + `
		 ORDER BY i.name
		 LIMIT ? OFFSET ?`
	if err := s.db.SelectContext(ctx, &rows, dataQuery, append(args, limit, (page-1)*limit)...); err != nil {
		return Result{}, fmt.Errorf("list inventory: %w", err)
	}

	return Result{Total: total, Page: page, Limit: limit, Data: rows}, nil
}

type LowStockRow struct {
	ID           int64  `db:"id" json:"id"`
	PartCode     string `db:"part_code" json:"part_code"`
	Name         string `db:"name" json:"name"`
	Quantity     int64  `db:"quantity" json:"quantity"`
	ReorderLevel int64  `db:"reorder_level" json:"reorder_level"`
}

// LowStock returns items at or below their reorder level.
func (s *Service) LowStock(ctx context.Context) ([]LowStockRow, error) {
	rows := []LowStockRow{}
	err := s.db.SelectContext(ctx, &rows, `
		SELECT id, part_code, name, quantity, reorder_level
		  FROM inventory
		 WHERE quantity <= reorder_level
		 ORDER BY quantity ASC, name`)
	if err != nil {
		return nil, fmt.Errorf("low stock query: %w", err)
	}
	return rows, nil
}
