package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"sparepos/m/domain"
)

// ItemDetail is a line item joined with its inventory part for display.
type ItemDetail struct {
	ID          int64   `db:"id" json:"id"`
	InventoryID int64   `db:"inventory_id" json:"inventory_id"`
	PartCode    string  `db:"part_code" json:"part_code"`
	ItemName    string  `db:"item_name" json:"item_name"`
	Quantity    int64   `db:"quantity" json:"quantity"`
	UnitPrice   float64 `db:"unit_price" json:"unit_price"`
	TotalPrice  float64 `db:"total_price" json:"total_price"`
}

type SaleDetail struct {
	domain.Sale
	CustomerName  *string          `db:"customer_name" json:"customer_name,omitempty"`
	CustomerPhone *string          `db:"customer_phone" json:"customer_phone,omitempty"`
	Items         []ItemDetail     `json:"items"`
	Payments      []domain.Payment `json:"payments"`
}

type PurchaseDetail struct {
	domain.Purchase
	SupplierName  *string          `db:"supplier_name" json:"supplier_name,omitempty"`
	SupplierPhone *string          `db:"supplier_phone" json:"supplier_phone,omitempty"`
	Items         []ItemDetail     `json:"items"`
	Payments      []domain.Payment `json:"payments"`
}

// GetSale loads one sale with its line items and payment ledger.
func (e *Engine) GetSale(ctx context.Context, id int64) (SaleDetail, error) {
	var detail SaleDetail
	err := e.db.GetContext(ctx, &detail, `
		SELECT s.id, s.invoice_number, s.customer_id, s.sale_date, s.subtotal,
		       s.discount, s.tax, s.total_amount, s.payment_method,
		       s.payment_status, s.paid_amount, s.balance, s.created_at,
		       c.name AS customer_name, c.phone AS customer_phone
		  FROM sales s
		  LEFT JOIN customers c ON c.id = s.customer_id
		 WHERE s.id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return SaleDetail{}, fmt.Errorf("sale %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return SaleDetail{}, fmt.Errorf("load sale: %w", err)
	}

	if err := e.db.SelectContext(ctx, &detail.Items, `
		SELECT si.id, si.inventory_id, i.part_code, i.name AS item_name,
		       si.quantity, si.unit_price, si.total_price
		  FROM sale_items si
		  JOIN inventory i ON i.id = si.inventory_id
		 WHERE si.sale_id = ?`, id); err != nil {
		return SaleDetail{}, fmt.Errorf("load sale items: %w", err)
	}
	if err := e.db.SelectContext(ctx, &detail.Payments, `
		SELECT id, sale_id, purchase_id, amount, payment_method, payment_date, notes
		  FROM payments WHERE sale_id = ? ORDER BY payment_date`, id); err != nil {
		return SaleDetail{}, fmt.Errorf("load sale payments: %w", err)
	}
	return detail, nil
}

// GetPurchase loads one purchase with its line items and payment ledger.
func (e *Engine) GetPurchase(ctx context.Context, id int64) (PurchaseDetail, error) {
	var detail PurchaseDetail
	err := e.db.GetContext(ctx, &detail, `
		SELECT p.id, p.invoice_number, p.supplier_id, p.purchase_date, p.subtotal,
		       p.discount, p.tax, p.total_amount, p.payment_method,
		       p.payment_status, p.paid_amount, p.balance, p.notes, p.created_at,
		       s.name AS supplier_name, s.phone AS supplier_phone
		  FROM purchases p
		  LEFT JOIN suppliers s ON s.id = p.supplier_id
		 WHERE p.id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		return PurchaseDetail{}, fmt.Errorf("purchase %d: %w", id, ErrNotFound)
	}
	if err != nil {
		return PurchaseDetail{}, fmt.Errorf("load purchase: %w", err)
	}

	if err := e.db.SelectContext(ctx, &detail.Items, `
		SELECT pi.id, pi.inventory_id, i.part_code, i.name AS item_name,
		       pi.quantity, pi.unit_price, pi.total_price
		  FROM purchase_items pi
		  JOIN inventory i ON i.id = pi.inventory_id
		 WHERE pi.purchase_id = ?`, id); err != nil {
		return PurchaseDetail{}, fmt.Errorf("load purchase items: %w", err)
	}
	if err := e.db.SelectContext(ctx, &detail.Payments, `
		SELECT id, sale_id, purchase_id, amount, payment_method, payment_date, notes
		  FROM payments WHERE purchase_id = ? ORDER BY payment_date`, id); err != nil {
		return PurchaseDetail{}, fmt.Errorf("load purchase payments: %w", err)
	}
	return detail, nil
}
