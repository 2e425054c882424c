package order

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"

	"sparepos/m/domain"
)

// orderKind parameterizes the engine over the two order variants. Sales and
// purchases are structurally identical; they differ in table names, number
// prefix, counterparty column and the direction of the stock effect.
type orderKind struct {
	name         string
	table        string
	itemsTable   string
	orderColumn  string // FK column in items/payments tables
	partyColumn  string
	numberPrefix string
	stockDelta   int64 // -1 for sales, +1 for purchases
	hasNotes     bool
}

var (
	saleKind = orderKind{
		name:        "sale",
		table:       "sales",
		itemsTable:  "sale_items",
		orderColumn: "sale_id",
		partyColumn: "customer_id",
		stockDelta:  -1,
	}
	purchaseKind = orderKind{
		name:         "purchase",
		table:        "purchases",
		itemsTable:   "purchase_items",
		orderColumn:  "purchase_id",
		partyColumn:  "supplier_id",
		numberPrefix: "PO-",
		stockDelta:   1,
		hasNotes:     true,
	}
)

// LineItem is one quantity/price pair of an order request. The unit price is
// frozen into the item row at creation; later inventory price changes do not
// affect recorded orders.
type LineItem struct {
	InventoryID int64           `json:"inventory_id"`
	Quantity    int64           `json:"quantity"`
	UnitPrice   decimal.Decimal `json:"unit_price"`
}

// Request describes an order to be committed as one atomic unit.
type Request struct {
	CounterpartyID  *int64          `json:"counterparty_id,omitempty"`
	Items           []LineItem      `json:"items"`
	Discount        decimal.Decimal `json:"discount"`
	DiscountPercent bool            `json:"discount_percent"`
	PaymentMethod   string          `json:"payment_method"`
	AmountTendered  decimal.Decimal `json:"amount_tendered"`
	Notes           string          `json:"notes,omitempty"`
}

// Result reports the committed order with all derived amounts.
type Result struct {
	ID         int64           `json:"id"`
	Number     string          `json:"number"`
	Subtotal   decimal.Decimal `json:"subtotal"`
	Discount   decimal.Decimal `json:"discount"`
	Tax        decimal.Decimal `json:"tax"`
	Total      decimal.Decimal `json:"total"`
	PaidAmount decimal.Decimal `json:"paid_amount"`
	Balance    decimal.Decimal `json:"balance"`
	Change     decimal.Decimal `json:"change"`
	Status     string          `json:"status"`
}

// Engine commits sales and purchases as atomic units: header row, item rows,
// optional initial payment row and the inventory quantity effects all succeed
// or fail together.
type Engine struct {
	db      *sqlx.DB
	taxRate decimal.Decimal
	now     func() time.Time
}

func NewEngine(db *sqlx.DB, taxRate decimal.Decimal) *Engine {
	return &Engine{db: db, taxRate: taxRate, now: time.Now}
}

func (e *Engine) CreateSale(ctx context.Context, req Request) (Result, error) {
	return e.create(ctx, saleKind, req)
}

func (e *Engine) CreatePurchase(ctx context.Context, req Request) (Result, error) {
	return e.create(ctx, purchaseKind, req)
}

// UpdateSale replaces the sale's items wholesale and re-derives the header.
// The invoice number and amount already paid are kept.
func (e *Engine) UpdateSale(ctx context.Context, id int64, req Request) (int64, error) {
	return e.update(ctx, saleKind, id, req)
}

func (e *Engine) UpdatePurchase(ctx context.Context, id int64, req Request) (int64, error) {
	return e.update(ctx, purchaseKind, id, req)
}

func (e *Engine) DeleteSale(ctx context.Context, id int64) error {
	return e.delete(ctx, saleKind, id)
}

func (e *Engine) DeletePurchase(ctx context.Context, id int64) error {
	return e.delete(ctx, purchaseKind, id)
}

// RecordSalePayment appends a payment to the sale's ledger and re-derives the
// header's paid amount, balance and status. Returns the new balance.
func (e *Engine) RecordSalePayment(ctx context.Context, id int64, amount decimal.Decimal, method, date, notes string) (decimal.Decimal, error) {
	return e.recordPayment(ctx, saleKind, id, amount, method, date, notes)
}

func (e *Engine) RecordPurchasePayment(ctx context.Context, id int64, amount decimal.Decimal, method, date, notes string) (decimal.Decimal, error) {
	return e.recordPayment(ctx, purchaseKind, id, amount, method, date, notes)
}

// computeTotals derives the monetary fields: discount applies before tax,
// total = subtotal - discount + tax. A flat discount is clamped to the
// subtotal, a percentage discount to 100%.
func (e *Engine) computeTotals(items []LineItem, discount decimal.Decimal, percent bool) (subtotal, discountAmt, tax, total decimal.Decimal, err error) {
	if len(items) == 0 {
		err = ErrEmptyOrder
		return
	}
	for _, it := range items {
		if it.Quantity <= 0 || it.UnitPrice.IsNegative() {
			err = fmt.Errorf("inventory %d: %w", it.InventoryID, ErrInvalidQuantityOrPrice)
			return
		}
		subtotal = subtotal.Add(it.UnitPrice.Mul(decimal.NewFromInt(it.Quantity)))
	}

	if discount.IsNegative() {
		discount = decimal.Zero
	}
	if percent {
		if discount.GreaterThan(decimal.NewFromInt(100)) {
			discount = decimal.NewFromInt(100)
		}
		discountAmt = subtotal.Mul(discount).Div(decimal.NewFromInt(100))
	} else {
		discountAmt = decimal.Min(discount, subtotal)
	}

	tax = subtotal.Sub(discountAmt).Mul(e.taxRate)
	total = subtotal.Sub(discountAmt).Add(tax)
	return
}

// resolvePayment applies the payment rules at creation time. Credit orders
// start unpaid. A sale must be tendered in full; change is returned for the
// excess. A purchase may be partially paid.
func resolvePayment(k orderKind, method string, tendered, total decimal.Decimal) (paid, balance, change decimal.Decimal, status string, err error) {
	if tendered.IsNegative() {
		err = ErrInvalidPayment
		return
	}
	switch method {
	case domain.MethodCredit:
		paid = decimal.Zero
	case domain.MethodCash, domain.MethodCard:
		if k.stockDelta < 0 && tendered.LessThan(total) {
			err = ErrInsufficientPayment
			return
		}
		paid = decimal.Min(tendered, total)
		change = tendered.Sub(paid)
	default:
		err = fmt.Errorf("unknown payment method %q", method)
		return
	}
	balance = total.Sub(paid)
	status = statusFor(paid, balance)
	return
}

func statusFor(paid, balance decimal.Decimal) string {
	switch {
	case balance.Sign() <= 0:
		return domain.StatusPaid
	case paid.Sign() > 0:
		return domain.StatusPartial
	default:
		return domain.StatusPending
	}
}

func (e *Engine) create(ctx context.Context, k orderKind, req Request) (Result, error) {
	method := req.PaymentMethod
	if method == "" {
		method = domain.MethodCash
	}

	subtotal, discountAmt, tax, total, err := e.computeTotals(req.Items, req.Discount, req.DiscountPercent)
	if err != nil {
		return Result{}, err
	}
	paid, balance, change, status, err := resolvePayment(k, method, req.AmountTendered, total)
	if err != nil {
		return Result{}, err
	}

	tx, err := e.db.BeginTxx(ctx, nil)
	if err != nil {
		return Result{}, fmt.Errorf("begin %s: %w", k.name, err)
	}
	defer tx.Rollback()

	if err := e.applyStock(ctx, tx, k, req.Items); err != nil {
		return Result{}, err
	}

	id, number, err := e.insertHeader(ctx, tx, k, req, subtotal, discountAmt, tax, total, method, status, paid, balance)
	if err != nil {
		return Result{}, err
	}

	for _, it := range req.Items {
		lineTotal := it.UnitPrice.Mul(decimal.NewFromInt(it.Quantity))
		query := fmt.Sprintf(`INSERT INTO %s (%s, inventory_id, quantity, unit_price, total_price) VALUES (?, ?, ?, ?, ?)`, k.itemsTable, k.orderColumn)
		if _, err := tx.ExecContext(ctx, query, id, it.InventoryID, it.Quantity, it.UnitPrice.InexactFloat64(), lineTotal.InexactFloat64()); err != nil {
			return Result{}, fmt.Errorf("insert %s item: %w", k.name, err)
		}
	}

	if paid.Sign() > 0 {
		query := fmt.Sprintf(`INSERT INTO payments (%s, amount, payment_method) VALUES (?, ?, ?)`, k.orderColumn)
		if _, err := tx.ExecContext(ctx, query, id, paid.InexactFloat64(), method); err != nil {
			return Result{}, fmt.Errorf("insert initial payment: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return Result{}, fmt.Errorf("commit %s: %w", k.name, err)
	}

	return Result{
		ID:         id,
		Number:     number,
		Subtotal:   subtotal,
		Discount:   discountAmt,
		Tax:        tax,
		Total:      total,
		PaidAmount: paid,
		Balance:    balance,
		Change:     change,
		Status:     status,
	}, nil
}

// insertHeader assigns the order number and inserts the header row. On a
// number collision it regenerates once before giving up.
func (e *Engine) insertHeader(ctx context.Context, tx *sqlx.Tx, k orderKind, req Request, subtotal, discountAmt, tax, total decimal.Decimal, method, status string, paid, balance decimal.Decimal) (int64, string, error) {
	datePart := e.now().Format("20060102")

	query := fmt.Sprintf(`INSERT INTO %s (invoice_number, %s, subtotal, discount, tax, total_amount, payment_method, payment_status, paid_amount, balance) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`, k.table, k.partyColumn)
	args := func(number string) []any {
		return []any{number, req.CounterpartyID, subtotal.InexactFloat64(), discountAmt.InexactFloat64(), tax.InexactFloat64(), total.InexactFloat64(), method, status, paid.InexactFloat64(), balance.InexactFloat64()}
	}
	if k.hasNotes {
		query = fmt.Sprintf(`INSERT INTO %s (invoice_number, %s, subtotal, discount, tax, total_amount, payment_method, payment_status, paid_amount, balance, notes) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`, k.table, k.partyColumn)
		args = func(number string) []any {
			return []any{number, req.CounterpartyID, subtotal.InexactFloat64(), discountAmt.InexactFloat64(), tax.InexactFloat64(), total.InexactFloat64(), method, status, paid.InexactFloat64(), balance.InexactFloat64(), req.Notes}
		}
	}

	for attempt := 0; attempt < 2; attempt++ {
		number, err := nextNumber(ctx, tx, k, datePart)
		if err != nil {
			return 0, "", err
		}
		res, err := tx.ExecContext(ctx, query, args(number)...)
		if err != nil {
			if isUniqueViolation(err) {
				if attempt == 0 {
					continue
				}
				return 0, "", ErrDuplicateInvoiceNumber
			}
			return 0, "", fmt.Errorf("insert %s: %w", k.name, err)
		}
		id, err := res.LastInsertId()
		if err != nil {
			return 0, "", fmt.Errorf("read %s id: %w", k.name, err)
		}
		return id, number, nil
	}
	return 0, "", ErrDuplicateInvoiceNumber
}

// applyStock adjusts inventory quantities for the order's items: sales
// decrement (rejecting when stock is short), purchases increment. Runs inside
// the order's transaction so quantity effects are part of the atomic unit.
func (e *Engine) applyStock(ctx context.Context, tx *sqlx.Tx, k orderKind, items []LineItem) error {
	for _, it := range items {
		if k.stockDelta < 0 {
			var onHand int64
			err := tx.GetContext(ctx, &onHand, `SELECT quantity FROM inventory WHERE id = ?`, it.InventoryID)
			if errors.Is(err, sql.ErrNoRows) {
				return fmt.Errorf("inventory %d: %w", it.InventoryID, ErrNotFound)
			}
			if err != nil {
				return fmt.Errorf("load inventory %d: %w", it.InventoryID, err)
			}
			if onHand < it.Quantity {
				return fmt.Errorf("inventory %d has %d on hand: %w", it.InventoryID, onHand, ErrInsufficientStock)
			}
		}
		res, err := tx.ExecContext(ctx, `UPDATE inventory SET quantity = quantity + ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`, k.stockDelta*it.Quantity, it.InventoryID)
		if err != nil {
			return fmt.Errorf("adjust inventory %d: %w", it.InventoryID, err)
		}
		if n, _ := res.RowsAffected(); n == 0 {
			return fmt.Errorf("inventory %d: %w", it.InventoryID, ErrNotFound)
		}
	}
	return nil
}

// reverseStock undoes the stock effect of existing item rows before they are
// replaced or removed.
func (e *Engine) reverseStock(ctx context.Context, tx *sqlx.Tx, k orderKind, orderID int64) error {
	var existing []struct {
		InventoryID int64 `db:"inventory_id"`
		Quantity    int64 `db:"quantity"`
	}
	query := fmt.Sprintf(`SELECT inventory_id, quantity FROM %s WHERE %s = ?`, k.itemsTable, k.orderColumn)
	if err := tx.SelectContext(ctx, &existing, query, orderID); err != nil {
		return fmt.Errorf("load %s items: %w", k.name, err)
	}
	for _, it := range existing {
		if _, err := tx.ExecContext(ctx, `UPDATE inventory SET quantity = quantity - ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`, k.stockDelta*it.Quantity, it.InventoryID); err != nil {
			return fmt.Errorf("restore inventory %d: %w", it.InventoryID, err)
		}
	}
	return nil
}

func (e *Engine) update(ctx context.Context, k orderKind, id int64, req Request) (int64, error) {
	method := req.PaymentMethod
	if method == "" {
		method = domain.MethodCash
	}
	switch method {
	case domain.MethodCash, domain.MethodCard, domain.MethodCredit:
	default:
		return 0, fmt.Errorf("unknown payment method %q", method)
	}

	subtotal, discountAmt, tax, total, err := e.computeTotals(req.Items, req.Discount, req.DiscountPercent)
	if err != nil {
		return 0, err
	}

	tx, err := e.db.BeginTxx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("begin %s update: %w", k.name, err)
	}
	defer tx.Rollback()

	var paidAmount float64
	err = tx.GetContext(ctx, &paidAmount, fmt.Sprintf(`SELECT paid_amount FROM %s WHERE id = ?`, k.table), id)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, fmt.Errorf("%s %d: %w", k.name, id, ErrNotFound)
	}
	if err != nil {
		return 0, fmt.Errorf("load %s: %w", k.name, err)
	}

	if err := e.reverseStock(ctx, tx, k, id); err != nil {
		return 0, err
	}
	if _, err := tx.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s WHERE %s = ?`, k.itemsTable, k.orderColumn), id); err != nil {
		return 0, fmt.Errorf("delete %s items: %w", k.name, err)
	}
	if err := e.applyStock(ctx, tx, k, req.Items); err != nil {
		return 0, err
	}

	for _, it := range req.Items {
		lineTotal := it.UnitPrice.Mul(decimal.NewFromInt(it.Quantity))
		query := fmt.Sprintf(`INSERT INTO %s (%s, inventory_id, quantity, unit_price, total_price) VALUES (?, ?, ?, ?, ?)`, k.itemsTable, k.orderColumn)
		if _, err := tx.ExecContext(ctx, query, id, it.InventoryID, it.Quantity, it.UnitPrice.InexactFloat64(), lineTotal.InexactFloat64()); err != nil {
			return 0, fmt.Errorf("insert %s item: %w", k.name, err)
		}
	}

	paid := decimal.NewFromFloat(paidAmount)
	balance := total.Sub(paid)
	status := statusFor(paid, balance)

	query := fmt.Sprintf(`UPDATE %s SET %s = ?, subtotal = ?, discount = ?, tax = ?, total_amount = ?, payment_method = ?, payment_status = ?, balance = ? WHERE id = ?`, k.table, k.partyColumn)
	args := []any{req.CounterpartyID, subtotal.InexactFloat64(), discountAmt.InexactFloat64(), tax.InexactFloat64(), total.InexactFloat64(), method, status, balance.InexactFloat64(), id}
	if k.hasNotes {
		query = fmt.Sprintf(`UPDATE %s SET %s = ?, subtotal = ?, discount = ?, tax = ?, total_amount = ?, payment_method = ?, payment_status = ?, balance = ?, notes = ? WHERE id = ?`, k.table, k.partyColumn)
		args = []any{req.CounterpartyID, subtotal.InexactFloat64(), discountAmt.InexactFloat64(), tax.InexactFloat64(), total.InexactFloat64(), method, status, balance.InexactFloat64(), req.Notes, id}
	}
	res, err := tx.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, fmt.Errorf("update %s: %w", k.name, err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("update %s: %w", k.name, err)
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("commit %s update: %w", k.name, err)
	}
	return affected, nil
}

func (e *Engine) delete(ctx context.Context, k orderKind, id int64) error {
	tx, err := e.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin %s delete: %w", k.name, err)
	}
	defer tx.Rollback()

	if err := e.reverseStock(ctx, tx, k, id); err != nil {
		return err
	}

	res, err := tx.ExecContext(ctx, fmt.Sprintf(`DELETE FROM %s WHERE id = ?`, k.table), id)
	if err != nil {
		return fmt.Errorf("delete %s: %w", k.name, err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return fmt.Errorf("%s %d: %w", k.name, id, ErrNotFound)
	}

	return tx.Commit()
}

func (e *Engine) recordPayment(ctx context.Context, k orderKind, id int64, amount decimal.Decimal, method, date, notes string) (decimal.Decimal, error) {
	if amount.Sign() <= 0 {
		return decimal.Zero, ErrInvalidPayment
	}
	if method == "" {
		method = domain.MethodCash
	}
	if date == "" {
		date = e.now().Format("2006-01-02 15:04:05")
	}

	tx, err := e.db.BeginTxx(ctx, nil)
	if err != nil {
		return decimal.Zero, fmt.Errorf("begin payment: %w", err)
	}
	defer tx.Rollback()

	var totalAmount float64
	err = tx.GetContext(ctx, &totalAmount, fmt.Sprintf(`SELECT total_amount FROM %s WHERE id = ?`, k.table), id)
	if errors.Is(err, sql.ErrNoRows) {
		return decimal.Zero, fmt.Errorf("%s %d: %w", k.name, id, ErrNotFound)
	}
	if err != nil {
		return decimal.Zero, fmt.Errorf("load %s: %w", k.name, err)
	}

	// The ledger is the source of truth: the outstanding balance is derived
	// from total - SUM(payments) inside the transaction, not read back from the
	// header's REAL column.
	var paidSum float64
	if err := tx.GetContext(ctx, &paidSum, fmt.Sprintf(`SELECT COALESCE(SUM(amount), 0) FROM payments WHERE %s = ?`, k.orderColumn), id); err != nil {
		return decimal.Zero, fmt.Errorf("sum payments: %w", err)
	}
	total := decimal.NewFromFloat(totalAmount)
	outstanding := total.Sub(decimal.NewFromFloat(paidSum))

	if amount.GreaterThan(outstanding) {
		return decimal.Zero, ErrOverpayment
	}

	query := fmt.Sprintf(`INSERT INTO payments (%s, amount, payment_method, payment_date, notes) VALUES (?, ?, ?, ?, ?)`, k.orderColumn)
	if _, err := tx.ExecContext(ctx, query, id, amount.InexactFloat64(), method, date, notes); err != nil {
		return decimal.Zero, fmt.Errorf("insert payment: %w", err)
	}

	paid := decimal.NewFromFloat(paidSum).Add(amount)
	newBalance := total.Sub(paid)
	status := statusFor(paid, newBalance)

	if _, err := tx.ExecContext(ctx, fmt.Sprintf(`UPDATE %s SET paid_amount = ?, balance = ?, payment_status = ? WHERE id = ?`, k.table), paid.InexactFloat64(), newBalance.InexactFloat64(), status, id); err != nil {
		return decimal.Zero, fmt.Errorf("update %s balance: %w", k.name, err)
	}

	if err := tx.Commit(); err != nil {
		return decimal.Zero, fmt.Errorf("commit payment: %w", err)
	}
	return newBalance, nil
}
