package order

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/shopspring/decimal"
	_ "modernc.org/sqlite"

	"sparepos/m/domain"
	"sparepos/m/internal/migrations"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := sqlx.Connect("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	// One connection: each sqlite :memory: connection is its own database.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })
	if _, err := db.Exec(`PRAGMA foreign_keys = ON`); err != nil {
		t.Fatalf("enable foreign keys: %v", err)
	}
	migrations.Run(db)

	seed := []string{
		`INSERT INTO customers (name, phone) VALUES ('Ali Hassan', '555-0101')`,
		`INSERT INTO suppliers (name, phone) VALUES ('Gulf Auto Parts', '555-0202')`,
		`INSERT INTO inventory (part_code, name, cost_price, selling_price, quantity, reorder_level) VALUES ('BRK-100', 'Brake Pad Set', 60, 100, 50, 5)`,
		`INSERT INTO inventory (part_code, name, cost_price, selling_price, quantity, reorder_level) VALUES ('FLT-050', 'Oil Filter', 20, 50, 20, 5)`,
	}
	for _, stmt := range seed {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("seed: %v", err)
		}
	}
	return db
}

func newTestEngine(t *testing.T, taxRate decimal.Decimal) (*Engine, *sqlx.DB) {
	t.Helper()
	db := newTestDB(t)
	return NewEngine(db, taxRate), db
}

func dec(s string) decimal.Decimal {
	d, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return d
}

func countRows(t *testing.T, db *sqlx.DB, table string) int64 {
	t.Helper()
	var n int64
	if err := db.Get(&n, `SELECT COUNT(*) FROM `+table); err != nil {
		t.Fatalf("count %s: %v", table, err)
	}
	return n
}

func stockOf(t *testing.T, db *sqlx.DB, inventoryID int64) int64 {
	t.Helper()
	var n int64
	if err := db.Get(&n, `SELECT quantity FROM inventory WHERE id = ?`, inventoryID); err != nil {
		t.Fatalf("stock of %d: %v", inventoryID, err)
	}
	return n
}

func TestCreateSaleDerivesTotals(t *testing.T) {
	e, db := newTestEngine(t, dec("0.15"))

	customerID := int64(1)
	res, err := e.CreateSale(context.Background(), Request{
		CounterpartyID: &customerID,
		Items: []LineItem{
			{InventoryID: 1, Quantity: 2, UnitPrice: dec("100")},
			{InventoryID: 2, Quantity: 1, UnitPrice: dec("50")},
		},
		Discount:       dec("20"),
		PaymentMethod:  domain.MethodCash,
		AmountTendered: dec("264.5"),
	})
	if err != nil {
		t.Fatalf("create sale: %v", err)
	}

	if !res.Subtotal.Equal(dec("250")) {
		t.Errorf("subtotal = %s, want 250", res.Subtotal)
	}
	if !res.Discount.Equal(dec("20")) {
		t.Errorf("discount = %s, want 20", res.Discount)
	}
	if !res.Tax.Equal(dec("34.5")) {
		t.Errorf("tax = %s, want 34.5", res.Tax)
	}
	if !res.Total.Equal(dec("264.5")) {
		t.Errorf("total = %s, want 264.5", res.Total)
	}
	if !res.PaidAmount.Equal(dec("264.5")) || !res.Balance.IsZero() {
		t.Errorf("paid = %s, balance = %s, want 264.5 and 0", res.PaidAmount, res.Balance)
	}
	if res.Status != domain.StatusPaid {
		t.Errorf("status = %q, want paid", res.Status)
	}

	// Invariant: total = subtotal - discount + tax.
	if !res.Total.Equal(res.Subtotal.Sub(res.Discount).Add(res.Tax)) {
		t.Error("total does not equal subtotal - discount + tax")
	}

	if n := countRows(t, db, "sale_items"); n != 2 {
		t.Errorf("sale_items rows = %d, want 2", n)
	}
	if n := countRows(t, db, "payments"); n != 1 {
		t.Errorf("payments rows = %d, want 1", n)
	}
	if got := stockOf(t, db, 1); got != 48 {
		t.Errorf("inventory 1 quantity = %d, want 48", got)
	}
	if got := stockOf(t, db, 2); got != 19 {
		t.Errorf("inventory 2 quantity = %d, want 19", got)
	}
}

func TestCreateSalePercentDiscount(t *testing.T) {
	e, _ := newTestEngine(t, dec("0.15"))

	res, err := e.CreateSale(context.Background(), Request{
		Items:           []LineItem{{InventoryID: 1, Quantity: 2, UnitPrice: dec("100")}},
		Discount:        dec("10"),
		DiscountPercent: true,
		PaymentMethod:   domain.MethodCredit,
	})
	if err != nil {
		t.Fatalf("create sale: %v", err)
	}
	// 200 - 20 = 180, tax 27, total 207.
	if !res.Discount.Equal(dec("20")) {
		t.Errorf("discount = %s, want 20", res.Discount)
	}
	if !res.Total.Equal(dec("207")) {
		t.Errorf("total = %s, want 207", res.Total)
	}
}

func TestCreateSaleDiscountClampedToSubtotal(t *testing.T) {
	e, _ := newTestEngine(t, decimal.Zero)

	res, err := e.CreateSale(context.Background(), Request{
		Items:         []LineItem{{InventoryID: 2, Quantity: 1, UnitPrice: dec("50")}},
		Discount:      dec("500"),
		PaymentMethod: domain.MethodCredit,
	})
	if err != nil {
		t.Fatalf("create sale: %v", err)
	}
	if !res.Discount.Equal(dec("50")) || !res.Total.IsZero() {
		t.Errorf("discount = %s, total = %s, want 50 and 0", res.Discount, res.Total)
	}
}

func TestCreateSaleEmptyItemsWritesNothing(t *testing.T) {
	e, db := newTestEngine(t, dec("0.15"))

	before := countRows(t, db, "sales")
	_, err := e.CreateSale(context.Background(), Request{PaymentMethod: domain.MethodCash})
	if !errors.Is(err, ErrEmptyOrder) {
		t.Fatalf("err = %v, want ErrEmptyOrder", err)
	}
	if after := countRows(t, db, "sales"); after != before {
		t.Errorf("sales rows changed from %d to %d", before, after)
	}
}

func TestCreateSaleInvalidQuantity(t *testing.T) {
	e, _ := newTestEngine(t, dec("0.15"))

	_, err := e.CreateSale(context.Background(), Request{
		Items:          []LineItem{{InventoryID: 1, Quantity: 0, UnitPrice: dec("100")}},
		PaymentMethod:  domain.MethodCash,
		AmountTendered: dec("115"),
	})
	if !errors.Is(err, ErrInvalidQuantityOrPrice) {
		t.Fatalf("err = %v, want ErrInvalidQuantityOrPrice", err)
	}
}

func TestCreateSaleInsufficientTender(t *testing.T) {
	e, db := newTestEngine(t, dec("0.15"))

	_, err := e.CreateSale(context.Background(), Request{
		Items:          []LineItem{{InventoryID: 1, Quantity: 1, UnitPrice: dec("100")}},
		PaymentMethod:  domain.MethodCash,
		AmountTendered: dec("100"), // total is 115 with tax
	})
	if !errors.Is(err, ErrInsufficientPayment) {
		t.Fatalf("err = %v, want ErrInsufficientPayment", err)
	}
	if got := stockOf(t, db, 1); got != 50 {
		t.Errorf("inventory 1 quantity = %d, want 50 (unchanged)", got)
	}
}

func TestCreateSaleCreditStartsPending(t *testing.T) {
	e, db := newTestEngine(t, dec("0.15"))

	res, err := e.CreateSale(context.Background(), Request{
		Items:         []LineItem{{InventoryID: 1, Quantity: 1, UnitPrice: dec("100")}},
		PaymentMethod: domain.MethodCredit,
	})
	if err != nil {
		t.Fatalf("create sale: %v", err)
	}
	if !res.PaidAmount.IsZero() || res.Status != domain.StatusPending {
		t.Errorf("paid = %s, status = %q, want 0 and pending", res.PaidAmount, res.Status)
	}
	if !res.Balance.Equal(res.Total) {
		t.Errorf("balance = %s, want %s", res.Balance, res.Total)
	}
	if n := countRows(t, db, "payments"); n != 0 {
		t.Errorf("payments rows = %d, want 0 for credit sale", n)
	}
}

func TestCreateSaleReturnsChange(t *testing.T) {
	e, _ := newTestEngine(t, decimal.Zero)

	res, err := e.CreateSale(context.Background(), Request{
		Items:          []LineItem{{InventoryID: 2, Quantity: 1, UnitPrice: dec("50")}},
		PaymentMethod:  domain.MethodCash,
		AmountTendered: dec("60"),
	})
	if err != nil {
		t.Fatalf("create sale: %v", err)
	}
	if !res.Change.Equal(dec("10")) {
		t.Errorf("change = %s, want 10", res.Change)
	}
	if !res.PaidAmount.Equal(dec("50")) {
		t.Errorf("paid = %s, want 50 (capped at total)", res.PaidAmount)
	}
}

func TestCreateSaleInsufficientStock(t *testing.T) {
	e, db := newTestEngine(t, dec("0.15"))

	before := countRows(t, db, "sales")
	_, err := e.CreateSale(context.Background(), Request{
		Items:         []LineItem{{InventoryID: 2, Quantity: 21, UnitPrice: dec("50")}},
		PaymentMethod: domain.MethodCredit,
	})
	if !errors.Is(err, ErrInsufficientStock) {
		t.Fatalf("err = %v, want ErrInsufficientStock", err)
	}
	if after := countRows(t, db, "sales"); after != before {
		t.Errorf("sales rows changed from %d to %d", before, after)
	}
}

func TestCreatePurchasePartialPayment(t *testing.T) {
	e, db := newTestEngine(t, decimal.Zero)

	supplierID := int64(1)
	res, err := e.CreatePurchase(context.Background(), Request{
		CounterpartyID: &supplierID,
		Items:          []LineItem{{InventoryID: 1, Quantity: 10, UnitPrice: dec("60")}},
		AmountTendered: dec("200"),
		Notes:          "restock order",
	})
	if err != nil {
		t.Fatalf("create purchase: %v", err)
	}
	if res.Status != domain.StatusPartial {
		t.Errorf("status = %q, want partial", res.Status)
	}
	if !res.Balance.Equal(dec("400")) {
		t.Errorf("balance = %s, want 400", res.Balance)
	}
	// Purchases default to cash when no method is given.
	var method string
	if err := db.Get(&method, `SELECT payment_method FROM purchases WHERE id = ?`, res.ID); err != nil {
		t.Fatalf("load purchase: %v", err)
	}
	if method != domain.MethodCash {
		t.Errorf("payment_method = %q, want cash", method)
	}
	if got := stockOf(t, db, 1); got != 60 {
		t.Errorf("inventory 1 quantity = %d, want 60 after receiving 10", got)
	}
}

func TestRecordPaymentFlipsStatus(t *testing.T) {
	e, db := newTestEngine(t, decimal.Zero)

	res, err := e.CreateSale(context.Background(), Request{
		Items:         []LineItem{{InventoryID: 1, Quantity: 1, UnitPrice: dec("100")}},
		PaymentMethod: domain.MethodCredit,
	})
	if err != nil {
		t.Fatalf("create sale: %v", err)
	}

	balance, err := e.RecordSalePayment(context.Background(), res.ID, dec("40"), domain.MethodCash, "", "")
	if err != nil {
		t.Fatalf("first payment: %v", err)
	}
	if !balance.Equal(dec("60")) {
		t.Errorf("balance = %s, want 60", balance)
	}

	var sale domain.Sale
	if err := db.Get(&sale, `SELECT * FROM sales WHERE id = ?`, res.ID); err != nil {
		t.Fatalf("load sale: %v", err)
	}
	if sale.PaymentStatus != domain.StatusPartial {
		t.Errorf("status = %q, want partial", sale.PaymentStatus)
	}

	balance, err = e.RecordSalePayment(context.Background(), res.ID, dec("60"), domain.MethodCash, "", "")
	if err != nil {
		t.Fatalf("second payment: %v", err)
	}
	if !balance.IsZero() {
		t.Errorf("balance = %s, want 0", balance)
	}
	if err := db.Get(&sale, `SELECT * FROM sales WHERE id = ?`, res.ID); err != nil {
		t.Fatalf("reload sale: %v", err)
	}
	if sale.PaymentStatus != domain.StatusPaid {
		t.Errorf("status = %q, want paid", sale.PaymentStatus)
	}

	// Ledger sum matches the header.
	var sum float64
	if err := db.Get(&sum, `SELECT COALESCE(SUM(amount), 0) FROM payments WHERE sale_id = ?`, res.ID); err != nil {
		t.Fatalf("sum payments: %v", err)
	}
	if sum != sale.PaidAmount {
		t.Errorf("ledger sum %v != header paid_amount %v", sum, sale.PaidAmount)
	}
}

func TestRecordPaymentOrderCommutes(t *testing.T) {
	e, _ := newTestEngine(t, decimal.Zero)

	finalBalance := func(amounts []string) decimal.Decimal {
		res, err := e.CreateSale(context.Background(), Request{
			Items:         []LineItem{{InventoryID: 1, Quantity: 1, UnitPrice: dec("100")}},
			PaymentMethod: domain.MethodCredit,
		})
		if err != nil {
			t.Fatalf("create sale: %v", err)
		}
		var balance decimal.Decimal
		for _, amount := range amounts {
			balance, err = e.RecordSalePayment(context.Background(), res.ID, dec(amount), domain.MethodCash, "", "")
			if err != nil {
				t.Fatalf("payment of %s: %v", amount, err)
			}
		}
		return balance
	}

	a := finalBalance([]string{"30", "20"})
	b := finalBalance([]string{"20", "30"})
	if !a.Equal(b) || !a.Equal(dec("50")) {
		t.Errorf("balances %s and %s, want both 50", a, b)
	}
}

func TestRecordPaymentOverpaymentRejected(t *testing.T) {
	e, db := newTestEngine(t, decimal.Zero)

	// A credit sale with a partial payment establishes balance 10.
	res, err := e.CreateSale(context.Background(), Request{
		Items:         []LineItem{{InventoryID: 2, Quantity: 1, UnitPrice: dec("50")}},
		PaymentMethod: domain.MethodCredit,
	})
	if err != nil {
		t.Fatalf("create sale: %v", err)
	}
	if _, err := e.RecordSalePayment(context.Background(), res.ID, dec("40"), domain.MethodCash, "", ""); err != nil {
		t.Fatalf("partial payment: %v", err)
	}

	_, err = e.RecordSalePayment(context.Background(), res.ID, dec("15"), domain.MethodCash, "", "")
	if !errors.Is(err, ErrOverpayment) {
		t.Fatalf("err = %v, want ErrOverpayment", err)
	}

	var balance float64
	if err := db.Get(&balance, `SELECT balance FROM sales WHERE id = ?`, res.ID); err != nil {
		t.Fatalf("load balance: %v", err)
	}
	if balance != 10 {
		t.Errorf("balance = %v, want 10 (unchanged)", balance)
	}
}

func TestRecordPaymentIgnoresDriftedHeaderBalance(t *testing.T) {
	e, db := newTestEngine(t, decimal.Zero)

	res, err := e.CreateSale(context.Background(), Request{
		Items:         []LineItem{{InventoryID: 2, Quantity: 1, UnitPrice: dec("50")}},
		PaymentMethod: domain.MethodCredit,
	})
	if err != nil {
		t.Fatalf("create sale: %v", err)
	}

	// Float storage can leave the header's balance column slightly below the
	// ledger-derived value; settling the exact outstanding amount must still
	// succeed.
	if _, err := db.Exec(`UPDATE sales SET balance = 49.999999999 WHERE id = ?`, res.ID); err != nil {
		t.Fatalf("drift balance: %v", err)
	}

	balance, err := e.RecordSalePayment(context.Background(), res.ID, dec("50"), domain.MethodCash, "", "")
	if err != nil {
		t.Fatalf("exact settlement: %v", err)
	}
	if !balance.IsZero() {
		t.Errorf("balance = %s, want 0", balance)
	}

	var status string
	if err := db.Get(&status, `SELECT payment_status FROM sales WHERE id = ?`, res.ID); err != nil {
		t.Fatalf("load status: %v", err)
	}
	if status != domain.StatusPaid {
		t.Errorf("status = %q, want paid", status)
	}
}

func TestRecordPaymentRejectsNonPositive(t *testing.T) {
	e, _ := newTestEngine(t, decimal.Zero)

	_, err := e.RecordSalePayment(context.Background(), 1, decimal.Zero, domain.MethodCash, "", "")
	if !errors.Is(err, ErrInvalidPayment) {
		t.Fatalf("err = %v, want ErrInvalidPayment", err)
	}
}

func TestRecordPaymentMissingOrder(t *testing.T) {
	e, _ := newTestEngine(t, decimal.Zero)

	_, err := e.RecordSalePayment(context.Background(), 9999, dec("10"), domain.MethodCash, "", "")
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestUpdateSaleReplacesItems(t *testing.T) {
	e, db := newTestEngine(t, decimal.Zero)

	res, err := e.CreateSale(context.Background(), Request{
		Items: []LineItem{
			{InventoryID: 1, Quantity: 2, UnitPrice: dec("100")},
			{InventoryID: 2, Quantity: 3, UnitPrice: dec("50")},
		},
		PaymentMethod: domain.MethodCredit,
	})
	if err != nil {
		t.Fatalf("create sale: %v", err)
	}

	affected, err := e.UpdateSale(context.Background(), res.ID, Request{
		Items:         []LineItem{{InventoryID: 1, Quantity: 1, UnitPrice: dec("100")}},
		PaymentMethod: domain.MethodCredit,
	})
	if err != nil {
		t.Fatalf("update sale: %v", err)
	}
	if affected != 1 {
		t.Errorf("affected = %d, want 1", affected)
	}

	var itemCount int64
	if err := db.Get(&itemCount, `SELECT COUNT(*) FROM sale_items WHERE sale_id = ?`, res.ID); err != nil {
		t.Fatalf("count items: %v", err)
	}
	if itemCount != 1 {
		t.Errorf("item rows = %d, want 1 (no orphans)", itemCount)
	}

	// Old stock effect reversed, new one applied.
	if got := stockOf(t, db, 1); got != 49 {
		t.Errorf("inventory 1 quantity = %d, want 49", got)
	}
	if got := stockOf(t, db, 2); got != 20 {
		t.Errorf("inventory 2 quantity = %d, want 20", got)
	}

	var sale domain.Sale
	if err := db.Get(&sale, `SELECT * FROM sales WHERE id = ?`, res.ID); err != nil {
		t.Fatalf("load sale: %v", err)
	}
	if sale.TotalAmount != 100 {
		t.Errorf("total = %v, want 100", sale.TotalAmount)
	}
	if sale.InvoiceNumber != res.Number {
		t.Errorf("invoice number changed from %s to %s", res.Number, sale.InvoiceNumber)
	}
}

func TestUpdateSaleRejectsUnknownMethod(t *testing.T) {
	e, db := newTestEngine(t, decimal.Zero)

	res, err := e.CreateSale(context.Background(), Request{
		Items:         []LineItem{{InventoryID: 1, Quantity: 1, UnitPrice: dec("100")}},
		PaymentMethod: domain.MethodCredit,
	})
	if err != nil {
		t.Fatalf("create sale: %v", err)
	}

	_, err = e.UpdateSale(context.Background(), res.ID, Request{
		Items:         []LineItem{{InventoryID: 1, Quantity: 1, UnitPrice: dec("100")}},
		PaymentMethod: "iou",
	})
	if err == nil {
		t.Fatal("update with unknown payment method succeeded, want error")
	}

	var method string
	if err := db.Get(&method, `SELECT payment_method FROM sales WHERE id = ?`, res.ID); err != nil {
		t.Fatalf("load method: %v", err)
	}
	if method != domain.MethodCredit {
		t.Errorf("payment_method = %q, want credit (unchanged)", method)
	}
}

func TestUpdateMissingSale(t *testing.T) {
	e, _ := newTestEngine(t, decimal.Zero)

	_, err := e.UpdateSale(context.Background(), 9999, Request{
		Items:         []LineItem{{InventoryID: 1, Quantity: 1, UnitPrice: dec("100")}},
		PaymentMethod: domain.MethodCredit,
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("err = %v, want ErrNotFound", err)
	}
}

func TestDeleteSaleRestoresStockAndCascades(t *testing.T) {
	e, db := newTestEngine(t, decimal.Zero)

	res, err := e.CreateSale(context.Background(), Request{
		Items:          []LineItem{{InventoryID: 1, Quantity: 5, UnitPrice: dec("100")}},
		PaymentMethod:  domain.MethodCash,
		AmountTendered: dec("500"),
	})
	if err != nil {
		t.Fatalf("create sale: %v", err)
	}
	if got := stockOf(t, db, 1); got != 45 {
		t.Fatalf("inventory 1 quantity = %d, want 45", got)
	}

	if err := e.DeleteSale(context.Background(), res.ID); err != nil {
		t.Fatalf("delete sale: %v", err)
	}
	if got := stockOf(t, db, 1); got != 50 {
		t.Errorf("inventory 1 quantity = %d, want 50 restored", got)
	}
	if n := countRows(t, db, "sale_items"); n != 0 {
		t.Errorf("sale_items rows = %d, want 0 after cascade", n)
	}
	if n := countRows(t, db, "payments"); n != 0 {
		t.Errorf("payments rows = %d, want 0 after cascade", n)
	}

	if err := e.DeleteSale(context.Background(), res.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second delete err = %v, want ErrNotFound", err)
	}
}

func TestGetSaleDetail(t *testing.T) {
	e, _ := newTestEngine(t, dec("0.15"))

	customerID := int64(1)
	res, err := e.CreateSale(context.Background(), Request{
		CounterpartyID: &customerID,
		Items:          []LineItem{{InventoryID: 1, Quantity: 2, UnitPrice: dec("100")}},
		PaymentMethod:  domain.MethodCash,
		AmountTendered: dec("230"),
	})
	if err != nil {
		t.Fatalf("create sale: %v", err)
	}

	detail, err := e.GetSale(context.Background(), res.ID)
	if err != nil {
		t.Fatalf("get sale: %v", err)
	}
	if detail.InvoiceNumber != res.Number {
		t.Errorf("invoice number = %s, want %s", detail.InvoiceNumber, res.Number)
	}
	if detail.CustomerName == nil || *detail.CustomerName != "Ali Hassan" {
		t.Errorf("customer name = %v, want Ali Hassan", detail.CustomerName)
	}
	if len(detail.Items) != 1 || detail.Items[0].PartCode != "BRK-100" {
		t.Errorf("items = %+v, want one BRK-100 line", detail.Items)
	}
	if len(detail.Payments) != 1 {
		t.Errorf("payments = %d, want 1", len(detail.Payments))
	}

	if _, err := e.GetSale(context.Background(), 9999); !errors.Is(err, ErrNotFound) {
		t.Errorf("missing sale err = %v, want ErrNotFound", err)
	}
}

func TestStatusDerivation(t *testing.T) {
	cases := []struct {
		paid, balance string
		want          string
	}{
		{"0", "100", domain.StatusPending},
		{"1", "99", domain.StatusPartial},
		{"50", "50", domain.StatusPartial},
		{"99", "1", domain.StatusPartial},
		{"100", "0", domain.StatusPaid},
		{"120", "-20", domain.StatusPaid},
	}
	for _, tc := range cases {
		if got := statusFor(dec(tc.paid), dec(tc.balance)); got != tc.want {
			t.Errorf("statusFor(%s, %s) = %q, want %q", tc.paid, tc.balance, got, tc.want)
		}
	}
}

func TestEngineClockIsStable(t *testing.T) {
	e, _ := newTestEngine(t, decimal.Zero)
	fixed := time.Date(2026, 3, 14, 12, 0, 0, 0, time.UTC)
	e.now = func() time.Time { return fixed }

	res, err := e.CreateSale(context.Background(), Request{
		Items:         []LineItem{{InventoryID: 1, Quantity: 1, UnitPrice: dec("10")}},
		PaymentMethod: domain.MethodCredit,
	})
	if err != nil {
		t.Fatalf("create sale: %v", err)
	}
	if res.Number != "20260314-0001" {
		t.Errorf("number = %s, want 20260314-0001", res.Number)
	}
}
