package api

import (
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jmoiron/sqlx"

	"sparepos/m/domain"
	"sparepos/m/internal/config"
	"sparepos/m/internal/listing"
	"sparepos/m/internal/order"
)

// Reports

func (h *Handler) dailySales(w http.ResponseWriter, r *http.Request) {
	var revenue float64
	var count int64
	err := h.db.QueryRow(`SELECT COALESCE(SUM(total_amount), 0), COUNT(*) FROM sales WHERE date(sale_date) = date('now')`).Scan(&revenue, &count)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "unable to fetch daily sales")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"revenue": revenue, "sales_count": count, "currency": h.config().Currency})
}

func (h *Handler) monthlySales(w http.ResponseWriter, r *http.Request) {
	var revenue float64
	var count int64
	err := h.db.QueryRow(`SELECT COALESCE(SUM(total_amount), 0), COUNT(*) FROM sales WHERE strftime('%Y-%m', sale_date) = strftime('%Y-%m', 'now')`).Scan(&revenue, &count)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "unable to fetch monthly sales")
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"revenue": revenue, "sales_count": count, "currency": h.config().Currency})
}

type saleItemDetail struct {
	SaleID      int64   `db:"sale_id" json:"sale_id"`
	InventoryID int64   `db:"inventory_id" json:"inventory_id"`
	PartCode    string  `db:"part_code" json:"part_code"`
	ItemName    string  `db:"item_name" json:"item_name"`
	Quantity    int64   `db:"quantity" json:"quantity"`
	UnitPrice   float64 `db:"unit_price" json:"unit_price"`
	TotalPrice  float64 `db:"total_price" json:"total_price"`
}

type saleReportEntry struct {
	domain.Sale
	Items []saleItemDetail `json:"items"`
}

func (h *Handler) salesReport(w http.ResponseWriter, r *http.Request) {
	if !h.requireRole(w, r, "admin") {
		return
	}

	q := r.URL.Query()
	startDate := strings.TrimSpace(q.Get("start_date"))
	endDate := strings.TrimSpace(q.Get("end_date"))
	for _, d := range []string{startDate, endDate} {
		if d == "" {
			continue
		}
		if _, err := time.Parse("2006-01-02", d); err != nil {
			respondError(w, http.StatusBadRequest, "dates must be in YYYY-MM-DD format")
			return
		}
	}

	var f listing.Filter
	if startDate != "" {
		f.Raw("date(sale_date) >= ?", startDate)
	}
	if endDate != "" {
		f.Raw("date(sale_date) <= ?", endDate)
	}
	where, args := f.Clause()

	query := `SELECT id, invoice_number, customer_id, sale_date, subtotal, discount, tax, total_amount, payment_method, payment_status, paid_amount, balance, created_at FROM sales` + where + ` ORDER BY sale_date DESC`

	var sales []domain.Sale
	if err := h.db.Select(&sales, query, args...); err != nil {
		respondError(w, http.StatusInternalServerError, "unable to fetch sales report")
		return
	}
	if len(sales) == 0 {
		respondJSON(w, http.StatusOK, []saleReportEntry{})
		return
	}

	ids := make([]int64, len(sales))
	for i, sale := range sales {
		ids[i] = sale.ID
	}

	itemsQuery, itemsArgs, err := sqlx.In(`
		SELECT si.sale_id, si.inventory_id, i.part_code, i.name AS item_name,
		       si.quantity, si.unit_price, si.total_price
		  FROM sale_items si
		  JOIN inventory i ON i.id = si.inventory_id
		 WHERE si.sale_id IN (?)`, ids)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "unable to prepare sale items query")
		return
	}
	itemsQuery = h.db.Rebind(itemsQuery)

	var rows []saleItemDetail
	if err := h.db.Select(&rows, itemsQuery, itemsArgs...); err != nil {
		respondError(w, http.StatusInternalServerError, "unable to load sale items")
		return
	}
	itemsBySale := make(map[int64][]saleItemDetail)
	for _, row := range rows {
		itemsBySale[row.SaleID] = append(itemsBySale[row.SaleID], row)
	}

	report := make([]saleReportEntry, len(sales))
	for i, sale := range sales {
		items := itemsBySale[sale.ID]
		if items == nil {
			items = []saleItemDetail{}
		}
		report[i] = saleReportEntry{Sale: sale, Items: items}
	}

	respondJSON(w, http.StatusOK, report)
}

// Backups

func (h *Handler) createBackup(w http.ResponseWriter, r *http.Request) {
	if !h.requireRole(w, r, "admin") {
		return
	}
	path, err := h.backups.Create()
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, map[string]string{"path": path})
}

func (h *Handler) listBackups(w http.ResponseWriter, r *http.Request) {
	if !h.requireRole(w, r, "admin") {
		return
	}
	snapshots, err := h.backups.List()
	if err != nil {
		respondError(w, http.StatusInternalServerError, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, snapshots)
}

func (h *Handler) restoreBackup(w http.ResponseWriter, r *http.Request) {
	if !h.requireRole(w, r, "admin") {
		return
	}
	var req struct {
		Name string `json:"name"`
	}
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := h.backups.Restore(req.Name); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "restored"})
}

func (h *Handler) deleteBackup(w http.ResponseWriter, r *http.Request) {
	if !h.requireRole(w, r, "admin") {
		return
	}
	name := chi.URLParam(r, "name")
	if err := h.backups.Delete(name); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// Settings

func (h *Handler) getSettings(w http.ResponseWriter, r *http.Request) {
	cfg := h.config()
	respondJSON(w, http.StatusOK, map[string]any{
		"currency":            cfg.Currency,
		"tax_rate":            cfg.TaxRate,
		"low_stock_threshold": cfg.LowStockThreshold,
		"backup_dir":          cfg.BackupDir,
	})
}

// reloadSettings re-reads the environment and swaps the configuration and the
// engine that derives from it under the write lock.
func (h *Handler) reloadSettings(w http.ResponseWriter, r *http.Request) {
	if !h.requireRole(w, r, "admin") {
		return
	}
	cfg := config.Load()
	h.mu.Lock()
	h.cfg = cfg
	h.engine = order.NewEngine(h.db, cfg.TaxRate)
	h.mu.Unlock()
	h.getSettings(w, r)
}
