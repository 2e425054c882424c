package api

import (
	"database/sql"
	"errors"
	"net/http"
	"strconv"
	"strings"

	"sparepos/m/domain"
	"sparepos/m/internal/listing"
)

type inventoryRequest struct {
	PartCode     string  `json:"part_code"`
	Name         string  `json:"name"`
	CategoryID   *int64  `json:"category_id"`
	BrandID      *int64  `json:"brand_id"`
	SupplierID   *int64  `json:"supplier_id"`
	CostPrice    float64 `json:"cost_price"`
	SellingPrice float64 `json:"selling_price"`
	Quantity     int64   `json:"quantity"`
	ReorderLevel *int64  `json:"reorder_level"`
	Location     string  `json:"location"`
	Description  string  `json:"description"`
	Barcode      string  `json:"barcode"`
}

func (h *Handler) listInventory(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))
	categoryID, _ := strconv.ParseInt(q.Get("category_id"), 10, 64)
	brandID, _ := strconv.ParseInt(q.Get("brand_id"), 10, 64)

	result, err := h.listing.Inventory(r.Context(), listing.InventoryQuery{
		Search:      strings.TrimSpace(q.Get("search")),
		CategoryID:  categoryID,
		BrandID:     brandID,
		StockStatus: q.Get("stock_status"),
		Page:        page,
		Limit:       limit,
	})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "unable to list inventory")
		return
	}
	respondJSON(w, http.StatusOK, result)
}

func (h *Handler) getInventory(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid inventory id")
		return
	}
	var item domain.InventoryItem
	err = h.db.Get(&item, `SELECT * FROM inventory WHERE id = ?`, id)
	if errors.Is(err, sql.ErrNoRows) {
		respondError(w, http.StatusNotFound, "inventory not found")
		return
	}
	if err != nil {
		respondError(w, http.StatusInternalServerError, "unable to load inventory")
		return
	}
	respondJSON(w, http.StatusOK, item)
}

func (h *Handler) addInventory(w http.ResponseWriter, r *http.Request) {
	var req inventoryRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.PartCode == "" || req.Name == "" {
		respondError(w, http.StatusBadRequest, "part_code and name are required")
		return
	}
	if req.Quantity < 0 || req.CostPrice < 0 || req.SellingPrice < 0 {
		respondError(w, http.StatusBadRequest, "quantity and prices must not be negative")
		return
	}
	reorderLevel := h.config().LowStockThreshold
	if req.ReorderLevel != nil && *req.ReorderLevel >= 0 {
		reorderLevel = *req.ReorderLevel
	}

	res, err := h.db.Exec(`INSERT INTO inventory (part_code, name, category_id, brand_id, supplier_id, cost_price, selling_price, quantity, reorder_level, location, description, barcode) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		req.PartCode, req.Name, req.CategoryID, req.BrandID, req.SupplierID,
		req.CostPrice, req.SellingPrice, req.Quantity, reorderLevel,
		req.Location, req.Description, req.Barcode)
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "unique constraint") {
			respondError(w, http.StatusConflict, "part_code already exists")
			return
		}
		respondError(w, http.StatusInternalServerError, "unable to add inventory")
		return
	}
	id, _ := res.LastInsertId()
	respondJSON(w, http.StatusCreated, map[string]any{"id": id, "part_code": req.PartCode})
}

func (h *Handler) updateInventory(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid inventory id")
		return
	}
	var req inventoryRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.PartCode == "" || req.Name == "" {
		respondError(w, http.StatusBadRequest, "part_code and name are required")
		return
	}
	if req.Quantity < 0 || req.CostPrice < 0 || req.SellingPrice < 0 {
		respondError(w, http.StatusBadRequest, "quantity and prices must not be negative")
		return
	}
	reorderLevel := h.config().LowStockThreshold
	if req.ReorderLevel != nil && *req.ReorderLevel >= 0 {
		reorderLevel = *req.ReorderLevel
	}

	res, err := h.db.Exec(`UPDATE inventory SET part_code = ?, name = ?, category_id = ?, brand_id = ?, supplier_id = ?, cost_price = ?, selling_price = ?, quantity = ?, reorder_level = ?, location = ?, description = ?, barcode = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?`,
		req.PartCode, req.Name, req.CategoryID, req.BrandID, req.SupplierID,
		req.CostPrice, req.SellingPrice, req.Quantity, reorderLevel,
		req.Location, req.Description, req.Barcode, id)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "unable to update inventory")
		return
	}
	if n, _ := res.RowsAffected(); n == 0 {
		respondError(w, http.StatusNotFound, "inventory not found")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (h *Handler) deleteInventory(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid inventory id")
		return
	}
	res, err := h.db.Exec(`DELETE FROM inventory WHERE id = ?`, id)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "unable to delete inventory")
		return
	}
	if n, _ := res.RowsAffected(); n == 0 {
		respondError(w, http.StatusNotFound, "inventory not found")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *Handler) lowStock(w http.ResponseWriter, r *http.Request) {
	rows, err := h.listing.LowStock(r.Context())
	if err != nil {
		respondError(w, http.StatusInternalServerError, "unable to fetch low stock items")
		return
	}
	respondJSON(w, http.StatusOK, rows)
}
