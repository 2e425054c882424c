package api

import (
	"net/http"
	"strings"

	"sparepos/m/domain"
)

// Customer handlers

type customerRequest struct {
	Name        string `json:"name"`
	Phone       string `json:"phone"`
	Email       string `json:"email"`
	Address     string `json:"address"`
	VehicleInfo string `json:"vehicle_info"`
}

func (h *Handler) listCustomers(w http.ResponseWriter, r *http.Request) {
	customers := []domain.Customer{}
	query := `SELECT id, name, phone, email, address, vehicle_info, created_at FROM customers`
	args := []any{}
	if search := strings.TrimSpace(r.URL.Query().Get("search")); search != "" {
		query += ` WHERE name LIKE ? OR phone LIKE ?`
		like := "%" + search + "%"
		args = append(args, like, like)
	}
	query += ` ORDER BY name`
	if err := h.db.Select(&customers, query, args...); err != nil {
		respondError(w, http.StatusInternalServerError, "unable to list customers")
		return
	}
	respondJSON(w, http.StatusOK, customers)
}

func (h *Handler) createCustomer(w http.ResponseWriter, r *http.Request) {
	var req customerRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Name == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}
	res, err := h.db.Exec(`INSERT INTO customers (name, phone, email, address, vehicle_info) VALUES (?, ?, ?, ?, ?)`,
		req.Name, req.Phone, req.Email, req.Address, req.VehicleInfo)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "unable to create customer")
		return
	}
	id, _ := res.LastInsertId()
	respondJSON(w, http.StatusCreated, map[string]any{"id": id, "name": req.Name})
}

func (h *Handler) updateCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid customer id")
		return
	}
	var req customerRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Name == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}
	if _, err := h.db.Exec(`UPDATE customers SET name = ?, phone = ?, email = ?, address = ?, vehicle_info = ? WHERE id = ?`,
		req.Name, req.Phone, req.Email, req.Address, req.VehicleInfo, id); err != nil {
		respondError(w, http.StatusInternalServerError, "unable to update customer")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (h *Handler) deleteCustomer(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid customer id")
		return
	}
	if _, err := h.db.Exec(`DELETE FROM customers WHERE id = ?`, id); err != nil {
		respondError(w, http.StatusInternalServerError, "unable to delete customer")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// Supplier handlers

type supplierRequest struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
}

func (h *Handler) listSuppliers(w http.ResponseWriter, r *http.Request) {
	suppliers := []domain.Supplier{}
	query := `SELECT id, name, phone, email, address, created_at FROM suppliers`
	args := []any{}
	if search := strings.TrimSpace(r.URL.Query().Get("search")); search != "" {
		query += ` WHERE name LIKE ? OR phone LIKE ?`
		like := "%" + search + "%"
		args = append(args, like, like)
	}
	query += ` ORDER BY name`
	if err := h.db.Select(&suppliers, query, args...); err != nil {
		respondError(w, http.StatusInternalServerError, "unable to list suppliers")
		return
	}
	respondJSON(w, http.StatusOK, suppliers)
}

func (h *Handler) createSupplier(w http.ResponseWriter, r *http.Request) {
	var req supplierRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Name == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}
	res, err := h.db.Exec(`INSERT INTO suppliers (name, phone, email, address) VALUES (?, ?, ?, ?)`,
		req.Name, req.Phone, req.Email, req.Address)
	if err != nil {
		respondError(w, http.StatusInternalServerError, "unable to create supplier")
		return
	}
	id, _ := res.LastInsertId()
	respondJSON(w, http.StatusCreated, map[string]any{"id": id, "name": req.Name})
}

func (h *Handler) updateSupplier(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid supplier id")
		return
	}
	var req supplierRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if req.Name == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}
	if _, err := h.db.Exec(`UPDATE suppliers SET name = ?, phone = ?, email = ?, address = ? WHERE id = ?`,
		req.Name, req.Phone, req.Email, req.Address, id); err != nil {
		respondError(w, http.StatusInternalServerError, "unable to update supplier")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "updated"})
}

func (h *Handler) deleteSupplier(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid supplier id")
		return
	}
	if _, err := h.db.Exec(`DELETE FROM suppliers WHERE id = ?`, id); err != nil {
		respondError(w, http.StatusInternalServerError, "unable to delete supplier")
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// Category and brand handlers

type nameRequest struct {
	Name string `json:"name"`
}

func (h *Handler) listCategories(w http.ResponseWriter, r *http.Request) {
	categories := []domain.Category{}
	if err := h.db.Select(&categories, `SELECT id, name FROM categories ORDER BY name`); err != nil {
		respondError(w, http.StatusInternalServerError, "unable to list categories")
		return
	}
	respondJSON(w, http.StatusOK, categories)
}

func (h *Handler) createCategory(w http.ResponseWriter, r *http.Request) {
	h.createNamed(w, r, "categories")
}

func (h *Handler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	h.deleteNamed(w, r, "categories")
}

func (h *Handler) listBrands(w http.ResponseWriter, r *http.Request) {
	brands := []domain.Brand{}
	if err := h.db.Select(&brands, `SELECT id, name FROM brands ORDER BY name`); err != nil {
		respondError(w, http.StatusInternalServerError, "unable to list brands")
		return
	}
	respondJSON(w, http.StatusOK, brands)
}

func (h *Handler) createBrand(w http.ResponseWriter, r *http.Request) {
	h.createNamed(w, r, "brands")
}

func (h *Handler) deleteBrand(w http.ResponseWriter, r *http.Request) {
	h.deleteNamed(w, r, "brands")
}

func (h *Handler) createNamed(w http.ResponseWriter, r *http.Request, table string) {
	var req nameRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if strings.TrimSpace(req.Name) == "" {
		respondError(w, http.StatusBadRequest, "name is required")
		return
	}
	res, err := h.db.Exec(`INSERT INTO `+table+` (name) VALUES (?)`, strings.TrimSpace(req.Name))
	if err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "unique constraint") {
			respondError(w, http.StatusConflict, "name already exists")
			return
		}
		respondError(w, http.StatusInternalServerError, "unable to create "+table)
		return
	}
	id, _ := res.LastInsertId()
	respondJSON(w, http.StatusCreated, map[string]any{"id": id, "name": strings.TrimSpace(req.Name)})
}

func (h *Handler) deleteNamed(w http.ResponseWriter, r *http.Request, table string) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid id")
		return
	}
	if _, err := h.db.Exec(`DELETE FROM `+table+` WHERE id = ?`, id); err != nil {
		respondError(w, http.StatusInternalServerError, "unable to delete from "+table)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}
