package api

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"sparepos/m/internal/listing"
	"sparepos/m/internal/order"
)

// Sales handlers

func (h *Handler) createSale(w http.ResponseWriter, r *http.Request) {
	var req order.Request
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	result, err := h.orderEngine().CreateSale(r.Context(), req)
	if err != nil {
		respondError(w, orderErrorStatus(err), err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, result)
}

func (h *Handler) getSale(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid sale id")
		return
	}
	detail, err := h.orderEngine().GetSale(r.Context(), id)
	if err != nil {
		respondError(w, orderErrorStatus(err), err.Error())
		return
	}
	respondJSON(w, http.StatusOK, detail)
}

func (h *Handler) updateSale(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid sale id")
		return
	}
	var req order.Request
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	affected, err := h.orderEngine().UpdateSale(r.Context(), id, req)
	if err != nil {
		respondError(w, orderErrorStatus(err), err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"status": "updated", "affected": affected})
}

func (h *Handler) deleteSale(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid sale id")
		return
	}
	if err := h.orderEngine().DeleteSale(r.Context(), id); err != nil {
		respondError(w, orderErrorStatus(err), err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *Handler) listSales(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))
	customerID, _ := strconv.ParseInt(q.Get("customer_id"), 10, 64)

	result, err := h.listing.Sales(r.Context(), listing.SalesQuery{
		DateFrom:   q.Get("date_from"),
		DateTo:     q.Get("date_to"),
		Search:     strings.TrimSpace(q.Get("search")),
		Status:     q.Get("status"),
		CustomerID: customerID,
		Page:       page,
		Limit:      limit,
	})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "unable to list sales")
		return
	}
	respondJSON(w, http.StatusOK, result)
}

type paymentRequest struct {
	Amount        decimal.Decimal `json:"amount"`
	PaymentMethod string          `json:"payment_method"`
	PaymentDate   string          `json:"payment_date"`
	Notes         string          `json:"notes"`
}

func (h *Handler) recordSalePayment(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid sale id")
		return
	}
	var req paymentRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	balance, err := h.orderEngine().RecordSalePayment(r.Context(), id, req.Amount, req.PaymentMethod, req.PaymentDate, req.Notes)
	if err != nil {
		respondError(w, orderErrorStatus(err), err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"balance": balance})
}

// Purchase handlers

func (h *Handler) createPurchase(w http.ResponseWriter, r *http.Request) {
	var req order.Request
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	result, err := h.orderEngine().CreatePurchase(r.Context(), req)
	if err != nil {
		respondError(w, orderErrorStatus(err), err.Error())
		return
	}
	respondJSON(w, http.StatusCreated, result)
}

func (h *Handler) getPurchase(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid purchase id")
		return
	}
	detail, err := h.orderEngine().GetPurchase(r.Context(), id)
	if err != nil {
		respondError(w, orderErrorStatus(err), err.Error())
		return
	}
	respondJSON(w, http.StatusOK, detail)
}

func (h *Handler) updatePurchase(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid purchase id")
		return
	}
	var req order.Request
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	affected, err := h.orderEngine().UpdatePurchase(r.Context(), id, req)
	if err != nil {
		respondError(w, orderErrorStatus(err), err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"status": "updated", "affected": affected})
}

func (h *Handler) deletePurchase(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid purchase id")
		return
	}
	if err := h.orderEngine().DeletePurchase(r.Context(), id); err != nil {
		respondError(w, orderErrorStatus(err), err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *Handler) listPurchases(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))
	supplierID, _ := strconv.ParseInt(q.Get("supplier_id"), 10, 64)

	result, err := h.listing.Purchases(r.Context(), listing.PurchasesQuery{
		DateFrom:   q.Get("date_from"),
		DateTo:     q.Get("date_to"),
		Search:     strings.TrimSpace(q.Get("search")),
		Status:     q.Get("status"),
		SupplierID: supplierID,
		Page:       page,
		Limit:      limit,
	})
	if err != nil {
		respondError(w, http.StatusInternalServerError, "unable to list purchases")
		return
	}
	respondJSON(w, http.StatusOK, result)
}

func (h *Handler) recordPurchasePayment(w http.ResponseWriter, r *http.Request) {
	id, err := idParam(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "invalid purchase id")
		return
	}
	var req paymentRequest
	if err := decodeJSON(r, &req); err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}
	balance, err := h.orderEngine().RecordPurchasePayment(r.Context(), id, req.Amount, req.PaymentMethod, req.PaymentDate, req.Notes)
	if err != nil {
		respondError(w, orderErrorStatus(err), err.Error())
		return
	}
	respondJSON(w, http.StatusOK, map[string]any{"balance": balance})
}
