package seller

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"medistore/backend"
	"medistore/models"
	"medistore/utils"

	"github.com/julienschmidt/httprouter"
)

// Handler proxies the seller table actions driven by in-page JavaScript.
type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

func reqCtx(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), 10*time.Second)
}

func (h *Handler) CreateProduct(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := reqCtx(r)
	defer cancel()

	var in models.ProductInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	if err := h.Svc.CreateProduct(ctx, backend.CookieHeader(r), in); err != nil {
		respondBackendError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"message": "Product added successfully"})
}

func (h *Handler) UpdateProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := reqCtx(r)
	defer cancel()

	var in models.ProductInput
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}

	if err := h.Svc.UpdateProduct(ctx, backend.CookieHeader(r), ps.ByName("id"), in); err != nil {
		respondBackendError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Product updated"})
}

func (h *Handler) DeleteProduct(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := reqCtx(r)
	defer cancel()

	if err := h.Svc.DeleteProduct(ctx, backend.CookieHeader(r), ps.ByName("id")); err != nil {
		respondBackendError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Product deleted"})
}

func (h *Handler) UpdateOrderStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := reqCtx(r)
	defer cancel()

	var payload struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Status == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Status is required")
		return
	}

	if err := h.Svc.UpdateOrderStatus(ctx, backend.CookieHeader(r), ps.ByName("id"), payload.Status); err != nil {
		respondBackendError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Order status updated"})
}

func respondBackendError(w http.ResponseWriter, err *backend.Error) {
	status := err.Status
	if status == 0 {
		status = http.StatusBadGateway
	}
	utils.RespondWithError(w, status, err.Message)
}
