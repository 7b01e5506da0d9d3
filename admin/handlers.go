package admin

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

// Handler proxies the in-page management actions (role/status changes,
// deletes). Listing data is fetched server-side by the page handlers.
type Handler struct {
	Svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{Svc: svc}
}

func reqCtx(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), 10*time.Second)
}

func (h *Handler) UpdateUserRole(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := reqCtx(r)
	defer cancel()

	var payload struct {
		Role string `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Role == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Role is required")
		return
	}

	if err := h.Svc.UpdateUserRole(ctx, backend.CookieHeader(r), ps.ByName("id"), payload.Role); err != nil {
		respondBackendError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Role updated"})
}

func (h *Handler) BlockOrUnblockUser(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := reqCtx(r)
	defer cancel()

	var payload struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Status == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Status is required")
		return
	}

	if err := h.Svc.BlockOrUnblockUser(ctx, backend.CookieHeader(r), ps.ByName("id"), payload.Status); err != nil {
		respondBackendError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Status updated"})
}

func (h *Handler) DeleteUser(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := reqCtx(r)
	defer cancel()

	if err := h.Svc.DeleteUser(ctx, backend.CookieHeader(r), ps.ByName("id")); err != nil {
		respondBackendError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "User deleted"})
}

func (h *Handler) UpdateProductStatus(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := reqCtx(r)
	defer cancel()

	var payload struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil || payload.Status == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Status is required")
		return
	}

	if err := h.Svc.UpdateProductStatus(ctx, backend.CookieHeader(r), ps.ByName("id"), payload.Status); err != nil {
		respondBackendError(w, err)
		return
	}
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Product status updated"})
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
	status := models.ToOrderStatus(payload.Status)

	if err := h.Svc.UpdateOrderStatus(ctx, backend.CookieHeader(r), ps.ByName("id"), status); err != nil {
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
