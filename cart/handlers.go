package cart

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"time"

	"medistore/backend"
	"medistore/cartsync"
	"medistore/utils"

	"github.com/julienschmidt/httprouter"
)

type Handler struct {
	Svc *Service
	Hub *cartsync.Hub
}

func NewHandler(svc *Service, hub *cartsync.Hub) *Handler {
	return &Handler{Svc: svc, Hub: hub}
}

func (h *Handler) reqCtx(r *http.Request) (context.Context, context.CancelFunc) {
	return context.WithTimeout(r.Context(), 10*time.Second)
}

// GetCart returns the caller's cart; the badge widget polls this.
func (h *Handler) GetCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := h.reqCtx(r)
	defer cancel()

	c := h.Svc.Me(ctx, backend.CookieHeader(r))
	utils.RespondWithJSON(w, http.StatusOK, c)
}

// AddToCart adds one product to the cart and signals the badge.
func (h *Handler) AddToCart(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := h.reqCtx(r)
	defer cancel()

	var payload struct {
		ProductID string `json:"productId"`
		Quantity  int    `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		log.Println("cart: add decode error:", err)
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if payload.ProductID == "" {
		utils.RespondWithError(w, http.StatusBadRequest, "Product is required")
		return
	}
	if payload.Quantity < 1 {
		payload.Quantity = 1
	}

	if err := h.Svc.Add(ctx, backend.CookieHeader(r), payload.ProductID, payload.Quantity); err != nil {
		respondBackendError(w, err)
		return
	}

	h.Hub.PublishFor(r)
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Added to cart"})
}

// UpdateItem changes an item's quantity. Quantities below 1 never reach the
// backend; the stepper's decrement stops at 1.
func (h *Handler) UpdateItem(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := h.reqCtx(r)
	defer cancel()

	var payload struct {
		Quantity int `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if payload.Quantity < 1 {
		utils.RespondWithError(w, http.StatusBadRequest, "Quantity must be at least 1")
		return
	}

	if err := h.Svc.UpdateItem(ctx, backend.CookieHeader(r), ps.ByName("id"), payload.Quantity); err != nil {
		respondBackendError(w, err)
		return
	}

	h.Hub.PublishFor(r)
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Quantity updated"})
}

// RemoveItem deletes an item from the cart.
func (h *Handler) RemoveItem(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := h.reqCtx(r)
	defer cancel()

	if err := h.Svc.RemoveItem(ctx, backend.CookieHeader(r), ps.ByName("id")); err != nil {
		respondBackendError(w, err)
		return
	}

	h.Hub.PublishFor(r)
	utils.RespondWithJSON(w, http.StatusOK, utils.M{"message": "Item removed"})
}

// respondBackendError maps the normalized backend failure onto this proxy's
// response, preserving the status so the page can show a login prompt on
// 401/403.
func respondBackendError(w http.ResponseWriter, err *backend.Error) {
	status := err.Status
	if status == 0 {
		status = http.StatusBadGateway
	}
	utils.RespondWithError(w, status, err.Message)
}
