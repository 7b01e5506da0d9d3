package orders

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

// Checkout places the order and signals the badge; the backend empties the
// cart as part of checkout.
func (h *Handler) Checkout(w http.ResponseWriter, r *http.Request, _ httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), 15*time.Second)
	defer cancel()

	var req CheckoutRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		log.Println("orders: checkout decode error:", err)
		utils.RespondWithError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if msg := req.Validate(); msg != "" {
		utils.RespondWithError(w, http.StatusBadRequest, msg)
		return
	}

	data, err := h.Svc.Checkout(ctx, backend.CookieHeader(r), req)
	if err != nil {
		respondBackendError(w, err)
		return
	}

	h.Hub.PublishFor(r)
	utils.RespondWithJSON(w, http.StatusCreated, utils.M{"message": "Order placed", "data": data})
}

func respondBackendError(w http.ResponseWriter, err *backend.Error) {
	status := err.Status
	if status == 0 {
		status = http.StatusBadGateway
	}
	utils.RespondWithError(w, status, err.Message)
}
