package http

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/bazaarlabs/marketplace/internal/domain"
	"github.com/google/uuid"
)

type placeOrderReq struct {
	BuyerID    uuid.UUID `json:"buyer_id"`
	SellerID   uuid.UUID `json:"seller_id"`
	TotalCents int64     `json:"total_cents"`
}

type updateOrderStatusReq struct {
	Status domain.OrderStatus `json:"status"`
}

type orderResp struct {
	ID         uuid.UUID `json:"id"`
	BuyerID    uuid.UUID `json:"buyer_id"`
	SellerID   uuid.UUID `json:"seller_id"`
	TotalCents int64     `json:"total_cents"`
	Status     string    `json:"status"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

func toOrderResp(order domain.Order) orderResp {
	return orderResp{
		ID:         order.ID,
		BuyerID:    order.BuyerID,
		SellerID:   order.SellerID,
		TotalCents: order.TotalCents,
		Status:     string(order.Status),
		CreatedAt:  order.CreatedAt,
		UpdatedAt:  order.UpdatedAt,
	}
}

func (api OpsServer) handlePlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req placeOrderReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, domain.NewValidationErr("invalid request body"))
		return
	}

	order, err := api.PlaceOrderUseCase.Execute(r.Context(), req.BuyerID, req.SellerID, req.TotalCents)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, toOrderResp(order))
}

func (api OpsServer) handleUpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	orderID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		respondError(w, domain.NewValidationErr("invalid order id"))
		return
	}

	var req updateOrderStatusReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, domain.NewValidationErr("invalid request body"))
		return
	}

	order, err := api.UpdateOrderStatusUseCase.Execute(r.Context(), orderID, req.Status)
	if err != nil {
		respondError(w, err)
		return
	}

	respondJSON(w, http.StatusOK, toOrderResp(order))
}
