package main

import (
	"errors"
	"net/http"

	"github.com/Raguramgit/retro-restaurant/internal/domain"
	"github.com/go-chi/chi"
)

type CheckoutCustomer struct {
	Name    string `json:"name" validate:"required"`
	Phone   string `json:"phone" validate:"required"`
	Email   string `json:"email" validate:"omitempty,email"`
	Address string `json:"address"`
}

type CheckoutRequest struct {
	OrderType     string           `json:"order_type" validate:"required,oneof=dine-in takeaway"`
	PaymentMethod string           `json:"payment_method" validate:"required,oneof=cash upi-gpay upi-phonepe credit-card debit-card"`
	Customer      CheckoutCustomer `json:"customer" validate:"required"`
}

type CheckoutResponse struct {
	Order       domain.Order `json:"order"`
	WhatsAppURL string       `json:"whatsapp_url"`
}

// checkoutHandler godoc
//
//	@Summary		Place an order
//	@Description	Builds an immutable order from the session cart, persists it and returns a WhatsApp bill link. The cart is cleared on success.
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			X-Session-ID	header		string			false	"Cart session id"
//	@Param			request			body		CheckoutRequest	true	"Checkout details"
//	@Success		201				{object}	CheckoutResponse
//	@Failure		400				{object}	map[string]string
//	@Failure		500				{object}	map[string]string
//	@Router			/checkout [post]
func (app *application) checkoutHandler(w http.ResponseWriter, r *http.Request) {
	var req CheckoutRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	cart := app.sessions.Cart(app.sessionID(w, r))

	customer := domain.Customer{
		Name:    req.Customer.Name,
		Phone:   req.Customer.Phone,
		Email:   req.Customer.Email,
		Address: req.Customer.Address,
	}

	result, err := app.checkoutService.PlaceOrder(
		r.Context(),
		cart,
		customer,
		domain.OrderType(req.OrderType),
		domain.PaymentMethod(req.PaymentMethod),
	)
	if err != nil {
		if domain.IsValidationError(err) {
			app.badRequestResponse(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	// the order is placed; the transient cart is done
	cart.Clear()

	response := CheckoutResponse{
		Order:       result.Order,
		WhatsAppURL: result.WhatsAppURL,
	}

	if err := app.jsonRespone(w, http.StatusCreated, response); err != nil {
		app.internalServerError(w, r, err)
	}
}

// listOrdersHandler godoc
//
//	@Summary		List orders
//	@Description	Returns the order history, oldest first
//	@Tags			orders
//	@Produce		json
//	@Success		200	{array}		domain.Order
//	@Failure		500	{object}	map[string]string
//	@Router			/orders [get]
func (app *application) listOrdersHandler(w http.ResponseWriter, r *http.Request) {
	orders, err := app.checkoutService.ListOrders(r.Context())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, orders); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getOrderHandler godoc
//
//	@Summary		Get order
//	@Description	Get a single order by id
//	@Tags			orders
//	@Produce		json
//	@Param			order_id	path		string	true	"Order ID"
//	@Success		200			{object}	domain.Order
//	@Failure		404			{object}	map[string]string
//	@Router			/orders/{order_id} [get]
func (app *application) getOrderHandler(w http.ResponseWriter, r *http.Request) {
	orderID := chi.URLParam(r, "order_id")

	order, err := app.checkoutService.GetOrder(r.Context(), orderID)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			app.notFoundError(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, order); err != nil {
		app.internalServerError(w, r, err)
	}
}
