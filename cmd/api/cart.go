package main

import (
	"errors"
	"net/http"

	"github.com/Raguramgit/retro-restaurant/internal/domain"
	"github.com/Raguramgit/retro-restaurant/internal/pricing"
	"github.com/go-chi/chi"
	"github.com/google/uuid"
)

// SessionHeader carries the caller's cart session id. A fresh id is minted
// and echoed back when the header is absent.
const SessionHeader = "X-Session-ID"

var ErrUnknownMenuItem = errors.New("unknown menu item")

func (app *application) sessionID(w http.ResponseWriter, r *http.Request) string {
	id := r.Header.Get(SessionHeader)
	if id == "" {
		id = uuid.NewString()
	}
	w.Header().Set(SessionHeader, id)

	return id
}

type CartLineResponse struct {
	MenuItem domain.MenuItem `json:"menuItem"`
	Quantity int             `json:"quantity"`
	Total    string          `json:"total"`
}

type CartResponse struct {
	Items     []CartLineResponse `json:"items"`
	ItemCount int                `json:"itemCount"`
	Subtotal  string             `json:"subtotal"`
	GSTAmount string             `json:"gstAmount"`
	Total     string             `json:"total"`
}

func (app *application) cartResponse(cart *domain.Cart) CartResponse {
	lines := cart.Lines()
	items := make([]CartLineResponse, 0, len(lines))
	for _, line := range lines {
		items = append(items, CartLineResponse{
			MenuItem: line.Item,
			Quantity: line.Quantity,
			Total:    line.Total().StringFixed(2),
		})
	}

	quote := pricing.Calculate(cart.Subtotal(), app.config.gstRate)

	return CartResponse{
		Items:     items,
		ItemCount: cart.ItemCount(),
		Subtotal:  quote.Subtotal.StringFixed(2),
		GSTAmount: quote.GSTAmount.StringFixed(2),
		Total:     quote.Total.StringFixed(2),
	}
}

// getCartHandler godoc
//
//	@Summary		Get cart
//	@Description	Returns the session cart with priced totals
//	@Tags			cart
//	@Produce		json
//	@Param			X-Session-ID	header		string	false	"Cart session id"
//	@Success		200				{object}	CartResponse
//	@Router			/cart [get]
func (app *application) getCartHandler(w http.ResponseWriter, r *http.Request) {
	cart := app.sessions.Cart(app.sessionID(w, r))

	if err := app.jsonRespone(w, http.StatusOK, app.cartResponse(cart)); err != nil {
		app.internalServerError(w, r, err)
	}
}

type AddCartItemRequest struct {
	ItemID string `json:"item_id" validate:"required"`
}

// addCartItemHandler godoc
//
//	@Summary		Add item to cart
//	@Description	Adds one unit of a menu item; repeated adds increment the quantity
//	@Tags			cart
//	@Accept			json
//	@Produce		json
//	@Param			X-Session-ID	header		string				false	"Cart session id"
//	@Param			request			body		AddCartItemRequest	true	"Item to add"
//	@Success		200				{object}	CartResponse
//	@Failure		400				{object}	map[string]string
//	@Failure		404				{object}	map[string]string
//	@Router			/cart/items [post]
func (app *application) addCartItemHandler(w http.ResponseWriter, r *http.Request) {
	var req AddCartItemRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	item, ok := app.catalog.Lookup(req.ItemID)
	if !ok {
		app.notFoundError(w, r, ErrUnknownMenuItem)
		return
	}

	cart := app.sessions.Cart(app.sessionID(w, r))
	cart.Add(item)

	if err := app.jsonRespone(w, http.StatusOK, app.cartResponse(cart)); err != nil {
		app.internalServerError(w, r, err)
	}
}

type UpdateCartItemRequest struct {
	Quantity *int `json:"quantity" validate:"required"`
}

// updateCartItemHandler godoc
//
//	@Summary		Set cart line quantity
//	@Description	Sets the quantity for a cart line; zero or less removes the line
//	@Tags			cart
//	@Accept			json
//	@Produce		json
//	@Param			X-Session-ID	header		string					false	"Cart session id"
//	@Param			item_id			path		string					true	"Menu item ID"
//	@Param			request			body		UpdateCartItemRequest	true	"New quantity"
//	@Success		200				{object}	CartResponse
//	@Failure		400				{object}	map[string]string
//	@Router			/cart/items/{item_id} [put]
func (app *application) updateCartItemHandler(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "item_id")

	var req UpdateCartItemRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	cart := app.sessions.Cart(app.sessionID(w, r))
	cart.SetQuantity(itemID, *req.Quantity)

	if err := app.jsonRespone(w, http.StatusOK, app.cartResponse(cart)); err != nil {
		app.internalServerError(w, r, err)
	}
}

// removeCartItemHandler godoc
//
//	@Summary		Remove cart line
//	@Description	Removes a line from the cart; unknown ids are a no-op
//	@Tags			cart
//	@Produce		json
//	@Param			X-Session-ID	header		string	false	"Cart session id"
//	@Param			item_id			path		string	true	"Menu item ID"
//	@Success		200				{object}	CartResponse
//	@Router			/cart/items/{item_id} [delete]
func (app *application) removeCartItemHandler(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "item_id")

	cart := app.sessions.Cart(app.sessionID(w, r))
	cart.Remove(itemID)

	if err := app.jsonRespone(w, http.StatusOK, app.cartResponse(cart)); err != nil {
		app.internalServerError(w, r, err)
	}
}

// clearCartHandler godoc
//
//	@Summary		Clear cart
//	@Description	Empties the session cart
//	@Tags			cart
//	@Produce		json
//	@Param			X-Session-ID	header		string	false	"Cart session id"
//	@Success		200				{object}	CartResponse
//	@Router			/cart [delete]
func (app *application) clearCartHandler(w http.ResponseWriter, r *http.Request) {
	cart := app.sessions.Cart(app.sessionID(w, r))
	cart.Clear()

	if err := app.jsonRespone(w, http.StatusOK, app.cartResponse(cart)); err != nil {
		app.internalServerError(w, r, err)
	}
}
