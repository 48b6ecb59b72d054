package main

import (
	"net/http"

	"github.com/Raguramgit/retro-restaurant/internal/domain"
	"github.com/go-chi/chi"
)

// listMenuHandler godoc
//
//	@Summary		List menu items
//	@Description	Lists the full menu, optionally filtered by category
//	@Tags			menu
//	@Produce		json
//	@Param			category	query		string	false	"Category filter"
//	@Success		200			{array}		domain.MenuItem
//	@Failure		400			{object}	map[string]string
//	@Router			/menu [get]
func (app *application) listMenuHandler(w http.ResponseWriter, r *http.Request) {
	items := app.catalog.Items()

	if category := r.URL.Query().Get("category"); category != "" {
		if !domain.ValidCategory(domain.Category(category)) {
			app.badRequestResponse(w, r, domain.NewValidationError("category", "unknown category"))
			return
		}
		items = app.catalog.ItemsByCategory(domain.Category(category))
	}

	if err := app.jsonRespone(w, http.StatusOK, items); err != nil {
		app.internalServerError(w, r, err)
	}
}

// listCategoriesHandler godoc
//
//	@Summary		List menu categories
//	@Description	Returns the fixed category enumeration
//	@Tags			menu
//	@Produce		json
//	@Success		200	{array}	string
//	@Router			/menu/categories [get]
func (app *application) listCategoriesHandler(w http.ResponseWriter, r *http.Request) {
	if err := app.jsonRespone(w, http.StatusOK, domain.Categories()); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getMenuItemHandler godoc
//
//	@Summary		Get menu item
//	@Description	Get a single menu item by id
//	@Tags			menu
//	@Produce		json
//	@Param			item_id	path		string	true	"Menu item ID"
//	@Success		200		{object}	domain.MenuItem
//	@Failure		404		{object}	map[string]string
//	@Router			/menu/{item_id} [get]
func (app *application) getMenuItemHandler(w http.ResponseWriter, r *http.Request) {
	itemID := chi.URLParam(r, "item_id")

	item, ok := app.catalog.Lookup(itemID)
	if !ok {
		app.notFoundError(w, r, domain.ErrNotFound)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, item); err != nil {
		app.internalServerError(w, r, err)
	}
}
