package main

import "net/http"

type ContactResponse struct {
	Name    string `json:"name"`
	Phone   string `json:"phone"`
	Email   string `json:"email"`
	Address string `json:"address"`
	Hours   string `json:"hours"`
}

// contactHandler godoc
//
//	@Summary		Contact details
//	@Description	Restaurant contact info and business hours
//	@Tags			contact
//	@Produce		json
//	@Success		200	{object}	ContactResponse
//	@Router			/contact [get]
func (app *application) contactHandler(w http.ResponseWriter, r *http.Request) {
	response := ContactResponse{
		Name:    app.config.restaurant.Name,
		Phone:   app.config.restaurant.Phone,
		Email:   app.config.restaurant.Email,
		Address: app.config.restaurant.Address,
		Hours:   app.config.restaurant.Hours,
	}

	if err := app.jsonRespone(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
	}
}
