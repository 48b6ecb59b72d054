package main

import (
	"net/http"

	"github.com/Raguramgit/retro-restaurant/internal/domain"
	"github.com/Raguramgit/retro-restaurant/internal/service"
)

type CreateReviewRequest struct {
	CustomerName string `json:"customer_name" validate:"required"`
	Rating       int    `json:"rating" validate:"required,min=1,max=5"`
	Comment      string `json:"comment" validate:"required,min=10"`
}

type ReviewListResponse struct {
	Summary service.ReviewSummary `json:"summary"`
	Reviews []domain.Review       `json:"reviews"`
}

// listReviewsHandler godoc
//
//	@Summary		List reviews
//	@Description	Returns reviews newest-first with an average-rating summary
//	@Tags			reviews
//	@Produce		json
//	@Success		200	{object}	ReviewListResponse
//	@Failure		500	{object}	map[string]string
//	@Router			/reviews [get]
func (app *application) listReviewsHandler(w http.ResponseWriter, r *http.Request) {
	reviews, err := app.reviewService.List(r.Context())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	response := ReviewListResponse{
		Summary: service.Summarize(reviews),
		Reviews: reviews,
	}

	if err := app.jsonRespone(w, http.StatusOK, response); err != nil {
		app.internalServerError(w, r, err)
	}
}

// createReviewHandler godoc
//
//	@Summary		Submit a review
//	@Description	Records a customer review; comments must be at least 10 characters
//	@Tags			reviews
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateReviewRequest	true	"Review"
//	@Success		201		{object}	domain.Review
//	@Failure		400		{object}	map[string]string
//	@Router			/reviews [post]
func (app *application) createReviewHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateReviewRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	review, err := app.reviewService.Submit(r.Context(), req.CustomerName, req.Rating, req.Comment)
	if err != nil {
		if domain.IsValidationError(err) {
			app.badRequestResponse(w, r, err)
			return
		}
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusCreated, review); err != nil {
		app.internalServerError(w, r, err)
	}
}
