package controllers

import (
	"net/http"

	"github.com/rifqipratama/warungkita-backend/api/responses"
	"github.com/rifqipratama/warungkita-backend/api/validators"
	studiosvc "github.com/rifqipratama/warungkita-backend/internal/studio"
	pkgerrors "github.com/rifqipratama/warungkita-backend/pkg/errors"
	"github.com/rifqipratama/warungkita-backend/pkg/logger"
)

// StudioDescriptions generates three description variants for a draft listing.
func StudioDescriptions(svc studiosvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "studio service unavailable"))
			return
		}

		var payload descriptionRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		variants, err := svc.GenerateDescriptions(r.Context(), studiosvc.DescriptionInput{
			ProductName:    payload.ProductName,
			Features:       payload.Features,
			TargetAudience: payload.TargetAudience,
			WritingStyle:   payload.WritingStyle,
			ImageDataURI:   payload.Image,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]any{"variants": variants})
	}
}

// StudioImage generates a product image from a prompt.
func StudioImage(svc studiosvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "studio service unavailable"))
			return
		}

		var payload imageRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		image, err := svc.GenerateImage(r.Context(), payload.Prompt)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, map[string]string{"image_data_uri": image})
	}
}

// StudioPriceSuggestion returns structured price advice for a draft listing.
func StudioPriceSuggestion(svc studiosvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "studio service unavailable"))
			return
		}

		var payload priceRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		suggestion, err := svc.SuggestPrice(r.Context(), studiosvc.PriceInput{
			Name:        payload.Name,
			Category:    payload.Category,
			Description: payload.Description,
		})
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteSuccess(w, suggestion)
	}
}

type descriptionRequest struct {
	ProductName    string  `json:"product_name" validate:"required"`
	Features       string  `json:"features,omitempty"`
	TargetAudience string  `json:"target_audience,omitempty"`
	WritingStyle   string  `json:"writing_style,omitempty"`
	Image          *string `json:"image,omitempty"`
}

type imageRequest struct {
	Prompt string `json:"prompt" validate:"required"`
}

type priceRequest struct {
	Name        string `json:"name" validate:"required"`
	Category    string `json:"category" validate:"required"`
	Description string `json:"description,omitempty"`
}
