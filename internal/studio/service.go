package studio

import (
	"context"
	"strings"

	"github.com/rifqipratama/warungkita-backend/pkg/enums"
	pkgerrors "github.com/rifqipratama/warungkita-backend/pkg/errors"
	"github.com/rifqipratama/warungkita-backend/pkg/genai"
	"github.com/rifqipratama/warungkita-backend/pkg/logger"
)

// Service is the seller listing studio: generated descriptions, product
// images and price suggestions for a draft listing. Every generation failure
// surfaces to the seller inline; nothing here retries.
type Service interface {
	GenerateDescriptions(ctx context.Context, input DescriptionInput) ([]string, error)
	GenerateImage(ctx context.Context, prompt string) (string, error)
	SuggestPrice(ctx context.Context, input PriceInput) (*genai.PriceSuggestion, error)
}

// DescriptionInput is the seller's brief for description variants.
type DescriptionInput struct {
	ProductName    string
	Features       string
	TargetAudience string
	WritingStyle   string
	ImageDataURI   *string
}

// PriceInput is the draft listing submitted for price advice.
type PriceInput struct {
	Name        string
	Category    string
	Description string
}

type generator interface {
	GenerateDescriptions(ctx context.Context, req genai.DescriptionRequest) ([]string, error)
	GenerateImage(ctx context.Context, prompt string) (string, error)
	SuggestPrice(ctx context.Context, req genai.PriceRequest) (*genai.PriceSuggestion, error)
}

type service struct {
	gen  generator
	logg *logger.Logger
}

// NewService builds the listing studio service.
func NewService(gen generator, logg *logger.Logger) (Service, error) {
	if gen == nil {
		return nil, pkgerrors.New(pkgerrors.CodeInternal, "generator client required")
	}
	return &service{gen: gen, logg: logg}, nil
}

func (s *service) GenerateDescriptions(ctx context.Context, input DescriptionInput) ([]string, error) {
	if strings.TrimSpace(input.ProductName) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "product name required").
			WithDetails(map[string]string{"product_name": "is required"})
	}

	variants, err := s.gen.GenerateDescriptions(ctx, genai.DescriptionRequest{
		ProductName:    strings.TrimSpace(input.ProductName),
		Features:       strings.TrimSpace(input.Features),
		TargetAudience: strings.TrimSpace(input.TargetAudience),
		WritingStyle:   strings.TrimSpace(input.WritingStyle),
		ImageDataURI:   input.ImageDataURI,
	})
	if err != nil {
		if s.logg != nil {
			s.logg.Error(ctx, "description generation failed", err)
		}
		return nil, err
	}
	return variants, nil
}

func (s *service) GenerateImage(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", pkgerrors.New(pkgerrors.CodeValidation, "prompt required").
			WithDetails(map[string]string{"prompt": "is required"})
	}

	image, err := s.gen.GenerateImage(ctx, strings.TrimSpace(prompt))
	if err != nil {
		if s.logg != nil {
			s.logg.Error(ctx, "image generation failed", err)
		}
		return "", err
	}
	return image, nil
}

func (s *service) SuggestPrice(ctx context.Context, input PriceInput) (*genai.PriceSuggestion, error) {
	if strings.TrimSpace(input.Name) == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "name required").
			WithDetails(map[string]string{"name": "is required"})
	}
	category, err := enums.ParseProductCategory(strings.TrimSpace(input.Category))
	if err != nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "unknown product category").
			WithDetails(map[string]string{"category": "must be a known category"})
	}

	suggestion, err := s.gen.SuggestPrice(ctx, genai.PriceRequest{
		Name:        strings.TrimSpace(input.Name),
		Category:    category.String(),
		Description: strings.TrimSpace(input.Description),
	})
	if err != nil {
		if s.logg != nil {
			s.logg.Error(ctx, "price suggestion failed", err)
		}
		return nil, err
	}
	return suggestion, nil
}
