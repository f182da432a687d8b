package controllers

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	studiosvc "github.com/rifqipratama/warungkita-backend/internal/studio"
	pkgerrors "github.com/rifqipratama/warungkita-backend/pkg/errors"
	"github.com/rifqipratama/warungkita-backend/pkg/genai"
)

type stubStudioService struct {
	variants   []string
	image      string
	suggestion *genai.PriceSuggestion
	err        error
}

func (s *stubStudioService) GenerateDescriptions(context.Context, studiosvc.DescriptionInput) ([]string, error) {
	return s.variants, s.err
}

func (s *stubStudioService) GenerateImage(context.Context, string) (string, error) {
	return s.image, s.err
}

func (s *stubStudioService) SuggestPrice(context.Context, studiosvc.PriceInput) (*genai.PriceSuggestion, error) {
	return s.suggestion, s.err
}

func TestStudioDescriptionsReturnsVariants(t *testing.T) {
	stub := &stubStudioService{variants: []string{"a", "b", "c"}}

	payload := `{"product_name":"Kopi Gayo"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/studio/descriptions", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	StudioDescriptions(stub, testLogger()).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var body struct {
		Data struct {
			Variants []string `json:"variants"`
		} `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(body.Data.Variants) != 3 {
		t.Fatalf("variants = %d, want 3", len(body.Data.Variants))
	}
}

func TestStudioDescriptionsRequiresProductName(t *testing.T) {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/studio/descriptions", strings.NewReader(`{}`))
	rec := httptest.NewRecorder()
	StudioDescriptions(&stubStudioService{}, testLogger()).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestStudioImageDependencyFailureMapsTo503(t *testing.T) {
	stub := &stubStudioService{err: pkgerrors.New(pkgerrors.CodeDependency, "generation failed")}

	req := httptest.NewRequest(http.MethodPost, "/api/v1/studio/images", strings.NewReader(`{"prompt":"tas rotan"}`))
	rec := httptest.NewRecorder()
	StudioImage(stub, testLogger()).ServeHTTP(rec, req)

	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("expected 503, got %d", rec.Code)
	}
}

func TestStudioPriceSuggestion(t *testing.T) {
	stub := &stubStudioService{suggestion: &genai.PriceSuggestion{SuggestedPrice: 150000, Reasoning: "comparable listings"}}

	payload := `{"name":"Tas Rotan","category":"craft"}`
	req := httptest.NewRequest(http.MethodPost, "/api/v1/studio/price-suggestions", strings.NewReader(payload))
	rec := httptest.NewRecorder()
	StudioPriceSuggestion(stub, testLogger()).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body struct {
		Data genai.PriceSuggestion `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Data.SuggestedPrice != 150000 {
		t.Fatalf("suggested price = %d", body.Data.SuggestedPrice)
	}
}
