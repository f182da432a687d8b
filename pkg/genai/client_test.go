package genai

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	pkgerrors "github.com/rifqipratama/warungkita-backend/pkg/errors"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := NewClient("test-key", WithBaseURL(server.URL), WithHTTPClient(server.Client()))
	if err != nil {
		t.Fatalf("new client: %v", err)
	}
	return client
}

func TestNewClientRequiresAPIKey(t *testing.T) {
	if _, err := NewClient("   "); err == nil {
		t.Fatal("expected error for blank api key")
	}
}

func TestGenerateDescriptionsReturnsThreeVariants(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/descriptions" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if got := r.Header.Get("Authorization"); got != "Bearer test-key" {
			t.Fatalf("unexpected auth header %q", got)
		}
		var req DescriptionRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Fatalf("decode request: %v", err)
		}
		if req.ProductName != "Kopi Gayo" {
			t.Fatalf("unexpected product name %q", req.ProductName)
		}
		_ = json.NewEncoder(w).Encode(map[string]any{
			"variants": []string{"v satu", "v dua", "v tiga"},
		})
	})

	variants, err := client.GenerateDescriptions(context.Background(), DescriptionRequest{ProductName: "Kopi Gayo"})
	if err != nil {
		t.Fatalf("generate descriptions: %v", err)
	}
	if len(variants) != 3 {
		t.Fatalf("expected 3 variants, got %d", len(variants))
	}
}

func TestGenerateDescriptionsRejectsMalformedResponse(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{
			"variants": []string{"only one"},
		})
	})

	_, err := client.GenerateDescriptions(context.Background(), DescriptionRequest{ProductName: "Kopi Gayo"})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency error, got %v", err)
	}
}

func TestGenerateDescriptionsRequiresProductName(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("request should not reach the service")
	})

	_, err := client.GenerateDescriptions(context.Background(), DescriptionRequest{})
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
}

func TestGenerateImageValidatesDataURI(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]string{"image_data_uri": "https://not-a-data-uri"})
	})

	_, err := client.GenerateImage(context.Background(), "batik shirt on mannequin")
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency error, got %v", err)
	}
}

func TestSuggestPriceDecodesPayload(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(PriceSuggestion{SuggestedPrice: 85000, Reasoning: "comparable listings"})
	})

	suggestion, err := client.SuggestPrice(context.Background(), PriceRequest{Name: "Keripik Pisang", Category: "food"})
	if err != nil {
		t.Fatalf("suggest price: %v", err)
	}
	if suggestion.SuggestedPrice != 85000 {
		t.Fatalf("unexpected price %d", suggestion.SuggestedPrice)
	}
}

func TestServerErrorSurfacesAsDependencyError(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "overloaded", http.StatusServiceUnavailable)
	})

	_, err := client.GenerateImage(context.Background(), "foto produk")
	typed := pkgerrors.As(err)
	if typed == nil || typed.Code() != pkgerrors.CodeDependency {
		t.Fatalf("expected dependency error, got %v", err)
	}
}
