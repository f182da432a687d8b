package controllers

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	catalogsvc "github.com/rifqipratama/warungkita-backend/internal/catalog"
	"github.com/rifqipratama/warungkita-backend/pkg/db/models"
	"github.com/rifqipratama/warungkita-backend/pkg/enums"
	pkgerrors "github.com/rifqipratama/warungkita-backend/pkg/errors"
	"github.com/rifqipratama/warungkita-backend/pkg/logger"
)

func testLogger() *logger.Logger {
	return logger.New(logger.Options{ServiceName: "test", Output: io.Discard})
}

type stubCatalogService struct {
	products   []models.Product
	product    *models.Product
	sellers    []models.Seller
	err        error
	lastFilter catalogsvc.ListFilter
}

func (s *stubCatalogService) ListProducts(_ context.Context, filter catalogsvc.ListFilter) ([]models.Product, error) {
	s.lastFilter = filter
	return s.products, s.err
}

func (s *stubCatalogService) FindProductByID(context.Context, uuid.UUID) (*models.Product, error) {
	return s.product, s.err
}

func (s *stubCatalogService) ListSellers(context.Context) ([]models.Seller, error) {
	return s.sellers, s.err
}

func (s *stubCatalogService) FindSellerByID(context.Context, uuid.UUID) (*models.Seller, error) {
	panic("unimplemented")
}

func (s *stubCatalogService) FindSellersByIDs(context.Context, []uuid.UUID) ([]models.Seller, error) {
	panic("unimplemented")
}

func TestListProductsPassesCategoryFilter(t *testing.T) {
	stub := &stubCatalogService{products: []models.Product{}}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products?category=food", nil)
	rec := httptest.NewRecorder()
	ListProducts(stub, testLogger()).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if stub.lastFilter.Category != enums.ProductCategoryFood {
		t.Fatalf("filter category = %q", stub.lastFilter.Category)
	}
}

func TestListProductsRejectsUnknownCategory(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/products?category=gadgets", nil)
	rec := httptest.NewRecorder()
	ListProducts(&stubCatalogService{}, testLogger()).ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestGetProductNotFound(t *testing.T) {
	stub := &stubCatalogService{err: pkgerrors.New(pkgerrors.CodeNotFound, "product not found")}
	productID := uuid.New()

	req := httptest.NewRequest(http.MethodGet, "/api/v1/products/"+productID.String(), nil)
	routeCtx := chi.NewRouteContext()
	routeCtx.URLParams.Add("productId", productID.String())
	req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, routeCtx))
	rec := httptest.NewRecorder()
	GetProduct(stub, testLogger()).ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func TestListSellersReturnsEnvelope(t *testing.T) {
	stub := &stubCatalogService{sellers: []models.Seller{{ID: uuid.New(), Name: "Warung Bu Tini"}}}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/sellers", nil)
	rec := httptest.NewRecorder()
	ListSellers(stub, testLogger()).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var body struct {
		Data []models.Seller `json:"data"`
	}
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(body.Data) != 1 || body.Data[0].Name != "Warung Bu Tini" {
		t.Fatalf("unexpected sellers %+v", body.Data)
	}
}
