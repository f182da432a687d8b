package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/rifqipratama/warungkita-backend/api/controllers"
	cartcontrollers "github.com/rifqipratama/warungkita-backend/api/controllers/cart"
	checkoutcontrollers "github.com/rifqipratama/warungkita-backend/api/controllers/checkout"
	"github.com/rifqipratama/warungkita-backend/api/middleware"
	cartsvc "github.com/rifqipratama/warungkita-backend/internal/cart"
	catalogsvc "github.com/rifqipratama/warungkita-backend/internal/catalog"
	checkoutsvc "github.com/rifqipratama/warungkita-backend/internal/checkout"
	studiosvc "github.com/rifqipratama/warungkita-backend/internal/studio"
	"github.com/rifqipratama/warungkita-backend/pkg/config"
	"github.com/rifqipratama/warungkita-backend/pkg/db"
	"github.com/rifqipratama/warungkita-backend/pkg/logger"
)

// RouterParams collect everything the HTTP surface depends on.
type RouterParams struct {
	Config   *config.Config
	Logger   *logger.Logger
	DB       db.Pinger
	Catalog  catalogsvc.Service
	Cart     cartsvc.Service
	Checkout checkoutsvc.Service
	Studio   studiosvc.Service
	Gatherer prometheus.Gatherer
}

// NewRouter wires the full HTTP surface.
func NewRouter(params RouterParams) http.Handler {
	cfg := params.Config
	logg := params.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, params.DB))
	})

	if params.Gatherer != nil {
		r.Method(http.MethodGet, "/metrics", promhttp.HandlerFor(params.Gatherer, promhttp.HandlerOpts{}))
	}

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/products", func(r chi.Router) {
			r.Get("/", controllers.ListProducts(params.Catalog, logg))
			r.Get("/{productId}", controllers.GetProduct(params.Catalog, logg))
		})
		r.Get("/sellers", controllers.ListSellers(params.Catalog, logg))

		r.Route("/carts", func(r chi.Router) {
			r.Post("/", cartcontrollers.Create(params.Cart, logg))
			r.Route("/{cartId}", func(r chi.Router) {
				r.Get("/", cartcontrollers.Fetch(params.Cart, logg))
				r.Put("/direct-sale", cartcontrollers.SetDirectSale(params.Cart, logg))
				r.Post("/items", cartcontrollers.AddItem(params.Cart, logg))
				r.Patch("/items/{itemId}", cartcontrollers.UpdateQuantity(params.Cart, logg))
				r.Delete("/items/{itemId}", cartcontrollers.RemoveItem(params.Cart, cfg.Cart.RemovalGraceMS, logg))
			})
		})

		r.Get("/shipping-options", checkoutcontrollers.ShippingOptions(params.Checkout, logg))

		r.Route("/checkout/sessions", func(r chi.Router) {
			r.Post("/", checkoutcontrollers.Start(params.Checkout, logg))
			r.Route("/{sessionId}", func(r chi.Router) {
				r.Get("/", checkoutcontrollers.Fetch(params.Checkout, logg))
				r.Delete("/", checkoutcontrollers.Abandon(params.Checkout, logg))
				r.Post("/address", checkoutcontrollers.SubmitAddress(params.Checkout, logg))
				r.Post("/shipping", checkoutcontrollers.SubmitShipping(params.Checkout, logg))
				r.Post("/payment", checkoutcontrollers.SubmitPayment(params.Checkout, logg))
				r.Post("/back", checkoutcontrollers.Back(params.Checkout, logg))
				r.Post("/qris/paid", checkoutcontrollers.MarkQRISPaid(params.Checkout, logg))
				r.Get("/payment-status", checkoutcontrollers.PaymentStatus(params.Checkout, logg))
			})
		})

		r.Route("/studio", func(r chi.Router) {
			r.Post("/descriptions", controllers.StudioDescriptions(params.Studio, logg))
			r.Post("/images", controllers.StudioImage(params.Studio, logg))
			r.Post("/price-suggestions", controllers.StudioPriceSuggestion(params.Studio, logg))
		})
	})

	return r
}
