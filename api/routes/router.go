package routes

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/ecobagapp/ecobag-backend/api/controllers"
	webhookcontrollers "github.com/ecobagapp/ecobag-backend/api/controllers/webhooks"
	"github.com/ecobagapp/ecobag-backend/api/middleware"
	"github.com/ecobagapp/ecobag-backend/internal/bagtypes"
	"github.com/ecobagapp/ecobag-backend/internal/cars"
	"github.com/ecobagapp/ecobag-backend/internal/family"
	"github.com/ecobagapp/ecobag-backend/internal/inventory"
	"github.com/ecobagapp/ecobag-backend/internal/locations"
	"github.com/ecobagapp/ecobag-backend/internal/payments"
	"github.com/ecobagapp/ecobag-backend/internal/social"
	"github.com/ecobagapp/ecobag-backend/internal/usage"
	"github.com/ecobagapp/ecobag-backend/internal/users"
	stripewebhook "github.com/ecobagapp/ecobag-backend/internal/webhooks/stripe"
	"github.com/ecobagapp/ecobag-backend/pkg/config"
	"github.com/ecobagapp/ecobag-backend/pkg/db"
	"github.com/ecobagapp/ecobag-backend/pkg/logger"
	"github.com/ecobagapp/ecobag-backend/pkg/redis"
	"github.com/ecobagapp/ecobag-backend/pkg/stripe"
)

// RouterParams carries every dependency the HTTP surface needs.
type RouterParams struct {
	Config *config.Config
	Logger *logger.Logger

	DBPinger    db.Pinger
	RedisPinger redis.Pinger

	Users     users.Service
	BagTypes  bagtypes.Service
	Cars      cars.Service
	Inventory inventory.Service
	Locations locations.Service
	Usage     usage.Service
	Family    *family.Service
	Social    *social.Service
	Payments  *payments.Service

	StripeClient       *stripe.Client
	StripeWebhookSvc   *stripewebhook.Service
	StripeWebhookGuard *stripewebhook.IdempotencyGuard
}

// NewRouter mounts the API. Everything under /api requires a bearer token
// except the Stripe webhook, which is signature-verified instead.
func NewRouter(p RouterParams) http.Handler {
	cfg := p.Config
	logg := p.Logger

	r := chi.NewRouter()
	r.Use(
		middleware.Recoverer(logg),
		middleware.RequestID(logg),
		middleware.Logging(logg),
		middleware.CORS(),
	)

	r.Route("/health", func(r chi.Router) {
		r.Get("/live", controllers.HealthLive(cfg))
		r.Get("/ready", controllers.HealthReady(cfg, logg, p.DBPinger, p.RedisPinger))
	})

	r.Post("/api/stripe/webhook", webhookcontrollers.StripeWebhook(p.StripeWebhookSvc, p.StripeClient, p.StripeWebhookGuard, logg))

	r.Route("/api", func(r chi.Router) {
		r.Use(middleware.Auth(cfg.JWT, logg))

		r.Get("/auth/user", controllers.AuthUser(p.Users, logg))
		r.Post("/setup/complete", controllers.SetupComplete(p.Users, logg))

		r.Route("/bag-types", func(r chi.Router) {
			r.Post("/", controllers.BagTypeCreate(p.BagTypes, logg))
			r.Get("/", controllers.BagTypeList(p.BagTypes, logg))
			r.Delete("/{bagTypeId}", controllers.BagTypeDelete(p.BagTypes, logg))
		})

		r.Route("/cars", func(r chi.Router) {
			r.Post("/", controllers.CarCreate(p.Cars, logg))
			r.Get("/", controllers.CarList(p.Cars, logg))
			r.Delete("/{carId}", controllers.CarDelete(p.Cars, logg))
			r.Route("/{carId}/inventory", func(r chi.Router) {
				r.Get("/", controllers.InventoryList(p.Inventory, logg))
				r.Post("/", controllers.InventorySet(p.Inventory, logg))
			})
		})

		r.Route("/locations", func(r chi.Router) {
			r.Post("/", controllers.LocationCreate(p.Locations, logg))
			r.Get("/", controllers.LocationList(p.Locations, logg))
			r.Post("/{locationId}/toggle", controllers.LocationToggle(p.Locations, logg))
			r.Delete("/{locationId}", controllers.LocationDelete(p.Locations, logg))
		})

		r.Route("/bag-usage", func(r chi.Router) {
			r.Post("/", controllers.BagUsageRecord(p.Usage, logg))
			r.Get("/", controllers.BagUsageRecent(p.Usage, logg))
		})
		r.Get("/savings", controllers.SavingsSummary(p.Usage, logg))

		r.Route("/family", func(r chi.Router) {
			r.Get("/", controllers.FamilyList(p.Family, logg))
			r.Post("/invite", controllers.FamilyInvite(p.Family, logg))
			r.Post("/invites/{inviteId}/accept", controllers.FamilyInviteAccept(p.Family, logg))
			r.Post("/invites/{inviteId}/decline", controllers.FamilyInviteDecline(p.Family, logg))
			r.Get("/savings", controllers.FamilySavings(p.Family, logg))
		})

		r.Route("/social-share", func(r chi.Router) {
			r.Post("/", controllers.SocialShareCreate(p.Social, logg))
			r.Get("/", controllers.SocialShareHistory(p.Social, logg))
		})

		r.Post("/create-payment-intent", controllers.CreatePaymentIntent(p.Payments, logg))
	})

	return r
}
