package http

import (
	"log/slog"
	"net/http"
	"time"

	"userhub-go/internal/hub/service"
	"userhub-go/internal/hub/store"
	"userhub-go/pkg/httpx"
	"userhub-go/pkg/slogx"

	_ "userhub-go/api/hub" // Swagger docs
	httpSwagger "github.com/swaggo/http-swagger"
)

// Router holds shared dependencies for HTTP handlers.
type Router struct {
	Mux         *http.ServeMux
	middlewares []httpx.Middleware

	buildVersion string
	startTime    time.Time
	logger       *slog.Logger

	store             store.Store
	SessionService    *service.SessionService
	ExchangeService   *service.ExchangeService
	InvitationService *service.InvitationService
}

func NewRouter(buildVersion string, st store.Store, logger *slog.Logger) *Router {
	r := &Router{
		Mux:          http.NewServeMux(),
		buildVersion: buildVersion,
		startTime:    time.Now(),
		store:        st,
		logger:       logger,
	}

	// Set default middleware chain
	r.middlewares = []httpx.Middleware{
		slogx.HTTPMiddleware(r.logger),
	}

	return r
}

func (r *Router) ApplyRoutes() {
	r.registerSessions()
	r.registerInvitations()
	r.registerSystem()

	r.Mux.Handle("/swagger/", httpSwagger.Handler())
}

// ServeHTTP implements http.Handler for Router and applies the global middleware chain.
//
//	@title			UserHub Emulator API
//	@version		0.1.0
//	@description	Local stand-in for the hosted UserHub identity and membership service.
//	@description	Issues API session tokens and records join-organization invitations
//	@description	using the same wire contract as the hosted product.
//
//	@host						localhost:8080
//	@BasePath					/
//
//	@schemes					http https
//
//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				API session token. Format: "Bearer {token}".
func (r *Router) ServeHTTP(w http.ResponseWriter, req *http.Request) {
	httpx.Chain(r.Mux, r.middlewares...).ServeHTTP(w, req)
}

func (r *Router) registerSessions() {
	// POST /adminapi/users/create-api-session - strict rate limit by IP
	// (password authentication attempts)
	sessionHandler := &SessionCreateHandler{SessionService: r.SessionService}
	r.Mux.Handle("POST /adminapi/users/create-api-session",
		httpx.Chain(sessionHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)

	// POST /userapi/session/exchange-token - strict rate limit by IP
	// (provider tokens are credentials too)
	exchangeHandler := &TokenExchangeHandler{ExchangeService: r.ExchangeService}
	r.Mux.Handle("POST /userapi/session/exchange-token",
		httpx.Chain(exchangeHandler,
			httpx.RateLimitByIP(httpx.StrictLimit),
		),
	)
}

func (r *Router) registerInvitations() {
	// POST /flows/create-join-organization - authenticated, moderate rate
	// limit by user
	h := &InvitationCreateHandler{InvitationService: r.InvitationService}
	secured := httpx.Chain(h,
		AuthnMiddleware(r.SessionService),
		httpx.RateLimitByUser(httpx.ModerateLimit),
	)

	r.Mux.Handle("POST /userapi/flows/create-join-organization", secured)
}

func (r *Router) registerSystem() {
	// Health check endpoints - lenient rate limits (monitoring systems may poll frequently)
	r.Mux.Handle("GET /livez",
		httpx.Chain(LivezHandler(r.startTime, r.buildVersion),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
	r.Mux.Handle("GET /readyz",
		httpx.Chain(ReadyzHandler(r.startTime, r.buildVersion, r.store),
			httpx.RateLimitByIP(httpx.LenientLimit),
		),
	)
}
