// internal/wire/wire.go
package wire

import (
	"net/http"

	"helper-booking/internal/adaptor"
	"helper-booking/internal/data/repository"
	"helper-booking/internal/usecase"
	"helper-booking/pkg/database"
	"helper-booking/pkg/middleware"
	"helper-booking/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

// App holds the wired application
type App struct {
	Router *chi.Mux
}

// Wiring initializes services, handlers and routes. memRepo is the
// memory-backed repository the auth middleware rechecks identities
// against while the primary store is unreachable.
func Wiring(repo, memRepo *repository.Repository, config *utils.Config, state *database.ConnState, logger *zap.Logger) *App {
	service := usecase.NewService(repo, config, logger)
	handler := adaptor.NewHandler(service, logger)

	router := setupRouter(handler, memRepo, config, state, logger)

	return &App{
		Router: router,
	}
}

// setupRouter configures the chi router
func setupRouter(
	handler *adaptor.Handler,
	memRepo *repository.Repository,
	config *utils.Config,
	state *database.ConnState,
	logger *zap.Logger,
) *chi.Mux {
	r := chi.NewRouter()

	// Apply global middleware
	r.Use(middleware.Logger(logger))
	r.Use(middleware.Recover(logger))
	r.Use(middleware.CORS())

	// One auth middleware instance shared by every protected group
	auth := middleware.Auth(config.JWT.Secret, memRepo.User, state, logger)

	// Apply routes
	wireAuth(r, handler.Auth, auth)
	wireBooking(r, handler.Booking, auth)
	wireWallet(r, handler.Wallet, auth)
	wireCommunity(r, handler.Community, auth)

	// Health check reports which store is serving requests
	r.Get("/health", func(w http.ResponseWriter, req *http.Request) {
		store := "memory"
		if state.Connected() {
			store = "mongo"
		}
		utils.WriteJSON(w, http.StatusOK, map[string]string{
			"status": "ok",
			"store":  store,
		})
	})

	return r
}
