package routing

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.mongodb.org/mongo-driver/mongo"

	"compositions/pkg/composition"
	"compositions/pkg/handlers"
	"compositions/pkg/middleware"
	"compositions/pkg/session"
	"compositions/pkg/user"
)

const shutdownTimeout = 10 * time.Second

type Services struct {
	Compositions composition.ServiceComposition
	Users        user.ServiceInterface
	Sessions     session.Repository
}

// InitRoutes wires the Mongo and MySQL backed services into a router.
func InitRoutes(mongoDB *mongo.Database, db *sql.DB, logger *slog.Logger, jwtSecret string) *mux.Router {
	sessionRepo := session.NewMySQLSessionRepo(db)
	userRepo := user.NewMongoRepo(mongoDB)

	return NewRouter(Services{
		Compositions: composition.NewService(composition.NewMongoRepo(mongoDB), userRepo),
		Users:        user.NewService(userRepo, sessionRepo),
		Sessions:     sessionRepo,
	}, logger, jwtSecret, middleware.NewMetrics())
}

func NewRouter(svc Services, logger *slog.Logger, jwtSecret string, metrics *middleware.Metrics) *mux.Router {
	compositionHandler := handlers.NewCompositionHandler(svc.Compositions, logger)
	userHandler := handlers.NewUserHandler(svc.Users, logger, jwtSecret)
	jwtAuth := middleware.CheckJWT(jwtSecret, svc.Sessions, logger)

	r := mux.NewRouter()
	r.Use(middleware.AccessLog(logger), metrics.Middleware, middleware.Panic(logger))

	r.Handle("/metrics", promhttp.HandlerFor(metrics.Registry, promhttp.HandlerOpts{})).Methods("GET")

	/* auth routers */
	r.HandleFunc("/users", userHandler.Register).Methods("POST").Name("register")
	r.HandleFunc("/auth/login", userHandler.Login).Methods("POST").Name("login")

	/* compositions routers */
	compositionsRouter := r.PathPrefix("/compositions").Subrouter()
	compositionsRouter.HandleFunc("", compositionHandler.GetAll).Methods("GET")
	compositionsRouter.HandleFunc("", compositionHandler.Create).Methods("POST")
	compositionsRouter.Handle("/currentuser", jwtAuth(http.HandlerFunc(compositionHandler.GetCurrentUser))).Methods("GET")
	compositionsRouter.HandleFunc("/{"+handlers.MuxVarCompositionID+"}", compositionHandler.Delete).Methods("DELETE")

	return r
}

// StartServer serves h on addr until ctx is cancelled, then drains
// in-flight requests.
func StartServer(ctx context.Context, addr string, h http.Handler, logger *slog.Logger) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server is running", "addr", addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}
