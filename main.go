// Command cinelog runs the backend for a social movie-tracking service:
// cookie-session authentication, per-user watched lists with ratings and
// notes, a follow graph, and an activity feed aggregated from followed
// users' lists. Everything is a short request/response cycle over MongoDB;
// there is no background work and no in-process shared state.
//
// @title Cinelog API
// @version 1.0
// @description REST API for the cinelog movie-tracking service.
// @BasePath /
package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/user/cinelog-go/auth"
	"github.com/user/cinelog-go/config"
	_ "github.com/user/cinelog-go/docs" // generated Swagger spec, registered on import
	"github.com/user/cinelog-go/feed"
	"github.com/user/cinelog-go/follow"
	"github.com/user/cinelog-go/movies"
	"github.com/user/cinelog-go/store"
	"github.com/user/cinelog-go/users"
)

func main() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	// .env is a development convenience; in production the variables are set
	// directly.
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env file not found, relying on the environment")
	}

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	ctx := context.Background()
	st, err := store.Open(ctx, cfg.Mongo)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}
	defer func() {
		if err := st.Close(context.Background()); err != nil {
			log.Warn().Err(err).Msg("error closing store")
		}
	}()

	if err := st.EnsureIndexes(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to create indexes")
	}

	userRepo := store.NewUserRepository(st)
	movieRepo := store.NewMovieRepository(st)

	authService := auth.NewService(userRepo, *cfg.Auth)
	authHandlers := auth.NewHandlers(authService, cfg.Server)

	movieHandlers := movies.NewHandlers(movies.NewService(movieRepo))
	followHandlers := follow.NewHandlers(follow.NewService(userRepo))
	feedHandlers := feed.NewHandlers(feed.NewService(userRepo, movieRepo))
	userHandlers := users.NewHandlers(users.NewService(userRepo, movieRepo))

	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL("/swagger/doc.json"),
	))

	// Auth endpoints are the only ones reachable without a session.
	r.Route("/auth", func(r chi.Router) {
		r.Post("/register", authHandlers.HandleRegister())
		r.Post("/login", authHandlers.HandleLogin())
		r.Post("/logout", authHandlers.HandleLogout())
	})

	sessionRequired := auth.Middleware(authService)

	r.Route("/movies", func(r chi.Router) {
		r.Use(sessionRequired)
		movieHandlers.RegisterRoutes(r)
	})

	r.Route("/follow", func(r chi.Router) {
		r.Use(sessionRequired)
		followHandlers.RegisterRoutes(r)
	})

	r.Group(func(r chi.Router) {
		r.Use(sessionRequired)
		r.Get("/feed", feedHandlers.HandleGetFeed())
		r.Get("/users/{identifier}/movies", userHandlers.HandleGetUserMovies())
	})

	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Info().Str("addr", addr).Str("env", cfg.Server.Env).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("failed to start server")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info().Msg("server shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server shutdown failed")
	}
	log.Info().Msg("server stopped gracefully")
}

// requestLogger logs one structured line per request with method, path,
// status and duration.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()

		next.ServeHTTP(ww, r)

		log.Info().
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("duration", time.Since(start)).
			Str("request_id", middleware.GetReqID(r.Context())).
			Msg("request")
	})
}
