package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/jwtauth/v5"
	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
	"github.com/tendant/chi-demo/app"
	dbutils "github.com/tendant/db-utils/db"

	"github.com/tendant/simple-ideas/pkg/client"
	"github.com/tendant/simple-ideas/pkg/config"
	"github.com/tendant/simple-ideas/pkg/idea"
	ideaapi "github.com/tendant/simple-ideas/pkg/idea/api"
	"github.com/tendant/simple-ideas/pkg/role"
	roleapi "github.com/tendant/simple-ideas/pkg/role/api"
	"github.com/tendant/simple-ideas/pkg/setup"
	setupapi "github.com/tendant/simple-ideas/pkg/setup/api"
	"github.com/tendant/simple-ideas/pkg/user"
)

type Config struct {
	DbConfig  config.DatabaseConfig
	JwtConfig config.JwtConfig
	AppConfig app.AppConfig
}

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		AddSource: true,
	}))
	slog.SetDefault(logger)

	// Load .env if present; real env vars win
	if err := godotenv.Load(); err == nil {
		slog.Info("Configuration loaded from .env file")
	}

	cfg := Config{}
	cleanenv.ReadEnv(&cfg)

	pool, err := dbutils.NewDbPool(context.Background(), cfg.DbConfig.ToDbConfig())
	if err != nil {
		slog.Error("Failed creating dbpool", "db", cfg.DbConfig.Database, "host", cfg.DbConfig.Host, "port", cfg.DbConfig.Port, "user", cfg.DbConfig.User)
		os.Exit(1)
	}

	ideaRepo := idea.NewPostgresIdeaRepository(pool)
	roleRepo := role.NewPostgresUserRoleRepository(pool)
	directory := user.NewPostgresUserDirectory(pool)

	roleService := role.NewRoleService(roleRepo)
	ideaService := idea.NewIdeaService(ideaRepo, roleService, directory)
	setupService := setup.NewSetupService(roleRepo, directory)

	ideaHandler := ideaapi.NewHandler(ideaService)
	roleHandle := roleapi.NewHandle(roleService)
	setupHandler := setupapi.NewHandler(setupService)

	auth := jwtauth.New("HS256", []byte(cfg.JwtConfig.Secret), nil)

	server := app.DefaultApp()
	app.RoutesHealthz(server.R)

	server.R.Use(client.Verifier(auth))

	server.R.Route("/api", func(r chi.Router) {
		// Setup endpoints are public; CreateFirstAdmin works at most once
		r.Route("/setup", func(r chi.Router) {
			setupHandler.RegisterRoutes(r)
		})

		// Identity-aware but anonymous-friendly
		r.Route("/me", func(r chi.Router) {
			r.Use(client.OptionalAuthUserMiddleware)
			roleHandle.RegisterRoutes(r)
		})

		r.Route("/ideas", func(r chi.Router) {
			ideaHandler.RegisterPublicRoutes(r)

			r.Group(func(r chi.Router) {
				r.Use(jwtauth.Authenticator(auth))
				r.Use(client.AuthUserMiddleware)
				ideaHandler.RegisterProtectedRoutes(r)
			})
		})
	})

	if hasAdmin, err := setupService.HasAdminUser(context.Background()); err != nil {
		slog.Error("Failed to check for admin user", "error", err)
	} else if !hasAdmin {
		slog.Info("No admin assigned yet, POST /api/setup/admin to assign one")
	}

	server.Run()
}
