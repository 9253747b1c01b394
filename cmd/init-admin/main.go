package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
	dbutils "github.com/tendant/db-utils/db"

	"github.com/tendant/simple-ideas/pkg/config"
	"github.com/tendant/simple-ideas/pkg/role"
	"github.com/tendant/simple-ideas/pkg/setup"
	"github.com/tendant/simple-ideas/pkg/user"
)

type Config struct {
	DbConfig config.DatabaseConfig
}

func main() {
	email := flag.String("email", "", "Email of the existing user to promote to admin (required)")
	flag.Parse()

	if *email == "" {
		fmt.Println("Error: email is required")
		flag.Usage()
		os.Exit(1)
	}

	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		AddSource: true,
	}))
	slog.SetDefault(logger)

	cfg := Config{}
	cleanenv.ReadEnv(&cfg)

	dbConfig := cfg.DbConfig.ToDbConfig()
	pool, err := dbutils.NewDbPool(context.Background(), dbConfig)
	if err != nil {
		slog.Error("Failed creating dbpool", "db", dbConfig.Database, "host", dbConfig.Host, "port", dbConfig.Port, "user", dbConfig.User)
		os.Exit(1)
	}

	roleRepo := role.NewPostgresUserRoleRepository(pool)
	directory := user.NewPostgresUserDirectory(pool)
	setupService := setup.NewSetupService(roleRepo, directory)

	result, err := setupService.CreateFirstAdmin(context.Background(), *email)
	switch {
	case errors.Is(err, setup.ErrAlreadyInitialized):
		slog.Error("An admin user is already assigned, refusing to assign another", "email", *email)
		os.Exit(1)
	case errors.Is(err, setup.ErrUserNotFound):
		slog.Error("No user found with that email, create the user first", "email", *email)
		os.Exit(1)
	case err != nil:
		slog.Error("Failed to assign admin role", "email", *email, "error", err)
		os.Exit(1)
	}

	slog.Info("Admin role assigned", "email", result.Email, "user_id", result.UserID)
}
