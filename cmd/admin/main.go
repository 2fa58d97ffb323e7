// Package main implements an operator CLI for account maintenance tasks
// that have no HTTP surface: looking up an account and deleting one.
// Deleting an account also removes every expense it owns.
package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/spendtrack/spendtrack-api/internal/config"
	"github.com/spendtrack/spendtrack-api/internal/platform/logger"
	"github.com/spendtrack/spendtrack-api/internal/platform/postgres"
	"github.com/spendtrack/spendtrack-api/internal/service"
	"github.com/spendtrack/spendtrack-api/internal/service/auth"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if err == flag.ErrHelp {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("admin", flag.ContinueOnError)
	fs.SetOutput(stderr)

	email := fs.String("email", "", "Account email to operate on")
	deleteAccount := fs.Bool("delete", false, "Delete the account and its expenses")

	if err := fs.Parse(args); err != nil {
		return err
	}

	if *email == "" {
		fmt.Fprintln(stdout, "Usage: admin -email <address> [-delete]")
		fs.PrintDefaults()
		return fmt.Errorf("missing required flag: email")
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	appLogger, err := logger.Setup(cfg.Server)
	if err != nil {
		return fmt.Errorf("failed to set up logger: %w", err)
	}

	tokenService, err := auth.NewTokenService(cfg.Auth)
	if err != nil {
		return fmt.Errorf("failed to create token service: %w", err)
	}

	db := postgres.NewLazyDB(cfg.Database.URL)
	defer func() {
		_ = db.Close()
	}()

	hasher := auth.NewBcryptHasher()
	userStore := postgres.NewUserStore(db, appLogger)
	userService := service.NewUserService(userStore, hasher, hasher, tokenService, appLogger)

	ctx := context.Background()

	if *deleteAccount {
		deleted, err := userService.DeleteByEmail(ctx, *email)
		if err != nil {
			return fmt.Errorf("failed to delete account: %w", err)
		}
		if !deleted {
			fmt.Fprintf(stdout, "No account found for %s\n", *email)
			return nil
		}
		fmt.Fprintf(stdout, "Account %s deleted\n", *email)
		return nil
	}

	user, err := userService.FindByEmail(ctx, *email)
	if err != nil {
		return fmt.Errorf("failed to look up account: %w", err)
	}

	fmt.Fprintf(stdout, "ID:      %d\n", user.ID)
	fmt.Fprintf(stdout, "Name:    %s\n", user.Name)
	fmt.Fprintf(stdout, "Email:   %s\n", user.Email)
	fmt.Fprintf(stdout, "Created: %s\n", user.CreatedAt.Format("2006-01-02 15:04:05 MST"))
	return nil
}
