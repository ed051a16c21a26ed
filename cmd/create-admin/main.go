package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
	"syscall"

	"github.com/rkenterprise/site-backend/internal/config"
	"github.com/rkenterprise/site-backend/internal/database"
	"github.com/rkenterprise/site-backend/internal/logger"
	"github.com/rkenterprise/site-backend/internal/repository"
	"github.com/rkenterprise/site-backend/internal/service"
	"golang.org/x/term"
)

// Bootstraps the first admin account. The admin panel itself can create
// further accounts once one exists.
func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat)

	ctx := context.Background()

	// ─── Connect to PostgreSQL ─────────────────────────────────────────
	pool, err := database.NewPostgresPool(ctx, cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to connect to PostgreSQL")
	}
	defer pool.Close()

	// ─── Initialize Service ────────────────────────────────────────────
	adminUserRepo := repository.NewAdminUserRepository(pool)
	authService := service.NewAuthService(cfg)
	adminUserService := service.NewAdminUserService(adminUserRepo, authService)

	// ─── CLI Input ─────────────────────────────────────────────────────
	reader := bufio.NewReader(os.Stdin)

	fmt.Println("=== Create New Admin User ===")

	fmt.Print("Enter Username: ")
	username, _ := reader.ReadString('\n')
	username = strings.TrimSpace(username)
	if username == "" {
		fmt.Println("Error: Username is required")
		return
	}

	fmt.Print("Enter Password: ")
	bytePassword, err := term.ReadPassword(int(syscall.Stdin))
	if err != nil {
		fmt.Println("\nError reading password")
		return
	}
	password := string(bytePassword)
	fmt.Println() // Newline after password input
	if len(password) < 6 {
		fmt.Println("Error: Password must be at least 6 characters")
		return
	}

	// ─── Create Admin ──────────────────────────────────────────────────
	user, err := adminUserService.Create(ctx, username, password)
	if err != nil {
		log.Fatal().Err(err).Msg("Failed to create admin user")
	}

	fmt.Printf("\nSuccess! Admin '%s' created with ID: %d\n", user.Username, user.ID)
}
