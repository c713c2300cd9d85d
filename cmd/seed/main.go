// seed registers a demo user in the configured store and prints a session
// token for it.
// Run: go run ./cmd/seed
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/ErlanBelekov/accounts/config"
	"github.com/ErlanBelekov/accounts/internal/domain"
	"github.com/ErlanBelekov/accounts/internal/email"
	"github.com/ErlanBelekov/accounts/internal/infrastructure/store"
	ctxlog "github.com/ErlanBelekov/accounts/internal/log"
	"github.com/ErlanBelekov/accounts/internal/password"
	"github.com/ErlanBelekov/accounts/internal/token"
	"github.com/ErlanBelekov/accounts/internal/usecase"
)

const (
	seedName     = "Seed User"
	seedEmail    = "seed@test.local"
	seedPassword = "seed-password"
)

func main() {
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	if cfg.StoreDriver == "memory" {
		log.Fatal("STORE_DRIVER=memory does not persist; seed sqlite or postgres")
	}

	logger := ctxlog.New(os.Stderr, cfg.Env, cfg.SlogLevel())

	users, closeStore, err := store.Open(ctx, cfg)
	if err != nil {
		log.Fatalf("store: %v", err)
	}
	defer closeStore()

	uc := usecase.NewAuthUsecase(
		users,
		password.NewHasher(cfg.BcryptCost),
		token.NewService([]byte(cfg.JWTSecret), cfg.TokenTTL),
		email.NewLogSender(logger),
		logger,
	)

	created := true
	if _, err := uc.Register(ctx, usecase.RegisterInput{Name: seedName, Email: seedEmail, Password: seedPassword}); err != nil {
		if !errors.Is(err, domain.ErrDuplicateEmail) {
			closeStore()
			log.Fatalf("register: %v", err)
		}
		created = false
	}

	u, err := users.FindByEmail(ctx, seedEmail)
	if err != nil {
		closeStore()
		log.Fatalf("find seed user: %v", err)
	}
	cost, err := password.Cost(u.PasswordHash)
	if err != nil {
		closeStore()
		log.Fatalf("inspect hash: %v", err)
	}

	jwt, err := uc.Login(ctx, seedEmail, seedPassword)
	if err != nil {
		closeStore()
		log.Fatalf("login: %v (was the seed user registered with a different password?)", err)
	}

	fmt.Println("Seed complete")
	fmt.Println()
	fmt.Printf("  Store:        %s\n", cfg.StoreDriver)
	fmt.Printf("  User:         %s (created: %v)\n", seedEmail, created)
	fmt.Printf("  User ID:      %d\n", u.ID)
	fmt.Printf("  Bcrypt cost:  %d\n", cost)
	fmt.Printf("  Password:     %s\n", seedPassword)
	fmt.Printf("  Token TTL:    %s\n", cfg.TokenTTL)
	fmt.Println()
	fmt.Println("How to test:")
	fmt.Println()
	fmt.Println("  Log in yourself:")
	fmt.Println()
	fmt.Printf("    curl -s -X POST http://localhost:%s/login \\\n", cfg.Port)
	fmt.Printf("      -H 'Content-Type: application/json' \\\n")
	fmt.Printf("      -d '{\"email\":\"%s\",\"password\":\"%s\"}'\n", seedEmail, seedPassword)
	fmt.Println()
	fmt.Println("  Or use this token directly:")
	fmt.Println()
	fmt.Printf("    export JWT=%s\n", jwt)
	fmt.Printf("    curl -s http://localhost:%s/profile -H \"Authorization: Bearer $JWT\"\n", cfg.Port)
	fmt.Println("    # → {\"name\":\"Seed User\",\"email\":\"seed@test.local\"}")
}
