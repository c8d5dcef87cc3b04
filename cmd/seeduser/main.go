// cmd/seeduser/main.go — creates or refreshes the demo admin account.
// Usage: go run ./cmd/seeduser
package main

import (
	"context"
	"fmt"
	stdlog "log"

	"github.com/alanalzi/jalin-alam-project/internal/config"
	"github.com/alanalzi/jalin-alam-project/internal/infra"

	"golang.org/x/crypto/bcrypt"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		stdlog.Fatalf("config error: %v", err)
	}

	username := "admin@jalinalam.com"
	password := "1234"
	name := "Admin Demo"
	role := "admin"

	hash, err := bcrypt.GenerateFromPassword([]byte(password), 12)
	if err != nil {
		stdlog.Fatalf("bcrypt error: %v", err)
	}

	db, err := infra.NewDatabase(cfg.DSN())
	if err != nil {
		stdlog.Fatalf("db connect error: %v", err)
	}

	result := db.WithContext(context.Background()).Exec(`
		INSERT INTO users (username, name, email, password_hash, role, active, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, true, now(), now())
		ON CONFLICT (username) DO UPDATE
		SET password_hash = EXCLUDED.password_hash,
		    name = EXCLUDED.name,
		    role = EXCLUDED.role,
		    active = true,
		    updated_at = now()
	`, username, name, username, string(hash), role)

	if result.Error != nil {
		stdlog.Fatalf("insert error: %v", result.Error)
	}
	fmt.Printf("user %q created/updated with password %q\n", username, password)
}
