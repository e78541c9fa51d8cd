package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/oksasatya/go-social-core/config"
)

// seed populates a running server with a demo user and admin. The store is
// in memory, so seeding goes through the public API.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	base := os.Getenv("SEED_BASE_URL")
	if base == "" {
		base = "http://localhost:" + cfg.Port
	}
	base = strings.TrimRight(base, "/") + strings.TrimRight(cfg.BasePath(), "/")
	client := &http.Client{Timeout: 10 * time.Second}

	email := "demo@example.com"
	password := "password123"
	user := "demoUser"

	var reg struct {
		UserID string `json:"user_id"`
	}
	if err := call(client, base+"/register", map[string]string{
		"username": user,
		"email":    email,
		"password": password,
	}, &reg); err != nil {
		log.Fatalf("failed to seed user: %v", err)
	}
	fmt.Printf("seeded user: id=%s email=%s name=%s password=%s\n", reg.UserID, email, user, password)

	if err := call(client, base+"/recharge", map[string]any{"user_id": reg.UserID, "amount": 500}, nil); err != nil {
		log.Fatalf("failed to fund user: %v", err)
	}
	fmt.Println("funded demo user with 500 coins")

	var adm struct {
		AdminID string `json:"admin_id"`
	}
	if err := call(client, base+"/admin/create", map[string]string{"username": "admin"}, &adm); err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}
	fmt.Printf("seeded admin: id=%s\n", adm.AdminID)
}

func call(client *http.Client, url string, body, out any) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}
	resp, err := client.Post(url, "application/json", bytes.NewReader(b))
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	var env struct {
		Success bool            `json:"success"`
		Message string          `json:"message"`
		Data    json.RawMessage `json:"data"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return fmt.Errorf("%s: decode: %w", url, err)
	}
	if !env.Success {
		return fmt.Errorf("%s: %d %s", url, resp.StatusCode, env.Message)
	}
	if out == nil {
		return nil
	}
	return json.Unmarshal(env.Data, out)
}
