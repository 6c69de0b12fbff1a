package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"fisiovida/frontend/home"
	"fisiovida/infrastructure/audit"
	"fisiovida/infrastructure/backend"
	"fisiovida/infrastructure/cache"
	"fisiovida/infrastructure/directory"
	httpserver "fisiovida/infrastructure/http"
	"fisiovida/infrastructure/localdir"
	"fisiovida/infrastructure/sqlite"
)

func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("load .env: %v", err)
	}

	addr := getenv("APP_ADDR", ":8080")
	dbPath := getenv("SQLITE_PATH", "fisiovida.db")
	apiURL := getenv("BACKEND_API_URL", "")
	requirePhone := getenvBool("REQUIRE_PHONE", false)

	db, err := sqlite.OpenDB(dbPath)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := sqlite.ApplyMigrations(context.Background(), db); err != nil {
		log.Fatalf("apply migrations: %v", err)
	}

	sessionCache := cache.NewSessionCache()
	auditSvc := audit.NewService(db)

	var dir directory.Directory
	var registrar home.Registrar
	if apiURL != "" {
		client := backend.NewClient(apiURL, getenvDuration("BACKEND_TIMEOUT", backend.DefaultTimeout))
		dir = backend.NewUserService(client)
		registrar = backend.NewSignupService(client)
		slog.Info("user directory backed by remote api", slog.String("url", apiURL))
	} else {
		dir = localdir.NewStore(db)
		slog.Info("user directory backed by local sqlite", slog.String("path", dbPath))
	}

	server := httpserver.NewServer(addr, db, sessionCache, auditSvc, dir, registrar, requirePhone)
	if err := server.Start(); err != nil {
		log.Fatalf("start server: %v", err)
	}
	log.Printf("fisiovida listening on %s", addr)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	if err := server.Stop(); err != nil {
		log.Printf("graceful shutdown error: %v", err)
	}
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getenvBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		log.Printf("invalid %s=%q, using %v", key, v, fallback)
		return fallback
	}
	return parsed
}

func getenvDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	parsed, err := time.ParseDuration(v)
	if err != nil {
		log.Printf("invalid %s=%q, using %s", key, v, fallback)
		return fallback
	}
	return parsed
}
