package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"fisiovida/infrastructure/directory"
	"fisiovida/infrastructure/localdir"
	"fisiovida/infrastructure/sqlite"
)

// Seeds a handful of demo records into the local user directory so the
// admin panel has data to page through without a remote backend.
func main() {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		log.Printf("load .env: %v", err)
	}

	dbPath := getenv("SQLITE_PATH", "fisiovida.db")

	db, err := sqlite.OpenDB(dbPath)
	if err != nil {
		log.Fatalf("open db: %v", err)
	}
	defer db.Close()

	if err := sqlite.ApplyMigrations(context.Background(), db); err != nil {
		log.Fatalf("apply migrations: %v", err)
	}

	store := localdir.NewStore(db)
	seeds := []directory.UserInput{
		{FullName: "Maria Santos", Email: "maria.santos@example.com", Phone: "(11) 91234-0001"},
		{FullName: "João Pereira", Email: "joao.pereira@example.com", Phone: "(11) 91234-0002"},
		{FullName: "Ana Lima", Email: "ana.lima@example.com", Phone: "(11) 91234-0003"},
		{FullName: "Carlos Souza", Email: "carlos.souza@example.com", Phone: "(11) 91234-0004"},
		{FullName: "Beatriz Rocha", Email: "beatriz.rocha@example.com", Phone: "(11) 91234-0005"},
		{FullName: "Pedro Alves", Email: "pedro.alves@example.com", Phone: "(11) 91234-0006"},
		{FullName: "Fernanda Dias", Email: "fernanda.dias@example.com", Phone: "(11) 91234-0007"},
		{FullName: "Rafael Nunes", Email: "rafael.nunes@example.com", Phone: "(11) 91234-0008"},
		{FullName: "Juliana Castro", Email: "juliana.castro@example.com", Phone: "(11) 91234-0009"},
		{FullName: "Lucas Martins", Email: "lucas.martins@example.com", Phone: "(11) 91234-0010"},
		{FullName: "Camila Ribeiro", Email: "camila.ribeiro@example.com", Phone: "(11) 91234-0011"},
		{FullName: "Gustavo Teixeira", Email: "gustavo.teixeira@example.com", Phone: "(11) 91234-0012"},
	}

	for _, seed := range seeds {
		if _, err := store.Create(context.Background(), seed); err != nil {
			log.Fatalf("seed %s: %v", seed.Email, err)
		}
	}

	fmt.Printf("seeded %d directory users into %s\n", len(seeds), dbPath)
}

func getenv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
