package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/joho/godotenv"
)

// Aplica las migraciones de ./migrations contra DATABASE_URL.
//
//	go run ./cmd/migrate -action up
//	go run ./cmd/migrate -action down -steps 1
//	go run ./cmd/migrate -action version
func main() {
	action := flag.String("action", "up", "Migration action: up, down, or version")
	steps := flag.Int("steps", 0, "Number of migrations to roll back (for down)")
	path := flag.String("path", "migrations", "Directory with migration files")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Println("sin archivo .env, usando variables de entorno")
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL no está definida")
	}

	m, err := migrate.New("file://"+*path, dbURL)
	if err != nil {
		log.Fatalf("crear instancia de migrate: %v", err)
	}
	defer m.Close()

	switch *action {
	case "up":
		if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
			log.Fatalf("migración up: %v", err)
		}
		log.Println("migraciones aplicadas")

	case "down":
		if *steps > 0 {
			err = m.Steps(-*steps)
		} else {
			err = m.Down()
		}
		if err != nil && !errors.Is(err, migrate.ErrNoChange) {
			log.Fatalf("migración down: %v", err)
		}
		log.Println("migraciones revertidas")

	case "version":
		version, dirty, err := m.Version()
		if err != nil {
			log.Fatalf("leer versión: %v", err)
		}
		log.Printf("versión actual: %d, dirty: %v", version, dirty)

	default:
		log.Fatalf("acción desconocida: %s (usar up, down o version)", *action)
	}
}
