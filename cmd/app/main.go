package main

import (
	"database/sql"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"github.com/poopky/chat-backend/internal/catalog"
	"github.com/poopky/chat-backend/internal/chat"
	"github.com/poopky/chat-backend/internal/config"
	"github.com/poopky/chat-backend/internal/llm"
)

// main wires dependencies (dependency injection) and starts the HTTP server.
func main() {
	_ = godotenv.Load()
	cfg := config.Load()

	app := fiber.New()
	setupCORS(app)

	cat := mustLoadCatalog(cfg)
	log.Printf("catalog loaded: %d products", cat.Len())

	client := llm.NewClient(buildProvider(cfg), cfg.Timeout, cfg.MaxAttempts)
	service := chat.NewService(cat, client)
	handler := chat.NewHandler(service)
	handler.RegisterPublicRoutes(app)

	log.Printf("starting server on :%s", cfg.Port)
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

// setupCORS opens the chat route to any origin; the widget is embedded on
// storefront pages served elsewhere.
func setupCORS(app *fiber.App) {
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,HEAD,PUT,DELETE,PATCH",
		AllowHeaders: "Origin, Content-Type, Accept",
	}))
}

// mustLoadCatalog reads the product list once: from Postgres when
// DATABASE_URL is set, otherwise the built-in harness seed.
func mustLoadCatalog(cfg config.Config) *catalog.Catalog {
	var repo catalog.Repository
	if cfg.DatabaseURL != "" {
		db := mustOpenDB(cfg.DatabaseURL)
		defer db.Close()
		repo = catalog.NewPostgresRepository(db)
	} else {
		repo = catalog.NewInMemoryRepository(catalog.DefaultSeed())
	}

	products, err := repo.List()
	if err != nil {
		log.Fatalf("could not load catalog: %v", err)
	}
	cat, err := catalog.New(catalog.KindNumber, products)
	if err != nil {
		log.Fatalf("invalid catalog: %v", err)
	}
	return cat
}

func mustOpenDB(url string) *sql.DB {
	db, err := sql.Open("pgx", url)
	if err != nil {
		log.Fatalf("could not open database: %v", err)
	}
	if err := db.Ping(); err != nil {
		log.Fatalf("could not reach database: %v", err)
	}
	return db
}

func buildProvider(cfg config.Config) llm.Provider {
	switch cfg.Provider {
	case "openai":
		return llm.NewOpenAIProvider(cfg.APIURL, cfg.APIKey, cfg.Model)
	default:
		return llm.NewGeminiProvider(cfg.APIURL, cfg.APIKey)
	}
}
