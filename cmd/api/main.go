package main

import (
	"context"
	"log"

	"github.com/ashikraj78/menuMind/internal/auth"
	"github.com/ashikraj78/menuMind/internal/config"
	"github.com/ashikraj78/menuMind/internal/db"
	"github.com/ashikraj78/menuMind/internal/ingest"
	"github.com/ashikraj78/menuMind/internal/llm"
	"github.com/ashikraj78/menuMind/internal/menu"
	"github.com/ashikraj78/menuMind/internal/menuitem"
	"github.com/ashikraj78/menuMind/internal/middleware"
	"github.com/ashikraj78/menuMind/internal/restaurant"
	"github.com/ashikraj78/menuMind/internal/search"
	"github.com/ashikraj78/menuMind/internal/storage"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {

	// ───────────────────────── ENV ─────────────────────────
	settings, err := config.Load()
	if err != nil {
		log.Fatalf("❌ %v", err)
	}

	// ───────────────────────── DB ─────────────────────────
	ctx := context.Background()
	pool, err := db.Connect(ctx, settings.DatabaseURL)
	if err != nil {
		log.Fatal("❌ Postgres init failed:", err)
	}
	defer pool.Close()

	// ───────────────────────── EXTERNAL CLIENTS ─────────────────────────
	authClient := auth.NewClient(settings.SupabaseURL, settings.SupabaseAnonKey)

	chatClient := llm.NewChatClient(
		settings.AzureOpenAIEndpoint,
		settings.AzureOpenAIDeployment,
		settings.AzureOpenAIAPIVersion,
		settings.AzureOpenAIAPIKey,
	)

	embeddingClient := llm.NewEmbeddingClient(
		settings.EmbeddingEndpoint,
		settings.EmbeddingDeployment,
		settings.EmbeddingAPIVersion,
		settings.EmbeddingAPIKey,
	)

	var photoStore ingest.PhotoStore
	if settings.StorageConfigured() {
		r2Client, err := storage.NewR2Client(
			ctx,
			settings.R2Endpoint,
			settings.R2AccessKey,
			settings.R2SecretKey,
			settings.R2Bucket,
			settings.R2PublicBaseURL,
		)
		if err != nil {
			log.Fatal("❌ R2 init failed:", err)
		}
		photoStore = r2Client
	} else {
		log.Println("⚠️  R2 storage not configured, menu photos will not be archived")
	}

	// ───────────────────────── GIN ─────────────────────────
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Logger())
	r.Use(gin.CustomRecovery(func(c *gin.Context, _ any) {
		c.AbortWithStatusJSON(500, gin.H{"detail": "Internal Server Error"})
	}))

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: false,
	}))

	// ───────────────────────── REPOS ─────────────────────────
	restaurantRepo := restaurant.NewPostgresRepository(pool)
	menuRepo := menu.NewPostgresRepository(pool)
	itemRepo := menuitem.NewPostgresRepository(pool)
	searchRepo := search.NewPostgresRepository(pool)

	// ───────────────────────── SERVICES ─────────────────────────
	restaurantService := restaurant.NewService(restaurantRepo)
	itemService := menuitem.NewService(itemRepo, restaurantRepo)
	menuService := menu.NewService(menuRepo, restaurantRepo, itemRepo)
	ingestService := ingest.NewService(itemRepo, chatClient, embeddingClient, photoStore)
	searchService := search.NewService(searchRepo, embeddingClient, chatClient)

	// ───────────────────────── HANDLERS ─────────────────────────
	authHandler := auth.NewHandler(authClient)
	restaurantHandler := restaurant.NewHandler(restaurantService)
	menuHandler := menu.NewHandler(menuService)
	itemHandler := menuitem.NewHandler(itemService)
	ingestHandler := ingest.NewHandler(ingestService)
	searchHandler := search.NewHandler(searchService)

	authRequired := middleware.AuthMiddleware(authClient)

	// ───────────────────────── AUTH ROUTES ─────────────────────────
	r.POST("/auth/token", authHandler.Token)

	// ───────────────────────── RESTAURANT ROUTES ─────────────────────────
	restaurants := r.Group("/restaurants")
	restaurants.Use(authRequired)
	{
		restaurants.POST("", restaurantHandler.Create)
		restaurants.GET("/me", restaurantHandler.GetMine)
		restaurants.PUT("/me", restaurantHandler.UpdateMine)
	}

	// ───────────────────────── MENU ROUTES ─────────────────────────
	r.GET("/menus", menuHandler.ListAll)
	r.GET("/menus/:id", menuHandler.Get)
	r.GET("/menus/restaurant/:id", menuHandler.ListByRestaurant)

	menus := r.Group("/menus")
	menus.Use(authRequired)
	{
		menus.POST("", menuHandler.Create)
		menus.PUT("/:id", menuHandler.Update)
		menus.DELETE("/:id", menuHandler.Delete)
	}

	// ───────────────────────── MENU ITEM ROUTES ─────────────────────────
	r.GET("/menu-items/:id", itemHandler.Get)
	r.GET("/menu-items/menu/:id", itemHandler.ListByMenu)

	items := r.Group("/menu-items")
	items.Use(authRequired)
	{
		items.POST("", itemHandler.Create)
		items.PUT("/:id", itemHandler.Update)
		items.DELETE("/:id", itemHandler.Delete)
	}

	// ───────────────────────── INGESTION + SEARCH ─────────────────────────
	r.POST("/parse-menu", authRequired, ingestHandler.ParseMenu)
	r.GET("/search", searchHandler.Search)

	// ───────────────────────── HEALTH ─────────────────────────
	r.GET("/", func(c *gin.Context) {
		c.JSON(200, gin.H{"message": "Welcome to the MenuMind API"})
	})
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// ───────────────────────── START ─────────────────────────
	log.Printf("🚀 API running at http://localhost:%s", settings.Port)
	if err := r.Run(":" + settings.Port); err != nil {
		log.Fatal("❌ server stopped:", err)
	}
}
