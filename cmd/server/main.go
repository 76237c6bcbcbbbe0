package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"cobudget-backend-go/internal/api"
	"cobudget-backend-go/internal/config"
	"cobudget-backend-go/internal/core"
	"cobudget-backend-go/internal/db"
	"cobudget-backend-go/internal/middleware"
)

func main() {
	// Load a local .env when present; environment variables win in deployment.
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file loaded: %v", err)
	}

	// --- 1. Initialize Logger (Zap) ---
	var zapLogger *zap.Logger
	var err error
	if strings.ToLower(os.Getenv("GIN_MODE")) == "release" {
		zapLogger, err = zap.NewProduction()
	} else {
		zapLogger, err = zap.NewDevelopment()
	}
	if err != nil {
		log.Fatalf("CRITICAL_ERROR: Failed to initialize Zap logger: %v", err)
	}
	defer zapLogger.Sync()

	// --- 2. Load Application Configuration ---
	appConfig, err := config.LoadConfig()
	if err != nil {
		zapLogger.Fatal("CRITICAL_ERROR: Failed to load application configuration", zap.Error(err))
	}
	zapLogger.Info("Application configuration loaded",
		zap.String("projectID", appConfig.FirebaseProjectID),
		zap.Float64("overBudgetThreshold", appConfig.OverBudgetThreshold),
	)

	// --- 3. Initialize Firebase Admin SDK (Firestore + Auth clients) ---
	initCtx, cancelInitCtx := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelInitCtx()
	if err := db.InitFirestore(initCtx, appConfig); err != nil {
		zapLogger.Fatal("CRITICAL_ERROR: Failed to initialize Firestore and Firebase Admin SDK", zap.Error(err))
	}
	zapLogger.Info("Firebase Admin SDK (Firestore, Auth) initialized successfully.")

	firestoreClient := db.GetFirestoreClient()
	firebaseAuthClient := db.GetFirebaseAuthClient()
	if firestoreClient == nil || firebaseAuthClient == nil {
		zapLogger.Fatal("CRITICAL_ERROR: Firebase clients are nil after initialization. Application cannot start.")
	}

	// --- 4. Initialize Repositories ---
	productRepo := db.NewFirestoreProductRepository(firestoreClient)
	budgetRepo := db.NewFirestoreBudgetRepository(firestoreClient)
	cartRepo := db.NewFirestoreCartRepository(firestoreClient)
	sharedCartRepo := db.NewFirestoreSharedCartRepository(firestoreClient)
	recommendationLogRepo := db.NewFirestoreRecommendationLogRepository(firestoreClient)
	userRepo := db.NewFirestoreUserRepository(firestoreClient)

	// Seed the catalog on boot so a fresh project serves products immediately.
	// The HTTP seeding endpoint stays available for re-provisioned databases.
	if added, err := db.SeedProducts(initCtx, productRepo); err != nil {
		zapLogger.Warn("Catalog seeding failed; continuing with current contents", zap.Error(err))
	} else if added > 0 {
		zapLogger.Info("Catalog seeded", zap.Int("products", added))
	}

	// --- 5. Initialize Services ---
	catalogService := core.NewCatalogService(productRepo)
	budgetService := core.NewBudgetService(budgetRepo)
	cartService := core.NewCartService(cartRepo, productRepo)
	sharedCartService := core.NewSharedCartService(sharedCartRepo, productRepo, appConfig.OverBudgetThreshold)
	recommendService := core.NewRecommendService(productRepo, recommendationLogRepo)
	recipeService := core.NewRecipeService(appConfig.MistralAPIKey, appConfig.MistralModel)
	userService := core.NewUserService(userRepo)
	if appConfig.MistralAPIKey == "" {
		zapLogger.Warn("MISTRAL_API_KEY not set; the recipe endpoint will report itself unavailable.")
	}
	zapLogger.Info("Core services initialized successfully.")

	// --- 6. Setup Gin HTTP Engine ---
	if strings.ToLower(appConfig.GinMode) == "release" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
	}
	router := gin.New()

	// --- 7. Apply Global Middleware (order matters) ---
	router.Use(middleware.RequestLogger(zapLogger))
	router.Use(middleware.RecoveryMiddleware(zapLogger))
	if appConfig.ClientURL != "" {
		router.Use(middleware.CORSMiddleware(appConfig))
		zapLogger.Info("CORS Middleware enabled", zap.String("clientURL", appConfig.ClientURL))
	} else {
		zapLogger.Warn("CORS Middleware SKIPPED: CLIENT_URL is not configured. API might not be accessible from a web frontend.")
	}

	// --- 8. Setup API Routes ---
	authMiddleware := middleware.NewAuthMiddleware(firebaseAuthClient)
	api.SetupRoutes(router, &api.Handlers{
		Catalog:    api.NewCatalogHandler(catalogService, productRepo),
		Budget:     api.NewBudgetHandler(budgetService),
		Cart:       api.NewCartHandler(cartService),
		SharedCart: api.NewSharedCartHandler(sharedCartService),
		Recommend:  api.NewRecommendHandler(recommendService),
		Recipe:     api.NewRecipeHandler(recipeService),
		User:       api.NewUserHandler(userService),
	}, authMiddleware)

	// --- 9. Configure and Start HTTP Server ---
	serverAddr := fmt.Sprintf(":%s", appConfig.Port)
	httpServer := &http.Server{
		Addr:    serverAddr,
		Handler: router,
	}

	zapLogger.Info("Starting HTTP server...", zap.String("address", serverAddr), zap.String("ginMode", gin.Mode()))

	go func() {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLogger.Fatal("Failed to start HTTP server", zap.Error(err))
		}
	}()

	// --- 10. Graceful Shutdown Handling ---
	quitChannel := make(chan os.Signal, 1)
	signal.Notify(quitChannel, syscall.SIGINT, syscall.SIGTERM)

	sig := <-quitChannel
	zapLogger.Info("Received shutdown signal", zap.String("signal", sig.String()))

	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zapLogger.Fatal("Server forced to shutdown due to error during graceful shutdown", zap.Error(err))
	}

	if err := firestoreClient.Close(); err != nil {
		zapLogger.Warn("Error closing Firestore client", zap.Error(err))
	}

	zapLogger.Info("Server exiting gracefully.")
}
