package main

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/robfig/cron/v3"

	database "github.com/finflowhq/finflow/db"
	"github.com/finflowhq/finflow/internal/auth"
	"github.com/finflowhq/finflow/internal/finance/application"
	"github.com/finflowhq/finflow/internal/finance/infrastructure"
	"github.com/finflowhq/finflow/internal/finance/interfaces"
	"github.com/finflowhq/finflow/internal/summarizer"
	"github.com/finflowhq/finflow/internal/user"
)

type Response struct {
	Message string `json:"message"`
}

func loggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		log.Printf("Started %s %s", r.Method, r.URL.Path)

		next.ServeHTTP(w, r)

		log.Printf("Completed %s in %v", r.URL.Path, time.Since(start))
	})
}

func respondJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func respondError(w http.ResponseWriter, status int, message string) {
	respondJSON(w, status, map[string]interface{}{
		"status":  "error",
		"message": message,
		"code":    status,
	})
}

type Server struct {
	router              *http.ServeMux
	dbService           *database.DBService
	authHandler         *auth.Handler
	authService         auth.Service
	userHandler         *user.Handler
	transactionHandler  *interfaces.TransactionHandler
	goalHandler         *interfaces.GoalHandler
	subscriptionHandler *interfaces.SubscriptionHandler
	reportHandler       *interfaces.ReportHandler
}

func NewServer(
	dbService *database.DBService,
	authHandler *auth.Handler,
	authService auth.Service,
	userHandler *user.Handler,
	transactionHandler *interfaces.TransactionHandler,
	goalHandler *interfaces.GoalHandler,
	subscriptionHandler *interfaces.SubscriptionHandler,
	reportHandler *interfaces.ReportHandler,
) *Server {
	return &Server{
		dbService:           dbService,
		authHandler:         authHandler,
		authService:         authService,
		userHandler:         userHandler,
		transactionHandler:  transactionHandler,
		goalHandler:         goalHandler,
		subscriptionHandler: subscriptionHandler,
		reportHandler:       reportHandler,
		router:              http.NewServeMux(),
	}
}

func notFoundHandler(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusNotFound)
	json.NewEncoder(w).Encode(Response{Message: "Path not found"})
}

func checkConfiguration() error {
	err := godotenv.Load()
	if err != nil {
		log.Println("Error loading .env file, continuing with system environment variables")
	}

	if os.Getenv("JWT_SECRET") == "" {
		return errors.New("no JWT_SECRET Provided")
	}
	return nil
}

func (s *Server) handleReady(w http.ResponseWriter, _ *http.Request) {
	health := s.dbService.Health()
	if health["status"] != "up" {
		respondJSON(w, http.StatusServiceUnavailable, health)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{
		"status": "ready",
	})
}

func (s *Server) RegisterRoutes() {
	// Public routes
	publicRoutes := http.NewServeMux()
	publicRoutes.Handle("POST /api/auth/register", http.HandlerFunc(s.authHandler.HandleRegister))
	publicRoutes.Handle("POST /api/auth/login", http.HandlerFunc(s.authHandler.HandleLogin))
	publicRoutes.Handle("POST /api/auth/google", http.HandlerFunc(s.authHandler.HandleGoogleLogin))
	publicRoutes.Handle("POST /api/auth/logout", http.HandlerFunc(s.authHandler.HandleLogout))
	publicRoutes.Handle("GET /api/ready", http.HandlerFunc(s.handleReady))

	// Protected routes (using JWT Access Token Middleware)
	protectedRoutes := http.NewServeMux()

	// get user data endpoints
	protectedRoutes.Handle("GET /api/protected/profile",
		s.authService.JWTAccessTokenMiddleware()(http.HandlerFunc(s.userHandler.HandleGetUserProfile)))
	protectedRoutes.Handle("PUT /api/protected/profile/saving-target",
		s.authService.JWTAccessTokenMiddleware()(http.HandlerFunc(s.userHandler.HandleUpdateSavingTarget)))

	// TRANSACTIONS API
	protectedRoutes.Handle("POST /api/protected/transactions",
		s.authService.JWTAccessTokenMiddleware()(http.HandlerFunc(s.transactionHandler.CreateTransaction)))
	protectedRoutes.Handle("GET /api/protected/transactions",
		s.authService.JWTAccessTokenMiddleware()(http.HandlerFunc(s.transactionHandler.GetUserTransactions)))
	protectedRoutes.Handle("PUT /api/protected/transactions/{id}",
		s.authService.JWTAccessTokenMiddleware()(http.HandlerFunc(s.transactionHandler.UpdateTransaction)))
	protectedRoutes.Handle("DELETE /api/protected/transactions/{id}",
		s.authService.JWTAccessTokenMiddleware()(http.HandlerFunc(s.transactionHandler.DeleteTransaction)))
	protectedRoutes.Handle("GET /api/protected/transactions/dashboard/summary",
		s.authService.JWTAccessTokenMiddleware()(http.HandlerFunc(s.transactionHandler.GetDashboardSummary)))

	// GOALS API
	protectedRoutes.Handle("POST /api/protected/goals",
		s.authService.JWTAccessTokenMiddleware()(http.HandlerFunc(s.goalHandler.CreateGoal)))
	protectedRoutes.Handle("GET /api/protected/goals",
		s.authService.JWTAccessTokenMiddleware()(http.HandlerFunc(s.goalHandler.ListGoals)))
	protectedRoutes.Handle("GET /api/protected/goals/summary",
		s.authService.JWTAccessTokenMiddleware()(http.HandlerFunc(s.goalHandler.GetSummary)))
	protectedRoutes.Handle("GET /api/protected/goals/{id}",
		s.authService.JWTAccessTokenMiddleware()(http.HandlerFunc(s.goalHandler.GetGoal)))
	protectedRoutes.Handle("PUT /api/protected/goals/{id}",
		s.authService.JWTAccessTokenMiddleware()(http.HandlerFunc(s.goalHandler.UpdateGoal)))
	protectedRoutes.Handle("DELETE /api/protected/goals/{id}",
		s.authService.JWTAccessTokenMiddleware()(http.HandlerFunc(s.goalHandler.DeleteGoal)))
	protectedRoutes.Handle("POST /api/protected/goals/{goalID}/savings",
		s.authService.JWTAccessTokenMiddleware()(http.HandlerFunc(s.goalHandler.AddSaving)))
	protectedRoutes.Handle("GET /api/protected/goals/{goalID}/savings",
		s.authService.JWTAccessTokenMiddleware()(http.HandlerFunc(s.goalHandler.GetSavings)))

	// SUBSCRIPTIONS API
	protectedRoutes.Handle("POST /api/protected/subscriptions",
		s.authService.JWTAccessTokenMiddleware()(http.HandlerFunc(s.subscriptionHandler.CreateSubscription)))
	protectedRoutes.Handle("GET /api/protected/subscriptions",
		s.authService.JWTAccessTokenMiddleware()(http.HandlerFunc(s.subscriptionHandler.ListSubscriptions)))
	protectedRoutes.Handle("GET /api/protected/subscriptions/{id}",
		s.authService.JWTAccessTokenMiddleware()(http.HandlerFunc(s.subscriptionHandler.GetSubscription)))
	protectedRoutes.Handle("PUT /api/protected/subscriptions/{id}",
		s.authService.JWTAccessTokenMiddleware()(http.HandlerFunc(s.subscriptionHandler.UpdateSubscription)))
	protectedRoutes.Handle("DELETE /api/protected/subscriptions/{id}",
		s.authService.JWTAccessTokenMiddleware()(http.HandlerFunc(s.subscriptionHandler.DeleteSubscription)))

	// REPORTS API
	protectedRoutes.Handle("POST /api/protected/reports/monthly",
		s.authService.JWTAccessTokenMiddleware()(http.HandlerFunc(s.reportHandler.GenerateMonthlyReport)))

	// Refresh token routes
	refreshTokenRoutes := http.NewServeMux()
	refreshTokenRoutes.Handle("PUT /api/refresh/token", s.authService.JWTRefreshTokenMiddleware()(http.HandlerFunc(s.authHandler.RefreshAccessToken)))

	// Main router
	mainRouter := http.NewServeMux()

	// Combine public, protected, and refresh routes with distinct paths
	mainRouter.Handle("/api/", publicRoutes)
	mainRouter.Handle("/api/protected/", protectedRoutes)
	mainRouter.Handle("/api/refresh/", refreshTokenRoutes)
	mainRouter.Handle("/", http.HandlerFunc(notFoundHandler))

	s.router = mainRouter
}

func main() {
	if err := checkConfiguration(); err != nil {
		log.Fatalf("Missing configuration, update to start server")
	}

	dbService, err := database.NewDBService()
	if err != nil {
		log.Fatalf("Could not initialize database: %v", err)
	}
	defer dbService.Close()

	userRepo := user.NewUserRepository(dbService.DB)
	userService := user.NewUserService(userRepo)
	userHandler := user.NewHandler(userService)

	jwtManager := auth.NewJWTManager()
	var googleVerifier auth.GoogleVerifier
	if clientID := os.Getenv("GOOGLE_CLIENT_ID"); clientID != "" {
		googleVerifier = auth.NewGoogleVerifier(clientID)
	} else {
		log.Println("GOOGLE_CLIENT_ID not set, Google sign-in disabled")
	}
	authService := auth.NewAuthService(userService, jwtManager, googleVerifier)
	authHandler := auth.NewHandler(authService)

	transactionRepo := infrastructure.NewTransactionRepository(dbService.DB)
	transactionService := application.NewTransactionService(transactionRepo, userService)
	transactionHandler := interfaces.NewTransactionHandler(transactionService, respondJSON, respondError)

	goalRepo := infrastructure.NewGoalRepository(dbService.DB)
	goalSavingRepo := infrastructure.NewGoalSavingRepository(dbService.DB)
	goalService := application.NewGoalService(goalRepo, goalSavingRepo)
	goalHandler := interfaces.NewGoalHandler(goalService, respondJSON, respondError)

	subscriptionRepo := infrastructure.NewSubscriptionRepository(dbService.DB)
	subscriptionService := application.NewSubscriptionService(subscriptionRepo)
	subscriptionHandler := interfaces.NewSubscriptionHandler(subscriptionService, respondJSON, respondError)

	var reportSummarizer application.Summarizer
	if apiKey := os.Getenv("GEMINI_API_KEY"); apiKey != "" {
		reportSummarizer = summarizer.NewGeminiClient(apiKey)
	} else {
		log.Println("GEMINI_API_KEY not set, reports are generated without AI summaries")
	}
	reportService := application.NewReportService(transactionRepo, reportSummarizer)
	reportHandler := interfaces.NewReportHandler(reportService, respondJSON, respondError)

	server := NewServer(dbService, authHandler, authService, userHandler, transactionHandler, goalHandler, subscriptionHandler, reportHandler)
	server.RegisterRoutes()

	if err := StartBillingScheduler(subscriptionService); err != nil {
		log.Fatalf("Scheduler didn't start, stoping the app ...")
	}

	loggingMiddleware := loggingMiddleware(http.HandlerFunc(server.router.ServeHTTP))
	log.Println("Server starting on port 8080...")
	if err := http.ListenAndServe(":8080", loggingMiddleware); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}

func StartBillingScheduler(subscriptionService *application.SubscriptionService) error {
	c := cron.New()
	// Advance past-due subscription billing dates every hour.
	_, err := c.AddFunc("@every 1h", func() {
		updated, err := subscriptionService.AdvanceDueBillingDates(time.Now())
		if err != nil {
			log.Printf("Error advancing subscription billing dates: %v", err)
		} else if updated > 0 {
			log.Printf("Advanced billing dates for %d subscriptions.", updated)
		}
	})
	if err != nil {
		return err
	}
	c.Start()
	return nil
}
