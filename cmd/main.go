package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/Archemasachika7/Algorythm-auth/internal/effects"
	"github.com/Archemasachika7/Algorythm-auth/internal/facades"
	"github.com/Archemasachika7/Algorythm-auth/internal/handlers"
	"github.com/Archemasachika7/Algorythm-auth/internal/jwt"
	"github.com/Archemasachika7/Algorythm-auth/internal/logger"
	"github.com/Archemasachika7/Algorythm-auth/internal/middlewares"
	"github.com/Archemasachika7/Algorythm-auth/internal/services"
	"github.com/Archemasachika7/Algorythm-auth/internal/validation"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title AlgoRhythm auth API
// @version 1.0.0
// @description Demo authentication flow for the AlgoRhythm page: form validation, submission sequencing and a mocked backend
// @host localhost:8080
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel, pagePath,
		jwtSecret, jwtExpSecond,
		authMinDelayMs, authMaxDelayMs, authRegisterExtraMs,
		strictPassword,
		demoEmail, demoPassword, demoName,
		matrixWidth, matrixHeight, matrixIntervalMs,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel, pagePath,
		jwtSecret, jwtExpSecond,
		authMinDelayMs, authMaxDelayMs, authRegisterExtraMs,
		strictPassword,
		demoEmail, demoPassword, demoName,
		matrixWidth, matrixHeight, matrixIntervalMs,
	); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Starting service version %s, commit %s, build %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// parseConfig loads environment variables from a file and returns the
// application, JWT, mock backend, demo account, and effects configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel, pagePath string,
	jwtSecret string, jwtExpSecond int,
	authMinDelayMs, authMaxDelayMs, authRegisterExtraMs int,
	strictPassword bool,
	demoEmail, demoPassword, demoName string,
	matrixWidth, matrixHeight, matrixIntervalMs int,
	err error,
) {
	_ = godotenv.Load(path)

	getEnv := func(key, defaultValue string) string {
		if val, ok := os.LookupEnv(key); ok && val != "" {
			return val
		}
		return defaultValue
	}

	// Application config
	appHost = getEnv("APP_HOST", "localhost")
	appPort = getEnv("APP_PORT", "8080")
	logLevel = getEnv("APP_LOG_LEVEL", "info")
	pagePath = getEnv("APP_PAGE_PATH", "web/index.html")

	// JWT config
	jwtSecret = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpSecond, err = strconv.Atoi(getEnv("JWT_EXP_SECOND", "3600")); err != nil {
		return
	}

	// Mock backend config
	if authMinDelayMs, err = strconv.Atoi(getEnv("AUTH_MIN_DELAY_MS", "1000")); err != nil {
		return
	}
	if authMaxDelayMs, err = strconv.Atoi(getEnv("AUTH_MAX_DELAY_MS", "3000")); err != nil {
		return
	}
	if authRegisterExtraMs, err = strconv.Atoi(getEnv("AUTH_REGISTER_EXTRA_MS", "500")); err != nil {
		return
	}
	if strictPassword, err = strconv.ParseBool(getEnv("AUTH_STRICT_PASSWORD", "false")); err != nil {
		return
	}

	// Demo account
	demoEmail = getEnv("DEMO_EMAIL", "demo@algorhythm.dev")
	demoPassword = getEnv("DEMO_PASSWORD", "Demo1234")
	demoName = getEnv("DEMO_NAME", "Demo User")

	// Matrix effect config
	if matrixWidth, err = strconv.Atoi(getEnv("MATRIX_WIDTH", "64")); err != nil {
		return
	}
	if matrixHeight, err = strconv.Atoi(getEnv("MATRIX_HEIGHT", "24")); err != nil {
		return
	}
	if matrixIntervalMs, err = strconv.Atoi(getEnv("MATRIX_INTERVAL_MS", "80")); err != nil {
		return
	}

	return
}

// run initializes the logger, the mock auth backend, the sequencer, the
// effects engine, and the HTTP server. It sets up routes, applies
// middleware, and handles graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel, pagePath string,
	jwtSecret string, jwtExpSecond int,
	authMinDelayMs, authMaxDelayMs, authRegisterExtraMs int,
	strictPassword bool,
	demoEmail, demoPassword, demoName string,
	matrixWidth, matrixHeight, matrixIntervalMs int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", logLevel)

	// Initialize JWT service
	tokens := jwt.New(
		jwt.WithSecretKey(jwtSecret),
		jwt.WithExpiration(time.Duration(jwtExpSecond)*time.Second),
	)

	// Initialize the mock authentication backend
	authBackend := facades.NewMockAuthFacade(tokens,
		facades.WithDelayRange(
			time.Duration(authMinDelayMs)*time.Millisecond,
			time.Duration(authMaxDelayMs)*time.Millisecond,
		),
		facades.WithRegisterExtra(time.Duration(authRegisterExtraMs)*time.Millisecond),
		facades.WithDemoAccount(demoEmail, demoPassword, demoName),
	)

	// Initialize the submission sequencer
	policy := validation.Policy{Strict: strictPassword}
	seqConfig := services.DefaultConfig()
	seqConfig.Policy = policy
	sequencer := services.NewSequencer(authBackend, seqConfig)

	// Initialize handlers
	pageHandler := handlers.NewPageHandler(pagePath)
	loginHandler := handlers.NewLoginHandler(sequencer)
	registerHandler := handlers.NewRegisterHandler(sequencer)
	socialHandler := handlers.NewSocialLoginHandler(sequencer)
	validateHandler := handlers.NewValidateFieldHandler(policy)
	strengthHandler := handlers.NewPasswordStrengthHandler(policy)
	meHandler := handlers.NewMeHandler(tokens)

	// Start the decorative effects engine
	engine := effects.NewEngine(matrixWidth, matrixHeight, time.Duration(matrixIntervalMs)*time.Millisecond)
	if err := engine.Start(ctx); err != nil {
		return err
	}
	matrixHandler := effects.NewHandler(engine)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware)

	r.Get("/", pageHandler)
	r.Handle("/effects/matrix", matrixHandler)

	r.Route("/api/v1", func(r chi.Router) {
		r.Post("/login", loginHandler)
		r.Post("/register", registerHandler)
		r.Post("/social", socialHandler)
		r.Post("/validate", validateHandler)
		r.Post("/password-strength", strengthHandler)
	})

	// Post-auth route behind the JWT middleware
	r.Group(func(r chi.Router) {
		r.Use(middlewares.AuthMiddleware(tokens))
		r.Get("/me", meHandler)
	})

	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", appHost, appPort)),
	))

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%s", appHost, appPort),
		Handler: r,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		engine.Stop()
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	// Tear down the decorative effects with the page
	engine.Stop()

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}
