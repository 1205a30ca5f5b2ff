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
	"strings"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"
	"github.com/shopspring/decimal"

	_ "github.com/sbilibin2017/pawpals-api/docs"
	"github.com/sbilibin2017/pawpals-api/internal/facades"
	"github.com/sbilibin2017/pawpals-api/internal/handlers"
	"github.com/sbilibin2017/pawpals-api/internal/jwt"
	"github.com/sbilibin2017/pawpals-api/internal/logger"
	"github.com/sbilibin2017/pawpals-api/internal/middlewares"
	"github.com/sbilibin2017/pawpals-api/internal/repositories"
	"github.com/sbilibin2017/pawpals-api/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// config holds every setting read from the environment.
type config struct {
	AppHost  string
	AppPort  string
	LogLevel string

	PGHost         string
	PGPort         int
	PGUser         string
	PGPassword     string
	PGDB           string
	PGMaxOpenConns int
	PGMaxIdleConns int

	RedisHost         string
	RedisPort         int
	RedisDB           int
	RedisPassword     string
	RedisPoolSize     int
	RedisMinIdleConns int
	ResetTokenExp     time.Duration

	KafkaBrokers            []string
	KafkaPlaydateTopic      string
	KafkaPasswordResetTopic string

	JWTSecretKey string
	JWTExp       time.Duration

	GeocoderBaseURL   string
	GeocoderUserAgent string
	GeocoderTimeout   time.Duration
	GeocoderRPS       float64
}

// @title PawPals API
// @version 1.0.0
// @description Backend for dog owners: profiles, dogs, dog-friendly places and playdates
// @host localhost:8080
// @BasePath /api
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	cfg, err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(), cfg); err != nil {
		log.Fatalf("application stopped with error: %v", err)
	}
}

// printBuildInfo prints the build version, commit hash, and build date.
func printBuildInfo() {
	fmt.Printf("Version: %s\nCommit: %s\nBuild: %s\n", buildVersion, buildCommit, buildDate)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

func getEnv(key, defaultValue string) string {
	if val, ok := os.LookupEnv(key); ok && val != "" {
		return val
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) (int, error) {
	raw := getEnv(key, strconv.Itoa(defaultValue))
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", key, raw, err)
	}
	return v, nil
}

// parseConfig loads environment variables from a file and returns
// the application, database, Redis, Kafka, JWT and geocoder configuration.
func parseConfig(path string) (*config, error) {
	_ = godotenv.Load(path)

	var err error
	cfg := &config{}

	// Application config
	cfg.AppHost = getEnv("APP_HOST", "localhost")
	cfg.AppPort = getEnv("APP_PORT", "8080")
	cfg.LogLevel = getEnv("APP_LOG_LEVEL", "info")

	// PostgreSQL config
	cfg.PGHost = getEnv("POSTGRES_HOST", "localhost")
	cfg.PGUser = getEnv("POSTGRES_USER", "user")
	cfg.PGPassword = getEnv("POSTGRES_PASSWORD", "password")
	cfg.PGDB = getEnv("POSTGRES_DB", "database")
	if cfg.PGPort, err = getEnvInt("POSTGRES_PORT", 5432); err != nil {
		return nil, err
	}
	if cfg.PGMaxOpenConns, err = getEnvInt("POSTGRES_MAX_OPEN_CONNS", 16); err != nil {
		return nil, err
	}
	if cfg.PGMaxIdleConns, err = getEnvInt("POSTGRES_MAX_IDLE_CONNS", 8); err != nil {
		return nil, err
	}

	// Redis config
	cfg.RedisHost = getEnv("REDIS_HOST", "localhost")
	cfg.RedisPassword = getEnv("REDIS_PASSWORD", "")
	if cfg.RedisPort, err = getEnvInt("REDIS_PORT", 6379); err != nil {
		return nil, err
	}
	if cfg.RedisDB, err = getEnvInt("REDIS_DB", 0); err != nil {
		return nil, err
	}
	if cfg.RedisPoolSize, err = getEnvInt("REDIS_POOL_SIZE", 10); err != nil {
		return nil, err
	}
	if cfg.RedisMinIdleConns, err = getEnvInt("REDIS_MIN_IDLE_CONNS", 2); err != nil {
		return nil, err
	}
	resetExp, err := getEnvInt("RESET_TOKEN_EXP_SECOND", 3600)
	if err != nil {
		return nil, err
	}
	cfg.ResetTokenExp = time.Duration(resetExp) * time.Second

	// Kafka config
	for _, b := range strings.Split(getEnv("KAFKA_BROKERS", ""), ",") {
		if b = strings.TrimSpace(b); b != "" {
			cfg.KafkaBrokers = append(cfg.KafkaBrokers, b)
		}
	}
	cfg.KafkaPlaydateTopic = getEnv("KAFKA_PLAYDATE_TOPIC", "playdate-events")
	cfg.KafkaPasswordResetTopic = getEnv("KAFKA_PASSWORD_RESET_TOPIC", "password-reset-requests")

	// JWT config
	cfg.JWTSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	jwtExp, err := getEnvInt("JWT_EXP_SECOND", 7*24*60*60)
	if err != nil {
		return nil, err
	}
	cfg.JWTExp = time.Duration(jwtExp) * time.Second

	// Geocoder config
	cfg.GeocoderBaseURL = getEnv("GEOCODER_BASE_URL", "https://nominatim.openstreetmap.org")
	cfg.GeocoderUserAgent = getEnv("GEOCODER_USER_AGENT", "PawPalsApp/1.0")
	geoTimeout, err := getEnvInt("GEOCODER_TIMEOUT_SECOND", 5)
	if err != nil {
		return nil, err
	}
	cfg.GeocoderTimeout = time.Duration(geoTimeout) * time.Second
	rawRPS := getEnv("GEOCODER_RPS", "1")
	if cfg.GeocoderRPS, err = strconv.ParseFloat(rawRPS, 64); err != nil {
		return nil, fmt.Errorf("invalid GEOCODER_RPS %q: %w", rawRPS, err)
	}

	return cfg, nil
}

// newKafkaWriter returns nil when no brokers are configured; services then skip publishing.
func newKafkaWriter(brokers []string, topic string) services.KafkaWriter {
	if len(brokers) == 0 {
		return nil
	}
	return &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		BatchTimeout:           10 * time.Millisecond,
		WriteTimeout:           services.PublishTimeout,
		ReadTimeout:            services.PublishTimeout,
		MaxAttempts:            3,
		AllowAutoTopicCreation: true,
	}
}

// run initializes the logger, database, Redis, Kafka writers and HTTP server.
// It sets up routes, applies middleware, and handles graceful shutdown.
func run(ctx context.Context, cfg *config) error {
	// Initialize logger
	if err := logger.Initialize(cfg.LogLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Log.Sync()
	logger.Log.Infof("Logger initialized with level %s", cfg.LogLevel)

	// Place ratings are rendered as JSON numbers.
	decimal.MarshalJSONWithoutQuotes = true

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		cfg.PGUser, cfg.PGPassword, cfg.PGHost, cfg.PGPort, cfg.PGDB)
	logger.Log.Infow("Connecting to PostgreSQL", "host", cfg.PGHost, "port", cfg.PGPort, "db", cfg.PGDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		return fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(cfg.PGMaxOpenConns)
	db.SetMaxIdleConns(cfg.PGMaxIdleConns)

	// Connect to Redis
	rdb := redis.NewClient(&redis.Options{
		Addr:         fmt.Sprintf("%s:%d", cfg.RedisHost, cfg.RedisPort),
		Password:     cfg.RedisPassword,
		DB:           cfg.RedisDB,
		PoolSize:     cfg.RedisPoolSize,
		MinIdleConns: cfg.RedisMinIdleConns,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("Redis connection error: %w", err)
	}
	defer rdb.Close()

	// Kafka writers
	playdateWriter := newKafkaWriter(cfg.KafkaBrokers, cfg.KafkaPlaydateTopic)
	resetWriter := newKafkaWriter(cfg.KafkaBrokers, cfg.KafkaPasswordResetTopic)
	for _, w := range []services.KafkaWriter{playdateWriter, resetWriter} {
		if w != nil {
			defer w.Close()
		}
	}
	if len(cfg.KafkaBrokers) == 0 {
		logger.Log.Warn("KAFKA_BROKERS is empty, domain events will not be published")
	}

	// Initialize JWT service
	tokens := jwt.New(jwt.WithSecretKey(cfg.JWTSecretKey), jwt.WithExpiration(cfg.JWTExp))

	// Initialize geocoder
	geocoder := facades.NewNominatimFacade(cfg.GeocoderBaseURL, cfg.GeocoderUserAgent, cfg.GeocoderTimeout,
		facades.WithRateLimit(cfg.GeocoderRPS))

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db, middlewares.GetTxFromContext)
	userWriteRepo := repositories.NewUserWriteRepository(db, middlewares.GetTxFromContext)
	dogReadRepo := repositories.NewDogReadRepository(db, middlewares.GetTxFromContext)
	dogWriteRepo := repositories.NewDogWriteRepository(db, middlewares.GetTxFromContext)
	placeReadRepo := repositories.NewPlaceReadRepository(db, middlewares.GetTxFromContext)
	placeWriteRepo := repositories.NewPlaceWriteRepository(db, middlewares.GetTxFromContext)
	playdateReadRepo := repositories.NewPlaydateReadRepository(db, middlewares.GetTxFromContext)
	playdateWriteRepo := repositories.NewPlaydateWriteRepository(db, middlewares.GetTxFromContext)
	resetTokenRepo := repositories.NewResetTokenRepository(rdb, cfg.ResetTokenExp)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, tokens, resetTokenRepo, resetWriter, cfg.ResetTokenExp).
		WithAfterCommit(middlewares.AfterCommit)
	dogService := services.NewDogService(userReadRepo, dogReadRepo, dogWriteRepo)
	placeService := services.NewPlaceService(userReadRepo, placeReadRepo, placeWriteRepo, geocoder)
	playdateService := services.NewPlaydateService(dogReadRepo, playdateReadRepo, playdateWriteRepo, playdateWriter).
		WithAfterCommit(middlewares.AfterCommit)

	r := newRouter(db, tokens, authService, dogService, placeService, playdateService)
	r.Get("/swagger/*", httpSwagger.Handler(
		httpSwagger.URL(fmt.Sprintf("http://%s:%s/swagger/doc.json", cfg.AppHost, cfg.AppPort)),
	))

	srv := &http.Server{
		Addr:              fmt.Sprintf("%s:%s", cfg.AppHost, cfg.AppPort),
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Graceful shutdown
	errChan := make(chan error, 1)
	ctxShutdown, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM, syscall.SIGQUIT)
	defer stop()

	go func() {
		logger.Log.Infof("HTTP server listening on %s:%s", cfg.AppHost, cfg.AppPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		logger.Log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Log.Errorw("HTTP server shutdown error", "error", err)
	}

	logger.Log.Info("HTTP server stopped gracefully")
	return nil
}

// newRouter mounts every API route. Mutating routes run inside a database transaction.
func newRouter(
	db *sqlx.DB,
	tokener middlewares.Tokener,
	authService *services.AuthService,
	dogService *services.DogService,
	placeService *services.PlaceService,
	playdateService *services.PlaydateService,
) *chi.Mux {
	userID := middlewares.GetUserIDFromContext
	auth := middlewares.AuthMiddleware(tokener)
	tx := middlewares.TxMiddleware(db)

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))
	r.Use(middlewares.MetricsMiddleware)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	r.Method(http.MethodGet, "/metrics", middlewares.MetricsHandler())

	r.Route("/api", func(r chi.Router) {
		// Public routes
		r.Route("/auth", func(r chi.Router) {
			r.With(tx).Post("/register", handlers.NewRegisterHandler(authService))
			r.Post("/login", handlers.NewLoginHandler(authService))
			r.Post("/forgot-password", handlers.NewForgotPasswordHandler(authService))
			r.With(tx).Post("/reset-password", handlers.NewResetPasswordHandler(authService))

			r.Group(func(r chi.Router) {
				r.Use(auth)
				r.Get("/me", handlers.NewGetMeHandler(authService, userID))
				r.With(tx).Put("/me", handlers.NewUpdateMeHandler(authService, userID))
				r.With(tx).Delete("/me", handlers.NewDeleteMeHandler(authService, userID))
			})
		})

		r.Route("/places", func(r chi.Router) {
			r.Get("/", handlers.NewListPlacesHandler(placeService))
			r.Get("/nearby", handlers.NewNearbyPlacesHandler(placeService))
			r.Get("/{place_id}", handlers.NewGetPlaceHandler(placeService))

			r.Group(func(r chi.Router) {
				r.Use(auth, tx)
				r.Post("/", handlers.NewCreatePlaceHandler(placeService, userID))
				r.Put("/{place_id}", handlers.NewUpdatePlaceHandler(placeService))
				r.Delete("/{place_id}", handlers.NewDeletePlaceHandler(placeService))
			})
		})

		// Protected routes
		r.Group(func(r chi.Router) {
			r.Use(auth)

			r.Route("/dogs", func(r chi.Router) {
				r.Get("/", handlers.NewListDogsHandler(dogService, userID))
				r.Get("/{dog_id}", handlers.NewGetDogHandler(dogService, userID))
				r.With(tx).Post("/", handlers.NewCreateDogHandler(dogService, userID))
				r.With(tx).Put("/{dog_id}", handlers.NewUpdateDogHandler(dogService, userID))
				r.With(tx).Delete("/{dog_id}", handlers.NewDeleteDogHandler(dogService, userID))
			})

			r.Route("/playdates", func(r chi.Router) {
				r.Get("/user", handlers.NewListUserPlaydatesHandler(playdateService, userID))
				r.Get("/dog/{dog_id}", handlers.NewListDogPlaydatesHandler(playdateService, userID))
				r.Get("/{playdate_id}", handlers.NewGetPlaydateHandler(playdateService, userID))
				r.With(tx).Post("/", handlers.NewCreatePlaydateHandler(playdateService, userID))
				r.With(tx).Patch("/{playdate_id}", handlers.NewUpdatePlaydateHandler(playdateService, userID))
				r.With(tx).Patch("/{playdate_id}/status", handlers.NewUpdatePlaydateStatusHandler(playdateService, userID))
				r.With(tx).Delete("/{playdate_id}", handlers.NewDeletePlaydateHandler(playdateService, userID))
			})
		})
	})

	return r
}
