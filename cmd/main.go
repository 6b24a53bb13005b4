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
	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"github.com/segmentio/kafka-go"

	"github.com/msokolov/bookshelf/internal/handlers"
	"github.com/msokolov/bookshelf/internal/jwt"
	"github.com/msokolov/bookshelf/internal/logger"
	"github.com/msokolov/bookshelf/internal/middlewares"
	"github.com/msokolov/bookshelf/internal/migrations"
	"github.com/msokolov/bookshelf/internal/repositories"
	"github.com/msokolov/bookshelf/internal/services"

	_ "github.com/jackc/pgx/v5/stdlib"
	httpSwagger "github.com/swaggo/http-swagger"
)

// Build info variables, set via ldflags at build time.
var (
	buildVersion = "N/A" // Version of the service
	buildDate    = "N/A" // Build date
	buildCommit  = "N/A" // Git commit hash
)

// @title bookshelf API
// @version 1.0.0
// @description Backend for a personal book catalogue with user accounts, genres and cover images
// @host localhost:8080
// @BasePath /
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	printBuildInfo()
	configPath := parseFlags()

	appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		kafkaAddr, kafkaTopic,
		jwtSecret, jwtExpDays,
		resetTTLMinute, cacheTTLSecond,
		err := parseConfig(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	if err := run(context.Background(),
		appHost, appPort, logLevel,
		pgHost, pgPort, pgUser, pgPassword, pgDB,
		pgMaxOpenConns, pgMaxIdleConns,
		redisHost, redisPort, redisDB, redisPassword,
		kafkaAddr, kafkaTopic,
		jwtSecret, jwtExpDays,
		resetTTLMinute, cacheTTLSecond,
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

// parseConfig loads environment variables from a file and returns all
// application, database, Redis, Kafka, JWT, and token-lifetime configuration.
func parseConfig(path string) (
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	kafkaAddr, kafkaTopic string,
	jwtSecretKey string, jwtExpDays int,
	resetTTLMinute, cacheTTLSecond int,
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

	// PostgreSQL config
	pgHost = getEnv("POSTGRES_HOST", "localhost")
	pgUser = getEnv("POSTGRES_USER", "user")
	pgPassword = getEnv("POSTGRES_PASSWORD", "password")
	pgDB = getEnv("POSTGRES_DB", "bookshelf")
	if pgPort, err = strconv.Atoi(getEnv("POSTGRES_PORT", "5432")); err != nil {
		return
	}
	if pgMaxOpenConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_OPEN_CONNS", "16")); err != nil {
		return
	}
	if pgMaxIdleConns, err = strconv.Atoi(getEnv("POSTGRES_MAX_IDLE_CONNS", "8")); err != nil {
		return
	}

	// Redis config, optional: empty host disables the genre cache
	redisHost = getEnv("REDIS_HOST", "")
	if redisPort, err = strconv.Atoi(getEnv("REDIS_PORT", "6379")); err != nil {
		return
	}
	if redisDB, err = strconv.Atoi(getEnv("REDIS_DB", "0")); err != nil {
		return
	}
	redisPassword = getEnv("REDIS_PASSWORD", "")

	// Kafka config, optional: empty address disables book events
	kafkaAddr = getEnv("KAFKA_ADDR", "")
	kafkaTopic = getEnv("KAFKA_TOPIC", "book-events")

	// JWT config
	jwtSecretKey = getEnv("JWT_SECRET_KEY", "my_super_secret_key")
	if jwtExpDays, err = strconv.Atoi(getEnv("JWT_EXP_DAYS", "30")); err != nil {
		return
	}

	// Token lifetimes
	if resetTTLMinute, err = strconv.Atoi(getEnv("RESET_TOKEN_TTL_MINUTE", "10")); err != nil {
		return
	}
	if cacheTTLSecond, err = strconv.Atoi(getEnv("GENRE_CACHE_TTL_SECOND", "300")); err != nil {
		return
	}

	return
}

// run initializes the logger, database, Redis, Kafka, and HTTP server.
// It applies migrations, sets up routes and middleware, and handles
// graceful shutdown.
func run(ctx context.Context,
	appHost, appPort, logLevel string,
	pgHost string, pgPort int, pgUser, pgPassword, pgDB string,
	pgMaxOpenConns, pgMaxIdleConns int,
	redisHost string, redisPort, redisDB int, redisPassword string,
	kafkaAddr, kafkaTopic string,
	jwtSecretKey string, jwtExpDays int,
	resetTTLMinute, cacheTTLSecond int,
) error {
	// Initialize logger
	if err := logger.Initialize(logLevel); err != nil {
		fmt.Println("failed to initialize logger:", err)
		return err
	}
	defer logger.Sync()
	log := logger.Log
	log.Infof("Logger initialized with level %s", logLevel)

	// Connect to PostgreSQL
	dsn := fmt.Sprintf("postgres://%s:%s@%s:%d/%s?sslmode=disable",
		pgUser, pgPassword, pgHost, pgPort, pgDB)
	log.Infof("Connecting to PostgreSQL: %s:%d/%s", pgHost, pgPort, pgDB)

	db, err := sqlx.ConnectContext(ctx, "pgx", dsn)
	if err != nil {
		log.Fatal("PostgreSQL connection error:", err)
	}
	defer db.Close()
	db.SetMaxOpenConns(pgMaxOpenConns)
	db.SetMaxIdleConns(pgMaxIdleConns)
	if err := db.PingContext(ctx); err != nil {
		log.Fatal("PostgreSQL ping failed:", err)
	}

	// Apply migrations
	if err := migrations.Up(ctx, db.DB); err != nil {
		log.Fatal("migrations failed:", err)
	}
	log.Info("Migrations applied")

	// Connect to Redis
	var genreCache *repositories.GenreCacheRepository
	if redisHost != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     fmt.Sprintf("%s:%d", redisHost, redisPort),
			Password: redisPassword,
			DB:       redisDB,
		})
		if err := rdb.Ping(ctx).Err(); err != nil {
			log.Fatal("Redis connection error:", err)
		}
		defer rdb.Close()
		genreCache = repositories.NewGenreCacheRepository(rdb, time.Duration(cacheTTLSecond)*time.Second)
		log.Infof("Genre cache enabled at %s:%d", redisHost, redisPort)
	}

	// Connect to Kafka
	var kafkaWriter *kafka.Writer
	if kafkaAddr != "" {
		kafkaWriter = &kafka.Writer{
			Addr:     kafka.TCP(kafkaAddr),
			Topic:    kafkaTopic,
			Balancer: &kafka.LeastBytes{},
		}
		defer kafkaWriter.Close()
		log.Infof("Book events enabled on topic %s", kafkaTopic)
	}

	// Initialize JWT service
	tokens := jwt.New(jwtSecretKey, time.Duration(jwtExpDays)*24*time.Hour)

	// Initialize repositories
	userReadRepo := repositories.NewUserReadRepository(db)
	userWriteRepo := repositories.NewUserWriteRepository(db)
	bookReadRepo := repositories.NewBookReadRepository(db)
	bookWriteRepo := repositories.NewBookWriteRepository(db)
	genreReadRepo := repositories.NewGenreReadRepository(db)
	genreWriteRepo := repositories.NewGenreWriteRepository(db)

	// Initialize services
	authService := services.NewAuthService(userReadRepo, userWriteRepo, bookReadRepo, tokens,
		time.Duration(resetTTLMinute)*time.Minute)

	var events services.KafkaWriter
	if kafkaWriter != nil {
		events = kafkaWriter
	}
	bookService := services.NewBookService(bookReadRepo, bookWriteRepo, genreReadRepo, events)

	var cache services.GenreCache
	if genreCache != nil {
		cache = genreCache
	}
	genreService := services.NewGenreService(genreReadRepo, genreWriteRepo, cache)

	// Setup router
	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(log))
	// Base64 inflates a 10 MiB inline image to roughly 13.4 MiB on the wire.
	r.Use(chimiddleware.RequestSize(15 << 20))

	authMiddleware := middlewares.AuthMiddleware(tokens, userReadRepo)

	r.Route("/api/users", func(r chi.Router) {
		r.Post("/register", handlers.NewRegisterHandler(authService))
		r.Post("/login", handlers.NewLoginHandler(authService))
		r.Post("/forgot-password", handlers.NewForgotPasswordHandler(authService))
		r.Post("/reset-password", handlers.NewResetPasswordHandler(authService))

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Get("/profile", handlers.NewProfileHandler(authService))
			r.Post("/change-password", handlers.NewChangePasswordHandler(authService))
			r.Put("/avatar", handlers.NewAvatarHandler(authService))
		})
	})

	r.Route("/api/books", func(r chi.Router) {
		r.Get("/", handlers.NewBookListHandler(bookService))
		r.Get("/{id}", handlers.NewBookGetHandler(bookService))

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Post("/", handlers.NewBookCreateHandler(bookService))
			r.Put("/{id}", handlers.NewBookUpdateHandler(bookService))
			r.Delete("/{id}", handlers.NewBookDeleteHandler(bookService))
		})
	})

	r.Route("/api/genres", func(r chi.Router) {
		r.Get("/", handlers.NewGenreListHandler(genreService))
		r.Get("/{id}", handlers.NewGenreGetHandler(genreService))

		r.Group(func(r chi.Router) {
			r.Use(authMiddleware)
			r.Post("/", handlers.NewGenreCreateHandler(genreService))
			r.Put("/{id}", handlers.NewGenreUpdateHandler(genreService))
			r.Delete("/{id}", handlers.NewGenreDeleteHandler(genreService))
		})
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
		log.Infof("HTTP server listening on %s:%s", appHost, appPort)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errChan <- fmt.Errorf("HTTP server failed: %w", err)
		}
	}()

	select {
	case <-ctxShutdown.Done():
		log.Info("Shutdown signal received, stopping HTTP server...")
	case serveErr := <-errChan:
		return serveErr
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Errorw("HTTP server shutdown error", "error", err)
	}

	log.Info("HTTP server stopped gracefully")
	return nil
}
