package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/juristo/legaldocs/handlers"
	"github.com/juristo/legaldocs/internal/config"
	"github.com/juristo/legaldocs/internal/database"
	"github.com/juristo/legaldocs/internal/draft"
	"github.com/juristo/legaldocs/internal/legaldoc/repository"
	"github.com/juristo/legaldocs/internal/legaldoc/service"
	"github.com/juristo/legaldocs/internal/llm"
	"github.com/juristo/legaldocs/internal/pipeline"
	"github.com/juristo/legaldocs/internal/storage"
	"github.com/juristo/legaldocs/pkg/logger"
	"github.com/juristo/legaldocs/pkg/metrics"
	"github.com/juristo/legaldocs/pkg/middleware"
)

var startTime = time.Now()

func main() {
	// initialize logging (can be controlled with LOG_LEVEL env: debug|info|warn|error|fatal)
	logger.Init(os.Getenv("LOG_LEVEL"))

	cfg, err := config.LoadConfig()
	if err != nil {
		logger.Fatalf("failed to load config: %v", err)
	}
	logger.Infof("config loaded: mongo=%v redis=%v artifact_mode=%s", cfg.MongoDB.URI != "", cfg.Redis.Host != "", cfg.Artifacts.Mode)

	r := gin.New()

	// Lightweight CORS middleware for dev/test: set common headers and respond to OPTIONS.
	// (Keep this intentionally simple — production should use a stricter policy.)
	r.Use(func(c *gin.Context) {
		c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Origin, Content-Type, Accept, Authorization")
		c.Writer.Header().Set("Access-Control-Expose-Headers", "Content-Length")
		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(200)
			return
		}
		c.Next()
	})

	// Global middlewares: logging + recovery
	r.Use(gin.Logger(), gin.Recovery())

	// Connect to Redis early so the rate-limiter can use it when configured
	var redisClient *redis.Client
	if cfg.Redis.Host != "" {
		redisClient = redis.NewClient(&redis.Options{Addr: cfg.Redis.Host + ":" + cfg.Redis.Port, Password: cfg.Redis.Password})
		if err := redisClient.Ping(context.Background()).Err(); err != nil {
			logger.Warnf("failed to connect to Redis (%s:%s): %v", cfg.Redis.Host, cfg.Redis.Port, err)
			redisClient = nil
		} else {
			logger.Infof("Connected to Redis: %s:%s", cfg.Redis.Host, cfg.Redis.Port)
		}
	}
	if cfg.RateLimit.Enabled {
		if cfg.RateLimit.UseRedis && redisClient != nil {
			win := time.Duration(cfg.RateLimit.WindowSeconds) * time.Second
			r.Use(middleware.RedisRateLimitMiddleware(redisClient, cfg.RateLimit.RPS, cfg.RateLimit.Burst, win))
		} else {
			r.Use(middleware.RateLimitMiddleware(cfg.RateLimit.RPS, cfg.RateLimit.Burst))
		}
	}

	// Connect to MongoDB with retry/backoff to tolerate startup races. When
	// no URI is configured the in-memory repository serves development use;
	// when the URI is set but unreachable, requests get a 503 instead of
	// silently losing records.
	ctx := context.Background()
	var repo repository.Repository = repository.NewMemoryRepo()
	var mongoClient *mongo.Client
	if cfg.MongoDB.URI != "" {
		const maxAttempts = 5
		backoff := time.Second
		var errConn error
		for attempt := 1; attempt <= maxAttempts; attempt++ {
			mongoClient, errConn = database.ConnectMongo(ctx, cfg.MongoDB.URI, cfg.MongoDB.Timeout)
			if errConn == nil {
				break
			}
			logger.Warnf("attempt %d/%d: failed to connect to MongoDB: %v", attempt, maxAttempts, errConn)
			if attempt < maxAttempts {
				time.Sleep(backoff)
				backoff *= 2
			}
		}
		if errConn != nil {
			logger.Errorf("could not connect to MongoDB after %d attempts: %v", maxAttempts, errConn)
			repo = repository.Unavailable{}
		} else {
			defer func() { _ = mongoClient.Disconnect(ctx) }()
			col := mongoClient.Database(cfg.MongoDB.Database).Collection("legaldocs")
			repo = repository.NewMongoRepo(col)
			logger.Infof("Using MongoDB for document records: db=%s", cfg.MongoDB.Database)
		}
	} else {
		logger.Warnf("MONGODB_URI not set; document records are kept in memory only")
	}
	records := service.NewService(repo)

	provider, err := llm.NewOpenAIProvider(llm.Config{
		APIKey:  cfg.OpenAI.APIKey,
		Model:   cfg.OpenAI.Model,
		BaseURL: cfg.OpenAI.BaseURL,
		Timeout: cfg.OpenAI.Timeout,
	})
	if err != nil {
		logger.Fatalf("failed to initialize LLM provider: %v", err)
	}

	store, err := buildArtifactStore(cfg)
	if err != nil {
		logger.Fatalf("failed to initialize artifact store: %v", err)
	}
	inline := cfg.Artifacts.Mode == "inline"

	composer := draft.NewComposer(provider)
	h := &handlers.Legaldocs{
		Generator: pipeline.NewGenerator(composer, store, records, inline),
		Composer:  composer,
		Records:   records,
		Inline:    inline,
	}
	handlers.RegisterLegaldocRoutes(r, h)
	handlers.RegisterSwagger(r)

	// Basic health endpoint
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "healthy")
	})

	// readiness endpoint — return 200 only when critical dependencies are available
	r.GET("/ready", func(c *gin.Context) {
		ready := true
		deps := map[string]bool{}

		if err := records.Ping(c.Request.Context()); err != nil {
			deps["records"] = false
			ready = false
		} else {
			deps["records"] = true
		}

		// redis is optional unless the limiter depends on it
		if cfg.Redis.Host != "" && cfg.RateLimit.UseRedis {
			deps["redis"] = redisClient != nil
			if redisClient == nil {
				ready = false
			}
		} else {
			deps["redis"] = true
		}

		deps["llm"] = true // configured at startup or the process would not be running

		if !ready {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "not_ready", "deps": deps, "uptime": time.Since(startTime).String()})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready", "deps": deps, "uptime": time.Since(startTime).String()})
	})

	// Expose Prometheus metrics
	metrics.RegisterCollectors(prometheus.DefaultRegisterer)
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	logger.Infof("Starting legaldocs service on %s", addr)
	if err := r.Run(addr); err != nil {
		logger.Fatalf("server failed: %v", err)
	}
}

// buildArtifactStore picks the deployment's artifact delivery: inline base64,
// MinIO, or a Cloudinary-style multipart HTTP endpoint.
func buildArtifactStore(cfg *config.Config) (storage.Store, error) {
	if cfg.Artifacts.Mode == "inline" {
		return storage.InlineStore{}, nil
	}
	if cfg.Artifacts.MinIO.Endpoint != "" {
		return storage.NewMinIOStore(storage.MinIOConfig{
			Endpoint:  cfg.Artifacts.MinIO.Endpoint,
			AccessKey: cfg.Artifacts.MinIO.AccessKey,
			SecretKey: cfg.Artifacts.MinIO.SecretKey,
			UseSSL:    cfg.Artifacts.MinIO.UseSSL,
			Bucket:    cfg.Artifacts.MinIO.Bucket,
		})
	}
	return storage.NewHTTPUploader(cfg.Artifacts.UploadURL, cfg.Artifacts.UploadPreset, cfg.Artifacts.UploadTimeout), nil
}
