package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"strconv"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/exporters/otlp/otlptrace/otlptracehttp"
	"go.opentelemetry.io/otel/propagation"
	"go.opentelemetry.io/otel/sdk/resource"
	"go.opentelemetry.io/otel/sdk/trace"
	semconv "go.opentelemetry.io/otel/semconv/v1.24.0"

	"github.com/gustavorods/2025-flink-startup-backend/configs"
	"github.com/gustavorods/2025-flink-startup-backend/internal/auth"
	"github.com/gustavorods/2025-flink-startup-backend/internal/feed"
	"github.com/gustavorods/2025-flink-startup-backend/internal/follows"
	"github.com/gustavorods/2025-flink-startup-backend/internal/kafka"
	"github.com/gustavorods/2025-flink-startup-backend/internal/media"
	"github.com/gustavorods/2025-flink-startup-backend/internal/migrate"
	"github.com/gustavorods/2025-flink-startup-backend/internal/posts"
	"github.com/gustavorods/2025-flink-startup-backend/internal/ratelimit"
	"github.com/gustavorods/2025-flink-startup-backend/internal/shared/httpx"
	"github.com/gustavorods/2025-flink-startup-backend/internal/shared/redisx"
	"github.com/gustavorods/2025-flink-startup-backend/internal/similarity"
	"github.com/gustavorods/2025-flink-startup-backend/internal/storage/s3"
	"github.com/gustavorods/2025-flink-startup-backend/internal/user"
	"github.com/gustavorods/2025-flink-startup-backend/pkg/db"
)

func initOTEL(ctx context.Context) func(context.Context) error {
	endpoint := os.Getenv("OTEL_EXPORTER_OTLP_ENDPOINT")
	if endpoint == "" {
		endpoint = "otel-collector:4318"
	}
	exp, err := otlptracehttp.New(ctx, otlptracehttp.WithEndpoint(endpoint), otlptracehttp.WithInsecure())
	if err != nil {
		log.Fatalf("otel exporter: %v", err)
	}
	res, _ := resource.Merge(resource.Default(), resource.NewWithAttributes(
		semconv.SchemaURL,
		semconv.ServiceName("flink-api"),
		attribute.String("deployment.environment", os.Getenv("ENV")),
	))
	ratio := 1.0
	if s := os.Getenv("OTEL_TRACES_SAMPLER_ARG"); s != "" {
		if f, e := strconv.ParseFloat(s, 64); e == nil && f >= 0 && f <= 1 {
			ratio = f
		}
	}
	tp := trace.NewTracerProvider(
		trace.WithSampler(trace.ParentBased(trace.TraceIDRatioBased(ratio))),
		trace.WithBatcher(exp),
		trace.WithResource(res),
	)
	otel.SetTracerProvider(tp)
	otel.SetTextMapPropagator(propagation.NewCompositeTextMapPropagator(
		propagation.TraceContext{}, propagation.Baggage{},
	))
	return tp.Shutdown
}

func main() {
	ctx := context.Background()
	cfg := configs.LoadConfig()

	shutdown := initOTEL(ctx)
	defer func() {
		c, cancel := context.WithTimeout(ctx, 5*time.Second)
		defer cancel()
		_ = shutdown(c)
	}()

	// Postgres
	store := db.Open(cfg)
	migrate.Run(store.Base)

	// Redis (rate limiting only; feeds are recomputed per request)
	rdb := redisx.Open(cfg)
	defer func(rdb *redis.Client) { _ = rdb.Close() }(rdb)
	limiter := ratelimit.New(rdb)

	// Kafka producer for posts.created
	producer := kafka.NewProducer(cfg.KafkaBootstrap, cfg.PostsTopic)
	defer producer.Close()

	// Object storage
	images, err := s3.New(s3.Config{
		Endpoint:  cfg.S3Endpoint,
		AccessKey: cfg.S3AccessKey,
		SecretKey: cfg.S3SecretKey,
		UseSSL:    cfg.S3UseSSL,
		Bucket:    cfg.S3Bucket,
	})
	if err != nil {
		log.Fatalf("s3: %v", err)
	}
	if err := images.EnsureBucket(ctx); err != nil {
		log.Printf("s3 ensure bucket: %v", err)
	}

	// Repositories & services
	userRepo := user.NewRepository(store.Base)
	userSvc := user.NewService(userRepo)

	authSvc := auth.NewService(userRepo)

	followsRepo := follows.NewRepository(store.Base)
	followsSvc := follows.NewService(followsRepo)

	postsRepo := posts.NewRepository(store.Base)
	postsSvc := posts.NewService(postsRepo, producer)

	feedSvc := feed.NewService(followsSvc, postsRepo)
	similaritySvc := similarity.NewService(userRepo, followsSvc)
	mediaSvc := media.NewService(images, userRepo, postsSvc)

	// Handlers
	authHandler := auth.NewHandler(authSvc)
	userHandler := user.NewHandler(userSvc)
	followsHandler := follows.NewHandler(followsSvc)
	feedHandler := feed.NewHandler(feedSvc, postsSvc)
	similarityHandler := similarity.NewHandler(similaritySvc, userSvc)
	mediaHandler := media.NewHandler(mediaSvc)

	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.Handler())

	// Public
	mux.Handle("POST /auth/register", httpx.Wrap(authHandler.Register))
	mux.Handle("POST /auth/login", httpx.Wrap(authHandler.Login))
	mux.Handle("GET /auth/validate", httpx.Wrap(authHandler.Validate))

	mux.Handle("GET /users", httpx.Wrap(userHandler.ListUsers))
	mux.Handle("GET /users/{user_id}", httpx.Wrap(userHandler.GetUser))
	mux.Handle("GET /users/{user_id}/following", httpx.Wrap(followsHandler.ListFollowing))

	mux.Handle("GET /timeline/feed/{user_id}", httpx.Wrap(feedHandler.GetFeed))
	mux.Handle("GET /timeline/post/{post_id}/imagem", httpx.Wrap(feedHandler.GetPostImage))

	// Protected
	protect := func(pattern string, handler http.Handler) {
		mux.Handle(pattern, httpx.AuthMiddleware(handler))
	}
	protect("POST /users/follows/create", httpx.Wrap(followsHandler.CreateFollow))
	protect("POST /users/{user_id}/image", httpx.Wrap(mediaHandler.UploadProfileImage))
	protect("POST /users/{user_id}/posts", httpx.Wrap(mediaHandler.CreatePost))

	// The comparison endpoint is a full user scan; cap it per caller.
	compareLimit := func(next http.Handler) http.Handler {
		return limiter.LimitHTTP(10, 60*time.Second, func(r *http.Request) (string, error) {
			return httpx.UserFromCtx(r)
		}, next)
	}
	protect("GET /users/{user_id}/comparar-esportes", compareLimit(httpx.Wrap(similarityHandler.CompareSports)))

	srv := &http.Server{
		Addr:              cfg.Addr,
		Handler:           otelhttp.NewHandler(mux, "http.server"),
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       90 * time.Second,
	}
	log.Printf("flink-api listening on %s", cfg.Addr)
	log.Fatal(srv.ListenAndServe())
}
