package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sentinews/db"
	"sentinews/internal/config"
	"sentinews/internal/handler"
	"sentinews/internal/ingest"
	"sentinews/internal/notify"
	"sentinews/internal/repository"
	"sentinews/pkg/news"
	"sentinews/pkg/sentiment"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

// The API process embeds the scheduler so manual triggers and timer
// ticks for the same topic share one single-flight guard.
func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("error loading config: %v", err)
	}

	pool, err := db.Open()
	if err != nil {
		log.Fatalf("error connecting to DB: %v", err)
	}
	defer pool.Close()

	clients := buildClients()
	if len(clients) == 0 {
		log.Fatalf("no news source API keys configured")
	}

	articleRepo := repository.NewArticleRepository(pool)
	subscriptionRepo := repository.NewSubscriptionRepository(pool)

	dispatcher, closeDispatcher, err := buildDispatcher()
	if err != nil {
		log.Fatalf("error building dispatcher: %v", err)
	}
	defer closeDispatcher()

	notifier := notify.NewNotifier(subscriptionRepo, articleRepo, dispatcher, cfg.DigestSize)
	aggregator := ingest.NewAggregator(clients, cfg.ProviderTimeoutDuration())
	pipeline := ingest.NewPipeline(aggregator, articleRepo, buildScorer(), notifier, 10*time.Second)
	scheduler := ingest.NewScheduler(pipeline, cfg.Topics, cfg.IntervalDuration())

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	go scheduler.Start(ctx)

	newsHandler := handler.NewNewsHandler(articleRepo, scheduler, cfg.DefaultTopic)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}

	if frontendURL := os.Getenv("FRONTEND_URL"); frontendURL != "" {
		allowedOrigins = append(allowedOrigins, frontendURL)
	}

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.POST("/news/update", newsHandler.UpdateNews)
	r.GET("/news", newsHandler.GetNews)
	r.GET("/news/:industry", newsHandler.GetIndustryNews)
	r.GET("/sentiments", newsHandler.GetSentiments)
	r.GET("/health", newsHandler.GetHealth)

	err = r.Run(":8080")
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}

func buildClients() []news.Client {
	var clients []news.Client
	if key := os.Getenv("NEWS_API_KEY"); key != "" {
		clients = append(clients, news.NewNewsAPIClient(key))
	}
	if key := os.Getenv("NYT_API_KEY"); key != "" {
		clients = append(clients, news.NewNYTimesClient(key))
	}
	if key := os.Getenv("GUARDIAN_API_KEY"); key != "" {
		clients = append(clients, news.NewGuardianClient(key))
	}
	if key := os.Getenv("FINNHUB_API_KEY"); key != "" {
		clients = append(clients, news.NewFinnhubClient(key))
	}
	return clients
}

func buildScorer() sentiment.Scorer {
	switch os.Getenv("SENTIMENT_BACKEND") {
	case "openai":
		return sentiment.NewOpenAIScorer(os.Getenv("OPENAI_API_KEY"))
	case "anthropic":
		return sentiment.NewAnthropicScorer(os.Getenv("ANTHROPIC_API_KEY"))
	default:
		return sentiment.NewLexiconScorer()
	}
}

func buildDispatcher() (notify.Dispatcher, func(), error) {
	if broker := os.Getenv("KAFKA_BROKER"); broker != "" {
		topic := os.Getenv("KAFKA_DIGEST_TOPIC")
		if topic == "" {
			topic = "sentinews.digests"
		}
		d := notify.NewKafkaDispatcher(broker, topic)
		return d, func() { d.Close() }, nil
	}

	redisClient, err := db.OpenRedis()
	if err != nil {
		return nil, nil, err
	}
	queue := db.NewQueue(redisClient, db.NotificationQueueKey)
	return notify.NewRedisDispatcher(queue), func() { redisClient.Close() }, nil
}
