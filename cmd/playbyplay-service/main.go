package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/radieske/nba-playbyplay-service/internal/playbyplay/feed"
	httpapi "github.com/radieske/nba-playbyplay-service/internal/playbyplay/http"
	"github.com/radieske/nba-playbyplay-service/internal/playbyplay/notify"
	"github.com/radieske/nba-playbyplay-service/internal/playbyplay/service"
	"github.com/radieske/nba-playbyplay-service/internal/shared/cache"
	"github.com/radieske/nba-playbyplay-service/internal/shared/config"
	"github.com/radieske/nba-playbyplay-service/internal/shared/kafka"
	"github.com/radieske/nba-playbyplay-service/internal/shared/logger"
	"github.com/radieske/nba-playbyplay-service/internal/shared/metrics"
)

func main() {
	// carrega config
	cfg := config.Load()

	// inicia logger
	log, err := logger.New(cfg.ServiceName, cfg.Env, cfg.LogLevel)
	if err != nil {
		panic(fmt.Errorf("logger init: %w", err))
	}
	defer log.Sync()

	log.Info("starting service",
		zap.String("service", cfg.ServiceName),
		zap.String("env", cfg.Env),
		zap.String("feed", cfg.FeedBaseURL),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rec := metrics.NewRecorder(prometheus.DefaultRegisterer)

	// destinos opcionais de jogo encerrado
	var (
		sinks []notify.Sink
		rdb   *redis.Client
	)
	if cfg.RedisAddr != "" {
		rdb, err = cache.ConnectRedis(ctx, cfg.RedisAddr)
		if err != nil {
			log.Fatal("failed to connect redis", zap.Error(err))
		}
		defer rdb.Close()
		sinks = append(sinks, notify.Sink{Name: "redis", Publisher: notify.NewRedisPublisher(rdb, cfg.RedisChannelGameFinished)})
		log.Info("redis connected", zap.String("channel", cfg.RedisChannelGameFinished))
	}
	if brokers := cfg.KafkaBrokerList(); len(brokers) > 0 {
		writer := kafka.NewWriter(brokers, cfg.TopicGameFinished)
		defer writer.Close()
		sinks = append(sinks, notify.Sink{Name: "kafka", Publisher: notify.NewKafkaPublisher(writer)})
		log.Info("kafka writer ready", zap.String("topic", cfg.TopicGameFinished))
	}

	var notifier service.Notifier = notify.Nop{}
	if len(sinks) > 0 {
		notifier = notify.NewMulti(log, rec, sinks...)
	}

	client := feed.New(cfg.FeedBaseURL, cfg.FeedTimeout, log, rec)
	svc := service.New(log, client, notifier)

	api := &httpapi.API{
		Queries:        svc,
		Log:            log,
		Metrics:        rec,
		AllowedOrigins: cfg.CORSAllowedOrigins,
		Timeout:        cfg.FeedTimeout + 5*time.Second,
	}

	// healthz só depende do redis quando configurado
	health := func(ctx context.Context) error {
		if rdb == nil {
			return nil
		}
		return rdb.Ping(ctx).Err()
	}

	errc := make(chan error, 2)
	metricsSrv := metrics.StartMetricsServer(cfg.MetricsPort, prometheus.DefaultGatherer, health, errc)
	log.Info("metrics/health listening", zap.String("addr", metricsSrv.Addr))

	apiSrv := &http.Server{
		Addr:              ":" + cfg.HTTPPort,
		Handler:           api.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		log.Info("api listening", zap.String("addr", apiSrv.Addr))
		if err := apiSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errc <- fmt.Errorf("api server: %w", err)
		}
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received")
	case err := <-errc:
		log.Error("server failed", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := apiSrv.Shutdown(shutdownCtx); err != nil {
		log.Warn("api shutdown", zap.Error(err))
	}
	if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
		log.Warn("metrics shutdown", zap.Error(err))
	}
	log.Info("service stopped")
}
