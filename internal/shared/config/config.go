package config

import (
	"os"
	"strings"
	"time"

	ctopics "github.com/radieske/nba-playbyplay-service/pkg/contracts/topics"
)

// DefaultFeedBaseURL é a origem pública dos documentos de play-by-play da NBA
const DefaultFeedBaseURL = "https://cdn.nba.com/static/json/liveData/playbyplay"

// Config centraliza variáveis de ambiente e parâmetros de execução do serviço
// Inclui portas, origem do feed e destinos opcionais de notificação
type Config struct {
	Env         string // "local", "dev", "prod"
	ServiceName string
	LogLevel    string // vazio mantém o nível padrão do ambiente

	// Feed de play-by-play
	FeedBaseURL string
	FeedTimeout time.Duration

	// Notificações de jogo encerrado (desligadas quando vazias)
	RedisAddr                string
	RedisChannelGameFinished string
	KafkaBrokers             string // "a:9092,b:9092"
	TopicGameFinished        string

	CORSAllowedOrigins []string

	// Portas do serviço
	HTTPPort    string // API pública
	MetricsPort string // /metrics e /healthz
}

// Load carrega variáveis de ambiente e define defaults
func Load() Config {
	return Config{
		Env:         getEnv("ENV", "local"),
		ServiceName: getEnv("SERVICE_NAME", "playbyplay-service"),
		LogLevel:    getEnv("LOG_LEVEL", ""),

		FeedBaseURL: strings.TrimSuffix(getEnv("NBA_FEED_BASE_URL", DefaultFeedBaseURL), "/"),
		FeedTimeout: getEnvDuration("NBA_FEED_TIMEOUT", 10*time.Second),

		RedisAddr:                getEnv("REDIS_ADDR", ""),
		RedisChannelGameFinished: getEnv("REDIS_CHANNEL_GAME_FINISHED", ctopics.GameFinished),
		KafkaBrokers:             getEnv("KAFKA_BROKERS", ""),
		TopicGameFinished:        getEnv("KAFKA_TOPIC_GAME_FINISHED", ctopics.GameFinished),

		CORSAllowedOrigins: splitList(getEnv("CORS_ALLOWED_ORIGINS", "*")),

		HTTPPort:    getEnv("HTTP_PORT", "8080"),
		MetricsPort: getEnv("METRICS_PORT", "9095"),
	}
}

// KafkaBrokerList retorna os brokers configurados, sem entradas vazias
func (c Config) KafkaBrokerList() []string {
	return splitList(c.KafkaBrokers)
}

// getEnv retorna o valor da variável de ambiente ou o default
func getEnv(key, def string) string {
	if v, ok := os.LookupEnv(key); ok {
		return v
	}
	return def
}

// getEnvDuration interpreta durações no formato de time.ParseDuration ("10s", "1m")
func getEnvDuration(key string, def time.Duration) time.Duration {
	v, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	d, err := time.ParseDuration(v)
	if err != nil || d <= 0 {
		return def
	}
	return d
}

func splitList(s string) []string {
	var out []string
	for _, p := range strings.Split(s, ",") {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
