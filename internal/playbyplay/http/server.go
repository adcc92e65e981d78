package httpapi

import (
	"context"
	"net/http"
	"net/url"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"

	"github.com/radieske/nba-playbyplay-service/internal/playbyplay/dto"
	"github.com/radieske/nba-playbyplay-service/internal/playbyplay/stats"
	"github.com/radieske/nba-playbyplay-service/internal/shared/metrics"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Queries são as quatro consultas expostas pela API
type Queries interface {
	AllPlayerNames(ctx context.Context, gameID string) (stats.Roster, error)
	ActionsByPlayer(ctx context.Context, gameID, playerName string) ([]string, error)
	ResultsByPlayer(ctx context.Context, gameID, playerName string) (dto.PlayerResults, error)
	GameResults(ctx context.Context, gameID string) (dto.GameResults, error)
}

// API expõe os endpoints REST de consulta do play-by-play
type API struct {
	Queries        Queries
	Log            *zap.Logger
	Metrics        *metrics.Recorder
	AllowedOrigins []string
	Timeout        time.Duration // por requisição; zero usa 30s
}

// Router retorna o roteador HTTP com os endpoints REST
func (a *API) Router() http.Handler {
	if a.Log == nil {
		a.Log = zap.NewNop()
	}
	timeout := a.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	origins := a.AllowedOrigins
	if len(origins) == 0 {
		origins = []string{"*"}
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(a.logRequests)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(timeout))
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: origins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	r.Get("/health", a.health)
	r.Route("/api/nba", func(r chi.Router) {
		r.Get("/allPlayersNames/{gameId}", a.allPlayersNames)                      // jogadores por lado
		r.Get("/actionsByPlayerName/{gameId}/{playerName}", a.actionsByPlayerName) // tipos de ação do jogador
		r.Get("/resultsByPlayerName/{gameId}/{playerName}", a.resultsByPlayerName) // estatísticas e razões
		r.Get("/gameResults/{gameId}", a.gameResults)                              // placar final
	})
	return r
}

// writeJSON serializa a resposta em JSON e define o status HTTP
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, msg string) {
	writeJSON(w, http.StatusBadRequest, map[string]string{"error": msg})
}

// pathParam devolve o parâmetro já decodificado ("LeBron%20James" -> "LeBron James")
func pathParam(r *http.Request, key string) string {
	v := chi.URLParam(r, key)
	if u, err := url.PathUnescape(v); err == nil {
		return u
	}
	return v
}

// logRequests registra cada requisição com a rota casada e alimenta as métricas
func (a *API) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		defer func() {
			route := "unmatched"
			if rc := chi.RouteContext(r.Context()); rc != nil && rc.RoutePattern() != "" {
				route = rc.RoutePattern()
			}
			status := ww.Status()
			if status == 0 {
				status = http.StatusOK
			}
			a.Metrics.ObserveRequest(route, status)
			a.Log.Info("http request",
				zap.String("request_id", middleware.GetReqID(r.Context())),
				zap.String("method", r.Method),
				zap.String("route", route),
				zap.String("path", r.URL.Path),
				zap.Int("status", status),
				zap.Duration("took", time.Since(start)),
			)
		}()
		next.ServeHTTP(ww, r)
	})
}

func (a *API) health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
