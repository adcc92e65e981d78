package feed

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	jsoniter "github.com/json-iterator/go"
	"go.uber.org/zap"

	"github.com/radieske/nba-playbyplay-service/internal/playbyplay/dto"
	"github.com/radieske/nba-playbyplay-service/internal/shared/metrics"
)

var (
	ErrInvalidGameID = errors.New("invalid game id")
	ErrUpstream      = errors.New("nba feed unavailable")
	ErrMalformed     = errors.New("malformed play-by-play document")
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// maxDocumentBytes limita o corpo lido do CDN
const maxDocumentBytes = 32 << 20

const (
	userAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"
	referer   = "https://www.nba.com/"
)

// Client busca o documento de play-by-play de um jogo no CDN da NBA
type Client struct {
	BaseURL string
	HTTP    *http.Client

	log     *zap.Logger
	metrics *metrics.Recorder
}

func New(base string, timeout time.Duration, log *zap.Logger, rec *metrics.Recorder) *Client {
	if log == nil {
		log = zap.NewNop()
	}
	return &Client{
		BaseURL: strings.TrimSuffix(base, "/"),
		HTTP:    &http.Client{Timeout: timeout},
		log:     log,
		metrics: rec,
	}
}

// DocumentURL monta a URL playbyplay_{gameId}.json
func (c *Client) DocumentURL(gameID string) string {
	return fmt.Sprintf("%s/playbyplay_%s.json", c.BaseURL, url.PathEscape(gameID))
}

// Actions retorna game.actions na ordem do feed (pode ser vazio)
func (c *Client) Actions(ctx context.Context, gameID string) ([]*dto.Action, error) {
	doc, err := c.Fetch(ctx, gameID)
	if err != nil {
		return nil, err
	}
	return doc.Game.Actions, nil
}

// Fetch baixa e decodifica o documento. Não há retry: falha é terminal para a requisição.
func (c *Client) Fetch(ctx context.Context, gameID string) (*dto.PlayByPlay, error) {
	if strings.TrimSpace(gameID) == "" {
		return nil, ErrInvalidGameID
	}

	start := time.Now()
	doc, err := c.fetch(ctx, gameID)
	outcome := "ok"
	switch {
	case errors.Is(err, ErrMalformed):
		outcome = "malformed"
	case err != nil:
		outcome = "upstream"
	case len(doc.Game.Actions) == 0:
		outcome = "empty"
	}
	c.metrics.ObserveFetch(outcome, time.Since(start))

	if err != nil {
		c.log.Warn("play-by-play fetch failed", zap.String("game_id", gameID), zap.Error(err))
		return nil, err
	}
	return doc, nil
}

func (c *Client) fetch(ctx context.Context, gameID string) (*dto.PlayByPlay, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.DocumentURL(gameID), nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Referer", referer)
	req.Header.Set("User-Agent", userAgent)

	res, err := c.HTTP.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUpstream, err)
	}
	defer res.Body.Close()

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		_, _ = io.Copy(io.Discard, io.LimitReader(res.Body, 4<<10))
		return nil, fmt.Errorf("%w: failed to fetch data from NBA API: %d", ErrUpstream, res.StatusCode)
	}

	var doc dto.PlayByPlay
	if err := json.NewDecoder(io.LimitReader(res.Body, maxDocumentBytes)).Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformed, err)
	}
	return &doc, nil
}
