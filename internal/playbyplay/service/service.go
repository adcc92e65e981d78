package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/radieske/nba-playbyplay-service/internal/playbyplay/dto"
	"github.com/radieske/nba-playbyplay-service/internal/playbyplay/stats"
	"github.com/radieske/nba-playbyplay-service/pkg/contracts/events"
)

// ErrNoPlayers indica que nenhum registro do jogo tem jogador e time
var ErrNoPlayers = errors.New("no actions associated with players")

// ErrRatiosUnavailable indica jogador encontrado mas razões não calculáveis
var ErrRatiosUnavailable = errors.New("player ratios unavailable")

// ActionSource entrega a sequência de ações de um jogo
type ActionSource interface {
	Actions(ctx context.Context, gameID string) ([]*dto.Action, error)
}

// Notifier recebe os jogos encerrados consultados
type Notifier interface {
	PublishGameFinished(ctx context.Context, ev events.GameFinished) error
}

// Service orquestra as consultas. Não guarda estado entre requisições:
// cada chamada busca o documento de novo.
type Service struct {
	log    *zap.Logger
	source ActionSource
	notify Notifier
	now    func() time.Time
}

func New(log *zap.Logger, src ActionSource, n Notifier) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{log: log, source: src, notify: n, now: time.Now}
}

func (s *Service) actions(ctx context.Context, gameID string) ([]*dto.Action, error) {
	actions, err := s.source.Actions(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("game %s: %w", gameID, err)
	}
	if len(actions) == 0 {
		return nil, stats.ErrNoActions
	}
	return actions, nil
}

// AllPlayerNames agrupa os jogadores por Home/Away (ou tricode)
func (s *Service) AllPlayerNames(ctx context.Context, gameID string) (stats.Roster, error) {
	actions, err := s.actions(ctx, gameID)
	if err != nil {
		return nil, err
	}
	roster, err := stats.Rosters(actions)
	if err != nil {
		s.log.Debug("roster classification failed", zap.String("game_id", gameID), zap.Error(err))
		return nil, fmt.Errorf("%w: %v", ErrNoPlayers, err)
	}
	if len(roster) == 0 {
		return nil, ErrNoPlayers
	}
	return roster, nil
}

// ActionsByPlayer lista os tipos de ação distintos do jogador
func (s *Service) ActionsByPlayer(ctx context.Context, gameID, playerName string) ([]string, error) {
	actions, err := s.actions(ctx, gameID)
	if err != nil {
		return nil, err
	}
	types := stats.ActionsFor(actions, playerName)
	if len(types) == 0 {
		return nil, stats.ErrPlayerNotFound
	}
	return types, nil
}

// ResultsByPlayer combina o agregado do jogador com as duas razões.
// Sem razões não há resultado parcial.
func (s *Service) ResultsByPlayer(ctx context.Context, gameID, playerName string) (dto.PlayerResults, error) {
	actions, err := s.actions(ctx, gameID)
	if err != nil {
		return dto.PlayerResults{}, err
	}

	st := stats.StatsFor(actions, playerName)
	if !st.Exists {
		return dto.PlayerResults{}, stats.ErrPlayerNotFound
	}

	ratios, err := stats.ComputeRatios(st.Counts, actions, st.TeamTricode)
	if err != nil {
		s.log.Debug("ratios unavailable",
			zap.String("game_id", gameID),
			zap.String("player", playerName),
			zap.Error(err),
		)
		return dto.PlayerResults{}, fmt.Errorf("%w: %w", ErrRatiosUnavailable, err)
	}

	res := dto.PlayerResults{
		PlayerName:        playerName,
		Points:            st.Points,
		Goals:             st.Goals,
		Steals:            st.Steals,
		Blocks:            st.Blocks,
		Rebounds:          st.Rebounds,
		Turnovers:         st.Turnovers,
		Fouls:             st.Fouls,
		ContributionRatio: ratios.Contribution,
		PointsRatio:       ratios.PointsShare,
	}
	if st.TeamTricode != nil {
		res.TeamTricode = *st.TeamTricode
	}
	res.Summary = PlayerSummary(res)
	return res, nil
}

// GameResults devolve o placar final e o vencedor; empate conta como vitória do visitante.
// Um jogo encerrado é publicado nos destinos configurados, sem afetar a resposta.
func (s *Service) GameResults(ctx context.Context, gameID string) (dto.GameResults, error) {
	actions, err := s.actions(ctx, gameID)
	if err != nil {
		return dto.GameResults{}, err
	}

	final, err := stats.FinalScoreOf(actions)
	if err != nil {
		return dto.GameResults{}, err
	}
	if !final.Complete() {
		return dto.GameResults{}, stats.ErrGameNotConcluded
	}

	res := dto.GameResults{
		GameID: gameID,
		Winner: stats.Away.String(),
		Home:   final.Home.Value,
		Away:   final.Away.Value,
	}
	if res.Home > res.Away {
		res.Winner = stats.Home.String()
	}
	res.Summary = GameSummary(res)

	s.publishFinished(ctx, res)
	return res, nil
}

func (s *Service) publishFinished(ctx context.Context, res dto.GameResults) {
	if s.notify == nil {
		return
	}
	ev := events.GameFinished{
		EventID:   uuid.NewString(),
		GameID:    res.GameID,
		Winner:    res.Winner,
		HomeScore: res.Home,
		AwayScore: res.Away,
		TsUnixMs:  s.now().UnixMilli(),
	}
	if err := s.notify.PublishGameFinished(ctx, ev); err != nil {
		s.log.Warn("game finished publish failed", zap.String("game_id", res.GameID), zap.Error(err))
	}
}
