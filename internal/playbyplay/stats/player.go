package stats

import "github.com/radieske/nba-playbyplay-service/internal/playbyplay/dto"

// tipos de ação contabilizados em PlayerStats
const (
	ActionSteal    = "steal"
	ActionBlock    = "block"
	ActionRebound  = "rebound"
	ActionTurnover = "turnover"
	ActionFoul     = "foul"
)

// Counts são as entradas do cálculo de razões
type Counts struct {
	Points    int
	Steals    int
	Blocks    int
	Rebounds  int
	Turnovers int
	Fouls     int
}

// PlayerStats é o agregado de um jogador em um jogo
type PlayerStats struct {
	Counts
	Goals       int
	TeamTricode *string // tricode do último registro do jogador
	Exists      bool
}

func matches(a *dto.Action, playerName string) bool {
	name, ok := a.Player()
	return ok && name == playerName
}

// ActionsFor retorna os tipos de ação distintos do jogador, na ordem da primeira ocorrência.
// Comparação exata, sensível a maiúsculas.
func ActionsFor(actions []*dto.Action, playerName string) []string {
	seen := map[string]struct{}{}
	out := []string{}
	for _, a := range actions {
		if !matches(a, playerName) || a.ActionType == "" {
			continue
		}
		if _, dup := seen[a.ActionType]; dup {
			continue
		}
		seen[a.ActionType] = struct{}{}
		out = append(out, a.ActionType)
	}
	return out
}

// StatsFor agrega as ações do jogador em uma passada.
// Points é o pointsTotal da última cesta convertida, não uma soma local.
func StatsFor(actions []*dto.Action, playerName string) PlayerStats {
	var s PlayerStats
	for _, a := range actions {
		if !matches(a, playerName) {
			continue
		}
		s.Exists = true
		s.TeamTricode = a.TeamTricode

		if a.ShotResult == ShotMade {
			s.Goals++
			s.Points, _ = a.PointsTotal.Get()
		}

		switch a.ActionType {
		case ActionSteal:
			s.Steals++
		case ActionBlock:
			s.Blocks++
		case ActionRebound:
			s.Rebounds++
		case ActionTurnover:
			s.Turnovers++
		case ActionFoul:
			s.Fouls++
		}
	}
	return s
}
