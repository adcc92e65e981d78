package httpapi

import (
	"errors"
	"net/http"

	"github.com/radieske/nba-playbyplay-service/internal/playbyplay/service"
	"github.com/radieske/nba-playbyplay-service/internal/playbyplay/stats"
)

const (
	msgNoActions       = "There are no actions"
	msgNoPlayerActions = "There are no actions associated with players in this game"
	msgGameNotEnded    = "Game didn't end yet"
)

func playerNotFound(name string) string {
	return name + " doesn't have associated actions in this game"
}

func resultsUnavailable(name string) string {
	return "results for " + name + " are not available yet"
}

// allPlayersNames retorna os jogadores agrupados por Home/Away
func (a *API) allPlayersNames(w http.ResponseWriter, r *http.Request) {
	roster, err := a.Queries.AllPlayerNames(r.Context(), pathParam(r, "gameId"))
	if err != nil {
		if errors.Is(err, service.ErrNoPlayers) {
			writeError(w, msgNoPlayerActions)
			return
		}
		writeError(w, msgNoActions)
		return
	}
	writeJSON(w, http.StatusOK, roster)
}

// actionsByPlayerName retorna os tipos de ação distintos do jogador
func (a *API) actionsByPlayerName(w http.ResponseWriter, r *http.Request) {
	player := pathParam(r, "playerName")
	types, err := a.Queries.ActionsByPlayer(r.Context(), pathParam(r, "gameId"), player)
	if err != nil {
		if errors.Is(err, stats.ErrPlayerNotFound) {
			writeError(w, playerNotFound(player))
			return
		}
		writeError(w, msgNoActions)
		return
	}
	writeJSON(w, http.StatusOK, types)
}

// resultsByPlayerName retorna estatísticas, razões e o resumo em texto
func (a *API) resultsByPlayerName(w http.ResponseWriter, r *http.Request) {
	player := pathParam(r, "playerName")
	res, err := a.Queries.ResultsByPlayer(r.Context(), pathParam(r, "gameId"), player)
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, res)
	case errors.Is(err, stats.ErrPlayerNotFound):
		writeError(w, playerNotFound(player))
	case errors.Is(err, service.ErrRatiosUnavailable):
		writeError(w, resultsUnavailable(player))
	default:
		writeError(w, msgNoActions)
	}
}

// gameResults retorna o vencedor e o placar final
func (a *API) gameResults(w http.ResponseWriter, r *http.Request) {
	res, err := a.Queries.GameResults(r.Context(), pathParam(r, "gameId"))
	switch {
	case err == nil:
		writeJSON(w, http.StatusOK, res)
	case errors.Is(err, stats.ErrGameNotConcluded):
		writeError(w, msgGameNotEnded)
	default:
		writeError(w, msgNoActions)
	}
}
