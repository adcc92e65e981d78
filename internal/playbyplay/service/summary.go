package service

import (
	"fmt"
	"strconv"

	"github.com/radieske/nba-playbyplay-service/internal/playbyplay/dto"
	"github.com/radieske/nba-playbyplay-service/internal/playbyplay/stats"
)

// GameSummary: o vencedor aparece primeiro
func GameSummary(g dto.GameResults) string {
	if g.Winner == stats.Home.String() {
		return fmt.Sprintf("Home won!\n Home: %d points\n Away: %d points", g.Home, g.Away)
	}
	return fmt.Sprintf("Away won!\n Away: %d points\n Home: %d points", g.Away, g.Home)
}

func PlayerSummary(p dto.PlayerResults) string {
	return fmt.Sprintf("**%s results in this game:**\n"+
		" Total Points: %d\n Goals: %d\n Steals: %d\n"+
		" Blocks: %d\n Rebounds: %d\n\n"+
		" Turn Overs: %d\n Fouls: %d\n\n"+
		" *Contribution Ratio:* %s\n *Player Points From Team Points:* %s",
		p.PlayerName, p.Points, p.Goals, p.Steals,
		p.Blocks, p.Rebounds,
		p.Turnovers, p.Fouls,
		formatRatio(p.ContributionRatio), formatRatio(p.PointsRatio))
}

// formatRatio usa a menor representação: 0.87, 0.5, 1
func formatRatio(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
