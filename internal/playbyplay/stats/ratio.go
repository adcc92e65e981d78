package stats

import (
	"fmt"
	"math"

	"github.com/radieske/nba-playbyplay-service/internal/playbyplay/dto"
)

// Ratios são a razão de contribuição e a fatia de pontos do time
type Ratios struct {
	Contribution float64
	PointsShare  float64
}

// ContributionRatio = max(0, (positivas - negativas) / total), 2 casas
func ContributionRatio(c Counts) (float64, error) {
	positive := c.Points + c.Steals + c.Blocks + c.Rebounds
	negative := c.Turnovers + c.Fouls
	relevant := positive + negative
	if relevant == 0 {
		return 0, fmt.Errorf("no relevant actions: %w", ErrComputation)
	}
	r := float64(positive-negative) / float64(relevant)
	return round2(math.Max(r, 0)), nil
}

// ComputeRatios calcula as duas razões; o denominador da fatia de pontos é
// o placar final do lado do jogador, resolvido pela classificação do mesmo jogo.
func ComputeRatios(c Counts, actions []*dto.Action, teamTricode *string) (Ratios, error) {
	contribution, err := ContributionRatio(c)
	if err != nil {
		return Ratios{}, err
	}

	final, err := FinalScoreOf(actions)
	if err != nil {
		return Ratios{}, err
	}
	if !final.Complete() {
		return Ratios{}, ErrGameNotConcluded
	}
	if teamTricode == nil {
		return Ratios{}, fmt.Errorf("player without team: %w", ErrClassification)
	}

	classification := Classify(actions)
	if len(classification) == 0 {
		return Ratios{}, ErrClassification
	}
	side, err := classification.Lookup(*teamTricode)
	if err != nil {
		return Ratios{}, err
	}

	teamScore := final.Away.Value
	if side == Home {
		teamScore = final.Home.Value
	}
	if teamScore == 0 {
		return Ratios{}, fmt.Errorf("team scored zero points: %w", ErrComputation)
	}

	return Ratios{
		Contribution: contribution,
		PointsShare:  round2(float64(c.Points) / float64(teamScore)),
	}, nil
}

// round2 arredonda para 2 casas com meio-a-par
func round2(v float64) float64 {
	return math.RoundToEven(v*100) / 100
}
