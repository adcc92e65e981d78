package stats

import (
	"errors"
	"testing"

	"github.com/radieske/nba-playbyplay-service/internal/playbyplay/dto"
)

func TestContributionRatio(t *testing.T) {
	got, err := ContributionRatio(Counts{Points: 20, Steals: 2, Blocks: 1, Rebounds: 5, Turnovers: 1, Fouls: 1})
	if err != nil {
		t.Fatalf("ContributionRatio: %v", err)
	}
	if got != 0.87 {
		t.Fatalf("expected 0.87, got %v", got)
	}
}

func TestContributionRatioClampsAtZero(t *testing.T) {
	got, err := ContributionRatio(Counts{Turnovers: 3, Fouls: 2, Points: 1})
	if err != nil {
		t.Fatalf("ContributionRatio: %v", err)
	}
	if got != 0 {
		t.Fatalf("expected 0, got %v", got)
	}
}

func TestContributionRatioZeroInputs(t *testing.T) {
	if _, err := ContributionRatio(Counts{}); !errors.Is(err, ErrComputation) {
		t.Fatalf("expected ErrComputation, got %v", err)
	}
}

func TestComputeRatios(t *testing.T) {
	actions := sampleGame()
	actions[len(actions)-1] = gameEnd(102, 98)

	c := Counts{Points: 20, Steals: 2, Blocks: 1, Rebounds: 5, Turnovers: 1, Fouls: 1}
	home, err := ComputeRatios(c, actions, str("BOS"))
	if err != nil {
		t.Fatalf("ComputeRatios: %v", err)
	}
	if home.Contribution != 0.87 || home.PointsShare != 0.2 {
		t.Fatalf("unexpected home ratios %+v", home)
	}

	away, err := ComputeRatios(Counts{Points: 49}, actions, str("MIA"))
	if err != nil {
		t.Fatalf("ComputeRatios: %v", err)
	}
	if away.PointsShare != 0.5 || away.Contribution != 1 {
		t.Fatalf("unexpected away ratios %+v", away)
	}
}

func TestComputeRatiosFailures(t *testing.T) {
	c := Counts{Points: 4, Steals: 1}
	ended := sampleGame()
	notEnded := ended[:len(ended)-1]
	unclassified := []*dto.Action{play("BOS", "Brown", ActionSteal), play("MIA", "Butler", ActionFoul), gameEnd(10, 8)}
	partial := append(append([]*dto.Action{}, notEnded...), &dto.Action{ActionType: ActionGame, SubType: SubTypeEnd, ScoreHome: dto.Int(4)})
	shutout := append(append([]*dto.Action{}, notEnded...), gameEnd(4, 0))

	cases := []struct {
		name    string
		counts  Counts
		actions []*dto.Action
		tricode *string
		want    error
	}{
		{"zero counts", Counts{}, ended, str("BOS"), ErrComputation},
		{"not ended", c, notEnded, str("BOS"), ErrGameNotConcluded},
		{"partial final score", c, partial, str("BOS"), ErrGameNotConcluded},
		{"no tricode", c, ended, nil, ErrClassification},
		{"no classification", c, unclassified, str("BOS"), ErrClassification},
		{"unknown tricode", c, ended, str("LAL"), ErrClassification},
		{"team scored zero", c, shutout, str("MIA"), ErrComputation},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := ComputeRatios(tc.counts, tc.actions, tc.tricode); !errors.Is(err, tc.want) {
				t.Fatalf("expected %v, got %v", tc.want, err)
			}
		})
	}
}

func TestRound2MidpointToEven(t *testing.T) {
	if got := round2(0.125); got != 0.12 {
		t.Fatalf("expected 0.12, got %v", got)
	}
	if got := round2(0.375); got != 0.38 {
		t.Fatalf("expected 0.38, got %v", got)
	}
}
