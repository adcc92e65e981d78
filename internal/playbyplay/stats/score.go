package stats

import "github.com/radieske/nba-playbyplay-service/internal/playbyplay/dto"

// FinalScore é o placar do registro game/end; cada lado pode faltar
type FinalScore struct {
	Home dto.OptInt
	Away dto.OptInt
}

// Complete indica que os dois placares estão presentes
func (f FinalScore) Complete() bool { return f.Home.Valid && f.Away.Valid }

// FinalScoreOf varre do fim para o início até o primeiro game/end.
// Um registro ausente (nil) interrompe a varredura.
func FinalScoreOf(actions []*dto.Action) (FinalScore, error) {
	for i := len(actions) - 1; i >= 0; i-- {
		a := actions[i]
		if a == nil {
			break
		}
		if a.ActionType == ActionGame && a.SubType == SubTypeEnd {
			return FinalScore{Home: a.ScoreHome, Away: a.ScoreAway}, nil
		}
	}
	return FinalScore{}, ErrGameNotConcluded
}
