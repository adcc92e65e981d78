package stats

import "github.com/radieske/nba-playbyplay-service/internal/playbyplay/dto"

func str(s string) *string { return &s }

// shot cria uma ação de arremesso com placar corrente
func shot(tricode, player, result string, home, away, pointsTotal int) *dto.Action {
	return &dto.Action{
		TeamTricode: str(tricode),
		PlayerName:  str(player),
		ActionType:  "2pt",
		ShotResult:  result,
		ScoreHome:   dto.Int(home),
		ScoreAway:   dto.Int(away),
		PointsTotal: dto.Int(pointsTotal),
	}
}

func play(tricode, player, actionType string) *dto.Action {
	return &dto.Action{TeamTricode: str(tricode), PlayerName: str(player), ActionType: actionType}
}

func gameEnd(home, away int) *dto.Action {
	return &dto.Action{ActionType: ActionGame, SubType: SubTypeEnd, ScoreHome: dto.Int(home), ScoreAway: dto.Int(away)}
}

// sampleGame: BOS pontua primeiro como mandante, MIA aparece depois
func sampleGame() []*dto.Action {
	return []*dto.Action{
		{ActionType: "period", SubType: "start"},
		play("BOS", "Tatum", "jumpball"),
		shot("BOS", "Brown", ShotMade, 2, 0, 2),
		play("MIA", "Butler", ActionTurnover),
		play("BOS", "Brown", ActionSteal),
		shot("MIA", "Adebayo", ShotMade, 2, 2, 2),
		shot("BOS", "Brown", "Missed", 2, 2, 2),
		play("MIA", "Adebayo", ActionRebound),
		play("MIA", "Butler", ActionFoul),
		shot("BOS", "Brown", ShotMade, 4, 2, 4),
		play("BOS", "Brown", ActionBlock),
		gameEnd(4, 2),
	}
}
