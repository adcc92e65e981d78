package topics

const (
	// Jogos
	GameFinished = "nba_game_finished"
)
