package events

// Evento publicado no tópico/canal "nba_game_finished" quando um jogo consultado já terminou.
type GameFinished struct {
	EventID   string `json:"event_id"`
	GameID    string `json:"game_id"`
	Winner    string `json:"winner"` // "Home" | "Away"
	HomeScore int    `json:"home_score"`
	AwayScore int    `json:"away_score"`
	TsUnixMs  int64  `json:"ts_unix_ms"`
}
