package dto

// Action representa um evento do play-by-play, na ordem em que aparece no feed.
// Campos ponteiro/OptInt distinguem "ausente" de valor zero.
type Action struct {
	ActionNumber int     `json:"actionNumber"`
	Period       int     `json:"period"`
	Clock        string  `json:"clock"`
	TeamTricode  *string `json:"teamTricode"`
	PlayerName   *string `json:"playerName"`
	ActionType   string  `json:"actionType"` // steal | block | rebound | turnover | foul | game | 2pt | ...
	SubType      string  `json:"subType"`    // "end" junto de actionType "game" encerra o jogo
	ShotResult   string  `json:"shotResult"` // "Made" | "Missed"
	ScoreHome    OptInt  `json:"scoreHome"`
	ScoreAway    OptInt  `json:"scoreAway"`
	PointsTotal  OptInt  `json:"pointsTotal"`
	Description  string  `json:"description,omitempty"`
}

// Tricode retorna o tricode do time e se ele está presente
func (a *Action) Tricode() (string, bool) {
	if a == nil || a.TeamTricode == nil {
		return "", false
	}
	return *a.TeamTricode, true
}

// Player retorna o nome do jogador e se ele está presente
func (a *Action) Player() (string, bool) {
	if a == nil || a.PlayerName == nil {
		return "", false
	}
	return *a.PlayerName, true
}

// PlayByPlay é o documento devolvido pelo CDN; só game.actions é consumido
type PlayByPlay struct {
	Game struct {
		GameID  string    `json:"gameId"`
		Actions []*Action `json:"actions"`
	} `json:"game"`
}
