package dto

// PlayerResults é a resposta de resultsByPlayerName
type PlayerResults struct {
	PlayerName        string  `json:"playerName"`
	TeamTricode       string  `json:"teamTricode,omitempty"`
	Points            int     `json:"points"`
	Goals             int     `json:"goals"`
	Steals            int     `json:"steals"`
	Blocks            int     `json:"blocks"`
	Rebounds          int     `json:"rebounds"`
	Turnovers         int     `json:"turnovers"`
	Fouls             int     `json:"fouls"`
	ContributionRatio float64 `json:"contributionRatio"`
	PointsRatio       float64 `json:"pointsRatio"`
	Summary           string  `json:"summary"`
}

// GameResults é a resposta de gameResults
type GameResults struct {
	GameID  string `json:"gameId"`
	Winner  string `json:"winner"` // "Home" | "Away"
	Home    int    `json:"home"`
	Away    int    `json:"away"`
	Summary string `json:"summary"`
}
