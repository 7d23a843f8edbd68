package types

type NewGameRequest struct {
	Difficulty int   `json:"difficulty"`
	Seed       int64 `json:"seed,optional"`
}

type NewGameResponse struct {
	GameUid string `json:"gameUid"`
	State   string `json:"state"`
}

type SuggestMoveRequest struct {
	GameUid       string  `json:"gameUid"`
	Step          int     `json:"step"`
	State         string  `json:"state"`
	Strategy      string  `json:"strategy"`
	Heuristic     string  `json:"heuristic,optional"`
	Weight        float64 `json:"weight,optional"`
	MaxExpansions int     `json:"maxExpansions,optional"`
}

type SuggestMoveResponse struct {
	Row       int    `json:"row"`
	Col       int    `json:"col"`
	PieceName string `json:"pieceName"`
	Cached    bool   `json:"cached"`
}

type RecordMoveRequest struct {
	GameUid          string `json:"gameUid"`
	Step             int    `json:"step,optional"`
	Row              int    `json:"row,optional"`
	Col              int    `json:"col,optional"`
	PieceName        string `json:"pieceName,optional"`
	Strategy         string `json:"strategy,optional"`
	ScoreAfter       int    `json:"scoreAfter,optional"`
	BonusesLeft      int    `json:"bonusesLeft,optional"`
	GameOver         bool   `json:"gameOver,optional"`
	Outcome          string `json:"outcome,optional"`
	FinalScore       int    `json:"finalScore,optional"`
	BonusesCollected int    `json:"bonusesCollected,optional"`
}

type RecordMoveResponse struct {
	Ok bool `json:"ok"`
}
