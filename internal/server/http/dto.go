package httpserver

import (
	"cnchess/internal/cnchess"
	"cnchess/internal/engine"
	"cnchess/internal/server/game"
)

// NewGameRequest 可以为空；human 为 "upper" 或 "lower"（默认 lower）
type NewGameRequest struct {
	Human    string `json:"human"`
	Depth    int    `json:"depth"`
	Parallel bool   `json:"parallel"`
	Position string `json:"position"` // 可选：从这个局面开始
}

// State / Undo / Remake / Advice 只需要 game_id
type GameRequest struct {
	GameID string `json:"game_id"`
}

// Play 请求，招法用 ICCS 坐标，如 "h2e2"
type PlayRequest struct {
	GameID string `json:"game_id"`
	Move   string `json:"move"`
}

// 局面返回：new_game / state / undo / remake 共用
type GameResponse struct {
	GameID     string   `json:"game_id"`
	Position   string   `json:"position"`   // Board.Encode()
	ToMove     int      `json:"to_move"`    // 0=上方, 1=下方
	HumanSide  int      `json:"human_side"` // 同上
	LegalMoves []string `json:"legal_moves"`
	LastMove   string   `json:"last_move,omitempty"`
	Plies      int      `json:"plies"`
	Status     string   `json:"status"` // ongoing / upper_wins / lower_wins / draw
}

// Play 返回
type PlayResponse struct {
	GameResponse
	HumanMove string `json:"human_move"`
	AIMove    string `json:"ai_move,omitempty"` // 对局已结束时为空
	Score     int    `json:"score"`
	Depth     int    `json:"depth"`
	Nodes     int64  `json:"nodes"`
	TimeMs    int64  `json:"time_ms"`
}

// Advice 返回：只思考不落子
type AdviceResponse struct {
	BestMove string `json:"best_move"`
	Score    int    `json:"score"`
	Depth    int    `json:"depth"`
	Nodes    int64  `json:"nodes"`
	TimeMs   int64  `json:"time_ms"`
}

func sideToInt(s cnchess.Side) int {
	switch s {
	case cnchess.Upper:
		return 0
	case cnchess.Lower:
		return 1
	default:
		return -1
	}
}

// parseHumanUpper 只接受 "upper" / "lower"
func parseHumanUpper(v string) (bool, bool) {
	switch v {
	case "upper":
		return true, true
	case "lower":
		return false, true
	}
	return false, false
}

func moveString(m cnchess.Move) string {
	if m.IsZero() {
		return ""
	}
	return m.String()
}

func movesToStrings(ms []cnchess.Move) []string {
	out := make([]string, len(ms))
	for i, m := range ms {
		out[i] = m.String()
	}
	return out
}

func snapshotToDTO(s game.Snapshot) GameResponse {
	return GameResponse{
		GameID:     s.ID,
		Position:   s.Board,
		ToMove:     sideToInt(s.ToMove),
		HumanSide:  sideToInt(s.HumanSide),
		LegalMoves: movesToStrings(s.Legal),
		LastMove:   moveString(s.LastMove),
		Plies:      s.Plies,
		Status:     string(s.Status),
	}
}

func adviceToDTO(r engine.SearchResult) AdviceResponse {
	return AdviceResponse{
		BestMove: moveString(r.BestMove),
		Score:    r.Score,
		Depth:    r.Depth,
		Nodes:    r.Nodes,
		TimeMs:   r.TimeUsed.Milliseconds(),
	}
}
