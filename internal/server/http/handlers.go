package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"

	"cnchess/internal/cnchess"
	"cnchess/internal/server/game"
)

// Handler 实现 http.Handler，用于 /api/* 路由
type Handler struct {
	games    *game.Manager
	defaults game.Config
}

// NewHandler serves sessions from mgr. defaults fills in whatever a
// new_game request leaves unset.
func NewHandler(mgr *game.Manager, defaults game.Config) *Handler {
	return &Handler{games: mgr, defaults: defaults}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	switch r.URL.Path {
	case "/api/new_game":
		h.handleNewGame(w, r)
	case "/api/state":
		h.handleState(w, r)
	case "/api/play":
		h.handlePlay(w, r)
	case "/api/undo":
		h.handleUndo(w, r)
	case "/api/remake":
		h.handleRemake(w, r)
	case "/api/advice":
		h.handleAdvice(w, r)
	default:
		http.NotFound(w, r)
	}
}

func (h *Handler) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req NewGameRequest
	// 空 body 也可以，全部用默认值
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}

	cfg := h.defaults
	if req.Human != "" {
		upper, ok := parseHumanUpper(req.Human)
		if !ok {
			http.Error(w, "human must be upper or lower", http.StatusBadRequest)
			return
		}
		cfg.HumanUpper = upper
	}
	if req.Depth > 0 {
		cfg.Depth = req.Depth
	}
	if req.Parallel {
		cfg.Parallel = true
	}

	b := cnchess.NewBoard()
	if req.Position != "" {
		var err error
		if b, err = cnchess.DecodeBoard(req.Position); err != nil {
			writeError(w, err)
			return
		}
	}

	s := h.games.NewGameFrom(cfg, b)
	log.Printf("new game %s, human %v", s.ID, s.HumanSide)
	writeJSON(w, snapshotToDTO(s))
}

func (h *Handler) handleState(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeGameRequest(w, r)
	if !ok {
		return
	}
	s, err := h.games.State(req.GameID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, snapshotToDTO(s))
}

func (h *Handler) handlePlay(w http.ResponseWriter, r *http.Request) {
	var req PlayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return
	}
	mv, err := cnchess.ParseMove(req.Move)
	if err != nil {
		writeError(w, err)
		return
	}

	res, err := h.games.Play(r.Context(), req.GameID, mv)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, PlayResponse{
		GameResponse: snapshotToDTO(res.Snapshot),
		HumanMove:    res.Human.String(),
		AIMove:       moveString(res.AI),
		Score:        res.Search.Score,
		Depth:        res.Search.Depth,
		Nodes:        res.Search.Nodes,
		TimeMs:       res.Search.TimeUsed.Milliseconds(),
	})
}

func (h *Handler) handleUndo(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeGameRequest(w, r)
	if !ok {
		return
	}
	s, err := h.games.Undo(req.GameID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, snapshotToDTO(s))
}

func (h *Handler) handleRemake(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeGameRequest(w, r)
	if !ok {
		return
	}
	s, err := h.games.Remake(req.GameID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, snapshotToDTO(s))
}

func (h *Handler) handleAdvice(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeGameRequest(w, r)
	if !ok {
		return
	}
	res, err := h.games.Advice(r.Context(), req.GameID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, adviceToDTO(res))
}

func decodeGameRequest(w http.ResponseWriter, r *http.Request) (GameRequest, bool) {
	var req GameRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad json", http.StatusBadRequest)
		return req, false
	}
	return req, true
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Println("writeJSON error:", err)
	}
}

// writeError 把会话层的错误映射成状态码
func writeError(w http.ResponseWriter, err error) {
	code := http.StatusInternalServerError
	switch {
	case errors.Is(err, game.ErrGameNotFound):
		code = http.StatusNotFound
	case errors.Is(err, game.ErrGameOver):
		code = http.StatusConflict
	case errors.Is(err, game.ErrIllegalMove),
		errors.Is(err, game.ErrNotYourPiece),
		errors.Is(err, game.ErrNothingToUndo),
		errors.Is(err, cnchess.ErrInvalidMove),
		errors.Is(err, cnchess.ErrInvalidBoard):
		code = http.StatusBadRequest
	case errors.Is(err, context.Canceled), errors.Is(err, context.DeadlineExceeded):
		code = http.StatusServiceUnavailable
	default:
		log.Println("api error:", err)
	}
	http.Error(w, err.Error(), code)
}
