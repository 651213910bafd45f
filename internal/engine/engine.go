package engine

import (
	"runtime"

	"cnchess/internal/cnchess"
)

// DefaultDepth is the search depth used when a config leaves it unset.
const DefaultDepth = 4

// Engine runs searches on a board it is handed. A single Engine must not
// search two boards at once; SearchParallel gives each worker its own.
type Engine struct {
	nodes int64
}

func NewEngine() *Engine {
	return &Engine{}
}

// Nodes is the number of positions visited by the last search.
func (e *Engine) Nodes() int64 {
	return e.nodes
}

// 搜索配置
type SearchConfig struct {
	Side    cnchess.Side // 走子方
	Depth   int          // 每个根着法之下的搜索层数
	Workers int          // 仅 SearchParallel 使用；<= 0 表示 runtime.NumCPU()
}

func (cfg SearchConfig) withDefaults() SearchConfig {
	if cfg.Depth <= 0 {
		cfg.Depth = DefaultDepth
	}
	if cfg.Workers <= 0 {
		cfg.Workers = runtime.NumCPU()
	}
	return cfg
}

// applyOrPanic is used inside search where moves come from the generator
// and the history has been checked for room.
func applyOrPanic(b *cnchess.Board, m cnchess.Move) {
	if err := b.Apply(m); err != nil {
		panic("engine: apply " + m.String() + ": " + err.Error())
	}
}
