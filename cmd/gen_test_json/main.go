package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"math/rand"
	"os"
	"time"

	"cnchess/internal/cnchess"
	"cnchess/internal/engine"
)

// TestCase 是一个随机局面和它的全部着法，用于和其它实现对拍
type TestCase struct {
	Position string   `json:"position"` // Board.Encode()
	Side     int      `json:"side"`     // 0=上方, 1=下方
	Moves    []string `json:"moves"`    // 生成顺序
	Perft2   int64    `json:"perft2"`
	Eval     int      `json:"eval"`
}

func sideToInt(s cnchess.Side) int {
	if s == cnchess.Upper {
		return 0
	}
	return 1
}

func randomGame(rng *rand.Rand, maxPlies int) []TestCase {
	var cases []TestCase
	b := cnchess.NewBoard()
	side := cnchess.Lower
	for ply := 0; ply < maxPlies; ply++ {
		moves := b.GenerateMovesForSide(side)
		if len(moves) == 0 || b.Winner() != cnchess.NoSide {
			break
		}
		tc := TestCase{
			Position: b.Encode(),
			Side:     sideToInt(side),
			Moves:    make([]string, len(moves)),
			Perft2:   b.Perft(side, 2),
			Eval:     engine.Evaluate(b),
		}
		for i, m := range moves {
			tc.Moves[i] = m.String()
		}
		cases = append(cases, tc)

		// 随机选一步
		if err := b.Apply(moves[rng.Intn(len(moves))]); err != nil {
			break
		}
		side = side.Opponent()
	}
	return cases
}

func main() {
	games := flag.Int("games", 10, "number of random games")
	maxPlies := flag.Int("maxplies", 200, "plies per game, mostly to stop endless games")
	seed := flag.Int64("seed", time.Now().UnixNano(), "random seed")
	out := flag.String("out", "move_gen_test_data.json", "output file")
	flag.Parse()

	rng := rand.New(rand.NewSource(*seed))
	var testCases []TestCase
	for g := 0; g < *games; g++ {
		testCases = append(testCases, randomGame(rng, *maxPlies)...)
	}

	data, err := json.MarshalIndent(testCases, "", "  ")
	if err != nil {
		log.Fatal(err)
	}
	if err := os.WriteFile(*out, data, 0o644); err != nil {
		log.Fatal(err)
	}
	fmt.Printf("Generated %d test cases from %d random games (seed %d) to %s\n", len(testCases), *games, *seed, *out)
}
