package main

import (
	"flag"
	"fmt"
	"log"
	"time"

	"cnchess/internal/cnchess"
	"cnchess/internal/engine"
)

func main() {
	position := flag.String("position", "", "board encoding, opening if empty")
	side := flag.String("side", "lower", "side to move: upper or lower")
	perft := flag.Int("perft", 3, "perft depth, 0 to skip")
	depth := flag.Int("depth", 0, "also run a search at this depth")
	flag.Parse()

	b := cnchess.NewBoard()
	if *position != "" {
		var err error
		if b, err = cnchess.DecodeBoard(*position); err != nil {
			log.Fatalf("decode %q: %v", *position, err)
		}
	}
	s := cnchess.Lower
	if *side == "upper" {
		s = cnchess.Upper
	}

	fmt.Println(b)
	fmt.Println("Encoding:", b.Encode())
	fmt.Println("Eval:", engine.Evaluate(b))
	moves := b.GenerateMovesForSide(s)
	fmt.Println("Moves:", len(moves), moves)

	for d := 1; d <= *perft; d++ {
		start := time.Now()
		n := b.Perft(s, d)
		fmt.Printf("perft %d: %d (%v)\n", d, n, time.Since(start))
	}

	if *depth > 0 {
		res := engine.NewEngine().Search(b, engine.SearchConfig{Side: s, Depth: *depth})
		fmt.Printf("BestMove: %v, Score: %d, Nodes: %d, Time: %v\n",
			res.BestMove, res.Score, res.Nodes, res.TimeUsed)
	}
}
