package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"runtime"

	"golang.org/x/sync/errgroup"

	"cnchess/internal/cnchess"
)

func main() {
	games := flag.Int("games", 10, "number of games to play")
	depthA := flag.Int("depth", 3, "search depth of player A")
	depthB := flag.Int("depth-b", 2, "search depth of player B")
	concurrency := flag.Int("concurrency", runtime.NumCPU(), "games played at the same time")
	maxPlies := flag.Int("maxplies", 400, "plies before a game is scored as a draw")
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	a := PlayerConfig{Name: fmt.Sprintf("A (depth %d)", *depthA), Depth: *depthA}
	b := PlayerConfig{Name: fmt.Sprintf("B (depth %d)", *depthB), Depth: *depthB}
	if err := run(ctx, a, b, *games, *concurrency, *maxPlies); err != nil {
		log.Fatal(err)
	}
}

func run(ctx context.Context, a, b PlayerConfig, games, concurrency, maxPlies int) error {
	log.Println("selfplay started")
	defer log.Println("selfplay finished")
	log.Println("NumCPU", runtime.NumCPU(), "concurrency", concurrency)

	g, ctx := errgroup.WithContext(ctx)
	results := make(chan gameResult)

	g.Go(func() error {
		var total score
		for r := range results {
			total.add(r, a)
			winner := "draw"
			if r.Winner != cnchess.NoSide {
				winner = r.Winner.String()
			}
			log.Printf("game %d: lower %s vs upper %s -> %s in %d plies (%d nodes); %v",
				r.Index+1, r.Lower.Name, r.Upper.Name, winner, r.Plies, r.Nodes, total)
		}
		fmt.Printf("%s vs %s: %v\n", a.Name, b.Name, total)
		return nil
	})

	play := new(errgroup.Group)
	play.SetLimit(max(concurrency, 1))
	for i := 0; i < games; i++ {
		// 轮换先后手
		lower, upper := a, b
		if i%2 == 1 {
			lower, upper = b, a
		}
		i := i
		play.Go(func() error {
			r, err := playGame(ctx, i, lower, upper, maxPlies)
			if err != nil {
				return err
			}
			select {
			case results <- r:
				return nil
			case <-ctx.Done():
				return ctx.Err()
			}
		})
	}
	g.Go(func() error {
		defer close(results)
		return play.Wait()
	})
	return g.Wait()
}
