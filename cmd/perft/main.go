package main

import (
	"flag"
	"fmt"
	"os"
	"sort"
	"time"

	"github.com/benbeisheim/chess-backend/internal/model"
)

func main() {
	depth := flag.Int("depth", 0, "Perft depth (required)")
	divide := flag.Bool("divide", false, "Print per-move node counts at root")
	flag.Parse()

	if *depth <= 0 {
		fmt.Fprintln(os.Stderr, "-depth must be > 0")
		os.Exit(2)
	}

	board := model.NewBoard()

	if *divide {
		div := model.PerftDivide(board, *depth)
		moves := make([]string, 0, len(div))
		for m := range div {
			moves = append(moves, m)
		}
		sort.Strings(moves)
		var sum uint64
		for _, m := range moves {
			fmt.Printf("%s: %d\n", m, div[m])
			sum += div[m]
		}
		fmt.Printf("Total: %d\n", sum)
		return
	}

	start := time.Now()
	nodes := model.Perft(board, *depth)
	elapsed := time.Since(start)
	fmt.Printf("%d \t%d \t%s \t%.0f\n", *depth, nodes, elapsed, float64(nodes)/elapsed.Seconds())
}
