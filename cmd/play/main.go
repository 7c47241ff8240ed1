package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/IllyaStarikov/artificial/chessmg"
	"github.com/IllyaStarikov/artificial/engine"
)

func main() {
	fen := flag.String("fen", chessmg.FENStartPos, "FEN to start from")
	clock := flag.Float64("time", 60, "clock time in seconds for each side")
	moves := flag.Int("moves", 10, "maximum number of half-moves to play")
	worst := flag.Bool("worst", false, "pick the worst move instead of the best")
	board := flag.Bool("board", false, "print the board after every move")
	flag.Parse()

	engine.PickWorst = *worst

	s, err := engine.NewSearcherFromFEN(*fen, *clock)
	if err != nil {
		log.Fatalf("position setup: %v", err)
	}

	for i := 0; i < *moves; i++ {
		res, out := s.Move()
		if out != engine.Nonterminal {
			fmt.Printf("game over: %s\n", out)
			return
		}
		fmt.Printf("info move %s depth %d score %v nodes %d clock %.2fs\n",
			res.Move, res.Depth, res.Score, res.Nodes, s.Remaining)
		if *board {
			fmt.Print(s.Position.String())
		}
	}

	fmt.Printf("final position after %d half-moves:\n%s", *moves, s.Position.String())
}
