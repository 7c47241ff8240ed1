package engine

import (
	"testing"

	"github.com/IllyaStarikov/artificial/chessmg"
)

func mustParse(t *testing.T, fen string) chessmg.Position {
	t.Helper()
	p, _, _, err := chessmg.ParseFEN(fen)
	if err != nil {
		t.Fatalf("ParseFEN(%q): %v", fen, err)
	}
	return p
}

func playMove(t *testing.T, p chessmg.Position, h *History, name string) chessmg.Position {
	t.Helper()
	for _, m := range p.LegalMoves() {
		if m.String() == name {
			next := p.Apply(m)
			h.Record(next, m)
			return next
		}
	}
	t.Fatalf("move %s not found", name)
	return p
}

func TestTerminalCheckmate(t *testing.T) {
	p := mustParse(t, "rnb1kbnr/pppp1ppp/8/4p3/6Pq/5P2/PPPPP2P/RNBQKBNR w KQkq - 1 3")
	if out := Terminal(p, NewHistory(p, 0, 0)); out != Checkmate {
		t.Fatalf("fool's mate: got %v want checkmate", out)
	}
}

func TestTerminalStalemate(t *testing.T) {
	p := mustParse(t, "7k/5Q2/6K1/8/8/8/8/8 b - - 0 1")
	out := Terminal(p, NewHistory(p, 0, 0))
	if out != Stalemate {
		t.Fatalf("got %v want stalemate", out)
	}
	if !out.IsDraw() {
		t.Fatalf("stalemate should count as a draw")
	}
}

func TestTerminalRepetitionAfterTwoShuffleCycles(t *testing.T) {
	p := chessmg.StartingPosition()
	h := NewHistory(p, 0, 0)

	shuffle := []string{"g1f3", "g8f6", "f3g1", "f6g8"}
	for cycle := 0; cycle < 2; cycle++ {
		for _, name := range shuffle {
			p = playMove(t, p, &h, name)
		}
		if cycle == 0 {
			if out := Terminal(p, h); out == DrawByRepetition {
				t.Fatalf("one cycle must not yet be a repetition draw")
			}
		}
	}
	if out := Terminal(p, h); out != DrawByRepetition {
		t.Fatalf("got %v want draw by repetition", out)
	}
}

func TestTerminalRepetitionNeedsQuietCounters(t *testing.T) {
	p := chessmg.StartingPosition()
	h := NewHistory(p, 0, 0)
	for cycle := 0; cycle < 2; cycle++ {
		for _, name := range []string{"g1f3", "g8f6", "f3g1", "f6g8"} {
			p = playMove(t, p, &h, name)
		}
	}
	// The same ring contents with a recent pawn move must not draw.
	h2 := h
	h2.sincePawn = 3
	if isRepetition(h2) {
		t.Fatalf("repetition must require eight quiet plies")
	}
	h3 := h
	h3.sinceCapture = 0
	if isRepetition(h3) {
		t.Fatalf("repetition must require eight plies without a capture")
	}
}

func TestTerminalFiftyMoveRule(t *testing.T) {
	p := chessmg.StartingPosition()
	if out := Terminal(p, NewHistory(p, 50, 51)); out != DrawByFiftyMoves {
		t.Fatalf("got %v want draw by fifty-move rule", out)
	}
	// The pawn counter must strictly exceed fifty.
	if out := Terminal(p, NewHistory(p, 50, 50)); out != Nonterminal {
		t.Fatalf("got %v want nonterminal at 50/50", out)
	}
}

func TestTerminalInsufficientMaterial(t *testing.T) {
	cases := []struct {
		fen  string
		want Outcome
	}{
		{"k7/8/8/8/8/8/8/7K w - - 0 1", DrawByMaterial},          // bare kings
		{"k7/8/8/8/8/8/8/6NK w - - 0 1", DrawByMaterial},         // lone knight
		{"kb6/8/8/8/8/8/8/7K w - - 0 1", DrawByMaterial},         // lone bishop
		{"kb6/8/8/8/8/8/8/6NK w - - 0 1", Nonterminal},           // bishop vs knight
		{"k7/p7/8/8/8/8/8/7K w - - 0 1", Nonterminal},            // pawn present
		{"k7/8/8/8/8/8/8/6RK w - - 0 1", Nonterminal},            // rook present
	}
	for _, tc := range cases {
		p := mustParse(t, tc.fen)
		if out := Terminal(p, NewHistory(p, 0, 0)); out != tc.want {
			t.Errorf("%s: got %v want %v", tc.fen, out, tc.want)
		}
	}
}
