package checkers

import (
	"errors"
	"strings"
	"testing"
)

func TestNoMovesLeft(t *testing.T) {
	fen, err := FEN("B:W21:B10,17")
	if err != nil {
		t.Fatal(err)
	}
	g := NewGame(fen)
	if err := g.PushNotationMove("10-14", NumericNotation{}); err != nil {
		t.Fatal(err)
	}
	if g.Method() != NoMovesLeft {
		t.Fatalf("expected method %s but got %s", NoMovesLeft, g.Method())
	}
	if g.Outcome() != BlackWon {
		t.Fatalf("expected outcome %s but got %s", BlackWon, g.Outcome())
	}
	if moves := g.ValidMoves(); moves != nil {
		t.Fatalf("expected no valid moves after the game ended but got %v", moves)
	}
}

func TestElimination(t *testing.T) {
	fen, err := FEN("W:W18:B15")
	if err != nil {
		t.Fatal(err)
	}
	g := NewGame(fen)
	if err := g.PushNotationMove("18x11", NumericNotation{}); err != nil {
		t.Fatal(err)
	}
	if g.Method() != Elimination {
		t.Fatalf("expected method %s but got %s", Elimination, g.Method())
	}
	if g.Outcome() != WhiteWon {
		t.Fatalf("expected outcome %s but got %s", WhiteWon, g.Outcome())
	}
}

func TestGameFromWonFEN(t *testing.T) {
	fen, err := FEN("W:W:B1")
	if err != nil {
		t.Fatal(err)
	}
	g := NewGame(fen)
	if g.Outcome() != BlackWon || g.Method() != Elimination {
		t.Fatalf("expected %s by %s but got %s by %s", BlackWon, Elimination, g.Outcome(), g.Method())
	}
}

func TestMoveAfterGameOver(t *testing.T) {
	g := NewGame()
	g.Resign(White)

	err := g.PushNotationMove("22-18", NumericNotation{})
	var stateErr *IllegalStateError
	if !errors.As(err, &stateErr) {
		t.Fatalf("expected *IllegalStateError but got %v", err)
	}
	if stateErr.Outcome != BlackWon {
		t.Fatalf("expected outcome %s in error but got %s", BlackWon, stateErr.Outcome)
	}
	if err := g.Move(NewMove(SquareFromNumber(22), SquareFromNumber(18))); !errors.Is(err, ErrIllegalState) {
		t.Fatalf("expected ErrIllegalState but got %v", err)
	}
	if len(g.Moves()) != 0 {
		t.Fatalf("expected no moves but got %v", g.Moves())
	}
}

func TestIllegalMoveLeavesGameUnchanged(t *testing.T) {
	g := NewGame()
	before := g.String()
	err := g.Move(NewMove(SquareFromNumber(22), SquareFromNumber(19)))
	if !errors.Is(err, ErrIllegalMove) {
		t.Fatalf("expected ErrIllegalMove but got %v", err)
	}
	if g.String() != before || len(g.Positions()) != 1 {
		t.Fatalf("expected game to be unchanged but got %s", g)
	}
	if err := g.PushNotationMove("22-18", AlgebraicNotation{}); err == nil {
		t.Fatal("expected numeric move to fail in algebraic notation")
	}
}

func TestResign(t *testing.T) {
	g := NewGame()
	if err := g.PushNotationMove("22-18", NumericNotation{}); err != nil {
		t.Fatal(err)
	}
	g.Resign(Black)
	if g.Outcome() != WhiteWon || g.Method() != Resignation {
		t.Fatalf("expected %s by %s but got %s by %s", WhiteWon, Resignation, g.Outcome(), g.Method())
	}
	// a decided game stays decided
	g.Resign(White)
	if g.Outcome() != WhiteWon {
		t.Fatalf("expected outcome to remain %s but got %s", WhiteWon, g.Outcome())
	}
	if err := g.Draw(DrawOffer); err == nil {
		t.Fatal("expected draw after resignation to fail")
	}
}

func TestDrawOffer(t *testing.T) {
	g := NewGame()
	if err := g.Draw(Resignation); err == nil {
		t.Fatal("expected draw by resignation to fail")
	}
	if err := g.Draw(DrawOffer); err != nil {
		t.Fatal(err)
	}
	if g.Outcome() != Draw || g.Method() != DrawOffer {
		t.Fatalf("expected %s by %s but got %s by %s", Draw, DrawOffer, g.Outcome(), g.Method())
	}
	if !strings.HasSuffix(g.String(), "1-1") {
		t.Fatalf("expected PDN to end with the draw result but got %s", g)
	}
}

func TestGameHistory(t *testing.T) {
	g := NewGame()
	for _, m := range []string{"22-18", "11-15", "18x11", "8x15"} {
		if err := g.PushNotationMove(m, NumericNotation{}); err != nil {
			t.Fatalf("move %s: %v", m, err)
		}
	}
	if len(g.Moves()) != 4 || len(g.Positions()) != 5 {
		t.Fatalf("expected 4 moves and 5 positions but got %d and %d", len(g.Moves()), len(g.Positions()))
	}
	if g.Positions()[0].FEN() != startFEN {
		t.Fatalf("expected first position to be the start but got %s", g.Positions()[0])
	}
	if g.FEN() != g.Position().FEN() {
		t.Fatalf("expected game FEN %s to match current position %s", g.FEN(), g.Position())
	}
	if got := g.Moves()[2].String(); got != "18x11" {
		t.Fatalf("expected third move 18x11 but got %s", got)
	}
}

func TestGameClone(t *testing.T) {
	g := NewGame()
	g.AddTagPair("Event", "Club")
	if err := g.PushNotationMove("22-18", NumericNotation{}); err != nil {
		t.Fatal(err)
	}
	clone := g.Clone()
	if err := clone.PushNotationMove("11-15", NumericNotation{}); err != nil {
		t.Fatal(err)
	}
	clone.AddTagPair("Event", "Other")
	clone.AddComment("only in clone")

	if len(g.Moves()) != 1 {
		t.Fatalf("expected original to keep 1 move but got %d", len(g.Moves()))
	}
	if g.GetTagPair("Event") != "Club" {
		t.Fatalf("expected original tag to be unchanged but got %s", g.GetTagPair("Event"))
	}
	if len(g.Comments()[1]) != 0 {
		t.Fatalf("expected original comments to be unchanged but got %v", g.Comments())
	}
}

func TestTagPairs(t *testing.T) {
	g := NewGame()
	if g.AddTagPair("Round", "1") {
		t.Fatal("expected new tag not to overwrite")
	}
	if !g.AddTagPair("Round", "2") {
		t.Fatal("expected existing tag to be overwritten")
	}
	g.AddTagPair("Annotator", "me")
	g.AddTagPair("Event", "Open")
	g.AddTagPair("Result", "*")

	want := "[Event \"Open\"]\n[Round \"2\"]\n[Result \"*\"]\n[Annotator \"me\"]\n\n*"
	if got := g.String(); got != want {
		t.Fatalf("expected PDN\n%s\nbut got\n%s", want, got)
	}

	tags := g.TagPairs()
	tags["Event"] = "changed"
	if g.GetTagPair("Event") != "Open" {
		t.Fatal("expected TagPairs to return a copy")
	}
	if !g.RemoveTagPair("Annotator") || g.RemoveTagPair("Annotator") {
		t.Fatal("expected tag to be removed exactly once")
	}
	if g.GetTagPair("Annotator") != "" {
		t.Fatal("expected removed tag to be empty")
	}
}

func TestMarshalText(t *testing.T) {
	g := NewGame()
	g.AddTagPair("Event", "Round trip")
	for _, m := range []string{"22-18", "11-15", "18x11"} {
		if err := g.PushNotationMove(m, NumericNotation{}); err != nil {
			t.Fatal(err)
		}
	}
	g.AddComment("forced")

	text, err := g.MarshalText()
	if err != nil {
		t.Fatal(err)
	}
	var decoded Game
	decoded.rules = StandardRules
	if err := decoded.UnmarshalText(text); err != nil {
		t.Fatal(err)
	}
	if decoded.String() != g.String() {
		t.Fatalf("expected %s but got %s", g, &decoded)
	}
	if decoded.Position().FEN() != g.Position().FEN() {
		t.Fatalf("expected position %s but got %s", g.Position(), decoded.Position())
	}
}

func TestPDNOption(t *testing.T) {
	opt, err := PDN(strings.NewReader("[Event \"Club\"]\n1. 22-18 11-15 2. 18x11 8x15 *"))
	if err != nil {
		t.Fatal(err)
	}
	g := NewGame(opt)
	if len(g.Moves()) != 4 || g.GetTagPair("Event") != "Club" {
		t.Fatalf("expected game from PDN but got %s", g)
	}
	if _, err := PDN(strings.NewReader("1. 22-19 *")); err == nil {
		t.Fatal("expected illegal PDN move to fail")
	}
}

func TestWithRulesOption(t *testing.T) {
	fen, err := FEN("W:WK22:B18,25")
	if err != nil {
		t.Fatal(err)
	}
	blocking := Rules{CapturedPiecesBlock: true}
	g := NewGame(WithRules(blocking), fen)
	if g.Rules() != blocking || g.Position().Rules() != blocking {
		t.Fatalf("expected %s rules but got %s", blocking, g.Rules())
	}
	if err := g.PushNotationMove("22x15x29", NumericNotation{}); err == nil {
		t.Fatal("expected chain through a jumped piece to fail under blocking rules")
	}

	g = NewGame(fen)
	if err := g.PushNotationMove("22x15x29", NumericNotation{}); err != nil {
		t.Fatal(err)
	}
}

func TestFENOptionError(t *testing.T) {
	if _, err := FEN("W:W33"); err == nil {
		t.Fatal("expected invalid FEN to fail")
	}
}
