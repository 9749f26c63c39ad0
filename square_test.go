package checkers

import "testing"

func TestSquareNumbersRoundTrip(t *testing.T) {
	playable := 0
	for sq := Square(0); sq < numSquares; sq++ {
		if !sq.Playable() {
			if sq.Number() != 0 {
				t.Fatalf("expected unplayable square %s to have number 0 but got %d", sq, sq.Number())
			}
			continue
		}
		playable++
		n := sq.Number()
		if got := SquareFromNumber(n); got != sq {
			t.Fatalf("expected square %d to map back to %s but got %s", n, sq, got)
		}
	}
	if playable != numPlayable {
		t.Fatalf("expected %d playable squares but got %d", numPlayable, playable)
	}
}

func TestSquareNumberLayout(t *testing.T) {
	tests := []struct {
		n        int
		row, col int
		name     string
	}{
		{1, 0, 1, "b8"},
		{4, 0, 7, "h8"},
		{5, 1, 0, "a7"},
		{21, 5, 0, "a3"},
		{22, 5, 2, "c3"},
		{29, 7, 0, "a1"},
		{32, 7, 6, "g1"},
	}
	for _, tt := range tests {
		sq := SquareFromNumber(tt.n)
		if sq.Row() != tt.row || sq.Col() != tt.col {
			t.Errorf("square %d: expected (%d,%d) but got (%d,%d)", tt.n, tt.row, tt.col, sq.Row(), sq.Col())
		}
		if sq.String() != tt.name {
			t.Errorf("square %d: expected name %s but got %s", tt.n, tt.name, sq.String())
		}
		if parseAlgebraicSquare(tt.name) != sq {
			t.Errorf("expected %s to parse to square %d", tt.name, tt.n)
		}
	}
}

func TestSquareOutOfRange(t *testing.T) {
	for _, n := range []int{0, 33, -1} {
		if sq := SquareFromNumber(n); sq != NoSquare {
			t.Errorf("expected NoSquare for %d but got %s", n, sq)
		}
	}
	if NewSquare(8, 0) != NoSquare || NewSquare(0, -1) != NoSquare {
		t.Fatal("expected coordinates off the board to be NoSquare")
	}
	if NewSquare(0, 0).Step(NorthWest) != NoSquare {
		t.Fatal("expected step off the corner to be NoSquare")
	}
	if NoSquare.Step(SouthEast) != NoSquare {
		t.Fatal("expected step from NoSquare to stay NoSquare")
	}
}

func TestForwardDirections(t *testing.T) {
	from := NewSquare(4, 3)
	for _, d := range forwardDirections(White) {
		if from.Step(d).Row() != 3 {
			t.Fatalf("expected white to move toward row 0, %s went to %s", d, from.Step(d))
		}
	}
	for _, d := range forwardDirections(Black) {
		if from.Step(d).Row() != 5 {
			t.Fatalf("expected black to move toward row 7, %s went to %s", d, from.Step(d))
		}
	}
}
