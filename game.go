/*
Package checkers provides a rules engine for two-player checkers on an
8x8 board: legal move generation under mandatory capture, maximal
multi-jump chains, promotion to long-range kings and win detection.
Games can be read and written in PDN (Portable Draughts Notation).
Example usage:

	// Create new game
	game := checkers.NewGame()

	// Make moves
	game.PushNotationMove("22-18", checkers.NumericNotation{})
	game.PushNotationMove("11-15", checkers.NumericNotation{})

	// Captures are mandatory
	fmt.Println(game.ValidMoves()) // [18x11]

	// Check game status
	if game.Outcome() != checkers.NoOutcome {
		fmt.Printf("Game ended: %s by %s\n", game.Outcome(), game.Method())
	}
*/
package checkers

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"slices"
	"strings"

	"golang.org/x/exp/maps"
)

// A Outcome is the result of a game.
type Outcome string

const (
	// NoOutcome indicates that a game is in progress or ended without a result.
	NoOutcome Outcome = "*"
	// WhiteWon indicates that white won the game.
	WhiteWon Outcome = "2-0"
	// BlackWon indicates that black won the game.
	BlackWon Outcome = "0-2"
	// Draw indicates that game was a draw.
	Draw Outcome = "1-1"
)

// String implements the fmt.Stringer interface.
func (o Outcome) String() string {
	return string(o)
}

// A Method is the method that generated the outcome.
type Method uint8

const (
	// NoMethod indicates that an outcome hasn't occurred or that the method can't be determined.
	NoMethod Method = iota
	// NoMovesLeft indicates that the side to move was blocked and lost.
	NoMovesLeft
	// Elimination indicates that the side to move had no pieces left.
	Elimination
	// Resignation indicates that the game was won by resignation.
	Resignation
	// DrawOffer indicates that the game was drawn by a draw offer.
	DrawOffer
)

func (m Method) String() string {
	switch m {
	case NoMovesLeft:
		return "NoMovesLeft"
	case Elimination:
		return "Elimination"
	case Resignation:
		return "Resignation"
	case DrawOffer:
		return "DrawOffer"
	}
	return "NoMethod"
}

// TagPairs represents a collection of PDN tag pairs.
type TagPairs map[string]string

// A Game represents a single checkers game: the positions reached,
// the moves between them and the PDN metadata.
type Game struct {
	tagPairs  TagPairs
	rules     Rules
	positions []*Position // positions[0] is the initial position
	moves     []Move
	comments  [][]string // comments[i] follow positions[i]
	outcome   Outcome
	method    Method
}

// PDN takes a reader and returns a function that updates the game to
// reflect the PDN data.  The moves are replayed under StandardRules;
// use ParsePDN for other rules.  The returned function is designed to
// be used in the NewGame constructor.  An error is returned if the PDN
// data is malformed or contains an illegal move.
func PDN(r io.Reader) (func(*Game), error) {
	game, err := ParsePDN(r, StandardRules)
	if err != nil {
		return nil, err
	}
	return func(g *Game) {
		g.copy(game)
	}, nil
}

// ParsePDN reads a single PDN game and replays it under rules.
func ParsePDN(r io.Reader, rules Rules) (*Game, error) {
	raw, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	tokens, err := TokenizeGame(string(raw))
	if err != nil {
		return nil, err
	}
	return NewParser(tokens).WithRules(rules).Parse()
}

// FEN takes a string and returns a function that updates the game to
// start from the FEN position.  Since FEN doesn't encode prior moves,
// the move list will be empty.  An error is returned if there is a
// problem parsing the FEN data.
func FEN(fen string) (func(*Game), error) {
	pos, err := DecodeFEN(fen)
	if err != nil {
		return nil, err
	}
	return func(g *Game) {
		g.reset(pos.WithRules(g.rules))
		g.tagPairs["FEN"] = pos.FEN()
	}, nil
}

// WithRules returns a Game option that plays the game under r.  The
// game is reset to its initial position, so it belongs before any
// option that adds moves.
func WithRules(r Rules) func(*Game) {
	return func(g *Game) {
		g.rules = r
		g.reset(g.positions[0].WithRules(r))
	}
}

// NewGame returns a new game in the standard starting position.
// Optional functions can be provided to configure the initial game state.
//
// Example:
//
//	// Standard game
//	game := NewGame()
//
//	// Game from FEN
//	opt, _ := FEN("B:W18,24,K27:B12,16")
//	game := NewGame(opt)
func NewGame(options ...func(*Game)) *Game {
	game := &Game{
		tagPairs: make(TagPairs),
		rules:    StandardRules,
	}
	game.reset(StartingPosition())
	for _, f := range options {
		if f != nil {
			f(game)
		}
	}
	return game
}

// reset discards the history and starts again from pos.
func (g *Game) reset(pos *Position) {
	g.positions = []*Position{pos}
	g.moves = nil
	g.comments = [][]string{nil}
	g.outcome = NoOutcome
	g.method = NoMethod
	g.evaluatePositionStatus()
}

// ValidMoves returns all legal moves in the current position.  A game
// that has ended has no valid moves.
func (g *Game) ValidMoves() []Move {
	if g.outcome != NoOutcome {
		return nil
	}
	return g.Position().ValidMoves()
}

// Moves returns the move history of the game.
func (g *Game) Moves() []Move {
	return slices.Clone(g.moves)
}

// Positions returns all positions in the game: the initial position
// and the position after each move.
func (g *Game) Positions() []*Position {
	return slices.Clone(g.positions)
}

// Comments returns the comments for the game indexed by position:
// entry 0 precedes the first move and entry i follows move i.
func (g *Game) Comments() [][]string {
	out := make([][]string, len(g.comments))
	for i, c := range g.comments {
		out[i] = slices.Clone(c)
	}
	return out
}

// AddComment attaches a comment to the current position.
func (g *Game) AddComment(comment string) {
	last := len(g.comments) - 1
	g.comments[last] = append(g.comments[last], comment)
}

// Position returns the game's current position.
func (g *Game) Position() *Position {
	return g.positions[len(g.positions)-1]
}

// Rules returns the rules the game is played under.
func (g *Game) Rules() Rules {
	return g.rules
}

// Outcome returns the game outcome.
func (g *Game) Outcome() Outcome {
	return g.outcome
}

// Method returns the method in which the outcome occurred.
func (g *Game) Method() Method {
	return g.method
}

// FEN returns the FEN notation of the current position.
func (g *Game) FEN() string {
	return g.Position().FEN()
}

// Move applies a legal move to the game.  It returns an
// *IllegalStateError if the game already has an outcome and an
// *IllegalMoveError if the move is not one of ValidMoves.  The game
// is unchanged on error.
func (g *Game) Move(m Move) error {
	if g.outcome != NoOutcome {
		return &IllegalStateError{Outcome: g.outcome}
	}
	pos := g.Position()
	legal, err := pos.resolve(m)
	if err != nil {
		return err
	}
	next, err := pos.Apply(legal)
	if err != nil {
		return err
	}
	g.moves = append(g.moves, legal)
	g.positions = append(g.positions, next)
	g.comments = append(g.comments, nil)
	g.evaluatePositionStatus()
	return nil
}

// PushNotationMove decodes a move in the given notation and applies it.
//
// Example:
//
//	err := game.PushNotationMove("22-18", checkers.NumericNotation{})
//	err = game.PushNotationMove("f6-e5", checkers.AlgebraicNotation{})
func (g *Game) PushNotationMove(moveStr string, notation Notation) error {
	if g.outcome != NoOutcome {
		return &IllegalStateError{Outcome: g.outcome}
	}
	m, err := notation.Decode(g.Position(), moveStr)
	if err != nil {
		return err
	}
	return g.Move(m)
}

// Draw attempts to draw the game by the given method.  Only DrawOffer
// is accepted: the rules themselves never produce a draw.
func (g *Game) Draw(method Method) error {
	if g.outcome != NoOutcome {
		return &IllegalStateError{Outcome: g.outcome}
	}
	if method != DrawOffer {
		return errors.New("checkers: invalid draw method")
	}
	g.outcome = Draw
	g.method = method
	return nil
}

// Resign resigns the game for the given color.  If the game has
// already been completed then the game is not updated.
func (g *Game) Resign(color Color) {
	if g.outcome != NoOutcome || color == NoColor {
		return
	}
	g.outcome = Won(color.Other()).Outcome()
	g.method = Resignation
}

// AddTagPair adds or updates a tag pair with the given key and
// value and returns true if the value is overwritten.
func (g *Game) AddTagPair(k, v string) bool {
	_, existing := g.tagPairs[k]
	g.tagPairs[k] = v
	return existing
}

// GetTagPair returns the tag pair for the given key or "" if it is
// not present.
func (g *Game) GetTagPair(k string) string {
	return g.tagPairs[k]
}

// TagPairs returns a copy of the tag pairs in key value format.
func (g *Game) TagPairs() TagPairs {
	return maps.Clone(g.tagPairs)
}

// RemoveTagPair removes the tag pair for the given key and
// returns true if a tag pair was removed.
func (g *Game) RemoveTagPair(k string) bool {
	if _, existing := g.tagPairs[k]; existing {
		delete(g.tagPairs, k)
		return true
	}
	return false
}

// evaluatePositionStatus updates the game's outcome and method based
// on the current position.
func (g *Game) evaluatePositionStatus() {
	pos := g.Position()
	status := pos.Status()
	if !status.Terminal() {
		return
	}
	g.outcome = status.Outcome()
	g.method = NoMovesLeft
	if pos.board.Count(pos.Turn()) == 0 {
		g.method = Elimination
	}
}

// copy copies the game state from the given game.
func (g *Game) copy(game *Game) {
	g.tagPairs = maps.Clone(game.tagPairs)
	if g.tagPairs == nil {
		g.tagPairs = make(TagPairs)
	}
	g.rules = game.rules
	g.positions = slices.Clone(game.positions)
	g.moves = slices.Clone(game.moves)
	g.comments = game.Comments()
	g.outcome = game.outcome
	g.method = game.method
}

// Clone returns a deep copy of the game.  Positions are immutable and
// shared.
func (g *Game) Clone() *Game {
	ret := &Game{}
	ret.copy(g)
	return ret
}

// String implements the fmt.Stringer interface and returns
// the game's PDN.
func (g *Game) String() string {
	var sb strings.Builder

	tagPairList := make([]sortableTagPair, 0, len(g.tagPairs))
	for tag, value := range g.tagPairs {
		tagPairList = append(tagPairList, sortableTagPair{Key: tag, Value: value})
	}
	slices.SortFunc(tagPairList, cmpTags)
	for _, tagPair := range tagPairList {
		fmt.Fprintf(&sb, "[%s %q]\n", tagPair.Key, tagPair.Value)
	}
	if len(tagPairList) > 0 {
		sb.WriteString("\n")
	}

	writeComments(g.comments[0], &sb)
	moveNum := 1
	white := g.positions[0].Turn() == White
	for i, m := range g.moves {
		switch {
		case white:
			fmt.Fprintf(&sb, "%d. ", moveNum)
		case i == 0:
			fmt.Fprintf(&sb, "%d... ", moveNum)
		}
		sb.WriteString(m.String())
		sb.WriteString(" ")
		writeComments(g.comments[i+1], &sb)
		if !white {
			moveNum++
		}
		white = !white
	}

	sb.WriteString(g.Outcome().String())
	return sb.String()
}

func writeComments(comments []string, sb *strings.Builder) {
	for _, c := range comments {
		sb.WriteString("{")
		sb.WriteString(c)
		sb.WriteString("} ")
	}
}

// sortableTagPair is its own
type sortableTagPair struct {
	Key   string
	Value string
}

// Compares two tags to determine in which order they should be brought up
func cmpTags(a, b sortableTagPair) int {
	// Don't re-order duplicate keys
	if a.Key == b.Key {
		return 0
	}

	// PDN seven tag roster takes priority
	for _, req := range []string{
		"Event",
		"Site",
		"Date",
		"Round",
		"White",
		"Black",
		"Result",
	} {
		if a.Key == req {
			return -1
		}
		if b.Key == req {
			return +1
		}
	}
	return strings.Compare(a.Key, b.Key)
}

// MarshalText implements the encoding.TextMarshaler interface and
// encodes the game's PDN.
func (g *Game) MarshalText() ([]byte, error) {
	return []byte(g.String()), nil
}

// UnmarshalText implements the encoding.TextUnmarshaler interface and
// assumes the data is in the PDN format.
func (g *Game) UnmarshalText(text []byte) error {
	game, err := ParsePDN(bytes.NewReader(text), g.rules)
	if err != nil {
		return err
	}
	g.copy(game)
	return nil
}
