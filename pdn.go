/*
Package checkers provides PDN (Portable Draughts Notation) parsing
functionality, supporting tag pairs, numeric and algebraic moves,
comments, annotations and the game result.  Variations are accepted
and skipped.
Example usage:

	// Create parser from tokens
	tokens, err := TokenizeGame(text)
	parser := NewParser(tokens)

	// Parse complete game
	game, err := parser.Parse()
*/
package checkers

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/exp/maps"
)

// ParserError is returned for malformed PDN text.
type ParserError struct {
	Message    string
	TokenValue string
	TokenType  TokenType
	Position   int
}

func (e *ParserError) Error() string {
	if e.TokenValue == "" {
		return fmt.Sprintf("checkers: pdn parse error at token %d: %s", e.Position, e.Message)
	}
	return fmt.Sprintf("checkers: pdn parse error at token %d (%s %q): %s", e.Position, e.TokenType, e.TokenValue, e.Message)
}

// Parser holds the state needed during parsing.
type Parser struct {
	game       *Game
	tokens     []Token
	position   int
	moveNumber uint64
}

// NewParser creates a new parser instance initialized with the given
// tokens.  Moves are replayed under StandardRules unless WithRules is
// called before Parse.
//
// Example:
//
//	tokens, _ := TokenizeGame(text)
//	parser := NewParser(tokens)
func NewParser(tokens []Token) *Parser {
	return &Parser{
		tokens: tokens,
		game:   NewGame(),
	}
}

// WithRules sets the rules the game is replayed under.
func (p *Parser) WithRules(r Rules) *Parser {
	WithRules(r)(p.game)
	return p
}

// currentToken returns the current token being processed.
func (p *Parser) currentToken() Token {
	if p.position >= len(p.tokens) {
		return Token{Type: EOF}
	}
	return p.tokens[p.position]
}

// advance moves to the next token.
func (p *Parser) advance() {
	p.position++
}

func (p *Parser) errorf(format string, args ...any) *ParserError {
	tok := p.currentToken()
	return &ParserError{
		Message:    fmt.Sprintf(format, args...),
		TokenType:  tok.Type,
		TokenValue: tok.Value,
		Position:   p.position,
	}
}

// Parse processes all tokens and returns the complete game.  This
// includes parsing header information (tags), moves, comments and
// the game result.
//
// Returns a *ParserError if the PDN is malformed and a wrapped
// *IllegalMoveError if it contains an illegal move.
//
// Example:
//
//	game, err := parser.Parse()
//	if err != nil {
//	    log.Fatal("Error parsing game:", err)
//	}
//	fmt.Printf("Event: %s\n", game.GetTagPair("Event"))
func (p *Parser) Parse() (*Game, error) {
	tags, err := p.parseHeader()
	if err != nil {
		return nil, err
	}

	// check if the game has a starting position
	if value, ok := tags["FEN"]; ok {
		opt, err := FEN(value)
		if err != nil {
			return nil, fmt.Errorf("checkers: pdn FEN tag: %w", err)
		}
		opt(p.game)
	}
	maps.Copy(p.game.tagPairs, tags)

	if err := p.parseMoveText(); err != nil {
		return nil, err
	}
	return p.game, nil
}

func (p *Parser) parseHeader() (TagPairs, error) {
	tags := make(TagPairs)
	for p.currentToken().Type == TagStart {
		key, value, err := p.parseTagPair()
		if err != nil {
			return nil, err
		}
		tags[key] = value
	}
	return tags, nil
}

func (p *Parser) parseTagPair() (string, string, error) {
	p.advance() // consume [

	if p.currentToken().Type != TagKey {
		return "", "", p.errorf("expected tag key")
	}
	key := p.currentToken().Value
	p.advance()

	if p.currentToken().Type != TagValue {
		return "", "", p.errorf("expected tag value")
	}
	value := p.currentToken().Value
	p.advance()

	if p.currentToken().Type != TagEnd {
		return "", "", p.errorf("expected tag end")
	}
	p.advance()
	return key, value, nil
}

func (p *Parser) parseMoveText() error {
	for p.position < len(p.tokens) {
		token := p.currentToken()

		switch token.Type {
		case MoveNumber:
			number, err := strconv.ParseUint(token.Value, 10, 32)
			if err != nil {
				return p.errorf("invalid move number")
			}
			p.moveNumber = number
			p.advance()

		case DOT, ELLIPSIS, NAG:
			p.advance()

		case MOVE:
			if err := p.parseMove(); err != nil {
				return err
			}
			p.advance()

		case CommentStart:
			comment, err := p.parseComment()
			if err != nil {
				return err
			}
			if comment != "" {
				p.game.AddComment(comment)
			}

		case VariationStart:
			if err := p.skipVariation(); err != nil {
				return err
			}

		case RESULT:
			p.parseResult()
			return nil

		default:
			return p.errorf("unexpected token")
		}
	}
	return nil
}

// parseMove decodes the current MOVE token against the game's legal
// moves and applies it.
func (p *Parser) parseMove() error {
	text := p.currentToken().Value
	var notation Notation = NumericNotation{}
	if text != "" && !strings.ContainsAny(text[:1], "0123456789") {
		notation = AlgebraicNotation{}
	}
	if err := p.game.PushNotationMove(text, notation); err != nil {
		return fmt.Errorf("checkers: pdn move %d %q: %w", p.moveNumber, text, err)
	}
	return nil
}

func (p *Parser) parseComment() (string, error) {
	p.advance() // consume { or ;

	var comment string
	if p.currentToken().Type == COMMENT {
		comment = p.currentToken().Value
		p.advance()
	}
	if p.currentToken().Type != CommentEnd {
		return "", p.errorf("unterminated comment")
	}
	p.advance()
	return comment, nil
}

// skipVariation consumes a parenthesised variation, including nested
// ones.  Variation moves are not validated.
func (p *Parser) skipVariation() error {
	depth := 0
	for p.position < len(p.tokens) {
		switch p.currentToken().Type {
		case VariationStart:
			depth++
		case VariationEnd:
			depth--
		}
		p.advance()
		if depth == 0 {
			return nil
		}
	}
	return &ParserError{
		Message:  "unterminated variation",
		Position: p.position,
	}
}

// parseResult records the result token unless the rules already
// decided the game.
func (p *Parser) parseResult() {
	result := p.currentToken().Value
	p.advance()
	if p.game.outcome != NoOutcome {
		return
	}
	switch result {
	case "2-0", "1-0":
		p.game.outcome = WhiteWon
	case "0-2", "0-1":
		p.game.outcome = BlackWon
	case "1-1", "1/2-1/2":
		p.game.outcome = Draw
	}
}
