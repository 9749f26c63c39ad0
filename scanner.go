package checkers

import (
	"fmt"
	"strings"
	"unicode"
)

// TokenType identifies the lexical class of a PDN token.
type TokenType int

const (
	EOF TokenType = iota
	TagStart
	TagKey
	TagValue
	TagEnd
	MoveNumber
	DOT
	ELLIPSIS
	MOVE
	CommentStart
	COMMENT
	CommentEnd
	VariationStart
	VariationEnd
	NAG
	RESULT
)

func (t TokenType) String() string {
	switch t {
	case EOF:
		return "EOF"
	case TagStart:
		return "TagStart"
	case TagKey:
		return "TagKey"
	case TagValue:
		return "TagValue"
	case TagEnd:
		return "TagEnd"
	case MoveNumber:
		return "MoveNumber"
	case DOT:
		return "DOT"
	case ELLIPSIS:
		return "ELLIPSIS"
	case MOVE:
		return "MOVE"
	case CommentStart:
		return "CommentStart"
	case COMMENT:
		return "COMMENT"
	case CommentEnd:
		return "CommentEnd"
	case VariationStart:
		return "VariationStart"
	case VariationEnd:
		return "VariationEnd"
	case NAG:
		return "NAG"
	case RESULT:
		return "RESULT"
	}
	return fmt.Sprintf("TokenType(%d)", int(t))
}

// Token is a single lexical element of PDN text.
type Token struct {
	Type  TokenType
	Value string
}

var resultTokens = map[string]bool{
	"2-0": true, "0-2": true, "1-1": true, "0-0": true,
	"1-0": true, "0-1": true, "1/2-1/2": true, "*": true,
}

// lexer turns PDN text into tokens.
type lexer struct {
	input  []rune
	pos    int
	tokens []Token
}

// TokenizeGame splits the PDN text of a single game into tokens.
func TokenizeGame(text string) ([]Token, error) {
	l := &lexer{input: []rune(text)}
	if err := l.run(); err != nil {
		return nil, err
	}
	return l.tokens, nil
}

func (l *lexer) emit(t TokenType, v string) {
	l.tokens = append(l.tokens, Token{Type: t, Value: v})
}

func (l *lexer) peek() rune {
	if l.pos >= len(l.input) {
		return 0
	}
	return l.input[l.pos]
}

func (l *lexer) run() error {
	for l.pos < len(l.input) {
		r := l.input[l.pos]
		switch {
		case unicode.IsSpace(r):
			l.pos++
		case r == '[':
			if err := l.lexTag(); err != nil {
				return err
			}
		case r == '{':
			if err := l.lexComment('}'); err != nil {
				return err
			}
		case r == ';':
			if err := l.lexComment('\n'); err != nil {
				return err
			}
		case r == '(':
			l.emit(VariationStart, "(")
			l.pos++
		case r == ')':
			l.emit(VariationEnd, ")")
			l.pos++
		case r == '*':
			l.emit(RESULT, "*")
			l.pos++
		case r == '$':
			start := l.pos
			l.pos++
			for unicode.IsDigit(l.peek()) {
				l.pos++
			}
			l.emit(NAG, string(l.input[start:l.pos]))
		case r == '!' || r == '?':
			start := l.pos
			for l.peek() == '!' || l.peek() == '?' {
				l.pos++
			}
			l.emit(NAG, string(l.input[start:l.pos]))
		case r == '.':
			start := l.pos
			for l.peek() == '.' {
				l.pos++
			}
			if l.pos-start >= 3 {
				l.emit(ELLIPSIS, "...")
			} else {
				l.emit(DOT, ".")
			}
		case isWordRune(r):
			l.lexWord()
		default:
			return fmt.Errorf("checkers: unexpected character %q at offset %d", r, l.pos)
		}
	}
	return nil
}

func isWordRune(r rune) bool {
	return unicode.IsDigit(r) || (r >= 'a' && r <= 'h') || (r >= 'A' && r <= 'H') ||
		r == 'x' || r == 'X' || r == '-' || r == ':' || r == '/'
}

// lexWord reads a move number, a move or a result.
func (l *lexer) lexWord() {
	start := l.pos
	for l.pos < len(l.input) && isWordRune(l.input[l.pos]) {
		l.pos++
	}
	word := string(l.input[start:l.pos])
	switch {
	case resultTokens[word]:
		l.emit(RESULT, word)
	case l.peek() == '.' && isNumber(word):
		l.emit(MoveNumber, word)
	default:
		l.emit(MOVE, word)
	}
}

func isNumber(s string) bool {
	return s != "" && strings.IndexFunc(s, func(r rune) bool { return !unicode.IsDigit(r) }) < 0
}

func (l *lexer) lexTag() error {
	l.emit(TagStart, "[")
	l.pos++
	l.skipSpace()

	start := l.pos
	for l.pos < len(l.input) && (unicode.IsLetter(l.input[l.pos]) || unicode.IsDigit(l.input[l.pos]) || l.input[l.pos] == '_') {
		l.pos++
	}
	if start == l.pos {
		return fmt.Errorf("checkers: missing tag name at offset %d", start)
	}
	l.emit(TagKey, string(l.input[start:l.pos]))
	l.skipSpace()

	if l.peek() != '"' {
		return fmt.Errorf("checkers: expected quoted tag value at offset %d", l.pos)
	}
	l.pos++
	var sb strings.Builder
	for {
		if l.pos >= len(l.input) {
			return fmt.Errorf("checkers: unterminated tag value")
		}
		r := l.input[l.pos]
		l.pos++
		if r == '\\' && l.pos < len(l.input) {
			sb.WriteRune(l.input[l.pos])
			l.pos++
			continue
		}
		if r == '"' {
			break
		}
		sb.WriteRune(r)
	}
	l.emit(TagValue, sb.String())
	l.skipSpace()

	if l.peek() != ']' {
		return fmt.Errorf("checkers: expected ] at offset %d", l.pos)
	}
	l.emit(TagEnd, "]")
	l.pos++
	return nil
}

// lexComment reads a comment up to end.  Line comments may end with
// the input.
func (l *lexer) lexComment(end rune) error {
	l.emit(CommentStart, string(l.input[l.pos]))
	l.pos++
	start := l.pos
	for l.pos < len(l.input) && l.input[l.pos] != end {
		l.pos++
	}
	if l.pos >= len(l.input) && end != '\n' {
		return fmt.Errorf("checkers: unterminated comment at offset %d", start-1)
	}
	l.emit(COMMENT, strings.TrimSpace(string(l.input[start:l.pos])))
	l.emit(CommentEnd, string(end))
	l.pos++
	return nil
}

func (l *lexer) skipSpace() {
	for l.pos < len(l.input) && unicode.IsSpace(l.input[l.pos]) {
		l.pos++
	}
}
