package toml

import (
	"strings"
	"unicode/utf8"
)

// lexer splits settings input into tokens, one call per token
type lexer struct {
	src  []byte
	pos  int
	line int
}

func newLexer(src []byte) *lexer {
	return &lexer{src: src, line: 1}
}

func (l *lexer) peek() rune {
	if l.pos >= len(l.src) {
		return 0
	}
	r, _ := utf8.DecodeRune(l.src[l.pos:])
	return r
}

func (l *lexer) advance() rune {
	if l.pos >= len(l.src) {
		return 0
	}
	r, w := utf8.DecodeRune(l.src[l.pos:])
	l.pos += w
	if r == '\n' {
		l.line++
	}
	return r
}

func (l *lexer) emit(kind tokenKind, text string) token {
	return token{kind: kind, text: text, line: l.line}
}

// next returns the next significant token; comments are dropped here
func (l *lexer) next() token {
	for {
		for ch := l.peek(); ch == ' ' || ch == '\t' || ch == '\r'; ch = l.peek() {
			l.advance()
		}
		if l.peek() != '#' {
			break
		}
		for l.pos < len(l.src) && l.peek() != '\n' {
			l.advance()
		}
	}

	if l.pos >= len(l.src) {
		return l.emit(tokEOF, "")
	}

	ch := l.peek()
	switch ch {
	case '\n':
		tok := l.emit(tokNewline, "\n")
		l.advance()
		return tok
	case '=':
		l.advance()
		return l.emit(tokEqual, "=")
	case '.':
		l.advance()
		return l.emit(tokDot, ".")
	case ',':
		l.advance()
		return l.emit(tokComma, ",")
	case '[':
		l.advance()
		return l.emit(tokLBracket, "[")
	case ']':
		l.advance()
		return l.emit(tokRBracket, "]")
	case '"':
		return l.readString()
	}

	if isBareChar(ch) || ch == '+' {
		return l.readBare()
	}

	l.advance()
	return l.emit(tokError, "unexpected character "+string(ch))
}

func (l *lexer) readString() token {
	l.advance() // opening quote
	var sb strings.Builder
	for l.pos < len(l.src) {
		ch := l.advance()
		switch ch {
		case '\n':
			return l.emit(tokError, "newline in string")
		case '"':
			return l.emit(tokString, sb.String())
		case '\\':
			switch esc := l.advance(); esc {
			case 'n':
				sb.WriteRune('\n')
			case 't':
				sb.WriteRune('\t')
			case 'r':
				sb.WriteRune('\r')
			case '"', '\\':
				sb.WriteRune(esc)
			default:
				return l.emit(tokError, "invalid escape \\"+string(esc))
			}
		default:
			sb.WriteRune(ch)
		}
	}
	return l.emit(tokError, "unterminated string")
}

// readBare consumes a bare key, number or boolean and classifies it
func (l *lexer) readBare() token {
	start := l.pos
	numeric := isDigit(l.peek()) || l.peek() == '+' || l.peek() == '-'
	for l.pos < len(l.src) {
		ch := l.peek()
		if isBareChar(ch) || ch == '+' || (ch == '.' && numeric) {
			l.advance()
			continue
		}
		break
	}
	lit := string(l.src[start:l.pos])

	switch {
	case lit == "true" || lit == "false":
		return l.emit(tokBool, lit)
	case looksInt(lit):
		return l.emit(tokInt, lit)
	case looksFloat(lit):
		return l.emit(tokFloat, lit)
	}
	return l.emit(tokKey, lit)
}

func looksInt(s string) bool {
	s = strings.TrimLeft(s, "+-")
	if len(s) > 2 && s[0] == '0' && strings.ContainsRune("xXoObB", rune(s[1])) {
		return true
	}
	if s == "" {
		return false
	}
	for _, r := range s {
		if !isDigit(r) && r != '_' {
			return false
		}
	}
	return true
}

func looksFloat(s string) bool {
	s = strings.TrimLeft(s, "+-")
	if s == "" || !isDigit(rune(s[0])) {
		return false
	}
	for _, r := range s {
		if !isDigit(r) && !strings.ContainsRune("._eE+-", r) {
			return false
		}
	}
	return true
}

func isDigit(r rune) bool {
	return r >= '0' && r <= '9'
}

func isBareChar(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || isDigit(r) || r == '_' || r == '-'
}
