package toml

import (
	"fmt"
	"strconv"
	"strings"
)

// parser builds a map[string]any tree from lexer tokens
// Supported: [table] headers with dotted names, dotted keys, strings, integers,
// floats, booleans and (nested) arrays. Arrays of tables and inline tables are not.
type parser struct {
	lex   *lexer
	cur   token
	peek  token
	root  map[string]any
	scope map[string]any
}

// Parse decodes settings data into a generic tree of maps, slices and scalars
func Parse(data []byte) (map[string]any, error) {
	p := &parser{lex: newLexer(data), root: make(map[string]any)}
	p.scope = p.root
	p.advance()
	p.advance()

	for p.cur.kind != tokEOF {
		switch p.cur.kind {
		case tokNewline:
			p.advance()
		case tokLBracket:
			if err := p.parseHeader(); err != nil {
				return nil, err
			}
		case tokKey, tokString, tokInt:
			if err := p.parseKeyValue(); err != nil {
				return nil, err
			}
		case tokError:
			return nil, fmt.Errorf("line %d: %s", p.cur.line, p.cur.text)
		default:
			return nil, fmt.Errorf("line %d: unexpected %s", p.cur.line, p.cur)
		}
	}
	return p.root, nil
}

func (p *parser) advance() {
	p.cur = p.peek
	p.peek = p.lex.next()
}

func (p *parser) expectLineEnd() error {
	switch p.cur.kind {
	case tokNewline:
		p.advance()
		return nil
	case tokEOF:
		return nil
	}
	return fmt.Errorf("line %d: expected end of line, got %s", p.cur.line, p.cur)
}

func (p *parser) parseHeader() error {
	line := p.cur.line
	p.advance() // [
	if p.cur.kind == tokLBracket {
		return fmt.Errorf("line %d: arrays of tables are not supported", line)
	}
	path, err := p.parseKeyPath()
	if err != nil {
		return err
	}
	if p.cur.kind != tokRBracket {
		return fmt.Errorf("line %d: expected ] after table name", line)
	}
	p.advance()

	table := p.root
	for _, key := range path {
		next, err := childTable(table, key)
		if err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
		table = next
	}
	p.scope = table
	return p.expectLineEnd()
}

func (p *parser) parseKeyValue() error {
	line := p.cur.line
	path, err := p.parseKeyPath()
	if err != nil {
		return err
	}
	if p.cur.kind != tokEqual {
		return fmt.Errorf("line %d: expected = after key, got %s", line, p.cur)
	}
	p.advance()

	val, err := p.parseValue()
	if err != nil {
		return err
	}

	table := p.scope
	for _, key := range path[:len(path)-1] {
		if table, err = childTable(table, key); err != nil {
			return fmt.Errorf("line %d: %w", line, err)
		}
	}
	last := path[len(path)-1]
	if _, exists := table[last]; exists {
		return fmt.Errorf("line %d: duplicate key %q", line, last)
	}
	table[last] = val
	return p.expectLineEnd()
}

func (p *parser) parseKeyPath() ([]string, error) {
	var path []string
	for {
		switch p.cur.kind {
		case tokKey, tokString, tokInt:
			path = append(path, p.cur.text)
		default:
			return nil, fmt.Errorf("line %d: expected key, got %s", p.cur.line, p.cur)
		}
		p.advance()
		if p.cur.kind != tokDot {
			return path, nil
		}
		p.advance()
	}
}

func (p *parser) parseValue() (any, error) {
	tok := p.cur
	switch tok.kind {
	case tokString:
		p.advance()
		return tok.text, nil
	case tokBool:
		p.advance()
		return tok.text == "true", nil
	case tokInt:
		p.advance()
		v, err := parseInt(tok.text)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid integer %q", tok.line, tok.text)
		}
		return v, nil
	case tokFloat:
		p.advance()
		v, err := strconv.ParseFloat(strings.ReplaceAll(tok.text, "_", ""), 64)
		if err != nil {
			return nil, fmt.Errorf("line %d: invalid float %q", tok.line, tok.text)
		}
		return v, nil
	case tokLBracket:
		return p.parseArray()
	case tokError:
		return nil, fmt.Errorf("line %d: %s", tok.line, tok.text)
	}
	return nil, fmt.Errorf("line %d: unexpected value %s", tok.line, tok)
}

func (p *parser) parseArray() ([]any, error) {
	line := p.cur.line
	p.advance() // [
	arr := make([]any, 0)
	for {
		for p.cur.kind == tokNewline {
			p.advance()
		}
		if p.cur.kind == tokRBracket {
			p.advance()
			return arr, nil
		}
		if p.cur.kind == tokEOF {
			return nil, fmt.Errorf("line %d: unterminated array", line)
		}

		val, err := p.parseValue()
		if err != nil {
			return nil, err
		}
		arr = append(arr, val)

		for p.cur.kind == tokNewline {
			p.advance()
		}
		switch p.cur.kind {
		case tokComma:
			p.advance()
		case tokRBracket:
		default:
			return nil, fmt.Errorf("line %d: expected , or ] in array, got %s", p.cur.line, p.cur)
		}
	}
}

// childTable returns table[key], creating it when absent
func childTable(table map[string]any, key string) (map[string]any, error) {
	existing, ok := table[key]
	if !ok {
		child := make(map[string]any)
		table[key] = child
		return child, nil
	}
	child, ok := existing.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("key %q is not a table", key)
	}
	return child, nil
}

func parseInt(lit string) (int, error) {
	lit = strings.ReplaceAll(lit, "_", "")
	base := 10
	digits := strings.TrimLeft(lit, "+-")
	if len(digits) > 2 && digits[0] == '0' {
		switch digits[1] {
		case 'x', 'X', 'o', 'O', 'b', 'B':
			base = 0
		}
	}
	v, err := strconv.ParseInt(lit, base, 64)
	return int(v), err
}
