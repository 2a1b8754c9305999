package pluginconfig

import (
	"fmt"
	"strings"
)

// parseObject reads the flat object literal of a module.exports block.
// Only what plugin.config.js uses is supported: identifier or quoted keys,
// quoted strings, bare scalars, trailing commas and comments.
func parseObject(block string) ([]Entry, error) {
	start := strings.Index(block, "{")
	if start < 0 {
		return nil, fmt.Errorf("missing opening brace")
	}

	p := &parser{src: block, pos: start + 1}
	var entries []Entry

	for {
		p.skipSpaceAndComments()
		if p.eof() {
			return nil, fmt.Errorf("unterminated object")
		}
		if p.peek() == '}' {
			return entries, nil
		}

		key, err := p.key()
		if err != nil {
			return nil, err
		}

		p.skipSpaceAndComments()
		if p.eof() || p.peek() != ':' {
			return nil, fmt.Errorf("expected ':' after key %q", key)
		}
		p.pos++
		p.skipSpaceAndComments()

		entry := Entry{Key: key}
		if p.eof() {
			return nil, fmt.Errorf("missing value for key %q", key)
		}
		if c := p.peek(); c == '\'' || c == '"' {
			value, err := p.quoted()
			if err != nil {
				return nil, fmt.Errorf("value of %q: %w", key, err)
			}
			entry.Value = value
			entry.Quoted = true
		} else {
			entry.Value = p.bare()
			if entry.Value == "" {
				return nil, fmt.Errorf("missing value for key %q", key)
			}
		}
		entries = append(entries, entry)

		p.skipSpaceAndComments()
		if !p.eof() && p.peek() == ',' {
			p.pos++
		}
	}
}

type parser struct {
	src string
	pos int
}

func (p *parser) eof() bool  { return p.pos >= len(p.src) }
func (p *parser) peek() byte { return p.src[p.pos] }

func (p *parser) skipSpaceAndComments() {
	for !p.eof() {
		rest := p.src[p.pos:]
		switch {
		case rest[0] == ' ' || rest[0] == '\t' || rest[0] == '\n' || rest[0] == '\r':
			p.pos++
		case strings.HasPrefix(rest, "//"):
			if nl := strings.IndexByte(rest, '\n'); nl >= 0 {
				p.pos += nl + 1
			} else {
				p.pos = len(p.src)
			}
		case strings.HasPrefix(rest, "/*"):
			if end := strings.Index(rest[2:], "*/"); end >= 0 {
				p.pos += end + 4
			} else {
				p.pos = len(p.src)
			}
		default:
			return
		}
	}
}

func (p *parser) key() (string, error) {
	if c := p.peek(); c == '\'' || c == '"' {
		return p.quoted()
	}

	begin := p.pos
	for !p.eof() && isIdentByte(p.peek()) {
		p.pos++
	}
	if begin == p.pos {
		return "", fmt.Errorf("unexpected %q at offset %d", p.peek(), p.pos)
	}
	return p.src[begin:p.pos], nil
}

func isIdentByte(c byte) bool {
	return c == '_' || c == '$' ||
		(c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z') || (c >= '0' && c <= '9')
}

// quoted decodes a single- or double-quoted JS string literal.
func (p *parser) quoted() (string, error) {
	quote := p.peek()
	p.pos++

	var b strings.Builder
	for !p.eof() {
		c := p.peek()
		switch {
		case c == quote:
			p.pos++
			return b.String(), nil
		case c == '\\' && p.pos+1 < len(p.src):
			next := p.src[p.pos+1]
			switch next {
			case 'n':
				b.WriteByte('\n')
			case 't':
				b.WriteByte('\t')
			default:
				b.WriteByte(next)
			}
			p.pos += 2
		case c == '\n':
			return "", fmt.Errorf("unterminated string")
		default:
			b.WriteByte(c)
			p.pos++
		}
	}
	return "", fmt.Errorf("unterminated string")
}

// bare reads an unquoted scalar up to the next separator.
func (p *parser) bare() string {
	begin := p.pos
	for !p.eof() {
		c := p.peek()
		if c == ',' || c == '}' || c == '\n' {
			break
		}
		if c == '/' && p.pos+1 < len(p.src) && (p.src[p.pos+1] == '/' || p.src[p.pos+1] == '*') {
			break
		}
		p.pos++
	}
	return strings.TrimSpace(p.src[begin:p.pos])
}
