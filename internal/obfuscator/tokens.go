package obfuscator

import (
	"io"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/pkg/errors"
	"github.com/tdewolff/parse/v2"
	"github.com/tdewolff/parse/v2/js"
)

type tokenKind int

const (
	kindPunct tokenKind = iota
	kindSpace
	kindIdent
	kindString
	kindNumber
	kindTemplate
	kindRegExp
)

type token struct {
	kind tokenKind
	text string
	// expr marks a string or number literal the parser found in an
	// expression position, where any other expression may replace it.
	expr bool
}

type tokens struct {
	list []token
}

// tokenize lexes src into a token list. The program is parsed first: the
// parser decides which slashes open a regular expression and which literals
// are expressions, and the lexer output is matched against it by position.
func tokenize(src string) (*tokens, error) {
	buf := make([]byte, len(src), len(src)+1)
	copy(buf, src)
	s, err := findSites(buf)
	if err != nil {
		return nil, err
	}

	l := js.NewLexer(parse.NewInputString(src))
	ts := &tokens{}
	off := 0
	for {
		tt, data := l.Next()
		if tt == js.ErrorToken {
			if err := l.Err(); err != nil && err != io.EOF {
				return nil, errors.Wrap(err, "lex")
			}
			return ts, nil
		}
		at := off
		if (tt == js.DivToken || tt == js.DivEqToken) && s.regexps[&buf[at]] {
			tt, data = l.RegExp()
			if tt == js.ErrorToken {
				return nil, errors.Wrap(l.Err(), "lex regexp")
			}
		}
		off += len(data)
		tok := token{kind: classify(tt, data), text: string(data)}
		if tt == js.RegExpToken {
			tok.kind = kindRegExp
		}
		if len(data) > 0 {
			tok.expr = s.literals[&buf[at]]
		}
		ts.list = append(ts.list, tok)
	}
}

// sites holds the first byte of every regular expression and every
// expression literal in a parsed buffer.
type sites struct {
	regexps  map[*byte]bool
	literals map[*byte]bool
	keys     map[*byte]bool
}

func findSites(buf []byte) (*sites, error) {
	s := &sites{
		regexps:  make(map[*byte]bool),
		literals: make(map[*byte]bool),
		keys:     make(map[*byte]bool),
	}
	if len(buf) == 0 {
		return s, nil
	}
	// buf has spare capacity, so the parser works on it in place and its
	// literal data points into buf.
	ast, err := js.Parse(parse.NewInputBytes(buf), js.Options{})
	if err != nil {
		return nil, errors.Wrap(err, "parse")
	}
	js.Walk(s, ast)
	return s, nil
}

func (s *sites) Enter(n js.INode) js.IVisitor {
	switch n := n.(type) {
	case *js.PropertyName:
		if len(n.Literal.Data) > 0 {
			s.keys[&n.Literal.Data[0]] = true
		}
	case *js.LiteralExpr:
		if len(n.Data) == 0 || s.keys[&n.Data[0]] {
			break
		}
		switch {
		case n.TokenType == js.RegExpToken:
			s.regexps[&n.Data[0]] = true
		case n.TokenType == js.StringToken || js.IsNumeric(n.TokenType):
			s.literals[&n.Data[0]] = true
		}
	}
	return s
}

func (s *sites) Exit(js.INode) {}

func classify(tt js.TokenType, data []byte) tokenKind {
	if tt == js.TemplateMiddleToken || tt == js.TemplateEndToken {
		return kindTemplate
	}
	if len(data) == 0 {
		return kindPunct
	}
	c := data[0]
	switch {
	case c == '`':
		return kindTemplate
	case c == '\'' || c == '"':
		return kindString
	case c >= '0' && c <= '9':
		return kindNumber
	case c == '.' && len(data) > 1 && data[1] >= '0' && data[1] <= '9':
		return kindNumber
	case c == '/' && len(data) > 1 && (data[1] == '/' || data[1] == '*'):
		return kindSpace
	case c == '#' && len(data) > 1 && data[1] == '!':
		return kindSpace
	case identStart(c) || c == '#':
		return kindIdent
	case c >= utf8.RuneSelf:
		r, _ := utf8.DecodeRune(data)
		if unicode.IsSpace(r) || r == '\uFEFF' {
			return kindSpace
		}
		return kindIdent
	case c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f':
		return kindSpace
	}
	return kindPunct
}

func identStart(c byte) bool {
	return c == '_' || c == '$' || c == '\\' || (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func identPart(c byte) bool {
	return identStart(c) || (c >= '0' && c <= '9') || c >= utf8.RuneSelf
}

// joiner concatenates token texts, inserting a space where two parts would
// otherwise fuse into one identifier or number.
type joiner struct {
	b strings.Builder
}

func (j *joiner) write(s string) {
	if s == "" {
		return
	}
	out := j.b.String()
	if len(out) > 0 && identPart(out[len(out)-1]) && identPart(s[0]) {
		j.b.WriteByte(' ')
	}
	j.b.WriteString(s)
}

func (j *joiner) String() string {
	return j.b.String()
}

func (ts *tokens) render() string {
	var j joiner
	for _, t := range ts.list {
		j.write(t.text)
	}
	return j.String()
}
