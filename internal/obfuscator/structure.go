package obfuscator

import (
	"github.com/pkg/errors"
)

var errUnbalanced = errors.New("unbalanced brackets")

// walker renders a token list while giving a rewrite hook the chance to replace
// the inside of every function body. Bodies nested in a rewritten body are
// rendered through the walker again, so the hook sees each one.
type walker struct {
	ts      *tokens
	match   map[int]int  // opening bracket -> closing bracket
	bodies  map[int]bool // opening braces of function bodies
	rewrite func(w *walker, open, close int) string
}

func newWalker(ts *tokens) (*walker, error) {
	w := &walker{ts: ts, match: make(map[int]int), bodies: make(map[int]bool)}
	var stack []int
	for i, t := range ts.list {
		if t.kind != kindPunct {
			continue
		}
		switch t.text {
		case "(", "[", "{":
			stack = append(stack, i)
		case ")", "]", "}":
			if len(stack) == 0 || !pairs(ts.list[stack[len(stack)-1]].text, t.text) {
				return nil, errUnbalanced
			}
			w.match[stack[len(stack)-1]] = i
			stack = stack[:len(stack)-1]
		}
	}
	if len(stack) != 0 {
		return nil, errUnbalanced
	}
	w.findBodies()
	return w, nil
}

func pairs(open, close string) bool {
	return open == "(" && close == ")" || open == "[" && close == "]" || open == "{" && close == "}"
}

// findBodies marks the braces of `function` and arrow function bodies.
func (w *walker) findBodies() {
	list := w.ts.list
	for i, t := range list {
		switch {
		case t.kind == kindIdent && t.text == "function":
			if p := w.prevSigIndex(i); p >= 0 && (list[p].text == "." || list[p].text == "?.") {
				continue
			}
			j := w.nextSigIndex(i)
			if j >= 0 && list[j].text == "*" {
				j = w.nextSigIndex(j)
			}
			if j >= 0 && list[j].kind == kindIdent {
				j = w.nextSigIndex(j)
			}
			if j < 0 || list[j].text != "(" {
				continue
			}
			close, ok := w.match[j]
			if !ok {
				continue
			}
			if b := w.nextSigIndex(close); b >= 0 && list[b].text == "{" {
				w.bodies[b] = true
			}
		case t.kind == kindPunct && t.text == "=>":
			if b := w.nextSigIndex(i); b >= 0 && list[b].text == "{" {
				w.bodies[b] = true
			}
		}
	}
}

func (w *walker) nextSigIndex(i int) int {
	for j := i + 1; j < len(w.ts.list); j++ {
		if w.ts.list[j].kind != kindSpace {
			return j
		}
	}
	return -1
}

func (w *walker) prevSigIndex(i int) int {
	for j := i - 1; j >= 0; j-- {
		if w.ts.list[j].kind != kindSpace {
			return j
		}
	}
	return -1
}

// render renders list[from:to].
func (w *walker) render(from, to int) string {
	var j joiner
	for i := from; i < to; i++ {
		t := w.ts.list[i]
		if w.bodies[i] && w.rewrite != nil {
			close := w.match[i]
			j.write("{")
			j.write(w.rewrite(w, i, close))
			j.write("}")
			i = close
			continue
		}
		j.write(t.text)
	}
	return j.String()
}

func (w *walker) String() string {
	return w.render(0, len(w.ts.list))
}

// directives returns the index after the directive prologue of the body
// opened at open.
func (w *walker) directives(open, close int) int {
	i := open + 1
	for {
		s := w.nextSigIndex(i - 1)
		if s < 0 || s >= close || w.ts.list[s].kind != kindString {
			return i
		}
		end := w.nextSigIndex(s)
		if end < 0 || end > close || (w.ts.list[end].text != ";" && end != close) {
			return i
		}
		if end == close {
			return close
		}
		i = end + 1
	}
}

// prependAfterDirectives inserts prelude into src after any leading directive
// prologue, so "use strict" keeps applying to the whole file.
func prependAfterDirectives(src, prelude string) (string, error) {
	ts, err := tokenize(src)
	if err != nil {
		return "", err
	}
	offset, cut := 0, 0
	expectString := true
scan:
	for _, t := range ts.list {
		offset += len(t.text)
		switch {
		case t.kind == kindSpace:
			continue
		case expectString && t.kind == kindString:
			expectString = false
			continue
		case !expectString && t.text == ";":
			expectString = true
			cut = offset
			continue
		}
		break scan
	}
	var j joiner
	j.write(src[:cut])
	j.write(prelude)
	j.write(src[cut:])
	return j.String(), nil
}
