package obfuscator

import (
	"strconv"
	"strings"
)

// minFlattenStatements is the smallest body worth turning into a dispatch loop.
const minFlattenStatements = 3

// flattenControlFlow rewrites a share of function bodies into a loop around a
// switch whose cases hold the original statements in shuffled order, driven by
// an order string.
func flattenControlFlow(src string, threshold float64, n *namer) (string, error) {
	ts, err := tokenize(src)
	if err != nil {
		return "", err
	}
	w, err := newWalker(ts)
	if err != nil {
		return "", err
	}
	w.rewrite = func(w *walker, open, close int) string {
		start := w.directives(open, close)
		chunks, ok := w.statements(start, close)
		if !ok || len(chunks) < minFlattenStatements || !n.chance(threshold) {
			return w.render(open+1, close)
		}
		var j joiner
		j.write(w.render(open+1, start))
		j.write(dispatch(w, chunks, n))
		return j.String()
	}
	return w.String(), nil
}

func dispatch(w *walker, chunks [][2]int, n *namer) string {
	perm := n.rnd.Perm(len(chunks))
	order := make([]string, len(chunks))
	cases := make([]string, len(chunks))
	for e, c := range chunks {
		label := strconv.Itoa(perm[e])
		order[e] = label
		body := strings.TrimSuffix(w.render(c[0], c[1]), ";")
		cases[perm[e]] = "case" + quote(label, true) + ":" + body + ";continue;"
	}
	seq, idx := n.name(), n.name()
	var b strings.Builder
	b.WriteString("var " + seq + "=" + quote(strings.Join(order, "|"), true) + "['split']('|')," + idx + "=0x0;")
	b.WriteString("while(!![]){switch(" + seq + "[" + idx + "++]){")
	b.WriteString(strings.Join(cases, ""))
	b.WriteString("}break;}")
	return b.String()
}

// statements splits list[from:to] into runs of whole statements. It reports
// false when the body holds anything that changes meaning once moved into a
// switch case: block scoped declarations, function declarations, labels and
// do-while loops.
func (w *walker) statements(from, to int) ([][2]int, bool) {
	list := w.ts.list
	var chunks [][2]int
	begin := -1
	for i := from; i < to; i++ {
		t := list[i]
		if t.kind == kindSpace {
			continue
		}
		if begin < 0 {
			if !w.movable(i) {
				return nil, false
			}
			begin = i
		}
		if t.kind == kindIdent && t.text == "do" {
			return nil, false
		}
		if t.kind != kindPunct {
			continue
		}
		switch t.text {
		case "(", "[", "{":
			close := w.match[i]
			i = close
			if t.text == "{" {
				next := w.nextSigIndex(close)
				if next >= 0 && next < to && startsStatement(list[next]) {
					chunks = append(chunks, [2]int{begin, close + 1})
					begin = -1
				}
			}
		case ";":
			next := w.nextSigIndex(i)
			if next >= 0 && next < to && list[next].text == "else" {
				continue
			}
			chunks = append(chunks, [2]int{begin, i + 1})
			begin = -1
		}
	}
	if begin >= 0 {
		chunks = append(chunks, [2]int{begin, to})
	}
	return chunks, true
}

var notAfterBlock = map[string]bool{
	"else": true, "catch": true, "finally": true, "in": true, "instanceof": true, "of": true,
}

// startsStatement reports whether t, following a closing brace, can only be
// the start of a new statement.
func startsStatement(t token) bool {
	switch t.kind {
	case kindIdent:
		return !notAfterBlock[t.text]
	case kindString, kindNumber:
		return true
	}
	return false
}

func (w *walker) movable(i int) bool {
	switch w.ts.list[i].text {
	case "let", "const", "class", "function", "async", "import", "export":
		return false
	}
	if w.ts.list[i].kind == kindIdent {
		if next := w.nextSigIndex(i); next >= 0 && w.ts.list[next].text == ":" {
			return false
		}
	}
	return true
}
