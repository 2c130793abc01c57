package obfuscator

import (
	"fmt"
	"strings"
)

// injectDeadCode opens a share of function bodies with a branch guarded by a
// predicate that is always false.
func injectDeadCode(src string, threshold float64, n *namer) (string, error) {
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
		if start >= close || !n.chance(threshold) {
			return w.render(open+1, close)
		}
		var j joiner
		j.write(w.render(open+1, start))
		j.write(deadBranch(n))
		j.write(w.render(start, close))
		return j.String()
	}
	return w.String(), nil
}

func deadBranch(n *namer) string {
	a := n.key() + n.key()
	b := n.key() + n.key()
	for b == a {
		b = n.key() + n.key()
	}
	count := n.between(1, 3)
	stmts := make([]string, 0, count)
	for k := 0; k < count; k++ {
		stmts = append(stmts, deadStatement(n))
	}
	return fmt.Sprintf("if(%s===%s){%s}", quote(a, true), quote(b, true), strings.Join(stmts, ""))
}

func deadStatement(n *namer) string {
	x, y := n.name(), n.name()
	switch n.rnd.Intn(4) {
	case 0:
		return fmt.Sprintf("var %s=%s['split']('');%s['reverse']();", x, quote(n.key()+n.key(), true), x)
	case 1:
		return fmt.Sprintf("var %s=function(%s){return %s^%s;};", x, y, y, hex(n.between(1, 0xff)))
	case 2:
		return fmt.Sprintf("for(var %s=0x0;%s<%s;%s++){var %s=%s*0x2;}", x, x, hex(n.between(2, 0x10)), x, y, x)
	default:
		return fmt.Sprintf("var %s={};%s[%s]=function(){return %s;};", x, x, quote(n.key(), true), quote(n.key()+n.key(), true))
	}
}
