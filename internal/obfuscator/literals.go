package obfuscator

import (
	"strconv"
	"strings"
)

// literalReplaceable reports whether the literal at list index i sits in an
// expression position, where it can be swapped for any other expression.
// Property keys, method names, module specifiers and directives are not.
func (ts *tokens) literalReplaceable(i int) bool {
	t := ts.list[i]
	if !t.expr {
		return false
	}
	if t.kind == kindString {
		v, _ := unquote(t.text)
		if v == "use strict" || v == "use asm" {
			return false
		}
	}
	return true
}

// numbersToExpressions rewrites small integer literals as arithmetic over
// hexadecimal terms that evaluates to the same value.
func numbersToExpressions(src string, n *namer) (string, error) {
	ts, err := tokenize(src)
	if err != nil {
		return "", err
	}
	for i, t := range ts.list {
		if t.kind != kindNumber || !ts.literalReplaceable(i) {
			continue
		}
		v, ok := smallInt(t.text)
		if !ok {
			continue
		}
		ts.list[i] = token{kind: kindPunct, text: numberExpression(v, n)}
	}
	return ts.render(), nil
}

func smallInt(text string) (int, bool) {
	if len(text) > 1 && text[0] == '0' {
		return 0, false
	}
	for _, c := range []byte(text) {
		if c < '0' || c > '9' {
			return 0, false
		}
	}
	v, err := strconv.Atoi(text)
	if err != nil || v > 1<<30 {
		return 0, false
	}
	return v, true
}

func numberExpression(v int, n *namer) string {
	terms := n.between(2, 4)
	parts := make([]string, 0, terms)
	sum := 0
	for k := 0; k < terms-1; k++ {
		if n.chance(0.5) {
			a, b := n.between(1, 0x3f), n.between(1, 0x3ff)
			if n.chance(0.5) {
				b = -b
			}
			parts = append(parts, hex(a)+"*"+hex(b))
			sum += a * b
			continue
		}
		c := n.between(1, 0x2fff)
		if n.chance(0.5) {
			c = -c
		}
		parts = append(parts, hex(c))
		sum += c
	}
	parts = append(parts, hex(v-sum))
	return "(" + strings.Join(parts, "+") + ")"
}

// splitStrings breaks long literals into concatenated chunks so no single
// literal in the output carries a whole message.
func splitStrings(src string, chunk int, asciiOnly bool) (string, error) {
	if chunk <= 0 {
		return src, nil
	}
	ts, err := tokenize(src)
	if err != nil {
		return "", err
	}
	for i, t := range ts.list {
		if t.kind != kindString || !ts.literalReplaceable(i) {
			continue
		}
		v, ok := unquote(t.text)
		if !ok {
			continue
		}
		runes := []rune(v)
		if len(runes) <= chunk {
			continue
		}
		parts := make([]string, 0, len(runes)/chunk+1)
		for len(runes) > 0 {
			end := chunk
			if end > len(runes) {
				end = len(runes)
			}
			parts = append(parts, quote(string(runes[:end]), asciiOnly))
			runes = runes[end:]
		}
		ts.list[i] = token{kind: kindPunct, text: "(" + strings.Join(parts, "+") + ")"}
	}
	return ts.render(), nil
}
