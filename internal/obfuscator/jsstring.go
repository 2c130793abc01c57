package obfuscator

import (
	"fmt"
	"strings"
	"unicode/utf16"
	"unicode/utf8"
)

// unquote decodes a JavaScript string literal. It reports false for literals it
// cannot represent faithfully as UTF-8 (lone surrogates, legacy octal escapes),
// which callers then leave untouched.
func unquote(lit string) (string, bool) {
	if len(lit) < 2 {
		return "", false
	}
	q := lit[0]
	if (q != '\'' && q != '"') || lit[len(lit)-1] != q {
		return "", false
	}
	s := lit[1 : len(lit)-1]

	var units []uint16
	for i := 0; i < len(s); {
		c := s[i]
		if c != '\\' {
			r, size := utf8.DecodeRuneInString(s[i:])
			units = utf16.AppendRune(units, r)
			i += size
			continue
		}
		i++
		if i >= len(s) {
			return "", false
		}
		c = s[i]
		switch c {
		case 'n':
			units = append(units, '\n')
		case 't':
			units = append(units, '\t')
		case 'r':
			units = append(units, '\r')
		case 'b':
			units = append(units, '\b')
		case 'f':
			units = append(units, '\f')
		case 'v':
			units = append(units, '\v')
		case '0':
			if i+1 < len(s) && s[i+1] >= '0' && s[i+1] <= '9' {
				return "", false
			}
			units = append(units, 0)
		case 'x':
			v, ok := hexValue(s, i+1, 2)
			if !ok {
				return "", false
			}
			units = append(units, uint16(v))
			i += 2
		case 'u':
			if i+1 < len(s) && s[i+1] == '{' {
				end := strings.IndexByte(s[i:], '}')
				if end < 0 {
					return "", false
				}
				v, ok := hexValue(s, i+2, end-2)
				if !ok || v > utf8.MaxRune {
					return "", false
				}
				units = utf16.AppendRune(units, rune(v))
				i += end
				break
			}
			v, ok := hexValue(s, i+1, 4)
			if !ok {
				return "", false
			}
			units = append(units, uint16(v))
			i += 4
		case '\r':
			if i+1 < len(s) && s[i+1] == '\n' {
				i++
			}
		case '\n':
		case '1', '2', '3', '4', '5', '6', '7', '8', '9':
			return "", false
		default:
			r, size := utf8.DecodeRuneInString(s[i:])
			if r == '\u2028' || r == '\u2029' {
				i += size
				continue
			}
			units = utf16.AppendRune(units, r)
			i += size
			continue
		}
		i++
	}

	var b strings.Builder
	for i := 0; i < len(units); i++ {
		u := rune(units[i])
		if !utf16.IsSurrogate(u) {
			b.WriteRune(u)
			continue
		}
		if i+1 >= len(units) {
			return "", false
		}
		r := utf16.DecodeRune(u, rune(units[i+1]))
		if r == utf8.RuneError {
			return "", false
		}
		b.WriteRune(r)
		i++
	}
	return b.String(), true
}

func hexValue(s string, from, n int) (int, bool) {
	if n <= 0 || from+n > len(s) {
		return 0, false
	}
	v := 0
	for _, c := range []byte(s[from : from+n]) {
		var d byte
		switch {
		case c >= '0' && c <= '9':
			d = c - '0'
		case c >= 'a' && c <= 'f':
			d = c - 'a' + 10
		case c >= 'A' && c <= 'F':
			d = c - 'A' + 10
		default:
			return 0, false
		}
		v = v<<4 | int(d)
	}
	return v, true
}

// quote renders s as a single-quoted JavaScript string literal.
func quote(s string, asciiOnly bool) string {
	var b strings.Builder
	b.WriteByte('\'')
	for _, r := range s {
		switch {
		case r == '\'':
			b.WriteString(`\'`)
		case r == '\\':
			b.WriteString(`\\`)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case r == '\u2028' || r == '\u2029':
			fmt.Fprintf(&b, `\u%04x`, r)
		case r < 0x20 || r == 0x7f:
			fmt.Fprintf(&b, `\x%02x`, r)
		case asciiOnly && r > 0x7e:
			for _, u := range utf16.Encode([]rune{r}) {
				fmt.Fprintf(&b, `\u%04x`, u)
			}
		default:
			b.WriteRune(r)
		}
	}
	b.WriteByte('\'')
	return b.String()
}
