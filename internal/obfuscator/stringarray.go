package obfuscator

import (
	"crypto/rc4"
	"encoding/base64"
	"strings"
)

// stringArray moves string literals into one encoded array that is decoded
// lazily at the call sites.
type stringArray struct {
	o        Options
	n        *namer
	encoding string

	arrayFn   string
	decoderFn string
	shift     int

	values  []string       // decoded values in array order
	keys    []string       // per entry RC4 key
	index   map[string]int // value -> array index
	wrapper []*wrapper
}

// wrapper is an indirection between call sites and the decoder. Each one
// shifts the index argument by its own offset and shuffles the parameter
// positions.
type wrapper struct {
	name   string
	params []string
	idxPos int
	keyPos int
	offset int
	target *wrapper // nil targets the decoder directly
}

func newStringArray(o Options, n *namer) *stringArray {
	sa := &stringArray{
		o:         o,
		n:         n,
		encoding:  o.encoding(),
		arrayFn:   n.name(),
		decoderFn: n.name(),
		index:     make(map[string]int),
	}
	if o.StringArrayIndexShift {
		sa.shift = n.between(0x64, 0x3e8)
	}
	sa.buildWrappers()
	return sa
}

func (sa *stringArray) buildWrappers() {
	maxParams := sa.o.StringArrayWrappersParametersMaxCount
	if maxParams < 2 {
		maxParams = 2
	}
	var prev *wrapper
	for k := 0; k < sa.o.StringArrayWrappersCount; k++ {
		w := &wrapper{name: sa.n.name()}
		if sa.o.StringArrayWrappersType != WrapperVariable {
			count := sa.n.between(2, maxParams)
			for p := 0; p < count; p++ {
				w.params = append(w.params, sa.n.name())
			}
			w.idxPos = sa.n.rnd.Intn(count)
			w.keyPos = (w.idxPos + 1 + sa.n.rnd.Intn(count-1)) % count
			w.offset = sa.n.between(-0x1ff, 0x1ff)
			if sa.o.StringArrayWrappersChainedCalls {
				w.target = prev
			}
		}
		sa.wrapper = append(sa.wrapper, w)
		prev = w
	}
}

// transform replaces eligible literals in src with decoder calls.
func (sa *stringArray) transform(src string) (string, error) {
	ts, err := tokenize(src)
	if err != nil {
		return "", err
	}
	for i, t := range ts.list {
		if t.kind != kindString || !ts.literalReplaceable(i) {
			continue
		}
		if !sa.n.chance(sa.o.StringArrayThreshold) {
			continue
		}
		v, ok := unquote(t.text)
		if !ok {
			continue
		}
		ts.list[i] = token{kind: kindPunct, text: sa.callSite(sa.add(v))}
	}
	return ts.render(), nil
}

func (sa *stringArray) add(v string) int {
	if idx, ok := sa.index[v]; ok {
		return idx
	}
	idx := len(sa.values)
	sa.values = append(sa.values, v)
	sa.keys = append(sa.keys, sa.n.key())
	sa.index[v] = idx
	return idx
}

func (sa *stringArray) empty() bool {
	return len(sa.values) == 0
}

func (sa *stringArray) callSite(idx int) string {
	key := quote(sa.keys[idx], true)
	if len(sa.wrapper) == 0 {
		return sa.decoderFn + "(" + hex(idx+sa.shift) + "," + key + ")"
	}
	w := sa.wrapper[sa.n.rnd.Intn(len(sa.wrapper))]
	if w.params == nil {
		// variable wrappers alias the decoder
		return w.name + "(" + hex(idx+sa.shift) + "," + key + ")"
	}
	args := make([]string, len(w.params))
	for p := range args {
		args[p] = hex(sa.n.between(-0x3ff, 0x3ff))
	}
	args[w.idxPos] = hex(sa.argFor(w, idx))
	args[w.keyPos] = key
	return w.name + "(" + strings.Join(args, ",") + ")"
}

// argFor is the index value to pass to w so that, after every wrapper in the
// chain subtracted its offset, the decoder receives idx+shift.
func (sa *stringArray) argFor(w *wrapper, idx int) int {
	if w == nil {
		return idx + sa.shift
	}
	return sa.argFor(w.target, idx) + w.offset
}

// encode renders one array entry.
func (sa *stringArray) encode(idx int) string {
	raw := []byte(sa.values[idx])
	switch sa.encoding {
	case EncodingRC4:
		c, _ := rc4.NewCipher([]byte(sa.keys[idx]))
		dst := make([]byte, len(raw))
		c.XORKeyStream(dst, raw)
		return quote(base64.StdEncoding.EncodeToString(dst), true)
	case EncodingBase64:
		return quote(base64.StdEncoding.EncodeToString(raw), true)
	}
	return quote(sa.values[idx], sa.o.UnicodeEscapeSequence)
}

// runtime returns the array, decoder and wrapper declarations. They are
// function declarations, so their position in the output does not matter.
func (sa *stringArray) runtime() string {
	var b strings.Builder

	entries := make([]string, len(sa.values))
	for i := range sa.values {
		entries[i] = sa.encode(i)
	}
	arr := sa.n.name()
	b.WriteString("function " + sa.arrayFn + "(){var " + arr + "=[" + strings.Join(entries, ",") + "];" +
		sa.arrayFn + "=function(){return " + arr + ";};return " + sa.arrayFn + "();}")

	b.WriteString(sa.decoder())

	for _, w := range sa.wrapper {
		if w.params == nil {
			b.WriteString("var " + w.name + "=" + sa.decoderFn + ";")
			continue
		}
		idxExpr := w.params[w.idxPos] + "-" + hex(w.offset)
		if w.offset < 0 {
			idxExpr = w.params[w.idxPos] + "- -" + hex(-w.offset)
		}
		keyExpr := w.params[w.keyPos]
		var call string
		if w.target == nil {
			call = sa.decoderFn + "(" + idxExpr + "," + keyExpr + ")"
		} else {
			t := w.target
			args := make([]string, len(t.params))
			for p := range args {
				args[p] = w.params[sa.n.rnd.Intn(len(w.params))]
			}
			args[t.idxPos] = idxExpr
			args[t.keyPos] = keyExpr
			call = t.name + "(" + strings.Join(args, ",") + ")"
		}
		b.WriteString("function " + w.name + "(" + strings.Join(w.params, ",") + "){return " + call + ";}")
	}
	return b.String()
}

func (sa *stringArray) decoder() string {
	r := strings.NewReplacer(
		"$D", sa.decoderFn,
		"$A", sa.arrayFn,
		"$S", hex(sa.shift),
		"$i", sa.n.name(),
		"$k", sa.n.name(),
		"$a", sa.n.name(),
		"$s", sa.n.name(),
		"$h", sa.n.name(),
	)
	switch sa.encoding {
	case EncodingRC4:
		return r.Replace(decoderRC4)
	case EncodingBase64:
		return r.Replace(decoderBase64)
	}
	return r.Replace(decoderPlain)
}

const decoderPlain = `function $D($i,$k){var $a=$A();$i=$i-$S;return $a[$i];}`

const decoderBase64 = `function $D($i,$k){var $a=$A();$i=$i-$S;var $s=$a[$i];if($D.c===undefined){$D.c={};}var $h=$i+'';if($D.c[$h]!==undefined){return $D.c[$h];}` +
	decodeBase64Body +
	`var o='';for(x=0;x<b.length;x++){o+='%'+('00'+b.charCodeAt(x).toString(0x10)).slice(-2);}$s=decodeURIComponent(o);$D.c[$h]=$s;return $s;}`

const decoderRC4 = `function $D($i,$k){var $a=$A();$i=$i-$S;var $s=$a[$i];if($D.c===undefined){$D.c={};}var $h=$i+$k;if($D.c[$h]!==undefined){return $D.c[$h];}` +
	decodeBase64Body +
	`var S=[],j=0,m,y,o='';for(m=0;m<0x100;m++){S[m]=m;}` +
	`for(m=0;m<0x100;m++){j=(j+S[m]+$k.charCodeAt(m%$k.length))%0x100;y=S[m];S[m]=S[j];S[j]=y;}` +
	`m=0;j=0;for(x=0;x<b.length;x++){m=(m+1)%0x100;j=(j+S[m])%0x100;y=S[m];S[m]=S[j];S[j]=y;o+='%'+('00'+(b.charCodeAt(x)^S[(S[m]+S[j])%0x100]).toString(0x10)).slice(-2);}` +
	`$s=decodeURIComponent(o);$D.c[$h]=$s;return $s;}`

// decodeBase64Body leaves the decoded bytes of $s in b, one char per byte.
const decodeBase64Body = `var t='ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz0123456789+/',b='',q=0,r=0,v,x;` +
	`for(x=0;x<$s.length;x++){v=t.indexOf($s.charAt(x));if(v<0){continue;}r=(r<<6|v)&0xffff;q+=6;if(q>=8){q-=8;b+=String.fromCharCode(r>>q&0xff);}}`
