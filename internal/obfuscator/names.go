package obfuscator

import (
	"fmt"
	"math/rand"
	"strings"
)

// namer hands out unique hexadecimal identifiers and the other random values a
// run needs, all from one seeded source so a fixed seed gives a fixed output.
type namer struct {
	rnd  *rand.Rand
	used map[string]bool
}

func newNamer(rnd *rand.Rand) *namer {
	return &namer{rnd: rnd, used: make(map[string]bool)}
}

func (n *namer) name() string {
	for {
		id := fmt.Sprintf("_0x%x", 0x100000+n.rnd.Intn(0xeffff))
		if !n.used[id] {
			n.used[id] = true
			return id
		}
	}
}

func (n *namer) chance(threshold float64) bool {
	return n.rnd.Float64() < threshold
}

func (n *namer) between(lo, hi int) int {
	return lo + n.rnd.Intn(hi-lo+1)
}

const keyAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

// key returns a short ASCII key for the RC4 string encoding.
func (n *namer) key() string {
	var b strings.Builder
	for i := 0; i < 4; i++ {
		b.WriteByte(keyAlphabet[n.rnd.Intn(len(keyAlphabet))])
	}
	return b.String()
}

// hex renders an integer the way the rest of the output does.
func hex(v int) string {
	if v < 0 {
		return fmt.Sprintf("-0x%x", -v)
	}
	return fmt.Sprintf("0x%x", v)
}
