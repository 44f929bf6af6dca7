package figrender

import (
	"bytes"
	"fmt"
	"strings"
	"unicode/utf8"
)

// go-figure pads glyph rows by byte length, so multi-byte glyph characters
// (box drawing, block elements) would skew every row. narrow swaps each
// distinct non-ASCII rune for an unused single-byte placeholder before the
// font reaches the engine; the returned replacer maps placeholders back.
var placeholders = func() []byte {
	var b []byte
	for c := byte(0x01); c < 0x20; c++ {
		switch c {
		case '\t', '\n', '\v', '\f', '\r':
			continue
		}
		b = append(b, c)
	}
	return b
}()

func narrow(data []byte) ([]byte, *strings.Replacer, error) {
	if !hasWide(data) {
		return data, nil, nil
	}

	free := make([]byte, 0, len(placeholders))
	for _, c := range placeholders {
		if bytes.IndexByte(data, c) < 0 {
			free = append(free, c)
		}
	}

	swap := map[rune]byte{}
	var pairs []string
	var out bytes.Buffer
	out.Grow(len(data))
	for i := 0; i < len(data); {
		r, n := utf8.DecodeRune(data[i:])
		if r < utf8.RuneSelf || r == utf8.RuneError && n == 1 {
			out.WriteByte(data[i])
			i += n
			continue
		}
		c, ok := swap[r]
		if !ok {
			if len(swap) == len(free) {
				return nil, nil, fmt.Errorf("more than %d distinct non-ASCII glyph characters", len(free))
			}
			c = free[len(swap)]
			swap[r] = c
			pairs = append(pairs, string(c), string(r))
		}
		out.WriteByte(c)
		i += n
	}
	return out.Bytes(), strings.NewReplacer(pairs...), nil
}

func hasWide(data []byte) bool {
	for _, c := range data {
		if c >= utf8.RuneSelf {
			return true
		}
	}
	return false
}
