package fontrepo

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"
)

const (
	flfSignature = "flf2a"
	flfExt       = ".flf"

	// endMarks are the glyph row terminators the engine recognizes.
	endMarks = "@#$"

	// requiredGlyphs covers ASCII 32..126, which every FIGfont must define.
	requiredGlyphs = 95
)

type flfHeader struct {
	Hardblank    byte
	Height       int
	Baseline     int
	MaxLength    int
	CommentLines int
}

// parseFLF checks that data is a FIGfont the engine can load. The engine detects
// the end of a glyph by a doubled end mark, so those are required here too.
func parseFLF(data []byte) (flfHeader, error) {
	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	if !sc.Scan() {
		return flfHeader{}, errors.New("empty font file")
	}
	h, err := parseHeader(sc.Text())
	if err != nil {
		return flfHeader{}, err
	}

	for i := 0; i < h.CommentLines; i++ {
		if !sc.Scan() {
			return flfHeader{}, fmt.Errorf("comment block truncated at line %d", i+2)
		}
	}

	for g := 0; g < requiredGlyphs; g++ {
		var mark byte
		for row := 0; row < h.Height; row++ {
			if !sc.Scan() {
				return flfHeader{}, fmt.Errorf("glyph %q: unexpected end of file", rune(32+g))
			}
			m, err := checkEndMark(sc.Text(), mark, row == h.Height-1, h.Height)
			if err != nil {
				return flfHeader{}, fmt.Errorf("glyph %q row %d: %w", rune(32+g), row+1, err)
			}
			mark = m
		}
	}

	if err := sc.Err(); err != nil {
		return flfHeader{}, err
	}
	return h, nil
}

func parseHeader(line string) (flfHeader, error) {
	fields := strings.Fields(line)
	if len(fields) == 0 || !strings.HasPrefix(fields[0], flfSignature) || len(fields[0]) <= len(flfSignature) {
		return flfHeader{}, errors.New("missing flf2a signature")
	}
	if len(fields) < 6 {
		return flfHeader{}, fmt.Errorf("header has %d fields, want at least 6", len(fields))
	}

	nums := make([]int, 5)
	for i := range nums {
		n, err := strconv.Atoi(fields[i+1])
		if err != nil {
			return flfHeader{}, fmt.Errorf("header field %d: %w", i+2, err)
		}
		nums[i] = n
	}

	h := flfHeader{
		Hardblank:    fields[0][len(flfSignature)],
		Height:       nums[0],
		Baseline:     nums[1],
		MaxLength:    nums[2],
		CommentLines: nums[4],
	}
	if h.Height <= 0 {
		return flfHeader{}, fmt.Errorf("invalid height %d", h.Height)
	}
	if h.CommentLines < 0 {
		return flfHeader{}, fmt.Errorf("invalid comment line count %d", h.CommentLines)
	}
	return h, nil
}

// checkEndMark validates one glyph row and returns its end mark. The first row of a
// glyph picks the mark (want == 0); later rows must use the same one.
func checkEndMark(line string, want byte, last bool, height int) (byte, error) {
	if line == "" {
		return 0, errors.New("missing end mark")
	}

	mark := line[len(line)-1]
	if !strings.ContainsRune(endMarks, rune(mark)) {
		return 0, fmt.Errorf("missing end mark (got %q)", mark)
	}
	if want != 0 && mark != want {
		return 0, fmt.Errorf("end mark %q differs from %q", mark, want)
	}

	double := len(line) >= 2 && line[len(line)-2] == mark
	switch {
	case last && height > 1 && !double:
		return 0, errors.New("last row must end with a double end mark")
	case !last && double:
		return 0, errors.New("double end mark before last row")
	}
	return mark, nil
}

// normalizeNewlines strips CR so fonts saved with CRLF line endings still parse.
func normalizeNewlines(data []byte) []byte {
	if !bytes.Contains(data, []byte("\r")) {
		return data
	}
	out := bytes.ReplaceAll(data, []byte("\r\n"), []byte("\n"))
	return bytes.ReplaceAll(out, []byte("\r"), []byte("\n"))
}
