package convert

import (
	"bufio"
	"io"
	"strings"
)

// Reader converts legacy-font encoded text while it is being read,
// for feeding whole documents or corpus files through a pipeline
// without holding them in memory.
//
// Conversion happens line by line. Pre-matra holds never cross a line
// boundary; a matra still pending when the line ends is flushed before
// the line terminator, exactly as String would flush it at end of
// input.
type Reader struct {
	src     *bufio.Reader
	params  Params
	buf     []byte
	missing []Missing
	base    int // rune offset of the current line within the stream
	err     error
}

// NewReader returns a Reader converting r with the given parameters.
func NewReader(r io.Reader, p Params) *Reader {
	return &Reader{
		src:    bufio.NewReader(r),
		params: p,
	}
}

// Read implements io.Reader, serving converted text.
func (r *Reader) Read(b []byte) (int, error) {
	for len(r.buf) == 0 && r.err == nil {
		r.fill()
	}
	if len(r.buf) > 0 {
		n := copy(b, r.buf)
		r.buf = r.buf[n:]
		return n, nil
	}
	return 0, r.err
}

func (r *Reader) fill() {
	line, err := r.src.ReadString('\n')
	if len(line) > 0 {
		body, delim := splitLineEnd(line)
		text, missing := String(body, r.params)
		for _, m := range missing {
			m.Pos += r.base
			r.missing = append(r.missing, m)
		}
		r.buf = append(r.buf, text...)
		r.buf = append(r.buf, delim...)
		r.base += len([]rune(body)) + len(delim)
	}
	if err != nil {
		r.err = err
	}
}

// Missing returns the unmapped glyphs collected so far, with positions
// counted in runes from the start of the stream. Call it after
// draining the Reader; it needs Params.Debug set, like String does.
func (r *Reader) Missing() []Missing {
	return r.missing
}

// splitLineEnd separates a line from its terminator so that end-of-line
// flushing happens before the terminator, not behind it.
func splitLineEnd(line string) (body, delim string) {
	body = line
	if strings.HasSuffix(body, "\n") {
		body, delim = body[:len(body)-1], "\n"
		if strings.HasSuffix(body, "\r") {
			body, delim = body[:len(body)-1], "\r\n"
		}
	}
	return body, delim
}
