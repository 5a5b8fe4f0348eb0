package cli

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
)

// maxLineBytes caps one shell input line. Longer lines are discarded and
// reported; the session keeps reading.
const maxLineBytes = 1 << 20

var errLineTooLong = errors.New("input line too long")

// inputLine is one line read from the session input, or the error that
// stopped reading it.
type inputLine struct {
	text string
	err  error
}

// readLines reads in on its own goroutine so the session can stop on ctx
// while a read is blocked. The channel closes at EOF, on a read error, or
// when ctx is done.
func readLines(ctx context.Context, in io.Reader, limit int) <-chan inputLine {
	lines := make(chan inputLine)
	go func() {
		defer close(lines)
		r := bufio.NewReader(in)
		for {
			text, err := readLine(r, limit)
			if errors.Is(err, io.EOF) {
				return
			}
			select {
			case lines <- inputLine{text: text, err: err}:
			case <-ctx.Done():
				return
			}
			if err != nil && !errors.Is(err, errLineTooLong) {
				return
			}
		}
	}()
	return lines
}

// readLine returns the next line without its terminator. A line longer
// than limit is consumed in full and reported as errLineTooLong. A final
// line without a newline is returned as is; io.EOF follows on the next call.
func readLine(r *bufio.Reader, limit int) (string, error) {
	var buf []byte
	tooLong := false
	for {
		chunk, err := r.ReadSlice('\n')
		if !tooLong {
			content := chunk
			if err == nil {
				content = bytes.TrimRight(chunk, "\r\n")
			}
			if len(buf)+len(content) > limit {
				tooLong = true
				buf = nil
			} else {
				buf = append(buf, chunk...)
			}
		}
		switch {
		case errors.Is(err, bufio.ErrBufferFull):
			continue
		case err != nil && !errors.Is(err, io.EOF):
			return "", err
		case tooLong:
			return "", errLineTooLong
		case errors.Is(err, io.EOF) && len(buf) == 0:
			return "", io.EOF
		}
		return strings.TrimRight(string(buf), "\r\n"), nil
	}
}
