package server

import "bytes"

// Framer reassembles newline-delimited messages from an arbitrarily chunked
// stream. The trailing fragment without a newline is kept until completed.
type Framer struct {
	buffer []byte
}

// Feed appends chunk and returns every complete, non-blank line in arrival order.
func (f *Framer) Feed(chunk []byte) [][]byte {
	f.buffer = append(f.buffer, chunk...)
	var lines [][]byte
	start := 0
	for {
		index := bytes.IndexByte(f.buffer[start:], '\n')
		if index < 0 {
			break
		}
		line := bytes.TrimSpace(f.buffer[start : start+index])
		start += index + 1
		if len(line) == 0 {
			continue
		}
		lines = append(lines, append([]byte(nil), line...))
	}
	f.buffer = append(f.buffer[:0], f.buffer[start:]...)
	return lines
}

// Pending returns the number of buffered bytes awaiting a newline.
func (f *Framer) Pending() int {
	return len(f.buffer)
}
