package hexdump

import (
	"encoding/hex"
	"fmt"
	"strings"
)

const Version = "0.1.0"

const SegmentLength = 4

// ChunkLength should be a multiple of SegmentLength
const ChunkLength = 16

const numSegmentsPerChunk = (ChunkLength + SegmentLength - 1) / SegmentLength

// every line has this width: hex field with delimiters and segment
// separators, one space, ascii field, one space, 8 hex digit offset
const lineWidth = 1 + 2*ChunkLength + (numSegmentsPerChunk - 1) + 2 + ChunkLength + 1 + 8

// Line is a single line of hexdump output.  Lines own their text and
// remain valid after the source buffer is gone.
type Line string

func (l Line) String() string {
	return string(l)
}

// Hexdump yields the lines of a dump one at a time, from either end.
// The final offset summary line is produced exactly once no matter
// which end it is pulled from.
type Hexdump struct {
	data        []byte
	front       int
	back        int
	summaryDone bool
}

// Iter returns a lazy line iterator over data.  The buffer is not
// copied and must remain valid until the iterator is exhausted.
func Iter(data []byte) *Hexdump {
	return &Hexdump{
		data: data,
		back: (len(data) + ChunkLength - 1) / ChunkLength,
	}
}

// Len reports the exact number of lines not yet yielded.
func (h *Hexdump) Len() int {
	count := h.back - h.front
	if !h.summaryDone {
		count++
	}
	return count
}

// Next yields the next line from the front: chunk lines in offset
// order, then the summary line.
func (h *Hexdump) Next() (Line, bool) {
	if h.front < h.back {
		index := h.front
		h.front++
		return chunkLine(index, h.chunk(index)), true
	}
	if !h.summaryDone {
		h.summaryDone = true
		return summaryLine(len(h.data)), true
	}
	return "", false
}

// NextBack yields the next line from the back: the summary line,
// then chunk lines in reverse offset order.
func (h *Hexdump) NextBack() (Line, bool) {
	if !h.summaryDone {
		h.summaryDone = true
		return summaryLine(len(h.data)), true
	}
	if h.back > h.front {
		h.back--
		return chunkLine(h.back, h.chunk(h.back)), true
	}
	return "", false
}

func (h *Hexdump) chunk(index int) []byte {
	start := index * ChunkLength
	end := start + ChunkLength
	if end > len(h.data) {
		end = len(h.data)
	}
	return h.data[start:end]
}

// Lines renders the complete dump as a slice, one element per line.
func Lines(data []byte) []Line {
	iter := Iter(data)
	lines := make([]Line, 0, iter.Len())
	for line, ok := iter.Next(); ok; line, ok = iter.Next() {
		lines = append(lines, line)
	}
	return lines
}

// Dump renders the complete dump as a single newline-terminated string.
func Dump(data []byte) string {
	var output strings.Builder
	for _, line := range Lines(data) {
		output.WriteString(string(line))
		output.WriteString("\n")
	}
	return output.String()
}

func chunkLine(index int, chunk []byte) Line {
	var buf strings.Builder
	buf.Grow(lineWidth)

	buf.WriteString("|")
	numSegments := 0
	numBytes := 0
	for i := 0; i < len(chunk); i += SegmentLength {
		if numSegments > 0 {
			buf.WriteString(" ")
		}
		end := i + SegmentLength
		if end > len(chunk) {
			end = len(chunk)
		}
		buf.WriteString(hex.EncodeToString(chunk[i:end]))
		numBytes = end - i
		numSegments++
	}
	buf.WriteString("| ")

	// pad out the hex field so the ascii and offset columns line up
	// with full-width lines
	for i := numBytes; i < SegmentLength; i++ {
		buf.WriteString("  ")
	}
	for i := numSegments; i < numSegmentsPerChunk; i++ {
		for j := 0; j < SegmentLength; j++ {
			buf.WriteString("  ")
		}
		buf.WriteString(" ")
	}

	for _, b := range chunk {
		buf.WriteByte(Sanitize(b))
	}
	for i := len(chunk); i < ChunkLength; i++ {
		buf.WriteString(" ")
	}

	fmt.Fprintf(&buf, " %08x", index*ChunkLength)

	return Line(buf.String())
}

func summaryLine(length int) Line {
	var buf strings.Builder
	buf.Grow(lineWidth)

	buf.WriteString("    ")
	for i := 0; i < ChunkLength; i++ {
		buf.WriteString("   ")
	}
	for i := 1; i < numSegmentsPerChunk; i++ {
		buf.WriteString(" ")
	}
	fmt.Fprintf(&buf, "%08x", length)

	return Line(buf.String())
}
