package hexdump

import (
	"io"
	"os"
)

// ReadInput reads the bytes to be dumped.  An empty name or "-"
// selects stdin, anything else is a filename.  offset skips leading
// bytes; a negative length means everything from offset to the end.
func ReadInput(name string, offset, length int64) ([]byte, error) {
	if offset < 0 {
		return nil, Fatalf("negative offset: %d", offset)
	}
	if name == "" || name == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, Fatal(err)
		}
		return window(data, offset, length)
	}
	return readFileWindow(name, offset, length)
}

func window(data []byte, offset, length int64) ([]byte, error) {
	if offset > int64(len(data)) {
		return nil, Fatalf("offset %d beyond end of input (%d bytes)", offset, len(data))
	}
	data = data[offset:]
	if length >= 0 && length < int64(len(data)) {
		data = data[:length]
	}
	return data, nil
}

func readFileWindow(name string, offset, length int64) ([]byte, error) {
	file, err := os.Open(name)
	if err != nil {
		return nil, Fatal(err)
	}
	defer file.Close()
	info, err := file.Stat()
	if err != nil {
		return nil, Fatal(err)
	}
	size := info.Size()
	if offset > size {
		return nil, Fatalf("offset %d beyond end of %s (%d bytes)", offset, name, size)
	}
	remaining := size - offset
	if length < 0 || length > remaining {
		length = remaining
	}
	buf := make([]byte, length)
	n, err := file.ReadAt(buf, offset)
	if err != nil && !(err == io.EOF && int64(n) == length) {
		return nil, Fatal(err)
	}
	return buf, nil
}
