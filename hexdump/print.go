package hexdump

import (
	"io"
	"log"
	"os"
)

// Fprint writes the dump of data to w, one line per write with a
// trailing newline.
func Fprint(w io.Writer, data []byte) error {
	iter := Iter(data)
	for line, ok := iter.Next(); ok; line, ok = iter.Next() {
		_, err := io.WriteString(w, string(line)+"\n")
		if err != nil {
			return Fatal(err)
		}
	}
	return nil
}

// Print writes the dump of data to stdout.  A write failure is fatal.
func Print(data []byte) {
	err := Fprint(os.Stdout, data)
	if err != nil {
		log.Fatal(err)
	}
}
