package hexdump

import (
	"log"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeTestFile(t *testing.T, content []byte) string {
	filename := filepath.Join(t.TempDir(), "input.bin")
	err := os.WriteFile(filename, content, 0600)
	require.Nil(t, err)
	return filename
}

func TestReadInputFile(t *testing.T) {
	content := []byte("0123456789abcdef")
	filename := writeTestFile(t, content)

	data, err := ReadInput(filename, 0, -1)
	require.Nil(t, err)
	require.Equal(t, content, data)

	data, err = ReadInput(filename, 4, 8)
	require.Nil(t, err)
	require.Equal(t, []byte("456789ab"), data)

	data, err = ReadInput(filename, 12, -1)
	require.Nil(t, err)
	require.Equal(t, []byte("cdef"), data)

	data, err = ReadInput(filename, 12, 100)
	require.Nil(t, err)
	require.Equal(t, []byte("cdef"), data)

	data, err = ReadInput(filename, 16, -1)
	require.Nil(t, err)
	require.Empty(t, data)

	data, err = ReadInput(filename, 0, 0)
	require.Nil(t, err)
	require.Empty(t, data)
}

func TestReadInputErrors(t *testing.T) {
	filename := writeTestFile(t, []byte("0123"))

	_, err := ReadInput(filename, 5, -1)
	require.NotNil(t, err)
	log.Println(err)

	_, err = ReadInput(filename, -1, -1)
	require.NotNil(t, err)
	log.Println(err)

	_, err = ReadInput(filepath.Join(t.TempDir(), "nonexistent"), 0, -1)
	require.NotNil(t, err)
	log.Println(err)
}

func TestReadInputStdin(t *testing.T) {
	read, write, err := os.Pipe()
	require.Nil(t, err)
	saved := os.Stdin
	os.Stdin = read
	defer func() {
		os.Stdin = saved
	}()
	_, err = write.Write([]byte("piped input"))
	require.Nil(t, err)
	err = write.Close()
	require.Nil(t, err)

	data, err := ReadInput("-", 6, -1)
	require.Nil(t, err)
	require.Equal(t, []byte("input"), data)
}

func TestWindow(t *testing.T) {
	data := []byte("0123456789")

	out, err := window(data, 0, -1)
	require.Nil(t, err)
	require.Equal(t, data, out)

	out, err = window(data, 2, 3)
	require.Nil(t, err)
	require.Equal(t, []byte("234"), out)

	out, err = window(data, 10, -1)
	require.Nil(t, err)
	require.Empty(t, out)

	_, err = window(data, 11, -1)
	require.NotNil(t, err)
	log.Println(err)
}
