package fileutil

import (
	"fmt"
	"io"
	"os"

	"github.com/go-enry/go-enry/v2"
)

// binarySampleSize is how much of a file is inspected, matching Git's heuristic
const binarySampleSize = 8000

// IsBinaryFile reports whether the file at path looks binary
func IsBinaryFile(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	buf := make([]byte, binarySampleSize)
	n, err := io.ReadFull(f, buf)
	if err != nil && err != io.EOF && err != io.ErrUnexpectedEOF {
		return false, fmt.Errorf("failed to sample %s: %w", path, err)
	}

	return IsBinaryContent(buf[:n]), nil
}

// IsBinaryContent applies the NUL-byte heuristic to a content sample
func IsBinaryContent(sample []byte) bool {
	return enry.IsBinary(sample)
}
