package logs

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// ReadLines returns the lines of the file at path in file order. Line
// terminators ("\n" or "\r\n") are removed and a trailing terminator does
// not produce an extra empty line. An empty file yields an empty slice.
func ReadLines(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: open %s: %w", ErrFileUnreadable, path, err)
	}
	defer file.Close()

	reader := bufio.NewReaderSize(file, 64*1024)
	lines := make([]string, 0, 64)
	for {
		line, err := reader.ReadString('\n')
		if strings.HasSuffix(line, "\n") {
			line = strings.TrimSuffix(line[:len(line)-1], "\r")
			lines = append(lines, line)
		} else if line != "" {
			lines = append(lines, line)
		}
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return nil, fmt.Errorf("%w: read %s: %w", ErrFileUnreadable, path, err)
		}
	}
	return lines, nil
}
