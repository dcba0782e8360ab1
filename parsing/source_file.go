package parsing

import (
	"bufio"
	"io"
	"os"
	"strings"
)

// Lines longer than this are rejected by the scanner
const maxLineLength = 1024 * 1024

// SourceFile is an S-Java file that has been read into memory
type SourceFile struct {
	Name  string
	Lines []string
}

// ReadFile reads a file from disk and splits it into lines
func ReadFile(name string) (*SourceFile, error) {
	file, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	source, err := ReadLines(file)
	if err != nil {
		return nil, err
	}
	return &SourceFile{Name: name, Lines: source}, nil
}

// ReadLines splits everything in r into lines, without their line endings
func ReadLines(r io.Reader) ([]string, error) {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineLength)

	source := []string{}
	for scanner.Scan() {
		source = append(source, strings.TrimSuffix(scanner.Text(), "\r"))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return source, nil
}
