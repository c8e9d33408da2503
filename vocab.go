package wikitext

import (
	"bufio"
	"bytes"
	"os"
	"strings"

	mmap "github.com/edsrzf/mmap-go"
)

// CountUnique
// Diagnostic over a finished split file: returns the number of
// distinct whitespace-delimited tokens across all lines. The file is
// memory-mapped since split files run to gigabytes; memory cost is
// proportional to the vocabulary, not the corpus.
func CountUnique(path string) (int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer file.Close()
	stat, err := file.Stat()
	if err != nil {
		return 0, err
	}
	if stat.Size() == 0 {
		return 0, nil
	}
	mapped, err := mmap.Map(file, mmap.RDONLY, 0)
	if err != nil {
		return 0, err
	}
	defer mapped.Unmap()

	freq := make(map[string]int)
	scanner := bufio.NewScanner(bytes.NewReader(mapped))
	scanner.Buffer(make([]byte, 0, LINEBUF_SZ), LINEBUF_MAX)
	for scanner.Scan() {
		for _, token := range strings.Fields(scanner.Text()) {
			freq[token] += 1
		}
	}
	if scanErr := scanner.Err(); scanErr != nil {
		return 0, scanErr
	}
	return len(freq), nil
}
