package attack

import (
	"bufio"
	"os"
	"strings"
)

// LoadDictionary reads one candidate password per line, preserving file
// order and skipping blank lines.
func LoadDictionary(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	words := []string{}
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r\n")
		if line == "" {
			continue
		}
		words = append(words, line)
	}
	return words, scanner.Err()
}
