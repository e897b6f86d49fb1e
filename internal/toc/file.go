package toc

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// ParseFile reads a TOC from a text file. Blank lines and lines starting
// with '#' are ignored; the first remaining line must hold the TOC.
func ParseFile(path string) (*Disc, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("toc: %w", err)
	}
	defer f.Close()

	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		return Parse(line)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("toc: %w", err)
	}
	return nil, fmt.Errorf("toc: %s holds no TOC line", path)
}
