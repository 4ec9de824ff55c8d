package chapters

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"
)

// ExclusionMarker prefixes chapter titles that are cut from the output while
// still terminating the preceding chapter.
const ExclusionMarker = "--"

// Entry is one parsed line of an annotation file, in file order.
type Entry struct {
	Timestamp string
	Title     string
	Excluded  bool
}

// ParseFile reads an annotation file from disk.
func ParseFile(path string) ([]Entry, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open chapter file: %w", err)
	}
	defer file.Close()
	return Parse(file)
}

// Parse reads one chapter per non-blank line: a timestamp, a run of
// whitespace, then the title (which keeps any internal whitespace). Lines
// that do not split into two fields are skipped silently. Timestamps are not
// validated here; consumers reject unusable intervals when they use them.
func Parse(r io.Reader) ([]Entry, error) {
	scanner := bufio.NewScanner(r)
	var entries []Entry
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		split := strings.IndexFunc(line, unicode.IsSpace)
		if split < 0 {
			continue
		}
		title := strings.TrimSpace(line[split:])
		if title == "" {
			continue
		}
		entries = append(entries, Entry{
			Timestamp: line[:split],
			Title:     title,
			Excluded:  strings.HasPrefix(title, ExclusionMarker),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read chapter file: %w", err)
	}
	return entries, nil
}
