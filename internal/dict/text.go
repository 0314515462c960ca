package dict

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// ParseText reads the tab-separated dictionary text format: one entry per
// line as "key<TAB>value" with additional candidate values separated by
// single spaces. Blank lines and lines starting with '#' are skipped. It
// fails with ErrMalformedEntry on a line with no tab, an empty key, or an
// empty value candidate.
func ParseText(r io.Reader) ([]Entry, error) {
	var entries []Entry
	sc := bufio.NewScanner(r)
	lineno := 0
	for sc.Scan() {
		lineno++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		key, field, ok := strings.Cut(line, "\t")
		if !ok || key == "" {
			return nil, fmt.Errorf("line %d: %w", lineno, ErrMalformedEntry)
		}
		values := strings.Split(field, " ")
		for _, v := range values {
			if v == "" {
				return nil, fmt.Errorf("line %d: empty value: %w", lineno, ErrMalformedEntry)
			}
		}
		entries = append(entries, Entry{Key: key, Values: values})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("reading dictionary: %w", err)
	}
	return entries, nil
}
