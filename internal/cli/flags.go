package cli

import (
	"fmt"
	"strconv"
	"strings"
)

// parseLayoutFlag parses a "RxC" layout flag value, e.g. "3x3".
func parseLayoutFlag(s string) (rows, cols int, err error) {
	parts := strings.SplitN(s, "x", 2)
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("invalid layout %q, expected RxC", s)
	}
	rows, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid layout %q: %w", s, err)
	}
	cols, err = strconv.Atoi(parts[1])
	if err != nil {
		return 0, 0, fmt.Errorf("invalid layout %q: %w", s, err)
	}
	return rows, cols, nil
}

// parseIntCSV parses a comma-separated list of integers, e.g. "1,1,1".
func parseIntCSV(s string) ([]int, error) {
	tokens := strings.Split(s, ",")
	values := make([]int, len(tokens))
	for i, tok := range tokens {
		v, err := strconv.Atoi(strings.TrimSpace(tok))
		if err != nil {
			return nil, fmt.Errorf("invalid integer list %q: %w", s, err)
		}
		values[i] = v
	}
	return values, nil
}
