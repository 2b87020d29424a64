package controller

import (
	"fmt"
	"strconv"
	"strings"

	"elevsim/src/types"
)

// ParseRequest reads "start>end" or "start-end".
func ParseRequest(text string) (start, end int, err error) {
	parts := strings.FieldsFunc(strings.TrimSpace(text), func(r rune) bool {
		return r == '>' || r == '-'
	})
	if len(parts) != 2 {
		return 0, 0, fmt.Errorf("%w: request %q, want <start>><end>", types.ErrInvalidArgument, text)
	}
	if start, err = strconv.Atoi(strings.TrimSpace(parts[0])); err != nil {
		return 0, 0, fmt.Errorf("%w: start floor %q", types.ErrInvalidArgument, parts[0])
	}
	if end, err = strconv.Atoi(strings.TrimSpace(parts[1])); err != nil {
		return 0, 0, fmt.Errorf("%w: end floor %q", types.ErrInvalidArgument, parts[1])
	}
	return start, end, nil
}
