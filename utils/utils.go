package utils

import (
	"fmt"
	"strconv"
)

// ParseID converts a path parameter to a record id. A malformed id is a
// caller error, reported as such rather than allowed to escape.
func ParseID(raw string) (uint, error) {
	id, err := strconv.ParseUint(raw, 10, 32)
	if err != nil || id == 0 {
		return 0, fmt.Errorf("invalid id %q", raw)
	}
	return uint(id), nil
}
