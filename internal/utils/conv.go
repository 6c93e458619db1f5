package utils

import (
	"strconv"
)

// ParseID parses a route parameter into a record id.
func ParseID(s string) (uint, error) {
	id, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, err
	}
	return uint(id), nil
}
