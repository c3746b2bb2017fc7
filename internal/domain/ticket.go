package domain

import (
	"strconv"
	"strings"
)

// Ticket is an ascending set of distinct lottery numbers.
type Ticket []int

// String renders the ticket as "[1 5 17]".
func (t Ticket) String() string {
	parts := make([]string, len(t))
	for i, n := range t {
		parts[i] = strconv.Itoa(n)
	}
	return "[" + strings.Join(parts, " ") + "]"
}
