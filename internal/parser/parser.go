// Package parser extracts the author name from the confirmation bot's
// templated lookup sentence.
package parser

import (
	"errors"
	"strings"
)

// ErrNoAuthor is returned when text does not match the lookup template.
var ErrNoAuthor = errors.New("no author in lookup text")

const (
	lead       = "Looking up "
	separator  = " by "
	terminator = "."
)

// Author parses a sentence of the form "Looking up <target> by <author>."
// and returns the author field. Each anchor is matched at its first
// occurrence and both variable fields must be at least one byte long, so an
// author containing a dot is truncated at the first one.
func Author(text string) (string, error) {
	rest, ok := strings.CutPrefix(text, lead)
	if !ok {
		return "", ErrNoAuthor
	}

	sep := strings.Index(rest, separator)
	if sep < 1 {
		return "", ErrNoAuthor
	}
	rest = rest[sep+len(separator):]

	end := strings.Index(rest, terminator)
	if end < 1 {
		return "", ErrNoAuthor
	}

	return rest[:end], nil
}
