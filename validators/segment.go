package validators

import (
	"errors"
	"strings"
)

var (
	ErrSegmentEmpty   = errors.New("no value provided")
	ErrSegmentTooLong = errors.New("value is too long")
	ErrSegmentUnsafe  = errors.New("value contains path-breaking characters")
)

const maxSegmentSize = 255

// PathSegmentValidator checks a client-supplied branch or file name
// before it is used as a single path segment in the blob store. Values
// that could escape their branch directory ("..", separators, NUL) are
// rejected outright rather than escaped.
func PathSegmentValidator(s string) error {
	if s == "" {
		return ErrSegmentEmpty
	}

	if len(s) > maxSegmentSize {
		return ErrSegmentTooLong
	}

	if s == "." || s == ".." {
		return ErrSegmentUnsafe
	}

	if strings.ContainsAny(s, "/\\\x00") {
		return ErrSegmentUnsafe
	}

	return nil
}
