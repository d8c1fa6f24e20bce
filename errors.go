package stendhal

import (
	"errors"
	"fmt"
)

var (
	// ErrMissingFormatCode reports a § sentinel at the end of a line with no
	// code character after it.
	ErrMissingFormatCode = errors.New("expected a format code after '§'")
	// ErrMissingFrontmatter reports a frontmatter line without its required
	// prefix, or frontmatter that is absent entirely.
	ErrMissingFrontmatter = errors.New("frontmatter is not present or incomplete")
	// ErrUnexpectedEOF reports input that ended before the frontmatter was
	// fully read.
	ErrUnexpectedEOF = errors.New("unexpected end of input")
)

// NoSuchFormatCodeError reports an escape code outside the recognized
// alphabet of the format-code table.
type NoSuchFormatCodeError struct {
	Code rune
}

func (e NoSuchFormatCodeError) Error() string {
	return fmt.Sprintf("no such format code %q", e.Code)
}
