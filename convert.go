package stendhal

import (
	"fmt"
	"io"
)

// ConvertRequest configures Convert.
type ConvertRequest struct {
	Reader  io.Reader
	Writer  io.Writer
	Options []Option
}

// Convert tokenizes Stendhal source markup from Reader and writes the
// rendered HTML document to Writer. The caller receives either a complete
// document or the typed error for the first malformed construct; nothing is
// skipped or repaired.
func Convert(req ConvertRequest) error {
	if req.Reader == nil {
		return fmt.Errorf("convert: reader is nil")
	}
	if req.Writer == nil {
		return fmt.Errorf("convert: writer is nil")
	}
	tokens, err := Tokenize(TokenizeRequest{Reader: req.Reader, Options: req.Options})
	if err != nil {
		return err
	}
	return Export(ExportRequest{Tokens: tokens, Writer: req.Writer})
}

// ConvertString converts a whole document held in memory.
func ConvertString(input string, opts ...Option) (string, error) {
	tokens, err := TokenizeString(input, opts...)
	if err != nil {
		return "", err
	}
	return ExportString(tokens)
}
