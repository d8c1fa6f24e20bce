package stendhal

import (
	"fmt"
	"io"
	"strings"
	"unicode/utf8"

	"pkt.systems/stendhal/internal/entity"
)

const (
	documentHead = `<!DOCTYPE html><html lang="en" dir="ltr"><head><meta charset="utf-8" />`
	headClose    = `<meta name="viewport" content="width=device-width, initial-scale=1.0" /></head>`
	// break-spaces keeps runs of consecutive spaces visible, matching how
	// Minecraft books display them.
	bodyOpen      = `<body><article style=white-space:break-spaces>`
	documentClose = `</article></body></html>`
)

// ExportRequest configures Export.
type ExportRequest struct {
	Tokens *TokenList
	Writer io.Writer
}

// Export renders a token list as one complete HTML document and writes it to
// the request writer, flushing on success. On error the partial contents of
// the writer are undefined.
func Export(req ExportRequest) error {
	if req.Tokens == nil {
		return fmt.Errorf("export: tokens is nil")
	}
	if req.Writer == nil {
		return fmt.Errorf("export: writer is nil")
	}
	sink := NewWriterSink(req.Writer)
	if err := exportTokens(sink, req.Tokens); err != nil {
		return err
	}
	return sink.Flush()
}

// ExportString renders a token list as one complete HTML document held in
// memory. The result is byte-identical to what Export writes.
func ExportString(tokens *TokenList) (string, error) {
	if tokens == nil {
		return "", fmt.Errorf("export: tokens is nil")
	}
	var b strings.Builder
	if err := exportTokens(builderSink{&b}, tokens); err != nil {
		return "", err
	}
	return b.String(), nil
}

// exportTokens performs the single rendering pass. The style stack is scoped
// to this call; the tokenizer guarantees it is empty again at end of input,
// but any entries still open are closed rather than dropped.
func exportTokens(sink Sink, tokens *TokenList) error {
	if err := writeHead(sink, tokens.Metadata()); err != nil {
		return err
	}
	if err := sink.WriteString(bodyOpen); err != nil {
		return err
	}
	var stack []Format
	for _, tok := range tokens.Tokens() {
		if err := writeToken(sink, &stack, tok); err != nil {
			return err
		}
	}
	if err := closeOpenStyles(sink, &stack); err != nil {
		return err
	}
	return sink.WriteString(documentClose)
}

// writeHead emits the document head with metadata in encounter order.
func writeHead(sink Sink, metadata []Metadata) error {
	if err := sink.WriteString(documentHead); err != nil {
		return err
	}
	for _, m := range metadata {
		switch m.Kind {
		case metadataTitle:
			if err := sink.WriteString("<title>"); err != nil {
				return err
			}
			if err := writeEscaped(sink, m.Value); err != nil {
				return err
			}
			if err := sink.WriteString("</title>"); err != nil {
				return err
			}
		case metadataAuthor:
			if err := sink.WriteString(`<meta name="author" content="`); err != nil {
				return err
			}
			if err := writeEscaped(sink, m.Value); err != nil {
				return err
			}
			if err := sink.WriteString(`" />`); err != nil {
				return err
			}
		}
	}
	return sink.WriteString(headClose)
}

func writeToken(sink Sink, stack *[]Format, tok Token) error {
	switch tok.Kind {
	case tokenText:
		return writeEscaped(sink, tok.Text)
	case tokenStyleMark:
		return writeStyleMark(sink, stack, tok.Format)
	case tokenSpace:
		return sink.WriteString(" ")
	case tokenLineBreak, tokenParagraphBreak:
		return sink.WriteString("<br />")
	case tokenPageBreak:
		return sink.WriteString("<hr />")
	}
	return fmt.Errorf("export: unknown token kind %d", tok.Kind)
}

// writeStyleMark opens the element for f and pushes it onto the stack. A
// reset mark instead pops and closes every open element, last opened first.
func writeStyleMark(sink Sink, stack *[]Format, f Format) error {
	if f == Reset {
		return closeOpenStyles(sink, stack)
	}
	*stack = append(*stack, f)
	return sink.WriteString(openTag(f))
}

func closeOpenStyles(sink Sink, stack *[]Format) error {
	for i := len(*stack) - 1; i >= 0; i-- {
		if err := sink.WriteString(closeTag((*stack)[i])); err != nil {
			return err
		}
	}
	*stack = (*stack)[:0]
	return nil
}

func openTag(f Format) string {
	if c, ok := f.Color(); ok {
		return "<span style='color:" + c.Foreground().Hex() + "'>"
	}
	switch f {
	case Obfuscated:
		return "<code>"
	case Bold:
		return "<b>"
	case Strikethrough:
		return "<s>"
	case Underline:
		return "<u>"
	case Italic:
		return "<i>"
	}
	return ""
}

func closeTag(f Format) string {
	if f.IsColor() {
		return "</span>"
	}
	switch f {
	case Obfuscated:
		return "</code>"
	case Bold:
		return "</b>"
	case Strikethrough:
		return "</s>"
	case Underline:
		return "</u>"
	case Italic:
		return "</i>"
	}
	return ""
}

// writeEscaped writes s with every character that has a named HTML entity
// replaced by that entity. The pass is strictly per character with no
// lookahead: input that is already encoded, such as "&amp;", is encoded
// again and comes out as "&amp;amp;".
func writeEscaped(sink Sink, s string) error {
	start := 0
	for i, r := range s {
		name, ok := entity.Lookup(r)
		if !ok {
			continue
		}
		if start < i {
			if err := sink.WriteString(s[start:i]); err != nil {
				return err
			}
		}
		if err := sink.WriteString("&" + name + ";"); err != nil {
			return err
		}
		start = i + utf8.RuneLen(r)
	}
	if start < len(s) {
		return sink.WriteString(s[start:])
	}
	return nil
}
