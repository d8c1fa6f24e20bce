package stendhal

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"sync"
	"unicode/utf8"
)

const (
	// sentinel introduces a one-character style-escape code.
	sentinel = '§'
	// pageBreakPrefix starts a new page when it opens a line.
	pageBreakPrefix = "#- "

	scanBufSize  = 64 * 1024
	maxLineBytes = 1 << 20
)

var scanBufPool = sync.Pool{
	New: func() any {
		b := make([]byte, scanBufSize)
		return &b
	},
}

// TokenizeRequest configures Tokenize.
type TokenizeRequest struct {
	Reader  io.Reader
	Options []Option
}

// Tokenize reads a whole Stendhal document from a stream: the three-line
// frontmatter first, then every remaining line in order. It returns the
// first malformed construct it encounters as a typed error.
func Tokenize(req TokenizeRequest) (*TokenList, error) {
	if req.Reader == nil {
		return nil, fmt.Errorf("tokenize: reader is nil")
	}
	cfg := applyOptions(req.Options)

	sc := bufio.NewScanner(req.Reader)
	bufp := scanBufPool.Get().(*[]byte)
	sc.Buffer(*bufp, maxLineBytes)
	defer scanBufPool.Put(bufp)

	metadata, err := parseFrontmatter(sc)
	if err != nil {
		return nil, fmt.Errorf("tokenize: frontmatter: %w", err)
	}

	var tokens []Token
	for sc.Scan() {
		if cfg.validateInput {
			if err := ValidateInput(sc.Bytes()); err != nil {
				return nil, fmt.Errorf("tokenize: %w", err)
			}
		}
		if err := tokenizeLine(&tokens, sc.Text()); err != nil {
			return nil, fmt.Errorf("tokenize: %w", err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("tokenize: read: %w", err)
	}
	return NewTokenList(metadata, tokens), nil
}

// TokenizeString tokenizes a whole document held in memory.
func TokenizeString(input string, opts ...Option) (*TokenList, error) {
	return Tokenize(TokenizeRequest{Reader: strings.NewReader(input), Options: opts})
}

// tokenizeLine appends the tokens for one body line to out.
//
// An empty line becomes a single paragraph break. A "#- " prefix becomes a
// page break and is stripped before the rest of the line is scanned. Style
// escapes left open at the end of the line are closed with a synthetic reset
// mark, so every line is self-terminating with respect to style state.
func tokenizeLine(out *[]Token, line string) error {
	if line == "" {
		*out = append(*out, Token{Kind: tokenParagraphBreak})
		return nil
	}
	if rest, ok := strings.CutPrefix(line, pageBreakPrefix); ok {
		*out = append(*out, Token{Kind: tokenPageBreak})
		line = rest
	}

	var word strings.Builder
	flush := func() {
		if word.Len() > 0 {
			*out = append(*out, Token{Kind: tokenText, Text: word.String()})
			word.Reset()
		}
	}

	trailingStyle := false
	for i := 0; i < len(line); {
		r, size := utf8.DecodeRuneInString(line[i:])
		i += size
		switch r {
		case ' ':
			flush()
			*out = append(*out, Token{Kind: tokenSpace})
		case sentinel:
			flush()
			if i >= len(line) {
				return ErrMissingFormatCode
			}
			code, codeSize := utf8.DecodeRuneInString(line[i:])
			i += codeSize
			format, ok := FormatByCode(code)
			if !ok {
				return NoSuchFormatCodeError{Code: code}
			}
			trailingStyle = format != Reset
			*out = append(*out, Token{Kind: tokenStyleMark, Format: format})
		default:
			word.WriteRune(r)
		}
	}
	flush()
	if trailingStyle {
		*out = append(*out, Token{Kind: tokenStyleMark, Format: Reset})
	}
	*out = append(*out, Token{Kind: tokenLineBreak})
	return nil
}
