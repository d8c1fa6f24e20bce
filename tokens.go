package stendhal

// Token is one lexical unit of a Stendhal document.
//
// Tokens are created by the tokenizer and never modified afterwards. Text is
// set only for TokenText tokens; Format only for TokenStyleMark tokens.
type Token struct {
	Text   string
	Format Format
	Kind   tokenKind
}

type tokenKind uint8

// TokenKind is the exported alias of tokenKind for tooling and alternate exporters.
type TokenKind = tokenKind

const (
	tokenText tokenKind = iota
	tokenStyleMark
	tokenSpace
	tokenLineBreak
	tokenParagraphBreak
	tokenPageBreak
)

const (
	// TokenText represents a run of plain text with no spaces.
	TokenText tokenKind = tokenText
	// TokenStyleMark is a hidden token controlling text formatting.
	TokenStyleMark tokenKind = tokenStyleMark
	// TokenSpace represents a literal space character.
	TokenSpace tokenKind = tokenSpace
	// TokenLineBreak represents the end of a source line.
	TokenLineBreak tokenKind = tokenLineBreak
	// TokenParagraphBreak represents the space between paragraphs.
	TokenParagraphBreak tokenKind = tokenParagraphBreak
	// TokenPageBreak represents the boundary between pages.
	TokenPageBreak tokenKind = tokenPageBreak
)

// IsBreak reports whether the token is some kind of line break.
func (t Token) IsBreak() bool {
	switch t.Kind {
	case tokenLineBreak, tokenParagraphBreak, tokenPageBreak:
		return true
	}
	return false
}

// IsWhiteSpace reports whether the token renders as white space.
func (t Token) IsWhiteSpace() bool {
	return t.Kind == tokenSpace || t.IsBreak()
}

// Metadata is one frontmatter field of a document.
type Metadata struct {
	Kind  metadataKind
	Value string
}

type metadataKind uint8

// MetadataKind is the exported alias of metadataKind.
type MetadataKind = metadataKind

const (
	metadataTitle metadataKind = iota
	metadataAuthor
)

const (
	// MetadataTitle is the document title from the "title: " frontmatter line.
	MetadataTitle metadataKind = metadataTitle
	// MetadataAuthor is the document author from the "author: " frontmatter line.
	MetadataAuthor metadataKind = metadataAuthor
)

// TokenList holds the ordered result of tokenizing one document: frontmatter
// metadata in encounter order followed by the body token sequence.
//
// A TokenList is immutable after construction and safe to share between the
// tokenizer output and any number of exporters.
type TokenList struct {
	metadata []Metadata
	tokens   []Token
}

// NewTokenList creates a TokenList. The list takes ownership of both slices;
// callers must not modify them afterwards.
func NewTokenList(metadata []Metadata, tokens []Token) *TokenList {
	return &TokenList{metadata: metadata, tokens: tokens}
}

// Metadata returns the frontmatter fields in encounter order. The returned
// slice is shared and must not be modified.
func (l *TokenList) Metadata() []Metadata {
	return l.metadata
}

// Tokens returns the body tokens in source order. The returned slice is
// shared and must not be modified.
func (l *TokenList) Tokens() []Token {
	return l.tokens
}
