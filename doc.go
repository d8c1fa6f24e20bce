// Package stendhal converts the Stendhal book export format to HTML.
//
// Stendhal is the line-oriented plain-text format produced by Minecraft
// book-and-quill export mods: a fixed three-line frontmatter (title, author,
// and a pages marker) followed by body lines that may carry "#- " page
// prefixes and §-escaped inline style codes.
//
// Conversion runs in two passes: Tokenize turns the source into an ordered
// token sequence, validating every escape against the fixed format-code
// table, and Export renders that sequence as a single HTML document, keeping
// a stack of open style elements so output nesting is always well formed.
//
// Core properties:
//   - Line-oriented tokenizing with typed errors for malformed escapes
//   - Every line closes its own styles; no style state crosses lines
//   - Per-character HTML entity encoding of text runs
//   - Byte-identical output whether written to a sink or built as a string
//
// Example:
//
//	reader := strings.NewReader("title: t\nauthor: a\npages:\nSome §cRED text\n")
//	err := stendhal.Convert(stendhal.ConvertRequest{
//		Reader: reader,
//		Writer: os.Stdout,
//	})
//	if err != nil {
//		log.Fatal(err)
//	}
package stendhal
