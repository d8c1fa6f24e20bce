package stendhal

import (
	"bufio"
	"strings"
)

const (
	titlePrefix  = "title: "
	authorPrefix = "author: "
	pagesMarker  = "pages:"
)

// parseFrontmatter consumes the fixed three-line header from sc and returns
// the document metadata in encounter order: title, then author. The third
// line is the pages marker and contributes no metadata.
func parseFrontmatter(sc *bufio.Scanner) ([]Metadata, error) {
	title, err := frontmatterField(sc, titlePrefix)
	if err != nil {
		return nil, err
	}
	author, err := frontmatterField(sc, authorPrefix)
	if err != nil {
		return nil, err
	}
	if _, err := frontmatterField(sc, pagesMarker); err != nil {
		return nil, err
	}
	return []Metadata{
		{Kind: metadataTitle, Value: title},
		{Kind: metadataAuthor, Value: author},
	}, nil
}

// frontmatterField reads the next line and strips the required prefix.
func frontmatterField(sc *bufio.Scanner, prefix string) (string, error) {
	if !sc.Scan() {
		if err := sc.Err(); err != nil {
			return "", err
		}
		return "", ErrUnexpectedEOF
	}
	rest, ok := strings.CutPrefix(sc.Text(), prefix)
	if !ok {
		return "", ErrMissingFrontmatter
	}
	return rest, nil
}
