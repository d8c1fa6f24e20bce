package stendhal

import (
	"errors"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func text(s string) Token  { return Token{Kind: tokenText, Text: s} }
func style(f Format) Token { return Token{Kind: tokenStyleMark, Format: f} }

var (
	space     = Token{Kind: tokenSpace}
	lineBreak = Token{Kind: tokenLineBreak}
	paraBreak = Token{Kind: tokenParagraphBreak}
	pageBreak = Token{Kind: tokenPageBreak}
)

func TestTokenizeLine(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		line string
		want []Token
	}{
		{
			name: "page break prefix",
			line: "#- page start",
			want: []Token{pageBreak, text("page"), space, text("start"), lineBreak},
		},
		{
			name: "empty line",
			line: "",
			want: []Token{paraBreak},
		},
		{
			name: "color escape auto reset",
			line: "Some §cRED text",
			want: []Token{
				text("Some"), space, style(Red), text("RED"), space, text("text"),
				style(Reset), lineBreak,
			},
		},
		{
			name: "explicit reset",
			line: "Italic:§o text §rreset",
			want: []Token{
				text("Italic:"), style(Italic), space, text("text"), space,
				style(Reset), text("reset"), lineBreak,
			},
		},
		{
			name: "page prefix only counts at line start",
			line: "Not a #- new page",
			want: []Token{
				text("Not"), space, text("a"), space, text("#-"), space,
				text("new"), space, text("page"), lineBreak,
			},
		},
		{
			name: "consecutive spaces are preserved",
			line: "a   b",
			want: []Token{text("a"), space, space, space, text("b"), lineBreak},
		},
		{
			name: "trailing style gets synthetic reset",
			line: "§lbold",
			want: []Token{style(Bold), text("bold"), style(Reset), lineBreak},
		},
		{
			name: "explicit trailing reset is not doubled",
			line: "§lbold§r",
			want: []Token{style(Bold), text("bold"), style(Reset), lineBreak},
		},
		{
			name: "stacked escapes",
			line: "§c§lX",
			want: []Token{style(Red), style(Bold), text("X"), style(Reset), lineBreak},
		},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			var got []Token
			if err := tokenizeLine(&got, tc.line); err != nil {
				t.Fatalf("tokenizeLine(%q): %v", tc.line, err)
			}
			if diff := cmp.Diff(tc.want, got); diff != "" {
				t.Fatalf("token mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestTokenizeLineMissingFormatCode(t *testing.T) {
	t.Parallel()
	var out []Token
	if err := tokenizeLine(&out, "§"); !errors.Is(err, ErrMissingFormatCode) {
		t.Fatalf("expected ErrMissingFormatCode, got %v", err)
	}
}

func TestTokenizeLineNoSuchFormatCode(t *testing.T) {
	t.Parallel()
	tests := []struct {
		line string
		code rune
	}{
		{"§z", 'z'},
		{"bad §Z code", 'Z'},
		{"§ 0", ' '},
	}
	for _, tc := range tests {
		var out []Token
		err := tokenizeLine(&out, tc.line)
		var nsc NoSuchFormatCodeError
		if !errors.As(err, &nsc) {
			t.Fatalf("tokenizeLine(%q): expected NoSuchFormatCodeError, got %v", tc.line, err)
		}
		if nsc.Code != tc.code {
			t.Fatalf("tokenizeLine(%q): expected code %q, got %q", tc.line, tc.code, nsc.Code)
		}
	}
}

func TestTokenizeDocument(t *testing.T) {
	t.Parallel()
	input := "title: A Book\nauthor: Someone\npages:\n#- First\n\nlast line"
	list, err := TokenizeString(input)
	if err != nil {
		t.Fatalf("TokenizeString: %v", err)
	}
	wantMeta := []Metadata{
		{Kind: MetadataTitle, Value: "A Book"},
		{Kind: MetadataAuthor, Value: "Someone"},
	}
	if diff := cmp.Diff(wantMeta, list.Metadata()); diff != "" {
		t.Fatalf("metadata mismatch (-want +got):\n%s", diff)
	}
	wantTokens := []Token{
		pageBreak, text("First"), lineBreak,
		paraBreak,
		text("last"), space, text("line"), lineBreak,
	}
	if diff := cmp.Diff(wantTokens, list.Tokens()); diff != "" {
		t.Fatalf("token mismatch (-want +got):\n%s", diff)
	}
}

func TestTokenizeErrorsAbortWholeConversion(t *testing.T) {
	t.Parallel()
	input := "title: t\nauthor: a\npages:\ngood line\nbad §z line\nnever reached"
	_, err := TokenizeString(input)
	var nsc NoSuchFormatCodeError
	if !errors.As(err, &nsc) || nsc.Code != 'z' {
		t.Fatalf("expected NoSuchFormatCodeError('z'), got %v", err)
	}
}

func TestTokenizeNilReader(t *testing.T) {
	t.Parallel()
	if _, err := Tokenize(TokenizeRequest{}); err == nil {
		t.Fatal("expected error for nil reader")
	}
}

func TestTokenizeReaderMatchesString(t *testing.T) {
	t.Parallel()
	input := "title: t\nauthor: a\npages:\nSome §cRED text\n"
	fromString, err := TokenizeString(input)
	if err != nil {
		t.Fatalf("TokenizeString: %v", err)
	}
	fromReader, err := Tokenize(TokenizeRequest{Reader: strings.NewReader(input)})
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if diff := cmp.Diff(fromString.Tokens(), fromReader.Tokens()); diff != "" {
		t.Fatalf("token mismatch (-string +reader):\n%s", diff)
	}
}
