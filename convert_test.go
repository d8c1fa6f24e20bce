package stendhal

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

const sampleDocument = `title: crafty_novels
author: RemasteredArch
pages:
#- This is the start of the page
First line
#- New Page
Not a #- new page
 #- also not a new page



Lots of paragraph breaks
Some §cRED line breaks
Italic:§o text §rreset
   lots    of   spaces
just one space
<div>some HTML</div>
&gt; <== not an <
& ampersands &
last line`

func TestConvertDocument(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	err := Convert(ConvertRequest{
		Reader: strings.NewReader(sampleDocument),
		Writer: &buf,
	})
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	out := buf.String()

	for _, want := range []string{
		"<title>crafty_novels</title>",
		`<meta name="author" content="RemasteredArch" />`,
		"<hr />This is the start of the page<br />",
		"<hr />New Page<br />",
		"Not a #- new page<br />",
		" #- also not a new page<br />",
		"<br /><br /><br />",
		"Some <span style='color:#FF5555'>RED line breaks</span><br />",
		"Italic:<i> text </i>reset<br />",
		"   lots    of   spaces<br />",
		"&lt;div&gt;some HTML&lt;/div&gt;<br />",
		"&amp;gt; &lt;== not an &lt;<br />",
		"&amp; ampersands &amp;<br />",
		"last line<br /></article></body></html>",
	} {
		if !strings.Contains(out, want) {
			t.Fatalf("missing %q in output:\n%s", want, out)
		}
	}
}

func TestConvertNilArguments(t *testing.T) {
	t.Parallel()
	if err := Convert(ConvertRequest{Writer: &bytes.Buffer{}}); err == nil {
		t.Fatal("expected error for nil reader")
	}
	if err := Convert(ConvertRequest{Reader: strings.NewReader("")}); err == nil {
		t.Fatal("expected error for nil writer")
	}
}

func TestConvertMalformedEscapeAborts(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	err := Convert(ConvertRequest{
		Reader: strings.NewReader("title: t\nauthor: a\npages:\nbad §z\n"),
		Writer: &buf,
	})
	var nsc NoSuchFormatCodeError
	if !errors.As(err, &nsc) || nsc.Code != 'z' {
		t.Fatalf("expected NoSuchFormatCodeError('z'), got %v", err)
	}
}

func TestConvertValidationRejectsBinary(t *testing.T) {
	t.Parallel()
	input := "title: t\nauthor: a\npages:\nbody\x00line\n"
	var buf bytes.Buffer
	err := Convert(ConvertRequest{
		Reader:  strings.NewReader(input),
		Writer:  &buf,
		Options: []Option{WithInputValidation(true)},
	})
	if !errors.Is(err, ErrBinaryInput) {
		t.Fatalf("expected ErrBinaryInput, got %v", err)
	}
}

func TestHTTPConvert(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("title: t\nauthor: a\npages:\nhi\n"))
	}))
	defer srv.Close()

	var buf bytes.Buffer
	err := HTTPConvert(context.Background(), HTTPConvertRequest{
		URL:    srv.URL,
		Client: srv.Client(),
		Writer: &buf,
	})
	if err != nil {
		t.Fatalf("HTTPConvert: %v", err)
	}
	if !strings.Contains(buf.String(), "hi<br />") {
		t.Fatalf("unexpected output: %q", buf.String())
	}
}

func TestHTTPConvertRejectsBadStatus(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))
	defer srv.Close()

	var buf bytes.Buffer
	err := HTTPConvert(context.Background(), HTTPConvertRequest{
		URL:    srv.URL,
		Client: srv.Client(),
		Writer: &buf,
	})
	if err == nil {
		t.Fatal("expected error for 404 response")
	}
}

func TestHTTPConvertRejectsUnsupportedScheme(t *testing.T) {
	t.Parallel()
	var buf bytes.Buffer
	err := HTTPConvert(context.Background(), HTTPConvertRequest{
		URL:    "ftp://example.com/book.stendhal",
		Writer: &buf,
	})
	if err == nil {
		t.Fatal("expected error for unsupported scheme")
	}
}

func BenchmarkConvert(b *testing.B) {
	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		if _, err := ConvertString(sampleDocument); err != nil {
			b.Fatal(err)
		}
	}
}
