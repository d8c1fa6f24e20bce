package stendhal

import (
	"bufio"
	"io"
	"strings"
)

// Sink receives rendered output text from the exporter.
type Sink interface {
	WriteString(s string) error
	Flush() error
}

// NewWriterSink returns a Sink that buffers writes to w. Flush must be
// called to guarantee the buffered output reaches w.
func NewWriterSink(w io.Writer) Sink {
	return &writerSink{bw: bufio.NewWriter(w)}
}

type writerSink struct {
	bw *bufio.Writer
}

func (s *writerSink) WriteString(text string) error {
	_, err := s.bw.WriteString(text)
	return err
}

func (s *writerSink) Flush() error {
	return s.bw.Flush()
}

// builderSink collects output in memory for the string export path.
type builderSink struct {
	b *strings.Builder
}

func (s builderSink) WriteString(text string) error {
	s.b.WriteString(text)
	return nil
}

func (s builderSink) Flush() error {
	return nil
}
