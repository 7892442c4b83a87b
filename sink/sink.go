// Package sink provides output destinations for rendered text.
//
// A run writes to exactly one sink. Writes are incremental; Flush marks the
// end of output and lets buffering sinks emit what they hold.
package sink

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"

	"golang.org/x/tools/imports"
)

// OutputSink receives rendered output.
type OutputSink interface {
	// Write appends p to the output.
	Write(ctx context.Context, p []byte) error

	// Flush finishes the output. No writes may follow.
	Flush(ctx context.Context) error
}

// WriterSink writes through to an io.Writer such as os.Stdout.
type WriterSink struct {
	w io.Writer
	n int64
}

// NewWriterSink creates a sink writing to w.
func NewWriterSink(w io.Writer) *WriterSink {
	return &WriterSink{w: w}
}

// Write writes p to the underlying writer.
func (s *WriterSink) Write(ctx context.Context, p []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	n, err := s.w.Write(p)
	s.n += int64(n)
	if err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// Flush is a no-op; output has already been written.
func (s *WriterSink) Flush(ctx context.Context) error {
	return ctx.Err()
}

// Written returns the number of bytes written so far.
func (s *WriterSink) Written() int64 { return s.n }

// MemorySink stores output in memory.
// All operations are thread-safe.
type MemorySink struct {
	mu      sync.RWMutex
	buf     bytes.Buffer
	flushed bool
}

// NewMemorySink creates a new MemorySink.
func NewMemorySink() *MemorySink {
	return &MemorySink{}
}

// Write appends p to the in-memory buffer.
func (s *MemorySink) Write(ctx context.Context, p []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.flushed {
		return fmt.Errorf("write after flush")
	}
	s.buf.Write(p)
	return nil
}

// Flush marks the output complete.
func (s *MemorySink) Flush(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.flushed = true
	return ctx.Err()
}

// Bytes returns a copy of everything written.
func (s *MemorySink) Bytes() []byte {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return bytes.Clone(s.buf.Bytes())
}

// String returns everything written as a string.
func (s *MemorySink) String() string {
	return string(s.Bytes())
}

// Flushed reports whether Flush has been called.
func (s *MemorySink) Flushed() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.flushed
}

// Reset clears the buffer and the flushed state.
func (s *MemorySink) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.buf.Reset()
	s.flushed = false
}

// GoImportsSink buffers Go source and, on Flush, formats it and fixes its
// imports with goimports before passing it to the next sink.
type GoImportsSink struct {
	next     OutputSink
	filename string
	buf      bytes.Buffer
}

// NewGoImportsSink creates a formatting sink in front of next.
// filename is used in error messages only.
func NewGoImportsSink(next OutputSink, filename string) *GoImportsSink {
	return &GoImportsSink{next: next, filename: filename}
}

// Write buffers p.
func (s *GoImportsSink) Write(ctx context.Context, p []byte) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	s.buf.Write(p)
	return nil
}

// Flush formats the buffered source and writes it to the next sink.
// Nothing reaches the next sink when formatting fails.
func (s *GoImportsSink) Flush(ctx context.Context) error {
	out, err := imports.Process(s.filename, s.buf.Bytes(), &imports.Options{
		Comments:  true,
		TabIndent: true,
		TabWidth:  8,
	})
	if err != nil {
		return fmt.Errorf("goimports: %w", err)
	}
	if err := s.next.Write(ctx, out); err != nil {
		return err
	}
	return s.next.Flush(ctx)
}

// Writer adapts s to io.Writer for APIs such as text/template.
func Writer(ctx context.Context, s OutputSink) io.Writer {
	return &writerFunc{ctx: ctx, sink: s}
}

type writerFunc struct {
	ctx  context.Context
	sink OutputSink
}

func (w *writerFunc) Write(p []byte) (int, error) {
	if err := w.sink.Write(w.ctx, p); err != nil {
		return 0, err
	}
	return len(p), nil
}
