package sink

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"testing"
)

func TestWriterSink(t *testing.T) {
	var buf bytes.Buffer
	s := NewWriterSink(&buf)
	ctx := context.Background()

	if err := s.Write(ctx, []byte("hello ")); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "hello " {
		t.Errorf("write-through expected before Flush, got %q", buf.String())
	}
	if err := s.Write(ctx, []byte("world")); err != nil {
		t.Fatal(err)
	}
	if err := s.Flush(ctx); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "hello world" || s.Written() != 11 {
		t.Errorf("got %q (%d bytes)", buf.String(), s.Written())
	}
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }

func TestWriterSink_Error(t *testing.T) {
	s := NewWriterSink(failingWriter{})
	err := s.Write(context.Background(), []byte("x"))
	if err == nil || !strings.Contains(err.Error(), "disk full") {
		t.Errorf("Write() error = %v", err)
	}
}

func TestWriterSink_Canceled(t *testing.T) {
	var buf bytes.Buffer
	s := NewWriterSink(&buf)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if err := s.Write(ctx, []byte("x")); !errors.Is(err, context.Canceled) {
		t.Errorf("Write() error = %v, want context.Canceled", err)
	}
	if buf.Len() != 0 {
		t.Error("nothing should be written after cancellation")
	}
}

func TestMemorySink(t *testing.T) {
	s := NewMemorySink()
	ctx := context.Background()

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Write(ctx, []byte("ab"))
		}()
	}
	wg.Wait()

	if got := s.String(); got != strings.Repeat("ab", 10) {
		t.Errorf("String() = %q", got)
	}

	if err := s.Flush(ctx); err != nil {
		t.Fatal(err)
	}
	if !s.Flushed() {
		t.Error("Flushed() = false after Flush")
	}
	if err := s.Write(ctx, []byte("late")); err == nil {
		t.Error("Write() after Flush should fail")
	}

	b := s.Bytes()
	b[0] = 'X'
	if s.String()[0] == 'X' {
		t.Error("Bytes() must return a copy")
	}

	s.Reset()
	if s.String() != "" || s.Flushed() {
		t.Error("Reset() should clear content and flushed state")
	}
}

func TestGoImportsSink(t *testing.T) {
	mem := NewMemorySink()
	s := NewGoImportsSink(mem, "messages.go")
	w := Writer(context.Background(), s)

	fmt.Fprint(w, "package messages\n\ntype Event struct {\nSeq int64\nBody    *Body\n}\n")
	fmt.Fprint(w, "func (e *Event) String() string { return fmt.Sprint(e.Seq) }\n")

	if mem.String() != "" {
		t.Fatal("nothing should reach the next sink before Flush")
	}
	if err := s.Flush(context.Background()); err != nil {
		t.Fatalf("Flush() error = %v", err)
	}

	got := mem.String()
	for _, want := range []string{`import "fmt"`, "\tSeq  int64\n", "\tBody *Body\n"} {
		if !strings.Contains(got, want) {
			t.Errorf("formatted output missing %q:\n%s", want, got)
		}
	}
	if !mem.Flushed() {
		t.Error("next sink should be flushed")
	}
}

func TestGoImportsSink_InvalidSource(t *testing.T) {
	mem := NewMemorySink()
	s := NewGoImportsSink(mem, "messages.go")
	_ = s.Write(context.Background(), []byte("package messages\n\ntype {\n"))

	err := s.Flush(context.Background())
	if err == nil || !strings.Contains(err.Error(), "goimports") {
		t.Errorf("Flush() error = %v, want goimports error", err)
	}
	if mem.String() != "" {
		t.Error("invalid source must not reach the next sink")
	}
}
