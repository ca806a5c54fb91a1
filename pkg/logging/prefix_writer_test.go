package logging

import (
	"bytes"
	"testing"
)

func TestPrefixWriter(t *testing.T) {
	var out bytes.Buffer
	pw := NewPrefixWriter("💡 ", &out)

	if _, err := pw.Write([]byte("first\nsecond\n")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	want := "💡 first\n💡 second\n"
	if out.String() != want {
		t.Errorf("got %q, want %q", out.String(), want)
	}
}

func TestPrefixWriterBuffersPartialLines(t *testing.T) {
	var out bytes.Buffer
	pw := NewPrefixWriter("> ", &out)

	pw.Write([]byte("partial"))
	if out.Len() != 0 {
		t.Errorf("partial line flushed early: %q", out.String())
	}

	pw.Write([]byte(" line\nnext"))
	if out.String() != "> partial line\n" {
		t.Errorf("got %q", out.String())
	}

	pw.Write([]byte("\n"))
	if out.String() != "> partial line\n> next\n" {
		t.Errorf("got %q", out.String())
	}
}
