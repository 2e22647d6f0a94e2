package navbar

import (
	"net/http/httptest"
	"testing"
)

func TestBuffered(t *testing.T) {
	rec := httptest.NewRecorder()
	bw := newBuffered(rec)
	if _, err := bw.Write([]byte("hello ")); err != nil {
		t.Fatal(err)
	}
	if _, err := bw.Write([]byte("world")); err != nil {
		t.Fatal(err)
	}
	if rec.Body.Len() != 0 {
		t.Fatalf("expected nothing written before close, got %q", rec.Body.String())
	}
	if err := bw.close(); err != nil {
		t.Fatal(err)
	}
	if rec.Body.String() != "hello world" {
		t.Errorf("expected %q, got %q", "hello world", rec.Body.String())
	}
}

func TestBufferedDiscard(t *testing.T) {
	rec := httptest.NewRecorder()
	bw := newBuffered(rec)
	_, _ = bw.Write([]byte("partial"))
	bw.discard()
	if rec.Body.Len() != 0 {
		t.Errorf("expected discarded body, got %q", rec.Body.String())
	}
}
