package upstream

import (
	"bytes"
	"testing"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

func TestDecodeBodyUTF8Passthrough(t *testing.T) {
	body := []byte(`{"a":"b"}`)

	for _, ct := range []string{"", "application/json", "application/json; charset=utf-8"} {
		out, err := decodeBody(body, ct)
		if err != nil {
			t.Fatalf("content type %q: %v", ct, err)
		}
		if !bytes.Equal(out, body) {
			t.Errorf("content type %q: body changed: %s", ct, out)
		}
	}
}

func TestDecodeBodyStripsUTF8BOM(t *testing.T) {
	body := append([]byte{0xEF, 0xBB, 0xBF}, []byte(`{}`)...)

	out, err := decodeBody(body, "application/json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(out, []byte(`{}`)) {
		t.Errorf("BOM not stripped: %v", out)
	}
}

func TestDecodeBodyWindows1255(t *testing.T) {
	src := `{"v":"בדיקה"}`
	encoded, err := charmap.Windows1255.NewEncoder().Bytes([]byte(src))
	if err != nil {
		t.Fatalf("encode fixture: %v", err)
	}

	out, err := decodeBody(encoded, "application/json; charset=windows-1255")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(out) != src {
		t.Errorf("expected %s, got %s", src, out)
	}
}

func TestDecodeBodyUTF16WithBOM(t *testing.T) {
	src := `{"v":"hello"}`
	enc := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)
	encoded, err := enc.NewEncoder().Bytes([]byte(src))
	if err != nil {
		t.Fatalf("encode fixture: %v", err)
	}

	// No charset declared; the BOM alone should trigger decoding.
	out, err := decodeBody(encoded, "application/json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if string(out) != src {
		t.Errorf("expected %s, got %s", src, out)
	}
}

func TestDecodeBodyUnknownCharsetPassthrough(t *testing.T) {
	body := []byte(`{"a":1}`)

	out, err := decodeBody(body, "application/json; charset=koi8-r")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(out, body) {
		t.Errorf("unknown charset should pass through, got %s", out)
	}
}
