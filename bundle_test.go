package hxui

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/rs/zerolog"
)

func testRegistry(t *testing.T) *Registry {
	t.Helper()
	reg := NewRegistry()
	reg.Add(testEntry("button", "button"), testEntry("alert", "alert"))
	return reg
}

func testEncoder(t *testing.T, key string) *Encoder {
	t.Helper()
	enc, err := NewEncoder([]byte(key))
	if err != nil {
		t.Fatalf("NewEncoder() error = %v", err)
	}
	return enc
}

func TestBundleRoundtrip(t *testing.T) {
	for _, sensitive := range []bool{false, true} {
		name := "signed"
		if sensitive {
			name = "encrypted"
		}
		t.Run(name, func(t *testing.T) {
			enc := testEncoder(t, "registry-secret")
			data, err := testRegistry(t).Bundle(enc, sensitive)
			if err != nil {
				t.Fatalf("Bundle() error = %v", err)
			}

			loaded, err := LoadBundle(enc, data, sensitive)
			if err != nil {
				t.Fatalf("LoadBundle() error = %v", err)
			}
			if loaded.Len() != 2 {
				t.Fatalf("Len() = %d, want 2", loaded.Len())
			}

			e, err := loaded.Get("button")
			if err != nil {
				t.Fatal(err)
			}
			if len(e.Files) != 1 || e.Files[0].Name != "button.go" || !bytes.Equal(e.Files[0].Content, []byte("package ui\n")) {
				t.Errorf("Files = %+v", e.Files)
			}
			if len(e.Dependencies) != 1 || e.Dependencies[0] != "github.com/a-h/templ" {
				t.Errorf("Dependencies = %v", e.Dependencies)
			}
			if e.Schemas != nil {
				t.Error("schemas are not carried in bundles")
			}
		})
	}
}

func TestBundleTampered(t *testing.T) {
	enc := testEncoder(t, "registry-secret")
	data, err := testRegistry(t).Bundle(enc, false)
	if err != nil {
		t.Fatal(err)
	}

	payload, sig, ok := strings.Cut(data, ".")
	if !ok {
		t.Fatalf("signed bundle has no signature: %q", data)
	}
	other, err := NewRegistry().Bundle(enc, false)
	if err != nil {
		t.Fatal(err)
	}
	_, otherSig, _ := strings.Cut(other, ".")

	_, err = OpenBundle(enc, payload+"."+otherSig, false)
	if !errors.Is(err, ErrSignatureInvalid) {
		t.Errorf("swapped signature error = %v, want ErrSignatureInvalid", err)
	}
	if !IsIntegrityError(err) {
		t.Error("swapped signature should be an integrity error")
	}

	_, err = OpenBundle(testEncoder(t, "another-secret"), payload+"."+sig, false)
	if !errors.Is(err, ErrSignatureInvalid) {
		t.Errorf("wrong key error = %v, want ErrSignatureInvalid", err)
	}
}

func TestBundleDecryptFailed(t *testing.T) {
	data, err := testRegistry(t).Bundle(testEncoder(t, "registry-secret"), true)
	if err != nil {
		t.Fatal(err)
	}
	_, err = OpenBundle(testEncoder(t, "another-secret"), data, true)
	if !errors.Is(err, ErrDecryptFailed) {
		t.Errorf("OpenBundle() error = %v, want ErrDecryptFailed", err)
	}
}

func TestOpenBundleInvalid(t *testing.T) {
	enc := testEncoder(t, "registry-secret")
	tests := []struct {
		name string
		data string
	}{
		{"empty", ""},
		{"not base64", "!!!.???"},
		{"missing signature", "abc"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := OpenBundle(enc, tt.data, false)
			if err == nil {
				t.Fatal("OpenBundle() should fail")
			}
			if !errors.Is(err, ErrInvalidFormat) && !errors.Is(err, ErrSignatureInvalid) {
				t.Errorf("OpenBundle() error = %v", err)
			}
		})
	}
}

func TestOpenBundleVersion(t *testing.T) {
	enc := testEncoder(t, "registry-secret")
	data, err := enc.Encode(bundle{Version: bundleVersion + 1}, false)
	if err != nil {
		t.Fatal(err)
	}
	_, err = OpenBundle(enc, data, false)
	if !errors.Is(err, ErrInvalidFormat) {
		t.Errorf("OpenBundle() error = %v, want ErrInvalidFormat", err)
	}
}

func TestLoadBundleInvalidEntries(t *testing.T) {
	enc := testEncoder(t, "registry-secret")
	tests := []struct {
		name    string
		entries []Entry
	}{
		{"duplicate", []Entry{testEntry("a"), testEntry("a")}},
		{"unnamed", []Entry{{Name: ""}}},
		{"unnamed after valid", []Entry{testEntry("a"), {Description: "no name"}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := enc.Encode(bundle{Version: bundleVersion, Entries: tt.entries}, false)
			if err != nil {
				t.Fatal(err)
			}
			if _, err := OpenBundle(enc, data, false); !errors.Is(err, ErrInvalidFormat) {
				t.Errorf("OpenBundle() error = %v, want ErrInvalidFormat", err)
			}
			if _, err := LoadBundle(enc, data, false); !errors.Is(err, ErrInvalidFormat) {
				t.Errorf("LoadBundle() error = %v, want ErrInvalidFormat", err)
			}
		})
	}
}

func TestBundleLogs(t *testing.T) {
	var buf bytes.Buffer
	reg := NewRegistry(WithLogger(zerolog.New(&buf)))
	reg.Add(testEntry("button"))

	if _, err := reg.Bundle(testEncoder(t, "k"), true); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), `"encrypted":true`) {
		t.Errorf("log output = %s", buf.String())
	}
}
