package hxui

import "fmt"

// bundleVersion is bumped when the bundle payload changes shape.
const bundleVersion = 1

type bundle struct {
	Version int     `msgpack:"v"`
	Entries []Entry `msgpack:"entries"`
}

// Bundle seals every registered entry into a distributable string.
//
// By default bundles are signed: readable by anyone, but any change is
// detected by OpenBundle. Pass sensitive to encrypt private registries.
func (reg *Registry) Bundle(enc *Encoder, sensitive bool) (string, error) {
	entries := reg.List()
	out, err := enc.Encode(bundle{Version: bundleVersion, Entries: entries}, sensitive)
	if err != nil {
		return "", fmt.Errorf("hxui: bundle: %w", err)
	}
	reg.log.Info().
		Int("components", len(entries)).
		Bool("encrypted", sensitive).
		Msg("sealed registry bundle")
	return out, nil
}

// OpenBundle verifies (or decrypts) a bundle and returns its entries.
// Entries from a bundle carry files and metadata but no schemas. Unnamed
// or duplicate entries make the bundle invalid.
func OpenBundle(enc *Encoder, data string, sensitive bool) ([]Entry, error) {
	var b bundle
	if err := enc.Decode(data, sensitive, &b); err != nil {
		return nil, wrapEncodingError(err)
	}
	if b.Version != bundleVersion {
		return nil, fmt.Errorf("%w: unsupported bundle version %d", ErrInvalidFormat, b.Version)
	}
	seen := make(map[string]bool, len(b.Entries))
	for _, e := range b.Entries {
		if e.Name == "" {
			return nil, fmt.Errorf("%w: entry without a name", ErrInvalidFormat)
		}
		if seen[e.Name] {
			return nil, fmt.Errorf("%w: duplicate entry %q", ErrInvalidFormat, e.Name)
		}
		seen[e.Name] = true
	}
	return b.Entries, nil
}

// LoadBundle opens a bundle and adds its entries to a new registry.
func LoadBundle(enc *Encoder, data string, sensitive bool, opts ...Option) (*Registry, error) {
	entries, err := OpenBundle(enc, data, sensitive)
	if err != nil {
		return nil, err
	}
	reg := NewRegistry(opts...)
	reg.Add(entries...)
	return reg, nil
}
