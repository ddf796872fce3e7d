// Package registry provides typed access to a hierarchical key/value store.
//
// The Store interface is the boundary to the underlying host registry (or
// a test double); Key composes a Store with the value codec so callers
// work with decoded value.Data instead of raw tag/byte pairs.
package registry

import (
	"fmt"

	"github.com/joshuapare/regkit/value"
)

// NamedValue pairs a value name with its decoded payload.
type NamedValue struct {
	Name string
	Data value.Data
}

// Key provides typed read, write and enumeration over one open store
// handle. The zero Key is not usable; obtain one with Wrap.
type Key struct {
	st Store
}

// Wrap returns a Key over an open store handle. The Key assumes ownership;
// closing the Key closes the handle.
func Wrap(st Store) *Key { return &Key{st: st} }

// Store returns the underlying handle, for callers that need raw access.
func (k *Key) Store() Store { return k.st }

// Open opens the subkey at path with the given access rights.
func (k *Key) Open(path string, a Access) (*Key, error) {
	st, err := k.st.OpenKey(path, a)
	if err != nil {
		return nil, err
	}
	return Wrap(st), nil
}

// Create opens the subkey at path, creating missing keys along the way.
func (k *Key) Create(path string, a Access) (*Key, error) {
	st, err := k.st.CreateKey(path, a)
	if err != nil {
		return nil, err
	}
	return Wrap(st), nil
}

// Value reads and decodes the named value.
func (k *Key) Value(name string) (value.Data, error) {
	typ, raw, err := k.st.QueryValue(name)
	if err != nil {
		return value.Data{}, err
	}
	d, err := value.Decode(typ, raw)
	if err != nil {
		return value.Data{}, fmt.Errorf("value %q: %w", name, err)
	}
	return d, nil
}

// SetValue encodes d and writes it under name.
func (k *Key) SetValue(name string, d value.Data) error {
	typ, raw := d.Encode()
	return k.st.SetValue(name, typ, raw)
}

// DeleteValue removes the named value.
func (k *Key) DeleteValue(name string) error {
	return k.st.DeleteValue(name)
}

// Values enumerates and decodes every value under the key. Enumeration
// failures are returned, never panicked, and a single undecodable value
// fails the whole listing rather than being silently skipped.
func (k *Key) Values() ([]NamedValue, error) {
	names, err := k.st.ValueNames()
	if err != nil {
		return nil, err
	}
	out := make([]NamedValue, 0, len(names))
	for _, name := range names {
		d, err := k.Value(name)
		if err != nil {
			return nil, err
		}
		out = append(out, NamedValue{Name: name, Data: d})
	}
	return out, nil
}

// Subkeys lists the names of the immediate subkeys.
func (k *Key) Subkeys() ([]string, error) {
	return k.st.SubkeyNames()
}

// Delete removes the subkey at path. With recursive set, its subkeys are
// deleted depth-first; otherwise the subkey must be empty.
func (k *Key) Delete(path string, recursive bool) error {
	if !recursive {
		return k.st.DeleteKey(path)
	}
	sub, err := k.Open(path, AccessAll)
	if err != nil {
		return err
	}
	names, err := sub.Subkeys()
	if err != nil {
		sub.Close()
		return err
	}
	for _, name := range names {
		if err := sub.Delete(name, true); err != nil {
			sub.Close()
			return err
		}
	}
	if err := sub.Close(); err != nil {
		return err
	}
	return k.st.DeleteKey(path)
}

// Close releases the underlying handle.
func (k *Key) Close() error { return k.st.Close() }
