package registry

import "strings"

// Access is a bitmask of key access rights, using the host registry's
// numeric values. A handle opened with a given mask may only perform the
// operations those bits grant.
type Access uint32

const (
	AccessQueryValue       Access = 0x0001
	AccessSetValue         Access = 0x0002
	AccessCreateSubKey     Access = 0x0004
	AccessEnumerateSubKeys Access = 0x0008
	AccessNotify           Access = 0x0010
	AccessCreateLink       Access = 0x0020
	AccessWow6464Key       Access = 0x0100
	AccessWow6432Key       Access = 0x0200

	// Composite masks as defined by the host.
	AccessWrite   Access = 0x20006
	AccessRead    Access = 0x20019
	AccessExecute Access = 0x20019
	AccessAll     Access = 0xF003F
)

// Has reports whether a grants every bit in bits.
func (a Access) Has(bits Access) bool { return a&bits == bits }

var accessNames = []struct {
	bit  Access
	name string
}{
	{AccessQueryValue, "QueryValue"},
	{AccessSetValue, "SetValue"},
	{AccessCreateSubKey, "CreateSubKey"},
	{AccessEnumerateSubKeys, "EnumerateSubKeys"},
	{AccessNotify, "Notify"},
	{AccessCreateLink, "CreateLink"},
	{AccessWow6464Key, "Wow6464Key"},
	{AccessWow6432Key, "Wow6432Key"},
}

// String renders the individual rights, e.g. "QueryValue|SetValue".
func (a Access) String() string {
	if a == AccessAll {
		return "AllAccess"
	}
	var parts []string
	for _, n := range accessNames {
		if a.Has(n.bit) {
			parts = append(parts, n.name)
		}
	}
	if len(parts) == 0 {
		return "None"
	}
	return strings.Join(parts, "|")
}
