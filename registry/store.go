package registry

// Store is the handle-based key/value collaborator the codec sits on top
// of: one open key in a hierarchical store. Implementations wrap a host
// registry handle (winstore) or an in-memory tree (memstore).
//
// A Store deals exclusively in raw (type tag, byte buffer) pairs; all
// interpretation of the bytes happens above it in the value package. Paths
// are backslash-separated and compared case-insensitively.
//
// Every method reports failure as a *Error so callers can branch on
// ErrKind with errors.Is.
type Store interface {
	// QueryValue returns the type tag and raw payload of the named value.
	// The returned buffer is owned by the caller.
	QueryValue(name string) (typ uint32, data []byte, err error)

	// SetValue writes the named value's type tag and raw payload,
	// replacing any existing value of that name.
	SetValue(name string, typ uint32, data []byte) error

	// DeleteValue removes the named value.
	DeleteValue(name string) error

	// ValueNames lists the names of the values under this key.
	ValueNames() ([]string, error)

	// SubkeyNames lists the names of the immediate subkeys.
	SubkeyNames() ([]string, error)

	// OpenKey opens the subkey at path with the given access rights.
	// An empty path reopens this key.
	OpenKey(path string, a Access) (Store, error)

	// CreateKey opens the subkey at path, creating it and any missing
	// intermediate keys first.
	CreateKey(path string, a Access) (Store, error)

	// DeleteKey removes the subkey at path. The subkey must be empty;
	// recursive deletion is a Key-level operation.
	DeleteKey(path string) error

	// Close releases the handle. Further calls on a closed Store fail
	// with ErrInvalid.
	Close() error
}
