// Package memstore provides an in-memory registry.Store: a hierarchical
// key/value tree with the host registry's semantics (case-insensitive
// names, per-handle access rights, raw tag+buffer values).
//
// It exists as the portable backend for tests and tooling; the codec and
// Key layer run against it exactly as they do against a live registry.
package memstore

import (
	"slices"
	"strings"
	"sync"

	"golang.org/x/text/cases"

	"github.com/joshuapare/regkit/registry"
)

// Store is an in-memory key tree. The zero value is not usable; call New.
// A Store is safe for concurrent use by multiple handles.
type Store struct {
	mu   sync.RWMutex
	root *node
}

type node struct {
	subkeys map[string]*subkey // folded name -> subkey
	values  map[string]*entry  // folded name -> value
}

type subkey struct {
	name string // original-case name
	node *node
}

type entry struct {
	name string // original-case name
	typ  uint32
	data []byte
}

func newNode() *node {
	return &node{subkeys: map[string]*subkey{}, values: map[string]*entry{}}
}

// fold canonicalizes a name for case-insensitive comparison. The host
// compares key and value names without regard to case; Unicode case
// folding covers the non-ASCII names ToLower would miss.
func fold(s string) string {
	return cases.Fold().String(s)
}

// New returns an empty store.
func New() *Store {
	return &Store{root: newNode()}
}

// Open opens the key at path (relative to the root) with the given access
// rights. An empty path opens the root key itself.
func (s *Store) Open(path string, a registry.Access) (registry.Store, error) {
	root := &handle{st: s, n: s.root, access: registry.AccessAll}
	return root.OpenKey(path, a)
}

// Create opens the key at path, creating missing keys along the way.
func (s *Store) Create(path string, a registry.Access) (registry.Store, error) {
	root := &handle{st: s, n: s.root, access: registry.AccessAll}
	return root.CreateKey(path, a)
}

// splitPath splits a backslash-separated key path into segments. An empty
// path means "this key". Empty segments (leading, trailing or doubled
// backslashes) are malformed.
func splitPath(path string) ([]string, error) {
	if path == "" {
		return nil, nil
	}
	segs := strings.Split(path, `\`)
	for _, seg := range segs {
		if seg == "" {
			return nil, &registry.Error{Kind: registry.KindInvalid, Path: path}
		}
	}
	return segs, nil
}

// handle is one open key. It implements registry.Store.
type handle struct {
	st     *Store
	n      *node
	path   string
	access registry.Access
	closed bool
}

func (h *handle) check(need registry.Access) error {
	if h.closed {
		return &registry.Error{Kind: registry.KindInvalid, Path: h.path}
	}
	if need != 0 && !h.access.Has(need) {
		return &registry.Error{Kind: registry.KindPermissionDenied, Path: h.path}
	}
	return nil
}

func (h *handle) QueryValue(name string) (uint32, []byte, error) {
	h.st.mu.RLock()
	defer h.st.mu.RUnlock()
	if err := h.check(registry.AccessQueryValue); err != nil {
		return 0, nil, err
	}
	e, ok := h.n.values[fold(name)]
	if !ok {
		return 0, nil, &registry.Error{Kind: registry.KindNotFound, Path: name}
	}
	return e.typ, slices.Clone(e.data), nil
}

func (h *handle) SetValue(name string, typ uint32, data []byte) error {
	h.st.mu.Lock()
	defer h.st.mu.Unlock()
	if err := h.check(registry.AccessSetValue); err != nil {
		return err
	}
	h.n.values[fold(name)] = &entry{name: name, typ: typ, data: slices.Clone(data)}
	return nil
}

func (h *handle) DeleteValue(name string) error {
	h.st.mu.Lock()
	defer h.st.mu.Unlock()
	if err := h.check(registry.AccessSetValue); err != nil {
		return err
	}
	key := fold(name)
	if _, ok := h.n.values[key]; !ok {
		return &registry.Error{Kind: registry.KindNotFound, Path: name}
	}
	delete(h.n.values, key)
	return nil
}

func (h *handle) ValueNames() ([]string, error) {
	h.st.mu.RLock()
	defer h.st.mu.RUnlock()
	if err := h.check(registry.AccessQueryValue); err != nil {
		return nil, err
	}
	names := make([]string, 0, len(h.n.values))
	for _, e := range h.n.values {
		names = append(names, e.name)
	}
	sortNames(names)
	return names, nil
}

func (h *handle) SubkeyNames() ([]string, error) {
	h.st.mu.RLock()
	defer h.st.mu.RUnlock()
	if err := h.check(registry.AccessEnumerateSubKeys); err != nil {
		return nil, err
	}
	names := make([]string, 0, len(h.n.subkeys))
	for _, sk := range h.n.subkeys {
		names = append(names, sk.name)
	}
	sortNames(names)
	return names, nil
}

func (h *handle) OpenKey(path string, a registry.Access) (registry.Store, error) {
	h.st.mu.RLock()
	defer h.st.mu.RUnlock()
	if err := h.check(0); err != nil {
		return nil, err
	}
	segs, err := splitPath(path)
	if err != nil {
		return nil, err
	}
	n := h.n
	for _, seg := range segs {
		sk, ok := n.subkeys[fold(seg)]
		if !ok {
			return nil, &registry.Error{Kind: registry.KindNotFound, Path: joinPath(h.path, path)}
		}
		n = sk.node
	}
	return &handle{st: h.st, n: n, path: joinPath(h.path, path), access: a}, nil
}

func (h *handle) CreateKey(path string, a registry.Access) (registry.Store, error) {
	h.st.mu.Lock()
	defer h.st.mu.Unlock()
	if err := h.check(registry.AccessCreateSubKey); err != nil {
		return nil, err
	}
	segs, err := splitPath(path)
	if err != nil {
		return nil, err
	}
	n := h.n
	for _, seg := range segs {
		key := fold(seg)
		sk, ok := n.subkeys[key]
		if !ok {
			sk = &subkey{name: seg, node: newNode()}
			n.subkeys[key] = sk
		}
		n = sk.node
	}
	return &handle{st: h.st, n: n, path: joinPath(h.path, path), access: a}, nil
}

func (h *handle) DeleteKey(path string) error {
	h.st.mu.Lock()
	defer h.st.mu.Unlock()
	if err := h.check(registry.AccessCreateSubKey); err != nil {
		return err
	}
	segs, err := splitPath(path)
	if err != nil {
		return err
	}
	if len(segs) == 0 {
		return &registry.Error{Kind: registry.KindInvalid, Path: h.path}
	}
	n := h.n
	for _, seg := range segs[:len(segs)-1] {
		sk, ok := n.subkeys[fold(seg)]
		if !ok {
			return &registry.Error{Kind: registry.KindNotFound, Path: joinPath(h.path, path)}
		}
		n = sk.node
	}
	last := fold(segs[len(segs)-1])
	sk, ok := n.subkeys[last]
	if !ok {
		return &registry.Error{Kind: registry.KindNotFound, Path: joinPath(h.path, path)}
	}
	if len(sk.node.subkeys) > 0 {
		// Matches the host primitive: only an empty key may be deleted.
		return &registry.Error{Kind: registry.KindInvalid, Path: joinPath(h.path, path)}
	}
	delete(n.subkeys, last)
	return nil
}

func (h *handle) Close() error {
	h.st.mu.Lock()
	defer h.st.mu.Unlock()
	if h.closed {
		return &registry.Error{Kind: registry.KindInvalid, Path: h.path}
	}
	h.closed = true
	return nil
}

func sortNames(names []string) {
	slices.SortFunc(names, func(a, b string) int {
		return strings.Compare(fold(a), fold(b))
	})
}

func joinPath(base, rel string) string {
	switch {
	case base == "":
		return rel
	case rel == "":
		return base
	default:
		return base + `\` + rel
	}
}
