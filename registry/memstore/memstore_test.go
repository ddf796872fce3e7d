package memstore

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joshuapare/regkit/registry"
)

func TestCreateAndOpenCaseInsensitive(t *testing.T) {
	s := New()
	k, err := s.Create(`Software\RegKit\Test`, registry.AccessAll)
	require.NoError(t, err)
	require.NoError(t, k.SetValue("Answer", 4, []byte{42, 0, 0, 0}))
	require.NoError(t, k.Close())

	// Different case, same key.
	k2, err := s.Open(`SOFTWARE\regkit\TEST`, registry.AccessRead)
	require.NoError(t, err)
	defer k2.Close()

	typ, data, err := k2.QueryValue("ANSWER")
	require.NoError(t, err)
	assert.Equal(t, uint32(4), typ)
	assert.Equal(t, []byte{42, 0, 0, 0}, data)
}

func TestQueryValueCopies(t *testing.T) {
	s := New()
	k, err := s.Create("K", registry.AccessAll)
	require.NoError(t, err)
	defer k.Close()

	in := []byte{1, 2, 3}
	require.NoError(t, k.SetValue("v", 3, in))
	in[0] = 0xFF // caller mutation must not reach the store

	_, data, err := k.QueryValue("v")
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, data)

	data[0] = 0xEE // nor must mutation of the returned buffer
	_, again, err := k.QueryValue("v")
	require.NoError(t, err)
	assert.Equal(t, []byte{1, 2, 3}, again)
}

func TestAccessEnforcement(t *testing.T) {
	s := New()
	setup, err := s.Create(`Guarded`, registry.AccessAll)
	require.NoError(t, err)
	require.NoError(t, setup.SetValue("v", 1, []byte{0, 0}))
	require.NoError(t, setup.Close())

	k, err := s.Open("Guarded", registry.AccessQueryValue)
	require.NoError(t, err)
	defer k.Close()

	_, _, err = k.QueryValue("v")
	assert.NoError(t, err)

	err = k.SetValue("v", 1, []byte{0, 0})
	assert.ErrorIs(t, err, registry.ErrPermissionDenied)

	err = k.DeleteValue("v")
	assert.ErrorIs(t, err, registry.ErrPermissionDenied)

	_, err = k.SubkeyNames()
	assert.ErrorIs(t, err, registry.ErrPermissionDenied)

	_, err = k.CreateKey("Sub", registry.AccessAll)
	assert.ErrorIs(t, err, registry.ErrPermissionDenied)
}

func TestNotFound(t *testing.T) {
	s := New()
	k, err := s.Open("", registry.AccessAll)
	require.NoError(t, err)
	defer k.Close()

	_, _, err = k.QueryValue("missing")
	assert.ErrorIs(t, err, registry.ErrNotFound)

	_, err = k.OpenKey("Missing", registry.AccessRead)
	assert.ErrorIs(t, err, registry.ErrNotFound)

	err = k.DeleteValue("missing")
	assert.ErrorIs(t, err, registry.ErrNotFound)

	err = k.DeleteKey("Missing")
	assert.ErrorIs(t, err, registry.ErrNotFound)
}

func TestDeleteKeySemantics(t *testing.T) {
	s := New()
	k, err := s.Create(`A\B`, registry.AccessAll)
	require.NoError(t, err)
	require.NoError(t, k.Close())

	root, err := s.Open("", registry.AccessAll)
	require.NoError(t, err)
	defer root.Close()

	// Non-empty keys cannot be deleted by the primitive.
	err = root.DeleteKey("A")
	assert.ErrorIs(t, err, registry.ErrInvalid)

	require.NoError(t, root.DeleteKey(`A\B`))
	require.NoError(t, root.DeleteKey("A"))

	_, err = root.OpenKey("A", registry.AccessRead)
	assert.ErrorIs(t, err, registry.ErrNotFound)
}

func TestEnumerationSortedOriginalCase(t *testing.T) {
	s := New()
	k, err := s.Create("Enum", registry.AccessAll)
	require.NoError(t, err)
	defer k.Close()

	for _, name := range []string{"zeta", "Alpha", "beta"} {
		_, err := k.CreateKey(name, registry.AccessAll)
		require.NoError(t, err)
		require.NoError(t, k.SetValue(name, 1, nil))
	}

	subs, err := k.SubkeyNames()
	require.NoError(t, err)
	assert.Equal(t, []string{"Alpha", "beta", "zeta"}, subs)

	vals, err := k.ValueNames()
	require.NoError(t, err)
	assert.Equal(t, []string{"Alpha", "beta", "zeta"}, vals)
}

func TestSetValueFoldsNames(t *testing.T) {
	s := New()
	k, err := s.Create("K", registry.AccessAll)
	require.NoError(t, err)
	defer k.Close()

	require.NoError(t, k.SetValue("Name", 1, []byte{0, 0}))
	require.NoError(t, k.SetValue("NAME", 3, []byte{1}))

	// Same folded name: one value, latest payload.
	names, err := k.ValueNames()
	require.NoError(t, err)
	require.Len(t, names, 1)

	typ, data, err := k.QueryValue("name")
	require.NoError(t, err)
	assert.Equal(t, uint32(3), typ)
	assert.Equal(t, []byte{1}, data)
}

func TestClosedHandle(t *testing.T) {
	s := New()
	k, err := s.Create("K", registry.AccessAll)
	require.NoError(t, err)
	require.NoError(t, k.Close())

	_, _, err = k.QueryValue("v")
	assert.ErrorIs(t, err, registry.ErrInvalid)
	err = k.Close()
	assert.ErrorIs(t, err, registry.ErrInvalid)
}

func TestMalformedPaths(t *testing.T) {
	s := New()
	for _, path := range []string{`\`, `A\\B`, `A\`, `\A`} {
		_, err := s.Open(path, registry.AccessRead)
		assert.ErrorIs(t, err, registry.ErrInvalid, "path %q", path)
	}
}

func TestOpenEmptyPathIsSameKey(t *testing.T) {
	s := New()
	k, err := s.Create("K", registry.AccessAll)
	require.NoError(t, err)
	defer k.Close()
	require.NoError(t, k.SetValue("v", 1, []byte{0, 0}))

	same, err := k.OpenKey("", registry.AccessRead)
	require.NoError(t, err)
	defer same.Close()

	_, _, err = same.QueryValue("v")
	assert.NoError(t, err)
}
