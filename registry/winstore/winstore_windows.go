package winstore

import (
	"errors"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
	winreg "golang.org/x/sys/windows/registry"

	"github.com/joshuapare/regkit/internal/wide"
	"github.com/joshuapare/regkit/registry"
)

// Hive identifies one of the host's predefined root keys.
type Hive int

const (
	ClassesRoot Hive = iota
	CurrentConfig
	CurrentUser
	CurrentUserLocalSettings
	LocalMachine
	PerformanceData
	Users
)

// HKEY_CURRENT_USER_LOCAL_SETTINGS has no constant in x/sys.
const hkeyCurrentUserLocalSettings = 0x80000007

func (h Hive) root() windows.Handle {
	switch h {
	case ClassesRoot:
		return windows.Handle(winreg.CLASSES_ROOT)
	case CurrentConfig:
		return windows.Handle(winreg.CURRENT_CONFIG)
	case CurrentUser:
		return windows.Handle(winreg.CURRENT_USER)
	case CurrentUserLocalSettings:
		return windows.Handle(hkeyCurrentUserLocalSettings)
	case LocalMachine:
		return windows.Handle(winreg.LOCAL_MACHINE)
	case PerformanceData:
		return windows.Handle(winreg.PERFORMANCE_DATA)
	default:
		return windows.Handle(winreg.USERS)
	}
}

func (h Hive) String() string {
	switch h {
	case ClassesRoot:
		return "HKEY_CLASSES_ROOT"
	case CurrentConfig:
		return "HKEY_CURRENT_CONFIG"
	case CurrentUser:
		return "HKEY_CURRENT_USER"
	case CurrentUserLocalSettings:
		return "HKEY_CURRENT_USER_LOCAL_SETTINGS"
	case LocalMachine:
		return "HKEY_LOCAL_MACHINE"
	case PerformanceData:
		return "HKEY_PERFORMANCE_DATA"
	default:
		return "HKEY_USERS"
	}
}

// Open opens path beneath the hive root with the given access rights.
func (h Hive) Open(path string, a registry.Access) (registry.Store, error) {
	root := &key{h: h.root(), path: h.String()}
	return root.OpenKey(path, a)
}

// Create opens path beneath the hive root, creating missing keys.
func (h Hive) Create(path string, a registry.Access) (registry.Store, error) {
	root := &key{h: h.root(), path: h.String()}
	return root.CreateKey(path, a)
}

// x/sys/windows/registry only exposes typed setters, but the encoder
// already produced the exact wire bytes; write them through the raw host
// primitives instead.
var (
	advapi32           = windows.NewLazySystemDLL("advapi32.dll")
	procRegSetValueExW = advapi32.NewProc("RegSetValueExW")
)

// key is one open host registry handle. It implements registry.Store.
type key struct {
	h    windows.Handle
	path string
}

func (k *key) QueryValue(name string) (uint32, []byte, error) {
	namep, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return 0, nil, &registry.Error{Kind: registry.KindInvalid, Path: name, Err: err}
	}

	// Probe the required size first, then read into an aligned buffer.
	var sz uint32
	if err := windows.RegQueryValueEx(k.h, namep, nil, nil, nil, &sz); err != nil {
		return 0, nil, wrapErr(name, err)
	}
	b := wide.NewBuffer(int(sz))
	raw := b.Bytes()
	var data *byte
	if len(raw) > 0 {
		data = &raw[0]
	}
	var typ uint32
	if err := windows.RegQueryValueEx(k.h, namep, nil, &typ, data, &sz); err != nil {
		return 0, nil, wrapErr(name, err)
	}
	if int(sz) < len(raw) {
		raw = raw[:sz]
	}
	return typ, raw, nil
}

func (k *key) SetValue(name string, typ uint32, data []byte) error {
	namep, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return &registry.Error{Kind: registry.KindInvalid, Path: name, Err: err}
	}
	var p unsafe.Pointer
	if len(data) > 0 {
		p = unsafe.Pointer(&data[0])
	}
	r0, _, _ := procRegSetValueExW.Call(
		uintptr(k.h),
		uintptr(unsafe.Pointer(namep)),
		0,
		uintptr(typ),
		uintptr(p),
		uintptr(len(data)),
	)
	if r0 != 0 {
		return wrapErr(name, syscall.Errno(r0))
	}
	return nil
}

func (k *key) DeleteValue(name string) error {
	if err := winreg.Key(k.h).DeleteValue(name); err != nil {
		return wrapErr(name, err)
	}
	return nil
}

func (k *key) ValueNames() ([]string, error) {
	names, err := winreg.Key(k.h).ReadValueNames(-1)
	if err != nil {
		return nil, wrapErr(k.path, err)
	}
	return names, nil
}

func (k *key) SubkeyNames() ([]string, error) {
	names, err := winreg.Key(k.h).ReadSubKeyNames(-1)
	if err != nil {
		return nil, wrapErr(k.path, err)
	}
	return names, nil
}

func (k *key) OpenKey(path string, a registry.Access) (registry.Store, error) {
	pathp, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return nil, &registry.Error{Kind: registry.KindInvalid, Path: path, Err: err}
	}
	var nh windows.Handle
	if err := windows.RegOpenKeyEx(k.h, pathp, 0, uint32(a), &nh); err != nil {
		return nil, wrapErr(joinPath(k.path, path), err)
	}
	return &key{h: nh, path: joinPath(k.path, path)}, nil
}

func (k *key) CreateKey(path string, a registry.Access) (registry.Store, error) {
	pathp, err := windows.UTF16PtrFromString(path)
	if err != nil {
		return nil, &registry.Error{Kind: registry.KindInvalid, Path: path, Err: err}
	}
	var nh windows.Handle
	var disposition uint32
	err = windows.RegCreateKeyEx(
		k.h, pathp, 0, nil,
		0, uint32(a), nil,
		&nh, &disposition,
	)
	if err != nil {
		return nil, wrapErr(joinPath(k.path, path), err)
	}
	return &key{h: nh, path: joinPath(k.path, path)}, nil
}

func (k *key) DeleteKey(path string) error {
	if err := winreg.DeleteKey(winreg.Key(k.h), path); err != nil {
		return wrapErr(joinPath(k.path, path), err)
	}
	return nil
}

func (k *key) Close() error {
	if err := windows.RegCloseKey(k.h); err != nil {
		return wrapErr(k.path, err)
	}
	return nil
}

// wrapErr maps host error codes onto the registry error kinds.
func wrapErr(path string, err error) error {
	kind := registry.KindUnknown
	switch {
	case errors.Is(err, windows.ERROR_FILE_NOT_FOUND) || errors.Is(err, winreg.ErrNotExist):
		kind = registry.KindNotFound
	case errors.Is(err, windows.ERROR_ACCESS_DENIED):
		kind = registry.KindPermissionDenied
	}
	return &registry.Error{Kind: kind, Path: path, Err: err}
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
