package thumbnail

import (
	"errors"
	"fmt"
	"path"
	"strings"
)

const (
	// DefaultRootPrefix is the first segment of every original key.
	DefaultRootPrefix = "owners"
	// VariantPrefix starts every derivative directory name.
	VariantPrefix = "thumb-"
	// derivativeMarker is the reserved path fragment that identifies derivatives.
	derivativeMarker = "/" + VariantPrefix
	// DerivativeExt is the extension of every derivative object.
	DerivativeExt = ".webp"
)

var (
	// ErrInvalidKeyStructure is returned for keys that do not follow
	// {root}/{ownerId}/{entityType}/{entityId}/{instanceId}.{ext}.
	ErrInvalidKeyStructure = errors.New("invalid key structure")
	// ErrUnsupportedFormat is returned for extensions outside SupportedExtensions.
	ErrUnsupportedFormat = errors.New("unsupported format")
)

// SupportedExtensions lists the raster formats accepted as originals.
var SupportedExtensions = map[string]struct{}{
	".jpg":  {},
	".jpeg": {},
	".png":  {},
	".webp": {},
}

// KeyError describes why a key was rejected.
type KeyError struct {
	Key string
	Err error
}

func (e *KeyError) Error() string {
	return fmt.Sprintf("%s: %q", e.Err, e.Key)
}

func (e *KeyError) Unwrap() error { return e.Err }

// OwnerPath is a parsed original key.
type OwnerPath struct {
	OwnerID    string
	EntityType string
	EntityID   string
	InstanceID string
	Extension  string
	// Dir is the key without its trailing filename.
	Dir string
}

// IsDerivativeKey reports whether key points at a derivative. It must be
// evaluated before any other validation.
func IsDerivativeKey(key string) bool {
	return strings.Contains(key, derivativeMarker) || strings.HasPrefix(key, VariantPrefix)
}

// IsSupportedExtension reports whether key ends in a supported raster extension.
func IsSupportedExtension(key string) bool {
	_, ok := SupportedExtensions[strings.ToLower(path.Ext(key))]
	return ok
}

// ParseOriginalKey validates key against the original addressing scheme under
// the default root.
func ParseOriginalKey(key string) (OwnerPath, error) {
	return parseOriginalKey(key, DefaultRootPrefix)
}

func parseOriginalKey(key, root string) (OwnerPath, error) {
	parts := strings.Split(key, "/")
	if len(parts) < 5 || parts[0] != root {
		return OwnerPath{}, &KeyError{Key: key, Err: ErrInvalidKeyStructure}
	}
	for _, p := range parts[1:4] {
		if p == "" {
			return OwnerPath{}, &KeyError{Key: key, Err: ErrInvalidKeyStructure}
		}
	}

	filename := parts[len(parts)-1]
	ext := path.Ext(filename)
	if _, ok := SupportedExtensions[strings.ToLower(ext)]; !ok {
		return OwnerPath{}, &KeyError{Key: key, Err: ErrUnsupportedFormat}
	}
	instance := strings.TrimSuffix(filename, ext)
	if instance == "" {
		return OwnerPath{}, &KeyError{Key: key, Err: ErrInvalidKeyStructure}
	}

	return OwnerPath{
		OwnerID:    parts[1],
		EntityType: parts[2],
		EntityID:   parts[3],
		InstanceID: instance,
		Extension:  strings.ToLower(ext),
		Dir:        strings.Join(parts[:len(parts)-1], "/"),
	}, nil
}

// DerivativeKey returns where the named variant of originalKey is stored:
// the original's directory, then {variant}/{instanceId}.webp.
func DerivativeKey(originalKey, variant string) string {
	dir, file := "", originalKey
	if i := strings.LastIndex(originalKey, "/"); i >= 0 {
		dir, file = originalKey[:i], originalKey[i+1:]
	}
	name := strings.TrimSuffix(file, path.Ext(file)) + DerivativeExt
	if dir == "" {
		return variant + "/" + name
	}
	return dir + "/" + variant + "/" + name
}
