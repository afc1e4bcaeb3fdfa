package kvstore

import (
	"fmt"
	"maps"
	"slices"
	"strings"

	kerrors "github.com/PolarWolf314/flatrunner/internal/errors"
)

// Store is a persistent key/value store addressed by "<group>/<name>" keys.
type Store interface {
	// Value returns the stored value and whether the key exists.
	Value(key string) (any, bool)
	// SetValue stores value under key, replacing any previous value.
	SetValue(key string, value any) error
	// Remove deletes key. Removing a missing key is not an error.
	Remove(key string) error
	// Keys returns every stored key in sorted order.
	Keys() []string
}

// SplitKey splits key at its last slash into group and name.
func SplitKey(key string) (group, name string, err error) {
	i := strings.LastIndex(key, "/")
	if i <= 0 || i == len(key)-1 {
		return "", "", fmt.Errorf("%q: %w", key, kerrors.ErrInvalidKey)
	}
	return key[:i], key[i+1:], nil
}

// JoinKey builds a key from a group and a name.
func JoinKey(group, name string) string {
	return group + "/" + name
}

// cloneValue copies the container types a store hands out so that callers
// cannot mutate stored state through a returned value.
func cloneValue(v any) any {
	switch t := v.(type) {
	case []string:
		return slices.Clone(t)
	case []any:
		return slices.Clone(t)
	case map[string]string:
		return maps.Clone(t)
	case map[string]any:
		return maps.Clone(t)
	default:
		return v
	}
}
