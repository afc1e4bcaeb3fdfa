package kvstore

import (
	"fmt"
	"os"
	"sort"
	"sync"
	"unicode/utf8"

	"github.com/PolarWolf314/flatrunner/internal/configs"
	kerrors "github.com/PolarWolf314/flatrunner/internal/errors"
)

// File is a Store backed by a TOML file. Each group is a TOML table:
//
//	[General]
//	version = 1
//	applist = ["org.gnome.Maps"]
//
//	["Application org.gnome.Maps"]
//	name = "Maps"
//	scaling = 2
//
//	["Application org.gnome.Maps".env]
//	GDK_BACKEND = "wayland"
//
// The whole file is rewritten on every SetValue and Remove.
type File struct {
	path string

	mu     sync.RWMutex
	groups map[string]map[string]any
}

// OpenFile loads the settings file at path. A missing file yields an empty
// store; the file is created on the first write.
func OpenFile(path string) (*File, error) {
	f := &File{
		path:   path,
		groups: make(map[string]map[string]any),
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return f, nil
	}

	raw := make(map[string]any)
	if err := configs.LoadTOML(path, &raw); err != nil {
		return nil, fmt.Errorf("%s: %w: %v", path, kerrors.ErrSettingsFileInvalid, err)
	}

	for group, v := range raw {
		table, ok := v.(map[string]any)
		if !ok {
			// Top-level keys outside a table have no group and are ignored.
			continue
		}
		f.groups[group] = table
	}

	return f, nil
}

// Path returns the location of the settings file.
func (f *File) Path() string {
	return f.path
}

func (f *File) Value(key string) (any, bool) {
	group, name, err := SplitKey(key)
	if err != nil {
		return nil, false
	}

	f.mu.RLock()
	defer f.mu.RUnlock()

	v, ok := f.groups[group][name]
	if !ok {
		return nil, false
	}
	return cloneValue(v), true
}

// SetValue rejects keys and values holding invalid UTF-8, which TOML
// cannot represent, with ErrSettingsFileUnwritable.
func (f *File) SetValue(key string, value any) error {
	group, name, err := SplitKey(key)
	if err != nil {
		return err
	}
	if !utf8.ValidString(key) || !validUTF8(value) {
		return fmt.Errorf("%s: %w: %q holds invalid UTF-8", f.path, kerrors.ErrSettingsFileUnwritable, key)
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	table, ok := f.groups[group]
	if !ok {
		table = make(map[string]any)
		f.groups[group] = table
	}
	prev, hadPrev := table[name]
	table[name] = cloneValue(value)

	if err := f.save(); err != nil {
		if hadPrev {
			table[name] = prev
		} else {
			delete(table, name)
			if len(table) == 0 {
				delete(f.groups, group)
			}
		}
		return err
	}
	return nil
}

func (f *File) Remove(key string) error {
	group, name, err := SplitKey(key)
	if err != nil {
		return err
	}

	f.mu.Lock()
	defer f.mu.Unlock()

	table, ok := f.groups[group]
	if !ok {
		return nil
	}
	prev, ok := table[name]
	if !ok {
		return nil
	}
	delete(table, name)
	if len(table) == 0 {
		delete(f.groups, group)
	}

	if err := f.save(); err != nil {
		if _, ok := f.groups[group]; !ok {
			f.groups[group] = table
		}
		table[name] = prev
		return err
	}
	return nil
}

func (f *File) Keys() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()

	var keys []string
	for group, table := range f.groups {
		for name := range table {
			keys = append(keys, JoinKey(group, name))
		}
	}
	sort.Strings(keys)
	return keys
}

// save must be called with f.mu held.
func (f *File) save() error {
	if err := configs.SaveTOML(f.path, f.groups); err != nil {
		return fmt.Errorf("%s: %w: %v", f.path, kerrors.ErrSettingsFileUnwritable, err)
	}
	return nil
}

func validUTF8(v any) bool {
	switch t := v.(type) {
	case string:
		return utf8.ValidString(t)
	case []string:
		for _, s := range t {
			if !utf8.ValidString(s) {
				return false
			}
		}
	case []any:
		for _, e := range t {
			if !validUTF8(e) {
				return false
			}
		}
	case map[string]string:
		for k, s := range t {
			if !utf8.ValidString(k) || !utf8.ValidString(s) {
				return false
			}
		}
	case map[string]any:
		for k, e := range t {
			if !utf8.ValidString(k) || !validUTF8(e) {
				return false
			}
		}
	}
	return true
}
