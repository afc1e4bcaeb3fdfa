package profiles

import (
	"strings"

	"github.com/spf13/cast"

	"github.com/PolarWolf314/flatrunner/internal/kvstore"
)

const (
	generalGroup   = "General"
	appGroupPrefix = "Application "

	keyVersion = "version"
	keyAppList = "applist"

	attrName    = "name"
	attrIcon    = "icon"
	attrDPI     = "dpi"
	attrScaling = "scaling"
	attrEnv     = "env"
)

func generalKey(name string) string {
	return kvstore.JoinKey(generalGroup, name)
}

func appKey(id, attr string) string {
	return kvstore.JoinKey(appGroupPrefix+validText(id), attr)
}

// validText replaces invalid UTF-8 in s with U+FFFD. Settings files only
// hold valid UTF-8.
func validText(s string) string {
	return strings.ToValidUTF8(s, "\uFFFD")
}

// The typed readers below never fail: a missing key yields def, a value of
// the wrong shape yields the zero value.

func (s *Store) intValue(key string, def int) int {
	v, ok := s.kv.Value(key)
	if !ok {
		return def
	}
	n, err := cast.ToIntE(v)
	if err != nil {
		s.log.Debugf("Ignoring malformed integer at %s: %v", key, err)
		return 0
	}
	return n
}

func (s *Store) stringValue(key string) string {
	v, ok := s.kv.Value(key)
	if !ok {
		return ""
	}
	str, err := cast.ToStringE(v)
	if err != nil {
		s.log.Debugf("Ignoring malformed string at %s: %v", key, err)
		return ""
	}
	return str
}

func (s *Store) stringList(key string) []string {
	v, ok := s.kv.Value(key)
	if !ok {
		return []string{}
	}
	if str, ok := v.(string); ok {
		// A lone string is a one-element list, not a whitespace-separated one.
		return []string{str}
	}
	list, err := cast.ToStringSliceE(v)
	if err != nil {
		s.log.Debugf("Ignoring malformed list at %s: %v", key, err)
		return []string{}
	}
	return list
}

func (s *Store) stringMap(key string) map[string]string {
	v, ok := s.kv.Value(key)
	if !ok {
		return map[string]string{}
	}
	m, err := cast.ToStringMapStringE(v)
	if err != nil || m == nil {
		s.log.Debugf("Ignoring malformed map at %s: %v", key, err)
		return map[string]string{}
	}
	return m
}
