package profiles

import (
	"encoding/json"
	"math"
)

// ApplicationProfile is a snapshot of one application's settings.
type ApplicationProfile struct {
	ID      string            `json:"id"`
	Name    string            `json:"name"`
	Icon    string            `json:"icon"`
	DPI     int               `json:"dpi"`
	Scaling int               `json:"scaling"`
	Env     map[string]string `json:"env"`
}

// Name returns the display name of id, or "" if unset.
func (s *Store) Name(id string) string {
	return s.stringValue(appKey(id, attrName))
}

// Icon returns the icon reference of id, or "" if unset.
func (s *Store) Icon(id string) string {
	return s.stringValue(appKey(id, attrIcon))
}

// DPI returns the DPI override of id. Without merge an unset override is 0.
// With merge an unset override resolves, in order, to the DPI implied by the
// profile's own scaling, the default profile's DPI, and the device DPI.
func (s *Store) DPI(id string, merge bool) int {
	if dpi := s.intValue(appKey(id, attrDPI), 0); dpi > 0 {
		return dpi
	}
	if !merge {
		return 0
	}

	if scaling := s.Scaling(id, false); scaling > 1 {
		return int(math.Round(float64(s.DefaultDPI()) / float64(scaling)))
	}
	if dpi := s.intValue(appKey(DefaultAppID, attrDPI), 0); dpi > 0 {
		return dpi
	}
	return s.DefaultDPI()
}

// Scaling returns the scaling factor of id. Without merge an unset factor is
// 0. With merge it falls back to the default profile's factor and is never
// below 1.
func (s *Store) Scaling(id string, merge bool) int {
	if scaling := s.intValue(appKey(id, attrScaling), 0); scaling > 0 {
		return scaling
	}
	if !merge {
		return 0
	}

	scaling := s.intValue(appKey(DefaultAppID, attrScaling), 1)
	if scaling < 1 {
		scaling = 1
	}
	return scaling
}

// Env returns the environment overrides of id. When merged, variables of the
// default profile that id does not set are added. The returned map is never
// nil and is owned by the caller.
func (s *Store) Env(id string, merged bool) map[string]string {
	env := s.stringMap(appKey(id, attrEnv))
	if id == DefaultAppID || !merged {
		return env
	}

	for k, v := range s.stringMap(appKey(DefaultAppID, attrEnv)) {
		if _, ok := env[k]; !ok {
			env[k] = v
		}
	}
	return env
}

// EnvJSON returns Env(id, merged) as an indented JSON object.
func (s *Store) EnvJSON(id string, merged bool) string {
	data, err := json.MarshalIndent(s.Env(id, merged), "", "    ")
	if err != nil {
		return "{}\n"
	}
	return string(data) + "\n"
}

// Profile returns all attributes of id resolved with the given merge mode.
func (s *Store) Profile(id string, merged bool) ApplicationProfile {
	return ApplicationProfile{
		ID:      id,
		Name:    s.Name(id),
		Icon:    s.Icon(id),
		DPI:     s.DPI(id, merged),
		Scaling: s.Scaling(id, merged),
		Env:     s.Env(id, merged),
	}
}
