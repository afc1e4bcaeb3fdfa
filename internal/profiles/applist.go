package profiles

import (
	"fmt"
	"sort"

	"github.com/tidwall/gjson"
)

// Apps returns the registered application ids ordered by display name, with
// the id appended to the name as tiebreak.
func (s *Store) Apps() []string {
	type entry struct {
		id      string
		sortKey string
	}

	stored := s.stringList(generalKey(keyAppList))
	entries := make([]entry, 0, len(stored))
	for _, id := range stored {
		if id == "" {
			continue
		}
		entries = append(entries, entry{id: id, sortKey: s.Name(id) + id})
	}

	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].sortKey < entries[j].sortKey
	})

	ids := make([]string, len(entries))
	for i, e := range entries {
		ids[i] = e.id
	}
	return ids
}

// UpdateApps replaces the application list with the applications described
// by appsJSON, an array of objects:
//
//	[{"flatpak": "org.gnome.Maps", "name": "Maps", "icon": "org.gnome.Maps"}]
//
// "id" is accepted in place of "flatpak". Entries without an id are skipped
// and input that is not a JSON array yields an empty list. Name and icon of
// every listed application are overwritten. Attributes of applications no
// longer listed are kept. Subscribers are notified once the list is stored.
func (s *Store) UpdateApps(appsJSON string) error {
	ids := []string{}

	for _, app := range parseAppArray(appsJSON) {
		id := stringField(app, "flatpak")
		if id == "" {
			id = stringField(app, "id")
		}
		if id == "" {
			continue
		}

		if err := s.kv.SetValue(appKey(id, attrName), stringField(app, "name")); err != nil {
			return fmt.Errorf("storing name of %s: %w", id, err)
		}
		if err := s.kv.SetValue(appKey(id, attrIcon), stringField(app, "icon")); err != nil {
			return fmt.Errorf("storing icon of %s: %w", id, err)
		}
		ids = append(ids, id)
	}

	if err := s.kv.SetValue(generalKey(keyAppList), ids); err != nil {
		return fmt.Errorf("storing application list: %w", err)
	}
	s.log.Infof("Application list replaced with %d applications", len(ids))

	s.notifyAppListChanged()
	return nil
}

func parseAppArray(raw string) []gjson.Result {
	if !gjson.Valid(raw) {
		return nil
	}
	parsed := gjson.Parse(raw)
	if !parsed.IsArray() {
		return nil
	}

	var apps []gjson.Result
	for _, r := range parsed.Array() {
		if r.IsObject() {
			apps = append(apps, r)
		}
	}
	return apps
}

// stringField returns the string member name of obj, or "" if it is
// missing or not a string. Invalid UTF-8 is replaced.
func stringField(obj gjson.Result, name string) string {
	r := obj.Get(name)
	if r.Type != gjson.String {
		return ""
	}
	return validText(r.String())
}
