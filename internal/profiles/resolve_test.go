package profiles

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/PolarWolf314/flatrunner/internal/kvstore"
)

func setRaw(t *testing.T, kv *kvstore.Memory, key string, value any) {
	t.Helper()
	if err := kv.SetValue(key, value); err != nil {
		t.Fatalf("SetValue(%q) failed: %v", key, err)
	}
}

func TestDPI(t *testing.T) {
	tests := []struct {
		name       string
		deviceDPI  int
		appDPI     any
		appScaling any
		defaultDPI any
		wantPlain  int
		wantMerged int
	}{
		{name: "own value", deviceDPI: 96, appDPI: 150, wantPlain: 150, wantMerged: 150},
		{name: "own value beats scaling", deviceDPI: 96, appDPI: 150, appScaling: 2, wantPlain: 150, wantMerged: 150},
		{name: "scaling implies dpi", deviceDPI: 200, appScaling: 2, defaultDPI: 120, wantPlain: 0, wantMerged: 100},
		{name: "implied dpi rounds down", deviceDPI: 250, appScaling: 3, wantPlain: 0, wantMerged: 83},
		{name: "implied dpi rounds half up", deviceDPI: 250, appScaling: 4, wantPlain: 0, wantMerged: 63},
		{name: "scaling of one is ignored", deviceDPI: 96, appScaling: 1, defaultDPI: 120, wantPlain: 0, wantMerged: 120},
		{name: "default profile dpi", deviceDPI: 96, defaultDPI: 120, wantPlain: 0, wantMerged: 120},
		{name: "device dpi", deviceDPI: 240, wantPlain: 0, wantMerged: 240},
		{name: "negative own value", deviceDPI: 240, appDPI: -5, wantPlain: 0, wantMerged: 240},
		{name: "non-positive default dpi", deviceDPI: 240, defaultDPI: 0, wantPlain: 0, wantMerged: 240},
		{name: "numeric text", deviceDPI: 96, appDPI: "180", wantPlain: 180, wantMerged: 180},
		{name: "malformed value", deviceDPI: 96, appDPI: "lots", defaultDPI: 110, wantPlain: 0, wantMerged: 110},
		{name: "toml integer", deviceDPI: 96, appDPI: int64(144), wantPlain: 144, wantMerged: 144},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, kv := newTestStore(t, WithDisplay(StaticDisplay(tt.deviceDPI)))
			if tt.appDPI != nil {
				setRaw(t, kv, "Application app/dpi", tt.appDPI)
			}
			if tt.appScaling != nil {
				setRaw(t, kv, "Application app/scaling", tt.appScaling)
			}
			if tt.defaultDPI != nil {
				setRaw(t, kv, "Application default/dpi", tt.defaultDPI)
			}

			if got := s.DPI("app", false); got != tt.wantPlain {
				t.Errorf("DPI(app, false) = %d, want %d", got, tt.wantPlain)
			}
			if got := s.DPI("app", true); got != tt.wantMerged {
				t.Errorf("DPI(app, true) = %d, want %d", got, tt.wantMerged)
			}
		})
	}
}

func TestScaling(t *testing.T) {
	tests := []struct {
		name           string
		appScaling     any
		defaultScaling any
		wantPlain      int
		wantMerged     int
	}{
		{name: "own value", appScaling: 3, defaultScaling: 2, wantPlain: 3, wantMerged: 3},
		{name: "inherits default", defaultScaling: 2, wantPlain: 0, wantMerged: 2},
		{name: "nothing stored", wantPlain: 0, wantMerged: 1},
		{name: "zero own value", appScaling: 0, defaultScaling: 2, wantPlain: 0, wantMerged: 2},
		{name: "negative own value", appScaling: -4, wantPlain: 0, wantMerged: 1},
		{name: "negative default clamps", appScaling: -4, defaultScaling: -2, wantPlain: 0, wantMerged: 1},
		{name: "zero default clamps", defaultScaling: 0, wantPlain: 0, wantMerged: 1},
		{name: "malformed default clamps", defaultScaling: []string{"x"}, wantPlain: 0, wantMerged: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s, kv := newTestStore(t)
			if tt.appScaling != nil {
				setRaw(t, kv, "Application app/scaling", tt.appScaling)
			}
			if tt.defaultScaling != nil {
				setRaw(t, kv, "Application default/scaling", tt.defaultScaling)
			}

			if got := s.Scaling("app", false); got != tt.wantPlain {
				t.Errorf("Scaling(app, false) = %d, want %d", got, tt.wantPlain)
			}
			if got := s.Scaling("app", true); got != tt.wantMerged {
				t.Errorf("Scaling(app, true) = %d, want %d", got, tt.wantMerged)
			}
			if got := s.Scaling("app", true); got < 1 {
				t.Errorf("Merged scaling must never be below 1, got %d", got)
			}
		})
	}
}

func TestEnvMergedIsSupersetOfOwn(t *testing.T) {
	s, _ := newTestStore(t)
	if err := s.SetEnv(DefaultAppID, map[string]string{"A": "default-a", "B": "default-b"}); err != nil {
		t.Fatalf("SetEnv failed: %v", err)
	}

	fixtures := map[string]map[string]string{
		"empty":    {},
		"disjoint": {"C": "c"},
		"overlap":  {"A": "own-a", "C": "c"},
		"shadowed": {"A": "own-a", "B": "own-b"},
	}
	for id, env := range fixtures {
		if err := s.SetEnv(id, env); err != nil {
			t.Fatalf("SetEnv(%s) failed: %v", id, err)
		}
	}

	for id := range fixtures {
		t.Run(id, func(t *testing.T) {
			own := s.Env(id, false)
			merged := s.Env(id, true)

			for k, v := range own {
				got, ok := merged[k]
				if !ok {
					t.Errorf("Merged environment lost key %q", k)
					continue
				}
				if got != v {
					t.Errorf("Merged value for %q = %q, want own value %q", k, got, v)
				}
			}
			for k, v := range s.Env(DefaultAppID, false) {
				if _, ownHas := own[k]; ownHas {
					continue
				}
				if merged[k] != v {
					t.Errorf("Merged value for inherited %q = %q, want %q", k, merged[k], v)
				}
			}
		})
	}

	want := map[string]string{"A": "own-a", "B": "default-b", "C": "c"}
	if diff := cmp.Diff(want, s.Env("overlap", true)); diff != "" {
		t.Errorf("Merged environment mismatch (-want +got):\n%s", diff)
	}
}

func TestEnvDefaultMergeIsNoop(t *testing.T) {
	s, _ := newTestStore(t)
	if err := s.SetEnvVar(DefaultAppID, "EXTRA", "1"); err != nil {
		t.Fatalf("SetEnvVar failed: %v", err)
	}

	if diff := cmp.Diff(s.Env(DefaultAppID, false), s.Env(DefaultAppID, true)); diff != "" {
		t.Errorf("Merged default environment differs from unmerged (-unmerged +merged):\n%s", diff)
	}
}

func TestEnvUnknownAndMalformed(t *testing.T) {
	s, kv := newTestStore(t)

	if env := s.Env("unknown", false); env == nil || len(env) != 0 {
		t.Errorf("Expected empty non-nil map for unknown app, got %#v", env)
	}

	setRaw(t, kv, "Application broken/env", 42)
	if env := s.Env("broken", false); len(env) != 0 {
		t.Errorf("Expected empty map for malformed env, got %#v", env)
	}
	if diff := cmp.Diff(DefaultEnv(), s.Env("broken", true)); diff != "" {
		t.Errorf("Malformed env should merge to the default environment (-want +got):\n%s", diff)
	}

	// Tables decoded from TOML arrive as map[string]any.
	setRaw(t, kv, "Application toml/env", map[string]any{"GDK_SCALE": "2"})
	if diff := cmp.Diff(map[string]string{"GDK_SCALE": "2"}, s.Env("toml", false)); diff != "" {
		t.Errorf("Environment mismatch (-want +got):\n%s", diff)
	}
}

func TestEnvReturnsCallerOwnedMap(t *testing.T) {
	s, _ := newTestStore(t)
	env := s.Env(DefaultAppID, false)
	env["INJECTED"] = "1"

	if _, ok := s.Env(DefaultAppID, false)["INJECTED"]; ok {
		t.Error("Mutating a returned environment changed the stored one")
	}
}

func TestEnvJSON(t *testing.T) {
	s, _ := newTestStore(t)
	if err := s.SetEnv("app", map[string]string{"QT_QUICK_CONTROLS_STYLE": "Material"}); err != nil {
		t.Fatalf("SetEnv failed: %v", err)
	}

	var merged map[string]string
	if err := json.Unmarshal([]byte(s.EnvJSON("app", true)), &merged); err != nil {
		t.Fatalf("EnvJSON produced invalid JSON: %v", err)
	}
	want := map[string]string{
		"QT_QUICK_CONTROLS_STYLE":  "Material",
		"QT_QUICK_CONTROLS_MOBILE": "1",
	}
	if diff := cmp.Diff(want, merged); diff != "" {
		t.Errorf("EnvJSON mismatch (-want +got):\n%s", diff)
	}

	if got := s.EnvJSON("nothing", false); got != "{}\n" {
		t.Errorf("Expected empty object for unknown app, got %q", got)
	}
}

func TestNameAndIcon(t *testing.T) {
	s, kv := newTestStore(t)
	if s.Name("org.gnome.Maps") != "" || s.Icon("org.gnome.Maps") != "" {
		t.Error("Expected empty name and icon for unknown app")
	}

	setRaw(t, kv, "Application org.gnome.Maps/name", "Maps")
	setRaw(t, kv, "Application org.gnome.Maps/icon", "/usr/share/icons/maps.png")
	if got := s.Name("org.gnome.Maps"); got != "Maps" {
		t.Errorf("Expected name %q, got %q", "Maps", got)
	}
	if got := s.Icon("org.gnome.Maps"); got != "/usr/share/icons/maps.png" {
		t.Errorf("Expected icon %q, got %q", "/usr/share/icons/maps.png", got)
	}
}

func TestProfile(t *testing.T) {
	s, _ := newTestStore(t, WithDisplay(StaticDisplay(200)))
	if err := s.UpdateApps(`[{"flatpak":"org.kde.kate","name":"Kate","icon":"kate"}]`); err != nil {
		t.Fatalf("UpdateApps failed: %v", err)
	}
	if err := s.SetScaling("org.kde.kate", 2); err != nil {
		t.Fatalf("SetScaling failed: %v", err)
	}

	plain := s.Profile("org.kde.kate", false)
	wantPlain := ApplicationProfile{ID: "org.kde.kate", Name: "Kate", Icon: "kate", DPI: 0, Scaling: 2, Env: map[string]string{}}
	if diff := cmp.Diff(wantPlain, plain); diff != "" {
		t.Errorf("Unmerged profile mismatch (-want +got):\n%s", diff)
	}

	merged := s.Profile("org.kde.kate", true)
	wantMerged := ApplicationProfile{ID: "org.kde.kate", Name: "Kate", Icon: "kate", DPI: 100, Scaling: 2, Env: DefaultEnv()}
	if diff := cmp.Diff(wantMerged, merged); diff != "" {
		t.Errorf("Merged profile mismatch (-want +got):\n%s", diff)
	}
}
