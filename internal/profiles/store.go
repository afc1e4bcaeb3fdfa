package profiles

import (
	"fmt"
	"sync"

	"github.com/PolarWolf314/flatrunner/internal/configs"
	"github.com/PolarWolf314/flatrunner/internal/kvstore"
	logger "github.com/PolarWolf314/flatrunner/internal/logging"
)

const (
	// DefaultAppID is the reserved id of the default profile.
	DefaultAppID = "default"

	// SettingsVersion is the current version of the stored settings layout.
	SettingsVersion = 1
)

// DefaultEnv returns the environment installed into the default profile on
// first run.
func DefaultEnv() map[string]string {
	return map[string]string{
		"QT_QUICK_CONTROLS_STYLE":  "Plasma",
		"QT_QUICK_CONTROLS_MOBILE": "1",
	}
}

// Store resolves application profiles on top of a key/value store. It is
// safe for concurrent use.
type Store struct {
	kv      kvstore.Store
	display Display
	log     logger.Logger

	// appLocks serialises read-modify-write of one profile's environment.
	appLocks sync.Map

	subsMu  sync.Mutex
	subs    map[int]func()
	nextSub int
}

// Option configures a Store.
type Option func(*Store)

// WithDisplay sets the source of the device DPI. The default reports
// configs.DefaultDeviceDPI.
func WithDisplay(d Display) Option {
	return func(s *Store) {
		s.display = d
	}
}

// WithLogger sets the logger used for diagnostics.
func WithLogger(l logger.Logger) Option {
	return func(s *Store) {
		s.log = l
	}
}

// New returns a Store over kv, performing first-run setup if needed.
func New(kv kvstore.Store, opts ...Option) (*Store, error) {
	s := &Store{
		kv:      kv,
		display: StaticDisplay(configs.DefaultDeviceDPI),
		subs:    make(map[int]func()),
	}
	for _, opt := range opts {
		opt(s)
	}
	if s.display == nil {
		s.display = StaticDisplay(configs.DefaultDeviceDPI)
	}

	if err := s.setup(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) setup() error {
	version := s.intValue(generalKey(keyVersion), 0)
	setDefaults := version < SettingsVersion
	setDefaults = setDefaults || len(s.stringMap(appKey(DefaultAppID, attrEnv))) == 0

	if setDefaults {
		s.log.Debugf("Installing default environment (stored settings version %d)", version)
		if err := s.SetEnv(DefaultAppID, DefaultEnv()); err != nil {
			return fmt.Errorf("installing default environment: %w", err)
		}
	}

	if err := s.kv.SetValue(generalKey(keyVersion), SettingsVersion); err != nil {
		return fmt.Errorf("storing settings version: %w", err)
	}
	return nil
}

// DefaultApp returns the id of the default profile.
func (s *Store) DefaultApp() string {
	return DefaultAppID
}

func (s *Store) lockApp(id string) func() {
	v, _ := s.appLocks.LoadOrStore(validText(id), &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}
