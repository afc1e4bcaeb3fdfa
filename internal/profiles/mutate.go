package profiles

import "fmt"

// SetEnv replaces the environment overrides of id with env.
func (s *Store) SetEnv(id string, env map[string]string) error {
	unlock := s.lockApp(id)
	defer unlock()
	return s.storeEnv(id, env)
}

// SetEnvVar sets one environment variable of id.
func (s *Store) SetEnvVar(id, key, value string) error {
	unlock := s.lockApp(id)
	defer unlock()

	env := s.Env(id, false)
	env[key] = value
	return s.storeEnv(id, env)
}

// RemoveEnvVar removes one environment variable of id. Nothing is written
// when the variable is not set.
func (s *Store) RemoveEnvVar(id, key string) error {
	unlock := s.lockApp(id)
	defer unlock()

	env := s.Env(id, false)
	if _, ok := env[key]; !ok {
		return nil
	}
	delete(env, key)
	return s.storeEnv(id, env)
}

// storeEnv must be called with the lock of id held.
func (s *Store) storeEnv(id string, env map[string]string) error {
	m := make(map[string]string, len(env))
	for k, v := range env {
		m[validText(k)] = validText(v)
	}
	if err := s.kv.SetValue(appKey(id, attrEnv), m); err != nil {
		return fmt.Errorf("storing environment of %s: %w", id, err)
	}
	return nil
}

// SetDPI sets the DPI override of id. A value below 1 reverts id to the
// inherited DPI.
func (s *Store) SetDPI(id string, dpi int) error {
	return s.setOverride(id, attrDPI, dpi)
}

// SetScaling sets the scaling factor of id. A value below 1 reverts id to
// the inherited scaling.
func (s *Store) SetScaling(id string, scaling int) error {
	return s.setOverride(id, attrScaling, scaling)
}

// setOverride removes the key for values below 1 and then stores the value
// either way. Readers treat any stored value below 1 as unset.
func (s *Store) setOverride(id, attr string, value int) error {
	key := appKey(id, attr)
	if value < 1 {
		if err := s.kv.Remove(key); err != nil {
			return fmt.Errorf("clearing %s of %s: %w", attr, id, err)
		}
	}
	if err := s.kv.SetValue(key, value); err != nil {
		return fmt.Errorf("storing %s of %s: %w", attr, id, err)
	}
	return nil
}
