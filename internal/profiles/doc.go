// Package profiles manages per-application launch settings for sandboxed
// desktop applications.
//
// Every application id owns a profile with five attributes: display name,
// icon, DPI override, scaling factor and environment-variable overrides.
// The reserved id "default" names the default profile, whose attributes are
// the fallback for every other profile.
//
// # Merged Lookups
//
// Accessors that take a merge flag resolve unset attributes against the
// default profile:
//
//   - DPI: own value, else a DPI implied by the profile's own scaling
//     (device DPI / scaling), else the default profile's DPI, else the
//     device DPI
//   - Scaling: own value, else the default profile's scaling, never below 1
//   - Env: own variables, plus default-profile variables the profile does
//     not set itself
//
// The default profile never merges against anything.
//
// # Storage
//
// Store holds no cache. Every accessor and mutator goes straight to the
// injected kvstore.Store, so several Store values over the same backing
// store always agree. Profiles are created by their first write, and reads
// of unknown ids return zero values. Apps is the only authoritative list of
// registered applications; replacing it with UpdateApps keeps the stored
// attributes of applications that dropped out of the list.
//
// # First Run
//
// New installs the built-in default environment when the stored settings
// version is older than SettingsVersion or the default profile has no
// environment, then records SettingsVersion.
package profiles
