package profiles

import "github.com/PolarWolf314/flatrunner/internal/configs"

// Display reports the physical DPI of the primary display.
type Display interface {
	PhysicalDPI() int
}

// StaticDisplay is a Display with a fixed DPI.
type StaticDisplay int

func (d StaticDisplay) PhysicalDPI() int {
	return int(d)
}

// DefaultDPI returns the device DPI, the last fallback of merged DPI lookups.
// Displays reporting a non-positive DPI fall back to configs.DefaultDeviceDPI.
func (s *Store) DefaultDPI() int {
	if dpi := s.display.PhysicalDPI(); dpi > 0 {
		return dpi
	}
	return configs.DefaultDeviceDPI
}
