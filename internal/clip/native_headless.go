//go:build wslclip_headless

package clip

import "errors"

// Headless builds (containers, CI) drop the cgo clipboard dependency; only
// the WSL backend can set anything.
func newNative() Setter {
	return unavailableSetter{err: errors.New("built without native clipboard support")}
}
