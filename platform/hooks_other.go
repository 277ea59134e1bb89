//go:build !linux

package platform

// Hosted returns the development/test Hooks implementation for platforms
// without an eventfd-equivalent wired up yet (see hooks_linux.go).
func Hosted() Hooks {
	return newCondHooks()
}
