//go:build !linux

package terminal

// resetTerminalMode is a no-op where termios ioctls are unavailable;
// tcell's Fini restores the mode on a clean exit
func resetTerminalMode() {}
