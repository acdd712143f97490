// Package terminal holds the small amount of terminal handling tcell does
// not cover: tty detection, color capability detection, 256-color
// approximation and best-effort restoration after a crash.
package terminal
