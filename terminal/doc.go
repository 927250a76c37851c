// Package terminal provides direct ANSI terminal control for cell-grid games.
//
// Features:
//   - Raw mode, alternate screen and hidden cursor acquired by Init, restored by Fini
//   - Raw stdin decoding: UTF-8 runes, control keys, CSI/SS3 navigation keys
//   - SGR mouse reporting decoded into press, hold and release events
//   - Escape sequence writers for cursor placement and 24-bit/256 color
//   - EmergencyReset for panic paths where Fini cannot run
//
// The package bypasses terminfo entirely, emitting xterm-compatible sequences.
package terminal
