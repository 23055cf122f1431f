// Package terminal renders the four-quadrant board with tcell and decodes player input.
//
// Features:
//   - True color (24-bit) and 256-color palettes
//   - Keyboard and mouse selection of quadrants
//   - Countdown, subtitle and tap feedback overlays
//   - Clean terminal restoration on exit/panic
package terminal
