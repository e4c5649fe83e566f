// Package debug provides optional file-based debug logging.
//
// When the FLEX_DEBUG environment variable is set to a file path, debug
// messages are appended to that file as JSON lines, rotated once the file
// grows large. Otherwise, logging is a no-op.
package debug
