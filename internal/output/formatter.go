// Package output provides user-facing message formatting for the cfcert
// CLI tool. Success, Info, and Print write to stdout; Error writes to
// stderr so failure diagnostics stay on the error stream and stdout
// remains clean for certbot's own inherited output.
package output

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/fatih/color"
)

var (
	successColor = color.New(color.FgGreen)
	errorColor   = color.New(color.FgRed)
	warnColor    = color.New(color.FgYellow)
	infoColor    = color.New(color.FgCyan)
)

// JSON outputs data as JSON
func JSON(data interface{}) error {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

// Success prints a success message to stdout
func Success(format string, args ...interface{}) {
	_, _ = successColor.Printf("✓ "+format+"\n", args...)
}

// Error prints an error message to stderr
func Error(format string, args ...interface{}) {
	_, _ = errorColor.Fprintf(color.Error, "✗ "+format+"\n", args...)
}

// Warn prints a warning message to stdout
func Warn(format string, args ...interface{}) {
	_, _ = warnColor.Printf("⚠ "+format+"\n", args...)
}

// Info prints an info message to stdout
func Info(format string, args ...interface{}) {
	_, _ = infoColor.Printf("→ "+format+"\n", args...)
}

// Print prints a plain message to stdout
func Print(format string, args ...interface{}) {
	fmt.Printf(format+"\n", args...)
}
