// Package credentials manages the Cloudflare API token: validating its
// presence and materializing the short-lived credentials file certbot's
// dns-cloudflare plugin reads.
//
// The credentials file lives at ~/.secrets/certbot/cloudflare.ini with
// owner-only permissions and holds a single line:
//
//	dns_cloudflare_api_token = <token>
//
// It exists only for the duration of one certbot invocation; the caller
// defers Remove so the token never outlives the request.
package credentials

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ksyq12/cfcert/internal/errors"
)

const (
	secretsDir      = ".secrets/certbot"
	credentialsFile = "cloudflare.ini"

	dirMode  = 0o700
	fileMode = 0o600
)

// diagnostics is where Validate writes its user guidance.
// Replaceable for testing. Default is os.Stderr.
var diagnostics io.Writer = os.Stderr

// SetDiagnostics redirects validation diagnostics (for testing)
func SetDiagnostics(w io.Writer) {
	diagnostics = w
}

// ResetDiagnostics restores diagnostics to stderr
func ResetDiagnostics() {
	diagnostics = os.Stderr
}

// Validate checks that the API token is present. On failure it writes
// instructions for supplying the token to the error stream.
func Validate(token string) bool {
	if token != "" {
		return true
	}

	fmt.Fprintln(diagnostics, "Error: CLOUDFLARE_API_TOKEN is required")
	fmt.Fprintln(diagnostics)
	fmt.Fprintln(diagnostics, "Please set it in one of these ways:")
	fmt.Fprintln(diagnostics, "1. Create a .env file with: CLOUDFLARE_API_TOKEN=your_token")
	fmt.Fprintln(diagnostics, "2. Export it: export CLOUDFLARE_API_TOKEN=your_token")
	return false
}

// Dir returns the directory holding the credentials file.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", errors.Wrap(errors.ErrCodeCredentials, "failed to get home directory", err)
	}
	return filepath.Join(home, secretsDir), nil
}

// Path returns the credentials file path.
func Path() (string, error) {
	dir, err := Dir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, credentialsFile), nil
}

// File is a written credentials file pending removal.
type File struct {
	path string
}

// Write creates the credentials directory and file with owner-only
// permissions and returns a handle whose Remove the caller must defer.
func Write(token string) (*File, error) {
	dir, err := Dir()
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(dir, dirMode); err != nil {
		return nil, errors.Wrap(errors.ErrCodeCredentials, "failed to create credentials directory", err)
	}

	path := filepath.Join(dir, credentialsFile)
	content := fmt.Sprintf("dns_cloudflare_api_token = %s\n", token)
	if err := os.WriteFile(path, []byte(content), fileMode); err != nil {
		return nil, errors.Wrap(errors.ErrCodeCredentials, "failed to write credentials file", err)
	}
	// WriteFile only applies the mode on creation; tighten a pre-existing file too
	if err := os.Chmod(path, fileMode); err != nil {
		return nil, errors.Wrap(errors.ErrCodeCredentials, "failed to restrict credentials file permissions", err)
	}

	return &File{path: path}, nil
}

// Path returns the on-disk location of the credentials file.
func (f *File) Path() string {
	return f.path
}

// Remove deletes the credentials file. A file already gone is not an error.
func (f *File) Remove() error {
	err := os.Remove(f.path)
	if err != nil && !os.IsNotExist(err) {
		return errors.Wrap(errors.ErrCodeCredentials, "failed to remove credentials file", err)
	}
	return nil
}
