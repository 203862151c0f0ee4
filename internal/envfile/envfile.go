// Package envfile reads KEY=VALUE configuration files in the common .env
// format: one pair per line, lines starting with # ignored, surrounding
// whitespace trimmed, and one layer of matching single or double quotes
// stripped from values. A duplicated key keeps the last value.
//
// A nonexistent file is not an error; it reads as an empty mapping, so a
// missing .env simply contributes nothing to configuration resolution.
// A line that cannot be split into key and value fails the whole file.
package envfile

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"

	"github.com/ksyq12/cfcert/internal/errors"
	"github.com/ksyq12/cfcert/internal/logger"
)

// Load reads the env file at path into a key-value mapping.
func Load(path string) (map[string]string, error) {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return map[string]string{}, nil
	}

	vars, err := godotenv.Read(path)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeConfig, fmt.Sprintf("failed to parse %s", path), err)
	}

	logger.Debug("loaded %d entries from %s", len(vars), path)
	return vars, nil
}
