package cli

import (
	"fmt"
	"strconv"

	"github.com/ksyq12/cfcert/internal/certbot"
	"github.com/ksyq12/cfcert/internal/errors"
)

// Config is the fully resolved configuration for one certificate request.
// It is built once per run and not mutated afterwards.
type Config struct {
	Domain             string
	Email              string
	APIToken           string
	Staging            bool
	PropagationSeconds int
}

// flagValues carries the CLI flag inputs into resolution. propagationSet
// distinguishes an explicit --propagation-seconds from the zero value.
type flagValues struct {
	domain             string
	email              string
	staging            bool
	propagationSeconds int
	propagationSet     bool
}

// resolve merges the three configuration sources by precedence:
// CLI flag, then env file entry, then process environment. The API token
// has no flag and is read from the env file or the environment only.
// Environment access goes through getenv so tests can inject it.
func resolve(flags flagValues, fileVars map[string]string, getenv func(string) string) (Config, error) {
	cfg := Config{
		Domain:             firstNonEmpty(flags.domain, fileVars["DOMAIN"], getenv("DOMAIN")),
		Email:              firstNonEmpty(flags.email, fileVars["EMAIL"], getenv("EMAIL")),
		APIToken:           firstNonEmpty(fileVars["CLOUDFLARE_API_TOKEN"], getenv("CLOUDFLARE_API_TOKEN")),
		Staging:            flags.staging || fileVars["STAGING"] == "1" || getenv("STAGING") == "1",
		PropagationSeconds: certbot.DefaultPropagationSeconds,
	}

	switch {
	case flags.propagationSet:
		cfg.PropagationSeconds = flags.propagationSeconds
	case fileVars["PROPAGATION_SECONDS"] != "":
		n, err := strconv.Atoi(fileVars["PROPAGATION_SECONDS"])
		if err != nil {
			return Config{}, errors.Validation(fmt.Sprintf("invalid PROPAGATION_SECONDS value %q", fileVars["PROPAGATION_SECONDS"]))
		}
		cfg.PropagationSeconds = n
	}
	if cfg.PropagationSeconds < 0 {
		return Config{}, errors.Validation(fmt.Sprintf("propagation seconds must not be negative, got %d", cfg.PropagationSeconds))
	}

	return cfg, nil
}

// firstNonEmpty returns the first non-empty value
func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
