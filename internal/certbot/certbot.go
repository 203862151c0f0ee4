package certbot

import (
	"path/filepath"
	"strconv"

	"github.com/ksyq12/cfcert/internal/credentials"
	"github.com/ksyq12/cfcert/internal/errors"
	"github.com/ksyq12/cfcert/internal/executor"
	"github.com/ksyq12/cfcert/internal/logger"
	"github.com/ksyq12/cfcert/internal/output"
)

// Cert represents an issued SSL certificate
type Cert struct {
	Domain   string
	CertPath string
	KeyPath  string
}

// letsencryptDir is the base directory for Let's Encrypt certificates
const letsencryptDir = "/etc/letsencrypt/live"

// certbotBin is the external ACME client binary
const certbotBin = "certbot"

// DefaultPropagationSeconds is the DNS propagation wait used when none is configured.
const DefaultPropagationSeconds = 10

// cmdExecutor is the command executor (can be replaced for testing)
var cmdExecutor executor.CommandExecutor = executor.NewSystemExecutor()

// SetExecutor allows tests to inject a mock executor
func SetExecutor(exec executor.CommandExecutor) {
	cmdExecutor = exec
}

// ResetExecutor resets the executor to the default system executor
func ResetExecutor() {
	cmdExecutor = executor.NewSystemExecutor()
}

// IsInstalled checks if certbot is installed
func IsInstalled() bool {
	_, err := cmdExecutor.LookPath(certbotBin)
	return err == nil
}

// CertPaths returns the conventional certificate paths for a domain
func CertPaths(domain string) *Cert {
	return &Cert{
		Domain:   domain,
		CertPath: filepath.Join(letsencryptDir, domain, "fullchain.pem"),
		KeyPath:  filepath.Join(letsencryptDir, domain, "privkey.pem"),
	}
}

// Options configures a single certificate request.
type Options struct {
	Domain             string
	Email              string
	APIToken           string
	Staging            bool
	PropagationSeconds int
}

// buildArgs assembles the certbot invocation for the dns-cloudflare plugin
func buildArgs(credentialsPath string, opts Options) []string {
	args := []string{
		"certonly",
		"--dns-cloudflare",
		"--dns-cloudflare-credentials", credentialsPath,
		"--dns-cloudflare-propagation-seconds", strconv.Itoa(opts.PropagationSeconds),
		"-d", opts.Domain,
		"--email", opts.Email,
		"--agree-tos",
		"--non-interactive",
	}
	if opts.Staging {
		args = append(args, "--staging")
	}
	return args
}

// Request performs one certificate request or renewal via certbot's
// dns-cloudflare plugin. It writes the credentials file, runs certbot with
// inherited output streams, and removes the credentials file on every
// return path.
func Request(opts Options) error {
	if opts.PropagationSeconds <= 0 {
		opts.PropagationSeconds = DefaultPropagationSeconds
	}

	if !IsInstalled() {
		return errors.ErrCertbotNotFound
	}

	credFile, err := credentials.Write(opts.APIToken)
	if err != nil {
		return err
	}
	defer func() {
		if rerr := credFile.Remove(); rerr != nil {
			logger.Warn("credentials cleanup failed: %v", rerr)
		}
	}()

	args := buildArgs(credFile.Path(), opts)
	logger.Debug("running %s %v", certbotBin, args)

	output.Info("Requesting certificate for %s...", opts.Domain)
	output.Print("Using Cloudflare API (propagation wait: %ds)", opts.PropagationSeconds)
	if opts.Staging {
		output.Warn("Using STAGING environment (test certificates)")
	}

	if err := cmdExecutor.Run(certbotBin, args...); err != nil {
		return errors.WrapDomain(errors.ErrCodeCertbot, opts.Domain, "Failed to obtain certificate", err)
	}

	output.Success("Certificate successfully obtained for %s", opts.Domain)
	output.Print("Certificate location: %s/", filepath.Join(letsencryptDir, opts.Domain))
	return nil
}
