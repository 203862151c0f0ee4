package cli

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/ksyq12/cfcert/internal/certbot"
	"github.com/ksyq12/cfcert/internal/credentials"
	"github.com/ksyq12/cfcert/internal/envfile"
	"github.com/ksyq12/cfcert/internal/errors"
	"github.com/ksyq12/cfcert/internal/logger"
	"github.com/ksyq12/cfcert/internal/output"
)

var (
	flagDomain      string
	flagEmail       string
	flagStaging     bool
	flagPropagation int
	flagEnvFile     string
	verbose         bool
	version         = "dev"
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "cfcert",
	Short: "Request TLS certificates using Cloudflare DNS",
	Long: `cfcert requests or renews Let's Encrypt TLS certificates by running
certbot with the Cloudflare DNS-01 challenge plugin.

Configuration is resolved from CLI flags, a .env file, and the process
environment, in that order of precedence. The Cloudflare API token is
written to a short-lived credentials file that is removed after the run.

Examples:
  cfcert -d example.com -e admin@example.com
  cfcert -d example.com -e admin@example.com --staging
  cfcert --env-file /etc/cfcert/.env`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runRequest,
}

// Execute runs the root command. Errors are printed once, to stderr.
func Execute() {
	cobra.OnInitialize(func() {
		logger.Init(verbose)
	})

	if err := rootCmd.Execute(); err != nil {
		output.Error("%v", err)
		os.Exit(1)
	}
}

// SetVersion sets the version string for the CLI
func SetVersion(v string) {
	version = v
	rootCmd.Version = v
}

func init() {
	rootCmd.Flags().StringVarP(&flagDomain, "domain", "d", "", "Domain name to request a certificate for (or DOMAIN in .env)")
	rootCmd.Flags().StringVarP(&flagEmail, "email", "e", "", "Email address for certificate notifications (or EMAIL in .env)")
	rootCmd.Flags().BoolVar(&flagStaging, "staging", false, "Use the Let's Encrypt staging endpoint (or STAGING=1 in .env)")
	rootCmd.Flags().IntVar(&flagPropagation, "propagation-seconds", certbot.DefaultPropagationSeconds, "DNS propagation wait in seconds (or PROPAGATION_SECONDS in .env)")
	rootCmd.PersistentFlags().StringVar(&flagEnvFile, "env-file", ".env", "Path to the .env configuration file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose logging for debugging")
}

func runRequest(cmd *cobra.Command, args []string) error {
	fileVars, err := envfile.Load(flagEnvFile)
	if err != nil {
		return err
	}

	cfg, err := resolve(flagValues{
		domain:             flagDomain,
		email:              flagEmail,
		staging:            flagStaging,
		propagationSeconds: flagPropagation,
		propagationSet:     cmd.Flags().Changed("propagation-seconds"),
	}, fileVars, os.Getenv)
	if err != nil {
		return err
	}

	if cfg.Domain == "" {
		return errors.Validation("DOMAIN is required. Set it via -d/--domain argument or in .env file")
	}
	if cfg.Email == "" {
		return errors.Validation("EMAIL is required. Set it via -e/--email argument or in .env file")
	}
	if !credentials.Validate(cfg.APIToken) {
		return errors.ErrMissingToken
	}

	logger.DebugFields("resolved configuration", map[string]interface{}{
		"domain":              cfg.Domain,
		"email":               cfg.Email,
		"staging":             cfg.Staging,
		"propagation_seconds": cfg.PropagationSeconds,
	})

	return certbot.Request(certbot.Options{
		Domain:             cfg.Domain,
		Email:              cfg.Email,
		APIToken:           cfg.APIToken,
		Staging:            cfg.Staging,
		PropagationSeconds: cfg.PropagationSeconds,
	})
}
