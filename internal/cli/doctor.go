package cli

import (
	"os"
	"regexp"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ksyq12/cfcert/internal/credentials"
	"github.com/ksyq12/cfcert/internal/envfile"
	"github.com/ksyq12/cfcert/internal/executor"
	"github.com/ksyq12/cfcert/internal/output"
)

var doctorJSON bool

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check system status and diagnose issues",
	Long: `Run diagnostic checks on the system and cfcert configuration.

Checks:
  - Certbot installation and version
  - dns-cloudflare plugin availability
  - .env file presence
  - Cloudflare API token resolution

Examples:
  cfcert doctor
  cfcert doctor --json`,
	Args: cobra.NoArgs,
	RunE: runDoctor,
}

func init() {
	doctorCmd.Flags().BoolVar(&doctorJSON, "json", false, "Output in JSON format")
	rootCmd.AddCommand(doctorCmd)
}

// CheckResult represents a single diagnostic check result
type CheckResult struct {
	Status  string `json:"status"` // "success", "warning", "error"
	Message string `json:"message"`
}

// DoctorReport contains all diagnostic results
type DoctorReport struct {
	SystemRequirements []CheckResult `json:"system_requirements"`
	Configuration      []CheckResult `json:"configuration"`
}

func runDoctor(cmd *cobra.Command, args []string) error {
	exec := executor.NewSystemExecutor()

	report := &DoctorReport{
		SystemRequirements: checkSystemRequirements(exec),
		Configuration:      checkConfiguration(flagEnvFile, os.Getenv),
	}

	if doctorJSON {
		return output.JSON(report)
	}

	displayDoctorResults(report)
	return nil
}

// certbotVersionPattern extracts the version from `certbot --version` output
var certbotVersionPattern = regexp.MustCompile(`certbot (\d+\.\d+(?:\.\d+)?)`)

func checkSystemRequirements(exec executor.CommandExecutor) []CheckResult {
	results := []CheckResult{}

	if _, err := exec.LookPath("certbot"); err != nil {
		results = append(results, CheckResult{
			Status:  "error",
			Message: "Certbot not installed (apt install certbot python3-certbot-dns-cloudflare)",
		})
		return results
	}

	version := "unknown"
	if out, err := exec.Execute("certbot", "--version"); err == nil {
		if matches := certbotVersionPattern.FindStringSubmatch(string(out)); len(matches) >= 2 {
			version = matches[1]
		}
	}
	results = append(results, CheckResult{
		Status:  "success",
		Message: "Certbot installed (" + version + ")",
	})

	if out, err := exec.Execute("certbot", "plugins"); err == nil && strings.Contains(string(out), "dns-cloudflare") {
		results = append(results, CheckResult{
			Status:  "success",
			Message: "dns-cloudflare plugin available",
		})
	} else {
		results = append(results, CheckResult{
			Status:  "error",
			Message: "dns-cloudflare plugin not available (pip install certbot-dns-cloudflare)",
		})
	}

	return results
}

func checkConfiguration(envFile string, getenv func(string) string) []CheckResult {
	results := []CheckResult{}

	fileVars, err := envfile.Load(envFile)
	switch {
	case err != nil:
		results = append(results, CheckResult{
			Status:  "error",
			Message: "Env file " + envFile + " could not be parsed",
		})
		fileVars = map[string]string{}
	case len(fileVars) == 0:
		if _, statErr := os.Stat(envFile); os.IsNotExist(statErr) {
			results = append(results, CheckResult{
				Status:  "warning",
				Message: "Env file " + envFile + " not found",
			})
		} else {
			results = append(results, CheckResult{
				Status:  "warning",
				Message: "Env file " + envFile + " is empty",
			})
		}
	default:
		results = append(results, CheckResult{
			Status:  "success",
			Message: "Env file " + envFile + " loaded",
		})
	}

	if fileVars["CLOUDFLARE_API_TOKEN"] != "" {
		results = append(results, CheckResult{
			Status:  "success",
			Message: "Cloudflare API token set (via env file)",
		})
	} else if getenv("CLOUDFLARE_API_TOKEN") != "" {
		results = append(results, CheckResult{
			Status:  "success",
			Message: "Cloudflare API token set (via environment)",
		})
	} else {
		results = append(results, CheckResult{
			Status:  "error",
			Message: "Cloudflare API token not set",
		})
	}

	if dir, err := credentials.Dir(); err == nil {
		if info, statErr := os.Stat(dir); statErr == nil && info.Mode().Perm() != 0o700 {
			results = append(results, CheckResult{
				Status:  "warning",
				Message: "Credentials directory " + dir + " is not owner-only",
			})
		}
	}

	return results
}

func displayDoctorResults(report *DoctorReport) {
	output.Print("Checking system requirements...")
	for _, check := range report.SystemRequirements {
		displayCheck(check)
	}
	output.Print("")

	output.Print("Checking configuration...")
	for _, check := range report.Configuration {
		displayCheck(check)
	}
}

func displayCheck(check CheckResult) {
	switch check.Status {
	case "success":
		output.Success("%s", check.Message)
	case "warning":
		output.Warn("%s", check.Message)
	case "error":
		output.Error("%s", check.Message)
	}
}
