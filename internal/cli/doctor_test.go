package cli

import (
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ksyq12/cfcert/internal/executor"
)

func findCheck(results []CheckResult, substr string) (CheckResult, bool) {
	for _, r := range results {
		if strings.Contains(r.Message, substr) {
			return r, true
		}
	}
	return CheckResult{}, false
}

func TestCheckSystemRequirements(t *testing.T) {
	t.Run("certbot and plugin present", func(t *testing.T) {
		mock := &executor.MockExecutor{
			LookPathFunc: func(file string) (string, error) {
				return "/usr/bin/" + file, nil
			},
			ExecuteFunc: func(name string, args ...string) ([]byte, error) {
				if len(args) > 0 && args[0] == "--version" {
					return []byte("certbot 2.9.0"), nil
				}
				if len(args) > 0 && args[0] == "plugins" {
					return []byte("* dns-cloudflare\nDescription: Obtain certificates using a DNS TXT record"), nil
				}
				return []byte(""), nil
			},
		}

		results := checkSystemRequirements(mock)

		check, ok := findCheck(results, "Certbot installed")
		if !ok || check.Status != "success" {
			t.Errorf("certbot check missing or failed: %v", results)
		}
		if !strings.Contains(check.Message, "2.9.0") {
			t.Errorf("version not extracted: %s", check.Message)
		}

		plugin, ok := findCheck(results, "dns-cloudflare plugin")
		if !ok || plugin.Status != "success" {
			t.Errorf("plugin check missing or failed: %v", results)
		}
	})

	t.Run("certbot missing", func(t *testing.T) {
		mock := &executor.MockExecutor{
			LookPathFunc: func(file string) (string, error) {
				return "", errors.New("not found")
			},
		}

		results := checkSystemRequirements(mock)

		check, ok := findCheck(results, "Certbot not installed")
		if !ok || check.Status != "error" {
			t.Errorf("expected certbot error check: %v", results)
		}
		if len(results) != 1 {
			t.Errorf("plugin check should be skipped when certbot is missing: %v", results)
		}
	})

	t.Run("plugin missing", func(t *testing.T) {
		mock := &executor.MockExecutor{
			LookPathFunc: func(file string) (string, error) {
				return "/usr/bin/" + file, nil
			},
			ExecuteFunc: func(name string, args ...string) ([]byte, error) {
				if len(args) > 0 && args[0] == "plugins" {
					return []byte("* standalone\n* webroot"), nil
				}
				return []byte("certbot 2.9.0"), nil
			},
		}

		results := checkSystemRequirements(mock)

		plugin, ok := findCheck(results, "dns-cloudflare plugin not available")
		if !ok || plugin.Status != "error" {
			t.Errorf("expected plugin error check: %v", results)
		}
	})
}

func TestCheckConfiguration(t *testing.T) {
	t.Run("env file with token", func(t *testing.T) {
		envFile := writeEnvFile(t, "CLOUDFLARE_API_TOKEN=test_token\n")

		results := checkConfiguration(envFile, func(string) string { return "" })

		if check, ok := findCheck(results, "loaded"); !ok || check.Status != "success" {
			t.Errorf("expected env file success check: %v", results)
		}
		if check, ok := findCheck(results, "token set (via env file)"); !ok || check.Status != "success" {
			t.Errorf("expected token success check: %v", results)
		}
	})

	t.Run("missing env file with token from environment", func(t *testing.T) {
		envFile := filepath.Join(t.TempDir(), "nonexistent.env")

		results := checkConfiguration(envFile, func(key string) string {
			if key == "CLOUDFLARE_API_TOKEN" {
				return "env_token"
			}
			return ""
		})

		if check, ok := findCheck(results, "not found"); !ok || check.Status != "warning" {
			t.Errorf("expected env file warning: %v", results)
		}
		if check, ok := findCheck(results, "token set (via environment)"); !ok || check.Status != "success" {
			t.Errorf("expected token success check: %v", results)
		}
	})

	t.Run("no token anywhere", func(t *testing.T) {
		envFile := filepath.Join(t.TempDir(), "nonexistent.env")

		results := checkConfiguration(envFile, func(string) string { return "" })

		if check, ok := findCheck(results, "token not set"); !ok || check.Status != "error" {
			t.Errorf("expected token error check: %v", results)
		}
	})
}
