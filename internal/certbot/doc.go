// Package certbot obtains TLS certificates by invoking the Certbot ACME
// client with the Cloudflare DNS-01 challenge plugin.
//
// # Prerequisites
//
// Certbot and the dns-cloudflare plugin must be installed:
//
//	# Ubuntu/Debian
//	sudo apt install certbot python3-certbot-dns-cloudflare
//
//	# macOS
//	brew install certbot && pip install certbot-dns-cloudflare
//
// # Basic Usage
//
// Request a certificate:
//
//	err := certbot.Request(certbot.Options{
//	    Domain:   "example.com",
//	    Email:    "admin@example.com",
//	    APIToken: token,
//	})
//
// Request carries the whole lifecycle: the Cloudflare API token is written
// to ~/.secrets/certbot/cloudflare.ini (owner-only permissions) right
// before certbot runs and deleted again on every return path. Certbot
// itself runs synchronously with the caller's stdout/stderr, so its own
// progress output is visible to the user.
//
// With Staging set, certbot targets Let's Encrypt's staging endpoint,
// which issues untrusted test certificates without consuming production
// rate limits.
//
// # Certificate Paths
//
// Issued certificates land in Let's Encrypt's standard directory:
//
//	/etc/letsencrypt/live/{domain}/fullchain.pem  (certificate chain)
//	/etc/letsencrypt/live/{domain}/privkey.pem    (private key)
//
// # Testing
//
// The package uses a global executor that can be replaced for testing:
//
//	mockExec := &executor.MockExecutor{}
//	certbot.SetExecutor(mockExec)
//	defer certbot.ResetExecutor()
//
// # Error Handling
//
// A missing certbot binary returns the errors.ErrCertbotNotFound sentinel
// (its message carries an installation hint); a certbot run that exits
// non-zero returns an ErrCodeCertbot error wrapping the exit status. Both
// are terminal for the invocation; there are no retries.
package certbot
