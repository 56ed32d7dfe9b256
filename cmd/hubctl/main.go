// hubctl is a small operator CLI for a UserHub-compatible server. It drives
// the same client SDK that applications embed, so it doubles as a smoke test
// for a running hubd.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"userhub-go/pkg/userhub"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "invite":
		err = runInvite(os.Args[2:])
	case "health":
		err = runHealth(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "hubctl: %s\n", describe(err))
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: hubctl <command> [flags]

commands:
  invite   authenticate and send a join-organization invitation
  health   check a server's liveness probe`)
}

func runInvite(args []string) error {
	fs := flag.NewFlagSet("invite", flag.ExitOnError)
	baseURL := fs.String("url", envOrDefault("HUB_URL", "http://localhost:8080"), "server base URL")
	username := fs.String("username", os.Getenv("HUB_USERNAME"), "username for password authentication")
	password := fs.String("password", os.Getenv("HUB_PASSWORD"), "password for password authentication")
	providerToken := fs.String("provider-token", os.Getenv("HUB_PROVIDER_TOKEN"), "identity-provider token for token exchange")
	provider := fs.String("provider", os.Getenv("HUB_PROVIDER"), "identity provider name (with -provider-token)")
	email := fs.String("email", "", "invitee email address")
	role := fs.String("role", "", "role granted on acceptance")
	timeout := fs.Duration("timeout", userhub.DefaultTimeout, "overall request timeout")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	client := userhub.NewClient(*baseURL)

	var (
		token *userhub.SessionToken
		err   error
	)
	switch {
	case *providerToken != "":
		token, err = client.ExchangeToken(ctx, *providerToken, *provider)
	case *username != "":
		token, err = client.CreateAPISession(ctx, *username, *password)
	default:
		return errors.New("either -username/-password or -provider-token/-provider is required")
	}
	if err != nil {
		return err
	}

	result, err := client.SendInvitation(ctx, token, *email, *role)
	if err != nil {
		return err
	}

	fmt.Printf("%s: %s\n", result.Status, result.Message)
	return nil
}

func runHealth(args []string) error {
	fs := flag.NewFlagSet("health", flag.ExitOnError)
	baseURL := fs.String("url", envOrDefault("HUB_URL", "http://localhost:8080"), "server base URL")
	timeout := fs.Duration("timeout", 10*time.Second, "overall request timeout")
	if err := fs.Parse(args); err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	client := userhub.NewClient(*baseURL)
	health, err := client.GetLiveness(ctx)
	if err != nil {
		return err
	}

	fmt.Printf("%s (version %s, up %s)\n", health.Status, health.Version, health.Uptime)
	return nil
}

// describe prefixes errors with their classification so scripts can tell an
// auth failure from a flaky network without parsing messages.
func describe(err error) string {
	var (
		authErr      *userhub.AuthError
		inviteErr    *userhub.InvitationError
		netErr       *userhub.NetworkError
		cancelledErr *userhub.CancelledError
	)
	switch {
	case errors.As(err, &authErr):
		return fmt.Sprintf("authentication failed: %s", authErr.Message)
	case errors.As(err, &inviteErr):
		return fmt.Sprintf("invitation rejected: %s", inviteErr.Message)
	case errors.As(err, &cancelledErr):
		return "request cancelled"
	case errors.As(err, &netErr):
		return fmt.Sprintf("network error: %v", netErr.Err)
	default:
		return err.Error()
	}
}

func envOrDefault(key, defaultValue string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return defaultValue
}
