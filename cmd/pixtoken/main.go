// pixtoken issues dashboard tokens and signs test webhook bodies with the
// secrets the server is configured with.
//
//	pixtoken -tenant 2 -role manager -ttl 12h
//	pixtoken -sign '{"paymentId":"abc123","amount":10.50}'
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/caarlos0/env/v6"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"

	"github.com/GlebRadaev/pixcontrol/pkg/auth"
	"github.com/GlebRadaev/pixcontrol/pkg/signature"
)

type secrets struct {
	JWTSecret     string `env:"JWT_SECRET"`
	WebhookSecret string `env:"WEBHOOK_SECRET"`
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		log.Fatal().Err(err).Msg("pixtoken")
	}
}

func run(args []string, out io.Writer) error {
	_ = godotenv.Load()

	var s secrets
	if err := env.Parse(&s); err != nil {
		return fmt.Errorf("can't parse env: %w", err)
	}

	fs := flag.NewFlagSet("pixtoken", flag.ContinueOnError)
	fs.SetOutput(out)
	tenantID := fs.Int("tenant", 1, "tenant id")
	role := fs.String("role", auth.RoleCashier, "role: cashier or manager")
	ttl := fs.Duration("ttl", 24*time.Hour, "token lifetime")
	body := fs.String("sign", "", "webhook body to sign instead of issuing a token")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *body != "" {
		if s.WebhookSecret == "" {
			return errors.New("WEBHOOK_SECRET is not set")
		}
		fmt.Fprintf(out, "%s: %s\n", signature.Header, signature.NewVerifier(s.WebhookSecret).Sign([]byte(*body)))
		return nil
	}

	if s.JWTSecret == "" {
		return errors.New("JWT_SECRET is not set")
	}
	if *tenantID <= 0 {
		return fmt.Errorf("invalid tenant id %d", *tenantID)
	}
	token, err := auth.NewJWTService(s.JWTSecret).GenerateJWT(*tenantID, *role, time.Now().Add(*ttl))
	if err != nil {
		return err
	}
	fmt.Fprintln(out, token)
	return nil
}
