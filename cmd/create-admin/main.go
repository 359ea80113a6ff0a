package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/smartresolve/admin-creator/internal/config"
	"github.com/smartresolve/admin-creator/internal/logger"
	"github.com/smartresolve/admin-creator/internal/prompt"
	"github.com/smartresolve/admin-creator/internal/service"
	"github.com/smartresolve/admin-creator/internal/supabase"
)

const (
	exitOK      = 0
	exitFailure = 1
)

func main() {
	// ─── Load Configuration ────────────────────────────────────────────
	cfg := config.Load()

	// ─── Initialize Logger ─────────────────────────────────────────────
	log := logger.Setup(cfg.LogLevel, cfg.LogFormat, os.Stderr)

	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Configuration is incomplete")
	}

	os.Exit(run(context.Background(), cfg, os.Stdin, os.Stdout, nil, log))
}

// run prompts for the admin details, sends the insert and prints the outcome.
// A non-201 response is reported and still exits 0; a request that never got
// a response exits 1.
func run(ctx context.Context, cfg *config.Config, in io.Reader, out io.Writer, doer supabase.HTTPDoer, log zerolog.Logger) int {
	// ─── Initialize Service ────────────────────────────────────────────
	client := supabase.NewClient(cfg, doer, log)
	adminService := service.NewAdminService(client, cfg.UsersTable, log)

	inspectKey(cfg, log)

	// ─── CLI Input ─────────────────────────────────────────────────────
	p := prompt.New(in, out, cfg.MaskPassword)

	fmt.Fprintln(out, "--- SmartResolve AI Admin Creator ---")

	email, err := p.Ask("Enter Admin Email: ")
	if err != nil {
		log.Error().Err(err).Msg("Failed to read email")
		return exitFailure
	}

	password, err := p.AskSecret("Enter Admin Password: ")
	if err != nil {
		log.Error().Err(err).Msg("Failed to read password")
		return exitFailure
	}

	name, err := p.Ask("Enter Full Name: ")
	if err != nil {
		log.Error().Err(err).Msg("Failed to read full name")
		return exitFailure
	}

	// ─── Logic ─────────────────────────────────────────────────────────
	outcome, err := adminService.Create(ctx, email, password, name)
	if err != nil {
		var te *supabase.TransportError
		if errors.As(err, &te) {
			log.Error().Err(te.Err).Str("url", te.URL).Msg("No response from Supabase")
		}
		fmt.Fprintf(out, "❌ Failed to create admin: %v\n", err)
		return exitFailure
	}

	fmt.Fprintln(out, outcome.Message())
	return exitOK
}

// inspectKey logs what the configured key says about itself. It never
// stops the run: PostgREST has the final word.
func inspectKey(cfg *config.Config, log zerolog.Logger) {
	info, err := supabase.InspectKey(cfg.SupabaseKey)
	if err != nil {
		log.Warn().Err(err).Msg("API key is not a JWT")
		return
	}

	log.Debug().
		Str("role", info.Role).
		Str("ref", info.Ref).
		Msg("Using API key")

	for _, w := range info.Warnings(cfg.SupabaseURL, time.Now()) {
		log.Warn().Msg(w)
	}
}
