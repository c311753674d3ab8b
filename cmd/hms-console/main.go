package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/hms/hms/internal/config"
	"github.com/hms/hms/internal/platform/auth"
	"github.com/hms/hms/internal/platform/console"
	"github.com/hms/hms/internal/platform/sandbox"
	"github.com/hms/hms/internal/session"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "hms-console",
		Short: "Hospital administration console",
	}

	rootCmd.AddCommand(runCmd())
	rootCmd.AddCommand(seedCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func runCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Start the interactive session",
		RunE: func(cmd *cobra.Command, args []string) error {
			return run()
		},
	}
}

func seedCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Seed a session with demo data and print what was created",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			logger := newLogger(cfg)
			sess := session.New(cfg, logger)

			seedCfg := sandbox.DefaultSeedConfig()
			seedCfg.Seed = cfg.DemoSeed
			res, err := sandbox.Seed(context.Background(), sess, seedCfg)
			if err != nil {
				return err
			}
			out, _ := json.MarshalIndent(res, "", "  ")
			fmt.Println(string(out))
			return nil
		},
	}
}

func newLogger(cfg *config.Config) zerolog.Logger {
	// Session logs go to stderr so menu output on stdout stays clean.
	logger := zerolog.New(os.Stderr).With().Timestamp().Logger()
	if cfg.IsDev() {
		logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()
	}
	return logger
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := newLogger(cfg)
	pal := console.Palette{Enabled: isatty.IsTerminal(os.Stdout.Fd())}
	prompter := console.NewPrompter(os.Stdin, os.Stdout, pal)

	authn := auth.NewAuthenticator()
	authn.Register(cfg.OperatorUser, cfg.OperatorPass)
	if !login(prompter, authn, pal) {
		return fmt.Errorf("login failed")
	}

	sess := session.New(cfg, logger)

	ctx := context.Background()
	if cfg.SeedDemoData {
		seedCfg := sandbox.DefaultSeedConfig()
		seedCfg.Seed = cfg.DemoSeed
		res, err := sandbox.Seed(ctx, sess, seedCfg)
		if err != nil {
			return fmt.Errorf("seed demo data: %w", err)
		}
		logger.Info().
			Int("patients", res.Patients).
			Int("doctors", res.Doctors).
			Int("appointments", res.Appointments).
			Int("bills", res.Bills).
			Msg("demo data seeded")
	}

	menu := console.NewMenu(sess, prompter, os.Stdout, pal)
	return menu.Run(ctx)
}

// login gives the operator three attempts.
func login(p *console.Prompter, authn *auth.Authenticator, pal console.Palette) bool {
	for attempt := 0; attempt < 3; attempt++ {
		user, err := p.String("username")
		if err != nil {
			return false
		}
		pass, err := p.Secret("password")
		if err != nil {
			return false
		}
		if authn.Login(user, pass) {
			fmt.Println(pal.OK("welcome, " + user))
			return true
		}
		fmt.Println(pal.Error("invalid credentials"))
	}
	return false
}
