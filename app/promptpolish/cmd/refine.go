package cmd

import (
	"errors"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"github.com/promptpolish/promptpolish/internal/auth"
	"github.com/promptpolish/promptpolish/internal/console"
	"github.com/promptpolish/promptpolish/internal/flow"
	"github.com/promptpolish/promptpolish/internal/launcher"
	"github.com/promptpolish/promptpolish/internal/optimizer"
	"github.com/promptpolish/promptpolish/internal/storage"
	"github.com/promptpolish/promptpolish/internal/telemetry"
)

var refineCmd = &cobra.Command{
	Use:   "refine",
	Short: "Run an interactive prompt refinement session",
	Long: `Runs one end-to-end session: you enter a draft prompt, answer clarifying
questions, and review refined candidates until you approve one. The approved
prompt is saved and handed to the configured chat application.`,
	RunE: runRefine,
}

func init() {
	rootCmd.AddCommand(refineCmd)
}

func runRefine(cmd *cobra.Command, args []string) error {
	ctx := setupContext()

	if err := cfg.Validate(); err != nil {
		return err
	}

	ui := console.New()

	telemetryProvider, err := telemetry.NewProvider(ctx, telemetry.Config{
		Enabled:      cfg.TelemetryEnabled,
		OTLPEndpoint: cfg.OTLPEndpoint,
	})
	if err != nil {
		return fmt.Errorf("failed to initialize telemetry: %w", err)
	}
	defer func() {
		if err := telemetryProvider.Shutdown(ctx); err != nil {
			log.Printf("Failed to shut down telemetry: %v", err)
		}
	}()

	users, err := auth.NewStore(cfg.UsersDBPath)
	if err != nil {
		return fmt.Errorf("failed to open user store: %w", err)
	}
	defer func() { _ = users.Close() }()

	username, err := authenticate(ui, users)
	if err != nil {
		return err
	}
	if username == "" {
		return nil // User chose to exit
	}
	ui.Successf("Welcome, %s!", username)

	conn, err := createConnector(cfg)
	if err != nil {
		return err
	}
	conn = telemetryProvider.WrapConnector(conn, cfg.Provider, telemetry.NewSessionID())

	opt, err := optimizer.New(conn)
	if err != nil {
		return err
	}

	store, err := storage.NewStore(cfg.StorageDir)
	if err != nil {
		return err
	}

	var deliverer flow.Deliverer
	if cfg.DeliveryTarget == "web" {
		deliverer = launcher.NewWebLauncher(cfg.WebChatURL)
	} else {
		deliverer = launcher.NewChatLauncher()
	}

	runner := flow.NewRunner(opt, ui, store, deliverer, cfg.DeliveryTarget)
	return runner.Run(ctx)
}

// authenticate gates the session behind login or registration. Returns the
// username, or empty if the user chose to exit.
func authenticate(ui *console.Console, users *auth.Store) (string, error) {
	for {
		ui.Printf("\n--- Authentication Required ---")
		ui.Printf("1. Login")
		ui.Printf("2. Register")
		ui.Printf("3. Exit")
		choice, err := ui.AskLine("Select an option (1-3): ")
		if err != nil {
			return "", err
		}

		switch choice {
		case "1":
			username, password, err := askCredentials(ui)
			if err != nil {
				return "", err
			}
			if err := users.Login(username, password); err != nil {
				if errors.Is(err, auth.ErrInvalidCredentials) {
					ui.Errorf("Invalid username or password.")
					continue
				}
				return "", err
			}
			return username, nil
		case "2":
			username, password, err := askCredentials(ui)
			if err != nil {
				return "", err
			}
			if err := users.Register(username, password); err != nil {
				if errors.Is(err, auth.ErrUserExists) {
					ui.Errorf("Username %q already exists.", username)
					continue
				}
				return "", err
			}
			ui.Successf("Registration successful! Please login.")
		case "3":
			ui.Printf("Goodbye!")
			return "", nil
		default:
			ui.Errorf("Invalid choice, please try again.")
		}
	}
}

func askCredentials(ui *console.Console) (string, string, error) {
	username, err := ui.AskLine("Username: ")
	if err != nil {
		return "", "", err
	}
	password, err := ui.AskPassword("Password: ")
	if err != nil {
		return "", "", err
	}
	return username, password, nil
}
