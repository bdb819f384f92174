package cmd

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/promptpolish/promptpolish/internal/config"
)

var cfg config.Config

var rootCmd = &cobra.Command{
	Use:   "promptpolish",
	Short: "Interactive prompt refinement for generative AI tools",
	Long: `PromptPolish turns a vague draft request into a polished prompt through a
clarify-then-refine dialogue with a language model, saves the result, and
hands it to an external chat application.`,
	PersistentPreRunE: loadRootConfig,
}

func Execute() error {
	return rootCmd.Execute()
}

func loadRootConfig(_ *cobra.Command, _ []string) error {
	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	loaded, err := config.Load()
	if err != nil {
		return err
	}

	// Flags override file and environment values
	if flagProvider != "" {
		loaded.Provider = flagProvider
	}
	if flagModel != "" {
		loaded.Model = flagModel
	}
	if flagTarget != "" {
		loaded.DeliveryTarget = flagTarget
	}

	cfg = loaded
	return nil
}

var (
	flagProvider string
	flagModel    string
	flagTarget   string
)

func init() {
	rootCmd.PersistentFlags().StringVar(&flagProvider, "provider", "", "Model provider: 'anthropic' or 'openai'")
	rootCmd.PersistentFlags().StringVar(&flagModel, "model", "", "Model name override")
	rootCmd.PersistentFlags().StringVar(&flagTarget, "target", "", "Delivery target: 'claude', 'gemini', 'gpt-4', 'codex', or 'web'")
}
