package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/promptpolish/promptpolish/internal/storage"
)

var sessionsCmd = &cobra.Command{
	Use:   "sessions",
	Short: "List saved refinement sessions",
	RunE:  runSessions,
}

func init() {
	rootCmd.AddCommand(sessionsCmd)
}

func runSessions(cmd *cobra.Command, args []string) error {
	store, err := storage.NewStore(cfg.StorageDir)
	if err != nil {
		return err
	}

	paths, err := store.List()
	if err != nil {
		return err
	}
	if len(paths) == 0 {
		fmt.Println("No saved sessions.")
		return nil
	}
	for _, path := range paths {
		fmt.Println(path)
	}
	return nil
}
