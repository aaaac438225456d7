package main

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/bandland/bandland/internal/config"
	"github.com/bandland/bandland/internal/store"
)

// newValidateCommand reads every content collection through the store,
// so a corrupt or hand-edited file is caught before the site serves it.
func newValidateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "validate",
		Short: "Validate the content files against their schemas",
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load()
			cfg := config.Load()
			st := store.New(cfg.ContentDir, cfg.HistoryDir)
			out := cmd.OutOrStdout()

			shows, err := st.Shows.Read()
			if err != nil {
				return fmt.Errorf("shows: %w", err)
			}
			fmt.Fprintf(out, "shows: %d records ok\n", len(shows))

			merch, err := st.Merch.Read()
			if err != nil {
				return fmt.Errorf("merch: %w", err)
			}
			fmt.Fprintf(out, "merch: %d records ok\n", len(merch))

			audit, err := st.Audit.Read()
			if err != nil {
				return fmt.Errorf("audit: %w", err)
			}
			fmt.Fprintf(out, "audit: %d entries ok\n", len(audit))

			if _, err := config.LoadSite(cfg.SiteFile); err != nil {
				return err
			}
			fmt.Fprintln(out, "site descriptor ok")
			return nil
		},
	}
	return cmd
}
