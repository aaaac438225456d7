package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/bandland/bandland/internal/utils"
)

func newHashCommand() *cobra.Command {
	var cost int

	cmd := &cobra.Command{
		Use:   "hash <password>",
		Short: "Generate a bcrypt hash for the admin password",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			password := strings.TrimSpace(args[0])
			if password == "" {
				return fmt.Errorf("password must not be empty")
			}
			hash, err := utils.HashPassword(password, cost)
			if err != nil {
				return fmt.Errorf("generate hash: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), hash)
			fmt.Fprintln(cmd.OutOrStdout())
			fmt.Fprintln(cmd.OutOrStdout(), "When placing this in a .env file, escape each $ as \\$ or quote the value;")
			fmt.Fprintln(cmd.OutOrStdout(), "unescaped $ sequences get stripped by dotenv expansion and sign-in will fail.")
			return nil
		},
	}
	cmd.Flags().IntVar(&cost, "cost", utils.DefaultBcryptCost, "bcrypt cost factor")
	return cmd
}

// newCheckHashCommand diagnoses the configured hash and optionally
// tests a password against it. The usual failure it catches is a hash
// mangled by shell or dotenv $-expansion.
func newCheckHashCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check-hash [password]",
		Short: "Diagnose ADMIN_PASSWORD_HASH and optionally test a password",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			_ = godotenv.Load()
			out := cmd.OutOrStdout()

			hash := strings.TrimSpace(os.Getenv("ADMIN_PASSWORD_HASH"))
			if hash == "" {
				return fmt.Errorf("ADMIN_PASSWORD_HASH is not set in environment")
			}

			fmt.Fprintf(out, "hash length: %d\n", len(hash))
			fmt.Fprintf(out, "bcrypt shape: %v\n", utils.LooksLikeBcrypt(hash))
			if !utils.LooksLikeBcrypt(hash) {
				fmt.Fprintln(out, "warning: bcrypt hashes are exactly 60 chars and start with $2a$/$2b$/$2y$.")
				if strings.Contains(hash, "\\") {
					fmt.Fprintln(out, "warning: hash contains backslashes; remove the \\$ escaping when not using a .env file.")
				}
				if strings.Contains(hash, "$$") {
					fmt.Fprintln(out, "warning: hash looks double-escaped; use a single \\$ per $ in .env files.")
				}
			}

			if len(args) == 0 {
				return nil
			}
			if utils.VerifyPassword(hash, args[0]) {
				fmt.Fprintln(out, "password MATCHES the hash")
				return nil
			}
			return fmt.Errorf("password does NOT match the hash")
		},
	}
	return cmd
}
