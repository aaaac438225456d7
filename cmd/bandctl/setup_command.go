package main

import (
	"bufio"
	"crypto/rand"
	"encoding/base64"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bandland/bandland/internal/utils"
)

// newSetupCommand interactively bootstraps the deployment's .env:
// admin password hash plus a fresh session-signing secret.
func newSetupCommand() *cobra.Command {
	var envPath string
	var cost int

	cmd := &cobra.Command{
		Use:   "setup",
		Short: "Generate admin credentials and write them to a .env file",
		RunE: func(cmd *cobra.Command, args []string) error {
			in := bufio.NewReader(cmd.InOrStdin())
			out := cmd.OutOrStdout()

			fmt.Fprint(out, "Site URL (default http://localhost:8080): ")
			siteURL, err := readLine(in)
			if err != nil {
				return err
			}
			if siteURL == "" {
				siteURL = "http://localhost:8080"
			}

			fmt.Fprint(out, "Admin password: ")
			password, err := readLine(in)
			if err != nil {
				return err
			}
			if password == "" {
				return fmt.Errorf("password is required")
			}

			hash, err := utils.HashPassword(password, cost)
			if err != nil {
				return fmt.Errorf("generate hash: %w", err)
			}
			secret := make([]byte, 32)
			if _, err := rand.Read(secret); err != nil {
				return fmt.Errorf("generate auth secret: %w", err)
			}

			contents := fmt.Sprintf(`# Admin panel credentials
# Regenerate hash: bandctl hash "your-password"
ADMIN_PASSWORD_HASH=%s
AUTH_SECRET='%s'

# Canonical site URL used for absolute links.
SITE_URL=%s
`,
				strings.ReplaceAll(hash, "$", `\$`),
				base64.StdEncoding.EncodeToString(secret),
				siteURL,
			)

			if err := os.WriteFile(envPath, []byte(contents), 0o600); err != nil {
				return fmt.Errorf("write %s: %w", envPath, err)
			}
			fmt.Fprintf(out, "Wrote %s\n", envPath)
			return nil
		},
	}
	cmd.Flags().StringVar(&envPath, "env", ".env", "path of the env file to write")
	cmd.Flags().IntVar(&cost, "cost", utils.DefaultBcryptCost, "bcrypt cost factor")
	return cmd
}

func readLine(in *bufio.Reader) (string, error) {
	line, err := in.ReadString('\n')
	if err != nil && line == "" {
		return "", fmt.Errorf("read input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
