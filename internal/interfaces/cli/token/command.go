package token

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/cragbase/cragbase/internal/infrastructure/auth"
	"github.com/cragbase/cragbase/internal/infrastructure/config"
	"github.com/cragbase/cragbase/internal/shared/authorization"
	"github.com/cragbase/cragbase/internal/shared/constants"
)

var (
	env        string
	configPath string
	userID     uint
	role       string
)

// NewCommand issues access tokens for editors and admins. There is no login
// endpoint; tokens are handed out by operators.
func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "token",
		Short: "Issue an API access token",
		RunE:  run,
	}

	cmd.Flags().StringVarP(&env, "env", "e", constants.EnvDevelopment, "Environment (development, test, production)")
	cmd.Flags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")
	cmd.Flags().UintVar(&userID, "user-id", 0, "User ID recorded in audit entries (required)")
	cmd.Flags().StringVar(&role, "role", string(authorization.RoleEditor), "Role granted by the token (admin, editor)")
	_ = cmd.MarkFlagRequired("user-id")

	return cmd
}

func run(cmd *cobra.Command, args []string) error {
	r := authorization.UserRole(role)
	if !r.IsValid() || r == authorization.RoleGuest {
		return fmt.Errorf("invalid role %q: expected admin or editor", role)
	}
	if userID == 0 {
		return fmt.Errorf("user-id must be positive")
	}

	cfg, err := config.Load(env, configPath)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	svc := auth.NewJWTService(cfg.Auth.JWT.Secret, cfg.Auth.JWT.AccessExpMinutes)
	tok, err := svc.Generate(userID, r)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, tok.AccessToken)
	fmt.Fprintf(out, "expires at %s\n", tok.ExpiresAt.Format(time.RFC3339))
	return nil
}
