package main

import (
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/circulation-backend/internal/adapter/postgres"
	userrepo "github.com/heartmarshall/circulation-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/circulation-backend/internal/auth"
	"github.com/heartmarshall/circulation-backend/internal/domain"
	usersvc "github.com/heartmarshall/circulation-backend/internal/service/user"
)

func newSeedUsersCmd(e *env) *cobra.Command {
	return &cobra.Command{
		Use:   "seed-users",
		Short: "Create the development librarian and member accounts",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx := cmd.Context()

			pool, err := postgres.NewPool(ctx, e.cfg.Database)
			if err != nil {
				return fmt.Errorf("connect to database: %w", err)
			}
			defer pool.Close()

			svc := usersvc.NewService(e.log, userrepo.New(pool), e.cfg.Auth.PasswordHashCost)
			results, err := svc.SeedDevUsers(ctx)
			if err != nil {
				return err
			}

			for _, r := range results {
				e.log.Info("dev user",
					slog.Int64("id", r.User.ID),
					slog.String("email", r.User.Email),
					slog.String("role", r.User.Role.String()),
					slog.Bool("created", r.Created),
				)
			}
			return nil
		},
	}
}

func newIssueTokenCmd(e *env) *cobra.Command {
	var (
		userID int64
		role   string
	)

	cmd := &cobra.Command{
		Use:   "issue-token",
		Short: "Mint an access token for the given user id and role",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if userID <= 0 {
				return fmt.Errorf("--user-id must be positive")
			}
			r := domain.UserRole(role)
			if !r.IsValid() {
				return fmt.Errorf("--role must be %s or %s", domain.UserRoleLibrarian, domain.UserRoleMember)
			}

			jwt := auth.NewJWTManager(e.cfg.Auth.JWTSecret, e.cfg.Auth.JWTIssuer, e.cfg.Auth.AccessTokenTTL)
			token, err := jwt.GenerateAccessToken(userID, r)
			if err != nil {
				return fmt.Errorf("issue token: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}

	cmd.Flags().Int64Var(&userID, "user-id", 0, "user id to embed in the token")
	cmd.Flags().StringVar(&role, "role", string(domain.UserRoleMember), "LIBRARIAN or MEMBER")
	_ = cmd.MarkFlagRequired("user-id")
	return cmd
}
