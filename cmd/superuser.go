package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/mserjo/bossy/internal/config"
	"github.com/mserjo/bossy/pkg/domain"
	"github.com/mserjo/bossy/pkg/logger"
	"github.com/mserjo/bossy/pkg/storage"
)

// superuserCommand constructs the 'superuser' subcommand that creates (or
// promotes) an account with the SUPERUSER system role. Meant for initial
// bootstrapping of a fresh deployment.
func superuserCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "superuser",
		Short: "Creates a superuser account",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			email, _ := cmd.Flags().GetString("email")
			displayName, _ := cmd.Flags().GetString("display-name")
			password, _ := cmd.Flags().GetString("password")

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			existing, err := strg.UserByEmail(ctx, email)
			if err != nil {
				logger.Fatal(ctx, "could not look up user", zap.Error(err))
			}
			if existing != nil {
				updates := storage.UserUpdates{Role: domain.SystemRoleSuperuser}
				if _, err := strg.UpdateUserByID(ctx, existing.ID, updates); err != nil {
					logger.Fatal(ctx, "could not promote user", zap.Error(err))
				}

				fmt.Printf("promoted %s to superuser\n", email) //nolint: forbidigo

				return
			}

			hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
			if err != nil {
				logger.Fatal(ctx, "could not hash password", zap.Error(err))
			}

			user, err := strg.StoreUser(ctx, domain.User{
				Email:        email,
				DisplayName:  displayName,
				PasswordHash: string(hash),
				Role:         domain.SystemRoleSuperuser,
				State:        domain.UserStateActive,
			})
			if err != nil {
				logger.Fatal(ctx, "could not create superuser", zap.Error(err))
			}

			fmt.Println(user.ID) //nolint: forbidigo
		},
	}

	cmd.Flags().String("email", "", "Email of the superuser account")
	cmd.Flags().String("display-name", "Superuser", "Display name of the superuser account")
	cmd.Flags().String("password", "", "Password of the superuser account")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
