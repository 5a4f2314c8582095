package main

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/mserjo/bossy/internal/auth"
	"github.com/mserjo/bossy/internal/config"
	"github.com/mserjo/bossy/pkg/domain"
	"github.com/mserjo/bossy/pkg/logger"
)

// JWTCommand constructs the 'jwt' subcommand that generates a signed HS256
// access token for a given user ID and TTL using the configured secret key.
func JWTCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "jwt",
		Short: "Generates an access token for given user ID",
		Run: func(cmd *cobra.Command, args []string) {
			subject, _ := cmd.Flags().GetString("subject")
			TTL, _ := cmd.Flags().GetDuration("ttl")

			userID, err := uuid.Parse(subject)
			if err != nil {
				logger.Fatal(context.Background(), "could not parse subject as UUID", zap.Error(err))
			}

			signed, err := auth.SignAccessToken(cfg.Auth.SecretKey, domain.UserID(userID), TTL)
			if err != nil {
				logger.Fatal(context.Background(), "could not sign JWT", zap.Error(err))
			}

			fmt.Println(signed) //nolint: forbidigo
		},
	}

	cmd.Flags().String("subject", "", "JWT subject (user ID)")
	cmd.Flags().Duration("ttl", 24*time.Hour, "Token TTL (e.g., 30s, 15m, 1h)")
	_ = cmd.MarkFlagRequired("subject")

	return cmd
}
