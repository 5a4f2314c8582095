package main

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/mserjo/bossy/internal/config"
	"github.com/mserjo/bossy/pkg/domain"
	"github.com/mserjo/bossy/pkg/logger"
)

// seedCommand constructs the 'seed' subcommand that fills the database with a
// demo group: three users with memberships and accounts, a few tasks, bonus
// rules, a reward, a level ladder and a badge. Meant for local development
// and demos; existing users with the demo emails are reused.
func seedCommand(cfg *config.Config) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Seeds the database with demo data",
		Run: func(cmd *cobra.Command, args []string) {
			ctx := context.Background()

			password, _ := cmd.Flags().GetString("password")

			strg, closeStrg := getPostgres(ctx, cfg)
			defer closeStrg()

			hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
			if err != nil {
				logger.Fatal(ctx, "could not hash password", zap.Error(err))
			}

			seedUser := func(email, displayName string) *domain.User {
				existing, err := strg.UserByEmail(ctx, email)
				if err != nil {
					logger.Fatal(ctx, "could not look up user", zap.Error(err))
				}
				if existing != nil {
					return existing
				}

				user, err := strg.StoreUser(ctx, domain.User{
					Email:        email,
					DisplayName:  displayName,
					PasswordHash: string(hash),
					Role:         domain.SystemRoleUser,
					State:        domain.UserStateActive,
				})
				if err != nil {
					logger.Fatal(ctx, "could not create demo user", zap.Error(err))
				}

				return user
			}

			alice := seedUser("alice@example.com", "Alice")
			bob := seedUser("bob@example.com", "Bob")
			carol := seedUser("carol@example.com", "Carol")

			group, err := strg.StoreGroup(ctx, domain.Group{
				Name:           "Demo family",
				Description:    "Seeded demo group",
				Type:           domain.GroupTypeFamily,
				Currency:       domain.DefaultCurrency,
				AllowProposals: true,
				CreatedBy:      alice.ID,
			})
			if err != nil {
				logger.Fatal(ctx, "could not create demo group", zap.Error(err))
			}

			members := []struct {
				user *domain.User
				role domain.GroupRole
			}{
				{alice, domain.GroupRoleOwner},
				{bob, domain.GroupRoleMember},
				{carol, domain.GroupRoleMember},
			}
			for _, member := range members {
				if _, err := strg.StoreMembership(ctx, domain.Membership{
					GroupID: group.ID,
					UserID:  member.user.ID,
					Role:    member.role,
				}); err != nil {
					logger.Fatal(ctx, "could not add demo member", zap.Error(err))
				}

				if _, err := strg.StoreAccount(ctx, domain.Account{
					UserID:   member.user.ID,
					GroupID:  group.ID,
					Currency: group.Currency,
				}); err != nil {
					logger.Fatal(ctx, "could not create demo account", zap.Error(err))
				}
			}

			if _, err := strg.StoreTasks(ctx,
				domain.Task{
					GroupID:    group.ID,
					Title:      "Take out the trash",
					Type:       domain.TaskTypeRegular,
					Priority:   domain.TaskPriorityMedium,
					Status:     domain.TaskStatusOpen,
					Recurrence: domain.RecurrenceNone,
					CreatedBy:  alice.ID,
				},
				domain.Task{
					GroupID:    group.ID,
					Title:      "Do the homework",
					Type:       domain.TaskTypeRegular,
					Priority:   domain.TaskPriorityHigh,
					Status:     domain.TaskStatusOpen,
					DueAt:      time.Now().Add(48 * time.Hour),
					Recurrence: domain.RecurrenceNone,
					CreatedBy:  alice.ID,
				},
				// recurring template, instances are spawned by the scheduler
				domain.Task{
					GroupID:    group.ID,
					Title:      "Water the plants",
					Type:       domain.TaskTypeRegular,
					Priority:   domain.TaskPriorityLow,
					Status:     domain.TaskStatusOpen,
					Recurrence: domain.RecurrenceDaily,
					CreatedBy:  alice.ID,
				},
			); err != nil {
				logger.Fatal(ctx, "could not create demo tasks", zap.Error(err))
			}

			rules := []domain.Rule{
				{GroupID: group.ID, Name: "Base reward", Amount: 10, Condition: domain.RuleAlways, Active: true},
				{GroupID: group.ID, Name: "On time bonus", Amount: 15, Condition: domain.RuleOnTime, Active: true},
			}
			for _, rule := range rules {
				if _, err := strg.StoreRule(ctx, rule); err != nil {
					logger.Fatal(ctx, "could not create demo rule", zap.Error(err))
				}
			}

			if _, err := strg.StoreReward(ctx, domain.Reward{
				GroupID:   group.ID,
				Name:      "Movie night",
				Cost:      50,
				Active:    true,
				CreatedBy: alice.ID,
			}); err != nil {
				logger.Fatal(ctx, "could not create demo reward", zap.Error(err))
			}

			if _, err := strg.StoreLevels(ctx,
				domain.Level{GroupID: group.ID, Name: "Beginner", Rank: 1, RequiredPoints: 0},
				domain.Level{GroupID: group.ID, Name: "Helper", Rank: 2, RequiredPoints: 50},
				domain.Level{GroupID: group.ID, Name: "Expert", Rank: 3, RequiredPoints: 200},
			); err != nil {
				logger.Fatal(ctx, "could not create demo levels", zap.Error(err))
			}

			if _, err := strg.StoreBadge(ctx, domain.Badge{
				GroupID:   group.ID,
				Name:      "First steps",
				Condition: domain.BadgeOnCompletions,
				Threshold: 1,
				Active:    true,
			}); err != nil {
				logger.Fatal(ctx, "could not create demo badge", zap.Error(err))
			}

			fmt.Println(uuid.UUID(group.ID)) //nolint: forbidigo
		},
	}

	cmd.Flags().String("password", "bossy-demo", "Password of the seeded demo accounts")

	return cmd
}
