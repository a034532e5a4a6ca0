package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/YudheerRM/bidding-insights/internal/application/auth"
	"github.com/YudheerRM/bidding-insights/internal/application/dto"
	"github.com/YudheerRM/bidding-insights/internal/application/usecase"
	"github.com/YudheerRM/bidding-insights/internal/domain/entity"
	"github.com/YudheerRM/bidding-insights/internal/infrastructure/postgres"
)

func newCreateAdminCmd() *cobra.Command {
	var in dto.CreateUserRequest
	cmd := &cobra.Command{
		Use:   "create-admin",
		Short: "Create an administrator account",
		RunE: func(cmd *cobra.Command, _ []string) error {
			// The bootstrap admin gets the same policy as self-service sign-up.
			if err := auth.ValidatePassword(in.Password); err != nil {
				return err
			}
			in.Role = string(entity.RoleAdmin)

			cfg, log, err := loadConfig()
			if err != nil {
				return err
			}
			pool, err := postgres.NewPool(cmd.Context(), cfg.DB)
			if err != nil {
				return err
			}
			defer pool.Close()

			uc := usecase.NewUserDirectoryUseCase(postgres.NewUserRepository(pool), postgres.NewTxRunner(pool))
			user, err := uc.Create(cmd.Context(), systemActor, in)
			if err != nil {
				return err
			}
			log.Info().Str("user_id", user.ID).Str("email", user.Email).Msg("admin created")
			fmt.Fprintln(cmd.OutOrStdout(), user.ID)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringVar(&in.Email, "email", "", "login email")
	f.StringVar(&in.Name, "name", "", "display name")
	f.StringVar(&in.Password, "password", "", "initial password")
	f.StringVar(&in.Department, "department", "", "department")
	f.StringVar(&in.Position, "position", "", "position")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}
