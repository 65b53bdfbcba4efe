package main

import (
	"context"
	"fmt"

	"github.com/abdullah9786/nawab-products/internal/infra"
	"github.com/abdullah9786/nawab-products/internal/repository"
	"github.com/abdullah9786/nawab-products/internal/service"

	"github.com/spf13/cobra"
)

var (
	seedEmail    string
	seedPassword string
	seedName     string
)

// seedAdminCmd creates the first admin account
var seedAdminCmd = &cobra.Command{
	Use:   "seed-admin",
	Short: "Create the admin account if none exists",
	Long: `Create the admin account used to sign in to /admin.

Credentials default to ADMIN_EMAIL, ADMIN_PASSWORD and ADMIN_NAME. Nothing
is changed when any admin already exists.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, cleanup, err := newAuthService(cmd.Context())
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()
		admin, created, err := svc.EnsureAdmin(ctx, seedEmail, seedPassword, seedName)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if !created {
			fmt.Fprintf(out, "Admin user already exists: %s\n", admin.Email)
			return nil
		}
		fmt.Fprintf(out, "Admin user created: %s\nNow login at /admin/login with your credentials\n", admin.Email)
		return nil
	},
}

// checkAdminCmd reports whether an admin exists
var checkAdminCmd = &cobra.Command{
	Use:   "check-admin",
	Short: "Report whether an admin account exists",
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, cleanup, err := newAuthService(cmd.Context())
		if err != nil {
			return err
		}
		defer cleanup()

		ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
		defer cancel()
		st, err := svc.AdminStatus(ctx)
		if err != nil {
			return err
		}
		out := cmd.OutOrStdout()
		if st.Exists {
			fmt.Fprintf(out, "%s <%s>\n", st.Name, st.Email)
		}
		fmt.Fprintln(out, st.Message)
		return nil
	},
}

// hashPasswordCmd prints a bcrypt hash for manual account fixes
var hashPasswordCmd = &cobra.Command{
	Use:   "hash-password <password>",
	Short: "Print the bcrypt hash of a password",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		hash, err := service.HashPassword(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), hash)
		return nil
	},
}

func init() {
	seedAdminCmd.Flags().StringVar(&seedEmail, "email", "", "Admin email (default: ADMIN_EMAIL)")
	seedAdminCmd.Flags().StringVar(&seedPassword, "password", "", "Admin password (default: ADMIN_PASSWORD)")
	seedAdminCmd.Flags().StringVar(&seedName, "name", "", "Display name (default: ADMIN_NAME)")
}

func newAuthService(ctx context.Context) (service.AuthService, func(), error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, nil, err
	}
	if seedEmail == "" {
		seedEmail = cfg.AdminEmail
	}
	if seedPassword == "" {
		seedPassword = cfg.AdminPassword
	}
	if seedName == "" {
		seedName = cfg.AdminName
	}

	conn := infra.NewConnector(cfg.DatabaseURL)
	db, err := conn.DB(ctx)
	if err != nil {
		return nil, nil, err
	}
	cleanup := func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	return service.NewAuthService(repository.NewAdminRepository(db), cfg), cleanup, nil
}
