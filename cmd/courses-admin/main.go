package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/uptrace/bun"

	"github.com/redmonkez12/courses-api/cmd/courses-admin/ui"
	"github.com/redmonkez12/courses-api/internal/apperr"
	"github.com/redmonkez12/courses-api/internal/config"
	"github.com/redmonkez12/courses-api/internal/course"
	"github.com/redmonkez12/courses-api/internal/database"
	"github.com/redmonkez12/courses-api/internal/user"
	"github.com/redmonkez12/courses-api/internal/validation"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "courses-admin",
		Short:         "Operate the courses API database",
		Long:          "Schema creation and account management for the courses API, using the same configuration as the server.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	migrateCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Create the users and courses tables if they do not exist",
		RunE:  runMigrate,
	}

	userCmd := &cobra.Command{
		Use:   "user",
		Short: "Manage user accounts",
	}

	userCreateCmd := &cobra.Command{
		Use:   "create",
		Short: "Create a user account",
		Long:  "Create a user account. Missing fields are asked for interactively.",
		RunE:  runUserCreate,
	}

	// Flags for non-interactive mode (CI/scripting)
	userCreateCmd.Flags().String("first-name", "", "First name")
	userCreateCmd.Flags().String("last-name", "", "Last name")
	userCreateCmd.Flags().String("email", "", "Email address")
	userCreateCmd.Flags().String("password", "", "Password")

	coursesCmd := &cobra.Command{
		Use:   "courses",
		Short: "List all courses with their owners",
		RunE:  runCourses,
	}

	userCmd.AddCommand(userCreateCmd)
	rootCmd.AddCommand(migrateCmd, userCmd, coursesCmd)

	return rootCmd
}

func openDB(ctx context.Context, migrate bool) (*bun.DB, *config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	if migrate {
		cfg.Database.AutoMigrate = true
	}

	db, err := database.Open(ctx, cfg.Database)
	if err != nil {
		return nil, nil, err
	}
	return db, cfg, nil
}

func runMigrate(cmd *cobra.Command, _ []string) error {
	db, cfg, err := openDB(cmd.Context(), true)
	if err != nil {
		ui.PrintErrors(cmd.ErrOrStderr(), []string{err.Error()})
		return err
	}
	defer db.Close()

	ui.PrintMigrated(cmd.OutOrStdout(), cfg.Database.Driver)
	return nil
}

func runUserCreate(cmd *cobra.Command, _ []string) error {
	var in ui.UserInput
	in.FirstName, _ = cmd.Flags().GetString("first-name")
	in.LastName, _ = cmd.Flags().GetString("last-name")
	in.EmailAddress, _ = cmd.Flags().GetString("email")
	in.Password, _ = cmd.Flags().GetString("password")

	// Interactive mode
	if !in.Complete() {
		var err error
		in, err = ui.RunUserForm(in)
		if err != nil {
			return fmt.Errorf("form cancelled: %w", err)
		}
	}

	db, _, err := openDB(cmd.Context(), false)
	if err != nil {
		ui.PrintErrors(cmd.ErrOrStderr(), []string{err.Error()})
		return err
	}
	defer db.Close()

	return createUser(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), db, in)
}

func createUser(ctx context.Context, out, errOut io.Writer, db bun.IDB, in ui.UserInput) error {
	svc := user.NewService(user.NewRepository(db), validation.New())

	created, err := svc.Create(ctx, in.Request())
	if err != nil {
		var appErr *apperr.Error
		if errors.As(err, &appErr) {
			ui.PrintErrors(errOut, appErr.Messages)
		} else {
			ui.PrintErrors(errOut, []string{err.Error()})
		}
		return err
	}

	ui.PrintUserCreated(out, created)
	return nil
}

func runCourses(cmd *cobra.Command, _ []string) error {
	db, _, err := openDB(cmd.Context(), false)
	if err != nil {
		ui.PrintErrors(cmd.ErrOrStderr(), []string{err.Error()})
		return err
	}
	defer db.Close()

	return listCourses(cmd.Context(), cmd.OutOrStdout(), db)
}

func listCourses(ctx context.Context, out io.Writer, db bun.IDB) error {
	courses, err := course.NewRepository(db).List(ctx)
	if err != nil {
		return err
	}

	ui.PrintCourses(out, courses)
	return nil
}
