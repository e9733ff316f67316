// Command firequiz-admin provisions accounts and maintains the database from
// the shell, outside the HTTP surface. Admin and encadrant accounts are
// normally created here rather than through self-registration.
package main

import (
	"context"
	"database/sql"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sort"
	"strings"
	"syscall"
	"text/tabwriter"
	"time"

	"github.com/casernelab/firequiz/config"
	"github.com/casernelab/firequiz/internal/bootstrap"
	"github.com/casernelab/firequiz/internal/core"
	"github.com/casernelab/firequiz/internal/data"
	"github.com/casernelab/firequiz/internal/devseed"
	domainauth "github.com/casernelab/firequiz/internal/domain/auth"
	"github.com/casernelab/firequiz/internal/domain/model"
	"github.com/casernelab/firequiz/internal/service"
)

type commandFn func(ctx *commandContext, args []string) error

type command struct {
	name        string
	description string
	run         commandFn
}

type commandContext struct {
	Ctx    context.Context
	Logger *slog.Logger
	Config config.AppConfig
}

const defaultCommandTimeout = 2 * time.Minute

func main() {
	logger := bootstrap.InitLogger()

	if len(os.Args) < 2 {
		if err := printUsage(); err != nil {
			logger.Error("print usage failed", "error", err)
		}
		os.Exit(2) //nolint:forbidigo // CLI must exit with failure status when no command is provided
	}

	cmdName := os.Args[1]
	cmd, ok := commands()[cmdName]
	if !ok {
		if err := writef(os.Stderr, "unknown command %q\n\n", cmdName); err != nil {
			logger.Error("print unknown command message failed", "error", err)
		}
		if err := printUsage(); err != nil {
			logger.Error("print usage failed", "error", err)
		}
		os.Exit(2) //nolint:forbidigo // CLI must exit with failure status when command is unknown
	}

	cfg, err := bootstrap.LoadConfig()
	if err != nil {
		logger.ErrorContext(context.Background(), "load config", "error", err)
		os.Exit(1) //nolint:forbidigo // CLI must signal configuration load failure to shell scripts
	}

	cmdCtx := &commandContext{
		Ctx:    context.Background(),
		Logger: logger,
		Config: cfg,
	}
	if runErr := cmd.run(cmdCtx, os.Args[2:]); runErr != nil {
		logger.ErrorContext(cmdCtx.Ctx, "command failed", "command", cmdName, "error", runErr)
		os.Exit(1) //nolint:forbidigo // CLI must propagate command execution failure to callers
	}
}

func commands() map[string]command {
	return map[string]command{
		"migrate": {
			name:        "migrate",
			description: "Run database migrations",
			run:         runMigrations,
		},
		"db-seed": {
			name:        "db-seed",
			description: "Run database migrations and seed development data",
			run:         runDBSeed,
		},
		"create-user": {
			name:        "create-user",
			description: "Create an account with an explicit role",
			run:         runCreateUser,
		},
		"set-role": {
			name:        "set-role",
			description: "Change the role of an existing account",
			run:         runSetRole,
		},
		"list-users": {
			name:        "list-users",
			description: "List accounts, optionally filtered by role",
			run:         runListUsers,
		},
		"revoke-sessions": {
			name:        "revoke-sessions",
			description: "Revoke the remember-me token of an account",
			run:         runRevokeSessions,
		},
	}
}

func printUsage() error {
	if err := writef(os.Stdout, "Usage: firequiz-admin <command> [flags]\n\n"); err != nil {
		return err
	}
	if err := writef(os.Stdout, "Available commands:\n"); err != nil {
		return err
	}
	names := make([]string, 0, len(commands()))
	for name := range commands() {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		c := commands()[name]
		if err := writef(os.Stdout, "  %-18s %s\n", c.name, c.description); err != nil {
			return err
		}
	}
	return nil
}

func writef(w *os.File, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}

// withDatabase connects, runs fn with a deadline, and closes the connection.
func withDatabase(cmdCtx *commandContext, timeout time.Duration, fn func(ctx context.Context, db *sql.DB) error) error {
	ctx, stop := signal.NotifyContext(cmdCtx.Ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	db, err := bootstrap.ConnectDB(bootstrap.DatabaseConfig{
		DBConfig: cmdCtx.Config.Postgres,
		Logger:   cmdCtx.Logger,
	})
	if err != nil {
		return fmt.Errorf("connect db: %w", err)
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			cmdCtx.Logger.Warn("db close failed", "error", closeErr)
		}
	}()

	return fn(ctx, db)
}

func runMigrations(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("migrate", flag.ContinueOnError)
	timeout := fs.Duration("timeout", 5*time.Minute, "maximum time to wait for migrations")
	if err := fs.Parse(args); err != nil {
		return err
	}

	return withDatabase(cmdCtx, *timeout, func(ctx context.Context, db *sql.DB) error {
		cmdCtx.Logger.Info("running database migrations")
		if migrateErr := bootstrap.RunMigrations(ctx, db, cmdCtx.Logger); migrateErr != nil {
			return fmt.Errorf("run migrations: %w", migrateErr)
		}
		cmdCtx.Logger.Info("migrations completed successfully")
		return nil
	})
}

func runDBSeed(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("db-seed", flag.ContinueOnError)
	timeout := fs.Duration("timeout", 5*time.Minute, "maximum time to wait for seeding")
	if err := fs.Parse(args); err != nil {
		return err
	}

	return withDatabase(cmdCtx, *timeout, func(ctx context.Context, db *sql.DB) error {
		cmdCtx.Logger.Info("ensuring database migrations are current")
		if migrateErr := bootstrap.RunMigrations(ctx, db, cmdCtx.Logger); migrateErr != nil {
			return fmt.Errorf("run migrations: %w", migrateErr)
		}

		cmdCtx.Logger.Info("seeding development data")
		if seedErr := devseed.Run(ctx, devseed.NewServices(db), cmdCtx.Logger); seedErr != nil {
			return fmt.Errorf("seed data: %w", seedErr)
		}

		cmdCtx.Logger.Info("database seeding completed successfully")
		return nil
	})
}

type createUserOptions struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
	Role      string
}

func runCreateUser(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("create-user", flag.ContinueOnError)
	opts := createUserOptions{}
	fs.StringVar(&opts.Username, "username", "", "username for the new account (required)")
	fs.StringVar(&opts.Email, "email", "", "email for the new account (required)")
	fs.StringVar(&opts.Password, "password", "", "initial password (required)")
	fs.StringVar(&opts.FirstName, "first-name", "", "first name")
	fs.StringVar(&opts.LastName, "last-name", "", "last name")
	fs.StringVar(&opts.Role, "role", string(domainauth.RolePlayer), "role: admin, encadrant, or player")
	if err := fs.Parse(args); err != nil {
		return err
	}

	role := domainauth.Role(strings.ToLower(strings.TrimSpace(opts.Role)))
	if !role.Valid() {
		return fmt.Errorf("invalid role %q (valid options: admin, encadrant, player)", opts.Role)
	}
	if opts.Password == "" {
		return errors.New("-password is required")
	}

	return withDatabase(cmdCtx, defaultCommandTimeout, func(ctx context.Context, db *sql.DB) error {
		hash, err := service.HashPassword(opts.Password)
		if err != nil {
			return fmt.Errorf("hash password: %w", err)
		}

		user, err := data.NewUserRepo(db).Create(ctx, &model.CreateUserRequest{
			Username:     opts.Username,
			Email:        opts.Email,
			PasswordHash: hash,
			FirstName:    opts.FirstName,
			LastName:     opts.LastName,
			Role:         role,
		})
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}

		cmdCtx.Logger.Info("created user", "id", user.ID, "username", user.Username, "role", user.Role)
		return nil
	})
}

func runSetRole(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("set-role", flag.ContinueOnError)
	username := fs.String("username", "", "username or email of the account (required)")
	roleFlag := fs.String("role", "", "new role: admin, encadrant, or player (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	role := domainauth.Role(strings.ToLower(strings.TrimSpace(*roleFlag)))
	if !role.Valid() {
		return fmt.Errorf("invalid role %q (valid options: admin, encadrant, player)", *roleFlag)
	}
	if *username == "" {
		return errors.New("-username is required")
	}

	return withDatabase(cmdCtx, defaultCommandTimeout, func(ctx context.Context, db *sql.DB) error {
		repo := data.NewUserRepo(db)
		user, err := repo.GetByUsernameOrEmail(ctx, *username)
		if err != nil {
			if errors.Is(err, core.ErrUserNotFound) {
				return fmt.Errorf("no account matches %q", *username)
			}
			return err
		}

		updated, err := repo.Update(ctx, user.ID, model.UpdateUserRequest{Role: &role})
		if err != nil {
			return fmt.Errorf("update role: %w", err)
		}

		cmdCtx.Logger.Info("role updated", "username", updated.Username, "role", updated.Role)
		return nil
	})
}

func runListUsers(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("list-users", flag.ContinueOnError)
	roleFlag := fs.String("role", "", "filter by role: admin, encadrant, or player")
	limit := fs.Int("limit", 100, "maximum number of accounts to list")
	if err := fs.Parse(args); err != nil {
		return err
	}

	listOpts := model.UsersListOptions{Limit: *limit, Sort: "username", Dir: "asc"}
	if *roleFlag != "" {
		role := domainauth.Role(strings.ToLower(strings.TrimSpace(*roleFlag)))
		if !role.Valid() {
			return fmt.Errorf("invalid role %q (valid options: admin, encadrant, player)", *roleFlag)
		}
		listOpts.Role = &role
	}

	return withDatabase(cmdCtx, defaultCommandTimeout, func(ctx context.Context, db *sql.DB) error {
		users, err := data.NewUserRepo(db).List(ctx, listOpts)
		if err != nil {
			return fmt.Errorf("list users: %w", err)
		}

		w := tabwriter.NewWriter(os.Stdout, 0, 8, 2, ' ', 0)
		if _, err = fmt.Fprintln(w, "USERNAME\tEMAIL\tROLE\tCREATED"); err != nil {
			return err
		}
		for _, u := range users {
			if _, err = fmt.Fprintf(w, "%s\t%s\t%s\t%s\n",
				u.Username, u.Email, u.Role, u.CreatedAt.Format(time.RFC3339)); err != nil {
				return err
			}
		}
		return w.Flush()
	})
}

func runRevokeSessions(cmdCtx *commandContext, args []string) error {
	fs := flag.NewFlagSet("revoke-sessions", flag.ContinueOnError)
	username := fs.String("username", "", "username or email of the account (required)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *username == "" {
		return errors.New("-username is required")
	}

	return withDatabase(cmdCtx, defaultCommandTimeout, func(ctx context.Context, db *sql.DB) error {
		user, err := data.NewUserRepo(db).GetByUsernameOrEmail(ctx, *username)
		if err != nil {
			if errors.Is(err, core.ErrUserNotFound) {
				return fmt.Errorf("no account matches %q", *username)
			}
			return err
		}

		if err = data.NewRememberTokenRepo(db).Revoke(ctx, user.ID); err != nil {
			return fmt.Errorf("revoke remember token: %w", err)
		}

		cmdCtx.Logger.Info("remember token revoked", "username", user.Username)
		return nil
	})
}
