package migrate

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/term"
	"gorm.io/gorm"

	"ispdesk/internal/infrastructure/config"
	"ispdesk/internal/infrastructure/database"
	"ispdesk/internal/infrastructure/migration"
	"ispdesk/internal/infrastructure/persistence/seeds"
	"ispdesk/internal/shared/biztime"
	"ispdesk/internal/shared/logger"
)

var (
	env        string
	configPath string
	name       string
	steps      int
	assumeYes  bool
	seedFile   string
)

func NewCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database migration tools",
		Long:  `Manage database migrations including running migrations, checking status, creating new migration files and loading seed data.`,
	}

	cmd.PersistentFlags().StringVarP(&env, "env", "e", "development", "Environment (development, test, production)")
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to config file (default: ./configs/config.yaml)")

	cmd.AddCommand(
		newUpCommand(),
		newDownCommand(),
		newStatusCommand(),
		newCreateCommand(),
		newSeedCommand(),
	)

	return cmd
}

func newUpCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Run all pending migrations",
		Long:  `Apply all pending database migrations to bring the database schema up to date.`,
		RunE:  runUp,
	}
}

func newDownCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "down",
		Short: "Rollback migrations",
		Long:  `Rollback a specified number of database migrations. Asks for confirmation on a terminal unless --yes is given.`,
		RunE:  runDown,
	}

	cmd.Flags().IntVarP(&steps, "steps", "n", 1, "Number of migrations to rollback")
	cmd.Flags().BoolVarP(&assumeYes, "yes", "y", false, "Do not ask for confirmation")

	return cmd
}

func newStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		Long:  `Display the current migration version and status of the database.`,
		RunE:  runStatus,
	}
}

func newCreateCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create a new migration",
		Long:  `Create a new SQL migration file with the specified name.`,
		RunE:  runCreate,
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "Name of the migration (required)")
	_ = cmd.MarkFlagRequired("name")

	return cmd
}

func newSeedCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "seed",
		Short: "Load the plan catalog",
		Long:  `Insert the plans listed in the catalog file. Plans that already exist by name are left untouched.`,
		RunE:  runSeed,
	}

	cmd.Flags().StringVarP(&seedFile, "file", "f", "configs/seed/plans.yaml", "Plan catalog YAML file")

	return cmd
}

// workspace is what every subcommand needs once config is loaded.
type workspace struct {
	cfg *config.Config
	log logger.Interface
	db  *gorm.DB
}

func openWorkspace(ctx context.Context) (*workspace, error) {
	cfg, err := config.Load(env, configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := logger.Init(&cfg.Logger, false); err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}
	if err := biztime.Init(cfg.Server.Timezone); err != nil {
		return nil, fmt.Errorf("failed to initialize business timezone: %w", err)
	}

	log := logger.NewLogger().Named("migrate")
	gormDB, err := database.Open(ctx, &cfg.Database, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}
	return &workspace{cfg: cfg, log: log, db: gormDB}, nil
}

func (w *workspace) close() {
	if err := database.Close(w.db); err != nil {
		w.log.Warnw("failed to close database", "error", err)
	}
	_ = logger.Sync()
}

func (w *workspace) manager() (*migration.Manager, error) {
	return migration.NewManager(w.db, w.cfg.Database.Driver, w.log)
}

// withManager opens a workspace, hands its migration manager to fn and
// closes everything afterwards.
func withManager(ctx context.Context, fn func(m *migration.Manager, log logger.Interface) error) error {
	ws, err := openWorkspace(ctx)
	if err != nil {
		return err
	}
	defer ws.close()

	m, err := ws.manager()
	if err != nil {
		return err
	}
	return fn(m, ws.log)
}

func runUp(cmd *cobra.Command, args []string) error {
	return withManager(cmd.Context(), func(m *migration.Manager, log logger.Interface) error {
		log.Infow("running up migrations", "environment", env)
		if err := m.Up(cmd.Context()); err != nil {
			return fmt.Errorf("migration failed: %w", err)
		}
		log.Infow("migrations completed successfully")
		return nil
	})
}

func runDown(cmd *cobra.Command, args []string) error {
	if !assumeYes {
		if !term.IsTerminal(int(os.Stdin.Fd())) {
			return fmt.Errorf("refusing to roll back without a terminal; pass --yes to confirm")
		}
		question := fmt.Sprintf("Roll back %d migration(s) in %s?", steps, env)
		if !confirm(cmd.InOrStdin(), cmd.OutOrStdout(), question) {
			fmt.Fprintln(cmd.OutOrStdout(), "Aborted.")
			return nil
		}
	}

	return withManager(cmd.Context(), func(m *migration.Manager, log logger.Interface) error {
		log.Infow("running down migrations", "environment", env, "steps", steps)
		if err := m.Down(cmd.Context(), steps); err != nil {
			return fmt.Errorf("down migration failed: %w", err)
		}
		log.Infow("down migration completed successfully")
		return nil
	})
}

// confirm asks a yes/no question and accepts only an explicit yes.
func confirm(in io.Reader, out io.Writer, question string) bool {
	fmt.Fprintf(out, "%s [y/N]: ", question)

	answer, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && answer == "" {
		return false
	}

	switch strings.ToLower(strings.TrimSpace(answer)) {
	case "y", "yes":
		return true
	default:
		return false
	}
}

func runStatus(cmd *cobra.Command, args []string) error {
	return withManager(cmd.Context(), func(m *migration.Manager, _ logger.Interface) error {
		version, err := m.Version(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to get migration version: %w", err)
		}
		statuses, err := m.Status(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to get detailed status: %w", err)
		}
		printStatus(cmd.OutOrStdout(), version, statuses)
		return nil
	})
}

func printStatus(out io.Writer, version int64, statuses []migration.Status) {
	fmt.Fprintf(out, "\nMigration Status:\n")
	fmt.Fprintf(out, "  Environment:     %s\n", env)
	fmt.Fprintf(out, "  Current Version: %d\n\n", version)
	for _, st := range statuses {
		state := "pending"
		if st.Applied {
			state = "applied"
		}
		fmt.Fprintf(out, "  %-8s %05d  %s\n", state, st.Version, st.Source)
	}
}

func runCreate(cmd *cobra.Command, args []string) error {
	if err := migration.Create(migration.ScriptsDir, name); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Migration '%s' created in %s\n", name, migration.ScriptsDir)
	return nil
}

func runSeed(cmd *cobra.Command, args []string) error {
	ws, err := openWorkspace(cmd.Context())
	if err != nil {
		return err
	}
	defer ws.close()

	fixtures, err := seeds.LoadPlanFixtures(seedFile)
	if err != nil {
		return err
	}

	created, err := seeds.SeedPlans(cmd.Context(), ws.db, fixtures)
	if err != nil {
		return fmt.Errorf("seeding plans failed: %w", err)
	}

	ws.log.Infow("plan catalog seeded", "file", seedFile, "fixtures", len(fixtures), "created", created)
	fmt.Fprintf(cmd.OutOrStdout(), "Seeded %d of %d plans from %s\n", created, len(fixtures), seedFile)
	return nil
}
