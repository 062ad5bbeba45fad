package cli

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/roach88/smartenum/internal/store"
)

// DBEnvVar names the environment variable that provides the default
// database path for sync.
const DBEnvVar = "SMARTENUM_DB"

const defaultDBPath = "smartenum.db"

// SyncOptions holds flags for the sync command.
type SyncOptions struct {
	DBPath string
}

// SyncSummary is the output of the sync command.
type SyncSummary struct {
	DB        string   `json:"db"`
	Revision  string   `json:"revision,omitempty"`
	Added     []string `json:"added"`
	Updated   []string `json:"updated"`
	Unchanged []string `json:"unchanged"`
	Removed   []string `json:"removed"`
}

func (s SyncSummary) String() string {
	if s.Revision == "" {
		return fmt.Sprintf("✓ %s is up to date (%d enumeration(s))", s.DB, len(s.Unchanged))
	}

	var b strings.Builder
	fmt.Fprintf(&b, "✓ Synced %s at revision %s", s.DB, s.Revision)
	for _, group := range []struct {
		label string
		names []string
	}{
		{"added", s.Added},
		{"updated", s.Updated},
		{"removed", s.Removed},
	} {
		if len(group.names) > 0 {
			fmt.Fprintf(&b, "\n  %s: %s", group.label, strings.Join(group.names, ", "))
		}
	}
	return b.String()
}

// NewSyncCommand creates the sync command.
func NewSyncCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &SyncOptions{}

	cmd := &cobra.Command{
		Use:   "sync <catalog>",
		Short: "Mirror a catalog into a SQLite database",
		Long: `Write every enumeration in the catalog to a SQLite database.

Enumerations whose kind or members changed get a new revision; the rest
keep theirs. Enumerations no longer in the catalog are removed.

The database path defaults to $` + DBEnvVar + `, then ` + defaultDBPath + `.`,
		Args:          cobra.ExactArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSync(rootOpts, opts, args[0], cmd)
		},
	}

	cmd.Flags().StringVar(&opts.DBPath, "db", "", "path to SQLite database (default $"+DBEnvVar+" or "+defaultDBPath+")")

	return cmd
}

// resolveDBPath applies the flag, environment, default precedence.
func resolveDBPath(flag string) string {
	if flag != "" {
		return flag
	}
	if env := os.Getenv(DBEnvVar); env != "" {
		return env
	}
	return defaultDBPath
}

func runSync(rootOpts *RootOptions, opts *SyncOptions, path string, cmd *cobra.Command) error {
	formatter := newFormatter(rootOpts, cmd)

	reg, err := loadCatalog(formatter, path)
	if err != nil {
		return err
	}

	dbPath := resolveDBPath(opts.DBPath)
	formatter.VerboseLog("Opening database %s", dbPath)

	st, err := store.Open(dbPath, store.WithLogger(formatter.Logger()))
	if err != nil {
		return formatter.fail(ExitCommandError, ErrCodeStoreFailed, err.Error(), nil)
	}
	defer st.Close()

	result, err := st.SyncRegistry(cmd.Context(), reg)
	if err != nil {
		return formatter.fail(ExitCommandError, ErrCodeStoreFailed, err.Error(), nil)
	}

	return formatter.Success(SyncSummary{
		DB:        dbPath,
		Revision:  result.Revision,
		Added:     orEmpty(result.Added),
		Updated:   orEmpty(result.Updated),
		Unchanged: orEmpty(result.Unchanged),
		Removed:   orEmpty(result.Removed),
	})
}

// orEmpty keeps JSON output as [] rather than null.
func orEmpty(names []string) []string {
	if names == nil {
		return []string{}
	}
	return names
}
