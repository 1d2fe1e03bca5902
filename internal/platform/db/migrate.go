package db

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"

	"github.com/Masterminds/squirrel"

	"biblioteca-backend/internal/platform/logger"
)

//go:embed migrations/mysql/*.sql migrations/postgres/*.sql
var migrationFiles embed.FS

const migrationsTableDDL = `
CREATE TABLE IF NOT EXISTS schema_migrations (
	version VARCHAR(255) PRIMARY KEY,
	applied_at TIMESTAMP NOT NULL DEFAULT CURRENT_TIMESTAMP
)`

type Migrator struct {
	db    *DB
	files fs.FS
	dir   string
	sb    squirrel.StatementBuilderType
}

func NewMigrator(d *DB) *Migrator {
	return &Migrator{
		db:    d,
		files: migrationFiles,
		dir:   path.Join("migrations", string(d.Dialect)),
		sb:    d.Dialect.Builder(),
	}
}

// Migrate applies every pending *.sql file in lexical order. The version is the
// filename prefix before the first underscore ("001_init.sql" => "001").
func (m *Migrator) Migrate(ctx context.Context) error {
	if _, err := m.db.ExecContext(ctx, migrationsTableDDL); err != nil {
		return fmt.Errorf("failed to create migration tracking table: %w", err)
	}

	entries, err := fs.ReadDir(m.files, m.dir)
	if err != nil {
		return fmt.Errorf("failed to read migration directory: %w", err)
	}
	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".sql") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	for _, name := range names {
		if err := m.apply(ctx, name); err != nil {
			return err
		}
	}
	return nil
}

func (m *Migrator) apply(ctx context.Context, name string) error {
	version := strings.SplitN(name, "_", 2)[0]

	applied, err := m.isApplied(ctx, version)
	if err != nil {
		return err
	}
	if applied {
		logger.Debug().Str("migration", name).Msg("migration already applied, skipping")
		return nil
	}

	content, err := fs.ReadFile(m.files, path.Join(m.dir, name))
	if err != nil {
		return fmt.Errorf("failed to read migration file: %w", err)
	}

	err = RunInTx(ctx, m.db.DB, nil, func(ctx context.Context, tx DBTX) error {
		for _, stmt := range splitStatements(string(content)) {
			if _, err := tx.ExecContext(ctx, stmt); err != nil {
				return fmt.Errorf("migration %s failed: %w", name, err)
			}
		}
		q, args, err := m.sb.Insert("schema_migrations").Columns("version").Values(version).ToSql()
		if err != nil {
			return err
		}
		if _, err := tx.ExecContext(ctx, q, args...); err != nil {
			return fmt.Errorf("failed to record migration %s: %w", name, err)
		}
		return nil
	})
	if err != nil {
		return err
	}

	logger.Info().Str("migration", name).Msg("migration applied")
	return nil
}

func (m *Migrator) isApplied(ctx context.Context, version string) (bool, error) {
	q, args, err := m.sb.Select("COUNT(*)").From("schema_migrations").
		Where(squirrel.Eq{"version": version}).ToSql()
	if err != nil {
		return false, err
	}
	var n int
	if err := m.db.QueryRowContext(ctx, q, args...).Scan(&n); err != nil {
		return false, fmt.Errorf("failed to check migration status: %w", err)
	}
	return n > 0, nil
}

// splitStatements splits on ';' at line ends. Migration files keep one
// statement per terminator and never embed ';' inside literals.
func splitStatements(content string) []string {
	var out []string
	var cur strings.Builder
	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		if trimmed == "" || strings.HasPrefix(trimmed, "--") {
			continue
		}
		cur.WriteString(line)
		cur.WriteString("\n")
		if strings.HasSuffix(trimmed, ";") {
			stmt := strings.TrimSuffix(strings.TrimSpace(cur.String()), ";")
			out = append(out, stmt)
			cur.Reset()
		}
	}
	if rest := strings.TrimSpace(cur.String()); rest != "" {
		out = append(out, rest)
	}
	return out
}
