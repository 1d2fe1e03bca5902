package db

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"net/url"
	"strconv"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/stdlib"

	"biblioteca-backend/internal/platform/config"
	"biblioteca-backend/internal/platform/logger"
)

type Dialect string

const (
	MySQL    Dialect = "mysql"
	Postgres Dialect = "postgres"
)

// Builder returns a squirrel builder with the dialect's placeholder format.
func (d Dialect) Builder() squirrel.StatementBuilderType {
	if d == Postgres {
		return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
	}
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Question)
}

// DB is the process-wide pool. It is opened once at startup, handed to every
// store and closed after the HTTP server has drained.
type DB struct {
	*sql.DB
	Dialect Dialect
}

// RedactedDSN renders the connection string for logs with the password masked.
func RedactedDSN(c config.DatabaseConfig) string {
	if c.Password != "" {
		c.Password = "xxxxx"
	}
	if Dialect(c.Driver) == Postgres {
		return PostgresURL(c)
	}
	return mysqlConfig(c).FormatDSN()
}

func mysqlConfig(c config.DatabaseConfig) *mysql.Config {
	mc := mysql.NewConfig()
	mc.User = c.Username
	mc.Passwd = c.Password
	mc.Net = "tcp"
	mc.Addr = net.JoinHostPort(c.Host, strconv.Itoa(c.Port))
	mc.DBName = c.DBName
	mc.ParseTime = true
	// UPDATE with unchanged values must still count as a match
	mc.ClientFoundRows = true
	mc.Loc = time.UTC
	mc.Timeout = 3 * time.Second
	mc.ReadTimeout = 5 * time.Second
	mc.WriteTimeout = 5 * time.Second
	return mc
}

func PostgresURL(c config.DatabaseConfig) string {
	sslMode := c.SSLMode
	if sslMode == "" {
		sslMode = "disable"
	}
	u := url.URL{
		Scheme:   "postgres",
		User:     url.UserPassword(c.Username, c.Password),
		Host:     net.JoinHostPort(c.Host, strconv.Itoa(c.Port)),
		Path:     "/" + c.DBName,
		RawQuery: url.Values{"sslmode": {sslMode}}.Encode(),
	}
	return u.String()
}

func Connect(ctx context.Context, c config.DatabaseConfig) (*DB, error) {
	var (
		sqlDB   *sql.DB
		dialect Dialect
	)

	switch Dialect(c.Driver) {
	case MySQL:
		connector, err := mysql.NewConnector(mysqlConfig(c))
		if err != nil {
			return nil, fmt.Errorf("failed to prepare mysql connector: %w", err)
		}
		sqlDB, dialect = sql.OpenDB(connector), MySQL
	case Postgres:
		pc, err := pgx.ParseConfig(PostgresURL(c))
		if err != nil {
			return nil, fmt.Errorf("failed to parse postgres config: %w", err)
		}
		sqlDB, dialect = stdlib.OpenDB(*pc), Postgres
	default:
		return nil, fmt.Errorf("unsupported database driver %q", c.Driver)
	}

	logger.Info().Str("dsn", RedactedDSN(c)).Msg("connecting to database")

	pingCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := sqlDB.PingContext(pingCtx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// keep the sum across instances below the server's max_connections
	sqlDB.SetMaxOpenConns(c.MaxOpenConns)
	sqlDB.SetMaxIdleConns(c.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(c.ConnMaxLifetime)
	sqlDB.SetConnMaxIdleTime(c.ConnMaxIdleTime)

	return &DB{DB: sqlDB, Dialect: dialect}, nil
}
