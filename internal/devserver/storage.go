package devserver

import (
	"context"
	"database/sql"
	"fmt"
	"os"

	_ "github.com/mattn/go-sqlite3"

	"github.com/techsolutions/horabank/internal/logger"
	"github.com/techsolutions/horabank/migrations"
)

// OpenSQLite opens (creating if necessary) the sqlite database at dsn,
// verifies the connection, and applies the embedded migrations.
func OpenSQLite(ctx context.Context, dsn string, log *logger.Logger) (*sql.DB, error) {
	if dsn != ":memory:" {
		if err := createDBFileIfNotExists(dsn); err != nil {
			log.Err(err).Str("dsn", dsn).Msg("error creating database file")
			return nil, err
		}
	}

	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite database: %w", err)
	}

	if err = conn.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping sqlite database: %w", err)
	}

	if err = migrations.Migrate(conn); err != nil {
		return nil, fmt.Errorf("apply migrations: %w", err)
	}

	log.Debug().Str("dsn", dsn).Msg("connected to database successfully")
	return conn, nil
}

func createDBFileIfNotExists(dbFile string) error {
	if _, err := os.Stat(dbFile); os.IsNotExist(err) {
		f, err := os.Create(dbFile)
		if err != nil {
			return fmt.Errorf("error creating DB file: %w", err)
		}
		f.Close()
	}

	return nil
}
