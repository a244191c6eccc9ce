package store

import (
	"context"
	"database/sql"
	"fmt"
	"net/url"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/dkoval/go-mail-sync/internal/config"
	"github.com/dkoval/go-mail-sync/internal/logger"
)

// NewConnectSQLite opens the local replica database and runs pending
// migrations. The DSN is rewritten into file: form with a generous
// _busy_timeout: the replica is shared with the reading UI process, and
// SQLite's default 5 seconds is too short when a large batch is being
// committed.
func NewConnectSQLite(ctx context.Context, cfg config.ClientDB, log *logger.Logger) (*DB, error) {
	dsn, err := dsnFromPath(cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error building DSN")
		return nil, fmt.Errorf("error building sqlite DSN from %q: %w", cfg.DSN, err)
	}

	conn, err := sql.Open("sqlite3", dsn)
	if err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database")
		return nil, fmt.Errorf("error opening connection to DB: %w", err)
	}

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("func", "NewConnectSQLite").Msg("error connecting database (ping)")
		return nil, err
	}
	log.Debug().Str("func", "NewConnectSQLite").Msg("connected to database successfully")

	db := &DB{
		DB:     conn,
		logger: log,
	}

	if err = db.Migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("error migrating replica schema: %w", err)
	}

	return db, nil
}

func dsnFromPath(path string) (string, error) {
	busyTimeout := int(5*time.Minute) / int(time.Millisecond)

	var u *url.URL
	if !strings.HasPrefix(path, "file:") {
		u = &url.URL{Scheme: "file", Opaque: path}
	} else {
		var err error
		u, err = url.Parse(path)
		if err != nil {
			return "", err
		}
	}

	values := u.Query()
	values.Set("_busy_timeout", fmt.Sprintf("%d", busyTimeout))
	u.RawQuery = values.Encode()
	return u.String(), nil
}
