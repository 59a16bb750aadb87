package db

import (
	"context"
	"fmt"
	"time"

	_ "github.com/go-sql-driver/mysql"
	"github.com/jmoiron/sqlx"

	"zenflow/internal/config"
)

const (
	defaultParams   = "parseTime=true&multiStatements=true"
	maxOpenConns    = 10
	maxIdleConns    = 5
	connMaxLifetime = 5 * time.Minute
)

// ConnectDB opens the MySQL pool backing the kv_store table and checks it is reachable.
func ConnectDB(ctx context.Context, conf *config.Config) (*sqlx.DB, error) {
	db, err := sqlx.ConnectContext(ctx, "mysql", buildDSN(conf))
	if err != nil {
		return nil, fmt.Errorf("connect mysql %s:%s/%s: %w", conf.DbHost, conf.DbPort, conf.DbName, err)
	}

	db.SetMaxOpenConns(maxOpenConns)
	db.SetMaxIdleConns(maxIdleConns)
	db.SetConnMaxLifetime(connMaxLifetime)
	return db, nil
}

func buildDSN(conf *config.Config) string {
	params := conf.DbParams
	if params == "" {
		params = defaultParams
	}
	return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?%s", conf.DbUser, conf.DbPassword, conf.DbHost, conf.DbPort, conf.DbName, params)
}
