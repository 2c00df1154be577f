package db

import (
	"context"

	"github.com/jmoiron/sqlx"
	"github.com/pkg/errors"
)

const createRegionTable = `
CREATE TABLE IF NOT EXISTS region (
	id BINARY(16) NOT NULL,
	code CHAR(3) NOT NULL,
	name VARCHAR(100) NOT NULL,
	region_image_url TEXT NULL,
	PRIMARY KEY (id)
) ENGINE=InnoDB DEFAULT CHARSET=utf8mb4;
`

// Migrate creates the tables the service owns when they are missing.
func Migrate(ctx context.Context, dbConn *sqlx.DB) error {
	if _, err := dbConn.ExecContext(ctx, createRegionTable); err != nil {
		return errors.Wrap(err, "create region table failed")
	}
	return nil
}
