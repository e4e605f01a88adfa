package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

var routesDDL = [...]string{`
CREATE TABLE IF NOT EXISTS routes (
	id             BIGSERIAL PRIMARY KEY,
	driver_id      BIGINT NOT NULL,
	vehicle_id     BIGINT NOT NULL,
	start_location VARCHAR(255) NOT NULL,
	end_location   VARCHAR(255) NOT NULL,
	status         TEXT NOT NULL DEFAULT 'Scheduled'
		CHECK (status IN ('Scheduled', 'InProgress', 'Completed', 'Cancelled')),
	start_time     TIMESTAMP WITHOUT TIME ZONE NOT NULL,
	end_time       TIMESTAMP WITHOUT TIME ZONE NULL,
	notes          TEXT NULL,
	version        BIGINT NOT NULL DEFAULT 1,
	created_at     TIMESTAMP WITHOUT TIME ZONE DEFAULT now() NOT NULL,
	updated_at     TIMESTAMP WITHOUT TIME ZONE DEFAULT now() NOT NULL
)`,
	`CREATE INDEX IF NOT EXISTS routes_status_idx ON routes (status)`,
	`CREATE INDEX IF NOT EXISTS routes_driver_id_idx ON routes (driver_id)`,
}

// EnsureSchema creates the routes table and its indexes when missing.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	for _, stmt := range routesDDL {
		if _, err := pool.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("ensure routes schema: %w", err)
		}
	}
	return nil
}
