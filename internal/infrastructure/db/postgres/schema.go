package postgres

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// schema is applied idempotently at startup. Listing ownership is protected
// with ON DELETE RESTRICT: an account that still owns listings cannot be
// deleted.
const schema = `
CREATE TABLE IF NOT EXISTS roles (
	id          BIGSERIAL PRIMARY KEY,
	name        TEXT NOT NULL UNIQUE,
	description TEXT NOT NULL DEFAULT '',
	created_at  TIMESTAMPTZ NOT NULL DEFAULT now(),
	modified_at TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS accounts (
	id            BIGSERIAL PRIMARY KEY,
	username      TEXT NOT NULL UNIQUE,
	email         TEXT NOT NULL DEFAULT '',
	password_hash TEXT NOT NULL,
	first_name    TEXT NOT NULL DEFAULT '',
	last_name     TEXT NOT NULL DEFAULT '',
	is_active     BOOLEAN NOT NULL DEFAULT TRUE,
	is_staff      BOOLEAN NOT NULL DEFAULT FALSE,
	is_superuser  BOOLEAN NOT NULL DEFAULT FALSE,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
	modified_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE TABLE IF NOT EXISTS account_roles (
	account_id BIGINT NOT NULL REFERENCES accounts(id) ON DELETE CASCADE,
	role_id    BIGINT NOT NULL REFERENCES roles(id) ON DELETE CASCADE,
	UNIQUE (account_id, role_id)
);

CREATE TABLE IF NOT EXISTS listings (
	id            BIGSERIAL PRIMARY KEY,
	title         TEXT NOT NULL,
	description   TEXT NOT NULL DEFAULT '',
	property_type TEXT NOT NULL CHECK (property_type IN ('residential', 'commercial')),
	status        TEXT NOT NULL DEFAULT 'on_market' CHECK (status IN ('on_market', 'off_market')),
	price         NUMERIC(12,2) NOT NULL CHECK (price > 0),
	size          NUMERIC(10,2) NOT NULL CHECK (size > 0),
	address       TEXT NOT NULL DEFAULT '',
	city          TEXT NOT NULL DEFAULT '',
	state         TEXT NOT NULL DEFAULT '',
	zip_code      TEXT NOT NULL DEFAULT '',
	latitude      NUMERIC(9,6),
	longitude     NUMERIC(9,6),
	created_by    BIGINT NOT NULL REFERENCES accounts(id) ON DELETE RESTRICT,
	created_at    TIMESTAMPTZ NOT NULL DEFAULT now(),
	modified_at   TIMESTAMPTZ NOT NULL DEFAULT now()
);

CREATE INDEX IF NOT EXISTS idx_listings_created_by ON listings (created_by);
CREATE INDEX IF NOT EXISTS idx_listings_created_at ON listings (created_at DESC);
CREATE INDEX IF NOT EXISTS idx_listings_price ON listings (price);
`

// EnsureSchema creates the tables and indexes if they do not exist yet.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, schema); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}
