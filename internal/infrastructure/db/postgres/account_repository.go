package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/estately/realty-api/internal/core/domain"
)

// Postgres error codes of interest.
const (
	pgUniqueViolation     = "23505"
	pgForeignKeyViolation = "23503"
)

// AccountRepository provides PostgreSQL backed persistence for accounts,
// roles, and their assignments.
type AccountRepository struct {
	pool *pgxpool.Pool
}

func NewAccountRepository(pool *pgxpool.Pool) *AccountRepository {
	return &AccountRepository{pool: pool}
}

const accountColumns = `id, username, email, password_hash, first_name, last_name,
	is_active, is_staff, is_superuser, created_at, modified_at`

func scanAccount(row pgx.Row) (*domain.Account, error) {
	var a domain.Account
	err := row.Scan(&a.ID, &a.Username, &a.Email, &a.PasswordHash, &a.FirstName, &a.LastName,
		&a.IsActive, &a.IsStaff, &a.IsSuperuser, &a.CreatedAt, &a.ModifiedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("scan account: %w", err)
	}
	return &a, nil
}

// CreateWithRole inserts the account row, lazily creates the initial role,
// and assigns it, all in one transaction, so a failure partway leaves no
// orphaned account.
func (r *AccountRepository) CreateWithRole(ctx context.Context, account *domain.Account, roleName string) (*domain.Account, error) {
	var id int64
	err := WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		err := tx.QueryRow(ctx, `
			INSERT INTO accounts (username, email, password_hash, first_name, last_name, is_active, is_staff, is_superuser)
			VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
			RETURNING id`,
			account.Username, account.Email, account.PasswordHash,
			account.FirstName, account.LastName,
			account.IsActive, account.IsStaff, account.IsSuperuser,
		).Scan(&id)
		if err != nil {
			var pgErr *pgconn.PgError
			if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
				return domain.ErrAccountExists
			}
			return fmt.Errorf("insert account: %w", err)
		}

		roleID, err := getOrCreateRole(ctx, tx, roleName)
		if err != nil {
			return err
		}

		_, err = tx.Exec(ctx, `
			INSERT INTO account_roles (account_id, role_id) VALUES ($1, $2)
			ON CONFLICT DO NOTHING`, id, roleID)
		if err != nil {
			return fmt.Errorf("assign role: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return r.FindByID(ctx, id)
}

// getOrCreateRole resolves a role id by name, creating the role lazily with
// a description synthesized from the name.
func getOrCreateRole(ctx context.Context, tx pgx.Tx, name string) (int64, error) {
	role := domain.NewRole(name)
	var id int64
	err := tx.QueryRow(ctx, `
		INSERT INTO roles (name, description) VALUES ($1, $2)
		ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
		RETURNING id`, role.Name, role.Description).Scan(&id)
	if err != nil {
		return 0, fmt.Errorf("get or create role %q: %w", name, err)
	}
	return id, nil
}

func (r *AccountRepository) FindByID(ctx context.Context, id int64) (*domain.Account, error) {
	account, err := scanAccount(r.pool.QueryRow(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE id = $1`, id))
	if err != nil {
		return nil, err
	}
	if err := r.loadRoles(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

func (r *AccountRepository) FindByUsername(ctx context.Context, username string) (*domain.Account, error) {
	account, err := scanAccount(r.pool.QueryRow(ctx,
		`SELECT `+accountColumns+` FROM accounts WHERE username = $1`, username))
	if err != nil {
		return nil, err
	}
	if err := r.loadRoles(ctx, account); err != nil {
		return nil, err
	}
	return account, nil
}

func (r *AccountRepository) loadRoles(ctx context.Context, account *domain.Account) error {
	rows, err := r.pool.Query(ctx, `
		SELECT r.id, r.name, r.description, r.created_at, r.modified_at
		FROM roles r
		JOIN account_roles ar ON ar.role_id = r.id
		WHERE ar.account_id = $1
		ORDER BY r.name`, account.ID)
	if err != nil {
		return fmt.Errorf("load roles: %w", err)
	}
	defer rows.Close()

	account.Roles = nil
	for rows.Next() {
		var role domain.Role
		if err := rows.Scan(&role.ID, &role.Name, &role.Description, &role.CreatedAt, &role.ModifiedAt); err != nil {
			return fmt.Errorf("scan role: %w", err)
		}
		account.Roles = append(account.Roles, role)
	}
	return rows.Err()
}

func (r *AccountRepository) Update(ctx context.Context, account *domain.Account) (*domain.Account, error) {
	tag, err := r.pool.Exec(ctx, `
		UPDATE accounts
		SET username = $2, email = $3, first_name = $4, last_name = $5, modified_at = now()
		WHERE id = $1`,
		account.ID, account.Username, account.Email, account.FirstName, account.LastName)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return nil, domain.ErrAccountExists
		}
		return nil, fmt.Errorf("update account: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return nil, domain.ErrAccountNotFound
	}
	return r.FindByID(ctx, account.ID)
}

func (r *AccountRepository) UpdatePassword(ctx context.Context, id int64, passwordHash string) error {
	tag, err := r.pool.Exec(ctx, `
		UPDATE accounts SET password_hash = $2, modified_at = now() WHERE id = $1`,
		id, passwordHash)
	if err != nil {
		return fmt.Errorf("update password: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

// ReplaceRoles makes the stored role set exactly roleNames inside one
// transaction, creating missing roles lazily.
func (r *AccountRepository) ReplaceRoles(ctx context.Context, accountID int64, roleNames []string) error {
	return WithTx(ctx, r.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `DELETE FROM account_roles WHERE account_id = $1`, accountID); err != nil {
			return fmt.Errorf("clear roles: %w", err)
		}
		for _, name := range roleNames {
			roleID, err := getOrCreateRole(ctx, tx, name)
			if err != nil {
				return err
			}
			if _, err := tx.Exec(ctx, `
				INSERT INTO account_roles (account_id, role_id) VALUES ($1, $2)
				ON CONFLICT DO NOTHING`, accountID, roleID); err != nil {
				return fmt.Errorf("assign role: %w", err)
			}
		}
		return nil
	})
}

// Delete removes the account row. The listings FK is declared RESTRICT, so
// deleting an account that still owns listings fails and is surfaced as
// domain.ErrAccountProtected.
func (r *AccountRepository) Delete(ctx context.Context, id int64) error {
	tag, err := r.pool.Exec(ctx, `DELETE FROM accounts WHERE id = $1`, id)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			return domain.ErrAccountProtected
		}
		return fmt.Errorf("delete account: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}
