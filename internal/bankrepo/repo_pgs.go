// Package bankrepo manages the persistence layer of accounts, users,
// passwords and the operation log.
package bankrepo

import (
	"context"
	"database/sql"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/cashops/cash-bank/internal/domain"
	"github.com/cashops/cash-bank/pkg/dbpkg"
	"github.com/cashops/cash-bank/pkg/errorspkg"
)

// RepoPGS facilitates bank repository layer logic.
type RepoPGS struct {
	db dbpkg.SQLInterface
}

// NewRepoPGS returns bank RepoPGS.
func NewRepoPGS(db dbpkg.SQLInterface) *RepoPGS {
	return &RepoPGS{
		db: db,
	}
}

const getAccountQuery = `
SELECT
	a.id, a.balance, u.id, u.username, r.id, r.name
FROM accounts a
JOIN users u ON u.id = a.owner_id
JOIN roles r ON r.id = u.role_id
WHERE a.id = $1
`

// GetAccount returns the account with the given id, including its owner.
func (r *RepoPGS) GetAccount(ctx context.Context, id int32) (*domain.Account, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getAccountQuery, id)

	var (
		accountID int32
		balance   string
		owner     domain.User
	)

	err := row.Scan(
		&accountID,
		&balance,
		&owner.ID,
		&owner.Name,
		&owner.Role.ID,
		&owner.Role.Name,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return nil, domain.ErrAccountNotFound
		}

		l.Error().Err(err).Send()

		return nil, errorspkg.ErrInternal
	}

	balanceDecimal, err := decimal.NewFromString(balance)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return domain.NewAccount(accountID, owner, balanceDecimal), nil
}

const updateAccountQuery = `
UPDATE accounts
SET balance = $2
WHERE id = $1
`

// UpdateAccountBalance writes the account's current balance.
func (r *RepoPGS) UpdateAccountBalance(ctx context.Context, account *domain.Account) error {
	l := zerolog.Ctx(ctx)

	res, err := r.db.ExecContext(ctx, updateAccountQuery, account.ID, account.Balance().String())
	if err != nil {
		l.Error().Err(err).Send()
		return errorspkg.ErrInternal
	}

	affected, err := res.RowsAffected()
	if err != nil {
		l.Error().Err(err).Send()
		return errorspkg.ErrInternal
	}

	if affected == 0 {
		return domain.ErrAccountNotFound
	}

	return nil
}

const listAccountsQuery = `
SELECT
	a.id, a.balance, u.id, u.username, r.id, r.name
FROM accounts a
JOIN users u ON u.id = a.owner_id
JOIN roles r ON r.id = u.role_id
ORDER BY a.id
`

// ListAccounts returns all accounts.
func (r *RepoPGS) ListAccounts(ctx context.Context) ([]*domain.Account, error) {
	l := zerolog.Ctx(ctx)

	rows, err := r.db.QueryContext(ctx, listAccountsQuery)
	if err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}
	defer rows.Close()

	accounts := []*domain.Account{}

	for rows.Next() {
		var (
			accountID int32
			balance   string
			owner     domain.User
		)

		if err := rows.Scan(
			&accountID,
			&balance,
			&owner.ID,
			&owner.Name,
			&owner.Role.ID,
			&owner.Role.Name,
		); err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		balanceDecimal, err := decimal.NewFromString(balance)
		if err != nil {
			l.Error().Err(err).Send()
			return nil, errorspkg.ErrInternal
		}

		accounts = append(accounts, domain.NewAccount(accountID, owner, balanceDecimal))
	}

	if err := rows.Err(); err != nil {
		l.Error().Err(err).Send()
		return nil, errorspkg.ErrInternal
	}

	return accounts, nil
}

const getUserQuery = `
SELECT
	u.id, u.username, r.id, r.name
FROM users u
JOIN roles r ON r.id = u.role_id
WHERE u.username = $1
`

// GetUserByName returns the user with the given username.
func (r *RepoPGS) GetUserByName(ctx context.Context, name string) (domain.User, error) {
	l := zerolog.Ctx(ctx)

	row := r.db.QueryRowContext(ctx, getUserQuery, name)

	var u domain.User

	err := row.Scan(
		&u.ID,
		&u.Name,
		&u.Role.ID,
		&u.Role.Name,
	)

	if err != nil {
		if err == sql.ErrNoRows {
			return u, domain.ErrUserNotFound
		}

		l.Error().Err(err).Send()

		return u, errorspkg.ErrInternal
	}

	return u, nil
}

const getPasswordQuery = `
SELECT hashed_password
FROM passwords
WHERE user_id = $1
`

// GetPasswordForUser returns the stored password hash of the user.
func (r *RepoPGS) GetPasswordForUser(ctx context.Context, userID int32) (string, error) {
	l := zerolog.Ctx(ctx)

	var hash string

	err := r.db.QueryRowContext(ctx, getPasswordQuery, userID).Scan(&hash)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", domain.ErrUserNotFound
		}

		l.Error().Err(err).Send()

		return "", errorspkg.ErrInternal
	}

	return hash, nil
}

const createOperationQuery = `
INSERT INTO operations (
	kind, username, account_id, amount, description, succeeded, created_at
) VALUES (
	$1, $2, $3, $4, $5, $6, $7
)
`

// CreateOperation appends an operation record to the audit log.
func (r *RepoPGS) CreateOperation(ctx context.Context, op domain.Operation) error {
	l := zerolog.Ctx(ctx)

	_, err := r.db.ExecContext(ctx, createOperationQuery,
		string(op.Kind),
		op.User.Name,
		op.AccountID,
		op.Amount.String(),
		op.Description,
		op.Succeeded,
		op.CreatedAt,
	)

	if err != nil {
		l.Error().Err(err).Send()
		return errorspkg.ErrInternal
	}

	return nil
}
