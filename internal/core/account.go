package core

import (
	"context"
	"fmt"

	"github.com/edvin/accountdesk/internal/model"
)

// StatusCount holds a count grouped by status.
type StatusCount struct {
	Status model.Status `json:"status"`
	Count  int          `json:"count"`
}

// AccountService reads and bulk-mutates the accounts table. An empty status
// argument on List and Count means no status predicate.
type AccountService struct {
	db DB
}

func NewAccountService(db DB) *AccountService {
	return &AccountService{db: db}
}

// List returns accounts matching status, newest first, bounded by limit and
// offset.
func (s *AccountService) List(ctx context.Context, status model.Status, limit, offset int) ([]model.Account, error) {
	query := `SELECT id, username, email, status, country, created_at FROM accounts`
	args := []any{}
	argIdx := 1

	if status != "" {
		query += fmt.Sprintf(` WHERE status = $%d`, argIdx)
		args = append(args, status)
		argIdx++
	}

	query += fmt.Sprintf(` ORDER BY created_at DESC LIMIT $%d OFFSET $%d`, argIdx, argIdx+1)
	args = append(args, limit, offset)

	rows, err := s.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list accounts: %w", err)
	}
	defer rows.Close()

	var accounts []model.Account
	for rows.Next() {
		var a model.Account
		if err := rows.Scan(&a.ID, &a.Username, &a.Email, &a.Status, &a.Country, &a.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan account: %w", err)
		}
		accounts = append(accounts, a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate accounts: %w", err)
	}

	return accounts, nil
}

// Count returns the number of accounts matching status, using the same
// predicate as List so pagination stays consistent.
func (s *AccountService) Count(ctx context.Context, status model.Status) (int, error) {
	query := `SELECT count(*) FROM accounts`
	args := []any{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}

	var total int
	if err := s.db.QueryRow(ctx, query, args...).Scan(&total); err != nil {
		return 0, fmt.Errorf("count accounts: %w", err)
	}
	return total, nil
}

// CountByStatus returns per-status counts for the summary cards along with
// the overall total, independent of any filter.
func (s *AccountService) CountByStatus(ctx context.Context) ([]StatusCount, int, error) {
	rows, err := s.db.Query(ctx, `SELECT status, count(*) FROM accounts GROUP BY status`)
	if err != nil {
		return nil, 0, fmt.Errorf("count accounts by status: %w", err)
	}
	defer rows.Close()

	var counts []StatusCount
	total := 0
	for rows.Next() {
		var sc StatusCount
		if err := rows.Scan(&sc.Status, &sc.Count); err != nil {
			return nil, 0, fmt.Errorf("scan status count: %w", err)
		}
		counts = append(counts, sc)
		total += sc.Count
	}
	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("iterate status counts: %w", err)
	}

	return counts, total, nil
}

func (s *AccountService) GetByID(ctx context.Context, id int64) (*model.Account, error) {
	var a model.Account
	err := s.db.QueryRow(ctx,
		`SELECT id, username, email, status, country, created_at FROM accounts WHERE id = $1`, id,
	).Scan(&a.ID, &a.Username, &a.Email, &a.Status, &a.Country, &a.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("get account %d: %w", id, err)
	}
	return &a, nil
}

func (s *AccountService) Update(ctx context.Context, account *model.Account) error {
	_, err := s.db.Exec(ctx,
		`UPDATE accounts SET username = $1, email = $2, status = $3, country = $4 WHERE id = $5`,
		account.Username, account.Email, account.Status, account.Country, account.ID,
	)
	if err != nil {
		return fmt.Errorf("update account %d: %w", account.ID, err)
	}
	return nil
}

func (s *AccountService) Delete(ctx context.Context, id int64) error {
	_, err := s.db.Exec(ctx, `DELETE FROM accounts WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("delete account %d: %w", id, err)
	}
	return nil
}

// BulkUpdateStatus sets every selected account to newStatus in one statement,
// so the change is all-or-nothing. Unknown ids are ignored. Returns the
// number of rows updated.
func (s *AccountService) BulkUpdateStatus(ctx context.Context, ids []int64, newStatus model.Status) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	tag, err := s.db.Exec(ctx,
		`UPDATE accounts SET status = $1 WHERE id = ANY($2)`, newStatus, ids,
	)
	if err != nil {
		return 0, fmt.Errorf("bulk update status: %w", err)
	}
	return tag.RowsAffected(), nil
}

// BulkDelete removes every selected account in one statement. Unknown ids
// are ignored. Returns the number of rows deleted.
func (s *AccountService) BulkDelete(ctx context.Context, ids []int64) (int64, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	tag, err := s.db.Exec(ctx, `DELETE FROM accounts WHERE id = ANY($1)`, ids)
	if err != nil {
		return 0, fmt.Errorf("bulk delete: %w", err)
	}
	return tag.RowsAffected(), nil
}
