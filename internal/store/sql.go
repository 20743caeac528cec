package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/career-navigator/apiserver/types"
	"github.com/lib/pq"
	sqlite "modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// SQLStore is the relational backend. It works against SQLite and
// Postgres through database/sql; email uniqueness is enforced by the
// UNIQUE constraint on auth_users.email, checked atomically at insert.
type SQLStore struct {
	db *sql.DB
}

func NewSQLStore(db *sql.DB) *SQLStore {
	return &SQLStore{db: db}
}

func (s *SQLStore) Close() error {
	return s.db.Close()
}

func (s *SQLStore) CreateAccount(ctx context.Context, acct types.Account) (types.Account, error) {
	const query = `
		INSERT INTO auth_users (id, email, full_name, password_hash, created_at)
		VALUES ($1, $2, $3, $4, $5)`
	_, err := s.db.ExecContext(
		ctx,
		query,
		acct.ID,
		acct.Email,
		acct.FullName,
		acct.PasswordHash,
		acct.CreatedAt,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return types.Account{}, ErrDuplicateEmail
		}
		return types.Account{}, unavailable(err)
	}
	return acct, nil
}

func (s *SQLStore) GetAccountByEmail(ctx context.Context, email string) (types.Account, error) {
	const query = `
		SELECT id, email, full_name, password_hash, created_at
		FROM auth_users
		WHERE email = $1`
	return s.scanAccount(s.db.QueryRowContext(ctx, query, email))
}

func (s *SQLStore) GetAccountByID(ctx context.Context, id string) (types.Account, error) {
	const query = `
		SELECT id, email, full_name, password_hash, created_at
		FROM auth_users
		WHERE id = $1`
	return s.scanAccount(s.db.QueryRowContext(ctx, query, id))
}

func (s *SQLStore) scanAccount(row *sql.Row) (types.Account, error) {
	var acct types.Account
	var fullName sql.NullString
	err := row.Scan(
		&acct.ID,
		&acct.Email,
		&fullName,
		&acct.PasswordHash,
		&acct.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return types.Account{}, ErrNotFound
		}
		return types.Account{}, unavailable(err)
	}
	acct.FullName = fullName.String
	return acct, nil
}

func (s *SQLStore) CreateJob(ctx context.Context, job types.Job) (types.Job, error) {
	const query = `
		INSERT INTO jobs (id, owner_id, title, company, status, notes, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	_, err := s.db.ExecContext(
		ctx,
		query,
		job.ID,
		job.OwnerID,
		job.Title,
		job.Company,
		job.Status,
		job.Notes,
		job.CreatedAt,
		job.UpdatedAt,
	)
	if err != nil {
		return types.Job{}, unavailable(err)
	}
	return job, nil
}

func (s *SQLStore) ListJobs(ctx context.Context, ownerID string) ([]types.Job, error) {
	const query = `
		SELECT id, owner_id, title, company, status, notes, created_at, updated_at
		FROM jobs
		WHERE owner_id = $1
		ORDER BY created_at, id`
	rows, err := s.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, unavailable(err)
	}
	defer rows.Close()

	jobs := make([]types.Job, 0)
	for rows.Next() {
		var job types.Job
		var notes sql.NullString
		if err := rows.Scan(
			&job.ID,
			&job.OwnerID,
			&job.Title,
			&job.Company,
			&job.Status,
			&notes,
			&job.CreatedAt,
			&job.UpdatedAt,
		); err != nil {
			return nil, unavailable(err)
		}
		job.Notes = notes.String
		jobs = append(jobs, job)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable(err)
	}
	return jobs, nil
}

func (s *SQLStore) CreateProgress(ctx context.Context, item types.Progress) (types.Progress, error) {
	const query = `
		INSERT INTO progress (id, owner_id, competency, level, evidence_url, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)`
	_, err := s.db.ExecContext(
		ctx,
		query,
		item.ID,
		item.OwnerID,
		item.Competency,
		item.Level,
		item.EvidenceURL,
		item.CreatedAt,
		item.UpdatedAt,
	)
	if err != nil {
		return types.Progress{}, unavailable(err)
	}
	return item, nil
}

func (s *SQLStore) ListProgress(ctx context.Context, ownerID string) ([]types.Progress, error) {
	const query = `
		SELECT id, owner_id, competency, level, evidence_url, created_at, updated_at
		FROM progress
		WHERE owner_id = $1
		ORDER BY created_at, id`
	rows, err := s.db.QueryContext(ctx, query, ownerID)
	if err != nil {
		return nil, unavailable(err)
	}
	defer rows.Close()

	items := make([]types.Progress, 0)
	for rows.Next() {
		var item types.Progress
		var evidence sql.NullString
		if err := rows.Scan(
			&item.ID,
			&item.OwnerID,
			&item.Competency,
			&item.Level,
			&evidence,
			&item.CreatedAt,
			&item.UpdatedAt,
		); err != nil {
			return nil, unavailable(err)
		}
		item.EvidenceURL = evidence.String
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, unavailable(err)
	}
	return items, nil
}

// isUniqueViolation recognizes the email-uniqueness constraint violation
// for both supported drivers.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505"
	}
	var sqErr *sqlite.Error
	if errors.As(err, &sqErr) {
		code := sqErr.Code()
		return code == sqlite3.SQLITE_CONSTRAINT_UNIQUE ||
			code == sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY
	}
	return false
}
