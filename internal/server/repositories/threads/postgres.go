package threads

import (
	"context"
	"database/sql"
	"errors"

	"github.com/dmitrijs2005/carswipe/internal/common"
	"github.com/dmitrijs2005/carswipe/internal/dbx"
	"github.com/dmitrijs2005/carswipe/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create inserts a thread. A second thread for the same listing and pair
// yields common.ErrorAlreadyExists.
func (r *PostgresRepository) Create(ctx context.Context, thread *models.Thread) (*models.Thread, error) {
	query :=
		`INSERT INTO threads (id, listing_id, pair_key)
		 VALUES ($1, $2, $3)
		 RETURNING created_at, updated_at
		 `

	err := r.db.QueryRowContext(ctx, query, thread.ID, thread.ListingID, thread.PairKey).Scan(&thread.CreatedAt, &thread.UpdatedAt)
	if err != nil {
		if dbx.IsUniqueViolation(err) {
			return nil, common.ErrorAlreadyExists
		}
		return nil, dbx.WrapError(err)
	}

	return thread, nil
}

// AddParticipant joins userID to the thread. An unknown user yields common.ErrorNotFound.
func (r *PostgresRepository) AddParticipant(ctx context.Context, threadID, userID string) error {
	query :=
		`INSERT INTO thread_participants (thread_id, user_id)
		 VALUES ($1, $2)
		 `

	if _, err := r.db.ExecContext(ctx, query, threadID, userID); err != nil {
		if dbx.IsForeignKeyViolation(err) {
			return common.ErrorNotFound
		}
		if dbx.IsUniqueViolation(err) {
			return common.ErrorAlreadyExists
		}
		return dbx.WrapError(err)
	}

	return nil
}

// FindByListingAndParticipants returns the oldest thread about listingID that
// has both users as participants.
func (r *PostgresRepository) FindByListingAndParticipants(ctx context.Context, listingID, userA, userB string) (*models.Thread, error) {
	query :=
		`SELECT t.id, t.listing_id, t.created_at, t.updated_at
		 FROM threads t
		 JOIN thread_participants pa ON pa.thread_id = t.id AND pa.user_id = $2
		 JOIN thread_participants pb ON pb.thread_id = t.id AND pb.user_id = $3
		 WHERE t.listing_id = $1
		 ORDER BY t.created_at
		 LIMIT 1
		 `

	return r.scanThread(r.db.QueryRowContext(ctx, query, listingID, userA, userB))
}

func (r *PostgresRepository) GetByID(ctx context.Context, threadID string) (*models.Thread, error) {
	query :=
		`SELECT id, listing_id, created_at, updated_at FROM threads
		 WHERE id = $1
		 `

	return r.scanThread(r.db.QueryRowContext(ctx, query, threadID))
}

func (r *PostgresRepository) scanThread(row *sql.Row) (*models.Thread, error) {
	t := &models.Thread{}
	if err := row.Scan(&t.ID, &t.ListingID, &t.CreatedAt, &t.UpdatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, dbx.WrapError(err)
	}
	return t, nil
}

func (r *PostgresRepository) ListParticipants(ctx context.Context, threadID string) ([]models.Participant, error) {
	query :=
		`SELECT p.thread_id, p.user_id, u.display_name, u.public_key, p.last_read_at
		 FROM thread_participants p
		 JOIN users u ON u.id = p.user_id
		 WHERE p.thread_id = $1
		 ORDER BY u.created_at
		 `

	rows, err := r.db.QueryContext(ctx, query, threadID)
	if err != nil {
		return nil, dbx.WrapError(err)
	}
	defer rows.Close()

	var out []models.Participant
	for rows.Next() {
		var p models.Participant
		if err := rows.Scan(&p.ThreadID, &p.UserID, &p.DisplayName, &p.PublicKey, &p.LastReadAt); err != nil {
			return nil, dbx.WrapError(err)
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, dbx.WrapError(err)
	}

	return out, nil
}

// Touch bumps updated_at so the thread sorts first in inbox listings.
func (r *PostgresRepository) Touch(ctx context.Context, threadID string) error {
	query := `UPDATE threads SET updated_at = now() WHERE id = $1`
	return r.execOne(ctx, query, threadID)
}

func (r *PostgresRepository) MarkRead(ctx context.Context, threadID, userID string) error {
	query :=
		`UPDATE thread_participants SET last_read_at = now()
		 WHERE thread_id = $1 AND user_id = $2
		 `
	return r.execOne(ctx, query, threadID, userID)
}

func (r *PostgresRepository) execOne(ctx context.Context, query string, args ...any) error {
	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return dbx.WrapError(err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return dbx.WrapError(err)
	}
	if n == 0 {
		return common.ErrorNotFound
	}
	return nil
}

// ListForUser returns the user's threads, most recently active first, with
// the counterpart and the number of messages received after last_read_at.
func (r *PostgresRepository) ListForUser(ctx context.Context, userID string) ([]models.ThreadPreview, error) {
	query :=
		`SELECT t.id, t.listing_id, t.created_at, t.updated_at,
		        u.id, u.display_name, u.public_key,
		        (SELECT max(m.created_at) FROM messages m WHERE m.thread_id = t.id),
		        (SELECT count(*) FROM messages m
		          WHERE m.thread_id = t.id AND m.receiver_id = me.user_id AND m.created_at > me.last_read_at)
		 FROM thread_participants me
		 JOIN threads t ON t.id = me.thread_id
		 JOIN thread_participants other ON other.thread_id = t.id AND other.user_id <> me.user_id
		 JOIN users u ON u.id = other.user_id
		 WHERE me.user_id = $1
		 ORDER BY t.updated_at DESC
		 `

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, dbx.WrapError(err)
	}
	defer rows.Close()

	var out []models.ThreadPreview
	for rows.Next() {
		var (
			p    models.ThreadPreview
			last sql.NullTime
		)
		err := rows.Scan(&p.Thread.ID, &p.Thread.ListingID, &p.Thread.CreatedAt, &p.Thread.UpdatedAt,
			&p.Counterpart.UserID, &p.Counterpart.DisplayName, &p.Counterpart.PublicKey,
			&last, &p.UnreadCount)
		if err != nil {
			return nil, dbx.WrapError(err)
		}
		if last.Valid {
			p.LastMessageAt = last.Time
			p.Preview = common.EncryptedPreview
		}
		out = append(out, p)
	}
	if err := rows.Err(); err != nil {
		return nil, dbx.WrapError(err)
	}

	return out, nil
}
