package messages

import (
	"context"

	"github.com/dmitrijs2005/carswipe/internal/dbx"
	"github.com/dmitrijs2005/carswipe/internal/server/models"
)

type PostgresRepository struct {
	db dbx.DBTX
}

func NewPostgresRepository(db dbx.DBTX) *PostgresRepository {
	return &PostgresRepository{db: db}
}

// Create appends a ciphertext row. Seq and CreatedAt are assigned by the database.
func (r *PostgresRepository) Create(ctx context.Context, msg *models.Message) (*models.Message, error) {
	query :=
		`INSERT INTO messages (id, thread_id, sender_id, receiver_id, encrypted_content, nonce)
		 VALUES ($1, $2, $3, $4, $5, $6)
		 RETURNING seq, created_at
		 `

	err := r.db.QueryRowContext(ctx, query,
		msg.ID, msg.ThreadID, msg.SenderID, msg.ReceiverID, msg.EncryptedContent, msg.Nonce).Scan(&msg.Seq, &msg.CreatedAt)

	if err != nil {
		return nil, dbx.WrapError(err)
	}

	return msg, nil
}

// ListByThread returns the thread's messages in (created_at, seq) order,
// each joined with its sender's display name and public key.
func (r *PostgresRepository) ListByThread(ctx context.Context, threadID string) ([]models.Message, error) {
	query :=
		`SELECT m.id, m.seq, m.thread_id, m.sender_id, u.display_name, u.public_key,
		        m.receiver_id, m.encrypted_content, m.nonce, m.created_at
		 FROM messages m
		 JOIN users u ON u.id = m.sender_id
		 WHERE m.thread_id = $1
		 ORDER BY m.created_at, m.seq
		 `

	rows, err := r.db.QueryContext(ctx, query, threadID)
	if err != nil {
		return nil, dbx.WrapError(err)
	}
	defer rows.Close()

	out := make([]models.Message, 0)
	for rows.Next() {
		var m models.Message
		err := rows.Scan(&m.ID, &m.Seq, &m.ThreadID, &m.SenderID, &m.SenderName, &m.SenderPublicKey,
			&m.ReceiverID, &m.EncryptedContent, &m.Nonce, &m.CreatedAt)
		if err != nil {
			return nil, dbx.WrapError(err)
		}
		out = append(out, m)
	}
	if err := rows.Err(); err != nil {
		return nil, dbx.WrapError(err)
	}

	return out, nil
}
