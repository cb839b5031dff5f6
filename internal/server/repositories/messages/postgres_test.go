package messages

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/carswipe/internal/server/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })
	return NewPostgresRepository(db), mock
}

const insertQ = `(?s)^INSERT\s+INTO\s+messages\s*\(id,\s*thread_id,\s*sender_id,\s*receiver_id,\s*encrypted_content,\s*nonce\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4,\s*\$5,\s*\$6\)\s*RETURNING\s+seq,\s*created_at$`

func TestCreate_Success(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	now := time.Now().UTC()

	mock.ExpectQuery(insertQ).
		WithArgs("m1", "t1", "buyer", "seller", "Y2lwaGVy", "bm9uY2U=").
		WillReturnRows(sqlmock.NewRows([]string{"seq", "created_at"}).AddRow(int64(17), now))

	got, err := repo.Create(context.Background(), &models.Message{
		ID: "m1", ThreadID: "t1", SenderID: "buyer", ReceiverID: "seller",
		EncryptedContent: "Y2lwaGVy", Nonce: "bm9uY2U=",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(17), got.Seq)
	assert.True(t, got.CreatedAt.Equal(now))
	require.NoError(t, mock.ExpectationsWereMet())
}

func TestCreate_DBError(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	mock.ExpectQuery(insertQ).WillReturnError(errors.New("db down"))

	_, err := repo.Create(context.Background(), &models.Message{ID: "m1"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "db error: db down")
}

var msgCols = []string{"id", "seq", "thread_id", "sender_id", "display_name", "public_key",
	"receiver_id", "encrypted_content", "nonce", "created_at"}

func TestListByThread_OrderedByCreatedAtThenSeq(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	now := time.Now().UTC()

	mock.ExpectQuery(`(?s)FROM\s+messages\s+m\s+JOIN\s+users\s+u\s+ON\s+u\.id\s*=\s*m\.sender_id\s+WHERE\s+m\.thread_id\s*=\s*\$1\s+ORDER\s+BY\s+m\.created_at,\s*m\.seq$`).
		WithArgs("t1").
		WillReturnRows(sqlmock.NewRows(msgCols).
			AddRow("m1", int64(1), "t1", "buyer", "Buyer", "pkB", "seller", "c1", "n1", now).
			AddRow("m2", int64(2), "t1", "seller", "Seller", "pkS", "buyer", "c2", "n2", now))

	got, err := repo.ListByThread(context.Background(), "t1")
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, "Seller", got[1].SenderName)
	assert.Equal(t, "pkS", got[1].SenderPublicKey)
}

func TestListByThread_EmptyIsNotNil(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	mock.ExpectQuery(`FROM\s+messages`).WithArgs("t1").WillReturnRows(sqlmock.NewRows(msgCols))

	got, err := repo.ListByThread(context.Background(), "t1")
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestListByThread_RowError(t *testing.T) {
	repo, mock := newRepoWithMock(t)
	now := time.Now()
	mock.ExpectQuery(`FROM\s+messages`).WithArgs("t1").
		WillReturnRows(sqlmock.NewRows(msgCols).
			AddRow("m1", int64(1), "t1", "buyer", "Buyer", "pkB", "seller", "c1", "n1", now).
			RowError(0, errors.New("broken row")))

	_, err := repo.ListByThread(context.Background(), "t1")
	require.Error(t, err)
}
