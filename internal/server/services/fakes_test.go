package services

import (
	"context"
	"database/sql"
	"sort"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dmitrijs2005/carswipe/internal/common"
	"github.com/dmitrijs2005/carswipe/internal/dbx"
	"github.com/dmitrijs2005/carswipe/internal/server/models"
	"github.com/dmitrijs2005/carswipe/internal/server/repositories/messages"
	"github.com/dmitrijs2005/carswipe/internal/server/repositories/threads"
	"github.com/dmitrijs2005/carswipe/internal/server/repositories/users"
)

func newSQLMockDB(t *testing.T) (*sql.DB, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db, mock
}

// fakeStore is a tiny in-memory database shared by the fake repositories.
type fakeStore struct {
	users        map[string]*models.User
	threads      map[string]*models.Thread
	participants map[string][]models.Participant
	messages     []models.Message
	seq          int64
	clock        time.Time

	// findMisses makes the next lookups miss, as if a concurrent
	// writer had not committed yet.
	findMisses int

	createUserErr error
	createMsgErr  error
	touchErr      error
	touched       []string
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:        map[string]*models.User{},
		threads:      map[string]*models.Thread{},
		participants: map[string][]models.Participant{},
		clock:        time.Date(2025, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

func (s *fakeStore) now() time.Time {
	s.clock = s.clock.Add(time.Second)
	return s.clock
}

func (s *fakeStore) addUser(id, name, publicKey string) {
	s.users[id] = &models.User{ID: id, Email: id + "@example.com", DisplayName: name, PublicKey: publicKey, SealedSecretKey: []byte("sealed-" + id)}
}

type fakeRepoManager struct{ st *fakeStore }

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(dbx.DBTX) users.Repository              { return &fakeUsers{m.st} }
func (m *fakeRepoManager) Threads(dbx.DBTX) threads.Repository          { return &fakeThreads{m.st} }
func (m *fakeRepoManager) Messages(dbx.DBTX) messages.Repository        { return &fakeMessages{m.st} }

type fakeUsers struct{ st *fakeStore }

func (f *fakeUsers) Create(_ context.Context, u *models.User) (*models.User, error) {
	if f.st.createUserErr != nil {
		return nil, f.st.createUserErr
	}
	for _, existing := range f.st.users {
		if existing.Email == u.Email {
			return nil, common.ErrorAlreadyExists
		}
	}
	u.CreatedAt = f.st.now()
	cp := *u
	f.st.users[u.ID] = &cp
	return u, nil
}

func (f *fakeUsers) GetByEmail(_ context.Context, email string) (*models.User, error) {
	for _, u := range f.st.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeUsers) GetByID(_ context.Context, id string) (*models.User, error) {
	u, ok := f.st.users[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *u
	return &cp, nil
}

type fakeThreads struct{ st *fakeStore }

func (f *fakeThreads) Create(_ context.Context, t *models.Thread) (*models.Thread, error) {
	for _, other := range f.st.threads {
		if other.ListingID == t.ListingID && other.PairKey == t.PairKey {
			return nil, common.ErrorAlreadyExists
		}
	}
	t.CreatedAt = f.st.now()
	t.UpdatedAt = t.CreatedAt
	cp := *t
	f.st.threads[t.ID] = &cp
	return t, nil
}

func (f *fakeThreads) AddParticipant(_ context.Context, threadID, userID string) error {
	u, ok := f.st.users[userID]
	if !ok {
		return common.ErrorNotFound
	}
	f.st.participants[threadID] = append(f.st.participants[threadID], models.Participant{
		ThreadID: threadID, UserID: userID, DisplayName: u.DisplayName, PublicKey: u.PublicKey, LastReadAt: time.Unix(0, 0).UTC(),
	})
	return nil
}

func (f *fakeThreads) FindByListingAndParticipants(_ context.Context, listingID, a, b string) (*models.Thread, error) {
	if f.st.findMisses > 0 {
		f.st.findMisses--
		return nil, common.ErrorNotFound
	}
	for id, t := range f.st.threads {
		if t.ListingID != listingID {
			continue
		}
		view := &models.ThreadView{Participants: f.st.participants[id]}
		if view.IsParticipant(a) && view.IsParticipant(b) {
			cp := *t
			return &cp, nil
		}
	}
	return nil, common.ErrorNotFound
}

func (f *fakeThreads) GetByID(_ context.Context, id string) (*models.Thread, error) {
	t, ok := f.st.threads[id]
	if !ok {
		return nil, common.ErrorNotFound
	}
	cp := *t
	return &cp, nil
}

func (f *fakeThreads) ListParticipants(_ context.Context, threadID string) ([]models.Participant, error) {
	return append([]models.Participant(nil), f.st.participants[threadID]...), nil
}

func (f *fakeThreads) Touch(_ context.Context, threadID string) error {
	if f.st.touchErr != nil {
		return f.st.touchErr
	}
	t, ok := f.st.threads[threadID]
	if !ok {
		return common.ErrorNotFound
	}
	t.UpdatedAt = f.st.now()
	f.st.touched = append(f.st.touched, threadID)
	return nil
}

func (f *fakeThreads) MarkRead(_ context.Context, threadID, userID string) error {
	ps := f.st.participants[threadID]
	for i := range ps {
		if ps[i].UserID == userID {
			ps[i].LastReadAt = f.st.now()
			return nil
		}
	}
	return common.ErrorNotFound
}

func (f *fakeThreads) ListForUser(_ context.Context, userID string) ([]models.ThreadPreview, error) {
	var out []models.ThreadPreview
	for id, t := range f.st.threads {
		view := &models.ThreadView{Participants: f.st.participants[id]}
		if !view.IsParticipant(userID) {
			continue
		}
		other, _ := view.Counterpart(userID)
		out = append(out, models.ThreadPreview{
			Thread:      *t,
			Counterpart: models.PublicProfile{UserID: other.UserID, DisplayName: other.DisplayName, PublicKey: other.PublicKey},
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Thread.UpdatedAt.After(out[j].Thread.UpdatedAt) })
	return out, nil
}

type fakeMessages struct{ st *fakeStore }

func (f *fakeMessages) Create(_ context.Context, m *models.Message) (*models.Message, error) {
	if f.st.createMsgErr != nil {
		return nil, f.st.createMsgErr
	}
	f.st.seq++
	m.Seq = f.st.seq
	m.CreatedAt = f.st.now()
	f.st.messages = append(f.st.messages, *m)
	return m, nil
}

func (f *fakeMessages) ListByThread(_ context.Context, threadID string) ([]models.Message, error) {
	out := make([]models.Message, 0)
	for _, m := range f.st.messages {
		if m.ThreadID == threadID {
			out = append(out, m)
		}
	}
	return out, nil
}
