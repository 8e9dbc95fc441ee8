package drawer

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRepository_Append(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	entry := &Entry{
		ID:          "entry-1",
		SessionID:   "sess-1",
		Kind:        KindOpeningFloat,
		Amount:      100000,
		Description: "modal awal",
		RecordedAt:  time.Now(),
	}

	t.Run("Success", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO cash_drawer_entries").
			WithArgs(entry.ID, entry.SessionID, entry.Kind, entry.Amount, entry.Description, entry.RecordedAt).
			WillReturnResult(sqlmock.NewResult(1, 1))

		err := repo.Append(context.Background(), entry)
		assert.NoError(t, err)
	})

	t.Run("Error", func(t *testing.T) {
		mock.ExpectExec("INSERT INTO cash_drawer_entries").
			WillReturnError(errors.New("db error"))

		err := repo.Append(context.Background(), entry)
		assert.ErrorIs(t, err, ErrFailedAppendEntry)
	})
}

func TestRepository_ListBySession(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	repo := NewRepository(db)
	cols := []string{"id", "session_id", "kind", "amount", "description", "recorded_at"}

	t.Run("Success", func(t *testing.T) {
		rows := sqlmock.NewRows(cols).
			AddRow("e1", "sess-1", "OPENING_FLOAT", 100000, "modal awal", time.Now()).
			AddRow("e2", "sess-1", "CASH_WITHDRAWAL", 20000, "setor ke brankas", time.Now())

		mock.ExpectQuery("SELECT id, session_id, kind, amount, description, recorded_at").
			WithArgs("sess-1").
			WillReturnRows(rows)

		entries, err := repo.ListBySession(context.Background(), "sess-1")
		assert.NoError(t, err)
		require.Len(t, entries, 2)
		assert.Equal(t, KindOpeningFloat, entries[0].Kind)
		assert.EqualValues(t, 20000, entries[1].Amount)
	})

	t.Run("Empty session", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, session_id, kind, amount, description, recorded_at").
			WithArgs("sess-2").
			WillReturnRows(sqlmock.NewRows(cols))

		entries, err := repo.ListBySession(context.Background(), "sess-2")
		assert.NoError(t, err)
		assert.Empty(t, entries)
	})

	t.Run("Error", func(t *testing.T) {
		mock.ExpectQuery("SELECT id, session_id, kind, amount, description, recorded_at").
			WillReturnError(errors.New("db error"))

		_, err := repo.ListBySession(context.Background(), "sess-1")
		assert.ErrorIs(t, err, ErrFailedListEntries)
	})
}
