package repo

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/ayselgur/cradle/internal/config"
	"github.com/ayselgur/cradle/internal/errors"
	"github.com/ayselgur/cradle/internal/journal"
	"github.com/ayselgur/cradle/internal/store"
)

// TestFullWorkflow exercises the complete journal lifecycle against the
// SQLite backend: log → load into store → edit → delete → reopen →
// delete again (not found)
func TestFullWorkflow(t *testing.T) {
	tmpDir := t.TempDir()
	cfg := config.DefaultConfig()

	db, err := OpenSQLite(tmpDir, cfg)
	require.NoError(t, err)
	defer db.Close()

	ctx := context.Background()

	// 1. Log one record of each kind
	mood, err := journal.NewMood(4, "sakin bir gün")
	require.NoError(t, err)
	require.NoError(t, db.AddMood(ctx, *mood))

	feeding, err := journal.NewFeeding(journal.FeedingBottle, journal.Milliliters(90), "")
	require.NoError(t, err)
	require.NoError(t, db.AddFeeding(ctx, *feeding))

	answers := make([]journal.PanasAnswer, 0, 20)
	for _, q := range journal.PanasQuestions {
		answers = append(answers, journal.PanasAnswer{QuestionID: q.ID, Score: 2})
	}
	panas, err := journal.NewPanas(answers)
	require.NoError(t, err)
	require.NoError(t, db.AddPanas(ctx, *panas))

	note, err := journal.NewNote("taslak not")
	require.NoError(t, err)
	require.NoError(t, db.AddNote(ctx, *note))

	// 2. Load everything into a fresh store
	st := store.New(store.DefaultToastDuration)
	defer st.Close()

	moods, feedings, panasRecords, notes, err := Load(ctx, db)
	require.NoError(t, err)
	st.SetInitial(moods, feedings, panasRecords, notes)

	snap := st.Snapshot()
	require.Len(t, snap.Moods, 1)
	require.Len(t, snap.Feedings, 1)
	require.Len(t, snap.PanasRecords, 1)
	require.Len(t, snap.DailyNotes, 1)
	require.Equal(t, "Mutlu", snap.Moods[0].MoodLabel)
	require.Equal(t, 20, snap.PanasRecords[0].PositiveScore)
	require.Equal(t, 20, snap.PanasRecords[0].NegativeScore)

	// 3. Edit the note, write through, and verify the store view
	edited, err := journal.EditNote(*note, "bitmiş not")
	require.NoError(t, err)
	require.NoError(t, db.UpdateNote(ctx, *edited))
	require.True(t, st.UpdateNote(*edited))
	require.Equal(t, "bitmiş not", st.Snapshot().DailyNotes[0].Text)
	require.Equal(t, note.CreatedAt.Unix(), edited.CreatedAt.Unix())

	// 4. Delete the feeding from both layers
	require.NoError(t, db.DeleteFeeding(ctx, feeding.ID))
	require.True(t, st.DeleteFeeding(feeding.ID))
	require.Len(t, st.Snapshot().Feedings, 0)

	// 5. Reopen the database and verify persistence
	require.NoError(t, db.Close())
	db2, err := OpenSQLite(tmpDir, cfg)
	require.NoError(t, err)
	defer db2.Close()

	moods, feedings, panasRecords, notes, err = Load(ctx, db2)
	require.NoError(t, err)
	require.Len(t, moods, 1)
	require.Len(t, feedings, 0)
	require.Len(t, panasRecords, 1)
	require.Len(t, notes, 1)
	require.Equal(t, "bitmiş not", notes[0].Text)

	// 6. Deleting the feeding again reports NOT_FOUND at the repo layer
	err = db2.DeleteFeeding(ctx, feeding.ID)
	require.Error(t, err)
	var cErr *errors.CradleError
	require.ErrorAs(t, err, &cErr)
	require.Equal(t, errors.ErrNotFound, cErr.Code)
}
