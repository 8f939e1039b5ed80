package database

import (
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lhecker/ta-office/office"
)

func newTestDatabase(t *testing.T) *Database {
	t.Helper()

	db, err := NewDatabase(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, db.Close())
	})

	return db
}

func TestAppendAndReplay(t *testing.T) {
	db := newTestDatabase(t)

	now := time.Now().Round(time.Millisecond)
	events := []office.Event{
		{Kind: office.EventArrived, Student: 1, Time: now},
		{Kind: office.EventSeatTaken, Student: 1, Occupied: 1, Time: now},
		{Kind: office.EventTaHelping, Duration: 2 * time.Second, Time: now},
		{Kind: office.EventErrored, Student: 1, Time: now, Err: errors.New("canceled")},
	}
	for _, ev := range events {
		require.NoError(t, db.AppendEvent("run-1", ev))
	}

	records, err := db.Events("run-1")
	require.NoError(t, err)
	require.Len(t, records, 4)

	// Sequence numbers replay in emission order.
	for i, rec := range records {
		assert.Equal(t, uint64(i+1), rec.Seq)
	}

	assert.Equal(t, "arrived", records[0].Kind)
	assert.Equal(t, 1, records[0].Student)
	assert.Equal(t, 1, records[1].Occupied)
	assert.Equal(t, "2s", records[2].Duration)
	assert.Equal(t, "canceled", records[3].Error)
}

func TestRunsAreIsolated(t *testing.T) {
	db := newTestDatabase(t)

	require.NoError(t, db.AppendEvent("run-a", office.Event{Kind: office.EventArrived, Student: 1}))
	require.NoError(t, db.AppendEvent("run-b", office.Event{Kind: office.EventBalked, Student: 2}))

	runs, err := db.Runs()
	require.NoError(t, err)
	assert.Equal(t, []string{"run-a", "run-b"}, runs)

	records, err := db.Events("run-a")
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "arrived", records[0].Kind)
}

func TestEventsUnknownRun(t *testing.T) {
	db := newTestDatabase(t)

	records, err := db.Events("missing")
	require.NoError(t, err)
	assert.Empty(t, records)
}
