package roster_test

import (
	"database/sql"
	"testing"

	"github.com/Dmorales2498/Entes-Stats/internal/database"
	"github.com/Dmorales2498/Entes-Stats/internal/roster"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupTestDB creates a temporary in-memory SQLite database for testing.
func setupTestDB(t *testing.T) (roster.Store, *sql.DB, func()) {
	t.Helper()

	db, dbTeardown, err := database.InitDB(":memory:", "", "", "../../migrations")
	require.NoError(t, err)

	store := roster.New(db)
	teardown := func() {
		dbTeardown()
	}

	return store, db, teardown
}

func intPtr(v int) *int       { return &v }
func strPtr(v string) *string { return &v }

func TestCreateAndGetPlayer(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	p, err := store.CreatePlayer("Andres", intPtr(8), strPtr("Mediocampo"))
	require.NoError(t, err)
	require.NotZero(t, p.ID)

	got, err := store.GetPlayer(p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Andres", got.Name)
	require.NotNil(t, got.Jersey)
	assert.Equal(t, 8, *got.Jersey)
	require.NotNil(t, got.Position)
	assert.Equal(t, "Mediocampo", *got.Position)
	assert.Nil(t, got.PhotoPath)

	_, err = store.GetPlayer(9999)
	assert.ErrorIs(t, err, roster.ErrPlayerNotFound)
}

func TestUpdatePlayer(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	p, err := store.CreatePlayer("Nico", nil, nil)
	require.NoError(t, err)

	updated, err := store.UpdatePlayer(p.ID, nil, intPtr(10), strPtr("Delantero"))
	require.NoError(t, err)
	assert.Equal(t, "Nico", updated.Name)
	require.NotNil(t, updated.Jersey)
	assert.Equal(t, 10, *updated.Jersey)

	_, err = store.UpdatePlayer(9999, strPtr("Nobody"), nil, nil)
	assert.ErrorIs(t, err, roster.ErrPlayerNotFound)
}

func TestSetPlayerPhoto(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	p, err := store.CreatePlayer("Leo", nil, nil)
	require.NoError(t, err)

	require.NoError(t, store.SetPlayerPhoto(p.ID, "photos/1_leo.jpg"))

	got, err := store.GetPlayer(p.ID)
	require.NoError(t, err)
	require.NotNil(t, got.PhotoPath)
	assert.Equal(t, "photos/1_leo.jpg", *got.PhotoPath)

	assert.ErrorIs(t, store.SetPlayerPhoto(9999, "x.jpg"), roster.ErrPlayerNotFound)
}

func TestListMatchesDateRange(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	for _, date := range []string{"2025-09-01", "2025-09-08", "2025-10-01"} {
		_, err := store.CreateMatch(date, nil, true, nil, nil)
		require.NoError(t, err)
	}

	t.Run("unbounded returns all", func(t *testing.T) {
		matches, err := store.ListMatches(roster.DateRange{})
		require.NoError(t, err)
		assert.Len(t, matches, 3)
	})

	t.Run("inclusive bounds", func(t *testing.T) {
		matches, err := store.ListMatches(roster.DateRange{Start: "2025-09-01", End: "2025-09-08"})
		require.NoError(t, err)
		require.Len(t, matches, 2)
		assert.Equal(t, "2025-09-01", matches[0].Date)
		assert.Equal(t, "2025-09-08", matches[1].Date)
	})

	t.Run("start only", func(t *testing.T) {
		matches, err := store.ListMatches(roster.DateRange{Start: "2025-09-09"})
		require.NoError(t, err)
		require.Len(t, matches, 1)
		assert.Equal(t, "2025-10-01", matches[0].Date)
	})
}

func TestAddStatEntryReferentialIntegrity(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	p, err := store.CreatePlayer("Marta", nil, nil)
	require.NoError(t, err)
	m, err := store.CreateMatch("2025-09-01", strPtr("Rivales"), true, intPtr(3), intPtr(1))
	require.NoError(t, err)

	t.Run("valid references", func(t *testing.T) {
		e, err := store.AddStatEntry(roster.StatInput{PlayerID: p.ID, MatchID: m.ID, Goals: 2, Assists: 1})
		require.NoError(t, err)
		assert.Equal(t, 2, e.Goals)
		assert.Equal(t, 1, e.Assists)
	})

	t.Run("unknown player", func(t *testing.T) {
		_, err := store.AddStatEntry(roster.StatInput{PlayerID: 9999, MatchID: m.ID})
		assert.ErrorIs(t, err, roster.ErrPlayerNotFound)
	})

	t.Run("unknown match", func(t *testing.T) {
		_, err := store.AddStatEntry(roster.StatInput{PlayerID: p.ID, MatchID: 9999})
		assert.ErrorIs(t, err, roster.ErrMatchNotFound)
	})
}

func TestAddStatEntryLegacyMinutes(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	p, err := store.CreatePlayer("Marta", nil, nil)
	require.NoError(t, err)
	m, err := store.CreateMatch("2025-09-01", nil, true, nil, nil)
	require.NoError(t, err)

	t.Run("minutes maps to appearances", func(t *testing.T) {
		e, err := store.AddStatEntry(roster.StatInput{PlayerID: p.ID, MatchID: m.ID, Minutes: intPtr(3)})
		require.NoError(t, err)
		require.NotNil(t, e.Appearances)
		assert.Equal(t, 3, *e.Appearances)
	})

	t.Run("appearances wins over minutes", func(t *testing.T) {
		e, err := store.AddStatEntry(roster.StatInput{PlayerID: p.ID, MatchID: m.ID, Appearances: intPtr(1), Minutes: intPtr(90)})
		require.NoError(t, err)
		require.NotNil(t, e.Appearances)
		assert.Equal(t, 1, *e.Appearances)
	})

	t.Run("neither leaves it null", func(t *testing.T) {
		e, err := store.AddStatEntry(roster.StatInput{PlayerID: p.ID, MatchID: m.ID, Goals: 1})
		require.NoError(t, err)
		assert.Nil(t, e.Appearances)
	})
}

func TestUpdateAndDeleteStatEntry(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	p, err := store.CreatePlayer("Marta", nil, nil)
	require.NoError(t, err)
	m, err := store.CreateMatch("2025-09-01", nil, true, nil, nil)
	require.NoError(t, err)
	e, err := store.AddStatEntry(roster.StatInput{PlayerID: p.ID, MatchID: m.ID, Goals: 1, Assists: 0})
	require.NoError(t, err)

	// Values are replaced, not incremented.
	updated, err := store.UpdateStatEntry(e.ID, 3, 2, intPtr(1))
	require.NoError(t, err)
	assert.Equal(t, 3, updated.Goals)
	assert.Equal(t, 2, updated.Assists)
	require.NotNil(t, updated.Appearances)
	assert.Equal(t, 1, *updated.Appearances)

	require.NoError(t, store.DeleteStatEntry(e.ID))
	_, err = store.GetStatEntry(e.ID)
	assert.ErrorIs(t, err, roster.ErrStatNotFound)

	assert.ErrorIs(t, store.DeleteStatEntry(e.ID), roster.ErrStatNotFound)
}

func TestDeletePlayerCascadesStats(t *testing.T) {
	store, db, teardown := setupTestDB(t)
	defer teardown()

	p1, err := store.CreatePlayer("Uno", nil, nil)
	require.NoError(t, err)
	p2, err := store.CreatePlayer("Dos", nil, nil)
	require.NoError(t, err)
	m, err := store.CreateMatch("2025-09-01", nil, true, intPtr(2), intPtr(0))
	require.NoError(t, err)

	_, err = store.AddStatEntry(roster.StatInput{PlayerID: p1.ID, MatchID: m.ID, Goals: 2})
	require.NoError(t, err)
	_, err = store.AddStatEntry(roster.StatInput{PlayerID: p2.ID, MatchID: m.ID, Assists: 1})
	require.NoError(t, err)

	require.NoError(t, store.DeletePlayer(p1.ID))

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM stat_entries WHERE player_id = ?", p1.ID).Scan(&count))
	assert.Zero(t, count, "no orphan stats may survive a player delete")

	// The other player's stats are untouched.
	remaining, err := store.ListStatsForPlayer(p2.ID)
	require.NoError(t, err)
	assert.Len(t, remaining, 1)
}

func TestDeleteMatchCascadesStats(t *testing.T) {
	store, db, teardown := setupTestDB(t)
	defer teardown()

	p, err := store.CreatePlayer("Uno", nil, nil)
	require.NoError(t, err)
	m, err := store.CreateMatch("2025-09-01", nil, true, nil, nil)
	require.NoError(t, err)
	_, err = store.AddStatEntry(roster.StatInput{PlayerID: p.ID, MatchID: m.ID, Goals: 1})
	require.NoError(t, err)

	require.NoError(t, store.DeleteMatch(m.ID))

	var count int
	require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM stat_entries WHERE match_id = ?", m.ID).Scan(&count))
	assert.Zero(t, count)
}

func TestMultipleEntriesPerPairAreKept(t *testing.T) {
	store, _, teardown := setupTestDB(t)
	defer teardown()

	p, err := store.CreatePlayer("Doble", nil, nil)
	require.NoError(t, err)
	m, err := store.CreateMatch("2025-09-01", nil, true, nil, nil)
	require.NoError(t, err)

	_, err = store.AddStatEntry(roster.StatInput{PlayerID: p.ID, MatchID: m.ID, Goals: 1})
	require.NoError(t, err)
	_, err = store.AddStatEntry(roster.StatInput{PlayerID: p.ID, MatchID: m.ID, Goals: 2})
	require.NoError(t, err)

	entries, err := store.ListStatsForPlayer(p.ID)
	require.NoError(t, err)
	assert.Len(t, entries, 2, "the store does not deduplicate (player, match) pairs")
}

func TestClear(t *testing.T) {
	store, db, teardown := setupTestDB(t)
	defer teardown()

	p, err := store.CreatePlayer("Uno", nil, nil)
	require.NoError(t, err)
	m, err := store.CreateMatch("2025-09-01", nil, true, nil, nil)
	require.NoError(t, err)
	_, err = store.AddStatEntry(roster.StatInput{PlayerID: p.ID, MatchID: m.ID})
	require.NoError(t, err)

	store.Clear()

	for _, table := range []string{"players", "matches", "stat_entries"} {
		var count int
		require.NoError(t, db.QueryRow("SELECT COUNT(*) FROM "+table).Scan(&count))
		assert.Zero(t, count, "table %s should be empty", table)
	}
}
