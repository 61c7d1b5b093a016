package storage

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "nested", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
	if store.Driver() != "sqlite" {
		t.Errorf("Driver() = %q, expected sqlite", store.Driver())
	}
}

func TestStoreReopenKeepsScores(t *testing.T) {
	ctx := context.Background()
	dbPath := filepath.Join(t.TempDir(), "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	if _, err := store.SaveScore(ctx, "chase", "ann", 70); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	store.Close()

	store, err = Open(dbPath)
	if err != nil {
		t.Fatalf("reopen failed: %v", err)
	}
	defer store.Close()

	high, err := store.HighScore(ctx, "chase")
	if err != nil || high != 70 {
		t.Errorf("HighScore() = %d, %v; expected 70", high, err)
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	for _, s := range []struct {
		game, player string
		score        int
	}{
		{"chase", "ann", 100},
		{"chase", "bob", 50},
		{"chase", "cy", 200},
		{"other", "dee", 500},
	} {
		if _, err := store.SaveScore(ctx, s.game, s.player, s.score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores(ctx, "chase", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}

	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}
	want := []struct {
		player string
		score  int
	}{{"cy", 200}, {"ann", 100}, {"bob", 50}}
	for i, w := range want {
		if scores[i].Player != w.player || scores[i].Score != w.score {
			t.Errorf("scores[%d] = %s/%d, expected %s/%d", i, scores[i].Player, scores[i].Score, w.player, w.score)
		}
		if scores[i].CreatedAt.IsZero() {
			t.Errorf("scores[%d] has no timestamp", i)
		}
	}

	other, err := store.TopScores(ctx, "other", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(other) != 1 || other[0].Score != 500 {
		t.Errorf("other game scores = %+v", other)
	}
}

func TestStoreSaveReturnsEntry(t *testing.T) {
	store := openTestStore(t)

	entry, err := store.SaveScore(context.Background(), "chase", "  ann  ", 40)
	if err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}
	if entry.ID == 0 || entry.Player != "ann" || entry.Score != 40 || entry.GameID != "chase" {
		t.Errorf("entry = %+v", entry)
	}
	if entry.CreatedAt.IsZero() {
		t.Error("entry has no timestamp")
	}
}

func TestStoreRejectsNegativeScore(t *testing.T) {
	store := openTestStore(t)

	_, err := store.SaveScore(context.Background(), "chase", "ann", -1)
	if !errors.Is(err, ErrInvalidScore) {
		t.Errorf("SaveScore(-1) error = %v, expected ErrInvalidScore", err)
	}
}

func TestStoreZeroScoreAllowed(t *testing.T) {
	store := openTestStore(t)

	if _, err := store.SaveScore(context.Background(), "chase", "ann", 0); err != nil {
		t.Errorf("SaveScore(0) failed: %v", err)
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	for i := range 15 {
		if _, err := store.SaveScore(ctx, "chase", "p", i*10); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores(ctx, "chase", 5)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 5 || scores[0].Score != 140 || scores[4].Score != 100 {
		t.Errorf("top 5 = %+v", scores)
	}

	scores, err = store.TopScores(ctx, "chase", 0)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != DefaultLimit {
		t.Errorf("default limit returned %d rows", len(scores))
	}
}

func TestStoreTiesKeepInsertOrder(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	for _, p := range []string{"first", "second", "third"} {
		if _, err := store.SaveScore(ctx, "chase", p, 30); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}

	scores, err := store.TopScores(ctx, "chase", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	for i, p := range []string{"first", "second", "third"} {
		if scores[i].Player != p {
			t.Errorf("scores[%d].Player = %q, expected %q", i, scores[i].Player, p)
		}
	}
}

func TestStoreHighScoreAndClear(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	high, err := store.HighScore(ctx, "chase")
	if err != nil || high != 0 {
		t.Errorf("HighScore() on empty = %d, %v", high, err)
	}

	store.SaveScore(ctx, "chase", "ann", 100)
	store.SaveScore(ctx, "chase", "bob", 300)
	store.SaveScore(ctx, "other", "cy", 900)

	high, err = store.HighScore(ctx, "chase")
	if err != nil || high != 300 {
		t.Errorf("HighScore() = %d, %v; expected 300", high, err)
	}

	if err := store.ClearScores(ctx, "chase"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}
	scores, _ := store.TopScores(ctx, "chase", 10)
	if len(scores) != 0 {
		t.Errorf("Expected 0 scores after clear, got %d", len(scores))
	}
	other, _ := store.TopScores(ctx, "other", 10)
	if len(other) != 1 {
		t.Error("ClearScores removed another game's scores")
	}
}

func TestStoreGameStats(t *testing.T) {
	ctx := context.Background()
	store := openTestStore(t)

	empty, err := store.GetGameStats(ctx, "chase")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	store.SaveScore(ctx, "chase", "ann", 100)
	store.SaveScore(ctx, "chase", "ann", 200)
	store.SaveScore(ctx, "chase", "bob", 300)

	stats, err := store.GetGameStats(ctx, "chase")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 3 || stats.Players != 2 || stats.HighScore != 300 || stats.TotalScore != 600 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.AvgScore != 200 {
		t.Errorf("AvgScore = %f, expected 200", stats.AvgScore)
	}
	if stats.LastPlayed.IsZero() {
		t.Error("LastPlayed should be set")
	}
}

func TestNormalizePlayer(t *testing.T) {
	long := strings.Repeat("é", 40)

	tests := []struct {
		in, want string
	}{
		{"ann", "ann"},
		{"  bob \n", "bob"},
		{"", DefaultPlayer},
		{"   ", DefaultPlayer},
		{long, strings.Repeat("é", MaxPlayerName)},
	}

	for _, tc := range tests {
		if got := NormalizePlayer(tc.in); got != tc.want {
			t.Errorf("NormalizePlayer(%q) = %q, expected %q", tc.in, got, tc.want)
		}
	}
}

func TestRebind(t *testing.T) {
	q := "SELECT * FROM t WHERE a = ? AND b = ? LIMIT ?"

	if got := sqliteDialect.rebind(q); got != q {
		t.Errorf("sqlite rebind changed query: %q", got)
	}
	want := "SELECT * FROM t WHERE a = $1 AND b = $2 LIMIT $3"
	if got := postgresDialect.rebind(q); got != want {
		t.Errorf("postgres rebind = %q, expected %q", got, want)
	}
}

func TestIsPostgresDSN(t *testing.T) {
	tests := map[string]bool{
		"postgres://u:p@localhost/chase":    true,
		"postgresql://localhost/chase":      true,
		"~/.chase/scores.db":                false,
		"/var/lib/chase/postgres-backup.db": false,
	}
	for dsn, want := range tests {
		if got := isPostgresDSN(dsn); got != want {
			t.Errorf("isPostgresDSN(%q) = %v, expected %v", dsn, got, want)
		}
	}
}
