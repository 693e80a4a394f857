package storage

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"
)

func openStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestStoreOpenClose(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() failed: %v", err)
	}
	defer store.Close()

	// Check that the file was created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created")
	}
}

func TestStoreSaveAndRetrieve(t *testing.T) {
	store := openStore(t)

	for _, score := range []int{100, 50, 200} {
		if _, err := store.SaveScore("tetris", score); err != nil {
			t.Fatalf("SaveScore() failed: %v", err)
		}
	}
	if _, err := store.SaveScore("tetris_classic", 500); err != nil {
		t.Fatalf("SaveScore() failed: %v", err)
	}

	scores, err := store.TopScores("tetris", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Fatalf("Expected 3 scores, got %d", len(scores))
	}

	// Should be sorted descending
	expected := []int{200, 100, 50}
	for i, want := range expected {
		if scores[i].Score != want {
			t.Errorf("scores[%d] = %d, expected %d", i, scores[i].Score, want)
		}
		if scores[i].Level != 1 {
			t.Errorf("scores[%d].Level = %d, expected 1", i, scores[i].Level)
		}
	}

	classic, err := store.TopScores("tetris_classic", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(classic) != 1 {
		t.Errorf("Expected 1 classic score, got %d", len(classic))
	}
}

func TestStoreSaveRound(t *testing.T) {
	store := openStore(t)

	_, err := store.SaveRound(RoundResult{GameID: "tetris", Player: "ana", Score: 2400, Lines: 23, Level: 3})
	if err != nil {
		t.Fatalf("SaveRound() failed: %v", err)
	}

	scores, err := store.TopScores("tetris", 1)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	got := scores[0]
	if got.Player != "ana" || got.Score != 2400 || got.Lines != 23 || got.Level != 3 {
		t.Errorf("round = %+v, expected ana/2400/23/3", got)
	}
	if got.CreatedAt.IsZero() {
		t.Error("CreatedAt should be set")
	}

	if _, err := store.SaveRound(RoundResult{Score: 1}); err == nil {
		t.Error("SaveRound() without game id should fail")
	}
}

func TestStoreTopScoresLimit(t *testing.T) {
	store := openStore(t)

	for i := 0; i < 5; i++ {
		store.SaveScore("tetris", (i+1)*100)
	}

	scores, err := store.TopScores("tetris", 3)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 3 {
		t.Errorf("Expected 3 scores with limit, got %d", len(scores))
	}

	// Should be 500, 400, 300 (top 3)
	if scores[0].Score != 500 || scores[1].Score != 400 || scores[2].Score != 300 {
		t.Errorf("Scores not in expected order: %v", scores)
	}
}

func TestStoreHighScore(t *testing.T) {
	store := openStore(t)

	high, err := store.HighScore("tetris")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 0 {
		t.Errorf("Expected high score of 0 for empty game, got %d", high)
	}

	store.SaveScore("tetris", 100)
	store.SaveScore("tetris", 300)
	store.SaveScore("tetris", 200)

	high, err = store.HighScore("tetris")
	if err != nil {
		t.Fatalf("HighScore() failed: %v", err)
	}
	if high != 300 {
		t.Errorf("Expected high score of 300, got %d", high)
	}
}

func TestStoreClearScores(t *testing.T) {
	store := openStore(t)

	store.SaveScore("tetris", 100)
	store.SaveScore("tetris", 200)
	store.SaveScore("tetris_classic", 300)

	if err := store.ClearScores("tetris"); err != nil {
		t.Fatalf("ClearScores() failed: %v", err)
	}

	modern, _ := store.TopScores("tetris", 10)
	if len(modern) != 0 {
		t.Errorf("Expected 0 tetris scores after clear, got %d", len(modern))
	}

	classic, _ := store.TopScores("tetris_classic", 10)
	if len(classic) != 1 {
		t.Errorf("Classic scores should not be affected by clearing tetris")
	}
}

func TestStoreAllScoresAndValues(t *testing.T) {
	store := openStore(t)

	for i := 0; i < 20; i++ {
		store.SaveScore("tetris", i*10)
	}

	scores, err := store.AllScores("tetris")
	if err != nil {
		t.Fatalf("AllScores() failed: %v", err)
	}
	if len(scores) != 20 {
		t.Errorf("Expected 20 scores, got %d", len(scores))
	}

	values, err := store.ScoreValues("tetris")
	if err != nil {
		t.Fatalf("ScoreValues() failed: %v", err)
	}
	if len(values) != 20 || values[0] != 0 || values[19] != 190 {
		t.Errorf("ScoreValues() = %v, expected 0..190 in insertion order", values)
	}
}

func TestStoreGameStats(t *testing.T) {
	store := openStore(t)

	store.SaveRound(RoundResult{GameID: "tetris", Score: 100, Lines: 4, Level: 1})
	store.SaveRound(RoundResult{GameID: "tetris", Score: 900, Lines: 25, Level: 3})
	store.SaveRound(RoundResult{GameID: "tetris_classic", Score: 50, Lines: 1, Level: 1})

	stats, err := store.GetGameStats("tetris")
	if err != nil {
		t.Fatalf("GetGameStats() failed: %v", err)
	}
	if stats.GamesCount != 2 || stats.HighScore != 900 || stats.TotalScore != 1000 {
		t.Errorf("stats = %+v, expected 2 games, high 900, total 1000", stats)
	}
	if stats.AvgScore != 500 {
		t.Errorf("AvgScore = %f, expected 500", stats.AvgScore)
	}
	if stats.MaxLines != 25 || stats.MaxLevel != 3 {
		t.Errorf("MaxLines/MaxLevel = %d/%d, expected 25/3", stats.MaxLines, stats.MaxLevel)
	}

	empty, err := store.GetGameStats("nothing")
	if err != nil {
		t.Fatalf("GetGameStats() on empty game failed: %v", err)
	}
	if empty.GamesCount != 0 || !empty.LastPlayed.IsZero() {
		t.Errorf("empty stats = %+v", empty)
	}

	all, err := store.GetAllGamesStats()
	if err != nil {
		t.Fatalf("GetAllGamesStats() failed: %v", err)
	}
	if len(all) != 2 || all["tetris_classic"].HighScore != 50 {
		t.Errorf("GetAllGamesStats() = %v", all)
	}
}

func TestStoreMigratesOldSchema(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "old.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		t.Fatal(err)
	}
	_, err = db.Exec(`CREATE TABLE scores (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		game_id TEXT NOT NULL,
		score INTEGER NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	); INSERT INTO scores (game_id, score) VALUES ('tetris', 700);`)
	if err != nil {
		t.Fatal(err)
	}
	db.Close()

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() on old schema failed: %v", err)
	}
	defer store.Close()

	scores, err := store.TopScores("tetris", 10)
	if err != nil {
		t.Fatalf("TopScores() failed: %v", err)
	}
	if len(scores) != 1 || scores[0].Score != 700 || scores[0].Level != 1 {
		t.Errorf("migrated scores = %+v", scores)
	}
}

func TestStoreNestedPath(t *testing.T) {
	tmpDir := t.TempDir()
	dbPath := filepath.Join(tmpDir, "subdir", "deep", "test.db")

	store, err := Open(dbPath)
	if err != nil {
		t.Fatalf("Open() with nested path failed: %v", err)
	}
	defer store.Close()

	// Verify nested directories were created
	if _, err := os.Stat(dbPath); os.IsNotExist(err) {
		t.Error("Database file was not created in nested directory")
	}
}
