package migration

import (
	"database/sql"
	"io/fs"
	"path/filepath"
	"strings"
	"testing"
	"testing/fstest"

	_ "modernc.org/sqlite"

	"github.com/julianstephens/enduro/migrations"
)

func setupTestDB(t *testing.T) *sql.DB {
	t.Helper()
	db, err := sql.Open("sqlite", filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("failed to create test database: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func sqlFiles(files map[string]string) fstest.MapFS {
	out := fstest.MapFS{}
	for name, content := range files {
		out[name] = &fstest.MapFile{Data: []byte(content)}
	}
	return out
}

func tableExists(t *testing.T, db *sql.DB, name string) bool {
	t.Helper()
	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM sqlite_master WHERE type='table' AND name=?", name).Scan(&count); err != nil {
		t.Fatalf("query failed: %v", err)
	}
	return count == 1
}

func TestCurrentVersion(t *testing.T) {
	runner := NewRunner(setupTestDB(t), sqlFiles(map[string]string{
		"001_events.sql": "CREATE TABLE events (id TEXT);",
	}))

	version, err := runner.CurrentVersion()
	if err != nil {
		t.Fatalf("CurrentVersion failed: %v", err)
	}
	if version != 0 {
		t.Errorf("expected version 0, got %d", version)
	}

	if err := runner.SetVersion(5); err != nil {
		t.Fatalf("SetVersion failed: %v", err)
	}
	version, err = runner.CurrentVersion()
	if err != nil {
		t.Fatalf("CurrentVersion failed: %v", err)
	}
	if version != 5 {
		t.Errorf("expected version 5, got %d", version)
	}
}

func TestMigrations_SortedAndNamed(t *testing.T) {
	runner := NewRunner(setupTestDB(t), sqlFiles(map[string]string{
		"003_checkins.sql":   "CREATE TABLE checkins (week TEXT);",
		"001_init.sql":       "CREATE TABLE events (id TEXT);",
		"002_add_notes.sql":  "ALTER TABLE events ADD COLUMN notes TEXT;",
		"README.md":          "not a migration",
		"sub/004_nested.sql": "CREATE TABLE ignored (id TEXT);",
	}))

	got, err := runner.Migrations()
	if err != nil {
		t.Fatalf("Migrations failed: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("expected 3 migrations, got %d", len(got))
	}

	want := []struct {
		version int
		name    string
	}{{1, "init"}, {2, "add_notes"}, {3, "checkins"}}
	for i, w := range want {
		if got[i].Version != w.version || got[i].Name != w.name {
			t.Errorf("migration %d = (%d, %q), want (%d, %q)", i, got[i].Version, got[i].Name, w.version, w.name)
		}
	}
}

func TestApply_FromScratch(t *testing.T) {
	db := setupTestDB(t)
	runner := NewRunner(db, sqlFiles(map[string]string{
		"001_init.sql":     "CREATE TABLE events (id TEXT PRIMARY KEY, name TEXT);",
		"002_checkins.sql": "CREATE TABLE checkins (week TEXT PRIMARY KEY);",
	}))

	count, err := runner.Apply()
	if err != nil {
		t.Fatalf("Apply failed: %v", err)
	}
	if count != 2 {
		t.Errorf("expected 2 migrations applied, got %d", count)
	}

	version, _ := runner.CurrentVersion()
	if version != 2 {
		t.Errorf("expected version 2, got %d", version)
	}
	if !tableExists(t, db, "events") || !tableExists(t, db, "checkins") {
		t.Error("migration tables were not created")
	}
}

func TestApply_Incremental(t *testing.T) {
	db := setupTestDB(t)
	files := sqlFiles(map[string]string{
		"001_init.sql": "CREATE TABLE events (id TEXT PRIMARY KEY);",
	})

	if count, err := NewRunner(db, files).Apply(); err != nil || count != 1 {
		t.Fatalf("first Apply = (%d, %v), want (1, nil)", count, err)
	}

	files["002_checkins.sql"] = &fstest.MapFile{Data: []byte("CREATE TABLE checkins (week TEXT PRIMARY KEY);")}
	runner := NewRunner(db, files)

	pending, err := runner.Pending()
	if err != nil {
		t.Fatalf("Pending failed: %v", err)
	}
	if len(pending) != 1 || pending[0].Version != 2 {
		t.Fatalf("Pending = %+v, want only version 2", pending)
	}

	if count, err := runner.Apply(); err != nil || count != 1 {
		t.Fatalf("second Apply = (%d, %v), want (1, nil)", count, err)
	}
	if count, err := runner.Apply(); err != nil || count != 0 {
		t.Errorf("third Apply = (%d, %v), want (0, nil)", count, err)
	}
}

func TestApply_RollbackOnError(t *testing.T) {
	db := setupTestDB(t)
	runner := NewRunner(db, sqlFiles(map[string]string{
		"001_init.sql": `
			CREATE TABLE events (id TEXT PRIMARY KEY);
			THIS IS INVALID SQL;
		`,
	}))

	if _, err := runner.Apply(); err == nil {
		t.Fatal("Apply should have failed with invalid SQL")
	}

	version, err := runner.CurrentVersion()
	if err != nil {
		t.Fatalf("CurrentVersion failed: %v", err)
	}
	if version != 0 {
		t.Errorf("expected version 0 after failed migration, got %d", version)
	}
	if tableExists(t, db, "events") {
		t.Error("table should not exist after failed migration")
	}
}

func TestValidate_NewerDatabase(t *testing.T) {
	runner := NewRunner(setupTestDB(t), sqlFiles(map[string]string{
		"001_init.sql": "CREATE TABLE events (id TEXT);",
	}))

	if err := runner.SetVersion(10); err != nil {
		t.Fatalf("SetVersion failed: %v", err)
	}
	if err := runner.Validate(); err == nil {
		t.Fatal("Validate should have failed with newer database version")
	}
	if _, err := runner.Apply(); err == nil {
		t.Fatal("Apply should have failed with newer database version")
	}
}

func TestMigrations_InvalidFiles(t *testing.T) {
	tests := []struct {
		name    string
		files   map[string]string
		wantErr string
	}{
		{"no underscore", map[string]string{"001init.sql": "SELECT 1;"}, "expected NNN_name.sql"},
		{"non-numeric version", map[string]string{"abc_init.sql": "SELECT 1;"}, "invalid version number"},
		{"zero version", map[string]string{"000_init.sql": "SELECT 1;"}, "version must be at least 1"},
		{"duplicate version", map[string]string{"001_init.sql": "SELECT 1;", "001_other.sql": "SELECT 2;"}, "duplicate migration version"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRunner(setupTestDB(t), sqlFiles(tt.files)).Migrations()
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Migrations() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestEmbeddedSQLiteMigrations(t *testing.T) {
	sub, err := fs.Sub(migrations.FS, "sqlite")
	if err != nil {
		t.Fatalf("fs.Sub failed: %v", err)
	}
	db := setupTestDB(t)
	runner := NewRunner(db, sub)

	if _, err := runner.Apply(); err != nil {
		t.Fatalf("embedded migrations failed to apply: %v", err)
	}
	for _, table := range []string{"events", "checkins", "preferences"} {
		if !tableExists(t, db, table) {
			t.Errorf("table %s missing after embedded migrations", table)
		}
	}
	if err := runner.Validate(); err != nil {
		t.Errorf("Validate after Apply: %v", err)
	}
}
