package db

import "testing"

func TestOpenMemory(t *testing.T) {
	d, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	defer d.Close()

	// Schema should be in place after migration.
	var n int
	err = d.QueryRow(`SELECT COUNT(*) FROM article_counters`).Scan(&n)
	if err != nil {
		t.Fatalf("querying article_counters: %v", err)
	}
	if n != 0 {
		t.Errorf("expected empty article_counters, got %d rows", n)
	}

	err = d.QueryRow(`SELECT COUNT(*) FROM vote_events`).Scan(&n)
	if err != nil {
		t.Fatalf("querying vote_events: %v", err)
	}
}

func TestMigrateIdempotent(t *testing.T) {
	d, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	defer d.Close()

	if err := d.migrate(); err != nil {
		t.Fatalf("second migrate: %v", err)
	}
}

func TestVoteActionConstraint(t *testing.T) {
	d, err := OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	defer d.Close()

	_, err = d.Exec(`INSERT INTO vote_events (id, article_id, action) VALUES ('e1', 'a1', 'upvote')`)
	if err == nil {
		t.Error("expected CHECK constraint violation for unknown action")
	}
}
