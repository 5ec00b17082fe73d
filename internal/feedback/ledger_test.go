package feedback

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFileLedgerRoundTrip(t *testing.T) {
	ledger, err := NewFileLedger(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileLedger: %v", err)
	}

	if _, ok := ledger.Get("a1"); ok {
		t.Error("empty ledger should report no vote")
	}

	if err := ledger.Put("a1", ActionLike); err != nil {
		t.Fatalf("Put: %v", err)
	}
	action, ok := ledger.Get("a1")
	if !ok || action != ActionLike {
		t.Errorf("Get = %q, %v; want like, true", action, ok)
	}

	if err := ledger.Delete("a1"); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if _, ok := ledger.Get("a1"); ok {
		t.Error("vote should be gone after Delete")
	}
}

func TestFileLedgerKeyFormat(t *testing.T) {
	dir := t.TempDir()
	ledger, err := NewFileLedger(dir)
	if err != nil {
		t.Fatalf("NewFileLedger: %v", err)
	}
	if err := ledger.Put("a1", ActionDislike); err != nil {
		t.Fatalf("Put: %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, "vote_a1"))
	if err != nil {
		t.Fatalf("expected vote_a1 file: %v", err)
	}
	if string(data) != "dislike" {
		t.Errorf("stored value = %q, want %q", data, "dislike")
	}
}

func TestFileLedgerIgnoresUnknownValues(t *testing.T) {
	dir := t.TempDir()
	ledger, err := NewFileLedger(dir)
	if err != nil {
		t.Fatalf("NewFileLedger: %v", err)
	}

	// A corrupted or foreign value is treated as absent.
	if err := os.WriteFile(filepath.Join(dir, "vote_a1"), []byte("maybe"), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, ok := ledger.Get("a1"); ok {
		t.Error("unrecognized stored value must be treated as no vote")
	}
}

func TestFileLedgerDeleteMissingIsNoError(t *testing.T) {
	ledger, err := NewFileLedger(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileLedger: %v", err)
	}
	if err := ledger.Delete("never-voted"); err != nil {
		t.Errorf("Delete of missing key: %v", err)
	}
}

func TestFileLedgerRejectsInvalidAction(t *testing.T) {
	ledger, err := NewFileLedger(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileLedger: %v", err)
	}
	if err := ledger.Put("a1", Action("upvote")); err == nil {
		t.Error("expected error for invalid action")
	}
}
