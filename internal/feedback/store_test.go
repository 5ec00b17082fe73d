package feedback

import (
	"context"
	"testing"

	"stackguides/internal/db"
)

func setupStore(t *testing.T) *Store {
	t.Helper()
	database, err := db.OpenMemory()
	if err != nil {
		t.Fatalf("OpenMemory: %v", err)
	}
	t.Cleanup(func() { database.Close() })
	return NewStore(database)
}

func TestStatsUnknownArticleIsZero(t *testing.T) {
	store := setupStore(t)

	counts, err := store.Stats(context.Background(), "never-voted")
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if counts.Likes != 0 || counts.Dislikes != 0 {
		t.Errorf("counts = %+v, want zeros", counts)
	}
	if counts.ArticleID != "never-voted" {
		t.Errorf("ArticleID = %q", counts.ArticleID)
	}
}

func TestApplyAccumulates(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	if _, err := store.Apply(ctx, "a1", ActionLike); err != nil {
		t.Fatalf("Apply like: %v", err)
	}
	if _, err := store.Apply(ctx, "a1", ActionLike); err != nil {
		t.Fatalf("Apply like: %v", err)
	}
	counts, err := store.Apply(ctx, "a1", ActionDislike)
	if err != nil {
		t.Fatalf("Apply dislike: %v", err)
	}

	if counts.Likes != 2 {
		t.Errorf("Likes = %d, want 2", counts.Likes)
	}
	if counts.Dislikes != 1 {
		t.Errorf("Dislikes = %d, want 1", counts.Dislikes)
	}

	n, err := store.EventCount(ctx, "a1")
	if err != nil {
		t.Fatalf("EventCount: %v", err)
	}
	if n != 3 {
		t.Errorf("EventCount = %d, want 3", n)
	}
}

func TestApplyIsolatesArticles(t *testing.T) {
	store := setupStore(t)
	ctx := context.Background()

	if _, err := store.Apply(ctx, "a1", ActionLike); err != nil {
		t.Fatalf("Apply: %v", err)
	}

	counts, err := store.Stats(ctx, "a2")
	if err != nil {
		t.Fatalf("Stats: %v", err)
	}
	if counts.Likes != 0 {
		t.Errorf("a2 Likes = %d, want 0", counts.Likes)
	}
}

func TestApplyRejectsUnknownAction(t *testing.T) {
	store := setupStore(t)

	if _, err := store.Apply(context.Background(), "a1", Action("upvote")); err == nil {
		t.Error("expected error for unknown action")
	}
}
