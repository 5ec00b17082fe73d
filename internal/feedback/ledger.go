package feedback

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// Ledger is the durable per-device record of votes already cast, keyed by
// article id. Only the literal values "like" and "dislike" are honored;
// anything else stored under a key is treated as absent.
type Ledger interface {
	// Get returns the recorded vote for an article, if any.
	Get(articleID string) (Action, bool)
	// Put records a vote for an article.
	Put(articleID string, action Action) error
	// Delete removes the recorded vote for an article.
	Delete(articleID string) error
}

// FileLedger stores votes as one file per article under a directory,
// named vote_{articleId}.
type FileLedger struct {
	dir string
}

// NewFileLedger creates the ledger directory if needed.
func NewFileLedger(dir string) (*FileLedger, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating ledger directory: %w", err)
	}
	return &FileLedger{dir: dir}, nil
}

func (l *FileLedger) keyPath(articleID string) string {
	return filepath.Join(l.dir, "vote_"+url.PathEscape(articleID))
}

func (l *FileLedger) Get(articleID string) (Action, bool) {
	data, err := os.ReadFile(l.keyPath(articleID))
	if err != nil {
		return "", false
	}
	action := Action(strings.TrimSpace(string(data)))
	if !action.Valid() {
		return "", false
	}
	return action, true
}

func (l *FileLedger) Put(articleID string, action Action) error {
	if !action.Valid() {
		return fmt.Errorf("invalid action %q", action)
	}
	if err := os.WriteFile(l.keyPath(articleID), []byte(action), 0o644); err != nil {
		return fmt.Errorf("recording vote for %s: %w", articleID, err)
	}
	return nil
}

func (l *FileLedger) Delete(articleID string) error {
	err := os.Remove(l.keyPath(articleID))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("removing vote for %s: %w", articleID, err)
	}
	return nil
}

// MemLedger is an in-memory Ledger for tests.
type MemLedger struct {
	votes map[string]Action
}

// NewMemLedger creates an empty in-memory ledger.
func NewMemLedger() *MemLedger {
	return &MemLedger{votes: make(map[string]Action)}
}

func (l *MemLedger) Get(articleID string) (Action, bool) {
	action, ok := l.votes[articleID]
	if !ok || !action.Valid() {
		return "", false
	}
	return action, true
}

func (l *MemLedger) Put(articleID string, action Action) error {
	if !action.Valid() {
		return fmt.Errorf("invalid action %q", action)
	}
	l.votes[articleID] = action
	return nil
}

func (l *MemLedger) Delete(articleID string) error {
	delete(l.votes, articleID)
	return nil
}
