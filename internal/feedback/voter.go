package feedback

import "context"

// Service is the remote side of the feedback flow, implemented by *Client.
type Service interface {
	Stats(ctx context.Context, articleID string) (Counts, error)
	Submit(ctx context.Context, articleID string, action Action) (Counts, error)
}

// retryMessage is shown when a vote submission fails and is rolled back.
const retryMessage = "Could not record your vote. Please try again."

// Voter lets a reader cast exactly one like/dislike vote for an article.
// The vote is committed to the device ledger optimistically, before the
// service confirms, and rolled back in full if the submission fails. The
// cached like count mirrors the service's authoritative aggregate.
//
// Voter is not safe for concurrent use; it mirrors a single-event-loop
// widget and is driven by one caller at a time.
type Voter struct {
	articleID string
	service   Service
	ledger    Ledger

	likeCount int
	userVote  Action // "" means no vote cast
	errMsg    string
}

// NewVoter creates a Voter for one article. Call Init before use.
func NewVoter(articleID string, service Service, ledger Ledger) *Voter {
	return &Voter{articleID: articleID, service: service, ledger: ledger}
}

// Init restores any previously recorded vote from the ledger, closing
// voting before any network round trip, then best-effort refreshes the
// like count from the service. A failed fetch is swallowed: the count is
// supplementary information and stays at its last known value.
func (v *Voter) Init(ctx context.Context) {
	if action, ok := v.ledger.Get(v.articleID); ok {
		v.userVote = action
	}

	counts, err := v.service.Stats(ctx, v.articleID)
	if err == nil {
		v.likeCount = counts.Likes
	}
}

// CastVote records the reader's choice. It is a no-op when a vote is
// already set (at most one vote per device per article) or when the choice
// is not a recognized action. The vote state and ledger entry are committed
// before the submission; on failure everything reverts to the prior state
// and a retry message is surfaced.
func (v *Voter) CastVote(ctx context.Context, choice Action) {
	if v.userVote != "" || !choice.Valid() {
		return
	}

	prevCount := v.likeCount

	// Optimistic commit: close voting and bump the visible count before
	// the service confirms.
	v.userVote = choice
	v.errMsg = ""
	if err := v.ledger.Put(v.articleID, choice); err != nil {
		v.userVote = ""
		v.errMsg = retryMessage
		return
	}
	if choice == ActionLike {
		v.likeCount++
	}

	counts, err := v.service.Submit(ctx, v.articleID, choice)
	if err != nil {
		// Roll back to the exact pre-vote state, reopening voting.
		v.userVote = ""
		v.ledger.Delete(v.articleID)
		v.likeCount = prevCount
		v.errMsg = retryMessage
		return
	}

	v.likeCount = counts.Likes
}

// LikeCount returns the cached like aggregate.
func (v *Voter) LikeCount() int { return v.likeCount }

// UserVote returns the reader's recorded choice, or "" when none is cast.
func (v *Voter) UserVote() Action { return v.userVote }

// HasVoted reports whether voting is closed for this article on this device.
func (v *Voter) HasVoted() bool { return v.userVote != "" }

// Err returns the user-facing error message, or "" when there is none.
func (v *Voter) Err() string { return v.errMsg }
