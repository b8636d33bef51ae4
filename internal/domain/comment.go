package domain

import "time"

// MaxCommentLength is the storage bound on comment content, in characters.
const MaxCommentLength = 4096

// Comment represents one posted message. CommenterID is nullable: a comment
// keeps its row even if the referenced user disappears, and the reference is
// resolved on demand rather than hydrated into an object graph.
type Comment struct {
	ID          int64
	Content     string
	Posted      time.Time
	CommenterID *int64

	// Commenter is the username resolved at list time; empty when the
	// commenter reference is absent or dangling.
	Commenter string
}
