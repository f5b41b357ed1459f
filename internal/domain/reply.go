package domain

import (
	"time"
)

type ReplyCreationData struct {
	ThreadId    ThreadId
	ParentId    *ReplyId
	Body        string
	AuthorName  *string
	IsAnonymous bool
	OwnerToken  string
}

// Reply belongs to exactly one thread. ParentId, when set, references
// another reply in the same thread; nil means top-level.
type Reply struct {
	Id          ReplyId
	ThreadId    ThreadId
	ParentId    *ReplyId
	Body        string
	AuthorName  *string
	IsAnonymous bool
	OwnerToken  string
	CreatedAt   time.Time
}
