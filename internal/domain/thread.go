package domain

import (
	"time"
)

type (
	ThreadId = int64
	ReplyId  = int64
)

// to iterate thru layers: handler -> service -> storage
type ThreadCreationData struct {
	Title       string
	Body        string
	AuthorName  *string
	IsAnonymous bool
	OwnerToken  string
}

type Thread struct {
	Id          ThreadId
	Title       string
	Body        string
	AuthorName  *string
	IsAnonymous bool
	OwnerToken  string
	CreatedAt   time.Time
	Replies     []Reply
}
