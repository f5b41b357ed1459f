package domain

import (
	"time"
)

type UserId = int64

type User struct {
	Id        UserId
	Username  string
	Email     string
	PassHash  string // never serialized
	CreatedAt time.Time
}

type Credentials struct {
	Username string
	Email    string
	Password string
}
