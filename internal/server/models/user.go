package models

import "time"

// User is the registry record. The identifier is assigned by the store and
// immutable once set. PasswordHash is never the raw secret; JSON shaping
// (which omits the hash) lives in the endpoint layer.
type User struct {
	ID           int64
	Username     string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
