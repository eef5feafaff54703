package model

import "time"

// SlotLock is an advisory lock held while a room's reservations are checked
// and a new one inserted. The unique _id makes concurrent acquisition fail
// with a duplicate key error; ExpiresAt bounds the hold via a TTL index.
type SlotLock struct {
	ID        string    `bson:"_id" json:"id"`
	ExpiresAt time.Time `bson:"expires_at" json:"expires_at"`
	CreatedAt time.Time `bson:"created_at" json:"created_at"`
}
