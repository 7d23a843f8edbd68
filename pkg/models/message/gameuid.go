// Package message holds the sonic-serialized types the suggestion
// service exchanges with its Redis cache and Mongo record collections.
package message

import "github.com/google/uuid"

// GameUid identifies one game session. Cache keys and per-game record
// collections are scoped by it.
type GameUid string

func NewGameUid() GameUid {
	return GameUid(uuid.New().String())
}
