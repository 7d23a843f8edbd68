// Package record persists game history in MongoDB, one collection family
// per game uid.
package record

import (
	"context"
	"fmt"

	"github.com/zeromicro/go-zero/core/stores/mon"
)

type Model struct {
	conn *mon.Model
}

func mustNewModel(url, db, collection string) Model {
	return Model{conn: mon.MustNewModel(url, db, collection)}
}

// NewGameStartRecordModel returns the start-record collection of a game.
func NewGameStartRecordModel(url, db, gameUid string) Model {
	return mustNewModel(url, db, fmt.Sprintf("start-%s", gameUid))
}

// NewMoveRecordModel returns the move-record collection of a game.
func NewMoveRecordModel(url, db, gameUid string) Model {
	return mustNewModel(url, db, fmt.Sprintf("moves-%s", gameUid))
}

// NewGameEndRecordModel returns the end-record collection of a game.
func NewGameEndRecordModel(url, db, gameUid string) Model {
	return mustNewModel(url, db, fmt.Sprintf("end-%s", gameUid))
}

func (m Model) Insert(ctx context.Context, data any) error {
	_, err := m.conn.InsertOne(ctx, data)
	return err
}
