package record

import (
	"time"

	"github.com/HuXin0817/wood-block-puzzle/pkg/models/message"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type GameStartRecord struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UpdateAt time.Time          `bson:"updateAt,omitempty" json:"updateAt,omitempty"`
	CreateAt time.Time          `bson:"createAt,omitempty" json:"createAt,omitempty"`

	GameUid    message.GameUid
	Difficulty int
	BoardSize  int
	Seed       int64
}

type MoveRecord struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UpdateAt time.Time          `bson:"updateAt,omitempty" json:"updateAt,omitempty"`
	CreateAt time.Time          `bson:"createAt,omitempty" json:"createAt,omitempty"`

	Step        int
	Row         int
	Col         int
	PieceName   string
	Strategy    string
	ScoreAfter  int
	BonusesLeft int
}

type GameEndRecord struct {
	ID       primitive.ObjectID `bson:"_id,omitempty" json:"id,omitempty"`
	UpdateAt time.Time          `bson:"updateAt,omitempty" json:"updateAt,omitempty"`
	CreateAt time.Time          `bson:"createAt,omitempty" json:"createAt,omitempty"`

	Outcome          string
	FinalScore       int
	BonusesCollected int
}
