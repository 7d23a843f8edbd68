package message

import (
	"time"

	"github.com/HuXin0817/wood-block-puzzle/pkg/models/puzzle"
	"github.com/bytedance/sonic"
)

const timeFormat = "2006-01-02 15:04:05"

// TimeStamp records when a suggestion was cached.
type TimeStamp string

func NewTimeStamp(t time.Time) TimeStamp {
	return TimeStamp(t.Format(timeFormat))
}

// SuggestKey identifies one cached suggestion: a game, a step and the
// strategy that produced it.
type SuggestKey struct {
	GameUid
	Step     int
	Strategy string
}

func (k SuggestKey) String() string {
	str, _ := sonic.MarshalString(k)
	return str
}

// SuggestValue is the cached suggestion payload.
type SuggestValue struct {
	Action puzzle.Action
	At     TimeStamp
}

func NewSuggestValue(s string) (newSuggestValue SuggestValue, err error) {
	err = sonic.UnmarshalString(s, &newSuggestValue)
	return
}

func (v SuggestValue) String() string {
	str, _ := sonic.MarshalString(v)
	return str
}
