package message

import (
	"testing"
	"time"

	"github.com/HuXin0817/wood-block-puzzle/pkg/models/puzzle"
)

func TestNewGameUidUnique(t *testing.T) {
	if NewGameUid() == NewGameUid() {
		t.Fatal("two game uids collided")
	}
}

func TestSuggestKeyStableString(t *testing.T) {
	key := SuggestKey{GameUid: "g-1", Step: 3, Strategy: "astar"}
	if key.String() != key.String() {
		t.Fatal("same key marshaled differently")
	}

	other := key
	other.Step = 4
	if key.String() == other.String() {
		t.Fatal("different steps share a cache key")
	}
}

func TestSuggestValueRoundTrip(t *testing.T) {
	piece, _ := puzzle.ShapeByName("duo-h")
	value := SuggestValue{
		Action: puzzle.Action{Row: 2, Col: 0, Piece: piece},
		At:     NewTimeStamp(time.Date(2026, 8, 23, 12, 0, 0, 0, time.UTC)),
	}

	restored, err := NewSuggestValue(value.String())
	if err != nil {
		t.Fatal(err)
	}
	if restored.Action.Row != 2 || restored.Action.Col != 0 || restored.Action.Piece.Name != "duo-h" {
		t.Fatalf("got action %v, want (2, 0) duo-h", restored.Action)
	}
	if restored.At != value.At {
		t.Fatalf("got timestamp %q, want %q", restored.At, value.At)
	}
}
