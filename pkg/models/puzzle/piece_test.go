package puzzle

import (
	"sync"
	"testing"
)

func TestShapesCatalogSizes(t *testing.T) {
	wants := map[int]int{1: 4, 2: 8, 3: 11, 4: 14}
	for difficulty, want := range wants {
		if got := len(Shapes(difficulty)); got != want {
			t.Fatalf("difficulty %d: catalog has %d shapes, want %d", difficulty, got, want)
		}
	}
}

func TestShapesCatalogIsNested(t *testing.T) {
	seen := make(map[string]bool)
	for _, p := range Shapes(1) {
		seen[p.Name] = true
	}
	for _, p := range Shapes(4) {
		if seen[p.Name] {
			delete(seen, p.Name)
		}
	}
	if len(seen) != 0 {
		t.Fatalf("shapes missing from the expert catalog: %v", seen)
	}
}

func TestDrawPieceDeterministic(t *testing.T) {
	p1, s1 := DrawPiece(4, 99)
	p2, s2 := DrawPiece(4, 99)
	if p1.Name != p2.Name || s1 != s2 {
		t.Fatalf("same seed drew %s/%d and %s/%d", p1.Name, s1, p2.Name, s2)
	}
	if s1 == 99 {
		t.Fatal("draw did not advance the seed")
	}

	p3, _ := DrawPiece(4, s1)
	if p3.Name == "" {
		t.Fatal("advanced seed drew an empty piece")
	}
}

func TestDrawPieceConcurrent(t *testing.T) {
	var wg sync.WaitGroup
	for i := 0; i < 32; i++ {
		wg.Add(1)
		go func(seed uint64) {
			defer wg.Done()
			for difficulty := MinDifficulty; difficulty <= MaxDifficulty; difficulty++ {
				if p, _ := DrawPiece(difficulty, seed); p.Empty() {
					t.Errorf("difficulty %d seed %d drew an empty piece", difficulty, seed)
				}
			}
		}(uint64(i))
	}
	wg.Wait()
}

func TestShapeByName(t *testing.T) {
	p, ok := ShapeByName("square")
	if !ok {
		t.Fatal("square not found in the catalog")
	}
	if len(p.Cells) != 4 || p.Height() != 2 || p.Width() != 2 {
		t.Fatalf("square has wrong geometry: %v", p.Cells)
	}

	if _, ok := ShapeByName("pentomino"); ok {
		t.Fatal("unknown name resolved to a piece")
	}
}

func TestPieceGeometry(t *testing.T) {
	tee, _ := ShapeByName("tee")
	if tee.Height() != 2 || tee.Width() != 3 || len(tee.Cells) != 4 {
		t.Fatalf("tee has wrong geometry: %v", tee.Cells)
	}
	if (Piece{}).Empty() != true {
		t.Fatal("zero piece is not empty")
	}
}
