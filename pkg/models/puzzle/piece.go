package puzzle

// Offset is one occupied cell of a piece, relative to its anchor.
type Offset struct {
	Row int
	Col int
}

// Piece is an immutable polyomino, a named set of cell offsets.
type Piece struct {
	Name  string
	Cells []Offset
}

// Empty reports whether the piece has no cells (no piece in hand).
func (p Piece) Empty() bool {
	return len(p.Cells) == 0
}

func (p Piece) Height() (h int) {
	for _, off := range p.Cells {
		if off.Row+1 > h {
			h = off.Row + 1
		}
	}
	return
}

func (p Piece) Width() (w int) {
	for _, off := range p.Cells {
		if off.Col+1 > w {
			w = off.Col + 1
		}
	}
	return
}

func (p Piece) String() string {
	return p.Name
}

func newPiece(name string, rows ...string) (p Piece) {
	p.Name = name
	for i, row := range rows {
		for j, c := range row {
			if c == '#' {
				p.Cells = append(p.Cells, Offset{Row: i, Col: j})
			}
		}
	}
	return
}

var basicShapes = []Piece{
	newPiece("duo-h", "##"),
	newPiece("duo-v", "#", "#"),
	newPiece("trio-h", "###"),
	newPiece("trio-v", "#", "#", "#"),
}

var mediumShapes = []Piece{
	newPiece("square", "##", "##"),
	newPiece("ell", "##", "#."),
	newPiece("jay", "##", ".#"),
	newPiece("ell-turn", "#.", "##"),
}

var hardShapes = []Piece{
	newPiece("ell-long", "###", "#.."),
	newPiece("jay-long", "###", "..#"),
	newPiece("ell-tall", "#.", "#.", "##"),
}

var expertShapes = []Piece{
	newPiece("tee", "###", ".#."),
	newPiece("tee-up", ".#.", "###"),
	newPiece("zig", "##.", ".##"),
}

// catalogs is built once at init and only ever read afterwards, so
// concurrent draws never touch mutable state.
var catalogs [MaxDifficulty + 1][]Piece

func init() {
	for difficulty := MinDifficulty; difficulty <= MaxDifficulty; difficulty++ {
		var shapes []Piece
		shapes = append(shapes, basicShapes...)
		if difficulty >= 2 {
			shapes = append(shapes, mediumShapes...)
		}
		if difficulty >= 3 {
			shapes = append(shapes, hardShapes...)
		}
		if difficulty >= 4 {
			shapes = append(shapes, expertShapes...)
		}
		catalogs[difficulty] = shapes
	}
}

// Shapes returns the catalog unlocked at the given difficulty.
func Shapes(difficulty int) []Piece {
	return catalogs[ClampDifficulty(difficulty)]
}

// ShapeByName looks a catalog piece up across all difficulties.
func ShapeByName(name string) (Piece, bool) {
	for _, p := range Shapes(4) {
		if p.Name == name {
			return p, true
		}
	}
	return Piece{}, false
}

const seedGamma = 0x9e3779b97f4a7c15

// nextSeed is one splitmix64 step of the piece stream.
func nextSeed(seed uint64) uint64 {
	z := seed + seedGamma
	z = (z ^ (z >> 30)) * 0xbf58476d1ce4e5b9
	z = (z ^ (z >> 27)) * 0x94d049bb133111eb
	return z ^ (z >> 31)
}

// DrawPiece deterministically picks the next piece for the difficulty and
// returns it together with the advanced seed. The same (difficulty, seed)
// pair always yields the same piece, which keeps state transitions pure.
func DrawPiece(difficulty int, seed uint64) (Piece, uint64) {
	next := nextSeed(seed)
	shapes := Shapes(difficulty)
	return shapes[next%uint64(len(shapes))], next
}
