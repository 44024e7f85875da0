package tetris

import "github.com/kamstrup/intmap"

// Stats counts what happened during the current game.
type Stats struct {
	spawned      *intmap.Map[int, int]
	clears       *intmap.Map[int, int]
	piecesLocked int
	hardDrops    int
}

func newStats() *Stats {
	return &Stats{
		spawned: intmap.New[int, int](KindCount),
		clears:  intmap.New[int, int](len(pointsTable)),
	}
}

// Spawned returns how many pieces of kind k entered play.
func (s *Stats) Spawned(k Kind) int {
	n, _ := s.spawned.Get(int(k))
	return n
}

// TotalSpawned returns the number of pieces that entered play.
func (s *Stats) TotalSpawned() int {
	total := 0
	for _, k := range Kinds() {
		total += s.Spawned(k)
	}
	return total
}

// Clears returns how many locks removed exactly n lines.
func (s *Stats) Clears(n int) int {
	count, _ := s.clears.Get(n)
	return count
}

// PiecesLocked returns how many pieces were committed to the board.
func (s *Stats) PiecesLocked() int { return s.piecesLocked }

// HardDrops returns how many pieces were hard dropped.
func (s *Stats) HardDrops() int { return s.hardDrops }

func (s *Stats) recordSpawn(k Kind) {
	s.spawned.Put(int(k), s.Spawned(k)+1)
}

func (s *Stats) recordClear(n int) {
	s.clears.Put(n, s.Clears(n)+1)
}

func (s *Stats) reset() {
	s.spawned.Clear()
	s.clears.Clear()
	s.piecesLocked = 0
	s.hardDrops = 0
}
