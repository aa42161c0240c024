package tree

// Stats contains counters tracking usage of a tree.
//
// All counters are absolute values accumulated since the tree was last
// initialized.
type Stats struct {
	Inserts    int64 // values successfully inserted
	Duplicates int64 // inserts rejected with ErrDuplicateValue
	Nulls      int64 // inserts rejected with ErrNullValue
	Rotations  int64
	Recolors   int64
	RedUncles  int64 // red-uncle violations resolved
	Straights  int64 // straight rotations over a grandparent
	ZigZags    int64 // double rotations
}

type treeStats struct {
	inserts    int64
	duplicates int64
	nulls      int64
	rotations  int64
	recolors   int64
	redUncles  int64
	straights  int64
	zigZags    int64
}

// Stats returns the current values of the tree statistics.
func (t *Tree[E]) Stats() Stats {
	return Stats{
		Inserts:    t.stats.inserts,
		Duplicates: t.stats.duplicates,
		Nulls:      t.stats.nulls,
		Rotations:  t.stats.rotations,
		Recolors:   t.stats.recolors,
		RedUncles:  t.stats.redUncles,
		Straights:  t.stats.straights,
		ZigZags:    t.stats.zigZags,
	}
}
