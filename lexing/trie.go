package lexing

// Node is one trie node: either a terminal Leaf carrying a decoded
// label, or an Inner node holding a child Map. Dead letters are
// represented by nil entries in the parent's Map, so the two cases
// here are exclusive and exhaustive.
type Node[K comparable, L any] struct {
	leaf     L
	isLeaf   bool
	children Map[K, L]
}

// Leaf returns the node's label and whether the node is terminal.
func (n *Node[K, L]) Leaf() (L, bool) { return n.leaf, n.isLeaf }

// Pair binds a decoded label to the letter sequence that encodes it.
type Pair[K comparable, L any] struct {
	Label L
	Seq   []K
}

// group is one first-letter bucket while building a level: either a
// terminating label or the suffixes that continue past the letter.
type group[K comparable, L any] struct {
	leaf    L
	hasLeaf bool
	tails   []Pair[K, L]
}

// Build constructs a prefix trie from pairs. The proto map supplies
// the implementation and alphabet for every level; it is not mutated.
//
// A sequence that terminates where another continues makes the set
// ambiguous and fails with ErrNotPrefixFree. Empty sequences fail
// with ErrEmptySequence.
func Build[K comparable, L any](pairs []Pair[K, L], proto Map[K, L]) (Map[K, L], error) {
	groups := make(map[K]*group[K, L], len(pairs))
	var order []K

	for _, p := range pairs {
		if len(p.Seq) == 0 {
			return nil, ErrEmptySequence
		}
		head := p.Seq[0]
		g := groups[head]
		if g == nil {
			g = &group[K, L]{}
			groups[head] = g
			order = append(order, head)
		}
		if len(p.Seq) == 1 {
			if len(g.tails) > 0 || g.hasLeaf {
				return nil, ErrNotPrefixFree
			}
			g.leaf = p.Label
			g.hasLeaf = true
		} else {
			if g.hasLeaf {
				return nil, ErrNotPrefixFree
			}
			g.tails = append(g.tails, Pair[K, L]{Label: p.Label, Seq: p.Seq[1:]})
		}
	}

	level := proto.NewEmpty()
	for _, head := range order {
		g := groups[head]
		if g.hasLeaf {
			level.Set(head, &Node[K, L]{leaf: g.leaf, isLeaf: true})
			continue
		}
		children, err := Build(g.tails, proto)
		if err != nil {
			return nil, err
		}
		level.Set(head, &Node[K, L]{children: children})
	}
	return level, nil
}
