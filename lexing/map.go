package lexing

// Map is the per-level child lookup of a trie node. Get distinguishes
// three states: a key outside the alphabet (ok == false), a key inside
// the alphabet with no branch (nil node, ok == true - a dead letter),
// and a live child node.
//
// Two implementations exist: Dense, an array keyed by small integers,
// and Hash, a map keyed by anything comparable. The caller picks one
// per trie; both are known statically at every use site.
type Map[K comparable, L any] interface {
	// NewEmpty returns a fresh map of the same implementation and
	// alphabet, with every key dead.
	NewEmpty() Map[K, L]
	// Get returns the child at k and whether k is in the alphabet.
	Get(k K) (*Node[K, L], bool)
	// Set installs the child at k, which must be in the alphabet.
	Set(k K, n *Node[K, L])
	// ForEach visits every live child until fn returns false.
	ForEach(fn func(k K, n *Node[K, L]) bool)
}

// Dense is an array-backed Map over the integer alphabet [0, n).
// Lookup is a bounds check plus an index, which is what the symbol
// decoder wants for letter IDs.
type Dense[K ~int | ~int8 | ~int16 | ~int32 | ~int64, L any] struct {
	nodes []*Node[K, L]
}

// NewDense returns a Dense map over the alphabet {0, ..., n-1}.
func NewDense[K ~int | ~int8 | ~int16 | ~int32 | ~int64, L any](n int) *Dense[K, L] {
	return &Dense[K, L]{nodes: make([]*Node[K, L], n)}
}

// NewEmpty implements Map.
func (d *Dense[K, L]) NewEmpty() Map[K, L] {
	return NewDense[K, L](len(d.nodes))
}

// Get implements Map.
func (d *Dense[K, L]) Get(k K) (*Node[K, L], bool) {
	if k < 0 || int(k) >= len(d.nodes) {
		return nil, false
	}
	return d.nodes[k], true
}

// Set implements Map.
func (d *Dense[K, L]) Set(k K, n *Node[K, L]) {
	d.nodes[k] = n
}

// ForEach implements Map.
func (d *Dense[K, L]) ForEach(fn func(k K, n *Node[K, L]) bool) {
	for i, n := range d.nodes {
		if n == nil {
			continue
		}
		if !fn(K(i), n) {
			return
		}
	}
}

// Hash is a map-backed Map for sparse alphabets such as runes. The
// alphabet is fixed at construction; NewEmpty shares it.
type Hash[K comparable, L any] struct {
	alphabet map[K]struct{}
	nodes    map[K]*Node[K, L]
}

// NewHash returns a Hash map over the given alphabet.
func NewHash[K comparable, L any](alphabet []K) *Hash[K, L] {
	set := make(map[K]struct{}, len(alphabet))
	for _, k := range alphabet {
		set[k] = struct{}{}
	}
	return &Hash[K, L]{
		alphabet: set,
		nodes:    make(map[K]*Node[K, L]),
	}
}

// NewEmpty implements Map.
func (h *Hash[K, L]) NewEmpty() Map[K, L] {
	return &Hash[K, L]{
		alphabet: h.alphabet,
		nodes:    make(map[K]*Node[K, L]),
	}
}

// Get implements Map.
func (h *Hash[K, L]) Get(k K) (*Node[K, L], bool) {
	if _, in := h.alphabet[k]; !in {
		return nil, false
	}
	return h.nodes[k], true
}

// Set implements Map.
func (h *Hash[K, L]) Set(k K, n *Node[K, L]) {
	h.nodes[k] = n
}

// ForEach implements Map.
func (h *Hash[K, L]) ForEach(fn func(k K, n *Node[K, L]) bool) {
	for k, n := range h.nodes {
		if !fn(k, n) {
			return
		}
	}
}
