package huff

// CodeTable maps symbols to their bit string codes. Tables produced by
// Encode are prefix-free: no code is a prefix of another one, which
// makes the greedy decoding strategy of Decode unambiguous.
type CodeTable map[Symbol]string

// newCodeTable derives the code table from the Huffman tree by a
// depth-first walk. Descending left appends '0' to the code,
// descending right appends '1'. A root that is itself a leaf gets the
// code "0".
func newCodeTable(root *node) CodeTable {
	t := make(CodeTable)
	var walk func(n *node, code string)
	walk = func(n *node, code string) {
		if n == nil {
			return
		}
		if n.leaf() {
			if code == "" {
				code = "0"
			}
			t[Symbol(n.sym)] = code
			return
		}
		walk(n.left, code+"0")
		walk(n.right, code+"1")
	}
	walk(root, "")
	return t
}

// invert returns the reverse mapping from code to symbol.
func (t CodeTable) invert() map[string]Symbol {
	inv := make(map[string]Symbol, len(t))
	for s, code := range t {
		inv[code] = s
	}
	return inv
}
