package huff

import (
	"reflect"
	"testing"
)

func TestBuildTreeSingleSymbol(t *testing.T) {
	root := buildTree(FreqTable{'a': 4})
	if root.leaf() {
		t.Fatalf("root of single symbol tree is a leaf")
	}
	if root.right != nil {
		t.Fatalf("root of single symbol tree has a right child")
	}
	l := root.left
	if l == nil || !l.leaf() {
		t.Fatalf("left child of root is not a leaf")
	}
	if l.sym != 'a' {
		t.Fatalf("leaf symbol %d; want %d", l.sym, 'a')
	}
	if root.freq != 4 {
		t.Fatalf("root frequency %d; want %d", root.freq, 4)
	}
}

func TestBuildTreeStrict(t *testing.T) {
	f := FreqTable{'a': 5, 'b': 2, 'r': 2, 'c': 1, 'd': 1}
	root := buildTree(f)
	if root.freq != 11 {
		t.Fatalf("root frequency %d; want %d", root.freq, 11)
	}
	leaves := 0
	var walk func(n *node)
	walk = func(n *node) {
		if n.leaf() {
			leaves++
			return
		}
		if n.left == nil || n.right == nil {
			t.Fatalf("internal node with a single child")
		}
		if n.freq != n.left.freq+n.right.freq {
			t.Fatalf("internal node frequency %d; want %d",
				n.freq, n.left.freq+n.right.freq)
		}
		walk(n.left)
		walk(n.right)
	}
	walk(root)
	if leaves != len(f) {
		t.Fatalf("tree has %d leaves; want %d", leaves, len(f))
	}
}

func TestBuildTreeDeterministic(t *testing.T) {
	f := FreqTable{'e': 3, 't': 3, 'x': 1, ' ': 7, 'q': 1}
	want := newCodeTable(buildTree(f))
	for i := 0; i < 10; i++ {
		got := newCodeTable(buildTree(f))
		if !reflect.DeepEqual(got, want) {
			t.Fatalf("build %d returned codes %v; want %v",
				i, got, want)
		}
	}
}
