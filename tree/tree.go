// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package tree implements a rooted phylogenetic tree
// with named nodes,
// in which each node is assigned to a region
// and carries a weight.
package tree

import (
	"fmt"
	"slices"

	"github.com/js-arias/mlm/diag"
)

// Unknown is the region of a node
// without an annotation.
const Unknown = "Unknown"

// An Edge links a child node to its parent.
type Edge struct {
	Child  string
	Parent string
}

// A Tree is a rooted tree.
type Tree struct {
	nodes map[string]*node
	root  *node

	// gen is increased each time a region changes,
	// so weights from a previous generation are invalid.
	gen int
}

type node struct {
	name     string
	parent   *node
	children []*node

	region    string
	weight    float64
	hasWeight bool
	gen       int
}

// New creates a new tree from the names of the nodes
// and the edges between them.
// The order of the edges defines the order of the children
// of each node.
//
// It returns a StructuralError
// if a name is repeated,
// an edge refers to an undefined node,
// a node has more than one parent,
// or the edges do not define a single rooted tree.
func New(names []string, edges []Edge) (*Tree, error) {
	t := &Tree{
		nodes: make(map[string]*node, len(names)),
	}
	for _, nm := range names {
		if _, dup := t.nodes[nm]; dup {
			return nil, &diag.StructuralError{Node: nm, Reason: "repeated node name"}
		}
		t.nodes[nm] = &node{
			name:   nm,
			region: Unknown,
		}
	}

	for _, e := range edges {
		c, ok := t.nodes[e.Child]
		if !ok {
			return nil, &diag.StructuralError{Node: e.Child, Reason: "undefined child node"}
		}
		p, ok := t.nodes[e.Parent]
		if !ok {
			return nil, &diag.StructuralError{Node: e.Parent, Reason: "undefined parent node"}
		}
		if c == p {
			return nil, &diag.StructuralError{Node: c.name, Reason: "node is its own parent"}
		}
		if c.parent != nil {
			return nil, &diag.StructuralError{Node: c.name, Reason: fmt.Sprintf("node has parents %q and %q", c.parent.name, p.name)}
		}
		c.parent = p
		p.children = append(p.children, c)
	}

	var roots []string
	for _, nm := range names {
		n := t.nodes[nm]
		if n.parent == nil {
			roots = append(roots, nm)
		}
	}
	if len(roots) == 0 {
		return nil, &diag.StructuralError{Reason: "tree without root"}
	}
	if len(roots) > 1 {
		return nil, &diag.StructuralError{Reason: fmt.Sprintf("multiple roots: %v", roots)}
	}
	t.root = t.nodes[roots[0]]

	// with a single root,
	// any node not reachable from the root
	// is part of a cycle.
	reach := 0
	stack := []*node{t.root}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		reach++
		stack = append(stack, n.children...)
	}
	if reach != len(t.nodes) {
		for _, nm := range names {
			if !t.connected(nm) {
				return nil, &diag.StructuralError{Node: nm, Reason: "cycle in parent links"}
			}
		}
	}

	return t, nil
}

// Connected returns true if the root
// is an ancestor of the node.
func (t *Tree) connected(name string) bool {
	n := t.nodes[name]
	for i := 0; i <= len(t.nodes); i++ {
		if n == t.root {
			return true
		}
		if n.parent == nil {
			return false
		}
		n = n.parent
	}
	return false
}

// Root returns the name of the root node.
func (t *Tree) Root() (string, error) {
	if t == nil || t.root == nil {
		return "", &diag.StructuralError{Reason: "tree without root"}
	}
	return t.root.name, nil
}

// Has returns true if the name is a node of the tree.
func (t *Tree) Has(name string) bool {
	_, ok := t.nodes[name]
	return ok
}

// Len returns the number of nodes in the tree.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Nodes returns the names of the nodes of the tree.
func (t *Tree) Nodes() []string {
	ns := make([]string, 0, len(t.nodes))
	for nm := range t.nodes {
		ns = append(ns, nm)
	}
	slices.Sort(ns)
	return ns
}

// Children returns the names of the children of a node,
// in topological order.
func (t *Tree) Children(name string) []string {
	n, ok := t.nodes[name]
	if !ok {
		return nil
	}
	children := make([]string, 0, len(n.children))
	for _, c := range n.children {
		children = append(children, c.name)
	}
	return children
}

// IsTerm returns true if a node is a terminal
// (i.e., a leaf).
func (t *Tree) IsTerm(name string) bool {
	n, ok := t.nodes[name]
	if !ok {
		return false
	}
	return len(n.children) == 0
}

// Parent returns the name of the parent of a node.
// If the node is the root,
// or it is not in the tree,
// it returns false.
func (t *Tree) Parent(name string) (string, bool) {
	n, ok := t.nodes[name]
	if !ok || n.parent == nil {
		return "", false
	}
	return n.parent.name, true
}

// Region returns the region assigned to a node.
func (t *Tree) Region(name string) string {
	n, ok := t.nodes[name]
	if !ok {
		return Unknown
	}
	return n.region
}

// SetRegion sets the region of a node.
// It returns false if the node is not in the tree.
//
// As weights depend on the regions,
// any weight already assigned is invalidated.
func (t *Tree) SetRegion(name, region string) bool {
	n, ok := t.nodes[name]
	if !ok {
		return false
	}
	n.region = region
	t.gen++
	return true
}

// Weight returns the weight of a node.
func (t *Tree) Weight(name string) float64 {
	n, ok := t.nodes[name]
	if !ok {
		return 0
	}
	return n.weight
}

// SetWeight sets the weight of a node.
func (t *Tree) SetWeight(name string, w float64) {
	n, ok := t.nodes[name]
	if !ok {
		return
	}
	n.weight = w
	n.hasWeight = true
	n.gen = t.gen
}

// HasWeights returns true if all nodes of the tree
// have a weight assigned.
func (t *Tree) HasWeights() bool {
	for _, n := range t.nodes {
		if !n.hasWeight || n.gen != t.gen {
			return false
		}
	}
	return true
}
