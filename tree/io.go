// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package tree

import (
	"fmt"
	"io"
	"strings"

	"github.com/evolbioinfo/gotree/io/newick"
	gtree "github.com/evolbioinfo/gotree/tree"
	"github.com/js-arias/mlm/diag"
	"github.com/js-arias/timetree"
)

// ReadNewick reads a tree in newick
// (parenthetical)
// format.
// Internal nodes must be labeled,
// for example:
//
//	((A:0.1,B:0.2)NODE_1:0.05,C:0.3)NODE_0;
//
// The input name is used to identify the input
// in error messages.
func ReadNewick(r io.Reader, input string) (*Tree, error) {
	nt, err := newick.NewParser(r).Parse()
	if err != nil {
		return nil, &diag.ParseError{Input: input, Err: err}
	}

	var names []string
	var edges []Edge
	nt.PreOrder(func(cur, prev *gtree.Node, e *gtree.Edge) bool {
		names = append(names, cur.Name())
		if prev != nil {
			edges = append(edges, Edge{Child: cur.Name(), Parent: prev.Name()})
		}
		return true
	})
	return New(names, edges)
}

// ReadTimeTree reads a tree from a collection of time calibrated trees
// stored in a TSV file,
// as used in PhyGeo projects.
// If name is empty,
// the collection must contain a single tree.
//
// The input name is used to identify the input
// in error messages.
func ReadTimeTree(r io.Reader, input, name string) (*Tree, error) {
	c, err := timetree.ReadTSV(r)
	if err != nil {
		return nil, &diag.ParseError{Input: input, Err: err}
	}

	if name == "" {
		ls := c.Names()
		if len(ls) != 1 {
			return nil, &diag.ParseError{
				Input: input,
				Err:   fmt.Errorf("expecting a single tree, found %d: %s", len(ls), strings.Join(ls, ", ")),
			}
		}
		name = ls[0]
	}
	t := c.Tree(name)
	if t == nil {
		return nil, &diag.ParseError{Input: input, Err: fmt.Errorf("tree %q not found", name)}
	}
	return FromTimeTree(t)
}

// FromTimeTree creates a tree from a time calibrated tree.
// Terminals are named by their taxon names.
// Internal nodes are named by the tree name
// and the node ID
// (e.g., "vireya:3").
func FromTimeTree(t *timetree.Tree) (*Tree, error) {
	label := func(id int) string {
		if tx := t.Taxon(id); tx != "" {
			return tx
		}
		return fmt.Sprintf("%s:%d", t.Name(), id)
	}

	ids := t.Nodes()
	names := make([]string, 0, len(ids))
	var edges []Edge
	for _, id := range ids {
		names = append(names, label(id))
		for _, c := range t.Children(id) {
			edges = append(edges, Edge{Child: label(c), Parent: label(id)})
		}
	}
	return New(names, edges)
}
