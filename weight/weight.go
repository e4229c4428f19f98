// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package weight implements the calculation
// of the weight of the nodes of a tree.
//
// The weight of a terminal is its confidence,
// and the weight of an internal node
// is the sum of the weights of its children
// discounted by its own confidence.
// With all confidences equal to 1,
// the weight of a node is the number of terminals
// in its subtree.
package weight

import (
	"github.com/js-arias/mlm/diag"
	"github.com/js-arias/mlm/tree"
	"gonum.org/v1/gonum/floats"
)

// A Confidencer returns the confidence of a node
// for a given region.
type Confidencer interface {
	Lookup(node, region string, log *diag.Log) float64
}

// Visit status of a node.
const (
	unvisited = iota
	open
	closed
)

type frame struct {
	name     string
	expanded bool
}

// Compute sets the weight of all nodes of a tree
// using a post-order traversal.
// Confidence misses are reported in the log.
//
// It returns a StructuralError
// if the tree has no root,
// or if a node is reached twice.
func Compute(t *tree.Tree, c Confidencer, log *diag.Log) error {
	root, err := t.Root()
	if err != nil {
		return err
	}

	status := make(map[string]int, t.Len())
	stack := []frame{{name: root}}
	for len(stack) > 0 {
		top := len(stack) - 1
		if !stack[top].expanded {
			n := stack[top].name
			if status[n] != unvisited {
				return &diag.StructuralError{Node: n, Reason: "cycle found during traversal"}
			}
			status[n] = open
			stack[top].expanded = true

			children := t.Children(n)
			for i := len(children) - 1; i >= 0; i-- {
				stack = append(stack, frame{name: children[i]})
			}
			continue
		}

		n := stack[top].name
		stack = stack[:top]

		conf := c.Lookup(n, t.Region(n), log)
		children := t.Children(n)
		if len(children) == 0 {
			t.SetWeight(n, 1.0*conf)
			status[n] = closed
			continue
		}

		ws := make([]float64, 0, len(children))
		for _, cn := range children {
			if status[cn] != closed {
				return &diag.StructuralError{Node: cn, Reason: "child without weight"}
			}
			ws = append(ws, t.Weight(cn))
		}
		t.SetWeight(n, conf*floats.Sum(ws))
		status[n] = closed
	}

	if len(status) != t.Len() {
		return &diag.StructuralError{Reason: "nodes not reachable from the root"}
	}
	return nil
}
