// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package analysis runs a multi-level migration analysis:
// it assigns regions to the nodes of a tree,
// calculates the node weights,
// and aggregates the weights by region.
package analysis

import (
	"github.com/js-arias/mlm/annotation"
	"github.com/js-arias/mlm/diag"
	"github.com/js-arias/mlm/migration"
	"github.com/js-arias/mlm/tree"
	"github.com/js-arias/mlm/weight"
)

// Result is the result of an analysis.
type Result struct {
	// Stats are the weights aggregated by region.
	Stats migration.Stats

	// Warnings are the lookup misses
	// in which a default value was used.
	Warnings []diag.Warning
}

// Run runs an analysis on a tree.
// The regions of the tree nodes are taken from the annotations,
// and the weights are discounted by the confidence values.
//
// Every region in the annotations is reported,
// even if no node of the tree is in that region.
//
// On error no result is returned.
func Run(t *tree.Tree, m *annotation.Map, conf weight.Confidencer) (*Result, error) {
	log := diag.NewLog()

	annotation.Apply(t, m, log)
	if err := weight.Compute(t, conf, log); err != nil {
		return nil, err
	}

	s, err := migration.Aggregate(t)
	if err != nil {
		return nil, err
	}
	for _, r := range m.Regions() {
		s.AddRegion(r)
	}

	return &Result{
		Stats:    s,
		Warnings: log.Warnings(),
	}, nil
}
