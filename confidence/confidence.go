// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package confidence implements a table of confidence values
// for the region assigned to each node of a tree.
package confidence

import (
	"slices"

	"github.com/js-arias/mlm/diag"
)

// Default is the confidence value used
// when a node,
// or a region,
// is not defined in a table.
const Default = 1.0

// A Table stores the confidence
// of each node
// for each region.
type Table struct {
	regions map[string]bool
	nodes   map[string]map[string]float64
}

// New creates a new empty table.
func New() *Table {
	return &Table{
		regions: make(map[string]bool),
		nodes:   make(map[string]map[string]float64),
	}
}

// AddRegion adds a region to the table,
// without any value.
func (t *Table) AddRegion(region string) {
	t.regions[region] = true
}

// Set sets the confidence value
// for a node in a region.
func (t *Table) Set(node, region string, v float64) {
	t.regions[region] = true
	row, ok := t.nodes[node]
	if !ok {
		row = make(map[string]float64)
		t.nodes[node] = row
	}
	row[region] = v
}

// Lookup returns the confidence value of a node
// for a region.
//
// If the region is not defined in the table,
// or the node has no value for the region,
// it returns Default,
// and adds a warning to the log.
func (t *Table) Lookup(node, region string, log *diag.Log) float64 {
	if !t.regions[region] {
		log.Warn(diag.Warning{Kind: diag.MissingRegion, Region: region})
		return Default
	}
	v, ok := t.nodes[node][region]
	if !ok {
		log.Warn(diag.Warning{Kind: diag.MissingNode, Node: node, Region: region})
		return Default
	}
	return v
}

// Nodes returns the nodes defined in the table.
func (t *Table) Nodes() []string {
	nodes := make([]string, 0, len(t.nodes))
	for n := range t.nodes {
		nodes = append(nodes, n)
	}
	slices.Sort(nodes)
	return nodes
}

// Regions returns the regions defined in the table.
func (t *Table) Regions() []string {
	regions := make([]string, 0, len(t.regions))
	for r := range t.regions {
		regions = append(regions, r)
	}
	slices.Sort(regions)
	return regions
}
