// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package annotation implements a mapping
// of tree nodes to regions
// (i.e., ancestral state annotations).
package annotation

import (
	"slices"

	"github.com/js-arias/mlm/diag"
	"github.com/js-arias/mlm/tree"
)

// Map is a mapping of node names to regions.
// Names are kept in the order they were added.
type Map struct {
	names  []string
	region map[string]string
}

// New creates a new empty map.
func New() *Map {
	return &Map{
		region: make(map[string]string),
	}
}

// Set sets the region of a node.
// If the node was already defined,
// its region is replaced.
func (m *Map) Set(name, region string) {
	if _, ok := m.region[name]; !ok {
		m.names = append(m.names, name)
	}
	m.region[name] = region
}

// Region returns the region of a node.
func (m *Map) Region(name string) (string, bool) {
	r, ok := m.region[name]
	return r, ok
}

// Len returns the number of annotated nodes.
func (m *Map) Len() int {
	return len(m.names)
}

// Names returns the annotated nodes,
// in the order they were added.
func (m *Map) Names() []string {
	return slices.Clone(m.names)
}

// Regions returns the regions used in the map.
func (m *Map) Regions() []string {
	rs := make(map[string]bool)
	for _, r := range m.region {
		rs[r] = true
	}
	regions := make([]string, 0, len(rs))
	for r := range rs {
		regions = append(regions, r)
	}
	slices.Sort(regions)
	return regions
}

// Apply sets the region of the nodes of a tree.
// Annotated names that are not in the tree
// are ignored
// and reported in the log.
func Apply(t *tree.Tree, m *Map, log *diag.Log) {
	for _, n := range m.names {
		if !t.SetRegion(n, m.region[n]) {
			log.Warn(diag.Warning{Kind: diag.UnmatchedName, Node: n})
		}
	}
}
