// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package migration implements the aggregation
// of node weights into regions,
// separating the weight that stays in a region
// from the weight that arrives from other regions.
package migration

import (
	"errors"
	"slices"

	"github.com/js-arias/mlm/tree"
	"gonum.org/v1/gonum/floats"
)

// ErrNoWeights is returned when the weights of a tree
// are not defined.
var ErrNoWeights = errors.New("tree weights not computed")

// A Region stores the weights aggregated
// in a region.
type Region struct {
	// Total weight of the nodes in the region.
	Total float64

	// Local is the weight of the nodes
	// whose parent is in the same region.
	Local float64

	// Sources is the weight of the nodes
	// whose parent is in a different region,
	// by the region of the parent.
	Sources map[string]float64

	// Origin is the weight of the root,
	// if the root is in the region.
	Origin float64
}

// Inflow returns the total weight
// arriving from other regions.
func (r *Region) Inflow() float64 {
	src := r.sources()
	ws := make([]float64, 0, len(src))
	for _, s := range src {
		ws = append(ws, r.Sources[s])
	}
	return floats.Sum(ws)
}

// Stats is the collection of the aggregated weights
// by region.
type Stats map[string]*Region

// Aggregate aggregates the weights of the nodes of a tree
// by the region of the nodes.
//
// Every node adds its weight to the total of its region.
// If the parent of the node is in the same region,
// the weight is also added as local weight,
// otherwise it is added as a source weight
// from the region of the parent.
// The root only adds to the total.
func Aggregate(t *tree.Tree) (Stats, error) {
	if !t.HasWeights() {
		return nil, ErrNoWeights
	}

	s := make(Stats)
	for _, n := range t.Nodes() {
		r := t.Region(n)
		w := t.Weight(n)
		reg := s.add(r)
		reg.Total += w

		p, ok := t.Parent(n)
		if !ok {
			reg.Origin += w
			continue
		}
		pr := t.Region(p)
		if pr == r {
			reg.Local += w
			continue
		}
		reg.Sources[pr] += w
	}
	return s, nil
}

// AddRegion adds a region without weights.
// If the region is already defined,
// it does nothing.
func (s Stats) AddRegion(region string) {
	s.add(region)
}

func (s Stats) add(region string) *Region {
	r, ok := s[region]
	if !ok {
		r = &Region{
			Sources: make(map[string]float64),
		}
		s[region] = r
	}
	return r
}

// Regions returns the regions
// in the statistics.
func (s Stats) Regions() []string {
	regions := make([]string, 0, len(s))
	for r := range s {
		regions = append(regions, r)
	}
	slices.Sort(regions)
	return regions
}

// Residual returns the total weight of a region
// that is neither local nor from other regions.
// Up to rounding,
// it is equal to the origin weight of the region.
func (s Stats) Residual(region string) float64 {
	r, ok := s[region]
	if !ok {
		return 0
	}
	return r.Total - r.Local - r.Inflow()
}
