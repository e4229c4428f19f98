// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package project

import (
	"fmt"
	"os"

	"github.com/js-arias/mlm/annotation"
	"github.com/js-arias/mlm/confidence"
	"github.com/js-arias/mlm/tree"
)

// Annotations reads the node annotations
// as defined in a project.
// If no annotation file is defined,
// the annotations will be extracted from the nexus file,
// using blank for unannotated nodes.
func (p *Project) Annotations(blank string) (*annotation.Map, error) {
	if name := p.Path(Annotations); name != "" {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return annotation.ReadTSV(f, name)
	}

	name := p.Path(Nexus)
	if name == "" {
		return nil, fmt.Errorf("annotations not defined in project %q", p.name)
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return annotation.ReadNexus(f, name, blank)
}

// Confidence reads the confidence table
// as defined in a project.
func (p *Project) Confidence() (*confidence.Table, error) {
	name := p.Path(Confidence)
	if name == "" {
		return nil, fmt.Errorf("confidence table not defined in project %q", p.name)
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return confidence.ReadTSV(f, name)
}

// Tree reads the tree
// as defined in a project.
// A newick tree is used if it is defined,
// otherwise the tree is read from the time tree collection,
// using the indicated tree name.
func (p *Project) Tree(treeName string) (*tree.Tree, error) {
	if name := p.Path(Newick); name != "" {
		f, err := os.Open(name)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		return tree.ReadNewick(f, name)
	}

	if p.Path(TimeTrees) == "" {
		return nil, fmt.Errorf("tree not defined in project %q", p.name)
	}
	return p.TimeTree(treeName)
}

// TimeTree reads a tree from the time tree collection
// as defined in a project,
// using the indicated tree name.
func (p *Project) TimeTree(treeName string) (*tree.Tree, error) {
	name := p.Path(TimeTrees)
	if name == "" {
		return nil, fmt.Errorf("time trees not defined in project %q", p.name)
	}
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return tree.ReadTimeTree(f, name, treeName)
}
