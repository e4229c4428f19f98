// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

// Package spread implements a command to calculate
// the weight of the migrations between regions.
package spread

import (
	"fmt"
	"io"
	"os"

	"github.com/js-arias/command"
	"github.com/js-arias/mlm/analysis"
	"github.com/js-arias/mlm/annotation"
	"github.com/js-arias/mlm/confidence"
	"github.com/js-arias/mlm/migration"
	"github.com/js-arias/mlm/project"
	"github.com/js-arias/mlm/tree"
)

var Command = &command.Command{
	Usage: `spread [--project <project-file>]
	[--timetree] [--tree <name>]
	[--format <format>] [-o|--output <file>]
	[--plot <file>]
	<tree-file> <annotation-file> <confidence-file>`,
	Short: "calculate the migration weights between regions",
	Long: `
Command spread reads a tree, the regions assigned to its nodes, and the
confidence of each assignment, and reports, for each region, the total weight
of the nodes in the region, the local weight (i.e., the weight of the nodes
whose parent is in the same region), and the weight arriving from each other
region.

The weight of a terminal is its confidence. The weight of an internal node is
the sum of the weights of its children, multiplied by its confidence. If all
confidences are 1, the weight of a node is the number of terminals in its
subtree.

The first argument of the command is the tree file, in newick format, with
labeled internal nodes. If the flag --timetree is set, the tree will be read
from a tab-delimited tree collection, as used by PhyGeo; use the flag --tree
to indicate the tree to be used if the collection has more than one tree.

The second argument is the annotation file, a tab-delimited file with the node
names and its regions. The third argument is the confidence file, a
tab-delimited file with the confidence of each node for each region. See
'mlm help annotations' and 'mlm help confidence' for the file formats.

Alternatively, the flag --project can be used to read the files from a
project file. In that case, no arguments should be given. The newick tree of
the project is used if it is defined; if the flag --timetree is set, the tree
is always read from the time tree collection of the project.

Nodes, or regions, not found in the confidence file use a confidence of 1.
Each missing value is reported in the standard error.

By default, the results are printed in the standard output as a human
readable line for each region. Use the flag --format to define a different
output format. Valid formats are:

	log   human readable lines (the default)
	tsv   a tab-delimited table
	yaml  a YAML document

Use the flag --output, or -o, to write the results into a file.

If the flag --plot is defined, a stacked bar chart with the local and arriving
weights of each region will be saved in the indicated file. The format of the
image is defined by the file extension (e.g., png, svg, or pdf).
	`,
	SetFlags: setFlags,
	Run:      run,
}

var projectFile string
var timeTree bool
var treeName string
var format string
var output string
var plotFile string

func setFlags(c *command.Command) {
	c.Flags().StringVar(&projectFile, "project", "", "")
	c.Flags().BoolVar(&timeTree, "timetree", false, "")
	c.Flags().StringVar(&treeName, "tree", "", "")
	c.Flags().StringVar(&format, "format", "log", "")
	c.Flags().StringVar(&output, "output", "", "")
	c.Flags().StringVar(&output, "o", "", "")
	c.Flags().StringVar(&plotFile, "plot", "", "")
}

func run(c *command.Command, args []string) (err error) {
	var write func(migration.Stats, io.Writer) error
	switch format {
	case "log":
		write = migration.Stats.Log
	case "tsv":
		write = migration.Stats.TSV
	case "yaml":
		write = migration.Stats.YAML
	default:
		return c.UsageError(fmt.Sprintf("unknown format %q", format))
	}

	var t *tree.Tree
	var m *annotation.Map
	var conf *confidence.Table
	if projectFile != "" {
		if len(args) > 0 {
			return c.UsageError("unexpected arguments with flag --project")
		}
		t, m, conf, err = readProject()
	} else {
		if len(args) != 3 {
			return c.UsageError("expecting tree, annotation, and confidence files")
		}
		t, m, conf, err = readFiles(args[0], args[1], args[2])
	}
	if err != nil {
		return err
	}

	res, err := analysis.Run(t, m, conf)
	if err != nil {
		return err
	}
	for _, w := range res.Warnings {
		fmt.Fprintf(c.Stderr(), "WARNING: %s\n", w)
	}

	if output == "" {
		if err := write(res.Stats, c.Stdout()); err != nil {
			return err
		}
	} else if err := writeOutput(res.Stats, write); err != nil {
		return err
	}

	if plotFile != "" {
		if err := makePlot(res.Stats); err != nil {
			return fmt.Errorf("while making plot %q: %v", plotFile, err)
		}
	}
	return nil
}

func readProject() (*tree.Tree, *annotation.Map, *confidence.Table, error) {
	p, err := project.Read(projectFile)
	if err != nil {
		return nil, nil, nil, err
	}

	var t *tree.Tree
	if timeTree {
		t, err = p.TimeTree(treeName)
	} else {
		t, err = p.Tree(treeName)
	}
	if err != nil {
		return nil, nil, nil, err
	}
	m, err := p.Annotations(tree.Unknown)
	if err != nil {
		return nil, nil, nil, err
	}
	conf, err := p.Confidence()
	if err != nil {
		return nil, nil, nil, err
	}
	return t, m, conf, nil
}

func readFiles(treeFile, annFile, confFile string) (*tree.Tree, *annotation.Map, *confidence.Table, error) {
	t, err := readTree(treeFile)
	if err != nil {
		return nil, nil, nil, err
	}

	f, err := os.Open(annFile)
	if err != nil {
		return nil, nil, nil, err
	}
	defer f.Close()
	m, err := annotation.ReadTSV(f, annFile)
	if err != nil {
		return nil, nil, nil, err
	}

	cf, err := os.Open(confFile)
	if err != nil {
		return nil, nil, nil, err
	}
	defer cf.Close()
	conf, err := confidence.ReadTSV(cf, confFile)
	if err != nil {
		return nil, nil, nil, err
	}

	return t, m, conf, nil
}

func readTree(name string) (*tree.Tree, error) {
	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	if timeTree {
		return tree.ReadTimeTree(f, name, treeName)
	}
	return tree.ReadNewick(f, name)
}

func writeOutput(s migration.Stats, write func(migration.Stats, io.Writer) error) (err error) {
	f, err := os.Create(output)
	if err != nil {
		return err
	}
	defer func() {
		e := f.Close()
		if e != nil && err == nil {
			err = e
		}
	}()

	if err := write(s, f); err != nil {
		return fmt.Errorf("while writing to %q: %v", output, err)
	}
	return nil
}
