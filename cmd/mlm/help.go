// Copyright © 2024 J. Salvador Arias <jsalarias@gmail.com>
// All rights reserved.
// Distributed under BSD2 license that can be found in the LICENSE file.

package main

import "github.com/js-arias/command"

func init() {
	app.Add(annotationFilesGuide)
	app.Add(confidenceFilesGuide)
	app.Add(projectsGuide)
	app.Add(treeFilesGuide)
}

var annotationFilesGuide = &command.Command{
	Usage: "annotations",
	Short: "about annotation files",
	Long: `
An annotation file assigns a region (or any other discrete state) to the nodes
of a tree. It is a tab-delimited file without header, with two columns: the
node name, and its region. Lines starting with '#' are ignored.

Here is an example file:

	NODE_0000000	Asia
	NODE_0000001	Asia
	NODE_0000002	Europe
	Homo sapiens	Africa

Nodes without an annotation are assigned to the region 'Unknown'. Annotated
names that are not found in the tree are ignored, with a warning.

Annotation files are usually produced from the annotated nexus tree of an
ancestral state reconstruction (for example, the output of TreeTime mugration)
using the command 'mlm nexus'. In an annotated nexus tree, each node is in the
form:

	name:branch-length[&state="value"]
	`,
}

var confidenceFilesGuide = &command.Command{
	Usage: "confidence",
	Short: "about confidence files",
	Long: `
A confidence file stores the confidence of the region assigned to each node.
It is a tab-delimited file, in which the first row is the header. The first
column is the node name, and each other column is a region. A leading '#' in
the header is ignored. Values must be non-negative numbers.

Here is an example file:

	#name	Africa	Asia	Europe
	NODE_0000000	0.05	0.90	0.05
	NODE_0000001	0.10	0.80	0.10
	Homo sapiens	1.00	0.00	0.00

If the region of a node is not a column of the file, or the node is not a row
of the file, a confidence of 1 is used, with a warning.
	`,
}

var projectsGuide = &command.Command{
	Usage: "projects",
	Short: "about project files",
	Long: `
A project file holds the references of the files used in an analysis, so they
can be given to 'mlm spread' with a single flag.

A project file is a tab-delimited file with the following fields:

	- dataset  for the kind of file
	- path     for the path of the file

Here is an example file:

	# mlm project files
	dataset	path
	newick	tree.nwk
	annotations	tree.nex.meta
	confidence	confidence.tab

The valid file types are:

- Newick trees. Defined by the dataset keyword "newick". A tree in
  parenthetical format with labeled internal nodes.
- Time trees. Defined by the dataset keyword "timetrees". A collection of
  time calibrated trees as used by PhyGeo. It is only used if no newick tree
  is defined.
- Annotations. Defined by the dataset keyword "annotations". A node-region
  file.
- Annotated nexus. Defined by the dataset keyword "nexus". An annotated nexus
  tree, used to extract the annotations if no annotation file is defined.
- Confidence. Defined by the dataset keyword "confidence". A table with the
  confidence of each node for each region.

The recommended way to edit a project is by using the command 'mlm prj'.
	`,
}

var treeFilesGuide = &command.Command{
	Usage: "trees",
	Short: "about tree files",
	Long: `
By default, trees are read in newick (parenthetical) format. Internal nodes
must be labeled, as each node is identified by its name, for example:

	((A:0.1,B:0.2)NODE_0000001:0.05,C:0.3)NODE_0000000;

Node names must be unique. A tree with repeated names, or without a single
root, is rejected.

Trees can also be read from a tab-delimited tree collection as used by PhyGeo.
In that case, terminals are identified by their taxon names, and internal
nodes by the tree name and the node ID, for example 'vireya:3'.
	`,
}
