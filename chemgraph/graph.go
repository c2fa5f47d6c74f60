/*
 * graph.go, part of gomol2.
 *
 * Copyright 2024 rmeraaatacademicosdotutadotcl
 *
 * This program is free software; you can redistribute it and/or modify
 * it under the terms of the GNU Lesser General Public License as
 * published by the Free Software Foundation; either version 2.1 of the
 * License, or (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU Lesser General
 * Public License along with this program.  If not, see
 * <http://www.gnu.org/licenses/>.
 *
 */

// Package chemgraph puts the bonds of a molecule in a gonum graph, to find
// the fragments (connected components) of a molecule and paths between atoms.
package chemgraph

import (
	"fmt"
	"sort"

	chem "github.com/rmera/gomol2"
	v3 "github.com/rmera/gomol2/v3"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"
)

// Atom implements gonum's graph.Node. The ID is the Index of the atom.
type Atom struct {
	*chem.Atom
}

func (A Atom) ID() int64 {
	return int64(A.Index)
}

// Bond implements gonum's graph.Edge.
type Bond struct {
	*chem.Bond
	At1, At2 Atom
}

func (B Bond) From() graph.Node {
	return B.At1
}

func (B Bond) To() graph.Node {
	return B.At2
}

// bonds are not directional
func (B Bond) ReversedEdge() graph.Edge {
	return Bond{Bond: B.Bond, At1: B.At2, At2: B.At1}
}

// FromMolecule returns an undirected graph with one node per atom of mol and
// one edge per bond. Bonds from an atom to itself are ignored. The atoms must
// have their Index fields filled.
func FromMolecule(mol *chem.Molecule) *simple.UndirectedGraph {
	g := simple.NewUndirectedGraph()
	for _, at := range mol.Atoms {
		g.AddNode(Atom{at})
	}
	for _, b := range mol.Bonds {
		if b.At1 == b.At2 {
			continue
		}
		g.SetEdge(Bond{Bond: b, At1: Atom{b.At1}, At2: Atom{b.At2}})
	}
	return g
}

// Fragments returns the indexes of the atoms in each connected fragment
// of mol. Indexes are sorted within each fragment, and fragments are sorted
// by their first index.
func Fragments(mol *chem.Molecule) [][]int {
	comps := topo.ConnectedComponents(FromMolecule(mol))
	ret := make([][]int, 0, len(comps))
	for _, c := range comps {
		frag := make([]int, 0, len(c))
		for _, n := range c {
			frag = append(frag, int(n.ID()))
		}
		sort.Ints(frag)
		ret = append(ret, frag)
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i][0] < ret[j][0] })
	return ret
}

// FragmentGroups returns one group per fragment of mol, placed at the center
// of the box containing the fragment, in the first frame.
func FragmentGroups(mol *chem.Molecule) ([]*chem.SGroup, error) {
	frags := Fragments(mol)
	ret := make([]*chem.SGroup, 0, len(frags))
	for i, f := range frags {
		ats := make([]*chem.Atom, 0, len(f))
		for _, v := range f {
			ats = append(ats, mol.Atom(v))
		}
		var pos *v3.Matrix
		if len(mol.Coords) > 0 {
			sub, err := mol.Coords[0].SomeVecs(f)
			if err != nil {
				return nil, fmt.Errorf("FragmentGroups: fragment %d: %w", i+1, err)
			}
			pos = sub.BoxCenter()
		}
		ret = append(ret, chem.NewSGroup(fmt.Sprintf("%d", i+1), fmt.Sprintf("fragment%d", i+1), pos, ats))
	}
	return ret, nil
}

// ShortestPath returns the indexes of the atoms in the shortest bond path
// from the atom with index from to the atom with index to, both included.
// It returns nil if there is no path.
func ShortestPath(mol *chem.Molecule, from, to int) []int {
	if from < 0 || to < 0 || from >= mol.Len() || to >= mol.Len() {
		return nil
	}
	g := FromMolecule(mol)
	shortest := path.DijkstraFrom(g.Node(int64(from)), g)
	nodes, _ := shortest.To(int64(to))
	if len(nodes) == 0 {
		return nil
	}
	ret := make([]int, 0, len(nodes))
	for _, n := range nodes {
		ret = append(ret, int(n.ID()))
	}
	return ret
}
