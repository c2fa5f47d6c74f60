/*
 * main.go, part of gomol2.
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

// Command mol2info prints a summary of the molecules in one or more MOL2 files.
//
//	mol2info [-json] [-fragments] [-plot composition.png] [-workers n] file.mol2 ...
package main

import (
	"bytes"
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"os/signal"
	"syscall"

	chem "github.com/rmera/gomol2"
	"github.com/rmera/gomol2/chemgraph"
	"github.com/rmera/gomol2/chemjson"
	"github.com/rmera/gomol2/chemplot"
	"github.com/rmera/gomol2/mol2"
)

type options struct {
	json      bool
	fragments bool
	plot      string
	workers   int
	files     []string
}

func parseFlags(args []string) (*options, error) {
	fs := flag.NewFlagSet("mol2info", flag.ContinueOnError)
	o := new(options)
	fs.BoolVar(&o.json, "json", false, "write the molecules as JSON, one document per line")
	fs.BoolVar(&o.fragments, "fragments", false, "print the bonded fragments of each molecule")
	fs.StringVar(&o.plot, "plot", "", "save a bar chart with the element composition to this file")
	fs.IntVar(&o.workers, "workers", 1, "compounds parsed at the same time per file (0: one per compound)")
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	o.files = fs.Args()
	if len(o.files) == 0 {
		return nil, fmt.Errorf("no input files")
	}
	return o, nil
}

func main() {
	log.SetFlags(0)
	log.SetPrefix("mol2info: ")
	os.Exit(run(os.Args[1:], os.Stdout))
}

func run(args []string, out io.Writer) int {
	opts, err := parseFlags(args)
	if err != nil {
		log.Print(err)
		return 2
	}
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()
	var all []*chem.Molecule
	status := 0
	for _, fname := range opts.files {
		mols, err := readFile(ctx, fname, opts.workers)
		if err != nil {
			log.Print(err)
			status = 1
			continue
		}
		all = append(all, mols...)
		if opts.json {
			if err := writeJSON(out, mols, opts.fragments); err != nil {
				log.Print(err)
				status = 1
			}
			continue
		}
		if err := summary(out, fname, mols, opts.fragments); err != nil {
			log.Print(err)
			status = 1
		}
	}
	if opts.plot != "" {
		if err := chemplot.CompositionPlot(all, "Element composition", opts.plot); err != nil {
			log.Print(err)
			status = 1
		}
	}
	return status
}

func readFile(ctx context.Context, fname string, workers int) ([]*chem.Molecule, error) {
	if workers == 1 {
		return mol2.FileRead(fname)
	}
	text, err := mol2.LoadText(fname)
	if err != nil {
		return nil, err
	}
	mols, err := mol2.ReadConc(ctx, text, workers)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return mols, nil
}

// writeJSON encodes mols one document per line. With fragments, each document
// gets a "Fragments" array with the formula of each bonded fragment.
func writeJSON(out io.Writer, mols []*chem.Molecule, fragments bool) error {
	if !fragments {
		if jerr := chemjson.Encode(out, mols); jerr != nil {
			return jerr
		}
		return nil
	}
	for _, m := range mols {
		var buf bytes.Buffer
		if jerr := chemjson.Encode(&buf, []*chem.Molecule{m}); jerr != nil {
			return jerr
		}
		groups, err := chemgraph.FragmentGroups(m)
		if err != nil {
			return err
		}
		formulas := make([]string, 0, len(groups))
		for _, g := range groups {
			formulas = append(formulas, g.ChemicalFormula())
		}
		doc, jerr := chemjson.SetField(bytes.TrimSpace(buf.Bytes()), "Fragments", formulas)
		if jerr != nil {
			return jerr
		}
		if _, err := fmt.Fprintf(out, "%s\n", doc); err != nil {
			return err
		}
	}
	return nil
}

func summary(out io.Writer, fname string, mols []*chem.Molecule, fragments bool) error {
	for i, m := range mols {
		fmt.Fprintf(out, "%s\t%d\t%s\t%d atoms\t%d bonds\t%s\n", fname, i+1, m.Name, m.Len(), len(m.Bonds), m.Formula())
		if !fragments {
			continue
		}
		groups, err := chemgraph.FragmentGroups(m)
		if err != nil {
			return err
		}
		for _, g := range groups {
			fmt.Fprintf(out, "\t%s\t%d atoms\t%s\n", g.Name, len(g.Atoms), g.ChemicalFormula())
		}
	}
	return nil
}
