/*
 * conc.go, part of gomol2.
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

package mol2

import (
	"context"

	chem "github.com/rmera/gomol2"
	"golang.org/x/sync/errgroup"
)

// ReadConc reads all the MOL2 records in text, parsing up to workers compounds
// at the same time. Each compound gets its own Cursor over its own copy of the
// lines. The molecules are returned in the order they have in the text.
// workers < 1 means one worker per compound. A parse error doesn't stop the
// other workers, so that, as with ReadString, the error returned is the one of
// the first failing compound in the text.
func ReadConc(ctx context.Context, text string, workers int) ([]*chem.Molecule, error) {
	comps := split(NewCursor(text))
	mols := make([]*chem.Molecule, len(comps))
	errs := make([]error, len(comps))
	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}
	for i, c := range comps {
		i, c := i, c
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			mols[i], errs[i] = parseCompound(newCursorLines(c.lines), c.first)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	for _, err := range errs {
		if err != nil {
			return nil, errDecorate(err, "ReadConc", "")
		}
	}
	return mols, nil
}
