/*
 * doc.go, part of gomol2.
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

/*
Package mol2 reads TRIPOS MOL2 files, with one or several molecule records.

The reading is built on a Cursor, which splits the whole text into lines and
walks them. A Cursor keeps an anchor, the first line of the compound being
read, and a current position. Section headers (@<TRIPOS>ATOM, @<TRIPOS>BOND...)
are found relative to the anchor. Nothing in the Cursor fails: a line that
doesn't exist is returned as ("", false), and header lookups that miss fall back
to the anchor line, so the reader decides what a missing section means.

Compounds in a multi-record file are separated by lines equal to
@<TRIPOS>MOLECULE> (with a trailing '>'), or, if there are none of those, by
the @<TRIPOS>MOLECULE headers themselves.

	mols, err := mol2.FileRead("ligands.mol2.gz")
	for _, m := range mols {
		fmt.Println(m.Name, m.Formula())
	}
*/
package mol2
