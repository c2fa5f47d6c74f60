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
Package chem is the main package of gomol2. It provides the atom, bond,
molecule and substructure group structures that the MOL2 reader in the
mol2 package fills.

	**Capabilities**

    Atoms with their SYBYL types, partial charges and substructure ids.

    Bonds with their MOL2 types and a numeric bond order.

    Substructure groups (SGroup) with repeat counts, group charges, and a
	central point computed from the box containing their atoms.

    Chemical formulas in Hill order, with charge and repeat annotations
	for groups, i.e. 2(SO4)^2-.

Coordinates are kept in v3.Matrix, an Nx3 matrix based on gonum's Dense. Each
row is one point in space.
*/
package chem
