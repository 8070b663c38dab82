// This file is part of MMReg.
//
// MMReg is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// MMReg is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with MMReg.  If not, see <https://www.gnu.org/licenses/>.

// Package chipdesc loads chip descriptions, the static tables that say
// which registers a chip has, where they are and what their fields mean.
//
// Two formats are supported: the register map subset of CMSIS-SVD
// (ReadSVD) and an equivalent YAML schema (ReadYAML). Both produce a
// Description, a validated, immutable, name-indexed table of regmap
// descriptors. Every descriptor invariant is checked at load time, through
// the regmap constructors, so that code holding a Description never sees a
// DescriptorOverflow or DescriptorOverlap at access time.
//
// A Description is the load-time counterpart of a generated static table.
// The mmreg-gen command turns the same input files into Go source for
// projects that prefer their register map at compile time.
package chipdesc
