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

// Package regmap defines the descriptor types for memory mapped registers
// and the bitfields inside them, along with the pure shift/mask arithmetic
// that moves a field value into and out of its position in a full width
// register value.
//
// Descriptors are plain structural types. A Field built for one register can
// be applied to any other register of compatible width. This is deliberate:
// the point of the project is that an auditor can take a constant from one
// part of a chip description and probe another part with it, and the
// descriptors should not get in the way. The protection that is given up by
// this is checked instead at construction time: NewRegister() rejects fields
// that do not fit the register width (DescriptorOverflow) and fields that
// share bit positions (DescriptorOverlap).
//
// All descriptors are immutable once constructed and can be shared freely
// between goroutines. They are intended to be built once, as static chip
// description data, and never changed. The MustField() and MustRegister()
// forms exist for that static data, where a construction failure is a
// programming error and panicking at init time is the correct response.
package regmap
