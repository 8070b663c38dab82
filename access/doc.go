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

// Package access implements the register access engine. Each operation has
// one fixed meaning and its effect on the register can be read off the
// operation name, without reference to surrounding code:
//
//	Read         one raw read. returns the full register value.
//	ReadField    one raw read. returns the named field, decoded.
//	Write        one raw write of the caller's value, verbatim.
//	WriteField   one raw write. the named field carries the value, every
//	             other bit is written as zero.
//	ModifyField  one raw read then one raw write. the named field is
//	             replaced, every other bit is preserved as read.
//	ModifyBatch  one raw read then one raw write, regardless of how many
//	             field/value pairs are supplied. all pairs are applied to
//	             the single in-memory copy before the write.
//
// The rule is: an operation whose name contains "write" writes zeroes to
// every bit it was not explicitly given, and an operation whose name
// contains "modify" preserves every bit it was not explicitly given. There
// is no hybrid and there is no operation whose behaviour depends on call
// order, other than the read-before-write inside a single modify call.
//
// ModifyBatch exists so that setting several fields of one register is
// guaranteed to be a single bus transaction pair. Chained single-field
// modifies are also well defined but they are N transactions and the
// intermediate states are visible on the bus.
//
// Value range failures are detected before the first bus transaction of a
// call. A call that returns ValueOutOfRange has not touched the bus at all,
// and a read failure in a modify call means the write is never attempted.
// Partial writes do not occur.
//
// The engine holds no state other than the Accessor reference. Nothing is
// cached between calls; every modify issues its own fresh read. The engine
// takes no locks: concurrent callers that share a register must serialise
// externally, at whatever scope the bus requires.
package access
