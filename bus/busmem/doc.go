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

// Package busmem implements bus.Accessor over a slice of ordinary memory.
// It is the reference backend: tests run against it, and tooling that wants
// to exercise a chip description without hardware can point an access
// engine at it.
//
// Hooks registered with MapRange() simulate the device behind the window.
// Peek() and Poke() bypass the hooks for test setup and inspection.
package busmem
