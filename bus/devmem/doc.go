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

// Package devmem implements bus.Accessor over an mmap of /dev/mem. It is
// the backend for talking to real memory mapped peripherals on Linux.
//
// Go has no volatile qualifier. The mapping is opened with O_SYNC, which on
// Linux gives an uncached mapping of device memory, and each transaction
// compiles to a single aligned load or store. Architectures that require
// explicit memory barriers around device access need them issued by the
// caller.
//
// Only available on Linux. Opening /dev/mem normally requires root and a
// kernel without CONFIG_STRICT_DEVMEM restrictions for the region in
// question.
package devmem
