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

// Package bus defines the Accessor interface, the capability contract
// between the access engine and whatever performs the actual read and write
// transactions. The engine never touches storage directly. It asks an
// Accessor.
//
// Two implementations live in the sub-packages: busmem, an in-memory
// simulated window used by tests and tooling, and devmem, a Linux /dev/mem
// mapping for real hardware.
package bus
