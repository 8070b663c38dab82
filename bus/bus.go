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

package bus

import "github.com/polder-io/mmreg/regmap"

// AccessFault is the error pattern for a failed raw bus transaction. Every
// Accessor implementation reports transport failure with this pattern.
const AccessFault = "access fault: %v"

// Accessor performs raw register-width transactions against the backing
// store, whether that is real hardware or a simulation. The access engine
// consumes this interface and implements nothing of it.
//
// Each call is one transaction of the full register width at the given
// address. Implementations are expected to perform the transaction as a
// single bus cycle where the transport allows it. Values are little-endian
// at the byte level.
//
// An Accessor is externally owned. If it is shared between goroutines the
// owner is responsible for synchronisation.
type Accessor interface {
	// ReadRaw returns the current raw value at the address. Fails with
	// AccessFault on transport error.
	ReadRaw(address uint64, width regmap.Width) (uint64, error)

	// WriteRaw commits the raw value to the address. Fails with AccessFault
	// on transport error.
	WriteRaw(address uint64, width regmap.Width, value uint64) error
}
