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

// Package logger is the central log for the application. There is only one
// log and it is managed through the package level functions.
//
// Log entries are kept in memory, up to a maximum, and written out on
// request with Write() or Tail(). SetEcho() arranges for new entries to be
// echoed to an io.Writer as they arrive. Identical consecutive entries are
// folded into one entry with a repeat count.
//
// The access engine itself never logs. Logging is for the peripheral parts
// of the project, the chip description loaders and the bus backends, where
// there is something to say about data that has been accepted, adjusted or
// skipped.
package logger
