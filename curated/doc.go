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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. Like the Errorf()
// function in the fmt package it takes a formatting pattern and placeholder
// values, and returns an error. Unlike the fmt package, the pattern string
// doubles as the error's identity.
//
// The Is() function checks whether an error is a curated error with a
// specific pattern:
//
//	e := curated.Errorf(regmap.ValueOutOfRange, v, width)
//
//	if curated.Is(e, regmap.ValueOutOfRange) {
//		fmt.Println("true")
//	}
//
// The Has() function is similar but checks for the pattern anywhere in the
// error chain, which is useful once an error has been wrapped by a higher
// layer:
//
//	f := curated.Errorf("chip description: %v", e)
//
//	curated.Is(f, regmap.ValueOutOfRange)  // false
//	curated.Has(f, regmap.ValueOutOfRange) // true
//
// The IsAny() function answers whether the error was created by Errorf() at
// all. An uncurated error is by definition unexpected.
//
// The Error() implementation normalises the message chain, removing duplicate
// adjacent parts. This alleviates the problem of when and how to wrap errors
// as they propagate.
package curated
