// This file is part of Glaze.
//
// Glaze is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Glaze is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Glaze.  If not, see <https://www.gnu.org/licenses/>.

// Package test contains helper functions to remove common boilerplate to
// make testing easier.
//
// The Expect functions mark the test as having failed and continue. The
// Demand functions mark the test as having failed and halt the test
// immediately. Demand is useful when subsequent tests rely on the demanded
// value being correct.
//
// It is worth describing how ExpectFailure and ExpectSuccess handle the nil
// type because it is not obvious. The nil type is considered a success and
// consequently will cause ExpectFailure to fail and ExpectSuccess to
// succeed. This may not be how we want to interpret nil in all situations
// but because of how errors usually work (nil to indicate no error) we
// *need* to interpret nil in this way.
//
// ExpectPanic runs a function and fails the test if the function returns
// without panicking. The buffer and shader packages treat contract
// violations as panics, so their tests lean on this a lot.
package test
