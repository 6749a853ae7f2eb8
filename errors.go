/* Copyright (C) 2020 Philipp Benner
 *
 * This program is free software: you can redistribute it and/or modify
 * it under the terms of the GNU General Public License as published by
 * the Free Software Foundation, either version 3 of the License, or
 * (at your option) any later version.
 *
 * This program is distributed in the hope that it will be useful,
 * but WITHOUT ANY WARRANTY; without even the implied warranty of
 * MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
 * GNU General Public License for more details.
 *
 * You should have received a copy of the GNU General Public License
 * along with this program.  If not, see <http://www.gnu.org/licenses/>.
 */

package goproteomics

/* -------------------------------------------------------------------------- */

import "fmt"
import "strings"

/* policies
 * -------------------------------------------------------------------------- */

// DuplicatePolicy determines what happens when an entity is added under a
// name or unique ID that is already taken.
type DuplicatePolicy int

const (
  FailOnDuplicate    DuplicatePolicy = iota
  OverwriteDuplicate
)

// MissingPolicy determines what happens when a lookup or removal refers to
// an entity that does not exist.
type MissingPolicy int

const (
  FailOnMissing MissingPolicy = iota
  IgnoreMissing
)

/* error types
 * -------------------------------------------------------------------------- */

// RangeError indicates a position or interval outside the valid coordinate
// range [1, n] of a protein of length n.
type RangeError struct {
  Message string
}

func (e RangeError) Error() string {
  return e.Message
}

func newRangeError(format string, args ...interface{}) RangeError {
  return RangeError{fmt.Sprintf(format, args...)}
}

/* -------------------------------------------------------------------------- */

// DuplicateNameError indicates that an entity was added under a name or
// unique ID that is already taken and overwriting was not permitted.
type DuplicateNameError struct {
  Message string
}

func (e DuplicateNameError) Error() string {
  return e.Message
}

func newDuplicateNameError(format string, args ...interface{}) DuplicateNameError {
  return DuplicateNameError{fmt.Sprintf(format, args...)}
}

/* -------------------------------------------------------------------------- */

// LengthMismatchError indicates that a per-residue vector does not match the
// length of the protein it annotates.
type LengthMismatchError struct {
  Message string
}

func (e LengthMismatchError) Error() string {
  return e.Message
}

func newLengthMismatchError(format string, args ...interface{}) LengthMismatchError {
  return LengthMismatchError{fmt.Sprintf(format, args...)}
}

/* -------------------------------------------------------------------------- */

// TypeConversionError indicates a value that cannot be converted to the
// required type, or access to a track vector of the wrong kind.
type TypeConversionError struct {
  Message string
}

func (e TypeConversionError) Error() string {
  return e.Message
}

func newTypeConversionError(format string, args ...interface{}) TypeConversionError {
  return TypeConversionError{fmt.Sprintf(format, args...)}
}

/* -------------------------------------------------------------------------- */

// EmptyConstructError indicates an attempt to construct an entity without
// any payload, such as a track with neither values nor symbols.
type EmptyConstructError struct {
  Message string
}

func (e EmptyConstructError) Error() string {
  return e.Message
}

func newEmptyConstructError(format string, args ...interface{}) EmptyConstructError {
  return EmptyConstructError{fmt.Sprintf(format, args...)}
}

/* -------------------------------------------------------------------------- */

// MissingEntityError indicates a lookup or removal that found no entity
// while the missing policy demanded one.
type MissingEntityError struct {
  Message string
}

func (e MissingEntityError) Error() string {
  return e.Message
}

func newMissingEntityError(format string, args ...interface{}) MissingEntityError {
  return MissingEntityError{fmt.Sprintf(format, args...)}
}

/* -------------------------------------------------------------------------- */

// ConstructionError indicates a malformed record in a batch construction. The
// diagnostic lists for every field of the offending record whether it could
// be parsed, so that a single bad record in a large batch can be located.
type ConstructionError struct {
  Message    string
  Index      int
  Diagnostic []string
}

func (e ConstructionError) Error() string {
  if len(e.Diagnostic) == 0 {
    return e.Message
  }
  return fmt.Sprintf("%s\n%s", e.Message, strings.Join(e.Diagnostic, "\n"))
}
