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

/* -------------------------------------------------------------------------- */

type TrackKind int

const (
  TrackValues  TrackKind = iota
  TrackSymbols
)

func (kind TrackKind) String() string {
  switch kind {
  case TrackValues : return "values"
  case TrackSymbols: return "symbols"
  default          : return "unknown"
  }
}

/* -------------------------------------------------------------------------- */

// A Track annotates every residue of a protein, either with a floating point
// value or with a symbol, but never with both. Both vectors carry an unused
// leading element so that 1-indexed residue positions can be used directly.
type Track struct {
  name       string
  values     []float64
  symbols    []string
  attributes Attributes
  protein    *Protein
}

// TrackRecord is the plain representation of a track used for batch
// construction. Exactly one of Values and Symbols must be non-nil.
type TrackRecord struct {
  Name       string
  Values     []float64
  Symbols    []string
  Attributes Attributes
}

/* constructors
 * -------------------------------------------------------------------------- */

func newTrack(protein *Protein, name string, values []float64, symbols []string) (*Track, error) {
  n := protein.Length()
  if values == nil && symbols == nil {
    return nil, newEmptyConstructError("protein `%s': track `%s' must be given either values or symbols", protein.uniqueID, name)
  }
  if values != nil && symbols != nil {
    return nil, ConstructionError{Message: fmt.Sprintf("protein `%s': track `%s' cannot carry both values and symbols", protein.uniqueID, name)}
  }
  track := Track{name: name, attributes: Attributes{}, protein: protein}
  if values != nil {
    if len(values) != n {
      return nil, newLengthMismatchError("protein `%s': track `%s' carries %d values but the protein has %d residues", protein.uniqueID, name, len(values), n)
    }
    track.values = make([]float64, n+1)
    copy(track.values[1:], values)
  } else {
    if len(symbols) != n {
      return nil, newLengthMismatchError("protein `%s': track `%s' carries %d symbols but the protein has %d residues", protein.uniqueID, name, len(symbols), n)
    }
    track.symbols = make([]string, n+1)
    track.symbols[0] = "-"
    copy(track.symbols[1:], symbols)
  }
  return &track, nil
}

/* access methods
 * -------------------------------------------------------------------------- */

func (obj *Track) Name() string {
  return obj.name
}

func (obj *Track) Protein() *Protein {
  return obj.protein
}

func (obj *Track) Kind() TrackKind {
  if obj.values != nil {
    return TrackValues
  } else {
    return TrackSymbols
  }
}

func (obj *Track) Length() int {
  if obj.values != nil {
    return len(obj.values)-1
  } else {
    return len(obj.symbols)-1
  }
}

/* -------------------------------------------------------------------------- */

func (obj *Track) checkRegion(start, end int) error {
  if start < 1 || end > obj.Length() || start > end {
    return newRangeError("%s: region [%d, %d] is not a valid subregion of [1, %d]", obj.context(), start, end, obj.Length())
  }
  return nil
}

// Values returns a copy of the full values vector. The track must be a
// values track.
func (obj *Track) Values() ([]float64, error) {
  return obj.ValuesRegion(1, obj.Length())
}

// Symbols returns a copy of the full symbols vector. The track must be a
// symbols track.
func (obj *Track) Symbols() ([]string, error) {
  return obj.SymbolsRegion(1, obj.Length())
}

// ValuesRegion returns a copy of the values in the closed interval
// [start, end].
func (obj *Track) ValuesRegion(start, end int) ([]float64, error) {
  if obj.values == nil {
    return nil, newTypeConversionError("%s: carries symbols, not values", obj.context())
  }
  if err := obj.checkRegion(start, end); err != nil {
    return nil, err
  }
  values := make([]float64, end-start+1)
  copy(values, obj.values[start:end+1])
  return values, nil
}

// SymbolsRegion returns a copy of the symbols in the closed interval
// [start, end].
func (obj *Track) SymbolsRegion(start, end int) ([]string, error) {
  if obj.symbols == nil {
    return nil, newTypeConversionError("%s: carries values, not symbols", obj.context())
  }
  if err := obj.checkRegion(start, end); err != nil {
    return nil, err
  }
  symbols := make([]string, end-start+1)
  copy(symbols, obj.symbols[start:end+1])
  return symbols, nil
}

func (obj *Track) Value(position int) (float64, error) {
  if obj.values == nil {
    return 0, newTypeConversionError("%s: carries symbols, not values", obj.context())
  }
  if err := obj.checkRegion(position, position); err != nil {
    return 0, err
  }
  return obj.values[position], nil
}

func (obj *Track) Symbol(position int) (string, error) {
  if obj.symbols == nil {
    return "", newTypeConversionError("%s: carries values, not symbols", obj.context())
  }
  if err := obj.checkRegion(position, position); err != nil {
    return "", err
  }
  return obj.symbols[position], nil
}

/* attributes
 * -------------------------------------------------------------------------- */

func (obj *Track) AddAttribute(name string, value interface{}, policy DuplicatePolicy) error {
  return obj.attributes.add(obj.context(), name, value, policy)
}

func (obj *Track) Attribute(name string, policy MissingPolicy) (interface{}, error) {
  return obj.attributes.get(obj.context(), name, policy)
}

func (obj *Track) RemoveAttribute(name string, policy MissingPolicy) error {
  return obj.attributes.remove(obj.context(), name, policy)
}

func (obj *Track) AttributeNames() []string {
  return obj.attributes.Keys()
}

/* -------------------------------------------------------------------------- */

func (obj *Track) context() string {
  return fmt.Sprintf("track `%s' of protein `%s'", obj.name, obj.protein.uniqueID)
}

func (obj *Track) String() string {
  return fmt.Sprintf("%s track `%s' of protein `%s' with %d residues", obj.Kind(), obj.name, obj.protein.uniqueID, obj.Length())
}
