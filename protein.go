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
import "sort"

/* -------------------------------------------------------------------------- */

// A Protein is an amino acid sequence together with its annotations, i.e.
// domains, sites and tracks. Proteins are identified by a unique ID and
// always belong to a proteome, which keeps a registry of all annotation
// types in use. The sequence is stored with a leading sentinel character so
// that 1-indexed residue positions can be used directly.
type Protein struct {
  uniqueID   string
  name       string
  seq        []byte
  domains    map[string]*Domain
  sites      map[int][]*Site
  tracks     map[string]*Track
  attributes Attributes
  proteome   *Proteome
}

/* constructors
 * -------------------------------------------------------------------------- */

func newProtein(proteome *Proteome, sequence, name, uniqueID string, attributes Attributes) *Protein {
  seq    := make([]byte, len(sequence)+1)
  seq[0]  = '-'
  copy(seq[1:], sequence)
  if attributes == nil {
    attributes = Attributes{}
  } else {
    attributes = attributes.Clone()
  }
  return &Protein{
    uniqueID  : uniqueID,
    name      : name,
    seq       : seq,
    domains   : map[string]*Domain{},
    sites     : map[int][]*Site{},
    tracks    : map[string]*Track{},
    attributes: attributes,
    proteome  : proteome }
}

/* access methods
 * -------------------------------------------------------------------------- */

func (obj *Protein) UniqueID() string {
  return obj.uniqueID
}

func (obj *Protein) Name() string {
  return obj.name
}

func (obj *Protein) Proteome() *Proteome {
  return obj.proteome
}

// Sequence returns the amino acid sequence of the protein.
func (obj *Protein) Sequence() string {
  return string(obj.seq[1:])
}

// Length returns the number of residues.
func (obj *Protein) Length() int {
  return len(obj.seq)-1
}

/* -------------------------------------------------------------------------- */

func (obj *Protein) checkPosition(position int) error {
  if position < 1 || position > obj.Length() {
    return newRangeError("protein `%s': position `%d' is outside the valid range [1, %d]", obj.uniqueID, position, obj.Length())
  }
  return nil
}

func (obj *Protein) checkRegion(start, end int) error {
  if start < 1 || end > obj.Length() || start > end {
    return newRangeError("protein `%s': region [%d, %d] is not a valid subregion of [1, %d]", obj.uniqueID, start, end, obj.Length())
  }
  return nil
}

// Residue returns the amino acid at the given position.
func (obj *Protein) Residue(position int) (byte, error) {
  if err := obj.checkPosition(position); err != nil {
    return 0, err
  }
  return obj.seq[position], nil
}

// SequenceRegion returns the sequence in the closed interval [start, end].
// Both ends must be valid positions.
func (obj *Protein) SequenceRegion(start, end int) (string, error) {
  if err := obj.checkRegion(start, end); err != nil {
    return "", err
  }
  return string(obj.seq[start:end+1]), nil
}

// SequenceContext returns the sequence window position +/- offset, clipped
// at the ends of the protein. Unlike SequenceRegion only the position itself
// must be valid.
func (obj *Protein) SequenceContext(position, offset int) (string, error) {
  if err := obj.checkPosition(position); err != nil {
    return "", err
  }
  if offset < 0 {
    return "", newRangeError("protein `%s': offset `%d' is negative", obj.uniqueID, offset)
  }
  p1, p2 := boundedWindow(position, offset, obj.Length())
  return string(obj.seq[p1:p2+1]), nil
}

/* -------------------------------------------------------------------------- */

// SequenceIsValid returns true if the sequence consists exclusively of the
// twenty standard amino acids.
func (obj *Protein) SequenceIsValid() bool {
  alphabet := AminoAcidAlphabet{}
  for i := 1; i < len(obj.seq); i++ {
    if !alphabet.IsStandard(obj.seq[i]) {
      return false
    }
  }
  return true
}

// InvalidResidues returns all distinct non-standard letters occurring in the
// sequence, in lexicographic order.
func (obj *Protein) InvalidResidues() []byte {
  alphabet := AminoAcidAlphabet{}
  m := map[byte]bool{}
  for i := 1; i < len(obj.seq); i++ {
    if !alphabet.IsStandard(obj.seq[i]) {
      m[obj.seq[i]] = true
    }
  }
  r := []byte{}
  for c, _ := range m {
    r = append(r, c)
  }
  sort.Slice(r, func(i, j int) bool { return r[i] < r[j] })
  return r
}

// NormalizeSequence substitutes every non-standard amino acid by its
// standard replacement. The substitution never changes the length of the
// sequence, hence letters marking deletions cause an error and the sequence
// is left untouched.
func (obj *Protein) NormalizeSequence() error {
  alphabet := AminoAcidAlphabet{}
  seq := make([]byte, len(obj.seq))
  copy(seq, obj.seq)
  for i := 1; i < len(seq); i++ {
    if alphabet.IsStandard(seq[i]) {
      continue
    }
    if alphabet.IsDeletion(seq[i]) {
      return newTypeConversionError("protein `%s': letter `%c' at position %d marks a deletion and cannot be substituted", obj.uniqueID, seq[i], i)
    }
    if c, err := alphabet.Substitute(seq[i]); err != nil {
      return newTypeConversionError("protein `%s': letter `%c' at position %d is not a valid amino acid", obj.uniqueID, seq[i], i)
    } else {
      seq[i] = c
    }
  }
  obj.seq = seq
  return nil
}

/* attributes
 * -------------------------------------------------------------------------- */

func (obj *Protein) AddAttribute(name string, value interface{}, policy DuplicatePolicy) error {
  return obj.attributes.add(obj.context(), name, value, policy)
}

func (obj *Protein) Attribute(name string, policy MissingPolicy) (interface{}, error) {
  return obj.attributes.get(obj.context(), name, policy)
}

func (obj *Protein) RemoveAttribute(name string, policy MissingPolicy) error {
  return obj.attributes.remove(obj.context(), name, policy)
}

func (obj *Protein) AttributeNames() []string {
  return obj.attributes.Keys()
}

/* -------------------------------------------------------------------------- */

func (obj *Protein) context() string {
  return fmt.Sprintf("protein `%s'", obj.uniqueID)
}

func (obj *Protein) String() string {
  return fmt.Sprintf("protein `%s' (%s) with %d residues, %d domains, %d sites and %d tracks",
    obj.uniqueID, obj.name, obj.Length(), len(obj.domains), obj.NumSites(), len(obj.tracks))
}
