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

// A Site annotates a single residue of a protein, for instance a
// phosphorylation site or the position of a point mutation. A site may carry
// an optional symbol and an optional value. Several sites may share the same
// position.
type Site struct {
  position   int
  siteType   string
  symbol     string
  value      float64
  hasSymbol  bool
  hasValue   bool
  attributes Attributes
  protein    *Protein
}

// SiteRecord is the plain representation of a site used for batch
// construction. Symbol and Value are optional and may be nil.
type SiteRecord struct {
  Position   int
  SiteType   string
  Symbol     *string
  Value      *float64
  Attributes Attributes
}

/* constructors
 * -------------------------------------------------------------------------- */

func newSite(protein *Protein, position int, siteType string) *Site {
  return &Site{position: position, siteType: siteType, attributes: Attributes{}, protein: protein}
}

/* access methods
 * -------------------------------------------------------------------------- */

func (obj *Site) Position() int {
  return obj.position
}

func (obj *Site) SiteType() string {
  return obj.siteType
}

func (obj *Site) Protein() *Protein {
  return obj.protein
}

// Residue returns the amino acid at the position of the site. The residue is
// looked up in the protein sequence on every call so that sites observe
// sequence normalization.
func (obj *Site) Residue() byte {
  return obj.protein.seq[obj.position]
}

func (obj *Site) Symbol() (string, bool) {
  return obj.symbol, obj.hasSymbol
}

func (obj *Site) Value() (float64, bool) {
  return obj.value, obj.hasValue
}

func (obj *Site) SetSymbol(symbol string) {
  obj.symbol    = symbol
  obj.hasSymbol = true
}

func (obj *Site) ClearSymbol() {
  obj.symbol    = ""
  obj.hasSymbol = false
}

func (obj *Site) SetValue(value float64) {
  obj.value    = value
  obj.hasValue = true
}

func (obj *Site) ClearValue() {
  obj.value    = 0
  obj.hasValue = false
}

/* -------------------------------------------------------------------------- */

// SequenceContext returns the sequence window position +/- offset around the
// site, clipped at the ends of the protein.
func (obj *Site) SequenceContext(offset int) (string, error) {
  if offset < 0 {
    return "", newRangeError("%s: offset `%d' is negative", obj.context(), offset)
  }
  p1, p2 := boundedWindow(obj.position, offset, obj.protein.Length())
  return string(obj.protein.seq[p1:p2+1]), nil
}

// Domains returns all domains the site falls into, sorted by start position.
// The offset parameter widens every domain by the given number of residues
// on both sides before the test.
func (obj *Site) Domains(offset int) ([]*Domain, error) {
  if offset < 0 {
    return nil, newRangeError("%s: offset `%d' is negative", obj.context(), offset)
  }
  n := obj.protein.Length()
  domains := []*Domain{}
  for _, domain := range obj.protein.Domains() {
    start := iMax(1, domain.start - offset)
    end   := iMin(domain.end + offset, n)
    if start <= obj.position && obj.position <= end {
      domains = append(domains, domain)
    }
  }
  return domains, nil
}

/* -------------------------------------------------------------------------- */

// TrackValues returns the values of the given track in the window position
// +/- offset around the site, clipped at the ends of the protein. With
// missing policy IgnoreMissing the result is nil if the track does not
// exist.
func (obj *Site) TrackValues(name string, offset int, policy MissingPolicy) ([]float64, error) {
  if offset < 0 {
    return nil, newRangeError("%s: offset `%d' is negative", obj.context(), offset)
  }
  track, err := obj.protein.Track(name, policy)
  if err != nil {
    return nil, err
  }
  if track == nil {
    return nil, nil
  }
  p1, p2 := boundedWindow(obj.position, offset, obj.protein.Length())
  return track.ValuesRegion(p1, p2)
}

// TrackSymbols returns the symbols of the given track in the window position
// +/- offset around the site, clipped at the ends of the protein.
func (obj *Site) TrackSymbols(name string, offset int, policy MissingPolicy) ([]string, error) {
  if offset < 0 {
    return nil, newRangeError("%s: offset `%d' is negative", obj.context(), offset)
  }
  track, err := obj.protein.Track(name, policy)
  if err != nil {
    return nil, err
  }
  if track == nil {
    return nil, nil
  }
  p1, p2 := boundedWindow(obj.position, offset, obj.protein.Length())
  return track.SymbolsRegion(p1, p2)
}

// TrackValue returns the value of the given track at the position of the
// site.
func (obj *Site) TrackValue(name string) (float64, error) {
  track, err := obj.protein.Track(name, FailOnMissing)
  if err != nil {
    return 0, err
  }
  return track.Value(obj.position)
}

// TrackSymbol returns the symbol of the given track at the position of the
// site.
func (obj *Site) TrackSymbol(name string) (string, error) {
  track, err := obj.protein.Track(name, FailOnMissing)
  if err != nil {
    return "", err
  }
  return track.Symbol(obj.position)
}

/* attributes
 * -------------------------------------------------------------------------- */

func (obj *Site) AddAttribute(name string, value interface{}, policy DuplicatePolicy) error {
  return obj.attributes.add(obj.context(), name, value, policy)
}

func (obj *Site) Attribute(name string, policy MissingPolicy) (interface{}, error) {
  return obj.attributes.get(obj.context(), name, policy)
}

func (obj *Site) RemoveAttribute(name string, policy MissingPolicy) error {
  return obj.attributes.remove(obj.context(), name, policy)
}

func (obj *Site) AttributeNames() []string {
  return obj.attributes.Keys()
}

/* -------------------------------------------------------------------------- */

func (obj *Site) context() string {
  return fmt.Sprintf("site `%s' at position %d of protein `%s'", obj.siteType, obj.position, obj.protein.uniqueID)
}

func (obj *Site) String() string {
  return obj.context()
}
