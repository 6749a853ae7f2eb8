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

// A Domain annotates a contiguous region of a protein, given by the closed
// interval [start, end]. Domains are identified by a name that is unique
// within their protein and carry a free form domain type.
type Domain struct {
  name       string
  start      int
  end        int
  domainType string
  attributes Attributes
  protein    *Protein
}

// DomainRecord is the plain representation of a domain used for batch
// construction.
type DomainRecord struct {
  Start      int
  End        int
  DomainType string
  Attributes Attributes
}

/* access methods
 * -------------------------------------------------------------------------- */

func (obj *Domain) Name() string {
  return obj.name
}

func (obj *Domain) Start() int {
  return obj.start
}

func (obj *Domain) End() int {
  return obj.end
}

func (obj *Domain) DomainType() string {
  return obj.domainType
}

func (obj *Domain) Protein() *Protein {
  return obj.protein
}

// Len returns the number of residues covered by the domain.
func (obj *Domain) Len() int {
  return obj.end - obj.start + 1
}

func (obj *Domain) Contains(position int) bool {
  return InsideRegion(obj.start, obj.end, position)
}

// Sequence returns the amino acid sequence covered by the domain. The
// sequence is extracted from the protein on every call so that domains
// observe sequence normalization.
func (obj *Domain) Sequence() string {
  return string(obj.protein.seq[obj.start:obj.end+1])
}

/* -------------------------------------------------------------------------- */

// Overlaps returns true if the two domains share at least one residue. Both
// domains must belong to the same protein.
func (obj *Domain) Overlaps(other *Domain) (bool, error) {
  if obj.protein != other.protein {
    return false, fmt.Errorf("domains `%s' and `%s' belong to different proteins", obj.name, other.name)
  }
  return Range{obj.start, obj.end}.Overlaps(Range{other.start, other.end}), nil
}

// OverlapFraction returns the fraction of this domain that is covered by the
// other domain, i.e. the size of the intersection divided by the length of
// the receiver. The fraction is zero for disjoint domains and one if the
// other domain covers this one entirely. Both domains must belong to the
// same protein.
func (obj *Domain) OverlapFraction(other *Domain) (float64, error) {
  if obj.protein != other.protein {
    return 0, fmt.Errorf("domains `%s' and `%s' belong to different proteins", obj.name, other.name)
  }
  overlap := iMin(obj.end, other.end) - iMax(obj.start, other.start) + 1
  if overlap < 0 {
    overlap = 0
  }
  return float64(overlap)/float64(obj.Len()), nil
}

/* -------------------------------------------------------------------------- */

// Sites returns all sites of the protein that fall within the domain,
// indexed by position.
func (obj *Domain) Sites() map[int][]*Site {
  return obj.protein.sitesInWindow(obj.start, obj.end)
}

// SitesByType returns all sites within the domain whose site type is one of
// the given types, indexed by position.
func (obj *Domain) SitesByType(siteTypes ...string) map[int][]*Site {
  r := map[int][]*Site{}
  for position, sites := range obj.protein.sitesInWindow(obj.start, obj.end) {
    for _, site := range sites {
      if siteTypeMatch(site.siteType, siteTypes) {
        r[position] = append(r[position], site)
      }
    }
  }
  return r
}

/* -------------------------------------------------------------------------- */

// TrackValues returns the values of the given track restricted to the
// domain. With missing policy IgnoreMissing the result is nil if the track
// does not exist.
func (obj *Domain) TrackValues(name string, policy MissingPolicy) ([]float64, error) {
  track, err := obj.protein.Track(name, policy)
  if err != nil {
    return nil, err
  }
  if track == nil {
    return nil, nil
  }
  return track.ValuesRegion(obj.start, obj.end)
}

// TrackSymbols returns the symbols of the given track restricted to the
// domain.
func (obj *Domain) TrackSymbols(name string, policy MissingPolicy) ([]string, error) {
  track, err := obj.protein.Track(name, policy)
  if err != nil {
    return nil, err
  }
  if track == nil {
    return nil, nil
  }
  return track.SymbolsRegion(obj.start, obj.end)
}

/* attributes
 * -------------------------------------------------------------------------- */

func (obj *Domain) AddAttribute(name string, value interface{}, policy DuplicatePolicy) error {
  return obj.attributes.add(obj.context(), name, value, policy)
}

func (obj *Domain) Attribute(name string, policy MissingPolicy) (interface{}, error) {
  return obj.attributes.get(obj.context(), name, policy)
}

func (obj *Domain) RemoveAttribute(name string, policy MissingPolicy) error {
  return obj.attributes.remove(obj.context(), name, policy)
}

func (obj *Domain) AttributeNames() []string {
  return obj.attributes.Keys()
}

/* -------------------------------------------------------------------------- */

func (obj *Domain) context() string {
  return fmt.Sprintf("domain `%s' of protein `%s'", obj.name, obj.protein.uniqueID)
}

func (obj *Domain) String() string {
  return fmt.Sprintf("domain `%s' of type `%s' covering region [%d, %d] of protein `%s'", obj.name, obj.domainType, obj.start, obj.end, obj.protein.uniqueID)
}
