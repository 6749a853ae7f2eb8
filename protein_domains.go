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
import "strings"

/* -------------------------------------------------------------------------- */

// OverlapMode selects the predicate used by DomainsByRange. OverlapInternal
// requires the query range to lie entirely within a domain. OverlapStrict in
// addition accepts domains lying entirely within the query range. OverlapAny
// is the most permissive mode and also accepts domains straddling either end
// of the query range.
type OverlapMode int

const (
  OverlapAny      OverlapMode = iota
  OverlapStrict
  OverlapInternal
)

func (mode OverlapMode) String() string {
  switch mode {
  case OverlapAny     : return "overlap"
  case OverlapStrict  : return "overlap-strict"
  case OverlapInternal: return "internal"
  default             : return "unknown"
  }
}

/* -------------------------------------------------------------------------- */

// AddDomain adds a domain covering the closed interval [start, end] to the
// protein. The domain is named {domainType}_{start}_{end}. If the name is
// taken and autoname is true, a numeric suffix is appended until the name is
// unique. Otherwise the duplicate policy decides whether the existing domain
// is kept or replaced.
func (obj *Protein) AddDomain(start, end int, domainType string, attributes Attributes, policy DuplicatePolicy, autoname bool) (*Domain, error) {
  if err := obj.checkRegion(start, end); err != nil {
    return nil, err
  }
  name := fmt.Sprintf("%s_%d_%d", domainType, start, end)
  if old, ok := obj.domains[name]; ok {
    if autoname {
      base := name
      for i := 2; ; i++ {
        name = fmt.Sprintf("%s_%d", base, i)
        if _, ok := obj.domains[name]; !ok {
          break
        }
      }
    } else if policy == FailOnDuplicate {
      return nil, newDuplicateNameError("protein `%s': domain `%s' already exists", obj.uniqueID, name)
    } else {
      obj.proteome.deregisterDomainType(old.domainType)
    }
  }
  if attributes == nil {
    attributes = Attributes{}
  } else {
    attributes = attributes.Clone()
  }
  domain := &Domain{name: name, start: start, end: end, domainType: domainType, attributes: attributes, protein: obj}
  obj.domains[name] = domain
  obj.proteome.registerDomainType(domainType)
  return domain, nil
}

// Domain returns the domain with the given name. With missing policy
// IgnoreMissing the result is nil if no such domain exists.
func (obj *Protein) Domain(name string, policy MissingPolicy) (*Domain, error) {
  if domain, ok := obj.domains[name]; ok {
    return domain, nil
  }
  if policy == IgnoreMissing {
    return nil, nil
  }
  return nil, newMissingEntityError("protein `%s': domain `%s' not found", obj.uniqueID, name)
}

// Domains returns all domains of the protein sorted by start position.
func (obj *Protein) Domains() []*Domain {
  domains := []*Domain{}
  for _, domain := range obj.domains {
    domains = append(domains, domain)
  }
  sort.Slice(domains, func(i, j int) bool {
    if domains[i].start != domains[j].start {
      return domains[i].start < domains[j].start
    }
    return domains[i].name < domains[j].name
  })
  return domains
}

// DomainNames returns the names of all domains in lexicographic order.
func (obj *Protein) DomainNames() []string {
  names := []string{}
  for name, _ := range obj.domains {
    names = append(names, name)
  }
  sort.Strings(names)
  return names
}

// RemoveDomain removes the domain with the given name and deregisters its
// domain type.
func (obj *Protein) RemoveDomain(name string, policy MissingPolicy) error {
  domain, ok := obj.domains[name]
  if !ok {
    if policy == IgnoreMissing {
      return nil
    }
    return newMissingEntityError("protein `%s': domain `%s' not found", obj.uniqueID, name)
  }
  delete(obj.domains, name)
  obj.proteome.deregisterDomainType(domain.domainType)
  return nil
}

/* -------------------------------------------------------------------------- */

// DomainsByType returns all domains matching the given domain type, indexed
// by domain name. If perfectMatch is false, it suffices that the domain type
// contains the given string.
func (obj *Protein) DomainsByType(domainType string, perfectMatch bool) map[string]*Domain {
  r := map[string]*Domain{}
  for name, domain := range obj.domains {
    if perfectMatch {
      if domain.domainType == domainType {
        r[name] = domain
      }
    } else {
      if strings.Contains(domain.domainType, domainType) {
        r[name] = domain
      }
    }
  }
  return r
}

// DomainsByRange returns all domains matching the query range [start, end]
// under the given overlap mode, sorted by start position. The wiggle
// parameter widens the query range by the given number of residues on both
// sides, clipped at the ends of the protein.
func (obj *Protein) DomainsByRange(start, end, wiggle int, mode OverlapMode) ([]*Domain, error) {
  if err := obj.checkRegion(start, end); err != nil {
    return nil, err
  }
  if wiggle < 0 {
    return nil, newRangeError("protein `%s': wiggle `%d' is negative", obj.uniqueID, wiggle)
  }
  p1 := iMax(1, start - wiggle)
  p2 := iMin(end + wiggle, obj.Length())

  r := []*Domain{}
  for _, domain := range obj.Domains() {
    valid := false
    // the query range lies entirely within the domain
    if p1 >= domain.start && p2 <= domain.end {
      valid = true
    }
    // the domain lies entirely within the query range
    if !valid && (mode == OverlapStrict || mode == OverlapAny) {
      if p1 <= domain.start && p2 >= domain.end {
        valid = true
      }
    }
    // the query range straddles one of the domain boundaries
    if !valid && mode == OverlapAny {
      if p1 <= domain.start && p2 > domain.start {
        valid = true
      }
      if p1 <= domain.end && p2 > domain.end {
        valid = true
      }
    }
    if valid {
      r = append(r, domain)
    }
  }
  return r, nil
}

// DomainsByPosition returns all domains overlapping the given position
// +/- wiggle.
func (obj *Protein) DomainsByPosition(position, wiggle int) ([]*Domain, error) {
  return obj.DomainsByRange(position, position, wiggle, OverlapAny)
}

// DomainsByPositionAndType returns all domains overlapping the given
// position +/- wiggle whose domain type matches exactly.
func (obj *Protein) DomainsByPositionAndType(position int, domainType string, wiggle int) ([]*Domain, error) {
  domains, err := obj.DomainsByPosition(position, wiggle)
  if err != nil {
    return nil, err
  }
  r := []*Domain{}
  for _, domain := range domains {
    if domain.domainType == domainType {
      r = append(r, domain)
    }
  }
  return r, nil
}
