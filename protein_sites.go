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

// an empty list of site types matches every site
func siteTypeMatch(siteType string, siteTypes []string) bool {
  if len(siteTypes) == 0 {
    return true
  }
  for _, t := range siteTypes {
    if siteType == t {
      return true
    }
  }
  return false
}

/* -------------------------------------------------------------------------- */

// AddSite adds a site of the given type at the given position. Any number of
// sites may share a position, hence sites are strictly additive and there is
// no duplicate policy. The optional symbol and value are set on the returned
// site.
func (obj *Protein) AddSite(position int, siteType string) (*Site, error) {
  if err := obj.checkPosition(position); err != nil {
    return nil, err
  }
  site := newSite(obj, position, siteType)
  obj.sites[position] = append(obj.sites[position], site)
  obj.proteome.registerSiteType(siteType)
  return site, nil
}

// Site returns all sites at exactly the given position, in the order they
// were added. With missing policy IgnoreMissing the result is nil if there
// are no sites at the position.
func (obj *Protein) Site(position int, policy MissingPolicy) ([]*Site, error) {
  if err := obj.checkPosition(position); err != nil {
    return nil, err
  }
  if sites, ok := obj.sites[position]; ok {
    return append([]*Site{}, sites...), nil
  }
  if policy == IgnoreMissing {
    return nil, nil
  }
  return nil, newMissingEntityError("protein `%s': no sites found at position %d", obj.uniqueID, position)
}

// SitePositions returns all positions carrying at least one site, in
// ascending order.
func (obj *Protein) SitePositions() []int {
  positions := []int{}
  for position, _ := range obj.sites {
    positions = append(positions, position)
  }
  sort.Ints(positions)
  return positions
}

// Sites returns all sites of the protein ordered by position. Sites sharing
// a position keep the order they were added in.
func (obj *Protein) Sites() []*Site {
  sites := []*Site{}
  for _, position := range obj.SitePositions() {
    sites = append(sites, obj.sites[position]...)
  }
  return sites
}

func (obj *Protein) NumSites() int {
  n := 0
  for _, sites := range obj.sites {
    n += len(sites)
  }
  return n
}

// RemoveSite removes the given site and deregisters its site type. The site
// must belong to this protein. With missing policy IgnoreMissing a nil site
// or a site that was already removed is ignored.
func (obj *Protein) RemoveSite(site *Site, policy MissingPolicy) error {
  if site == nil {
    if policy == IgnoreMissing {
      return nil
    }
    return newMissingEntityError("protein `%s': cannot remove nil site", obj.uniqueID)
  }
  if site.protein != obj {
    return fmt.Errorf("%s does not belong to protein `%s'", site.context(), obj.uniqueID)
  }
  sites, ok := obj.sites[site.position]
  if ok {
    for i, s := range sites {
      if s == site {
        obj.sites[site.position] = append(sites[:i:i], sites[i+1:]...)
        if len(obj.sites[site.position]) == 0 {
          delete(obj.sites, site.position)
        }
        obj.proteome.deregisterSiteType(site.siteType)
        return nil
      }
    }
  }
  if policy == IgnoreMissing {
    return nil
  }
  return newMissingEntityError("%s not found", site.context())
}

/* -------------------------------------------------------------------------- */

func (obj *Protein) sitesInWindow(p1, p2 int) map[int][]*Site {
  r := map[int][]*Site{}
  for position, sites := range obj.sites {
    if p1 <= position && position <= p2 {
      r[position] = append([]*Site{}, sites...)
    }
  }
  return r
}

// SitesByRange returns all sites in the window [max(1, start-wiggle),
// min(end+wiggle, length)], indexed by position.
func (obj *Protein) SitesByRange(start, end, wiggle int) (map[int][]*Site, error) {
  if err := obj.checkRegion(start, end); err != nil {
    return nil, err
  }
  if wiggle < 0 {
    return nil, newRangeError("protein `%s': wiggle `%d' is negative", obj.uniqueID, wiggle)
  }
  p1 := iMax(1, start - wiggle)
  p2 := iMin(end + wiggle, obj.Length())
  return obj.sitesInWindow(p1, p2), nil
}

// SitesByPosition returns all sites at the given position +/- wiggle,
// indexed by position.
func (obj *Protein) SitesByPosition(position, wiggle int) (map[int][]*Site, error) {
  return obj.SitesByRange(position, position, wiggle)
}

// SitesByType returns all sites whose site type is one of the given types,
// indexed by position.
func (obj *Protein) SitesByType(siteTypes ...string) map[int][]*Site {
  r := map[int][]*Site{}
  for position, sites := range obj.sites {
    for _, site := range sites {
      if siteTypeMatch(site.siteType, siteTypes) {
        r[position] = append(r[position], site)
      }
    }
  }
  return r
}

// SitesByTypeAndRange returns all sites in the window [max(1, start-wiggle),
// min(end+wiggle, length)] whose site type is one of the given types,
// indexed by position.
func (obj *Protein) SitesByTypeAndRange(start, end, wiggle int, siteTypes ...string) (map[int][]*Site, error) {
  sites, err := obj.SitesByRange(start, end, wiggle)
  if err != nil {
    return nil, err
  }
  r := map[int][]*Site{}
  for position, list := range sites {
    for _, site := range list {
      if siteTypeMatch(site.siteType, siteTypes) {
        r[position] = append(r[position], site)
      }
    }
  }
  return r, nil
}
