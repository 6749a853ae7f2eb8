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

// A Proteome is an ordered collection of proteins indexed by unique ID. The
// proteome owns all proteins and their annotations and keeps reference
// counted registries of every domain type, site type and track name in use.
// A track name is pinned to the kind it was first registered with, since two
// tracks sharing a name but not a kind are almost always an annotation
// error.
type Proteome struct {
  records     map[string]*Protein
  uniqueIDs   []string
  attributes  Attributes
  domainTypes map[string]int
  siteTypes   map[string]int
  trackNames  map[string]int
  trackKinds  map[string]TrackKind
}

// ProteinRecord is the plain representation of a protein used for batch
// construction. Sequence and UniqueID are mandatory.
type ProteinRecord struct {
  UniqueID   string
  Name       string
  Sequence   string
  Attributes Attributes
}

/* constructors
 * -------------------------------------------------------------------------- */

// EmptyProteome creates a proteome without any proteins.
func EmptyProteome() *Proteome {
  return &Proteome{
    records    : map[string]*Protein{},
    uniqueIDs  : []string{},
    attributes : Attributes{},
    domainTypes: map[string]int{},
    siteTypes  : map[string]int{},
    trackNames : map[string]int{},
    trackKinds : map[string]TrackKind{} }
}

// NewProteome creates a proteome from the given protein records. Duplicate
// unique IDs within the batch are an error.
func NewProteome(records []ProteinRecord) (*Proteome, error) {
  proteome := EmptyProteome()
  if err := proteome.AddProteins(records, FailOnDuplicate); err != nil {
    return nil, err
  }
  return proteome, nil
}

/* -------------------------------------------------------------------------- */

// AddProtein adds a single protein to the proteome. With duplicate policy
// OverwriteDuplicate an existing protein with the same unique ID is removed
// first, together with all its annotations.
func (obj *Proteome) AddProtein(sequence, name, uniqueID string, attributes Attributes, policy DuplicatePolicy) (*Protein, error) {
  if uniqueID == "" {
    return nil, newEmptyConstructError("proteome: protein `%s' has an empty unique ID", name)
  }
  if sequence == "" {
    return nil, newEmptyConstructError("proteome: protein `%s' has an empty sequence", uniqueID)
  }
  if _, ok := obj.records[uniqueID]; ok {
    if policy == FailOnDuplicate {
      return nil, newDuplicateNameError("proteome: protein `%s' already exists", uniqueID)
    }
    if err := obj.RemoveProtein(uniqueID, FailOnMissing); err != nil {
      return nil, err
    }
  }
  protein := newProtein(obj, sequence, name, uniqueID, attributes)
  obj.records[uniqueID] = protein
  obj.uniqueIDs = append(obj.uniqueIDs, uniqueID)
  return protein, nil
}

func constructionDiagnostic(record ProteinRecord) []string {
  d := []string{}
  if record.Sequence == "" {
    d = append(d, "sequence: FAILED (empty)")
  } else {
    d = append(d, fmt.Sprintf("sequence: %s", record.Sequence))
  }
  d = append(d, fmt.Sprintf("name: %s", record.Name))
  if record.UniqueID == "" {
    d = append(d, "unique ID: FAILED (empty)")
  } else {
    d = append(d, fmt.Sprintf("unique ID: %s", record.UniqueID))
  }
  d = append(d, fmt.Sprintf("attributes: %v", record.Attributes))
  return d
}

// AddProteins adds a batch of protein records to the proteome. A malformed
// record causes a ConstructionError whose diagnostic reports the state of
// every field of the offending record.
func (obj *Proteome) AddProteins(records []ProteinRecord, policy DuplicatePolicy) error {
  for i, record := range records {
    if record.Sequence == "" || record.UniqueID == "" {
      return ConstructionError{
        Message   : fmt.Sprintf("proteome: cannot construct protein from record %d", i),
        Index     : i,
        Diagnostic: constructionDiagnostic(record) }
    }
    if _, err := obj.AddProtein(record.Sequence, record.Name, record.UniqueID, record.Attributes, policy); err != nil {
      return err
    }
  }
  return nil
}

// AddProteinCopies adds deep copies of the given proteins, including all
// their annotations. The proteins may belong to a different proteome.
func (obj *Proteome) AddProteinCopies(policy DuplicatePolicy, proteins ...*Protein) error {
  for _, protein := range proteins {
    clone, err := obj.AddProtein(protein.Sequence(), protein.name, protein.uniqueID, protein.attributes, policy)
    if err != nil {
      return err
    }
    for _, domain := range protein.Domains() {
      if _, err := clone.AddDomain(domain.start, domain.end, domain.domainType, domain.attributes, FailOnDuplicate, false); err != nil {
        return err
      }
    }
    for _, site := range protein.Sites() {
      s, err := clone.AddSite(site.position, site.siteType)
      if err != nil {
        return err
      }
      if site.hasSymbol {
        s.SetSymbol(site.symbol)
      }
      if site.hasValue {
        s.SetValue(site.value)
      }
      for name, value := range site.attributes {
        s.attributes[name] = value
      }
    }
    for _, name := range protein.TrackNames() {
      track := protein.tracks[name]
      var t *Track
      if track.values != nil {
        t, err = clone.AddTrack(name, append([]float64{}, track.values[1:]...), nil, FailOnDuplicate)
      } else {
        t, err = clone.AddTrack(name, nil, append([]string{}, track.symbols[1:]...), FailOnDuplicate)
      }
      if err != nil {
        return err
      }
      for name, value := range track.attributes {
        t.attributes[name] = value
      }
    }
  }
  return nil
}

/* -------------------------------------------------------------------------- */

// Protein returns the protein with the given unique ID. With missing policy
// IgnoreMissing the result is nil if no such protein exists.
func (obj *Proteome) Protein(uniqueID string, policy MissingPolicy) (*Protein, error) {
  if protein, ok := obj.records[uniqueID]; ok {
    return protein, nil
  }
  if policy == IgnoreMissing {
    return nil, nil
  }
  return nil, newMissingEntityError("proteome: protein `%s' not found", uniqueID)
}

func (obj *Proteome) Has(uniqueID string) bool {
  _, ok := obj.records[uniqueID]
  return ok
}

// Proteins returns the unique IDs of all proteins in the order they were
// added.
func (obj *Proteome) Proteins() []string {
  return append([]string{}, obj.uniqueIDs...)
}

// Length returns the number of proteins.
func (obj *Proteome) Length() int {
  return len(obj.records)
}

// RemoveProtein removes the protein with the given unique ID and deregisters
// all its annotations, so that the type registries reflect only the proteins
// that remain.
func (obj *Proteome) RemoveProtein(uniqueID string, policy MissingPolicy) error {
  protein, ok := obj.records[uniqueID]
  if !ok {
    if policy == IgnoreMissing {
      return nil
    }
    return newMissingEntityError("proteome: protein `%s' not found", uniqueID)
  }
  for _, domain := range protein.domains {
    obj.deregisterDomainType(domain.domainType)
  }
  for _, sites := range protein.sites {
    for _, site := range sites {
      obj.deregisterSiteType(site.siteType)
    }
  }
  for name, _ := range protein.tracks {
    obj.deregisterTrack(name)
  }
  delete(obj.records, uniqueID)
  for i, uid := range obj.uniqueIDs {
    if uid == uniqueID {
      obj.uniqueIDs = append(obj.uniqueIDs[:i:i], obj.uniqueIDs[i+1:]...)
      break
    }
  }
  return nil
}

func (obj *Proteome) RemoveProteins(uniqueIDs []string, policy MissingPolicy) error {
  for _, uniqueID := range uniqueIDs {
    if err := obj.RemoveProtein(uniqueID, policy); err != nil {
      return err
    }
  }
  return nil
}

/* registries
 * -------------------------------------------------------------------------- */

func (obj *Proteome) registerDomainType(domainType string) {
  obj.domainTypes[domainType]++
}

func (obj *Proteome) deregisterDomainType(domainType string) {
  n, ok := obj.domainTypes[domainType]
  if !ok {
    panic(fmt.Sprintf("deregisterDomainType(): domain type `%s' is not registered", domainType))
  }
  if n == 1 {
    delete(obj.domainTypes, domainType)
  } else {
    obj.domainTypes[domainType] = n-1
  }
}

func (obj *Proteome) registerSiteType(siteType string) {
  obj.siteTypes[siteType]++
}

func (obj *Proteome) deregisterSiteType(siteType string) {
  n, ok := obj.siteTypes[siteType]
  if !ok {
    panic(fmt.Sprintf("deregisterSiteType(): site type `%s' is not registered", siteType))
  }
  if n == 1 {
    delete(obj.siteTypes, siteType)
  } else {
    obj.siteTypes[siteType] = n-1
  }
}

func (obj *Proteome) registerTrack(name string, kind TrackKind) error {
  if n, ok := obj.trackNames[name]; ok {
    if obj.trackKinds[name] != kind {
      return newDuplicateNameError("proteome: track name `%s' is registered as a %s track and cannot be reused as a %s track", name, obj.trackKinds[name], kind)
    }
    obj.trackNames[name] = n+1
  } else {
    obj.trackNames[name] = 1
    obj.trackKinds [name] = kind
  }
  return nil
}

func (obj *Proteome) deregisterTrack(name string) {
  n, ok := obj.trackNames[name]
  if !ok {
    panic(fmt.Sprintf("deregisterTrack(): track name `%s' is not registered", name))
  }
  if n == 1 {
    delete(obj.trackNames, name)
    delete(obj.trackKinds, name)
  } else {
    obj.trackNames[name] = n-1
  }
}

/* -------------------------------------------------------------------------- */

// UniqueDomainTypes returns all domain types in use, in lexicographic order.
func (obj *Proteome) UniqueDomainTypes() []string {
  types := []string{}
  for domainType, _ := range obj.domainTypes {
    types = append(types, domainType)
  }
  sort.Strings(types)
  return types
}

// UniqueSiteTypes returns all site types in use, in lexicographic order.
func (obj *Proteome) UniqueSiteTypes() []string {
  types := []string{}
  for siteType, _ := range obj.siteTypes {
    types = append(types, siteType)
  }
  sort.Strings(types)
  return types
}

// UniqueTrackNames returns all track names in use, in lexicographic order.
func (obj *Proteome) UniqueTrackNames() []string {
  names := []string{}
  for name, _ := range obj.trackNames {
    names = append(names, name)
  }
  sort.Strings(names)
  return names
}

// TrackKinds returns a copy of the mapping from track names to the kind
// they are pinned to.
func (obj *Proteome) TrackKinds() map[string]TrackKind {
  kinds := map[string]TrackKind{}
  for name, kind := range obj.trackKinds {
    kinds[name] = kind
  }
  return kinds
}

/* -------------------------------------------------------------------------- */

// Domains returns the domains of all proteins, in protein insertion order
// and sorted by start position within each protein.
func (obj *Proteome) Domains() []*Domain {
  domains := []*Domain{}
  for _, uniqueID := range obj.uniqueIDs {
    domains = append(domains, obj.records[uniqueID].Domains()...)
  }
  return domains
}

// Sites returns the sites of all proteins, in protein insertion order and
// sorted by position within each protein.
func (obj *Proteome) Sites() []*Site {
  sites := []*Site{}
  for _, uniqueID := range obj.uniqueIDs {
    sites = append(sites, obj.records[uniqueID].Sites()...)
  }
  return sites
}

// DomainsByType returns the domains of all proteins matching the given
// domain type.
func (obj *Proteome) DomainsByType(domainType string, perfectMatch bool) []*Domain {
  domains := []*Domain{}
  for _, uniqueID := range obj.uniqueIDs {
    for _, domain := range obj.records[uniqueID].Domains() {
      if perfectMatch {
        if domain.domainType == domainType {
          domains = append(domains, domain)
        }
      } else {
        if strings.Contains(domain.domainType, domainType) {
          domains = append(domains, domain)
        }
      }
    }
  }
  return domains
}

// SitesByType returns the sites of all proteins whose site type is one of
// the given types.
func (obj *Proteome) SitesByType(siteTypes ...string) []*Site {
  sites := []*Site{}
  for _, uniqueID := range obj.uniqueIDs {
    for _, site := range obj.records[uniqueID].Sites() {
      if siteTypeMatch(site.siteType, siteTypes) {
        sites = append(sites, site)
      }
    }
  }
  return sites
}

func (obj *Proteome) NumDomains() int {
  n := 0
  for _, protein := range obj.records {
    n += len(protein.domains)
  }
  return n
}

func (obj *Proteome) NumSites() int {
  n := 0
  for _, protein := range obj.records {
    n += protein.NumSites()
  }
  return n
}

func (obj *Proteome) NumTracks() int {
  n := 0
  for _, protein := range obj.records {
    n += len(protein.tracks)
  }
  return n
}

/* batch annotation
 * -------------------------------------------------------------------------- */

// AddDomains adds domain records indexed by protein unique ID. Records for
// unique IDs not present in the proteome are skipped, since annotations
// frequently cover more proteins than were loaded.
func (obj *Proteome) AddDomains(records map[string][]DomainRecord, policy DuplicatePolicy, autoname bool) error {
  uniqueIDs := []string{}
  for uniqueID, _ := range records {
    uniqueIDs = append(uniqueIDs, uniqueID)
  }
  sort.Strings(uniqueIDs)
  for _, uniqueID := range uniqueIDs {
    protein, ok := obj.records[uniqueID]
    if !ok {
      continue
    }
    for _, record := range records[uniqueID] {
      if _, err := protein.AddDomain(record.Start, record.End, record.DomainType, record.Attributes, policy, autoname); err != nil {
        return err
      }
    }
  }
  return nil
}

// AddSites adds site records indexed by protein unique ID. Records for
// unique IDs not present in the proteome are skipped.
func (obj *Proteome) AddSites(records map[string][]SiteRecord) error {
  uniqueIDs := []string{}
  for uniqueID, _ := range records {
    uniqueIDs = append(uniqueIDs, uniqueID)
  }
  sort.Strings(uniqueIDs)
  for _, uniqueID := range uniqueIDs {
    protein, ok := obj.records[uniqueID]
    if !ok {
      continue
    }
    for _, record := range records[uniqueID] {
      site, err := protein.AddSite(record.Position, record.SiteType)
      if err != nil {
        return err
      }
      if record.Symbol != nil {
        site.SetSymbol(*record.Symbol)
      }
      if record.Value != nil {
        site.SetValue(*record.Value)
      }
      for name, value := range record.Attributes {
        site.attributes[name] = value
      }
    }
  }
  return nil
}

// AddTracks adds track records indexed by protein unique ID. Records for
// unique IDs not present in the proteome are skipped.
func (obj *Proteome) AddTracks(records map[string][]TrackRecord, policy DuplicatePolicy) error {
  uniqueIDs := []string{}
  for uniqueID, _ := range records {
    uniqueIDs = append(uniqueIDs, uniqueID)
  }
  sort.Strings(uniqueIDs)
  for _, uniqueID := range uniqueIDs {
    protein, ok := obj.records[uniqueID]
    if !ok {
      continue
    }
    for _, record := range records[uniqueID] {
      track, err := protein.AddTrack(record.Name, record.Values, record.Symbols, policy)
      if err != nil {
        return err
      }
      for name, value := range record.Attributes {
        track.attributes[name] = value
      }
    }
  }
  return nil
}

// AddProteinAttributes adds protein attributes indexed by protein unique ID.
// Records for unique IDs not present in the proteome are skipped.
func (obj *Proteome) AddProteinAttributes(records map[string]Attributes, policy DuplicatePolicy) error {
  uniqueIDs := []string{}
  for uniqueID, _ := range records {
    uniqueIDs = append(uniqueIDs, uniqueID)
  }
  sort.Strings(uniqueIDs)
  for _, uniqueID := range uniqueIDs {
    protein, ok := obj.records[uniqueID]
    if !ok {
      continue
    }
    for _, name := range records[uniqueID].Keys() {
      if err := protein.AddAttribute(name, records[uniqueID][name], policy); err != nil {
        return err
      }
    }
  }
  return nil
}

/* attributes
 * -------------------------------------------------------------------------- */

func (obj *Proteome) AddAttribute(name string, value interface{}, policy DuplicatePolicy) error {
  return obj.attributes.add("proteome", name, value, policy)
}

func (obj *Proteome) Attribute(name string, policy MissingPolicy) (interface{}, error) {
  return obj.attributes.get("proteome", name, policy)
}

func (obj *Proteome) RemoveAttribute(name string, policy MissingPolicy) error {
  return obj.attributes.remove("proteome", name, policy)
}

func (obj *Proteome) AttributeNames() []string {
  return obj.attributes.Keys()
}
