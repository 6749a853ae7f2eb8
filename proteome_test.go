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

//import   "fmt"
import   "testing"

/* -------------------------------------------------------------------------- */

func TestProteome1(t *testing.T) {

  records := []ProteinRecord{
    {UniqueID: "P00001", Name: "protein one", Sequence: "MSSVQQQPPPPRRV"},
    {UniqueID: "P00002", Name: "protein two", Sequence: "GGGHHHLLL"} }

  proteome, err := NewProteome(records)
  if err != nil {
    t.Error(err)
  }
  if proteome.Length() != 2 {
    t.Error("TestProteome1 failed!")
  }
  if uniqueIDs := proteome.Proteins(); len(uniqueIDs) != 2 || uniqueIDs[0] != "P00001" || uniqueIDs[1] != "P00002" {
    t.Error("TestProteome1 failed!")
  }
  if !proteome.Has("P00001") || proteome.Has("P99999") {
    t.Error("TestProteome1 failed!")
  }
  if protein, err := proteome.Protein("P00001", FailOnMissing); err != nil || protein.Name() != "protein one" {
    t.Error("TestProteome1 failed!")
  }
  if protein, err := proteome.Protein("P99999", IgnoreMissing); err != nil || protein != nil {
    t.Error("TestProteome1 failed!")
  }
  if _, err := proteome.Protein("P99999", FailOnMissing); err == nil {
    t.Error("TestProteome1 failed!")
  }
  if _, err := proteome.AddProtein("AAA", "duplicate", "P00001", nil, FailOnDuplicate); err == nil {
    t.Error("TestProteome1 failed!")
  }
  if _, err := proteome.AddProtein("AAA", "duplicate", "P00001", nil, OverwriteDuplicate); err != nil {
    t.Error(err)
  }
  if protein, _ := proteome.Protein("P00001", FailOnMissing); protein.Sequence() != "AAA" {
    t.Error("TestProteome1 failed!")
  }
  if proteome.Length() != 2 {
    t.Error("TestProteome1 failed!")
  }
  // proteins cannot be constructed without a unique ID or sequence
  if _, err := proteome.AddProtein("AAA", "x", "", nil, FailOnDuplicate); err == nil {
    t.Error("TestProteome1 failed!")
  }
  if _, err := proteome.AddProtein("", "x", "P00003", nil, FailOnDuplicate); err == nil {
    t.Error("TestProteome1 failed!")
  }
}

func TestProteome2(t *testing.T) {

  records := []ProteinRecord{
    {UniqueID: "P00001", Name: "protein one", Sequence: "MSSVQQQPPPPRRV"},
    {UniqueID: "P00002", Name: "protein two", Sequence: "GGGHHHLLL"} }

  proteome, _ := NewProteome(records)

  protein1, _ := proteome.Protein("P00001", FailOnMissing)
  protein2, _ := proteome.Protein("P00002", FailOnMissing)

  protein1.AddDomain(1, 5, "idr",    nil, FailOnDuplicate, false)
  protein1.AddDomain(1, 5, "idr",    nil, FailOnDuplicate, true)
  protein2.AddDomain(1, 5, "folded", nil, FailOnDuplicate, false)

  protein1.AddSite(3, "phosphosite")
  protein1.AddSite(4, "phosphosite")

  protein1.AddTrack("hydropathy", []float64{1,2,3,4,5,6,7,8,9,10,11,12,13,14}, nil, FailOnDuplicate)
  protein2.AddTrack("hydropathy", []float64{1,2,3,4,5,6,7,8,9},                nil, FailOnDuplicate)

  if types := proteome.UniqueDomainTypes(); len(types) != 2 || types[0] != "folded" || types[1] != "idr" {
    t.Error("TestProteome2 failed!")
  }
  if types := proteome.UniqueSiteTypes(); len(types) != 1 || types[0] != "phosphosite" {
    t.Error("TestProteome2 failed!")
  }
  if names := proteome.UniqueTrackNames(); len(names) != 1 || names[0] != "hydropathy" {
    t.Error("TestProteome2 failed!")
  }
  if kinds := proteome.TrackKinds(); kinds["hydropathy"] != TrackValues {
    t.Error("TestProteome2 failed!")
  }
  if proteome.NumDomains() != 3 || proteome.NumSites() != 2 || proteome.NumTracks() != 2 {
    t.Error("TestProteome2 failed!")
  }
  // removing a protein deregisters all its annotation types
  if err := proteome.RemoveProtein("P00001", FailOnMissing); err != nil {
    t.Error(err)
  }
  if types := proteome.UniqueDomainTypes(); len(types) != 1 || types[0] != "folded" {
    t.Error("TestProteome2 failed!")
  }
  if types := proteome.UniqueSiteTypes(); len(types) != 0 {
    t.Error("TestProteome2 failed!")
  }
  if names := proteome.UniqueTrackNames(); len(names) != 1 {
    t.Error("TestProteome2 failed!")
  }
  if err := proteome.RemoveProtein("P00002", FailOnMissing); err != nil {
    t.Error(err)
  }
  if len(proteome.UniqueDomainTypes()) != 0 || len(proteome.UniqueTrackNames()) != 0 {
    t.Error("TestProteome2 failed!")
  }
  if err := proteome.RemoveProtein("P00001", FailOnMissing); err == nil {
    t.Error("TestProteome2 failed!")
  }
  if err := proteome.RemoveProtein("P00001", IgnoreMissing); err != nil {
    t.Error(err)
  }
}

func TestProteome3(t *testing.T) {

  records := []ProteinRecord{
    {UniqueID: "P00001", Name: "protein one", Sequence: "MSSVQQQPPPPRRV"} }

  proteome, _ := NewProteome(records)

  // records for unknown proteins are skipped
  domains := map[string][]DomainRecord{
    "P00001": {{Start: 1, End: 5, DomainType: "idr"}},
    "P99999": {{Start: 1, End: 5, DomainType: "idr"}} }
  if err := proteome.AddDomains(domains, FailOnDuplicate, false); err != nil {
    t.Error(err)
  }
  if proteome.NumDomains() != 1 {
    t.Error("TestProteome3 failed!")
  }
  symbol := "S"
  value  := 0.75
  sites := map[string][]SiteRecord{
    "P00001": {{Position: 3, SiteType: "phosphosite", Symbol: &symbol, Value: &value}},
    "P99999": {{Position: 3, SiteType: "phosphosite"}} }
  if err := proteome.AddSites(sites); err != nil {
    t.Error(err)
  }
  if proteome.NumSites() != 1 {
    t.Error("TestProteome3 failed!")
  }
  tracks := map[string][]TrackRecord{
    "P00001": {{Name: "hydropathy", Values: []float64{1,2,3,4,5,6,7,8,9,10,11,12,13,14}}},
    "P99999": {{Name: "hydropathy", Values: []float64{1,2,3}}} }
  if err := proteome.AddTracks(tracks, FailOnDuplicate); err != nil {
    t.Error(err)
  }
  if proteome.NumTracks() != 1 {
    t.Error("TestProteome3 failed!")
  }
  attributes := map[string]Attributes{
    "P00001": {"source": "swissprot"},
    "P99999": {"source": "trembl"} }
  if err := proteome.AddProteinAttributes(attributes, FailOnDuplicate); err != nil {
    t.Error(err)
  }
  protein, _ := proteome.Protein("P00001", FailOnMissing)
  if value, err := protein.Attribute("source", FailOnMissing); err != nil || value != "swissprot" {
    t.Error("TestProteome3 failed!")
  }
  site := proteome.Sites()[0]
  if symbol, ok := site.Symbol(); !ok || symbol != "S" {
    t.Error("TestProteome3 failed!")
  }
  if value, ok := site.Value(); !ok || value != 0.75 {
    t.Error("TestProteome3 failed!")
  }
}

func TestProteome4(t *testing.T) {

  records := []ProteinRecord{
    {UniqueID: "P00001", Name: "protein one", Sequence: "MSSVQ"},
    {UniqueID: "P00002", Name: "protein two", Sequence: ""} }

  _, err := NewProteome(records)
  if err == nil {
    t.Error("TestProteome4 failed!")
  }
  // the error must point at the malformed record
  if cerr, ok := err.(ConstructionError); !ok || cerr.Index != 1 || len(cerr.Diagnostic) == 0 {
    t.Error("TestProteome4 failed!")
  }
}

func TestProteome5(t *testing.T) {

  records := []ProteinRecord{
    {UniqueID: "P00001", Name: "protein one", Sequence: "MSSVQQQPPPPRRV"} }

  proteome1, _ := NewProteome(records)

  protein, _ := proteome1.Protein("P00001", FailOnMissing)
  protein.AddDomain(1, 5, "idr", nil, FailOnDuplicate, false)
  site, _ := protein.AddSite(3, "phosphosite")
  site.SetValue(0.75)
  protein.AddTrack("hydropathy", []float64{1,2,3,4,5,6,7,8,9,10,11,12,13,14}, nil, FailOnDuplicate)

  proteome2 := EmptyProteome()
  if err := proteome2.AddProteinCopies(FailOnDuplicate, protein); err != nil {
    t.Error(err)
  }
  clone, err := proteome2.Protein("P00001", FailOnMissing)
  if err != nil {
    t.Error(err)
  }
  if clone.Sequence() != protein.Sequence() {
    t.Error("TestProteome5 failed!")
  }
  if len(clone.Domains()) != 1 || clone.NumSites() != 1 || len(clone.TrackNames()) != 1 {
    t.Error("TestProteome5 failed!")
  }
  if value, ok := clone.Sites()[0].Value(); !ok || value != 0.75 {
    t.Error("TestProteome5 failed!")
  }
  if types := proteome2.UniqueDomainTypes(); len(types) != 1 || types[0] != "idr" {
    t.Error("TestProteome5 failed!")
  }
  // the copy must be independent of the original
  clone.AddSite(5, "mutation")
  if protein.NumSites() != 1 {
    t.Error("TestProteome5 failed!")
  }
  if len(proteome1.UniqueSiteTypes()) != 1 {
    t.Error("TestProteome5 failed!")
  }
}
