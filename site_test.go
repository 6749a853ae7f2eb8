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

func TestSite1(t *testing.T) {

  proteome := EmptyProteome()

  protein, _ := proteome.AddProtein("MSSVQQQPPPPRRV", "test protein", "P00001", nil, FailOnDuplicate)

  site, err := protein.AddSite(3, "phosphosite")
  if err != nil {
    t.Error(err)
  }
  if site.Position() != 3 || site.SiteType() != "phosphosite" {
    t.Error("TestSite1 failed!")
  }
  if site.Residue() != 'S' {
    t.Error("TestSite1 failed!")
  }
  if _, ok := site.Symbol(); ok {
    t.Error("TestSite1 failed!")
  }
  if _, ok := site.Value(); ok {
    t.Error("TestSite1 failed!")
  }
  site.SetSymbol("S")
  site.SetValue(0.75)
  if symbol, ok := site.Symbol(); !ok || symbol != "S" {
    t.Error("TestSite1 failed!")
  }
  if value, ok := site.Value(); !ok || value != 0.75 {
    t.Error("TestSite1 failed!")
  }
  site.ClearSymbol()
  if _, ok := site.Symbol(); ok {
    t.Error("TestSite1 failed!")
  }
  if s, err := site.SequenceContext(2); err != nil || s != "MSSVQ" {
    t.Error("TestSite1 failed!")
  }
  if _, err := site.SequenceContext(-1); err == nil {
    t.Error("TestSite1 failed!")
  }
  if _, err := protein.AddSite( 0, "phosphosite"); err == nil {
    t.Error("TestSite1 failed!")
  }
  if _, err := protein.AddSite(15, "phosphosite"); err == nil {
    t.Error("TestSite1 failed!")
  }
}

func TestSite2(t *testing.T) {

  proteome := EmptyProteome()

  protein, _ := proteome.AddProtein("MSSVQQQPPPPRRV", "test protein", "P00001", nil, FailOnDuplicate)

  protein.AddSite(3, "phosphosite")
  protein.AddSite(3, "mutation")
  protein.AddSite(7, "phosphosite")

  if sites, err := protein.Site(3, FailOnMissing); err != nil || len(sites) != 2 {
    t.Error("TestSite2 failed!")
  }
  if sites, err := protein.Site(4, IgnoreMissing); err != nil || sites != nil {
    t.Error("TestSite2 failed!")
  }
  if _, err := protein.Site(4, FailOnMissing); err == nil {
    t.Error("TestSite2 failed!")
  }
  if positions := protein.SitePositions(); len(positions) != 2 || positions[0] != 3 || positions[1] != 7 {
    t.Error("TestSite2 failed!")
  }
  if protein.NumSites() != 3 {
    t.Error("TestSite2 failed!")
  }
  if sites := protein.Sites(); len(sites) != 3 || sites[0].Position() != 3 || sites[2].Position() != 7 {
    t.Error("TestSite2 failed!")
  }
  // an empty type list matches all sites
  if sites := protein.SitesByType(); len(sites) != 2 {
    t.Error("TestSite2 failed!")
  }
  if sites := protein.SitesByType("mutation"); len(sites) != 1 || len(sites[3]) != 1 {
    t.Error("TestSite2 failed!")
  }
  if sites, err := protein.SitesByRange(1, 5, 0); err != nil || len(sites) != 1 {
    t.Error("TestSite2 failed!")
  }
  if sites, err := protein.SitesByRange(1, 5, 2); err != nil || len(sites) != 2 {
    t.Error("TestSite2 failed!")
  }
  if sites, err := protein.SitesByPosition(5, 2); err != nil || len(sites) != 2 {
    t.Error("TestSite2 failed!")
  }
  if sites, err := protein.SitesByTypeAndRange(1, 10, 0, "mutation"); err != nil || len(sites) != 1 {
    t.Error("TestSite2 failed!")
  }
}

func TestSite3(t *testing.T) {

  proteome := EmptyProteome()

  protein, _ := proteome.AddProtein("MSSVQQQPPPPRRV", "test protein", "P00001", nil, FailOnDuplicate)

  protein.AddDomain(5, 10, "idr", nil, FailOnDuplicate, false)

  s1, _ := protein.AddSite(7, "phosphosite")
  s2, _ := protein.AddSite(3, "phosphosite")

  if domains, err := s1.Domains(0); err != nil || len(domains) != 1 {
    t.Error("TestSite3 failed!")
  }
  if domains, err := s2.Domains(0); err != nil || len(domains) != 0 {
    t.Error("TestSite3 failed!")
  }
  // widening the domains by two residues captures the second site
  if domains, err := s2.Domains(2); err != nil || len(domains) != 1 {
    t.Error("TestSite3 failed!")
  }
  if _, err := s2.Domains(-1); err == nil {
    t.Error("TestSite3 failed!")
  }
  protein.AddTrack("hydropathy", []float64{1,2,3,4,5,6,7,8,9,10,11,12,13,14}, nil, FailOnDuplicate)

  if value, err := s1.TrackValue("hydropathy"); err != nil || value != 7 {
    t.Error("TestSite3 failed!")
  }
  if values, err := s1.TrackValues("hydropathy", 2, FailOnMissing); err != nil || len(values) != 5 || values[0] != 5 {
    t.Error("TestSite3 failed!")
  }
  if values, err := s1.TrackValues("charge", 2, IgnoreMissing); err != nil || values != nil {
    t.Error("TestSite3 failed!")
  }
  if _, err := s1.TrackValue("charge"); err == nil {
    t.Error("TestSite3 failed!")
  }
}

func TestSite4(t *testing.T) {

  proteome := EmptyProteome()

  protein, _ := proteome.AddProtein("MSSVQQQPPPPRRV", "test protein", "P00001", nil, FailOnDuplicate)

  site, _ := protein.AddSite(3, "phosphosite")
  protein.AddSite(3, "mutation")

  if err := protein.RemoveSite(site, FailOnMissing); err != nil {
    t.Error(err)
  }
  if protein.NumSites() != 1 {
    t.Error("TestSite4 failed!")
  }
  if err := protein.RemoveSite(site, FailOnMissing); err == nil {
    t.Error("TestSite4 failed!")
  }
  if err := protein.RemoveSite(site, IgnoreMissing); err != nil {
    t.Error(err)
  }
  if err := protein.RemoveSite(nil, IgnoreMissing); err != nil {
    t.Error(err)
  }
  if types := proteome.UniqueSiteTypes(); len(types) != 1 || types[0] != "mutation" {
    t.Error("TestSite4 failed!")
  }
}
