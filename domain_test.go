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
import   "strings"
import   "testing"

/* -------------------------------------------------------------------------- */

func TestDomain1(t *testing.T) {

  proteome := EmptyProteome()

  protein, _ := proteome.AddProtein("MSSVQQQPPPPRRV", "test protein", "P00001", nil, FailOnDuplicate)

  domain, err := protein.AddDomain(1, 5, "idr", nil, FailOnDuplicate, false)
  if err != nil {
    t.Error(err)
  }
  if domain.Name() != "idr_1_5" || domain.DomainType() != "idr" {
    t.Error("TestDomain1 failed!")
  }
  if domain.Start() != 1 || domain.End() != 5 || domain.Len() != 5 {
    t.Error("TestDomain1 failed!")
  }
  if domain.Sequence() != "MSSVQ" {
    t.Error("TestDomain1 failed!")
  }
  if !domain.Contains(5) || domain.Contains(6) {
    t.Error("TestDomain1 failed!")
  }
  if _, err := protein.AddDomain(1, 5, "idr", nil, FailOnDuplicate, false); err == nil {
    t.Error("TestDomain1 failed!")
  }
  if d, err := protein.AddDomain(1, 5, "idr", nil, FailOnDuplicate, true); err != nil || d.Name() != "idr_1_5_2" {
    t.Error("TestDomain1 failed!")
  }
  if _, err := protein.AddDomain(0, 5, "idr", nil, FailOnDuplicate, false); err == nil {
    t.Error("TestDomain1 failed!")
  }
  if _, err := protein.AddDomain(5, 15, "idr", nil, FailOnDuplicate, false); err == nil {
    t.Error("TestDomain1 failed!")
  }
}

func TestDomain2(t *testing.T) {

  proteome := EmptyProteome()

  protein1, _ := proteome.AddProtein(strings.Repeat("Q", 30), "test protein 1", "P00001", nil, FailOnDuplicate)
  protein2, _ := proteome.AddProtein(strings.Repeat("Q", 30), "test protein 2", "P00002", nil, FailOnDuplicate)

  d1, _ := protein1.AddDomain( 1, 10, "idr",    nil, FailOnDuplicate, false)
  d2, _ := protein1.AddDomain( 6, 15, "idr",    nil, FailOnDuplicate, false)
  d3, _ := protein1.AddDomain(20, 25, "folded", nil, FailOnDuplicate, false)
  d4, _ := protein2.AddDomain( 1, 10, "idr",    nil, FailOnDuplicate, false)

  if ok, err := d1.Overlaps(d2); err != nil || !ok {
    t.Error("TestDomain2 failed!")
  }
  if ok, err := d1.Overlaps(d3); err != nil || ok {
    t.Error("TestDomain2 failed!")
  }
  if f, err := d1.OverlapFraction(d2); err != nil || f != 0.5 {
    t.Error("TestDomain2 failed!")
  }
  if f, err := d2.OverlapFraction(d1); err != nil || f != 0.5 {
    t.Error("TestDomain2 failed!")
  }
  if f, err := d1.OverlapFraction(d1); err != nil || f != 1.0 {
    t.Error("TestDomain2 failed!")
  }
  if f, err := d1.OverlapFraction(d3); err != nil || f != 0.0 {
    t.Error("TestDomain2 failed!")
  }
  if _, err := d1.Overlaps(d4); err == nil {
    t.Error("TestDomain2 failed!")
  }
  if _, err := d1.OverlapFraction(d4); err == nil {
    t.Error("TestDomain2 failed!")
  }
}

func TestDomain3(t *testing.T) {

  proteome := EmptyProteome()

  protein, _ := proteome.AddProtein("MSSVQQQPPP", "test protein", "P00001", nil, FailOnDuplicate)

  domain, _ := protein.AddDomain(3, 7, "idr", nil, FailOnDuplicate, false)

  protein.AddSite(2, "ptm")
  protein.AddSite(5, "ptm")
  protein.AddSite(5, "mutation")

  sites := domain.Sites()
  if len(sites) != 1 || len(sites[5]) != 2 {
    t.Error("TestDomain3 failed!")
  }
  sites = domain.SitesByType("mutation")
  if len(sites) != 1 || len(sites[5]) != 1 {
    t.Error("TestDomain3 failed!")
  }
  if _, err := protein.AddTrack("hydropathy", []float64{1,2,3,4,5,6,7,8,9,10}, nil, FailOnDuplicate); err != nil {
    t.Error(err)
  }
  values, err := domain.TrackValues("hydropathy", FailOnMissing)
  if err != nil {
    t.Error(err)
  }
  if len(values) != 5 || values[0] != 3 || values[4] != 7 {
    t.Error("TestDomain3 failed!")
  }
  if values, err := domain.TrackValues("charge", IgnoreMissing); err != nil || values != nil {
    t.Error("TestDomain3 failed!")
  }
  if _, err := domain.TrackValues("charge", FailOnMissing); err == nil {
    t.Error("TestDomain3 failed!")
  }
}

func TestDomain4(t *testing.T) {

  proteome := EmptyProteome()

  protein, _ := proteome.AddProtein(strings.Repeat("Q", 50), "test protein", "P00001", nil, FailOnDuplicate)

  protein.AddDomain( 5, 20, "idr",    nil, FailOnDuplicate, false)
  protein.AddDomain(15, 30, "folded", nil, FailOnDuplicate, false)
  protein.AddDomain(40, 45, "idr",    nil, FailOnDuplicate, false)

  // query range inside a domain
  if domains, err := protein.DomainsByRange(16, 19, 0, OverlapInternal); err != nil || len(domains) != 2 {
    t.Error("TestDomain4 failed!")
  }
  // domains inside the query range
  if domains, err := protein.DomainsByRange(1, 35, 0, OverlapStrict); err != nil || len(domains) != 2 {
    t.Error("TestDomain4 failed!")
  }
  // any overlap
  if domains, err := protein.DomainsByRange(18, 22, 0, OverlapAny); err != nil || len(domains) != 2 {
    t.Error("TestDomain4 failed!")
  }
  if domains, err := protein.DomainsByRange(31, 39, 0, OverlapAny); err != nil || len(domains) != 0 {
    t.Error("TestDomain4 failed!")
  }
  // the wiggle widens the query range
  if domains, err := protein.DomainsByRange(31, 39, 2, OverlapAny); err != nil || len(domains) != 2 {
    t.Error("TestDomain4 failed!")
  }
  if domains, err := protein.DomainsByPosition(17, 0); err != nil || len(domains) != 2 {
    t.Error("TestDomain4 failed!")
  }
  if domains, err := protein.DomainsByPositionAndType(17, "idr", 0); err != nil || len(domains) != 1 {
    t.Error("TestDomain4 failed!")
  }
  if _, err := protein.DomainsByRange(0, 10, 0, OverlapAny); err == nil {
    t.Error("TestDomain4 failed!")
  }
  if _, err := protein.DomainsByRange(1, 10, -1, OverlapAny); err == nil {
    t.Error("TestDomain4 failed!")
  }
}
