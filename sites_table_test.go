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
import   "bytes"
import   "strings"
import   "testing"

/* -------------------------------------------------------------------------- */

func TestSitesTable1(t *testing.T) {

  proteome := EmptyProteome()
  proteome.AddProtein("MSSVQQQPPPPRRV", "protein one", "P00001", nil, FailOnDuplicate)

  table := "# sites table\n" +
    "P00001\t3\tphosphosite\tS\t0.75\tsource:literature\n" +
    "P00001\t7\tmutation\tNone\tNone\n" +
    "P99999\t1\tmutation\tNone\tNone\n"

  if err := proteome.ReadSites(strings.NewReader(table)); err != nil {
    t.Error(err)
  }
  // records with unknown unique IDs are skipped
  if proteome.NumSites() != 2 {
    t.Error("TestSitesTable1 failed!")
  }
  protein, _ := proteome.Protein("P00001", FailOnMissing)
  sites, err := protein.Site(3, FailOnMissing)
  if err != nil {
    t.Error(err)
  }
  if symbol, ok := sites[0].Symbol(); !ok || symbol != "S" {
    t.Error("TestSitesTable1 failed!")
  }
  if value, ok := sites[0].Value(); !ok || value != 0.75 {
    t.Error("TestSitesTable1 failed!")
  }
  sites, _ = protein.Site(7, FailOnMissing)
  if _, ok := sites[0].Symbol(); ok {
    t.Error("TestSitesTable1 failed!")
  }
  if _, ok := sites[0].Value(); ok {
    t.Error("TestSitesTable1 failed!")
  }
  buffer := new(bytes.Buffer)
  if err := proteome.WriteSites(buffer); err != nil {
    t.Error(err)
  }
  // sites without a symbol or value are written as `None'
  if !strings.Contains(buffer.String(), "P00001\t7\tmutation\tNone\tNone\n") {
    t.Error("TestSitesTable1 failed!")
  }
  result := EmptyProteome()
  result.AddProtein("MSSVQQQPPPPRRV", "protein one", "P00001", nil, FailOnDuplicate)
  if err := result.ReadSites(buffer); err != nil {
    t.Error(err)
  }
  if result.NumSites() != 2 {
    t.Error("TestSitesTable1 failed!")
  }
  protein, _ = result.Protein("P00001", FailOnMissing)
  sites, _ = protein.Site(3, FailOnMissing)
  if value, ok := sites[0].Value(); !ok || value != 0.75 {
    t.Error("TestSitesTable1 failed!")
  }
}

func TestSitesTable2(t *testing.T) {

  proteome := EmptyProteome()
  proteome.AddProtein("MSSVQQQPPPPRRV", "protein one", "P00001", nil, FailOnDuplicate)

  protein, _ := proteome.Protein("P00001", FailOnMissing)
  protein.AddSite(3, "phosphosite")
  protein.AddSite(7, "mutation")

  buffer := new(bytes.Buffer)
  if err := proteome.WriteSites(buffer, "mutation"); err != nil {
    t.Error(err)
  }
  lines := strings.Split(strings.TrimSpace(buffer.String()), "\n")
  if len(lines) != 1 || !strings.HasPrefix(lines[0], "P00001\t7\tmutation") {
    t.Error("TestSitesTable2 failed!")
  }
}

func TestSitesTable3(t *testing.T) {

  tables := []string{
    "P00001\t3\tphosphosite\tS\n",
    "P00001\tthree\tphosphosite\tS\t0.75\n",
    "P00001\t3\tphosphosite\tS\thigh\n" }

  for _, table := range tables {
    if _, err := ReadSitesTable(strings.NewReader(table)); err == nil {
      t.Error("TestSitesTable3 failed!")
    }
  }
}
