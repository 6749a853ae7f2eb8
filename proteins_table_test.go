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

func TestProteinsTable1(t *testing.T) {

  table := "# proteins table\n" +
    "P00001\tprotein one\tMSSVQQQPPPPRRV\tsource:swissprot\ttaxon:9606\n" +
    "\n" +
    "P00002\tprotein two\tGGGHHHLLL\n"

  proteome := EmptyProteome()
  if err := proteome.ReadProteins(strings.NewReader(table), FailOnDuplicate); err != nil {
    t.Error(err)
  }
  if proteome.Length() != 2 {
    t.Error("TestProteinsTable1 failed!")
  }
  protein, _ := proteome.Protein("P00001", FailOnMissing)
  if protein.Name() != "protein one" || protein.Sequence() != "MSSVQQQPPPPRRV" {
    t.Error("TestProteinsTable1 failed!")
  }
  if value, err := protein.Attribute("source", FailOnMissing); err != nil || value != "swissprot" {
    t.Error("TestProteinsTable1 failed!")
  }
  // attribute values are imported as strings
  if value, err := protein.Attribute("taxon", FailOnMissing); err != nil || value != "9606" {
    t.Error("TestProteinsTable1 failed!")
  }
  buffer := new(bytes.Buffer)
  if err := proteome.WriteProteins(buffer); err != nil {
    t.Error(err)
  }
  result := EmptyProteome()
  if err := result.ReadProteins(buffer, FailOnDuplicate); err != nil {
    t.Error(err)
  }
  if result.Length() != 2 {
    t.Error("TestProteinsTable1 failed!")
  }
  if uniqueIDs := result.Proteins(); uniqueIDs[0] != "P00001" || uniqueIDs[1] != "P00002" {
    t.Error("TestProteinsTable1 failed!")
  }
  protein, _ = result.Protein("P00001", FailOnMissing)
  if value, err := protein.Attribute("source", FailOnMissing); err != nil || value != "swissprot" {
    t.Error("TestProteinsTable1 failed!")
  }
}

func TestProteinsTable2(t *testing.T) {

  // a unique ID may appear only once per file
  table := "P00001\tprotein one\tMSSVQ\n" +
    "P00001\tprotein one again\tMSSVQ\n"

  proteome := EmptyProteome()
  if err := proteome.ReadProteins(strings.NewReader(table), FailOnDuplicate); err == nil {
    t.Error("TestProteinsTable2 failed!")
  }
}

func TestProteinsTable3(t *testing.T) {

  tables := []string{
    "P00001\tprotein one\n",
    "P00001\tprotein one\tMSSVQ\tnot-a-pair\n" }

  for _, table := range tables {
    proteome := EmptyProteome()
    if err := proteome.ReadProteins(strings.NewReader(table), FailOnDuplicate); err == nil {
      t.Error("TestProteinsTable3 failed!")
    }
  }
}
