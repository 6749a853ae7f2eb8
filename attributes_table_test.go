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

func TestAttributesTable1(t *testing.T) {

  table := "# attributes table\n" +
    "P00001\tsource:swissprot\ttaxon:9606\n" +
    "P00001\ttaxon:10090\tgene:tp53\n" +
    "P00002\n"

  records, err := ReadAttributesTable(strings.NewReader(table))
  if err != nil {
    t.Error(err)
  }
  // lines without attributes are skipped, repeated unique IDs are merged
  // and later lines win
  if len(records) != 1 {
    t.Error("TestAttributesTable1 failed!")
  }
  attributes := records["P00001"]
  if len(attributes) != 3 {
    t.Error("TestAttributesTable1 failed!")
  }
  if attributes["taxon"] != "10090" || attributes["gene"] != "tp53" {
    t.Error("TestAttributesTable1 failed!")
  }
}

func TestAttributesTable2(t *testing.T) {

  proteome := EmptyProteome()
  proteome.AddProtein("MSSVQ", "protein one", "P00001", nil, FailOnDuplicate)
  proteome.AddProtein("GGGHH", "protein two", "P00002", nil, FailOnDuplicate)

  table := "P00001\tsource:swissprot\n" +
    "P99999\tsource:swissprot\n"

  if err := proteome.ReadProteinAttributes(strings.NewReader(table), FailOnDuplicate); err != nil {
    t.Error(err)
  }
  protein, _ := proteome.Protein("P00001", FailOnMissing)
  if value, err := protein.Attribute("source", FailOnMissing); err != nil || value != "swissprot" {
    t.Error("TestAttributesTable2 failed!")
  }
  // adding the same attribute again fails unless duplicates may be
  // overwritten
  if err := proteome.ReadProteinAttributes(strings.NewReader(table), FailOnDuplicate); err == nil {
    t.Error("TestAttributesTable2 failed!")
  }
  if err := proteome.ReadProteinAttributes(strings.NewReader("P00001\tsource:uniprot\n"), OverwriteDuplicate); err != nil {
    t.Error(err)
  }
  if value, _ := protein.Attribute("source", FailOnMissing); value != "uniprot" {
    t.Error("TestAttributesTable2 failed!")
  }
  // proteins without attributes are omitted from the output
  buffer := new(bytes.Buffer)
  if err := proteome.WriteProteinAttributes(buffer); err != nil {
    t.Error(err)
  }
  if strings.TrimSpace(buffer.String()) != "P00001\tsource:uniprot" {
    t.Error("TestAttributesTable2 failed!")
  }
}
