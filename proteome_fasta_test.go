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

func TestFasta1(t *testing.T) {

  proteome, err := NewProteomeFromFasta("proteome_test.fa", UniprotUniqueID)
  if err != nil {
    t.Error(err)
  }
  if proteome.Length() != 2 {
    t.Error("TestFasta1 failed!")
  }
  if uniqueIDs := proteome.Proteins(); uniqueIDs[0] != "P12345" || uniqueIDs[1] != "P67890" {
    t.Error("TestFasta1 failed!")
  }
  protein, _ := proteome.Protein("P12345", FailOnMissing)
  // the full header serves as the protein name
  if protein.Name() != "sp|P12345|TEST1_HUMAN Test protein one OS=Homo sapiens" {
    t.Error("TestFasta1 failed!")
  }
  // sequences may span multiple lines
  if protein.Length() != 100 {
    t.Error("TestFasta1 failed!")
  }
  if residue, err := protein.Residue(100); err != nil || residue != 'E' {
    t.Error("TestFasta1 failed!")
  }
  if region, err := protein.SequenceRegion(1, 10); err != nil || region != "MKTAYIAKQR" {
    t.Error("TestFasta1 failed!")
  }
}

func TestFasta2(t *testing.T) {

  fasta := ">protein one\nMSSVQ\n>protein two\nGGGHH\nHLL\n"

  proteome := EmptyProteome()
  if err := proteome.ReadFasta(strings.NewReader(fasta), nil, FailOnDuplicate); err != nil {
    t.Error(err)
  }
  // without a unique ID function proteins are numbered in order of
  // appearance
  if uniqueIDs := proteome.Proteins(); uniqueIDs[0] != "0" || uniqueIDs[1] != "1" {
    t.Error("TestFasta2 failed!")
  }
  protein, _ := proteome.Protein("1", FailOnMissing)
  if protein.Sequence() != "GGGHHHLL" {
    t.Error("TestFasta2 failed!")
  }
}

func TestFasta3(t *testing.T) {

  proteome, err := NewProteomeFromFasta("proteome_test.fa", UniprotUniqueID)
  if err != nil {
    t.Error(err)
  }
  buffer := new(bytes.Buffer)
  if err := proteome.WriteFasta(buffer, true); err != nil {
    t.Error(err)
  }
  lines := strings.Split(strings.TrimSpace(buffer.String()), "\n")
  if lines[0] != ">sp|P12345|TEST1_HUMAN Test protein one OS=Homo sapiens | UID=P12345" {
    t.Error("TestFasta3 failed!")
  }
  // sequences are wrapped after 80 residues
  if len(lines) != 5 || len(lines[1]) != 80 || len(lines[2]) != 20 {
    t.Error("TestFasta3 failed!")
  }
  result := EmptyProteome()
  if err := result.ReadFasta(buffer, UniprotUniqueID, FailOnDuplicate); err != nil {
    t.Error(err)
  }
  if result.Length() != 2 {
    t.Error("TestFasta3 failed!")
  }
  protein1, _ := proteome.Protein("P12345", FailOnMissing)
  protein2, _ := result.Protein("P12345", FailOnMissing)
  if protein1.Sequence() != protein2.Sequence() {
    t.Error("TestFasta3 failed!")
  }
  buffer.Reset()
  if err := proteome.WriteFasta(buffer, false); err != nil {
    t.Error(err)
  }
  lines = strings.Split(strings.TrimSpace(buffer.String()), "\n")
  if lines[0] != ">sp|P12345|TEST1_HUMAN Test protein one OS=Homo sapiens" {
    t.Error("TestFasta3 failed!")
  }
}

func TestFasta4(t *testing.T) {

  proteome := EmptyProteome()
  // sequence data before the first header
  if err := proteome.ReadFasta(strings.NewReader("MSSVQ\n>protein one\n"), nil, FailOnDuplicate); err == nil {
    t.Error("TestFasta4 failed!")
  }
  // header does not follow the UniProt convention
  if err := proteome.ReadFasta(strings.NewReader(">protein one\nMSSVQ\n"), UniprotUniqueID, FailOnDuplicate); err == nil {
    t.Error("TestFasta4 failed!")
  }
}
