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

import "bufio"
import "bytes"
import "fmt"
import "compress/gzip"
import "io"
import "os"
import "strconv"
import "strings"

/* -------------------------------------------------------------------------- */

// UniqueIDFunction derives a protein unique ID from a fasta header. The
// header is passed without the leading `>'.
type UniqueIDFunction func(header string) (string, error)

// UniprotUniqueID extracts the accession from a UniProt fasta header of the
// form `db|ACCESSION|entry'.
func UniprotUniqueID(header string) (string, error) {
  fields := strings.Split(header, "|")
  if len(fields) < 2 {
    return "", fmt.Errorf("header `%s' does not follow the UniProt convention", header)
  }
  return strings.TrimSpace(fields[1]), nil
}

/* -------------------------------------------------------------------------- */

// ReadFasta reads proteins from a fasta file. The full header serves as the
// protein name, while the unique ID is derived from the header with the
// given function. If the function is nil, proteins are numbered in the
// order they appear in the file, starting at zero.
func (obj *Proteome) ReadFasta(reader io.Reader, buildUniqueID UniqueIDFunction, policy DuplicatePolicy) error {
  scanner := bufio.NewScanner(reader)

  // current sequence
  name     := ""
  uniqueID := ""
  seq      := []byte{}
  n        := 0

  for scanner.Scan() {
    line := scanner.Text()
    if len(line) == 0 {
      continue
    }
    if line[0] == '>' {
      // save data from previous entry
      if name != "" {
        if _, err := obj.AddProtein(string(seq), name, uniqueID, nil, policy); err != nil {
          return err
        }
      }
      // header
      name = strings.TrimSpace(line[1:])
      seq  = []byte{}
      if buildUniqueID == nil {
        uniqueID = strconv.Itoa(n)
      } else {
        if id, err := buildUniqueID(name); err != nil {
          return err
        } else {
          uniqueID = id
        }
      }
      n += 1
    } else {
      // data
      if name == "" {
        return fmt.Errorf("ReadFasta(): invalid fasta file")
      }
      // append sequence
      seq = append(seq, strings.TrimSpace(line)...)
    }
  }
  if name != "" {
    if _, err := obj.AddProtein(string(seq), name, uniqueID, nil, policy); err != nil {
      return err
    }
  }
  return nil
}

func (obj *Proteome) ImportFasta(filename string, buildUniqueID UniqueIDFunction, policy DuplicatePolicy) error {

  var reader io.Reader
  // open file
  f, err := os.Open(filename)
  if err != nil {
    return err
  }
  defer f.Close()

  // check if file is gzipped
  if isGzip(filename) {
    g, err := gzip.NewReader(f)
    if err != nil {
      return err
    }
    defer g.Close()
    reader = g
  } else {
    reader = f
  }
  return obj.ReadFasta(reader, buildUniqueID, policy)
}

// NewProteomeFromFasta constructs a proteome from a fasta file.
func NewProteomeFromFasta(filename string, buildUniqueID UniqueIDFunction) (*Proteome, error) {
  proteome := EmptyProteome()
  if err := proteome.ImportFasta(filename, buildUniqueID, FailOnDuplicate); err != nil {
    return nil, err
  }
  return proteome, nil
}

/* -------------------------------------------------------------------------- */

// WriteFasta exports all proteins as a fasta file in the order they were
// added to the proteome. If includeUniqueID is true, headers have the form
// `>name | UID=unique_ID', otherwise the header is the protein name.
func (obj *Proteome) WriteFasta(writer io.Writer, includeUniqueID bool) error {
  for _, uniqueID := range obj.uniqueIDs {
    protein := obj.records[uniqueID]
    seq     := protein.seq[1:]
    if includeUniqueID {
      if _, err := fmt.Fprintf(writer, ">%s | UID=%s\n", protein.name, protein.uniqueID); err != nil {
        return err
      }
    } else {
      if _, err := fmt.Fprintf(writer, ">%s\n", protein.name); err != nil {
        return err
      }
    }
    for i := 0; i < len(seq); i += 80 {
      from := i
      to   := i+80
      if to >= len(seq) {
        to = len(seq)
      }
      if _, err := fmt.Fprintf(writer, "%s\n", seq[from:to]); err != nil {
        return err
      }
    }
  }
  return nil
}

func (obj *Proteome) ExportFasta(filename string, includeUniqueID, compress bool) error {
  var buffer bytes.Buffer

  writer := bufio.NewWriter(&buffer)
  if err := obj.WriteFasta(writer, includeUniqueID); err != nil {
    return err
  }
  writer.Flush()

  return writeFile(filename, &buffer, compress)
}
