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

/* -------------------------------------------------------------------------- */

// ReadProteinsTable parses a proteins table. Each line has the format
//
//   unique_ID <tab> name <tab> sequence [<tab> key_1:value_1 ...]
//
// where a unique ID may appear only once per file.
func ReadProteinsTable(r io.Reader) ([]ProteinRecord, error) {
  reader  := bufio.NewReader(r)
  records := []ProteinRecord{}
  seen    := map[string]int{}

  for i := 1; ; i++ {
    line, err := bufioReadLine(reader)
    if err == io.EOF {
      break
    }
    if err != nil {
      return nil, err
    }
    if len(line) == 0 || isCommentLine(line) {
      continue
    }
    fields := splitTableLine(line)
    if len(fields) < 3 {
      return nil, fmt.Errorf("parsing proteins table failed at line `%d': expected at least three columns", i)
    }
    if j, ok := seen[fields[0]]; ok {
      return nil, fmt.Errorf("parsing proteins table failed at line `%d': unique ID `%s' already occurred at line `%d'", i, fields[0], j)
    }
    seen[fields[0]] = i
    attributes, err := parseAttributes(fields[3:], i)
    if err != nil {
      return nil, fmt.Errorf("parsing proteins table failed: %v", err)
    }
    records = append(records, ProteinRecord{
      UniqueID  : fields[0],
      Name      : fields[1],
      Sequence  : fields[2],
      Attributes: attributes })
  }
  return records, nil
}

// ReadProteins parses a proteins table and adds all records to the proteome.
func (obj *Proteome) ReadProteins(r io.Reader, policy DuplicatePolicy) error {
  records, err := ReadProteinsTable(r)
  if err != nil {
    return err
  }
  return obj.AddProteins(records, policy)
}

func (obj *Proteome) ImportProteins(filename string, policy DuplicatePolicy) error {
  var reader io.Reader

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
  return obj.ReadProteins(reader, policy)
}

/* -------------------------------------------------------------------------- */

// WriteProteins exports all proteins as a proteins table in the order they
// were added to the proteome.
func (obj *Proteome) WriteProteins(w io.Writer) error {
  for _, uniqueID := range obj.uniqueIDs {
    protein := obj.records[uniqueID]
    if _, err := fmt.Fprintf(w, "%s\t%s\t%s", protein.uniqueID, cleanString(protein.name), protein.Sequence()); err != nil {
      return err
    }
    if _, err := fmt.Fprintf(w, "%s\n", attributesString(protein.attributes)); err != nil {
      return err
    }
  }
  return nil
}

func (obj *Proteome) ExportProteins(filename string, compress bool) error {
  var buffer bytes.Buffer

  w := bufio.NewWriter(&buffer)
  if err := obj.WriteProteins(w); err != nil {
    return err
  }
  w.Flush()

  return writeFile(filename, &buffer, compress)
}
