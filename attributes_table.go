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

// ReadAttributesTable parses a protein attributes table and returns the
// attributes grouped by protein unique ID. Each line has the format
//
//   unique_ID <tab> key_1:value_1 [<tab> key_2:value_2 ...]
//
// Lines without any key:value pair are skipped. If a unique ID occurs on
// several lines, the attributes are merged and later lines win.
func ReadAttributesTable(r io.Reader) (map[string]Attributes, error) {
  scanner := bufio.NewScanner(r)
  records := map[string]Attributes{}

  for i := 1; scanner.Scan(); i++ {
    line := scanner.Text()
    if len(line) == 0 || isCommentLine(line) {
      continue
    }
    fields := splitTableLine(line)
    if len(fields) < 2 {
      continue
    }
    attributes, err := parseAttributes(fields[1:], i)
    if err != nil {
      return nil, fmt.Errorf("parsing attributes table failed: %v", err)
    }
    if record, ok := records[fields[0]]; ok {
      for name, value := range attributes {
        record[name] = value
      }
    } else {
      records[fields[0]] = attributes
    }
  }
  return records, scanner.Err()
}

// ReadProteinAttributes parses a protein attributes table and adds all
// attributes to the respective proteins. Records whose unique ID does not
// occur in the proteome are skipped.
func (obj *Proteome) ReadProteinAttributes(r io.Reader, policy DuplicatePolicy) error {
  records, err := ReadAttributesTable(r)
  if err != nil {
    return err
  }
  return obj.AddProteinAttributes(records, policy)
}

func (obj *Proteome) ImportProteinAttributes(filename string, policy DuplicatePolicy) error {
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
  return obj.ReadProteinAttributes(reader, policy)
}

/* -------------------------------------------------------------------------- */

// WriteProteinAttributes exports protein attributes as an attributes table.
// Proteins without attributes are omitted.
func (obj *Proteome) WriteProteinAttributes(w io.Writer) error {
  for _, uniqueID := range obj.uniqueIDs {
    protein := obj.records[uniqueID]
    if len(protein.attributes) == 0 {
      continue
    }
    if _, err := fmt.Fprintf(w, "%s%s\n", uniqueID, attributesString(protein.attributes)); err != nil {
      return err
    }
  }
  return nil
}

func (obj *Proteome) ExportProteinAttributes(filename string, compress bool) error {
  var buffer bytes.Buffer

  w := bufio.NewWriter(&buffer)
  if err := obj.WriteProteinAttributes(w); err != nil {
    return err
  }
  w.Flush()

  return writeFile(filename, &buffer, compress)
}
