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

/* -------------------------------------------------------------------------- */

// ReadDomainsTable parses a domains table and returns the records grouped by
// protein unique ID. Each line has the format
//
//   unique_ID <tab> start <tab> end <tab> domain_type [<tab> key_1:value_1 ...]
//
func ReadDomainsTable(r io.Reader) (map[string][]DomainRecord, error) {
  scanner := bufio.NewScanner(r)
  records := map[string][]DomainRecord{}

  for i := 1; scanner.Scan(); i++ {
    line := scanner.Text()
    if len(line) == 0 || isCommentLine(line) {
      continue
    }
    fields := splitTableLine(line)
    if len(fields) < 4 {
      return nil, fmt.Errorf("parsing domains table failed at line `%d': expected at least four columns", i)
    }
    start, err := strconv.ParseInt(fields[1], 10, 64)
    if err != nil {
      return nil, fmt.Errorf("parsing `start' column failed at line `%d': %v", i, err)
    }
    end, err := strconv.ParseInt(fields[2], 10, 64)
    if err != nil {
      return nil, fmt.Errorf("parsing `end' column failed at line `%d': %v", i, err)
    }
    attributes, err := parseAttributes(fields[4:], i)
    if err != nil {
      return nil, fmt.Errorf("parsing domains table failed: %v", err)
    }
    records[fields[0]] = append(records[fields[0]], DomainRecord{
      Start     : int(start),
      End       : int(end),
      DomainType: fields[3],
      Attributes: attributes })
  }
  return records, scanner.Err()
}

// ReadDomains parses a domains table and adds all records to the proteome.
// Records whose unique ID does not occur in the proteome are skipped.
func (obj *Proteome) ReadDomains(r io.Reader, policy DuplicatePolicy, autoname bool) error {
  records, err := ReadDomainsTable(r)
  if err != nil {
    return err
  }
  return obj.AddDomains(records, policy, autoname)
}

func (obj *Proteome) ImportDomains(filename string, policy DuplicatePolicy, autoname bool) error {
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
  return obj.ReadDomains(reader, policy, autoname)
}

/* -------------------------------------------------------------------------- */

// WriteDomains exports all domains as a domains table. Proteins appear in
// the order they were added, domains are sorted by start position.
func (obj *Proteome) WriteDomains(w io.Writer) error {
  for _, uniqueID := range obj.uniqueIDs {
    for _, domain := range obj.records[uniqueID].Domains() {
      if _, err := fmt.Fprintf(w, "%s\t%d\t%d\t%s%s\n", uniqueID, domain.start, domain.end, cleanString(domain.domainType), attributesString(domain.attributes)); err != nil {
        return err
      }
    }
  }
  return nil
}

func (obj *Proteome) ExportDomains(filename string, compress bool) error {
  var buffer bytes.Buffer

  w := bufio.NewWriter(&buffer)
  if err := obj.WriteDomains(w); err != nil {
    return err
  }
  w.Flush()

  return writeFile(filename, &buffer, compress)
}
