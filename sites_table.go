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

// ReadSitesTable parses a sites table and returns the records grouped by
// protein unique ID. Each line has the format
//
//   unique_ID <tab> position <tab> site_type <tab> symbol <tab> value [<tab> key_1:value_1 ...]
//
// where the literal `None' marks a site without a symbol or without a value.
func ReadSitesTable(r io.Reader) (map[string][]SiteRecord, error) {
  scanner := bufio.NewScanner(r)
  records := map[string][]SiteRecord{}

  for i := 1; scanner.Scan(); i++ {
    line := scanner.Text()
    if len(line) == 0 || isCommentLine(line) {
      continue
    }
    fields := splitTableLine(line)
    if len(fields) < 5 {
      return nil, fmt.Errorf("parsing sites table failed at line `%d': expected at least five columns", i)
    }
    position, err := strconv.ParseInt(fields[1], 10, 64)
    if err != nil {
      return nil, fmt.Errorf("parsing `position' column failed at line `%d': %v", i, err)
    }
    record := SiteRecord{
      Position: int(position),
      SiteType: fields[2] }
    if fields[3] != "None" {
      symbol := fields[3]
      record.Symbol = &symbol
    }
    if fields[4] != "None" {
      value, err := strconv.ParseFloat(fields[4], 64)
      if err != nil {
        return nil, fmt.Errorf("parsing `value' column failed at line `%d': %v", i, err)
      }
      record.Value = &value
    }
    if record.Attributes, err = parseAttributes(fields[5:], i); err != nil {
      return nil, fmt.Errorf("parsing sites table failed: %v", err)
    }
    records[fields[0]] = append(records[fields[0]], record)
  }
  return records, scanner.Err()
}

// ReadSites parses a sites table and adds all records to the proteome.
// Records whose unique ID does not occur in the proteome are skipped.
func (obj *Proteome) ReadSites(r io.Reader) error {
  records, err := ReadSitesTable(r)
  if err != nil {
    return err
  }
  return obj.AddSites(records)
}

func (obj *Proteome) ImportSites(filename string) error {
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
  return obj.ReadSites(reader)
}

/* -------------------------------------------------------------------------- */

// WriteSites exports sites as a sites table. Proteins appear in the order
// they were added, sites are sorted by position. If site types are given,
// only sites of matching type are written.
func (obj *Proteome) WriteSites(w io.Writer, siteTypes ...string) error {
  for _, uniqueID := range obj.uniqueIDs {
    protein := obj.records[uniqueID]
    for _, position := range protein.SitePositions() {
      for _, site := range protein.sites[position] {
        if !siteTypeMatch(site.siteType, siteTypes) {
          continue
        }
        symbol := "None"
        value  := "None"
        if s, ok := site.Symbol(); ok {
          symbol = cleanString(s)
        }
        if v, ok := site.Value(); ok {
          value = strconv.FormatFloat(v, 'g', -1, 64)
        }
        if _, err := fmt.Fprintf(w, "%s\t%d\t%s\t%s\t%s%s\n", uniqueID, site.position, cleanString(site.siteType), symbol, value, attributesString(site.attributes)); err != nil {
          return err
        }
      }
    }
  }
  return nil
}

func (obj *Proteome) ExportSites(filename string, compress bool, siteTypes ...string) error {
  var buffer bytes.Buffer

  w := bufio.NewWriter(&buffer)
  if err := obj.WriteSites(w, siteTypes...); err != nil {
    return err
  }
  w.Flush()

  return writeFile(filename, &buffer, compress)
}
