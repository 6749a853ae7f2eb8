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

// ReadTracksTable parses a tracks table and returns the records grouped by
// protein unique ID. Each line has the format
//
//   unique_ID <tab> track_name <tab> r_1 <tab> r_2 ... <tab> r_n
//
// with one entry per residue. The kind argument determines whether entries
// are parsed as values or kept as symbols, since the two cases cannot be
// told apart reliably. Lines may exceed the usual scanner limits, hence the
// file is read line by line through a buffered reader.
func ReadTracksTable(r io.Reader, kind TrackKind) (map[string][]TrackRecord, error) {
  reader  := bufio.NewReader(r)
  records := map[string][]TrackRecord{}

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
      return nil, fmt.Errorf("parsing tracks table failed at line `%d': expected at least three columns", i)
    }
    record := TrackRecord{Name: fields[1]}
    switch kind {
    case TrackValues:
      record.Values = make([]float64, len(fields)-2)
      for j := 2; j < len(fields); j++ {
        value, err := strconv.ParseFloat(fields[j], 64)
        if err != nil {
          return nil, fmt.Errorf("parsing track values failed at line `%d': %v", i, err)
        }
        record.Values[j-2] = value
      }
    case TrackSymbols:
      record.Symbols = append([]string{}, fields[2:]...)
    }
    records[fields[0]] = append(records[fields[0]], record)
  }
  return records, nil
}

// ReadTracks parses a tracks table and adds all records to the proteome.
// Records whose unique ID does not occur in the proteome are skipped.
func (obj *Proteome) ReadTracks(r io.Reader, kind TrackKind, policy DuplicatePolicy) error {
  records, err := ReadTracksTable(r, kind)
  if err != nil {
    return err
  }
  return obj.AddTracks(records, policy)
}

func (obj *Proteome) ImportTracks(filename string, kind TrackKind, policy DuplicatePolicy) error {
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
  return obj.ReadTracks(reader, kind, policy)
}

/* -------------------------------------------------------------------------- */

// WriteTracks exports all tracks of the given kind as a tracks table.
// Proteins appear in the order they were added, tracks are sorted by name.
func (obj *Proteome) WriteTracks(w io.Writer, kind TrackKind) error {
  for _, uniqueID := range obj.uniqueIDs {
    for _, track := range obj.records[uniqueID].Tracks() {
      if track.Kind() != kind {
        continue
      }
      if _, err := fmt.Fprintf(w, "%s\t%s", uniqueID, cleanString(track.name)); err != nil {
        return err
      }
      switch kind {
      case TrackValues:
        for _, value := range track.values[1:] {
          if _, err := fmt.Fprintf(w, "\t%s", strconv.FormatFloat(value, 'g', -1, 64)); err != nil {
            return err
          }
        }
      case TrackSymbols:
        for _, symbol := range track.symbols[1:] {
          if _, err := fmt.Fprintf(w, "\t%s", cleanString(symbol)); err != nil {
            return err
          }
        }
      }
      if _, err := fmt.Fprintf(w, "\n"); err != nil {
        return err
      }
    }
  }
  return nil
}

func (obj *Proteome) ExportTracks(filename string, kind TrackKind, compress bool) error {
  var buffer bytes.Buffer

  w := bufio.NewWriter(&buffer)
  if err := obj.WriteTracks(w, kind); err != nil {
    return err
  }
  w.Flush()

  return writeFile(filename, &buffer, compress)
}
