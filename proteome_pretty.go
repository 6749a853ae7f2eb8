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
import "io"
import "io/ioutil"

/* -------------------------------------------------------------------------- */

func (proteome *Proteome) PrettyPrint(n int) string {
  var buffer bytes.Buffer
  writer := bufio.NewWriter(&buffer)

  uniqueIDs := proteome.uniqueIDs

  sequenceHead := func(protein *Protein) string {
    if protein.Length() > 20 {
      return protein.Sequence()[0:20] + "..."
    }
    return protein.Sequence()
  }
  // compute the width of a single cell
  updateMaxWidth := func(format string, widths []int, j int, args ...interface{}) {
    width, _ := fmt.Fprintf(ioutil.Discard, format, args...)
    if width > widths[j] {
      widths[j] = width
    }
  }
  // compute widths of all cells in row i
  updateMaxWidths := func(i int, widths []int) {
    protein := proteome.records[uniqueIDs[i]]
    updateMaxWidth("%d", widths, 0, i+1)
    updateMaxWidth("%s", widths, 1, protein.uniqueID)
    updateMaxWidth("%s", widths, 2, protein.name)
    updateMaxWidth("%d", widths, 3, protein.Length())
    updateMaxWidth("%d", widths, 4, len(protein.domains))
    updateMaxWidth("%d", widths, 5, protein.NumSites())
    updateMaxWidth("%d", widths, 6, len(protein.tracks))
  }
  printHeader := func(writer io.Writer, format string) {
    fmt.Fprintf(writer, format,
      "", "unique ID", "name", "length", "domains", "sites", "tracks")
    fmt.Fprintf(writer, "  sequence")
  }
  printRow := func(writer io.Writer, format string, i int) {
    protein := proteome.records[uniqueIDs[i]]
    fmt.Fprintf(writer, "\n")
    fmt.Fprintf(writer, format,
      i+1,
      protein.uniqueID,
      protein.name,
      protein.Length(),
      len(protein.domains),
      protein.NumSites(),
      len(protein.tracks))
    fmt.Fprintf(writer, "  %s", sequenceHead(protein))
  }
  applyRows := func(f1 func(i int), f2 func()) {
    if proteome.Length() <= n+1 {
      // apply to all entries
      for i := 0; i < proteome.Length(); i++ { f1(i) }
    } else {
      // apply to first n/2 rows
      for i := 0; i < n/2; i++ { f1(i) }
      // between first and last n/2 rows
      f2()
      // apply to last n/2 rows
      for i := proteome.Length() - n/2; i < proteome.Length(); i++ { f1(i) }
    }
  }
  // maximum column widths
  widths := []int{1, 9, 4, 6, 7, 5, 6}
  // determine column widths
  applyRows(func(i int) { updateMaxWidths(i, widths) }, func() {})
  // generate format strings
  formatRow    := fmt.Sprintf("%%%dd %%%ds %%%ds %%%dd %%%dd %%%dd %%%dd",
    widths[0], widths[1], widths[2], widths[3], widths[4], widths[5], widths[6])
  formatHeader := fmt.Sprintf("%%%ds %%%ds %%%ds %%%ds %%%ds %%%ds %%%ds",
    widths[0], widths[1], widths[2], widths[3], widths[4], widths[5], widths[6])
  // print header
  printHeader(writer, formatHeader)
  // print rows
  applyRows(
    func(i int) {
      printRow(writer, formatRow, i)
    },
    func() {
      fmt.Fprintf(writer, "\n")
      fmt.Fprintf(writer, formatHeader, "", "...", "", "", "", "", "")
    })
  writer.Flush()

  return buffer.String()
}

/* -------------------------------------------------------------------------- */

func (proteome *Proteome) String() string {
  return proteome.PrettyPrint(10)
}
