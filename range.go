/* Copyright (C) 2016-2020 Philipp Benner
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

//import "fmt"

/* -------------------------------------------------------------------------- */

type Range struct {
  From, To int
}

/* constructors
 * -------------------------------------------------------------------------- */

// Range identifies a subsequence of a protein. By convention the first
// residue of a protein is numbered 1 and the arguments from, to are
// interpreted as the closed interval [from, to].
func NewRange(from, to int) Range {
  if from > to {
    panic("NewRange(): from > to")
  }
  return Range{from, to}
}

/* -------------------------------------------------------------------------- */

// Number of residues covered by the range. Since ranges are closed
// intervals, a single residue range has length one.
func (r Range) Len() int {
  return r.To - r.From + 1
}

func (r Range) Contains(position int) bool {
  return r.From <= position && position <= r.To
}

func (r Range) Overlaps(s Range) bool {
  return r.From <= s.To && s.From <= r.To
}

func (r Range) Intersection(s Range) Range {
  from := iMax(r.From, s.From)
  to   := iMin(r.To,   s.To)
  // this shouldn't happen if r and s overlap
  if to < from {
    to = from
  }
  return Range{from, to}
}

/* -------------------------------------------------------------------------- */

// InsideRegion reports whether the given position falls within the closed
// interval [start, end]. All region membership tests share this definition.
func InsideRegion(start, end, position int) bool {
  return Range{start, end}.Contains(position)
}

// boundedWindow clips the window [position-offset, position+offset] to the
// valid coordinate range [1, length] of a sequence.
func boundedWindow(position, offset, length int) (int, int) {
  return iMax(1, position-offset), iMin(position+offset, length)
}
