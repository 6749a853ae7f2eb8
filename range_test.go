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
import   "testing"

/* -------------------------------------------------------------------------- */

func TestRange1(t *testing.T) {

  r := NewRange(10, 20)

  if r.Len() != 11 {
    t.Error("TestRange1 failed!")
  }
  if !r.Contains(10) || !r.Contains(15) || !r.Contains(20) {
    t.Error("TestRange1 failed!")
  }
  if r.Contains(9) || r.Contains(21) {
    t.Error("TestRange1 failed!")
  }
  if NewRange(5, 5).Len() != 1 {
    t.Error("TestRange1 failed!")
  }
}

func TestRange2(t *testing.T) {

  r := NewRange(10, 20)
  s := NewRange(20, 30)

  if !r.Overlaps(s) || !s.Overlaps(r) {
    t.Error("TestRange2 failed!")
  }
  if r.Overlaps(NewRange(21, 30)) {
    t.Error("TestRange2 failed!")
  }
  if x := r.Intersection(s); x.From != 20 || x.To != 20 {
    t.Error("TestRange2 failed!")
  }
  if x := r.Intersection(NewRange(12, 40)); x.From != 12 || x.To != 20 {
    t.Error("TestRange2 failed!")
  }
}

func TestRange3(t *testing.T) {

  defer func() {
    if recover() == nil {
      t.Error("TestRange3 failed!")
    }
  }()
  NewRange(20, 10)
}

func TestRange4(t *testing.T) {

  if !InsideRegion(10, 20, 10) || !InsideRegion(10, 20, 20) {
    t.Error("TestRange4 failed!")
  }
  if InsideRegion(10, 20, 9) || InsideRegion(10, 20, 21) {
    t.Error("TestRange4 failed!")
  }
}
