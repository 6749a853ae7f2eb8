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

//import "fmt"

/* -------------------------------------------------------------------------- */

// BinarizeFunction converts a values vector into a 0/1 occupancy vector of
// the same length.
type BinarizeFunction func(values []float64) []int

// BinarizeAbove returns a binarize function that marks values strictly
// greater than the threshold.
func BinarizeAbove(threshold float64) BinarizeFunction {
  return func(values []float64) []int {
    b := make([]int, len(values))
    for i := 0; i < len(values); i++ {
      if values[i] > threshold {
        b[i] = 1
      }
    }
    return b
  }
}

// BinarizeBelow returns a binarize function that marks values strictly less
// than the threshold.
func BinarizeBelow(threshold float64) BinarizeFunction {
  return func(values []float64) []int {
    b := make([]int, len(values))
    for i := 0; i < len(values); i++ {
      if values[i] < threshold {
        b[i] = 1
      }
    }
    return b
  }
}

/* -------------------------------------------------------------------------- */

func intSum(b []int) int {
  n := 0
  for i := 0; i < len(b); i++ {
    n += b[i]
  }
  return n
}

// extract maximal runs of 1s from a 0-indexed occupancy vector and emit one
// domain record per run with 1-indexed inclusive boundaries
func occupancyToDomains(b []int, domainType string) []DomainRecord {
  records := []DomainRecord{}
  inside  := false
  start   := 0
  for i := 0; i < len(b); i++ {
    if b[i] == 1 {
      if !inside {
        inside = true
        start  = i
      }
    } else {
      if inside {
        inside = false
        records = append(records, DomainRecord{Start: start+1, End: i, DomainType: domainType})
      }
    }
  }
  if inside {
    records = append(records, DomainRecord{Start: start+1, End: len(b), DomainType: domainType})
  }
  return records
}

/* -------------------------------------------------------------------------- */

// BuildMissingDomains computes the complement of the union of all domains of
// the protein and returns one domain record of the given type per
// unannotated region. A protein without any domains yields a single record
// spanning the full sequence, a fully covered protein yields no records.
// The protein itself is not modified.
func BuildMissingDomains(protein *Protein, domainType string) []DomainRecord {
  occupied := make([]int, protein.Length())
  for _, domain := range protein.Domains() {
    for i := domain.start-1; i < domain.end; i++ {
      occupied[i] = 1
    }
  }
  // the missing domains are the gaps of the occupancy vector
  for i := 0; i < len(occupied); i++ {
    occupied[i] = 1 - occupied[i]
  }
  return occupancyToDomains(occupied, domainType)
}

/* -------------------------------------------------------------------------- */

// BuildDomainsFromTrack converts a values track of a single protein into
// domain records. The track values are binarized into an occupancy vector,
// gaps are closed iteratively for gap sizes 1 up to gapClosure, runs shorter
// than minimumRegionSize are dropped and every remaining run yields one
// record. The second return value is false if the protein was skipped, i.e.
// if it is shorter than 3*gapClosure+1 residues or does not carry the track.
// The protein itself is not modified.
func BuildDomainsFromTrack(protein *Protein, trackName string, binarize BinarizeFunction, domainType string, gapClosure, minimumRegionSize int) ([]DomainRecord, bool, error) {
  if protein.Length() < 3*gapClosure+1 {
    return nil, false, nil
  }
  track, err := protein.Track(trackName, IgnoreMissing)
  if err != nil {
    return nil, false, err
  }
  if track == nil {
    return nil, false, nil
  }
  values, err := track.Values()
  if err != nil {
    return nil, false, err
  }
  b := binarize(values)
  if len(b) != protein.Length() {
    return nil, false, newLengthMismatchError("protein `%s': binarized track `%s' has %d entries but the protein has %d residues", protein.uniqueID, trackName, len(b), protein.Length())
  }
  // close gaps, iterating over increasing gap sizes; a gap of size g is
  // filled if it is preceded and followed by g occupied positions
  for g := 1; g <= gapClosure; g++ {
    for i := 0; i+3*g < len(b); {
      p1 := i
      p2 := i +   g
      p3 := i + 2*g
      p4 := i + 3*g
      if s := intSum(b[p1:p4]); s == 0 {
        // the whole window is empty, skip it
        i = p4
      } else if s == 3*g {
        // the whole window is occupied, skip ahead but keep the last
        // two thirds for the next filling decision
        i = p3
      } else {
        if intSum(b[p1:p2]) == g && intSum(b[p3:p4]) == g {
          for j := p2; j < p3; j++ {
            b[j] = 1
          }
        }
        i++
      }
    }
  }
  // drop runs that are too short
  inside := false
  start  := 0
  for i := 0; i <= len(b); i++ {
    if i < len(b) && b[i] == 1 {
      if !inside {
        inside = true
        start  = i
      }
    } else {
      if inside {
        inside = false
        if i - start < minimumRegionSize {
          for j := start; j < i; j++ {
            b[j] = 0
          }
        }
      }
    }
  }
  return occupancyToDomains(b, domainType), true, nil
}

// BuildDomainsFromTrackValues converts a values track into domain records
// for every protein of the proteome. The result maps protein unique IDs to
// domain records and can be added to the proteome with AddDomains. Proteins
// that were skipped do not appear in the result, whereas proteins whose
// track yielded no domains map to an empty record list.
func BuildDomainsFromTrackValues(proteome *Proteome, trackName string, binarize BinarizeFunction, domainType string, gapClosure, minimumRegionSize int) (map[string][]DomainRecord, error) {
  records := map[string][]DomainRecord{}
  for _, uniqueID := range proteome.Proteins() {
    protein, _ := proteome.Protein(uniqueID, FailOnMissing)
    r, ok, err := BuildDomainsFromTrack(protein, trackName, binarize, domainType, gapClosure, minimumRegionSize)
    if err != nil {
      return nil, err
    }
    if !ok {
      continue
    }
    records[uniqueID] = r
  }
  return records, nil
}
