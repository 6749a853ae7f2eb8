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

// BuildTrackFromDomains converts domain annotations into symbols tracks. For
// every protein of the proteome the result contains a symbol vector with one
// entry per residue, where positions covered by a domain are marked with "1"
// and all remaining positions with "0". If domainType is non-empty, only
// domains of that type are projected. The proteome itself is not modified.
func BuildTrackFromDomains(proteome *Proteome, domainType string) map[string][]string {
  result := map[string][]string{}
  for _, uniqueID := range proteome.Proteins() {
    protein, _ := proteome.Protein(uniqueID, FailOnMissing)
    symbols := make([]string, protein.Length())
    for i := 0; i < len(symbols); i++ {
      symbols[i] = "0"
    }
    for _, domain := range protein.Domains() {
      if domainType != "" && domain.domainType != domainType {
        continue
      }
      for i := domain.start-1; i < domain.end; i++ {
        symbols[i] = "1"
      }
    }
    result[uniqueID] = symbols
  }
  return result
}

/* -------------------------------------------------------------------------- */

// BuildSiteDensityVector computes a sliding window density of sites along
// the protein. Site presence is binary, i.e. a residue either carries a
// matching site or it does not, no matter how many sites share the position.
// The window density is extended at both termini so that the result has one
// entry per residue and can be added to the protein as a values track. If no
// site types are given, all sites are counted. The protein itself is not
// modified.
func BuildSiteDensityVector(protein *Protein, windowSize int, siteTypes ...string) ([]float64, error) {
  n := protein.Length()
  if windowSize < 1 || windowSize > n {
    return nil, newRangeError("protein `%s': window size `%d' is outside the valid range [1, %d]", protein.uniqueID, windowSize, n)
  }
  occupancy := make([]int, n)
  for position, sites := range protein.SitesByType(siteTypes...) {
    if len(sites) > 0 {
      occupancy[position-1] = 1
    }
  }
  density := make([]float64, 0, n-windowSize+1)
  for i := 0; i+windowSize <= n; i++ {
    density = append(density, float64(intSum(occupancy[i:i+windowSize]))/float64(windowSize))
  }
  // extend the density vector at both ends so that each value reports the
  // density halfway across the window and the result covers every residue
  leading := windowSize/2
  lagging := n - (len(density) + leading)
  result  := make([]float64, 0, n)
  for i := 0; i < leading; i++ {
    result = append(result, density[0])
  }
  result = append(result, density...)
  for i := 0; i < lagging; i++ {
    result = append(result, density[len(density)-1])
  }
  return result, nil
}
