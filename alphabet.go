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

import "fmt"

/* -------------------------------------------------------------------------- */

type AminoAcidAlphabet struct {
}

// IsStandard returns true if the given letter is one of the twenty standard
// amino acids.
func (AminoAcidAlphabet) IsStandard(i byte) bool {
  switch i {
  case 'A': fallthrough
  case 'a': return true
  case 'C': fallthrough
  case 'c': return true
  case 'D': fallthrough
  case 'd': return true
  case 'E': fallthrough
  case 'e': return true
  case 'F': fallthrough
  case 'f': return true
  case 'G': fallthrough
  case 'g': return true
  case 'H': fallthrough
  case 'h': return true
  case 'I': fallthrough
  case 'i': return true
  case 'K': fallthrough
  case 'k': return true
  case 'L': fallthrough
  case 'l': return true
  case 'M': fallthrough
  case 'm': return true
  case 'N': fallthrough
  case 'n': return true
  case 'P': fallthrough
  case 'p': return true
  case 'Q': fallthrough
  case 'q': return true
  case 'R': fallthrough
  case 'r': return true
  case 'S': fallthrough
  case 's': return true
  case 'T': fallthrough
  case 't': return true
  case 'V': fallthrough
  case 'v': return true
  case 'W': fallthrough
  case 'w': return true
  case 'Y': fallthrough
  case 'y': return true
  default : return false
  }
}

// IsDeletion returns true if the given letter marks a deleted residue or a
// translation stop. Such letters cannot be substituted since removing them
// would change the length of the sequence.
func (AminoAcidAlphabet) IsDeletion(i byte) bool {
  switch i {
  case '*': fallthrough
  case '-': return true
  default : return false
  }
}

// Substitute maps a non-standard amino acid to its standard replacement,
// i.e. aspartate or asparagine to asparagine, selenocysteine to cysteine,
// unknown residues to glycine, and glutamate or glutamine to glutamine.
// Standard amino acids are returned unchanged.
func (a AminoAcidAlphabet) Substitute(i byte) (byte, error) {
  switch i {
  case 'B': return 'N', nil
  case 'b': return 'n', nil
  case 'U': return 'C', nil
  case 'u': return 'c', nil
  case 'X': return 'G', nil
  case 'x': return 'g', nil
  case 'Z': return 'Q', nil
  case 'z': return 'q', nil
  default :
    if a.IsStandard(i) {
      return i, nil
    }
    return 0xFF, fmt.Errorf("Substitute(): `%c' cannot be substituted by a standard amino acid", i)
  }
}

func (AminoAcidAlphabet) Length() int {
  return 20
}

func (AminoAcidAlphabet) String() string {
  return "amino acid alphabet"
}
