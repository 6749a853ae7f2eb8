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
import "sort"

/* -------------------------------------------------------------------------- */

// ValuesFunction computes a per-residue values vector from a sequence. The
// params argument carries optional parameters of the computation and may be
// nil. The result must have exactly one entry per residue.
type ValuesFunction func(sequence string, params map[string]interface{}) ([]float64, error)

// SymbolsFunction computes a per-residue symbols vector from a sequence.
type SymbolsFunction func(sequence string, params map[string]interface{}) ([]string, error)

/* -------------------------------------------------------------------------- */

// AddTrack adds a track to the protein. Exactly one of values and symbols
// must be non-nil and match the protein length. Within a proteome all tracks
// sharing a name must be of the same kind, no matter which protein they
// belong to.
func (obj *Protein) AddTrack(name string, values []float64, symbols []string, policy DuplicatePolicy) (*Track, error) {
  old, exists := obj.tracks[name]
  if exists && policy == FailOnDuplicate {
    return nil, newDuplicateNameError("protein `%s': track `%s' already exists", obj.uniqueID, name)
  }
  track, err := newTrack(obj, name, values, symbols)
  if err != nil {
    return nil, err
  }
  if exists {
    obj.proteome.deregisterTrack(name)
  }
  if err := obj.proteome.registerTrack(name, track.Kind()); err != nil {
    if exists {
      obj.proteome.registerTrack(name, old.Kind())
    }
    return nil, err
  }
  obj.tracks[name] = track
  return track, nil
}

// BuildTrackValues computes a values track from the protein sequence and
// adds it under the given name.
func (obj *Protein) BuildTrackValues(name string, f ValuesFunction, params map[string]interface{}, policy DuplicatePolicy) (*Track, error) {
  values, err := f(obj.Sequence(), params)
  if err != nil {
    return nil, fmt.Errorf("protein `%s': building track `%s' failed: %v", obj.uniqueID, name, err)
  }
  return obj.AddTrack(name, values, nil, policy)
}

// BuildTrackSymbols computes a symbols track from the protein sequence and
// adds it under the given name.
func (obj *Protein) BuildTrackSymbols(name string, f SymbolsFunction, params map[string]interface{}, policy DuplicatePolicy) (*Track, error) {
  symbols, err := f(obj.Sequence(), params)
  if err != nil {
    return nil, fmt.Errorf("protein `%s': building track `%s' failed: %v", obj.uniqueID, name, err)
  }
  return obj.AddTrack(name, nil, symbols, policy)
}

/* -------------------------------------------------------------------------- */

// Track returns the track with the given name. With missing policy
// IgnoreMissing the result is nil if no such track exists.
func (obj *Protein) Track(name string, policy MissingPolicy) (*Track, error) {
  if track, ok := obj.tracks[name]; ok {
    return track, nil
  }
  if policy == IgnoreMissing {
    return nil, nil
  }
  return nil, newMissingEntityError("protein `%s': track `%s' not found", obj.uniqueID, name)
}

// Tracks returns all tracks of the protein sorted by name.
func (obj *Protein) Tracks() []*Track {
  tracks := []*Track{}
  for _, name := range obj.TrackNames() {
    tracks = append(tracks, obj.tracks[name])
  }
  return tracks
}

// TrackNames returns the names of all tracks in lexicographic order.
func (obj *Protein) TrackNames() []string {
  names := []string{}
  for name, _ := range obj.tracks {
    names = append(names, name)
  }
  sort.Strings(names)
  return names
}

// RemoveTrack removes the track with the given name and deregisters it.
func (obj *Protein) RemoveTrack(name string, policy MissingPolicy) error {
  if _, ok := obj.tracks[name]; !ok {
    if policy == IgnoreMissing {
      return nil
    }
    return newMissingEntityError("protein `%s': track `%s' not found", obj.uniqueID, name)
  }
  delete(obj.tracks, name)
  obj.proteome.deregisterTrack(name)
  return nil
}
