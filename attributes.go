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

import "sort"

/* -------------------------------------------------------------------------- */

// Attributes holds arbitrary key value annotations. Every entity of the
// annotation hierarchy carries its own attribute map, accessed through the
// entity so that error messages can name the entity the attribute belongs to.
type Attributes map[string]interface{}

/* -------------------------------------------------------------------------- */

func (obj Attributes) Clone() Attributes {
  r := Attributes{}
  for name, value := range obj {
    r[name] = value
  }
  return r
}

// Keys returns all attribute names in lexicographic order.
func (obj Attributes) Keys() []string {
  keys := []string{}
  for name, _ := range obj {
    keys = append(keys, name)
  }
  sort.Strings(keys)
  return keys
}

/* -------------------------------------------------------------------------- */

func (obj Attributes) add(context, name string, value interface{}, policy DuplicatePolicy) error {
  if _, ok := obj[name]; ok && policy == FailOnDuplicate {
    return newDuplicateNameError("%s: attribute `%s' already exists", context, name)
  }
  obj[name] = value
  return nil
}

func (obj Attributes) get(context, name string, policy MissingPolicy) (interface{}, error) {
  if value, ok := obj[name]; ok {
    return value, nil
  }
  if policy == IgnoreMissing {
    return nil, nil
  }
  return nil, newMissingEntityError("%s: attribute `%s' not found", context, name)
}

func (obj Attributes) remove(context, name string, policy MissingPolicy) error {
  if _, ok := obj[name]; !ok {
    if policy == IgnoreMissing {
      return nil
    }
    return newMissingEntityError("%s: attribute `%s' not found", context, name)
  }
  delete(obj, name)
  return nil
}
