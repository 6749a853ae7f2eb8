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
import "strings"

/* -------------------------------------------------------------------------- */

// Annotation tables are tab-separated files with one record per line and no
// header. The leading columns are fixed and depend on the table type, any
// remaining columns hold `key:value' attribute pairs, which is why the colon
// is reserved and may not appear in keys or values. Lines starting with a
// `#' are treated as comments.

func isCommentLine(line string) bool {
  line = strings.TrimSpace(line)
  return len(line) > 0 && line[0] == '#'
}

func splitTableLine(line string) []string {
  fields := strings.Split(line, "\t")
  for i := 0; i < len(fields); i++ {
    fields[i] = strings.TrimSpace(fields[i])
  }
  return fields
}

// parse the trailing `key:value' columns of a table line; attribute values
// are always imported as strings
func parseAttributes(fields []string, i int) (Attributes, error) {
  attributes := Attributes{}
  for _, field := range fields {
    entry := strings.SplitN(field, ":", 2)
    if len(entry) != 2 {
      return nil, fmt.Errorf("parsing attributes failed at line `%d': `%s' is not a key:value pair", i, field)
    }
    attributes[strings.TrimSpace(entry[0])] = strings.TrimSpace(entry[1])
  }
  return attributes, nil
}

// convert an attribute value to a string that does not break the table
// format, i.e. tabs are replaced by spaces and colons by dashes
func cleanString(value interface{}) string {
  return strings.NewReplacer("\t", " ", ":", "-").Replace(fmt.Sprintf("%v", value))
}

func attributesString(attributes Attributes) string {
  builder := strings.Builder{}
  for _, name := range attributes.Keys() {
    builder.WriteString(fmt.Sprintf("\t%s:%s", cleanString(name), cleanString(attributes[name])))
  }
  return builder.String()
}
