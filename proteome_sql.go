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
import "database/sql"

import _ "github.com/go-sql-driver/mysql"
import _ "modernc.org/sqlite"

/* import annotations from sql databases
 * -------------------------------------------------------------------------- */

// Annotation databases are accessed either through a MySQL server or a local
// SQLite file. The driver argument selects between the two, the source
// argument is the driver-specific data source name, i.e. a connection string
// such as `user@tcp(host:3306)/database' for MySQL or a filename for SQLite.

func openDB(driver, source string) (*sql.DB, error) {
  switch driver {
  case "mysql", "sqlite":
  default:
    return nil, fmt.Errorf("unknown database driver `%s'", driver)
  }
  db, err := sql.Open(driver, source)
  if err != nil {
    return nil, err
  }
  if err := db.Ping(); err != nil {
    db.Close()
    return nil, err
  }
  return db, nil
}

/* -------------------------------------------------------------------------- */

// ImportProteinsFromDB imports proteins from a database table with columns
// unique_id, name, and sequence.
func (obj *Proteome) ImportProteinsFromDB(driver, source, table string, policy DuplicatePolicy) error {
  /* variables for storing a single database row */
  var i_uniqueID, i_name, i_sequence string

  records := []ProteinRecord{}

  /* open connection */
  db, err := openDB(driver, source)
  if err != nil {
    return err
  }
  defer db.Close()

  /* receive data */
  rows, err := db.Query(
    fmt.Sprintf("SELECT unique_id, name, sequence FROM %s", table))
  if err != nil {
    return err
  }
  defer rows.Close()
  for rows.Next() {
    if err := rows.Scan(&i_uniqueID, &i_name, &i_sequence); err != nil {
      return err
    }
    records = append(records, ProteinRecord{
      UniqueID: i_uniqueID,
      Name    : i_name,
      Sequence: i_sequence })
  }
  if err := rows.Err(); err != nil {
    return err
  }
  return obj.AddProteins(records, policy)
}

// ImportDomainsFromDB imports domains from a database table with columns
// unique_id, start, end, and domain_type. Rows whose unique ID does not
// occur in the proteome are skipped.
func (obj *Proteome) ImportDomainsFromDB(driver, source, table string, policy DuplicatePolicy, autoname bool) error {
  /* variables for storing a single database row */
  var i_uniqueID, i_domainType string
  var i_start, i_end int

  records := map[string][]DomainRecord{}

  /* open connection */
  db, err := openDB(driver, source)
  if err != nil {
    return err
  }
  defer db.Close()

  /* receive data */
  rows, err := db.Query(
    fmt.Sprintf("SELECT unique_id, start, end, domain_type FROM %s", table))
  if err != nil {
    return err
  }
  defer rows.Close()
  for rows.Next() {
    if err := rows.Scan(&i_uniqueID, &i_start, &i_end, &i_domainType); err != nil {
      return err
    }
    records[i_uniqueID] = append(records[i_uniqueID], DomainRecord{
      Start     : i_start,
      End       : i_end,
      DomainType: i_domainType })
  }
  if err := rows.Err(); err != nil {
    return err
  }
  return obj.AddDomains(records, policy, autoname)
}

// ImportSitesFromDB imports sites from a database table with columns
// unique_id, position, site_type, symbol, and value, where symbol and value
// may be NULL. Rows whose unique ID does not occur in the proteome are
// skipped.
func (obj *Proteome) ImportSitesFromDB(driver, source, table string) error {
  /* variables for storing a single database row */
  var i_uniqueID, i_siteType string
  var i_position int
  var i_symbol sql.NullString
  var i_value  sql.NullFloat64

  records := map[string][]SiteRecord{}

  /* open connection */
  db, err := openDB(driver, source)
  if err != nil {
    return err
  }
  defer db.Close()

  /* receive data */
  rows, err := db.Query(
    fmt.Sprintf("SELECT unique_id, position, site_type, symbol, value FROM %s", table))
  if err != nil {
    return err
  }
  defer rows.Close()
  for rows.Next() {
    if err := rows.Scan(&i_uniqueID, &i_position, &i_siteType, &i_symbol, &i_value); err != nil {
      return err
    }
    record := SiteRecord{
      Position: i_position,
      SiteType: i_siteType }
    if i_symbol.Valid {
      symbol := i_symbol.String
      record.Symbol = &symbol
    }
    if i_value.Valid {
      value := i_value.Float64
      record.Value = &value
    }
    records[i_uniqueID] = append(records[i_uniqueID], record)
  }
  if err := rows.Err(); err != nil {
    return err
  }
  return obj.AddSites(records)
}
