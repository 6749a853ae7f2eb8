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

package main

/* -------------------------------------------------------------------------- */

import   "fmt"
import   "log"
import   "os"

import   "github.com/pborman/getopt"

import . "github.com/pbenner/goproteomics"

/* -------------------------------------------------------------------------- */

type Config struct {
  Driver        string
  ProteinsTable string
  DomainsTable  string
  SitesTable    string
  Autoname      bool
  Compress      bool
  Verbose       int
}

/* i/o
 * -------------------------------------------------------------------------- */

func PrintStderr(config Config, level int, format string, args ...interface{}) {
  if config.Verbose >= level {
    fmt.Fprintf(os.Stderr, format, args...)
  }
}

/* -------------------------------------------------------------------------- */

func importAnnotations(config Config, source string) *Proteome {
  proteome := EmptyProteome()

  PrintStderr(config, 1, "Reading proteins from table `%s'... ", config.ProteinsTable)
  if err := proteome.ImportProteinsFromDB(config.Driver, source, config.ProteinsTable, FailOnDuplicate); err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")

  if config.DomainsTable != "" {
    PrintStderr(config, 1, "Reading domains from table `%s'... ", config.DomainsTable)
    if err := proteome.ImportDomainsFromDB(config.Driver, source, config.DomainsTable, FailOnDuplicate, config.Autoname); err != nil {
      PrintStderr(config, 1, "failed\n")
      log.Fatal(err)
    }
    PrintStderr(config, 1, "done\n")
  }
  if config.SitesTable != "" {
    PrintStderr(config, 1, "Reading sites from table `%s'... ", config.SitesTable)
    if err := proteome.ImportSitesFromDB(config.Driver, source, config.SitesTable); err != nil {
      PrintStderr(config, 1, "failed\n")
      log.Fatal(err)
    }
    PrintStderr(config, 1, "done\n")
  }
  return proteome
}

func exportAnnotations(config Config, proteome *Proteome, basename string) {
  ext := ".tsv"
  if config.Compress {
    ext = ".tsv.gz"
  }
  filename := fmt.Sprintf("%s_proteins%s", basename, ext)

  PrintStderr(config, 1, "Writing proteins table `%s'... ", filename)
  if err := proteome.ExportProteins(filename, config.Compress); err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")

  if config.DomainsTable != "" {
    filename = fmt.Sprintf("%s_domains%s", basename, ext)

    PrintStderr(config, 1, "Writing domains table `%s'... ", filename)
    if err := proteome.ExportDomains(filename, config.Compress); err != nil {
      PrintStderr(config, 1, "failed\n")
      log.Fatal(err)
    }
    PrintStderr(config, 1, "done\n")
  }
  if config.SitesTable != "" {
    filename = fmt.Sprintf("%s_sites%s", basename, ext)

    PrintStderr(config, 1, "Writing sites table `%s'... ", filename)
    if err := proteome.ExportSites(filename, config.Compress); err != nil {
      PrintStderr(config, 1, "failed\n")
      log.Fatal(err)
    }
    PrintStderr(config, 1, "done\n")
  }
}

/* -------------------------------------------------------------------------- */

func main() {

  config  := Config{}
  options := getopt.New()

  optDriver   := options. StringLong("driver",         0 , "sqlite",   "database driver [mysql or sqlite]")
  optProteins := options. StringLong("proteins-table", 0 , "proteins", "name of the proteins table")
  optDomains  := options. StringLong("domains-table",  0 , "domains",  "name of the domains table, an empty string skips domains")
  optSites    := options. StringLong("sites-table",    0 , "sites",    "name of the sites table, an empty string skips sites")
  optAutoname := options.   BoolLong("autoname",       0 ,             "make duplicated domain names unique by appending a counter")
  optCompress := options.   BoolLong("compress",       0 ,             "compress output tables with gzip")
  optVerbose  := options.CounterLong("verbose",       'v',             "verbose level [-v or -vv]")
  optHelp     := options.   BoolLong("help",          'h',             "print help")

  options.SetParameters("<DATABASE> <OUTPUT_BASENAME>")
  options.Parse(os.Args)

  if *optHelp {
    options.PrintUsage(os.Stdout)
    os.Exit(0)
  }
  if len(options.Args()) != 2 {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  config.Driver        = *optDriver
  config.ProteinsTable = *optProteins
  config.DomainsTable  = *optDomains
  config.SitesTable    = *optSites
  config.Autoname      = *optAutoname
  config.Compress      = *optCompress
  config.Verbose       = *optVerbose

  proteome := importAnnotations(config, options.Args()[0])

  exportAnnotations(config, proteome, options.Args()[1])
}
