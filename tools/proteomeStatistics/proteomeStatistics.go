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
  Fasta   bool
  Uniprot bool
  Verbose int
}

/* i/o
 * -------------------------------------------------------------------------- */

func PrintStderr(config Config, level int, format string, args ...interface{}) {
  if config.Verbose >= level {
    fmt.Fprintf(os.Stderr, format, args...)
  }
}

/* -------------------------------------------------------------------------- */

func importProteome(config Config, filename string) *Proteome {
  proteome := EmptyProteome()
  if config.Fasta {
    var buildUniqueID UniqueIDFunction
    if config.Uniprot {
      buildUniqueID = UniprotUniqueID
    }
    PrintStderr(config, 1, "Reading fasta file `%s'... ", filename)
    if err := proteome.ImportFasta(filename, buildUniqueID, FailOnDuplicate); err != nil {
      PrintStderr(config, 1, "failed\n")
      log.Fatal(err)
    }
    PrintStderr(config, 1, "done\n")
  } else {
    PrintStderr(config, 1, "Reading proteins table `%s'... ", filename)
    if err := proteome.ImportProteins(filename, FailOnDuplicate); err != nil {
      PrintStderr(config, 1, "failed\n")
      log.Fatal(err)
    }
    PrintStderr(config, 1, "done\n")
  }
  return proteome
}

func importDomains(config Config, proteome *Proteome, filename string) {
  PrintStderr(config, 1, "Reading domains table `%s'... ", filename)
  if err := proteome.ImportDomains(filename, FailOnDuplicate, true); err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")
}

func importSites(config Config, proteome *Proteome, filename string) {
  PrintStderr(config, 1, "Reading sites table `%s'... ", filename)
  if err := proteome.ImportSites(filename); err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")
}

func importTracks(config Config, proteome *Proteome, filename string, kind TrackKind) {
  PrintStderr(config, 1, "Reading %s tracks table `%s'... ", kind, filename)
  if err := proteome.ImportTracks(filename, kind, FailOnDuplicate); err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")
}

func importAttributes(config Config, proteome *Proteome, filename string) {
  PrintStderr(config, 1, "Reading attributes table `%s'... ", filename)
  if err := proteome.ImportProteinAttributes(filename, FailOnDuplicate); err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")
}

/* -------------------------------------------------------------------------- */

func printStatistics(proteome *Proteome) {
  residues := 0
  for _, uniqueID := range proteome.Proteins() {
    protein, _ := proteome.Protein(uniqueID, FailOnMissing)
    residues += protein.Length()
  }
  fmt.Printf("proteins: %d\n", proteome.Length())
  fmt.Printf("residues: %d\n", residues)

  fmt.Printf("domains : %d\n", proteome.NumDomains())
  for _, domainType := range proteome.UniqueDomainTypes() {
    fmt.Printf("  %-20s: %d\n", domainType, len(proteome.DomainsByType(domainType, true)))
  }
  fmt.Printf("sites   : %d\n", proteome.NumSites())
  for _, siteType := range proteome.UniqueSiteTypes() {
    fmt.Printf("  %-20s: %d\n", siteType, len(proteome.SitesByType(siteType)))
  }
  fmt.Printf("tracks  : %d\n", proteome.NumTracks())
  kinds := proteome.TrackKinds()
  for _, name := range proteome.UniqueTrackNames() {
    fmt.Printf("  %-20s: %s\n", name, kinds[name])
  }
}

/* -------------------------------------------------------------------------- */

func main() {

  config  := Config{}
  options := getopt.New()

  optFasta      := options.   BoolLong("fasta",      0 ,     "proteins file is a fasta file")
  optUniprot    := options.   BoolLong("uniprot",    0 ,     "derive unique IDs from UniProt fasta headers")
  optDomains    := options. StringLong("domains",    0 , "", "import domains table")
  optSites      := options. StringLong("sites",      0 , "", "import sites table")
  optValues     := options. StringLong("values",     0 , "", "import values tracks table")
  optSymbols    := options. StringLong("symbols",    0 , "", "import symbols tracks table")
  optAttributes := options. StringLong("attributes", 0 , "", "import protein attributes table")
  optVerbose    := options.CounterLong("verbose",   'v',     "verbose level [-v or -vv]")
  optHelp       := options.   BoolLong("help",      'h',     "print help")

  options.SetParameters("<PROTEINS>")
  options.Parse(os.Args)

  if *optHelp {
    options.PrintUsage(os.Stdout)
    os.Exit(0)
  }
  if len(options.Args()) != 1 {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  config.Fasta   = *optFasta
  config.Uniprot = *optUniprot
  config.Verbose = *optVerbose

  proteome := importProteome(config, options.Args()[0])

  if *optDomains != "" {
    importDomains(config, proteome, *optDomains)
  }
  if *optSites != "" {
    importSites(config, proteome, *optSites)
  }
  if *optValues != "" {
    importTracks(config, proteome, *optValues, TrackValues)
  }
  if *optSymbols != "" {
    importTracks(config, proteome, *optSymbols, TrackSymbols)
  }
  if *optAttributes != "" {
    importAttributes(config, proteome, *optAttributes)
  }
  printStatistics(proteome)
}
