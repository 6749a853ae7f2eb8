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
  Fasta      bool
  Uniprot    bool
  WindowSize int
  SiteType   string
  TrackName  string
  Verbose    int
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

func importSites(config Config, proteome *Proteome, filename string) {
  PrintStderr(config, 1, "Reading sites table `%s'... ", filename)
  if err := proteome.ImportSites(filename); err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")
}

func exportTracks(config Config, proteome *Proteome, filename string) {
  if filename == "" {
    if err := proteome.WriteTracks(os.Stdout, TrackValues); err != nil {
      log.Fatal(err)
    }
  } else {
    PrintStderr(config, 1, "Writing tracks table `%s'... ", filename)
    if err := proteome.ExportTracks(filename, TrackValues, false); err != nil {
      PrintStderr(config, 1, "failed\n")
      log.Fatal(err)
    }
    PrintStderr(config, 1, "done\n")
  }
}

/* -------------------------------------------------------------------------- */

func buildDensityTracks(config Config, proteome *Proteome) {
  siteTypes := []string{}
  if config.SiteType != "" {
    siteTypes = append(siteTypes, config.SiteType)
  }
  for _, uniqueID := range proteome.Proteins() {
    protein, _ := proteome.Protein(uniqueID, FailOnMissing)
    density, err := BuildSiteDensityVector(protein, config.WindowSize, siteTypes...)
    if err != nil {
      // the window does not fit into short proteins
      PrintStderr(config, 1, "Skipping protein `%s': %v\n", uniqueID, err)
      continue
    }
    if _, err := protein.AddTrack(config.TrackName, density, nil, FailOnDuplicate); err != nil {
      log.Fatal(err)
    }
  }
}

/* -------------------------------------------------------------------------- */

func main() {

  config  := Config{}
  options := getopt.New()

  optFasta   := options.   BoolLong("fasta",        0 ,                 "proteins file is a fasta file")
  optUniprot := options.   BoolLong("uniprot",      0 ,                 "derive unique IDs from UniProt fasta headers")
  optWindow  := options.    IntLong("window-size",  0 , 30,             "sliding window size [default: 30]")
  optType    := options. StringLong("site-type",    0 , "",             "compute the density of this site type only")
  optTrack   := options. StringLong("track",        0 , "site_density", "name of the resulting track [default: site_density]")
  optVerbose := options.CounterLong("verbose",     'v',                 "verbose level [-v or -vv]")
  optHelp    := options.   BoolLong("help",        'h',                 "print help")

  options.SetParameters("<PROTEINS> <SITES.tsv> [OUTPUT.tsv]")
  options.Parse(os.Args)

  if *optHelp {
    options.PrintUsage(os.Stdout)
    os.Exit(0)
  }
  if len(options.Args()) != 2 && len(options.Args()) != 3 {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  config.Fasta      = *optFasta
  config.Uniprot    = *optUniprot
  config.WindowSize = *optWindow
  config.SiteType   = *optType
  config.TrackName  = *optTrack
  config.Verbose    = *optVerbose

  filenameOut := ""
  if len(options.Args()) == 3 {
    filenameOut = options.Args()[2]
  }

  proteome := importProteome(config, options.Args()[0])
  importSites(config, proteome, options.Args()[1])

  buildDensityTracks(config, proteome)

  exportTracks(config, proteome, filenameOut)
}
