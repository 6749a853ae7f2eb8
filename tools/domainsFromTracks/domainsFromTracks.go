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
import   "strconv"

import . "github.com/pbenner/goproteomics"
import   "github.com/pbenner/goproteomics/lib/progress"

import   "github.com/pbenner/threadpool"
import   "github.com/pborman/getopt"

/* -------------------------------------------------------------------------- */

type Config struct {
  Fasta         bool
  Uniprot       bool
  TrackName     string
  DomainType    string
  Threshold     float64
  Mode          string
  GapClosure    int
  MinRegionSize int
  Threads       int
  Status        bool
  Verbose       int
}

/* -------------------------------------------------------------------------- */

func getBinarizeFunction(config Config) BinarizeFunction {
  switch config.Mode {
  case "above":
    return BinarizeAbove(config.Threshold)
  case "below":
    return BinarizeBelow(config.Threshold)
  }
  log.Fatalf("invalid binarize mode `%s', must be either above or below", config.Mode)
  return nil
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

func importTracks(config Config, proteome *Proteome, filename string) {
  PrintStderr(config, 1, "Reading tracks table `%s'... ", filename)
  if err := proteome.ImportTracks(filename, TrackValues, FailOnDuplicate); err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")
}

func exportDomains(config Config, proteome *Proteome, filename string) {
  if filename == "" {
    if err := proteome.WriteDomains(os.Stdout); err != nil {
      log.Fatal(err)
    }
  } else {
    PrintStderr(config, 1, "Writing domains table `%s'... ", filename)
    if err := proteome.ExportDomains(filename, false); err != nil {
      PrintStderr(config, 1, "failed\n")
      log.Fatal(err)
    }
    PrintStderr(config, 1, "done\n")
  }
}

/* -------------------------------------------------------------------------- */

func buildDomains(config Config, proteome *Proteome) map[string][]DomainRecord {

  pool     := threadpool.New(config.Threads, 100*config.Threads)
  binarize := getBinarizeFunction(config)

  uniqueIDs := proteome.Proteins()
  results   := make([][]DomainRecord, len(uniqueIDs))
  skipped   := make([]bool,           len(uniqueIDs))
  failures  := make([]error,          len(uniqueIDs))

  if !config.Status {
    PrintStderr(config, 1, "Building domains from track `%s'... ", config.TrackName)
  }
  g := pool.NewJobGroup()

  for n, i := len(uniqueIDs), 0; i < n; i++ {
    // make a thread safe copy of i
    j := i
    // add task to the thread pool
    pool.AddJob(g, func(pool threadpool.ThreadPool, erf func() error) error {
      protein, _ := proteome.Protein(uniqueIDs[j], FailOnMissing)
      records, ok, err := BuildDomainsFromTrack(protein, config.TrackName, binarize, config.DomainType, config.GapClosure, config.MinRegionSize)
      results [j] = records
      skipped [j] = !ok
      failures[j] = err
      return nil
    })
    if config.Status {
      progress.New(n, 1000).PrintStderr(i+1)
    }
  }
  pool.Wait(g)
  if !config.Status {
    PrintStderr(config, 1, "done\n")
  }

  records := map[string][]DomainRecord{}
  for i := 0; i < len(uniqueIDs); i++ {
    if failures[i] != nil {
      log.Fatal(failures[i])
    }
    if skipped[i] {
      PrintStderr(config, 2, "Protein `%s' was skipped\n", uniqueIDs[i])
      continue
    }
    records[uniqueIDs[i]] = results[i]
  }
  return records
}

/* -------------------------------------------------------------------------- */

func main() {

  config  := Config{}
  options := getopt.New()

  optFasta     := options.   BoolLong("fasta",           0 ,          "proteins file is a fasta file")
  optUniprot   := options.   BoolLong("uniprot",         0 ,          "derive unique IDs from UniProt fasta headers")
  optTrack     := options. StringLong("track",           0 , "",      "name of the values track to binarize")
  optType      := options. StringLong("domain-type",     0 , "domain", "domain type of the result [default: domain]")
  optThreshold := options. StringLong("threshold",       0 , "0.5",   "binarize threshold [default: 0.5]")
  optMode      := options. StringLong("mode",            0 , "above", "values match if above or below the threshold [default: above]")
  optGap       := options.    IntLong("gap-closure",     0 ,  3,      "maximal gap size to close [default: 3]")
  optMinSize   := options.    IntLong("min-region-size", 0 , 20,      "minimal domain size [default: 20]")
  optThreads   := options.    IntLong("threads",         0 ,  1,      "number of threads [default: 1]")
  optStatus    := options.   BoolLong("status",          0 ,          "show status bar")
  optVerbose   := options.CounterLong("verbose",        'v',          "verbose level [-v or -vv]")
  optHelp      := options.   BoolLong("help",           'h',          "print help")

  options.SetParameters("<PROTEINS> <TRACKS.tsv> [OUTPUT.tsv]")
  options.Parse(os.Args)

  if *optHelp {
    options.PrintUsage(os.Stdout)
    os.Exit(0)
  }
  if len(options.Args()) != 2 && len(options.Args()) != 3 {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  if *optTrack == "" {
    log.Fatal("no track name specified, see option --track")
  }
  if t, err := strconv.ParseFloat(*optThreshold, 64); err != nil {
    log.Fatalf("parsing threshold failed: %v", err)
  } else {
    config.Threshold = t
  }
  config.Fasta         = *optFasta
  config.Uniprot       = *optUniprot
  config.TrackName     = *optTrack
  config.DomainType    = *optType
  config.Mode          = *optMode
  config.GapClosure    = *optGap
  config.MinRegionSize = *optMinSize
  config.Threads       = *optThreads
  config.Status        = *optStatus
  config.Verbose       = *optVerbose

  filenameOut := ""
  if len(options.Args()) == 3 {
    filenameOut = options.Args()[2]
  }

  proteome := importProteome(config, options.Args()[0])

  importTracks(config, proteome, options.Args()[1])

  records := buildDomains(config, proteome)

  if err := proteome.AddDomains(records, FailOnDuplicate, false); err != nil {
    log.Fatal(err)
  }
  exportDomains(config, proteome, filenameOut)
}
