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

import   "bufio"
import   "compress/gzip"
import   "fmt"
import   "io"
import   "log"
import   "os"

import   "github.com/pborman/getopt"

import . "github.com/pbenner/goproteomics"

/* -------------------------------------------------------------------------- */

type Config struct {
  Fasta      bool
  Uniprot    bool
  DomainType string
  Compress   bool
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

func importDomains(config Config, proteome *Proteome, filename string) {
  PrintStderr(config, 1, "Reading domains table `%s'... ", filename)
  if err := proteome.ImportDomains(filename, FailOnDuplicate, true); err != nil {
    PrintStderr(config, 1, "failed\n")
    log.Fatal(err)
  }
  PrintStderr(config, 1, "done\n")
}

/* -------------------------------------------------------------------------- */

func writeDomainSequences(config Config, w io.Writer, proteome *Proteome) error {
  for _, uniqueID := range proteome.Proteins() {
    protein, _ := proteome.Protein(uniqueID, FailOnMissing)
    for _, domain := range protein.Domains() {
      if config.DomainType != "" && domain.DomainType() != config.DomainType {
        continue
      }
      seq := domain.Sequence()
      if _, err := fmt.Fprintf(w, ">%s %s\n", uniqueID, domain.Name()); err != nil {
        return err
      }
      for i := 0; i < len(seq); i += 80 {
        from := i
        to   := i+80
        if to >= len(seq) {
          to = len(seq)
        }
        if _, err := fmt.Fprintf(w, "%s\n", seq[from:to]); err != nil {
          return err
        }
      }
    }
  }
  return nil
}

func exportDomainSequences(config Config, proteome *Proteome, filename string) {
  if filename == "" {
    if err := writeDomainSequences(config, os.Stdout, proteome); err != nil {
      log.Fatal(err)
    }
    return
  }
  f, err := os.Create(filename)
  if err != nil {
    log.Fatal(err)
  }
  defer f.Close()

  PrintStderr(config, 1, "Writing domain sequences to `%s'... ", filename)
  if config.Compress {
    w := gzip.NewWriter(f)
    if err := writeDomainSequences(config, w, proteome); err != nil {
      PrintStderr(config, 1, "failed\n")
      log.Fatal(err)
    }
    w.Close()
  } else {
    w := bufio.NewWriter(f)
    if err := writeDomainSequences(config, w, proteome); err != nil {
      PrintStderr(config, 1, "failed\n")
      log.Fatal(err)
    }
    w.Flush()
  }
  PrintStderr(config, 1, "done\n")
}

/* -------------------------------------------------------------------------- */

func main() {

  config  := Config{}
  options := getopt.New()

  optFasta    := options.   BoolLong("fasta",    0 ,     "proteins file is a fasta file")
  optUniprot  := options.   BoolLong("uniprot",  0 ,     "derive unique IDs from UniProt fasta headers")
  optType     := options. StringLong("type",     0 , "", "extract only domains of this type")
  optCompress := options.   BoolLong("compress", 0 ,     "gzip compress output file")
  optVerbose  := options.CounterLong("verbose", 'v',     "verbose level [-v or -vv]")
  optHelp     := options.   BoolLong("help",    'h',     "print help")

  options.SetParameters("<PROTEINS> <DOMAINS.tsv> [OUTPUT.fa]")
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
  config.DomainType = *optType
  config.Compress   = *optCompress
  config.Verbose    = *optVerbose

  filenameOut := ""
  if len(options.Args()) == 3 {
    filenameOut = options.Args()[2]
  }

  proteome := importProteome(config, options.Args()[0])
  importDomains(config, proteome, options.Args()[1])

  exportDomainSequences(config, proteome, filenameOut)
}
