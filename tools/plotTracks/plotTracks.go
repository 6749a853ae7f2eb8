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

import   "gonum.org/v1/plot"
import   "gonum.org/v1/plot/plotter"
import   "gonum.org/v1/plot/plotutil"
import   "gonum.org/v1/plot/vg"

import   "github.com/pborman/getopt"

import . "github.com/pbenner/goproteomics"

/* -------------------------------------------------------------------------- */

type Config struct {
  Fasta     bool
  Uniprot   bool
  TrackName string
  Verbose   int
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

/* -------------------------------------------------------------------------- */

func trackXYs(track *Track) plotter.XYs {
  values, err := track.Values()
  if err != nil {
    log.Fatal(err)
  }
  xy := make(plotter.XYs, len(values))
  for i := 0; i < len(values); i++ {
    xy[i].X = float64(i+1)
    xy[i].Y = values[i]
  }
  return xy
}

func plotProteinTracks(config Config, protein *Protein, filename string) {
  lines := []interface{}{}

  if config.TrackName != "" {
    track, err := protein.Track(config.TrackName, FailOnMissing)
    if err != nil {
      log.Fatal(err)
    }
    lines = append(lines, track.Name(), trackXYs(track))
  } else {
    for _, track := range protein.Tracks() {
      if track.Kind() != TrackValues {
        continue
      }
      lines = append(lines, track.Name(), trackXYs(track))
    }
  }
  if len(lines) == 0 {
    log.Fatalf("protein `%s' has no values tracks", protein.UniqueID())
  }

  p := plot.New()
  p.Title.Text   = protein.UniqueID()
  p.X.Label.Text = "position"
  p.Y.Label.Text = "value"

  if err := plotutil.AddLines(p, lines...); err != nil {
    log.Fatal(err)
  }
  if err := p.Save(8*vg.Inch, 4*vg.Inch, filename); err != nil {
    log.Fatal(err)
  }
  PrintStderr(config, 1, "Wrote track plot to `%s'\n", filename)
}

/* -------------------------------------------------------------------------- */

func main() {

  config  := Config{}
  options := getopt.New()

  optFasta   := options.   BoolLong("fasta",    0 ,     "proteins file is a fasta file")
  optUniprot := options.   BoolLong("uniprot",  0 ,     "derive unique IDs from UniProt fasta headers")
  optTrack   := options. StringLong("track",    0 , "", "plot only the track with this name")
  optVerbose := options.CounterLong("verbose", 'v',     "verbose level [-v or -vv]")
  optHelp    := options.   BoolLong("help",    'h',     "print help")

  options.SetParameters("<PROTEINS> <TRACKS.tsv> <UNIQUE_ID> <OUTPUT.pdf>")
  options.Parse(os.Args)

  if *optHelp {
    options.PrintUsage(os.Stdout)
    os.Exit(0)
  }
  if len(options.Args()) != 4 {
    options.PrintUsage(os.Stderr)
    os.Exit(1)
  }
  config.Fasta     = *optFasta
  config.Uniprot   = *optUniprot
  config.TrackName = *optTrack
  config.Verbose   = *optVerbose

  proteome := importProteome(config, options.Args()[0])

  importTracks(config, proteome, options.Args()[1])

  protein, err := proteome.Protein(options.Args()[2], FailOnMissing)
  if err != nil {
    log.Fatal(err)
  }
  plotProteinTracks(config, protein, options.Args()[3])
}
