/*
DESCRIPTION
  vc2check is a command-line VC-2 bitstream conformance checker: it
  reads one or more concatenated VC-2 sequences from a file (or stdin)
  and reports the first conformance violation encountered, or confirms
  the stream decodes cleanly.
*/
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/pkg/errors"

	"github.com/bbc/vc2-conformance/bits"
	"github.com/bbc/vc2-conformance/config"
	"github.com/bbc/vc2-conformance/decoder"
	"github.com/bbc/vc2-conformance/vc2log"
)

func main() {
	var (
		strict    = flag.Bool("strict", true, "reject data units the level's sequencing grammar does not permit (other violations always abort)")
		verbosity = flag.Int("v", int(vc2log.Warning), "minimum log level to print (0=debug, 1=info, 2=warning, 3=error, 4=fatal)")
		logPath   = flag.String("log", "", "write log output to this file instead of stderr")
		countOnly = flag.Bool("count", false, "print only the number of decoded pictures instead of the conformant summary line")
	)
	flag.Parse()

	if err := run(flag.Args(), *strict, vc2log.Level(*verbosity), *logPath, *countOnly); err != nil {
		fmt.Fprintln(os.Stderr, "vc2check:", err)
		os.Exit(1)
	}
}

func run(args []string, strict bool, level vc2log.Level, logPath string, countOnly bool) error {
	var src io.Reader = os.Stdin
	if len(args) > 0 {
		f, err := os.Open(args[0])
		if err != nil {
			return errors.Wrap(err, "opening input")
		}
		defer f.Close()
		src = f
	}

	logOut := io.Writer(os.Stderr)
	if logPath != "" {
		w := vc2log.RotatingFile(logPath, 10, 3, 28)
		defer w.Close()
		logOut = w
	}

	pictures := 0
	cfg := config.Default()
	cfg.Strict = strict
	cfg.Logger = vc2log.New(level, logOut)
	cfg.OnPicture = func(pictureNumber uint32, y, c1, c2 [][]uint32) {
		pictures++
	}

	s := decoder.New(bits.NewReader(src), cfg)
	if err := s.ParseAllSequences(); err != nil {
		return err
	}

	if countOnly {
		fmt.Println(pictures)
	} else {
		fmt.Printf("conformant: decoded %d picture(s)\n", pictures)
	}
	return nil
}
