// seehuhn.de/go/checkprint - print bank checks as PDF files
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Checkprint prints one PDF check per entry of a check list.
//
// The payer and bank details are read from the static info file, the
// checks from a tab separated check list whose first line names the
// columns.  Signature images are taken from the signature directory in
// file name order.  The documents are written to the output directory,
// one file per check, named after the check number.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"slices"

	"golang.org/x/term"

	"seehuhn.de/go/checkprint"
	"seehuhn.de/go/checkprint/amount"
	"seehuhn.de/go/checkprint/batch"
	"seehuhn.de/go/checkprint/input"
	"seehuhn.de/go/checkprint/internal/buildinfo"
	"seehuhn.de/go/checkprint/layout"
	"seehuhn.de/go/checkprint/pdfcanvas"
)

// errUsage is returned for bad command line arguments; the flag package
// has already printed a message in this case.
var errUsage = errors.New("usage error")

func main() {
	err := run(os.Args[1:], os.Stderr)
	if errors.Is(err, errUsage) {
		os.Exit(2)
	} else if err != nil {
		log.Fatal(err)
	}
}

type options struct {
	info    string
	checks  string
	sigs    string
	fonts   string
	out     string
	verbose bool
}

func run(args []string, stderr io.Writer) error {
	flags := flag.NewFlagSet("checkprint", flag.ContinueOnError)
	flags.SetOutput(stderr)

	opt := &options{}
	flags.StringVar(&opt.info, "info", "user_info.txt", "static info file")
	flags.StringVar(&opt.checks, "checks", "check_info.txt", "check list file")
	flags.StringVar(&opt.sigs, "sigs", ".", "directory containing the signature images")
	flags.StringVar(&opt.fonts, "fonts", "fonts", "directory containing the font files")
	flags.StringVar(&opt.out, "o", "output", "output directory")
	flags.BoolVar(&opt.verbose, "v", isTerminal(stderr), "report every document written")
	version := flags.Bool("version", false, "print version information and exit")

	err := flags.Parse(args)
	if err != nil {
		return errUsage
	}
	if flags.NArg() > 0 {
		fmt.Fprintln(stderr, "error: unexpected arguments")
		flags.Usage()
		return errUsage
	}
	if *version {
		fmt.Fprintln(stderr, buildinfo.Version("checkprint"))
		return nil
	}

	var logger *log.Logger
	if opt.verbose {
		logger = log.New(stderr, "", 0)
	}
	written, err := printChecks(opt, logger)
	if logger != nil {
		logger.Printf("%d checks written", len(written))
	}
	return err
}

func printChecks(opt *options, logger *log.Logger) ([]string, error) {
	info, err := input.ReadStaticInfoFile(opt.info)
	if err != nil {
		return nil, err
	}
	err = info.Check(opt.info)
	if err != nil {
		return nil, err
	}

	list, err := input.ReadChecksFile(opt.checks)
	if err != nil {
		return nil, err
	}
	for i := range list.Records {
		amount.Apply(&list.Records[i])
	}

	tmpl := layout.Default()
	fields := slices.Concat(list.Header, []string{checkprint.FieldAmountText, checkprint.FieldDecimal})
	err = tmpl.Validate(info, fields)
	if err != nil {
		return nil, err
	}

	fonts, err := pdfcanvas.LoadFonts(opt.fonts)
	if err != nil {
		return nil, err
	}

	err = os.MkdirAll(opt.out, 0o755)
	if err != nil {
		return nil, &checkprint.OutputError{Path: opt.out, Err: err}
	}

	e := &batch.Emitter{
		Template:     tmpl,
		Info:         info,
		SignatureDir: opt.sigs,
		OutDir:       opt.out,
		Create: func(path string) (batch.Page, error) {
			return pdfcanvas.Create(path, fonts)
		},
		Log: logger,
	}
	return e.Run(list.Records)
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
