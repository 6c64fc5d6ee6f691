// Command jot validates and reformats JSON documents. It reads one document
// from a file or stdin, decodes it strictly, and re-emits it either indented
// two spaces per level or minified.
package main

import (
	"io"
	"os"

	"github.com/alexflint/go-arg"
	"github.com/pkg/errors"

	"jot.lol/chk"
	"jot.lol/config"
	"jot.lol/json"
	"jot.lol/log"
)

var args struct {
	Path    string `arg:"positional" help:"input file; - or empty reads stdin"`
	Compact bool   `arg:"-c,--compact" help:"emit minified output instead of indented"`
	Check   bool   `arg:"-n,--check" help:"validate only, emit nothing"`
}

func main() {
	config.New()
	arg.MustParse(&args)
	if err := run(); chk.E(err) {
		os.Exit(1)
	}
}

func run() (err error) {
	var b []byte
	if args.Path == "" || args.Path == "-" {
		if b, err = io.ReadAll(os.Stdin); err != nil {
			return errors.Wrap(err, "reading stdin")
		}
	} else {
		if b, err = os.ReadFile(args.Path); err != nil {
			return errors.Wrap(err, "reading input")
		}
	}
	var v json.Value
	if v, err = json.Decode(b); err != nil {
		return err
	}
	log.D.F("decoded %d bytes", len(b))
	if args.Check {
		return
	}
	if args.Compact {
		out := v.Marshal(nil)
		out = append(out, '\n')
		_, err = os.Stdout.Write(out)
		return
	}
	err = json.Fprintln(os.Stdout, v)
	return
}
