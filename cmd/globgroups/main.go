// Copyright (c) 2016, Daniel Martí <mvdan@mvdan.cc>
// See LICENSE for licensing information

package main

import (
	"bufio"
	"bytes"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"runtime/debug"

	"github.com/alecthomas/repr"
	"github.com/google/renameio/v2"

	"mvdan.cc/globgroups/expand"
	"mvdan.cc/globgroups/syntax"
)

var (
	showVersion = flag.Bool("version", false, "")

	format = flag.Bool("f", false, "")
	count  = flag.Bool("c", false, "")
	limit  = flag.Uint64("n", 0, "")
	output = flag.String("o", "", "")

	out io.Writer = os.Stdout

	version = "(devel)" // to match the default from runtime/debug
)

func main() {
	os.Exit(main1())
}

func main1() int {
	flag.Usage = func() {
		fmt.Fprint(os.Stderr, `usage: globgroups [flags] pattern

Prints every expansion of a brace glob pattern, one per line.
For example, "foo-{bar,baz}" expands to "foo-bar" and "foo-baz".
The characters '{', '}', ',' and '\' may be escaped with a backslash.

  -version  show version and exit

  -f        parse the pattern and print it back instead of expanding it
  -c        print the number of expansions instead of the expansions
  -n uint   stop after printing this many expansions (0 means no limit)
  -o str    write the output to a file, atomically

Setting DEBUG_PARSE_GLOB=1 prints the parsed syntax tree to standard error.
`)
	}
	flag.Parse()

	if *showVersion {
		// don't overwrite the version if it was set by -ldflags=-X
		if info, ok := debug.ReadBuildInfo(); ok && version == "(devel)" {
			mod := &info.Main
			if mod.Replace != nil {
				mod = mod.Replace
			}
			version = mod.Version
		}
		fmt.Println(version)
		return 0
	}
	if *format && *count {
		fmt.Fprintln(os.Stderr, "-f and -c cannot coexist")
		return 1
	}
	if err := run(flag.Args()); err != nil {
		printError(err)
		return 1
	}
	return 0
}

// printError writes err followed by each of the errors it wraps.
func printError(err error) {
	fmt.Fprintf(os.Stderr, "ERROR: %v\n", err)
	for cause := errors.Unwrap(err); cause != nil; cause = errors.Unwrap(cause) {
		fmt.Fprintf(os.Stderr, "Cause: %v\n", cause)
	}
}

type argCountError int

func (e argCountError) Error() string {
	if e == 0 {
		return fmt.Sprintf("Insufficient arguments: %d. Need to specify glob pattern", int(e))
	}
	return fmt.Sprintf("Too many arguments: %d, only need one", int(e))
}

// patternError is returned when the pattern does not parse; it wraps the
// *syntax.ParseError.
type patternError struct {
	err error
}

func (e *patternError) Error() string { return "Invalid glob pattern" }
func (e *patternError) Unwrap() error { return e.err }

func run(args []string) error {
	if len(args) != 1 {
		return argCountError(len(args))
	}
	src := args[0]
	e, err := syntax.Parse(src)
	if err != nil {
		return &patternError{err}
	}
	if os.Getenv("DEBUG_PARSE_GLOB") == "1" {
		fmt.Fprintf(os.Stderr, "parsed_glob: %s\n", repr.String(e, repr.Indent("  ")))
	}

	if *output == "" {
		bw := bufio.NewWriter(out)
		err := writeResult(bw, e)
		if ferr := bw.Flush(); err == nil {
			err = ferr
		}
		return err
	}
	var buf bytes.Buffer
	if err := writeResult(&buf, e); err != nil {
		return err
	}
	return renameio.WriteFile(*output, buf.Bytes(), 0o666)
}

func writeResult(w io.Writer, e syntax.Expr) error {
	switch {
	case *format:
		if err := syntax.Print(w, e); err != nil {
			return err
		}
		_, err := io.WriteString(w, "\n")
		return err
	case *count:
		n, ok := expand.Count(e)
		if !ok {
			return errors.New("too many expansions to count")
		}
		_, err := fmt.Fprintln(w, n)
		return err
	}
	it := expand.Expand(e)
	for printed := uint64(0); *limit == 0 || printed < *limit; printed++ {
		if !it.Next() {
			break
		}
		if _, err := io.WriteString(w, it.Text()); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "\n"); err != nil {
			return err
		}
	}
	return nil
}
