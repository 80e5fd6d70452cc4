// Command berdump decodes a file containing one or more concatenated BER
// values and prints a tree rendering of each one. It is a public
// convenience entry point that yields successive top-level values from a
// concatenated stream, kept external to the decoding core; this module
// gives it a home here rather than folding it into the berdec.dev/ber
// package.
//
// Flag parsing follows the stdlib flag.FlagSet style used throughout the
// retrieval pack's own CLI entry points (e.g. oba-ldap/oba/cmd/oba).
package main

import (
	"flag"
	"fmt"
	"os"

	"berdec.dev/ber"
	"berdec.dev/ber/stream"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	fs := flag.NewFlagSet("berdump", flag.ContinueOnError)
	fs.SetOutput(os.Stderr)

	indefiniteOK := fs.Bool("indefinite", true, "accept indefinite-length encodings")
	dumpRaw := fs.Bool("dump-raw-on-failure", false, "return raw TLV bytes as ANY instead of failing when a tag can't be resolved")

	if err := fs.Parse(args); err != nil {
		return 1
	}
	if fs.NArg() != 1 {
		fmt.Fprintln(os.Stderr, "usage: berdump [flags] <file>")
		fs.PrintDefaults()
		return 1
	}

	f, err := os.Open(fs.Arg(0))
	if err != nil {
		fmt.Fprintln(os.Stderr, "berdump:", err)
		return 1
	}
	defer f.Close()

	eng := ber.NewEngine(ber.DefaultRegistry(),
		ber.WithIndefiniteLengthSupport(*indefiniteOK),
		ber.WithDumpRawOnExplicitTagFailure(*dumpRaw),
	)
	cur := stream.NewCursor(f)

	n := 0
	for v := range ber.Seq(eng, cur, nil, ber.Options{}) {
		fmt.Printf("--- value %d ---\n", n)
		dump(os.Stdout, v, 0)
		n++
	}
	if n == 0 {
		fmt.Fprintln(os.Stderr, "berdump: no values decoded")
		return 1
	}
	return 0
}

// dump renders v as an indented tree, recursing into [ber.Container]
// components and [ber.Choice] selections.
func dump(w *os.File, v ber.Value, depth int) {
	indent := func() {
		for i := 0; i < depth; i++ {
			fmt.Fprint(w, "  ")
		}
	}
	indent()

	switch t := v.(type) {
	case *ber.Choice:
		fmt.Fprintln(w, "CHOICE")
		if t.Selected != nil {
			dump(w, t.Selected, depth+1)
		}
	case *ber.Sequence:
		fmt.Fprintf(w, "%s %s\n", t.TagSet(), "SEQUENCE/SET")
		for i := 0; ; i++ {
			c, ok := t.ComponentByPosition(i)
			if !ok {
				if i > 32 {
					break
				}
				continue
			}
			dump(w, c, depth+1)
		}
	case *ber.SequenceOf:
		fmt.Fprintf(w, "%s %s (%d elements)\n", t.TagSet(), "SEQUENCE OF/SET OF", len(t.Elements))
		for _, e := range t.Elements {
			dump(w, e, depth+1)
		}
	case *ber.Integer:
		fmt.Fprintf(w, "%s INTEGER %s\n", t.TagSet(), t.Value)
	case *ber.Boolean:
		fmt.Fprintf(w, "%s BOOLEAN %v\n", t.TagSet(), t.Value)
	case *ber.Null:
		fmt.Fprintf(w, "%s NULL\n", t.TagSet())
	case *ber.ObjectIdentifier:
		fmt.Fprintf(w, "%s OBJECT IDENTIFIER %v\n", t.TagSet(), t.Arcs)
	case *ber.OctetString:
		fmt.Fprintf(w, "%s OCTET STRING (%d bytes)\n", t.TagSet(), len(t.Bytes))
	case *ber.BitString:
		fmt.Fprintf(w, "%s BIT STRING (%d bytes, %d unused bits)\n", t.TagSet(), len(t.Bytes), t.UnusedBits)
	case *ber.Real:
		f, _ := t.Float64()
		fmt.Fprintf(w, "%s REAL %v\n", t.TagSet(), f)
	case *ber.CharacterString:
		fmt.Fprintf(w, "%s %s\n", t.TagSet(), string(t.Bytes))
	case *ber.TimeString:
		fmt.Fprintf(w, "%s %s\n", t.TagSet(), string(t.Bytes))
	case *ber.AnyValue:
		fmt.Fprintf(w, "%s ANY (%d bytes)\n", t.TagSet(), len(t.Content))
	default:
		fmt.Fprintf(w, "%s %T\n", v.TagSet(), v)
	}
}
