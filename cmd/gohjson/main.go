package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/reoring/gohjson"
	"github.com/reoring/gohjson/i18n"
	"github.com/reoring/gohjson/source"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	switch sub {
	case "encode":
		if err := encodeCmd(os.Args[2:]); err != nil {
			fatalf("%v", err)
		}
	case "classify":
		classifyCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "gohjson CLI\n\nUsage:\n  gohjson encode [-in json|yaml] [-c] [-indent STR] [-all] [-dup] [-max-depth N] [-lang en|ja] [-v] [file]\n  gohjson classify [-member] STRING...\n\nNotes:\n  - encode reads stdin when no file is given; the input format defaults to the file extension, then json.")
}

type encodeConfig struct {
	format   string
	compact  bool
	indent   string
	all      bool
	limits   source.Options
	logf     func(format string, a ...any)
	fileName string
}

func encodeCmd(args []string) error {
	fs := flag.NewFlagSet("encode", flag.ExitOnError)
	cfg := encodeConfig{}
	var verbose bool
	var lang string
	fs.StringVar(&cfg.format, "in", "", "input format: json or yaml")
	fs.BoolVar(&cfg.compact, "c", false, "write compact JSON instead of Hjson")
	fs.StringVar(&cfg.indent, "indent", "  ", "indent unit for Hjson output")
	fs.BoolVar(&cfg.all, "all", false, "yaml: encode every document as one array")
	fs.BoolVar(&cfg.limits.RejectDuplicateKeys, "dup", false, "reject duplicate object keys")
	fs.IntVar(&cfg.limits.MaxDepth, "max-depth", 0, "maximum nesting depth (0 = unlimited)")
	fs.StringVar(&lang, "lang", "en", "language of error messages: en or ja")
	fs.BoolVar(&verbose, "v", false, "enable verbose logs")
	_ = fs.Parse(args)
	if fs.NArg() > 1 {
		fs.Usage()
		os.Exit(2)
	}
	i18n.SetLanguage(lang)

	cfg.logf = func(format string, a ...any) {
		if verbose {
			fmt.Fprintf(os.Stderr, format+"\n", a...)
		}
	}

	cfg.fileName = fs.Arg(0)

	out := bufio.NewWriter(os.Stdout)
	if err := encodeInput(os.Stdin, out, cfg); err != nil {
		_ = out.Flush()
		return err
	}
	if err := out.Flush(); err != nil {
		return fmt.Errorf("write output: %w", err)
	}
	return nil
}

// encodeInput encodes the file named by cfg.fileName, or stdin when no file
// is named.
func encodeInput(stdin io.Reader, out io.Writer, cfg encodeConfig) error {
	in := stdin
	if cfg.fileName != "" {
		f, err := os.Open(cfg.fileName)
		if err != nil {
			return fmt.Errorf("open input: %w", err)
		}
		defer f.Close()
		in = f
	}
	if err := runEncode(in, out, cfg); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// runEncode reads one document from in and writes it to out, followed by a
// newline.
func runEncode(in io.Reader, out io.Writer, cfg encodeConfig) error {
	format := cfg.format
	if format == "" {
		format = formatFromName(cfg.fileName)
	}
	cfg.logf("encode: in=%s file=%q compact=%v indent=%q", format, cfg.fileName, cfg.compact, cfg.indent)

	var v gohjson.Value
	var err error
	switch format {
	case "json":
		v, err = source.JSONWithOptions(in, cfg.limits)
	case "yaml":
		if cfg.all {
			var docs []gohjson.Value
			docs, err = source.YAMLDocuments(in, cfg.limits)
			v = gohjson.Seq(docs...)
			cfg.logf("encode: read %d yaml documents", len(docs))
		} else {
			v, err = source.YAMLWithOptions(in, cfg.limits)
		}
	default:
		return fmt.Errorf("unknown input format %q", format)
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", format, err)
	}
	cfg.logf("encode: decoded %s root", v.Kind())

	opt := gohjson.DefaultEncodeOpt()
	opt.Pretty = !cfg.compact
	opt.Indent = cfg.indent
	if err := gohjson.EncodeWithOptions(out, v, opt); err != nil {
		return err
	}
	_, err = io.WriteString(out, "\n")
	return err
}

func formatFromName(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return "yaml"
	}
	return "json"
}

func classifyCmd(args []string) {
	fs := flag.NewFlagSet("classify", flag.ExitOnError)
	var member bool
	fs.BoolVar(&member, "member", false, "classify as object keys")
	_ = fs.Parse(args)
	if fs.NArg() == 0 {
		fs.Usage()
		os.Exit(2)
	}
	writeClassified(os.Stdout, fs.Args(), member)
}

// writeClassified prints one "style<TAB>quoted string" line per input.
func writeClassified(w io.Writer, strs []string, member bool) {
	for _, s := range strs {
		style := gohjson.ClassifyString(s)
		if member {
			style = gohjson.ClassifyMember(s)
		}
		fmt.Fprintf(w, "%s\t%q\n", style, s)
	}
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
