package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	mallet "github.com/reoring/mallet"
	"github.com/reoring/mallet/schemadoc"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(2)
	}
	sub := os.Args[1]
	switch sub {
	case "compile":
		compileCmd(os.Args[2:])
	default:
		usage()
		os.Exit(2)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "mallet CLI\n\nUsage:\n  mallet compile -f schema.yaml [-o out.json] [-format yaml|json] [-lenient] [-schema-uri] [-compact]\n\nNotes:\n  - Reads a schema-definition document and emits a JSON Schema (draft-4) document.\n  - Lossy-mapping diagnostics are printed to stderr; they never fail the compile.")
}

func compileCmd(args []string) {
	fs := flag.NewFlagSet("compile", flag.ExitOnError)
	var in string
	var out string
	var format string
	var lenient bool
	var schemaURI bool
	var compact bool
	fs.StringVar(&in, "f", "", "input schema-definition document (.yaml/.yml/.json)")
	fs.StringVar(&out, "o", "", "output filename (default: stdout)")
	fs.StringVar(&format, "format", "", "input format override: yaml or json (default: by extension)")
	fs.BoolVar(&lenient, "lenient", false, "skip incompatible validators with a warning instead of failing")
	fs.BoolVar(&schemaURI, "schema-uri", false, "emit the draft-4 $schema keyword on the root")
	fs.BoolVar(&compact, "compact", false, "emit compact JSON instead of indented")
	_ = fs.Parse(args)
	if in == "" {
		fs.Usage()
		os.Exit(2)
	}

	data, err := os.ReadFile(in)
	if err != nil {
		fatalf("reading input: %v", err)
	}

	var node *mallet.SchemaNode
	switch inputFormat(in, format) {
	case "yaml":
		node, err = schemadoc.FromYAML(data)
	case "json":
		node, err = schemadoc.FromJSON(data)
	default:
		fatalf("cannot determine input format for %s; pass -format yaml|json", in)
	}
	if err != nil {
		fatalf("parsing definition: %v", err)
	}

	opts := mallet.Options{SchemaURI: schemaURI}
	if lenient {
		opts.Validators = mallet.ValidatorsLenient
	}
	doc, diags, err := mallet.ConvertWith(node, opts)
	if err != nil {
		fatalf("compile: %v", err)
	}
	for _, msg := range diags.Messages() {
		fmt.Fprintf(os.Stderr, "warning: %s\n", msg)
	}

	encoded, err := mallet.EncodeDocument(doc, !compact)
	if err != nil {
		fatalf("encoding document: %v", err)
	}
	if out == "" {
		fmt.Println(string(encoded))
		return
	}
	if dir := filepath.Dir(out); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			fatalf("creating output dir: %v", err)
		}
	}
	if err := os.WriteFile(out, append(encoded, '\n'), 0o644); err != nil {
		fatalf("writing output: %v", err)
	}
}

func inputFormat(path, override string) string {
	if override != "" {
		return strings.ToLower(override)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return "yaml"
	case ".json":
		return "json"
	}
	return ""
}

func fatalf(format string, a ...any) {
	fmt.Fprintf(os.Stderr, format+"\n", a...)
	os.Exit(1)
}
