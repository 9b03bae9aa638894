// Command langrun is the CLI entry point: it reads a script (directly, or
// via a package.yml manifest in the current directory), tokenizes and
// parses it, and evaluates it against stdout. Grounded on the teacher's
// cmd/able/main.go dispatch (`run`/`deps` subcommands, manual switch on
// os.Args, no flag/cobra library).
package main

import (
	"bytes"
	"fmt"
	"os"

	"mython/interpreter-go/pkg/driver"
	"mython/interpreter-go/pkg/interpreter"
	"mython/interpreter-go/pkg/lexer"
	"mython/interpreter-go/pkg/parser"
)

const cliToolVersion = "langrun 0.0.0-dev"

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) == 0 {
		return runEntry(nil)
	}
	switch args[0] {
	case "--help", "-h":
		printUsage()
		return 0
	case "--version", "-V", "version":
		fmt.Fprintln(os.Stdout, cliToolVersion)
		return 0
	case "run":
		return runEntry(args[1:])
	case "deps":
		return runDeps(args[1:])
	default:
		return runEntry(args)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stdout, "usage: langrun [run] <script> | langrun deps vendor | langrun --version")
}

func runEntry(args []string) int {
	var path string
	var bundlePaths []string
	switch {
	case len(args) == 1:
		path = args[0]
		bundlePaths = []string{path}
	case len(args) == 0:
		manifestPath, err := driver.FindManifest(".")
		if err != nil {
			fmt.Fprintln(os.Stderr, "langrun run requires a script path or a package.yml in the current directory")
			return 1
		}
		manifest, err := driver.LoadManifest(manifestPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "failed to load manifest: %v\n", err)
			return 1
		}
		path = manifest.EntryPath()
		bundlePaths = append(manifest.SourcePaths(), path)
	default:
		fmt.Fprintln(os.Stderr, "langrun run takes at most one script path")
		return 1
	}

	source, err := bundleSources(bundlePaths)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to read %s: %v\n", path, err)
		return 1
	}

	lex, err := lexer.NewFromBytes(source)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
		return 1
	}
	program, err := parser.Parse(lex)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
		return 1
	}

	ctx := &interpreter.StdHostContext{Writer: os.Stdout}
	if _, err := interpreter.New().Run(program, ctx); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)
		return 1
	}
	return 0
}

// bundleSources concatenates paths, in order, into a single source image.
// A manifest's sources are joined ahead of its entry script this way: a
// build-time convenience, not an in-language import.
func bundleSources(paths []string) ([]byte, error) {
	var buf bytes.Buffer
	for _, p := range paths {
		content, err := os.ReadFile(p)
		if err != nil {
			return nil, err
		}
		buf.Write(content)
		if buf.Len() > 0 && buf.Bytes()[buf.Len()-1] != '\n' {
			buf.WriteByte('\n')
		}
	}
	return buf.Bytes(), nil
}

func runDeps(args []string) int {
	if len(args) != 1 || args[0] != "vendor" {
		fmt.Fprintln(os.Stderr, "usage: langrun deps vendor")
		return 1
	}
	manifestPath, err := driver.FindManifest(".")
	if err != nil {
		fmt.Fprintln(os.Stderr, "langrun deps vendor requires a package.yml in the current directory")
		return 1
	}
	manifest, err := driver.LoadManifest(manifestPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load manifest: %v\n", err)
		return 1
	}
	if err := driver.FetchAll(manifest); err != nil {
		fmt.Fprintf(os.Stderr, "failed to vendor dependencies: %v\n", err)
		return 1
	}
	return 0
}
