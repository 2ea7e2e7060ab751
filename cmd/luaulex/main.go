// Command luaulex prints the tokens of Luau source files.
//
// Usage:
//
//	luaulex [-json] [-check] [-v] [file ...]
//
// With no files it reads standard input. Diagnostics go to standard error.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/go-json-experiment/json/jsontext"

	luaulexer "github.com/msix29/luau-lexer"
	"github.com/msix29/luau-lexer/token"
	"github.com/msix29/luau-lexer/tokenjson"
)

var errMismatch = errors.New("reconstructed source differs from input")

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("luaulex", flag.ContinueOnError)
	fs.SetOutput(stderr)
	asJSON := fs.Bool("json", false, "print tokens as a JSON array")
	check := fs.Bool("check", false, "verify the tokens rebuild the input exactly")
	verbose := fs.Bool("v", false, "log lexer debug records to stderr")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	var opts []luaulexer.Option
	if *verbose {
		logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
		opts = append(opts, luaulexer.WithLogger(logger))
	}

	inputs := fs.Args()
	if len(inputs) == 0 {
		inputs = []string{"-"}
	}

	status := 0
	for _, name := range inputs {
		src, err := readInput(name, stdin)
		if err != nil {
			fmt.Fprintf(stderr, "read error: %v\n", err)
			status = 1
			continue
		}
		if err := lexFile(name, src, *asJSON, *check, opts, stdout, stderr); err != nil {
			fmt.Fprintf(stderr, "%s: %v\n", name, err)
			status = 1
		}
	}
	return status
}

func readInput(name string, stdin io.Reader) (string, error) {
	if name == "-" {
		data, err := io.ReadAll(stdin)
		return string(data), err
	}
	data, err := os.ReadFile(name)
	return string(data), err
}

func lexFile(name, src string, asJSON, check bool, opts []luaulexer.Option, stdout, stderr io.Writer) error {
	tokens := luaulexer.Tokenize(src, opts...)

	if err := luaulexer.Diagnostics(tokens); err != nil {
		for _, line := range strings.Split(err.Error(), "\n") {
			fmt.Fprintf(stderr, "%s:%s\n", name, line)
		}
	}

	if asJSON {
		if err := tokenjson.Encode(stdout, tokens, jsontext.Multiline(true), jsontext.AllowInvalidUTF8(true)); err != nil {
			return err
		}
		fmt.Fprintln(stdout)
	} else {
		for _, tok := range tokens {
			fmt.Fprintln(stdout, formatToken(tok))
		}
	}

	if check && luaulexer.Reconstruct(tokens) != src {
		return errMismatch
	}
	return nil
}

// formatToken renders tok as "start-end kind text".
func formatToken(tok token.Token) string {
	if tok.IsEOF() {
		return "EOF"
	}
	if e, ok := tok.Kind.(token.ParseError); ok {
		return fmt.Sprintf("%s-%s error %q", tok.Start, tok.End, e.Message)
	}
	return fmt.Sprintf("%s-%s %T %q", tok.Start, tok.End, tok.Kind, tok.Text())
}
