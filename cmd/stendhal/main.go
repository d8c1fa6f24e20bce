package main

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/pflag"
	"golang.org/x/term"
	"pkt.systems/stendhal"
	"pkt.systems/version"
)

func init() {
	version.SetDefaultModule("pkt.systems/stendhal")
}

func main() {
	var (
		outPath    string
		validate   bool
		listColors bool
	)

	flags := pflag.NewFlagSet("stendhal", pflag.ExitOnError)
	flags.StringVarP(&outPath, "output", "o", "", "Output file instead of stdout")
	flags.BoolVar(&validate, "validate", false, "Reject input that is not valid UTF-8 text")
	flags.BoolVar(&listColors, "list-colors", false, "List the format-code color table")

	flags.SetInterspersed(true)
	flags.Usage = func() {
		fmt.Fprintln(os.Stderr, version.Module(), version.Current())
		fmt.Fprintf(os.Stderr, "Usage: stendhal [flags] [input]\n")
		fmt.Fprintln(os.Stderr, "\nInput may be a file path or an http(s) URL.")
		fmt.Fprintln(os.Stderr, "If no input is provided, Stendhal markup is read from stdin.")
		fmt.Fprintln(os.Stderr, "\nFlags:")
		flags.PrintDefaults()
	}

	if err := flags.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}

	if listColors {
		printColors()
		return
	}

	args := flags.Args()
	if len(args) > 1 {
		fmt.Fprintln(os.Stderr, "expected at most one input")
		flags.Usage()
		os.Exit(2)
	}

	writer, closeOut, err := resolveOutput(outPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open output: %v\n", err)
		os.Exit(1)
	}
	if closeOut != nil {
		defer func() { _ = closeOut.Close() }()
	}

	var opts []stendhal.Option
	if validate {
		opts = append(opts, stendhal.WithInputValidation(true))
	}

	if len(args) == 1 && isURL(args[0]) {
		err := stendhal.HTTPConvert(context.Background(), stendhal.HTTPConvertRequest{
			URL:     args[0],
			Writer:  writer,
			Options: opts,
		})
		if err != nil {
			fmt.Fprintf(os.Stderr, "convert: %v\n", err)
			os.Exit(1)
		}
		return
	}

	reader, closeIn, err := openInput(args)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open input: %v\n", err)
		os.Exit(1)
	}
	if closeIn != nil {
		defer func() { _ = closeIn.Close() }()
	}

	err = stendhal.Convert(stendhal.ConvertRequest{
		Reader:  reader,
		Writer:  writer,
		Options: opts,
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "convert: %v\n", err)
		os.Exit(1)
	}
}

func printColors() {
	for _, c := range stendhal.Colors() {
		fmt.Fprintf(os.Stdout, "%s\t%s\t%s\n", c.Format(), c.Name(), c.Foreground().Hex())
	}
}

func isURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	scheme := strings.ToLower(u.Scheme)
	return scheme == "http" || scheme == "https"
}

func openInput(args []string) (io.Reader, io.Closer, error) {
	if len(args) == 0 {
		if term.IsTerminal(int(os.Stdin.Fd())) {
			fmt.Fprintln(os.Stderr, "reading Stendhal markup from terminal; finish with Ctrl-D")
		}
		return os.Stdin, nil, nil
	}
	f, err := os.Open(normalizePath(args[0]))
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func resolveOutput(path string) (io.Writer, io.Closer, error) {
	if strings.TrimSpace(path) == "" {
		return os.Stdout, nil, nil
	}
	clean := normalizePath(path)
	dir := filepath.Dir(clean)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, nil, err
		}
	}
	f, err := os.Create(clean)
	if err != nil {
		return nil, nil, err
	}
	return f, f, nil
}

func normalizePath(path string) string {
	if strings.HasPrefix(path, "~/") || path == "~" {
		home, err := os.UserHomeDir()
		if err == nil {
			if path == "~" {
				path = home
			} else {
				path = filepath.Join(home, path[2:])
			}
		}
	}
	abs, err := filepath.Abs(path)
	if err == nil {
		return abs
	}
	return path
}
