package main

import (
	"bufio"
	"errors"
	"io"
	"log"
	"os"
	"strings"

	"github.com/alecthomas/kong"
	"github.com/fatih/color"

	"github.com/mfroeh/linegrep/regex"
)

var errorPrefix = color.New(color.FgRed, color.Bold)

type cli struct {
	Extended bool   `short:"E" required:"" help:"Interpret pattern as an extended regular expression (required)."`
	Color    string `enum:"auto,always,never" default:"auto" help:"When to color diagnostics (${enum})."`
	Pattern  string `arg:"" name:"pattern" help:"Pattern to match against the input line" type:"string"`
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run reads a single line from stdin and matches it against the pattern.
// It returns 0 on a match and 1 on no match or any error.
func run(args []string, stdin io.Reader, stdout, stderr io.Writer, options ...kong.Option) int {
	logger := log.New(stderr, "", 0)

	var c cli
	options = append([]kong.Option{
		kong.Name("linegrep"),
		kong.Description("Reports whether a line read from stdin matches a pattern."),
		kong.Writers(stdout, stderr),
	}, options...)
	parser, err := kong.New(&c, options...)
	if err != nil {
		logger.Printf("%s %v", errorPrefix.Sprint("error:"), err)
		return 1
	}

	ctx, err := parser.Parse(args)
	if err != nil {
		logger.Printf("%s %v", errorPrefix.Sprint("error:"), err)
		if ctx != nil {
			_ = ctx.PrintUsage(true)
		}
		return 1
	}

	switch c.Color {
	case "always":
		color.NoColor = false
	case "never":
		color.NoColor = true
	}

	line, err := readLine(stdin)
	if err != nil {
		logger.Printf("%s failed to read input: %v", errorPrefix.Sprint("error:"), err)
		return 1
	}

	matched, err := regex.Match(line, c.Pattern)
	if err != nil {
		logger.Printf("%s %v", errorPrefix.Sprint("error:"), err)
		return 1
	}
	if !matched {
		return 1
	}
	return 0
}

// readLine returns the first line of r without its line terminator.
func readLine(r io.Reader) (string, error) {
	line, err := bufio.NewReader(r).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}
