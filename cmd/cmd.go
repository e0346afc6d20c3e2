package cmd

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rubiojr/sortkit/bubble"
	"github.com/urfave/cli/v3"
	"golang.org/x/term"
)

// Execute runs the sortkit CLI with the given version string.
func Execute(version string) {
	cmd := &cli.Command{
		Name:                   "sortkit",
		Usage:                  "Bubble sort for lists of numbers",
		Version:                version,
		UseShortOptionHandling: true,
		// Allow `sortkit 3 1 2` as shorthand for `sortkit sort 3 1 2`
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.NArg() > 0 && isNumber(cmd.Args().First()) {
				return sortTokens(cmd.Args().Slice(), sortOptions{color: colorEnabled(false)})
			}
			return cli.DefaultShowRootCommandHelp(cmd)
		},
		Commands: []*cli.Command{
			{
				Name:   "demo",
				Usage:  "Sort the classic example array, printing it before and after",
				Action: demoAction,
			},
			{
				Name:      "sort",
				Usage:     "Sort numbers given as arguments or read from stdin",
				ArgsUsage: "[numbers...]",
				Flags: []cli.Flag{
					&cli.BoolFlag{
						Name:    "adaptive",
						Aliases: []string{"a"},
						Usage:   "Stop early once a pass performs no swaps",
					},
					&cli.BoolFlag{
						Name:    "verify",
						Aliases: []string{"V"},
						Usage:   "Print a sortedness check after sorting",
					},
					&cli.BoolFlag{
						Name:    "no-color",
						Aliases: []string{"C"},
						Usage:   "Disable ANSI color output",
					},
				},
				Action: sortAction,
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// demoAction reproduces the canonical bubble sort demonstration: the
// original array is printed, a copy is sorted, and the result is printed.
func demoAction(ctx context.Context, cmd *cli.Command) error {
	numbers := []int{64, 34, 25, 12, 22, 11, 90}
	fmt.Println("Original array:", numbers)
	fmt.Println("Sorted array:", bubble.Sorted(numbers))
	return nil
}

func sortAction(ctx context.Context, cmd *cli.Command) error {
	tokens := cmd.Args().Slice()
	if len(tokens) == 0 {
		input, err := io.ReadAll(os.Stdin)
		if err != nil {
			return fmt.Errorf("reading stdin: %w", err)
		}
		tokens = splitTokens(string(input))
	}
	if len(tokens) == 0 {
		return fmt.Errorf("usage: sortkit sort [numbers...] (or pipe numbers on stdin)")
	}

	opts := sortOptions{
		adaptive: cmd.Bool("adaptive"),
		verify:   cmd.Bool("verify"),
		color:    colorEnabled(cmd.Bool("no-color")),
	}
	return sortTokens(tokens, opts)
}

type sortOptions struct {
	adaptive bool
	verify   bool
	color    bool
}

// sortTokens parses tokens as integers when possible, falling back to
// floats if any token is fractional, then sorts and prints the result.
func sortTokens(tokens []string, opts sortOptions) error {
	if ints, ok := parseInts(tokens); ok {
		return printSorted(ints, opts)
	}
	floats, err := parseFloats(tokens)
	if err != nil {
		return err
	}
	return printSorted(floats, opts)
}

func printSorted[E interface{ ~int64 | ~float64 }](values []E, opts sortOptions) error {
	if opts.adaptive {
		bubble.SortAdaptive(values)
	} else {
		bubble.Sort(values)
	}

	var sb strings.Builder
	for i, v := range values {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "%v", v)
	}
	fmt.Println(sb.String())

	if opts.verify {
		colorOK, colorReset := "\033[32m", "\033[0m"
		if !opts.color {
			colorOK, colorReset = "", ""
		}
		// Always true after sorting; printed so scripts can assert on it
		// without re-parsing the output.
		fmt.Printf("sorted: %s%v%s\n", colorOK, bubble.IsSorted(values), colorReset)
	}
	return nil
}

// colorEnabled applies the usual conventions: an explicit flag or the
// NO_COLOR environment variable wins, otherwise color is used only when
// stdout is a terminal.
func colorEnabled(noColorFlag bool) bool {
	if noColorFlag || os.Getenv("NO_COLOR") != "" {
		return false
	}
	return term.IsTerminal(int(os.Stdout.Fd()))
}

// splitTokens breaks stdin input into number tokens. Commas count as
// separators so "1, 2, 3" works as well as whitespace-separated input.
func splitTokens(s string) []string {
	return strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
}

func isNumber(s string) bool {
	if _, err := strconv.ParseInt(s, 10, 64); err == nil {
		return true
	}
	_, err := strconv.ParseFloat(s, 64)
	return err == nil
}

func parseInts(tokens []string) ([]int64, bool) {
	out := make([]int64, 0, len(tokens))
	for _, tok := range tokens {
		v, err := strconv.ParseInt(tok, 10, 64)
		if err != nil {
			return nil, false
		}
		out = append(out, v)
	}
	return out, true
}

func parseFloats(tokens []string) ([]float64, error) {
	out := make([]float64, 0, len(tokens))
	for _, tok := range tokens {
		v, err := strconv.ParseFloat(tok, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number %q", tok)
		}
		out = append(out, v)
	}
	return out, nil
}
