// pqtext - wire-text conversion CLI
//
// Usage:
//
//	pqtext parse --type <name> <text>   Parse wire text, print the value
//	pqtext render --type <name> <text>  Print the canonical wire text
//	pqtext check --type <name> [file]   Validate one value per input line
//	pqtext types                        List supported type names
//
// Data goes to stdout; diagnostics go to stderr. If no file is given,
// check reads from stdin.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Neumenon/pqtext/pqtext"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "pqtext",
		Short:         "Convert between database wire-format text and native values",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	root.AddCommand(newParseCmd(), newRenderCmd(), newCheckCmd(), newTypesCmd())
	return root
}

func codecFlag(cmd *cobra.Command) *string {
	typeName := cmd.Flags().StringP("type", "t", "", "destination type name (see 'pqtext types')")
	_ = cmd.MarkFlagRequired("type")
	return typeName
}

func lookupCodec(name string) (pqtext.ScanCodec, error) {
	sc, ok := pqtext.CodecByName(name)
	if !ok {
		return pqtext.ScanCodec{}, fmt.Errorf("unknown type %q (see 'pqtext types')", name)
	}
	return sc, nil
}

func newParseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "parse <text>",
		Short: "Parse wire text and print the resulting value",
		Args:  cobra.ExactArgs(1),
	}
	typeName := codecFlag(cmd)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		sc, err := lookupCodec(*typeName)
		if err != nil {
			return err
		}
		v, err := sc.Parse(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%v\n", v)
		return nil
	}
	return cmd
}

func newRenderCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render <text>",
		Short: "Parse wire text and print its canonical rendering",
		Args:  cobra.ExactArgs(1),
	}
	typeName := codecFlag(cmd)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		sc, err := lookupCodec(*typeName)
		if err != nil {
			return err
		}
		text, err := canonicalize(sc, args[0])
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), text)
		return nil
	}
	return cmd
}

func newCheckCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "check [file]",
		Short: "Validate one wire value per input line",
		Args:  cobra.MaximumNArgs(1),
	}
	typeName := codecFlag(cmd)
	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		sc, err := lookupCodec(*typeName)
		if err != nil {
			return err
		}

		input := cmd.InOrStdin()
		if len(args) == 1 && args[0] != "-" {
			f, err := os.Open(args[0])
			if err != nil {
				return err
			}
			defer f.Close()
			input = f
		}

		bad, err := checkLines(cmd.OutOrStdout(), sc, input)
		if err != nil {
			return err
		}
		if bad > 0 {
			return fmt.Errorf("%d invalid line(s)", bad)
		}
		return nil
	}
	return cmd
}

// checkLines validates each line against the codec's parse contract and
// reports per-line results. It returns the number of invalid lines.
func checkLines(out io.Writer, sc pqtext.ScanCodec, r io.Reader) (bad int, err error) {
	scanner := bufio.NewScanner(r)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := scanner.Text()
		if _, perr := sc.Parse(line); perr != nil {
			bad++
			fmt.Fprintf(out, "%d: invalid: %v\n", lineno, perr)
			continue
		}
		fmt.Fprintf(out, "%d: ok\n", lineno)
	}
	return bad, scanner.Err()
}

func newTypesCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "types",
		Short: "List supported type names",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			names := pqtext.TypeNames()
			sort.Strings(names)
			fmt.Fprintln(cmd.OutOrStdout(), strings.Join(names, "\n"))
		},
	}
}

// canonicalize parses wire text and re-renders it in canonical form.
func canonicalize(sc pqtext.ScanCodec, text string) (string, error) {
	v, err := sc.Parse(text)
	if err != nil {
		return "", err
	}
	return sc.Render(v)
}
