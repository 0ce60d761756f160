package main

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"kord/internal/api"
)

var titleCaser = cases.Title(language.English)

func newDescribeCommand(ctx *commandContext) *cobra.Command {
	var kind string
	var asJSON bool

	cmd := &cobra.Command{
		Use:     "describe <notation>",
		Aliases: []string{"parse"},
		Short:   "Parse a chord, scale or mode and list its notes",
		Example: "  kord describe Cm7b5\n  kord describe D dorian\n  kord describe --type scale C major",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := ctx.service()
			if err != nil {
				return err
			}
			result, err := svc.Describe(cmd.Context(), strings.Join(args, " "), kind)
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd, result)
			}
			printNotation(cmd.OutOrStdout(), result)
			return nil
		},
	}

	cmd.Flags().StringVarP(&kind, "type", "t", "", "Restrict parsing to chord, scale or mode")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

func printNotation(out io.Writer, n api.Notation) {
	fmt.Fprintf(out, "%s: %s\n", titleCaser.String(n.Kind), n.Name)
	if n.PreciseName != n.Name {
		fmt.Fprintf(out, "Precise name: %s\n", n.PreciseName)
	}
	fmt.Fprintf(out, "Description: %s\n", n.Description)
	if n.Quality != "" {
		fmt.Fprintf(out, "Quality: %s\n", n.Quality)
	}
	if n.Slash != nil {
		fmt.Fprintf(out, "Bass: %s\n", n.Slash.Name)
	}
	if n.Inversion > 0 {
		fmt.Fprintf(out, "Inversion: %d\n", n.Inversion)
	}

	rows := make([][]string, 0, len(n.Notes))
	for _, note := range n.Notes {
		rows = append(rows, []string{note.Name, note.ASCII, strconv.Itoa(note.Octave), strconv.Itoa(note.MIDI)})
	}
	fmt.Fprintln(out, renderTable(out, []string{"Note", "ASCII", "Octave", "MIDI"}, rows,
		[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight}))

	if len(n.ScaleCandidates) > 0 {
		fmt.Fprintln(out, "Scale suggestions:")
		fmt.Fprintln(out, renderScaleCandidates(out, n.ScaleCandidates))
	}
}

func renderScaleCandidates(out io.Writer, candidates []api.ScaleCandidate) string {
	rows := make([][]string, 0, len(candidates))
	for _, c := range candidates {
		rows = append(rows, []string{
			strconv.Itoa(c.Rank),
			c.Name,
			strings.Join(c.Notes, " "),
			c.Reason,
		})
	}
	return renderTable(out, []string{"#", "Scale", "Notes", "Why"}, rows,
		[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft})
}

func newScalesCommand(ctx *commandContext) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "scales <chord>",
		Short: "Suggest scales and modes that fit a chord",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := ctx.service()
			if err != nil {
				return err
			}
			candidates, err := svc.Scales(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd, candidates)
			}
			out := cmd.OutOrStdout()
			if len(candidates) == 0 {
				fmt.Fprintln(out, "No scale suggestions")
				return nil
			}
			fmt.Fprintln(out, renderScaleCandidates(out, candidates))
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}
