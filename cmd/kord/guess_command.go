package main

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"kord/internal/api"
)

func newGuessCommand(ctx *commandContext) *cobra.Command {
	var classes bool
	var chromaVector []float64
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "guess <notes...>",
		Short: "Guess chords that match a set of notes",
		Long: "Guess chords from spelled notes (C3 E3 G3), from pitch classes with --classes,\n" +
			"or from a 12-bin chroma vector with --chroma.",
		Example: "  kord guess E3 G3 C4\n  kord guess --classes A,C,E\n  kord guess --chroma 1,0,0,0,.8,0,0,.9,0,0,0,0",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, err := ctx.service()
			if err != nil {
				return err
			}
			var result api.CandidateList
			switch {
			case len(chromaVector) > 0:
				if len(args) > 0 || classes {
					return errors.New("--chroma cannot be combined with notes or --classes")
				}
				result, err = svc.GuessChroma(cmd.Context(), chromaVector)
			case len(args) == 0:
				return errors.New("at least one note is required")
			case classes:
				result, err = svc.GuessClasses(cmd.Context(), args)
			default:
				result, err = svc.GuessNotes(cmd.Context(), args)
			}
			if err != nil {
				return err
			}
			if asJSON {
				return writeJSON(cmd, result)
			}
			printCandidates(cmd.OutOrStdout(), result)
			return nil
		},
	}

	cmd.Flags().BoolVar(&classes, "classes", false, "Treat arguments as pitch classes without octaves")
	cmd.Flags().Float64SliceVar(&chromaVector, "chroma", nil, "Comma-separated 12-bin chroma vector starting at C")
	cmd.Flags().BoolVar(&asJSON, "json", false, "Output as JSON")
	return cmd
}

func printCandidates(out io.Writer, list api.CandidateList) {
	fmt.Fprintf(out, "Input: %s\n", strings.Join(list.Input, " "))
	if len(list.Candidates) == 0 {
		fmt.Fprintln(out, "No matching chords")
		return
	}
	rows := make([][]string, 0, len(list.Candidates))
	for _, c := range list.Candidates {
		rows = append(rows, []string{
			strconv.Itoa(c.Rank),
			c.Name,
			c.Description,
			strings.Join(c.Notes, " "),
			strconv.Itoa(c.Distance),
			yesNo(c.Exact),
		})
	}
	fmt.Fprintln(out, renderTable(out,
		[]string{"#", "Chord", "Description", "Notes", "Distance", "Exact"},
		rows,
		[]columnAlignment{alignRight, alignLeft, alignLeft, alignLeft, alignRight, alignLeft},
	))
}
