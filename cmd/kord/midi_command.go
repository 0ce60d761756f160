package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"kord/internal/config"
	"kord/internal/midiexport"
	"kord/internal/notation"
	"kord/internal/textutil"
)

func newMIDICommand(ctx *commandContext) *cobra.Command {
	var output string
	var kind string
	var tempo float64
	var beats float64

	cmd := &cobra.Command{
		Use:     "midi <notation>",
		Short:   "Render a chord, scale or mode to a MIDI file",
		Example: "  kord midi Cmaj7\n  kord midi -o dorian.mid --tempo 90 D dorian",
		Args:    cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}
			n, err := notation.ParseWithType(strings.Join(args, " "), kind)
			if err != nil {
				return err
			}

			opts := midiexport.OptionsFromConfig(cfg)
			if cmd.Flags().Changed("tempo") {
				opts.Tempo = tempo
			}
			if cmd.Flags().Changed("beats") {
				opts.DurationBeats = beats
			}
			exporter, err := midiexport.New(opts, logger)
			if err != nil {
				return err
			}

			target := strings.TrimSpace(output)
			if target == "" {
				target = textutil.FileName(n.Name(), ".mid")
			}
			target, err = config.ExpandPath(target)
			if err != nil {
				return fmt.Errorf("resolve output path: %w", err)
			}
			if err := exporter.WriteFile(target, n); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %s (%d notes) to %s\n", n.Name(), len(n.Notes()), target)
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "Destination .mid file (default derived from the notation name)")
	cmd.Flags().StringVarP(&kind, "type", "t", "", "Restrict parsing to chord, scale or mode")
	cmd.Flags().Float64Var(&tempo, "tempo", 0, "Tempo in beats per minute (default from config)")
	cmd.Flags().Float64Var(&beats, "beats", 0, "Total length in quarter-note beats (default from config)")
	return cmd
}
