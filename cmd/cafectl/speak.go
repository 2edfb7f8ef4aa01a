package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"boum-cafe/speech"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

func speakCmd(e *env) *cobra.Command {
	var out string
	var raw bool

	cmd := &cobra.Command{
		Use:   "speak TEXT",
		Short: "Synthesize an announcement into a WAV file",
		Example: `  cafectl speak "잠시 후 매장 정리가 시작됩니다." --out notice.wav
  cafectl speak "테스트" --out test.wav --raw`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text := strings.TrimSpace(args[0])
			if text == "" {
				return errors.New("text is required")
			}
			if !raw {
				text = speech.BroadcastText(text)
			}

			wav, err := e.synth().Synthesize(cmd.Context(), text)
			if err != nil {
				return err
			}
			if err := os.WriteFile(out, wav, 0644); err != nil {
				return err
			}
			fmt.Fprintln(e.out, color.GreenString("✓"), fmt.Sprintf("wrote %s (%d bytes)", out, len(wav)))
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "WAV file to write")
	cmd.Flags().BoolVar(&raw, "raw", false, "speak TEXT as is, without the opening and closing lines")
	cmd.MarkFlagRequired("out")
	return cmd
}
