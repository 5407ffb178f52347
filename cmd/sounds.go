package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/abhisek/shizi/internal/audio"
	"github.com/spf13/cobra"
)

var soundsCmd = &cobra.Command{
	Use:   "sounds",
	Short: "Play or export the game's sound effects",
}

var soundsListCmd = &cobra.Command{
	Use:   "list",
	Short: "List sound cues",
	Run: func(cmd *cobra.Command, args []string) {
		for _, c := range audio.Cues {
			fmt.Printf("%-8s  %.2fs  %d voice(s)\n", c, audio.Duration(c), len(audio.Voices(c)))
		}
	},
}

var soundsPlayCmd = &cobra.Command{
	Use:   "play <cue>",
	Short: "Play one cue on the audio device",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := parseCue(args[0])
		if err != nil {
			return err
		}

		dev := audio.Device()
		if err := dev.Wait(); err != nil {
			return err
		}
		if err := dev.Play(audio.Render(c, dev.SampleRate())); err != nil {
			return fmt.Errorf("play %s: %w", c, err)
		}
		// Playback is asynchronous; keep the process alive until it ends.
		time.Sleep(time.Duration(audio.Duration(c)*float64(time.Second)) + 100*time.Millisecond)
		return dev.Suspend()
	},
}

var soundsExportCmd = &cobra.Command{
	Use:   "export <dir>",
	Short: "Write every cue as a WAV file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		rate, _ := cmd.Flags().GetInt("rate")
		dir := args[0]
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}

		for _, c := range audio.Cues {
			path := filepath.Join(dir, string(c)+".wav")
			if err := exportCue(path, c, rate); err != nil {
				return err
			}
			fmt.Println("wrote", path)
		}
		return nil
	},
}

func exportCue(path string, c audio.Cue, rate int) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := audio.WriteWAV(f, c, rate); err != nil {
		f.Close()
		return fmt.Errorf("export %s: %w", c, err)
	}
	return f.Close()
}

func parseCue(name string) (audio.Cue, error) {
	c := audio.Cue(name)
	if !slices.Contains(audio.Cues, c) {
		return "", fmt.Errorf("unknown cue %q (want one of %v)", name, audio.Cues)
	}
	return c, nil
}

func init() {
	soundsExportCmd.Flags().Int("rate", audio.SampleRate, "Sample rate in Hz")

	soundsCmd.AddCommand(soundsListCmd)
	soundsCmd.AddCommand(soundsPlayCmd)
	soundsCmd.AddCommand(soundsExportCmd)
}
