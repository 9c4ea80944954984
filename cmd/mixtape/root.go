package main

import (
	"fmt"
	"os/exec"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"mixtape/internal/audio"
	"mixtape/internal/combine"
	"mixtape/internal/config"
	"mixtape/internal/errors"
	"mixtape/internal/files"
	"mixtape/internal/log"
	"mixtape/internal/tui"
)

var (
	cfgFile string
	cfg     *config.Config
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	var (
		silenceMs int
		format    string
		bitrate   string
		debug     bool
	)

	rootCmd := &cobra.Command{
		Use:     "mixtape <input_folder> <output_file>",
		Short:   "Arrange and combine the audio files of a folder into one track",
		Long: `Mixtape lists the audio files of a folder, lets you reorder them
interactively, and combines the final order into a single output file
with a silence gap between tracks.

Navigation: arrow keys move the focus, Enter picks a track up (the
arrows then move it in the list), 'c' combines in the current order,
'q' quits without writing anything.`,
		Version: version,
		Args:    cobra.ExactArgs(2),
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// Load config
			var configErr error
			if cfgFile != "" {
				cfg, configErr = config.LoadConfigFile(cfgFile)
			} else {
				cfg, configErr = config.LoadConfig()
			}
			if configErr != nil {
				log.Warn("could not load config, using defaults: %v", configErr)
				cfg = config.New()
			}

			// Flags override file values
			if cmd.Flags().Changed("silence") {
				cfg.Combine.SilenceMs = silenceMs
			}
			if cmd.Flags().Changed("format") {
				cfg.Combine.Format = format
			}
			if cmd.Flags().Changed("bitrate") {
				cfg.Combine.Bitrate = bitrate
			}
			if cmd.Flags().Changed("debug") {
				cfg.Settings.Debug = debug
			}
			log.SetDebug(cfg.Settings.Debug)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(args[0], args[1])
		},
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is $HOME/.config/mixtape/config.yaml)")
	rootCmd.Flags().IntVar(&silenceMs, "silence", 3000, "silence between tracks in milliseconds")
	rootCmd.Flags().StringVar(&format, "format", "mp3", "output format (mp3, wav, or any ffmpeg muxer)")
	rootCmd.Flags().StringVar(&bitrate, "bitrate", "320k", "output bitrate for compressed formats")
	rootCmd.Flags().BoolVar(&debug, "debug", false, "enable debug logging")

	return rootCmd
}

func run(inputDir, outputPath string) error {
	// Compressed output goes through ffmpeg; warn up front rather than
	// after the user has finished arranging tracks.
	if !strings.EqualFold(cfg.Combine.Format, "wav") {
		if _, err := exec.LookPath("ffmpeg"); err != nil {
			log.Warn("ffmpeg not found on PATH; writing %s output will fail", cfg.Combine.Format)
		}
	}

	tracks, err := files.List(inputDir, cfg.Files.Patterns)
	if err != nil {
		return err
	}
	if len(tracks) == 0 {
		return errors.NewFileError("no matching audio files found in", inputDir, errors.NoMatchingFiles, nil)
	}

	// The bubbletea program owns raw mode and restores the terminal on
	// every exit path, including panics and interrupts.
	m := tui.New(tracks, inputDir, outputPath, cfg)
	p := tea.NewProgram(m)
	res, err := p.Run()
	if err != nil {
		return fmt.Errorf("running editor: %w", err)
	}

	final, ok := res.(tui.Model)
	if !ok || final.Outcome() != tui.OutcomeCombine {
		fmt.Println("Exiting mixtape, nothing written.")
		return nil
	}

	return runCombine(final.Tracks(), inputDir, outputPath)
}

func runCombine(tracks []string, inputDir, outputPath string) error {
	fmt.Println("Files will be combined in this order:")
	for i, name := range tracks {
		fmt.Printf("%d. %s\n", i+1, name)
	}
	fmt.Printf("\nOutput will be saved to: %s\n\n", outputPath)

	engine := combine.New(audio.NewBeepCodec(), cfg)
	engine.SetProgress(func(ev combine.Event) {
		switch ev.Kind {
		case combine.TrackStarted:
			fmt.Printf("Processing: %s\n", ev.Track)
		case combine.GapInserted:
			fmt.Printf("Added %.1f seconds of silence\n", ev.Gap.Seconds())
		case combine.Encoding:
			fmt.Printf("\nSaving combined audio to %s...\n", outputPath)
		}
	})

	summary, err := engine.Combine(tracks, inputDir, outputPath)
	if err != nil {
		return err
	}

	fmt.Printf("Successfully saved combined audio to %s\n", summary.Output)
	fmt.Printf("Total duration: %.2f seconds\n", summary.Duration.Seconds())
	if len(summary.Skipped) > 0 {
		fmt.Printf("Skipped %d of %d files: %s\n",
			len(summary.Skipped), len(tracks), strings.Join(summary.Skipped, ", "))
	}
	return nil
}
