package main

import (
	"github.com/spf13/cobra"

	"sdrthumb/internal/logging"
	"sdrthumb/internal/preflight"
	"sdrthumb/internal/sox"
	"sdrthumb/internal/thumbnail"
)

func newRootCommand() *cobra.Command {
	var configFlag string
	var render renderFlags
	var logs logFlags

	ctx := newCommandContext(&configFlag, &logs)

	rootCmd := &cobra.Command{
		Use:   "sdrthumb [flags] <path>...",
		Short: "Create spectrogram thumbnails for SDR capture files",
		Long: "Create spectrogram thumbnails for SDR capture files.\n\n" +
			"Directories are processed recursively. Accepts " + supportedFormatsHelp() + ".\n" +
			"Each thumbnail is written next to its capture as <file>.png.",
		Args:          cobra.MinimumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if shouldSkipConfig(cmd) {
				return nil
			}
			_, err := ctx.ensureConfig()
			return err
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			settings := cfg.Render
			if err := render.apply(cmd.Flags(), &settings); err != nil {
				return err
			}
			logger, err := ctx.ensureLogger(cmd)
			if err != nil {
				return err
			}

			if check := preflight.CheckRenderer(cfg.SoxBinary()); !check.Passed {
				logger.Warn("sox unavailable; thumbnails will not be written",
					logging.String("detail", check.Detail),
				)
			}

			dispatcher := thumbnail.NewDispatcher(
				sox.New(sox.WithBinary(cfg.SoxBinary())),
				thumbnail.Options{Width: settings.Width, Height: settings.Height, Jobs: settings.Jobs},
				logger,
			)
			_, err = dispatcher.Run(cmd.Context(), args)
			return err
		},
	}

	rootCmd.PersistentFlags().StringVarP(&configFlag, "config", "c", "", "Configuration file path")
	logs.register(rootCmd.PersistentFlags())
	render.register(rootCmd.Flags())

	rootCmd.AddCommand(newFormatsCommand())
	rootCmd.AddCommand(newDoctorCommand(ctx))
	rootCmd.AddCommand(newConfigCommand())

	return rootCmd
}
