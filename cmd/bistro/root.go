package main

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/go-preform/bistro"
	"github.com/go-preform/bistro/scenario"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

func newRootCmd(v *viper.Viper) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "bistro",
		Short:         "Run the virtual bistro dish queue",
		Long:          `Loads a bistro scenario (stations, dishes, backup pool and queue) and runs processing passes over the dish queue.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPasses(cmd, v)
		},
	}
	rootCmd.PersistentFlags().StringP("scenario", "s", "", "scenario YAML file (default: built-in demo)")
	rootCmd.PersistentFlags().String("log-level", "warn", "log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().String("log-format", "console", "log format (console, json)")
	rootCmd.Flags().IntP("passes", "n", 1, "number of processing passes")
	rootCmd.Flags().Bool("trace", false, "emit pass events to the global OpenTelemetry tracer")
	rootCmd.Flags().Bool("show-queue", false, "print the remaining dish queue after the last pass")

	_ = v.BindPFlag("scenario", rootCmd.PersistentFlags().Lookup("scenario"))
	_ = v.BindPFlag("log.level", rootCmd.PersistentFlags().Lookup("log-level"))
	_ = v.BindPFlag("log.format", rootCmd.PersistentFlags().Lookup("log-format"))
	_ = v.BindPFlag("passes", rootCmd.Flags().Lookup("passes"))
	_ = v.BindPFlag("trace", rootCmd.Flags().Lookup("trace"))
	_ = v.BindPFlag("show_queue", rootCmd.Flags().Lookup("show-queue"))
	v.SetEnvPrefix("bistro")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_", "-", "_"))
	v.AutomaticEnv()

	rootCmd.AddCommand(&cobra.Command{
		Use:   "dump",
		Short: "Print the scenario as YAML",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadScenario(v.GetString("scenario"))
			if err != nil {
				return err
			}
			raw, err := s.Marshal()
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(raw)
			return err
		},
	})
	return rootCmd
}

func runPasses(cmd *cobra.Command, v *viper.Viper) error {
	logger, err := newLogger(cmd.ErrOrStderr(), v.GetString("log.level"), v.GetString("log.format"))
	if err != nil {
		return err
	}
	s, err := loadScenario(v.GetString("scenario"))
	if err != nil {
		return err
	}
	m, err := s.Build()
	if err != nil {
		return fmt.Errorf("build scenario: %w", err)
	}
	passes := v.GetInt("passes")
	if passes < 1 {
		return fmt.Errorf("passes must be at least 1, got %d", passes)
	}

	var (
		sink     bistro.IEventSink = bistro.NewChainSink(bistro.NewConsoleSink(cmd.OutOrStdout()), bistro.NewZeroLogSink(&logger))
		provider *sdktrace.TracerProvider
	)
	if v.GetBool("trace") {
		if provider, err = newTracerProvider(cmd.ErrOrStderr()); err != nil {
			return err
		}
		sink = bistro.NewChainSink(sink, bistro.NewOtelSink(context.Background(), provider.Tracer("bistro")))
	}
	m.SetLogger(&logger).SetSink(sink)
	for i := 0; i < passes; i++ {
		m.ProcessAllDishes()
	}
	if err = shutdownTracer(provider); err != nil {
		logger.Error().Err(err).Msg("tracer shutdown")
	}
	logger.Info().Int("passes", passes).Int("remaining", m.QueueLength()).Msg("done")
	if v.GetBool("show_queue") {
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Remaining dishes:")
		m.DisplayDishQueue(cmd.OutOrStdout())
	}
	return nil
}

func loadScenario(path string) (*scenario.Scenario, error) {
	if path == "" {
		return scenario.Demo(), nil
	}
	return scenario.Load(path)
}

func newLogger(w io.Writer, level, format string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), fmt.Errorf("invalid log level %q: %w", level, err)
	}
	switch format {
	case "json":
	case "console":
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen, NoColor: true}
	default:
		return zerolog.Nop(), fmt.Errorf("invalid log format %q", format)
	}
	return zerolog.New(w).Level(lvl).With().Timestamp().Logger(), nil
}
