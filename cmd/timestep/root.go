package main

import (
	"fmt"
	"io"
	"iter"
	"time"

	"github.com/spf13/cobra"

	"github.com/reugn/go-timerange/internal/config"
	"github.com/reugn/go-timerange/logger"
	"github.com/reugn/go-timerange/timerange"
)

type app struct {
	zone     string
	logLevel string
	limit    int
}

func newRootCmd(cfg config.Config) *cobra.Command {
	a := &app{}
	root := &cobra.Command{
		Use:   "timestep",
		Short: "Print the points of a stepped date or time range",
		Long: `timestep prints every point of an inclusive range, advancing from the
start by a fixed step until the end bound is passed.

Steps are ISO 8601 periods (P1M, P7D, PT3H, P1DT12H) for dates and
date-times, and Go durations or cron expressions for instants.`,
		SilenceUsage: true,
	}

	flags := root.PersistentFlags()
	flags.StringVar(&a.zone, "zone", cfg.Zone, "IANA location used to resolve date-times (env TIMESTEP_ZONE)")
	flags.StringVar(&a.logLevel, "log-level", cfg.LogLevel, "diagnostic log level (env TIMESTEP_LOG_LEVEL)")
	flags.IntVar(&a.limit, "limit", cfg.Limit, "maximum number of printed values (env TIMESTEP_LIMIT)")

	root.AddCommand(a.datesCmd(), a.dateTimesCmd(), a.instantsCmd())
	return root
}

func (a *app) datesCmd() *cobra.Command {
	var step string
	cmd := &cobra.Command{
		Use:   "dates START END",
		Short: "Step through calendar dates",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := a.options(cmd)
			if err != nil {
				return err
			}
			start, err := timerange.ParseDate(args[0])
			if err != nil {
				return err
			}
			end, err := timerange.ParseDate(args[1])
			if err != nil {
				return err
			}
			period, err := timerange.ParsePeriod(step)
			if err != nil {
				return err
			}
			p, err := timerange.NewDateRange(start, end).Step(period, opts...)
			if err != nil {
				return err
			}
			return printAll(cmd.OutOrStdout(), p.All(), a.limit, timerange.Date.String)
		},
	}
	cmd.Flags().StringVar(&step, "step", "P1D", "ISO 8601 period without a time part")
	return cmd
}

func (a *app) dateTimesCmd() *cobra.Command {
	var step string
	cmd := &cobra.Command{
		Use:   "datetimes START END",
		Short: "Step through local date-times",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := a.options(cmd)
			if err != nil {
				return err
			}
			start, err := timerange.ParseDateTime(args[0])
			if err != nil {
				return err
			}
			end, err := timerange.ParseDateTime(args[1])
			if err != nil {
				return err
			}
			period, err := timerange.ParseDateTimePeriod(step)
			if err != nil {
				return err
			}

			r := timerange.NewDateTimeRange(start, end)
			var seq iter.Seq2[timerange.DateTime, error]
			switch {
			case period.Duration == 0:
				p, err := r.StepPeriod(period.Period, opts...)
				if err != nil {
					return err
				}
				seq = p.All()
			case period.Period.IsZero():
				p, err := r.StepDuration(period.Duration, opts...)
				if err != nil {
					return err
				}
				seq = p.All()
			default:
				p, err := r.StepDateTimePeriod(period, opts...)
				if err != nil {
					return err
				}
				seq = p.All()
			}
			return printAll(cmd.OutOrStdout(), seq, a.limit, timerange.DateTime.String)
		},
	}
	cmd.Flags().StringVar(&step, "step", "P1D", "ISO 8601 period, optionally with a time part")
	return cmd
}

func (a *app) instantsCmd() *cobra.Command {
	var (
		step time.Duration
		cron string
	)
	cmd := &cobra.Command{
		Use:   "instants START END",
		Short: "Step through RFC 3339 instants",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := a.options(cmd)
			if err != nil {
				return err
			}
			start, err := time.Parse(time.RFC3339Nano, args[0])
			if err != nil {
				return fmt.Errorf("%w: %v", timerange.ErrIllegalArgument, err)
			}
			end, err := time.Parse(time.RFC3339Nano, args[1])
			if err != nil {
				return fmt.Errorf("%w: %v", timerange.ErrIllegalArgument, err)
			}

			r := timerange.NewInstantRange(start, end)
			var seq iter.Seq2[time.Time, error]
			if cron != "" {
				p, err := r.StepCron(cron, opts...)
				if err != nil {
					return err
				}
				seq = p.All()
			} else {
				p, err := r.Step(step, opts...)
				if err != nil {
					return err
				}
				seq = p.All()
			}
			return printAll(cmd.OutOrStdout(), seq, a.limit, func(t time.Time) string {
				return t.Format(time.RFC3339Nano)
			})
		},
	}
	cmd.Flags().DurationVar(&step, "step", 24*time.Hour, "elapsed time between instants")
	cmd.Flags().StringVar(&cron, "cron", "", "cron expression selecting the instants, overrides --step")
	return cmd
}

// options builds the progression options from the persistent flags.
func (a *app) options(cmd *cobra.Command) ([]timerange.Option, error) {
	cfg := config.Config{Zone: a.zone, LogLevel: a.logLevel, Limit: a.limit}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	loc, err := cfg.Location()
	if err != nil {
		return nil, err
	}
	return []timerange.Option{
		timerange.WithLocation(loc),
		timerange.WithLogger(logger.NewSlogTextLogger(cmd.ErrOrStderr(), cfg.Level())),
	}, nil
}

func printAll[T any](w io.Writer, seq iter.Seq2[T, error], limit int, format func(T) string) error {
	printed := 0
	for v, err := range seq {
		if err != nil {
			return err
		}
		if printed == limit {
			break
		}
		if _, err := fmt.Fprintln(w, format(v)); err != nil {
			return err
		}
		printed++
	}
	return nil
}
