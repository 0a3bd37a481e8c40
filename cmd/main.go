package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mtuoc/MTUOC-TBX/internal/config"
	"github.com/mtuoc/MTUOC-TBX/internal/convert"
	"github.com/mtuoc/MTUOC-TBX/pkg/log"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		convert.NewDefaultErrorHandler().Handle(err)
		os.Exit(1)
	}
}

type flags struct {
	logLevel     string
	logFile      string
	inputSheet   string
	outputSheet  string
	checkContent bool
}

func (f *flags) options(cmd *cobra.Command) []config.Option {
	var opts []config.Option
	pf := cmd.Flags()
	if pf.Changed("log-level") {
		opts = append(opts, config.WithLogLevel(f.logLevel))
	}
	if pf.Changed("log-file") {
		opts = append(opts, config.WithLogFile(f.logFile))
	}
	if pf.Changed("sheet") {
		opts = append(opts, config.WithInputSheet(f.inputSheet))
	}
	if pf.Changed("output-sheet") {
		opts = append(opts, config.WithOutputSheet(f.outputSheet))
	}
	if pf.Changed("check-content") {
		opts = append(opts, config.WithContentCheck(f.checkContent))
	}
	return opts
}

func newRootCmd() *cobra.Command {
	var (
		f        flags
		svc      *convert.Service
		closeLog = func() error { return nil }
	)

	root := &cobra.Command{
		Use:           "tbxconv",
		Short:         "Convert terminology between spreadsheets, TSV, TERMCAT XML and TBX",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.New(f.options(cmd)...)
			if err != nil {
				return convert.WrapError(err, convert.ErrValidation, "invalid configuration")
			}

			logger, closeFn, err := cfg.Logger()
			if err != nil {
				return convert.WrapError(err, convert.ErrFileWrite, "failed to open log file")
			}
			log.SetLogger(logger)
			closeLog = closeFn

			svc = convert.NewService(*cfg)
			return nil
		},
		PersistentPostRunE: func(*cobra.Command, []string) error {
			return closeLog()
		},
	}

	pf := root.PersistentFlags()
	pf.StringVar(&f.logLevel, "log-level", "info", "log level: debug, info, warn, error")
	pf.StringVar(&f.logFile, "log-file", "", "append logs to this file instead of stdout")
	pf.StringVar(&f.inputSheet, "sheet", "", "workbook sheet to read (default: first sheet)")
	pf.StringVar(&f.outputSheet, "output-sheet", "Sheet1", "sheet name for written workbooks")
	pf.BoolVar(&f.checkContent, "check-content", false, "warn when a definition reads as another language")

	for _, c := range convert.Converters {
		root.AddCommand(newConvertCmd(c, func() *convert.Service { return svc }))
	}
	return root
}

func newConvertCmd(c convert.Converter, service func() *convert.Service) *cobra.Command {
	var input, output string

	cmd := &cobra.Command{
		Use:   c.Name,
		Short: c.Short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if output == "" {
				output = c.DefaultOutput(input)
			}
			res, err := c.Run(service(), input, output)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s -> %s (%d entries)\n", res.Input, res.Output, res.Records)
			return nil
		},
	}

	cmd.Flags().StringVarP(&input, "input", "i", "", "input file ("+c.InputExt+")")
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: input with "+c.OutputExt+")")
	_ = cmd.MarkFlagRequired("input")
	return cmd
}
