package main

import (
	"strconv"

	"github.com/spf13/cobra"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/calebcase/cint/integer"
	"github.com/calebcase/cint/internal/dump"
)

func (a *app) catCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "cat A B",
		Short: "Print the digits of A followed by the digits of B",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			xs, err := a.operands(args)
			if err != nil {
				return err
			}

			z, err := integer.Cat(xs[0], xs[1])
			if err != nil {
				return err
			}

			return a.print(cmd.OutOrStdout(), z)
		},
	}
}

func (a *app) sliceCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "slice A START END",
		Short: "Print digits START (inclusive) to END (exclusive) of A",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			x, err := a.operand(args[0])
			if err != nil {
				return err
			}

			start, err := strconv.ParseUint(args[1], 10, 64)
			if err != nil {
				return Error.New("invalid start: %w", err)
			}

			end, err := strconv.ParseUint(args[2], 10, 64)
			if err != nil {
				return Error.New("invalid end: %w", err)
			}

			z, err := x.Slice(start, end)
			if err != nil {
				return err
			}

			return a.print(cmd.OutOrStdout(), z)
		},
	}
}

func (a *app) infoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info A",
		Short: "Print the digit count, byte count, parity and packed bytes of A",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			x, err := a.operand(args[0])
			if err != nil {
				return err
			}

			parity := "even"
			if x.Len()%2 == 1 {
				parity = "odd"
			}

			w := cmd.OutOrStdout()
			p := message.NewPrinter(language.English)

			_, err = p.Fprintf(w, "digits: %d\nbytes:  %d\nparity: %s\npacked: ", x.Len(), x.Size(), parity)
			if err != nil {
				return Error.Wrap(err)
			}

			return dump.Dump(w, x.Bytes(), dump.Decimal)
		},
	}
}

func (a *app) dumpCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "dump A",
		Short: "Print the packed buffer of A",
		Long: `Print the packed buffer of A byte by byte.

Formats: c (chars), d (decimal), b (binary), x (hex), i (packed digit
pairs) and spew.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			if format == "" {
				format = a.cfg.DumpFormat
			}

			f, err := dump.ParseFormat(format)
			if err != nil {
				return err
			}

			x, err := a.operand(args[0])
			if err != nil {
				return err
			}

			return dump.Dump(cmd.OutOrStdout(), x.Bytes(), f)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "output format (default from config)")

	return cmd
}
