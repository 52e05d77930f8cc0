package main

import (
	"github.com/spf13/cobra"

	"github.com/calebcase/cint/internal/archive"
)

func (a *app) archiveFormat(name string) (archive.Format, error) {
	if name == "" {
		name = a.cfg.ArchiveFormat
	}

	return archive.ParseFormat(name)
}

func (a *app) packCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "pack FILE A...",
		Short: "Write integers to an archive file",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			f, err := a.archiveFormat(format)
			if err != nil {
				return err
			}

			xs, err := a.operands(args[1:])
			if err != nil {
				return err
			}

			err = archive.WriteFile(args[0], f, xs)
			if err != nil {
				return err
			}

			a.log.Debug("packed", "file", args[0], "format", f, "count", len(xs))

			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "archive format: bsv, cbor or msgpack (default from config)")

	return cmd
}

func (a *app) unpackCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "unpack FILE",
		Short: "Print the integers of an archive file, one per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) (err error) {
			f, err := a.archiveFormat(format)
			if err != nil {
				return err
			}

			xs, err := archive.ReadFile(args[0], f)
			if err != nil {
				return err
			}

			a.log.Debug("unpacked", "file", args[0], "format", f, "count", len(xs))

			for _, x := range xs {
				err = a.print(cmd.OutOrStdout(), x)
				if err != nil {
					return err
				}
			}

			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "", "archive format: bsv, cbor or msgpack (default from config)")

	return cmd
}
