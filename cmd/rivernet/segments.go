package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rivernet/aggregate"
	"github.com/katalvlaran/rivernet/config"
)

func newSegmentsCmd(rf *rootFlags) *cobra.Command {
	f := &runFlags{}
	cmd := &cobra.Command{
		Use:   "segments",
		Short: "print the segment label of every node",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			logger, err := rf.logger(cmd)
			if err != nil {
				return err
			}
			opts, err := f.options(cmd, logger)
			if err != nil {
				return err
			}
			net, err := config.LoadNetwork(f.network)
			if err != nil {
				return err
			}

			labels, err := aggregate.Segments(net, opts...)
			if err != nil {
				return err
			}
			logger.Info("segments: labelled", "nodes", net.Len(), "segments", labels.K)
			return withOutput(cmd, f.output, func(w io.Writer) error {
				return config.WriteLabels(w, labels.IDs)
			})
		},
	}
	bindRunFlags(cmd, f, false)
	return cmd
}
