package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/rivernet/aggregate"
	"github.com/katalvlaran/rivernet/config"
)

func newAggregateCmd(rf *rootFlags) *cobra.Command {
	f := &runFlags{}
	cmd := &cobra.Command{
		Use:   "aggregate",
		Short: "replace node values by the reduction of their segment",
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
			src, err := config.LoadSource(f.values)
			if err != nil {
				return err
			}
			logger.Info("aggregate: loaded", "network", f.network, "nodes", net.Len(), "values", f.values)

			out, err := aggregate.Aggregate(cmd.Context(), net, src, opts...)
			if err != nil {
				return err
			}
			return withOutput(cmd, f.output, func(w io.Writer) error {
				return config.WriteValues(w, out)
			})
		},
	}
	bindRunFlags(cmd, f, true)
	return cmd
}
