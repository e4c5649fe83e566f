package main

import (
	"bytes"
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	flex "github.com/grindlemire/go-flex"
	"github.com/grindlemire/go-flex/pkg/scene"
)

func newLayoutCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "layout FILE...",
		Short: "Lay out scene documents and print the resolved boxes",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runLayout(cmd.Context(), cmd.OutOrStdout(), args)
		},
	}
	cmd.Flags().StringP("format", "f", "text", "output format (text, json)")
	_ = a.v.BindPFlag("layout.format", cmd.Flags().Lookup("format"))
	cmd.Flags().IntP("parallel", "j", 4, "scenes laid out at once")
	_ = a.v.BindPFlag("layout.parallel", cmd.Flags().Lookup("parallel"))
	return cmd
}

// runLayout lays out every file, one tree per scene, and prints the
// results in argument order.
func (a *app) runLayout(ctx context.Context, out io.Writer, files []string) error {
	format := a.cfg.Layout.Format
	if format != "text" && format != "json" {
		return fmt.Errorf("unknown format %q: want text or json", format)
	}
	if ctx == nil {
		ctx = context.Background()
	}

	outputs := make([]bytes.Buffer, len(files))
	g, ctx := errgroup.WithContext(ctx)
	if n := a.cfg.Layout.Parallel; n > 0 {
		g.SetLimit(n)
	}
	for i, file := range files {
		i, file := i, file
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			s, err := a.loadScene(file)
			if err != nil {
				return err
			}
			buf := &outputs[i]
			if len(files) > 1 && format == "text" {
				fmt.Fprintf(buf, "# %s\n", file)
			}
			if format == "json" {
				return s.WriteJSON(buf)
			}
			return s.WriteText(buf)
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i := range outputs {
		if _, err := outputs[i].WriteTo(out); err != nil {
			return err
		}
	}
	return nil
}

// loadScene reads, validates, builds and lays out one scene document.
func (a *app) loadScene(file string) (*scene.Scene, error) {
	log := a.logger.With(zap.String("file", file))
	doc, err := scene.Load(file)
	if err != nil {
		return nil, err
	}
	s, err := scene.Build(doc, flex.WithLogger(log.Named("layout")))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", file, err)
	}
	passes := s.Layout()
	log.Info("laid out scene",
		zap.Stringer("document", doc),
		zap.Int("passes", passes))
	return s, nil
}
