package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/grindlemire/go-flex/pkg/render"
)

func newRenderCmd(a *app) *cobra.Command {
	var output string
	cmd := &cobra.Command{
		Use:   "render FILE",
		Short: "Lay out a scene document and draw it as PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return a.runRender(args[0], output)
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "output PNG file (required)")
	_ = cmd.MarkFlagRequired("output")
	cmd.Flags().Float64P("scale", "s", 1, "scale factor")
	_ = a.v.BindPFlag("render.scale", cmd.Flags().Lookup("scale"))
	cmd.Flags().Bool("labels", true, "draw box ids")
	_ = a.v.BindPFlag("render.labels", cmd.Flags().Lookup("labels"))
	return cmd
}

func (a *app) runRender(file, output string) error {
	s, err := a.loadScene(file)
	if err != nil {
		return err
	}
	r, err := render.NewRenderer(s, render.Options{
		Scale:  a.cfg.Render.Scale,
		Labels: a.cfg.Render.Labels,
		Margin: a.cfg.Render.Margin,
	})
	if err != nil {
		return fmt.Errorf("%s: %w", file, err)
	}
	r.Render(s)
	if err := r.SavePNG(output); err != nil {
		return fmt.Errorf("writing %s: %w", output, err)
	}
	a.logger.Info("rendered scene", zap.String("file", file), zap.String("output", output))
	return nil
}
