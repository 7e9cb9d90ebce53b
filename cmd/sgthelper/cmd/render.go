package cmd

import (
	"fmt"
	"io"
	"math"
	"os"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/spf13/cobra"

	"sgthelper/internal/config"
	"sgthelper/internal/scene"
)

var (
	renderFormat string
	renderOut    string
	renderWidth  int
	renderHeight int
)

var renderCmd = &cobra.Command{
	Use:   "render",
	Short: "Render the diagram to SVG or terminal text",
	Long: `Render parses the data, schema and display files once and writes the
diagram. A parse error is printed and nothing is written.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if dataPath == "" {
			return fmt.Errorf("--data is required")
		}
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		in, err := readInput()
		if err != nil {
			return err
		}

		s := scene.NewSession(cfg)
		rerr := s.Render(in)
		for _, l := range s.Log() {
			fmt.Fprintln(cmd.ErrOrStderr(), l)
		}
		if rerr != nil {
			return fmt.Errorf("render failed: %w", rerr)
		}

		var w io.Writer = cmd.OutOrStdout()
		if renderOut != "" && renderOut != "-" {
			f, err := os.Create(renderOut)
			if err != nil {
				return err
			}
			defer f.Close()
			w = f
		}
		switch renderFormat {
		case "svg":
			return scene.WriteSVG(w, s.Canvas().Batch(), cfg.Theme)
		case "text":
			return writeText(w, s.Canvas().Batch(), cfg)
		default:
			return fmt.Errorf("unknown format %q (want svg or text)", renderFormat)
		}
	},
}

func init() {
	renderCmd.Flags().StringVarP(&renderFormat, "format", "f", "svg", "output format: svg or text")
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "", "output file (default stdout)")
	renderCmd.Flags().IntVar(&renderWidth, "width", 0, "text width in cells (0 fits the diagram)")
	renderCmd.Flags().IntVar(&renderHeight, "height", 0, "text height in rows (0 fits the diagram)")
	rootCmd.AddCommand(renderCmd)
}

func readInput() (scene.Input, error) {
	var in scene.Input
	read := func(p string, dst *string) error {
		if p == "" {
			return nil
		}
		b, err := os.ReadFile(p)
		if err != nil {
			return err
		}
		*dst = string(b)
		return nil
	}
	in.Schema = "s\nt"
	if err := read(dataPath, &in.Data); err != nil {
		return in, err
	}
	if err := read(schemaPath, &in.Schema); err != nil {
		return in, err
	}
	if err := read(displayPath, &in.Display); err != nil {
		return in, err
	}
	return in, nil
}

// Auto-sized text output is cut off at these sizes; pass --width and
// --height for a larger grid.
const (
	maxTextWidth  = 400
	maxTextHeight = 200
)

func fitCells(v float64, limit int) int {
	return int(math.Min(math.Ceil(v), float64(limit)))
}

func writeText(w io.Writer, b scene.Batch, cfg config.Config) error {
	p := scene.NewProjection(b, cfg.Render.CellScale, scene.NewView(cfg.View))
	width, height := renderWidth, renderHeight
	if bb, ok := b.Bounds(); ok && (width <= 0 || height <= 0) {
		mx, my := p.MicroF(bb.MaxX, bb.MaxY)
		half := 0
		for _, l := range b.Labels {
			half = max(half, runewidth.StringWidth(l.Body)/2+1)
		}
		if width <= 0 {
			width = fitCells(mx/2+2+float64(half), maxTextWidth)
		}
		if height <= 0 {
			height = fitCells(my/4+2, maxTextHeight)
		}
	}
	if width <= 0 || height <= 0 {
		return nil
	}
	lines := scene.Rasterize(b, p, width, height).Lines()
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	_, err := fmt.Fprintln(w, strings.Join(lines, "\n"))
	return err
}
