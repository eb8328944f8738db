package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/katalvlaran/asperity/field"
	"github.com/katalvlaran/asperity/grid"
	"github.com/katalvlaran/asperity/spectral"
)

// synthesize discretises s on g, reports the result and optionally dumps it.
func (c *CLI) synthesize(ctx context.Context, s spectral.Synthesizer, g grid.Grid, dump bool) error {
	logger := loggerFromContext(ctx)
	logger.Debug("discretising", "kind", s.Kind(), "extent", g.Extent, "spacing", g.Spacing)

	prog := newProgress(logger)
	p, err := s.Discretise(g)
	if err != nil {
		return fmt.Errorf("discretise %s: %w", s.Kind(), err)
	}
	if ctx.Err() != nil {
		return ctx.Err()
	}
	sum := p.Summarize()
	prog.done("surface ready", "kind", s.Kind(), "shape", p.Shape(), "rms", sum.RMS)

	if dump {
		return writeProfile(c.out, p)
	}
	printSuccess(c.out, "%s surface", s.Kind())
	printKeyValue(c.out, "shape", fmt.Sprint(p.Shape()))
	printSummary(c.out, sum)

	return nil
}

// writeProfile writes one line per row, values separated by single spaces.
// A 1D profile is written as one line.
func writeProfile(w io.Writer, p *field.Field) error {
	bw := bufio.NewWriter(w)
	rows := 1
	if p.Dims() == 2 {
		rows = p.Shape()[0]
	}
	data := p.Data()
	cols := len(data) / rows
	buf := make([]byte, 0, 32)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			if j > 0 {
				bw.WriteByte(' ')
			}
			buf = strconv.AppendFloat(buf[:0], data[i*cols+j], 'g', -1, 64)
			bw.Write(buf)
		}
		bw.WriteByte('\n')
	}

	return bw.Flush()
}
