package render

import (
	"context"
	"fmt"
	"io"

	"github.com/okian/counterspace/internal/domain/model"
)

// glyph ramps for terminal output. Difference surfaces use a diverging ramp
// centered on zero; plain surfaces use a single ramp.
const (
	rampPositive = " .:-=+*#%@"
	glyphNeg     = 'o'
)

// TextRenderer writes a coarse character map of the surface to a writer.
// Meant for demos and debugging, not analysis.
type TextRenderer struct {
	w io.Writer
}

// NewTextRenderer creates a renderer writing to w.
func NewTextRenderer(w io.Writer) *TextRenderer {
	return &TextRenderer{w: w}
}

// Render draws the surface row by row, highest y first so the map matches
// pitch orientation.
func (r *TextRenderer) Render(ctx context.Context, s *model.Surface, ann Annotation) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if ann.Title != "" {
		if _, err := fmt.Fprintln(r.w, ann.Title); err != nil {
			return err
		}
	}

	scale := s.MaxAbs()
	if scale == 0 {
		scale = 1
	}

	for i := len(s.Cells) - 1; i >= 0; i-- {
		line := make([]rune, len(s.Cells[i]))
		for j, v := range s.Cells[i] {
			line[j] = glyph(v, scale, ann.Difference)
		}
		if _, err := fmt.Fprintln(r.w, string(line)); err != nil {
			return err
		}
	}
	return nil
}

func glyph(v, scale float64, diverging bool) rune {
	if diverging && v < 0 {
		return glyphNeg
	}
	idx := int(v / scale * float64(len(rampPositive)-1))
	if idx < 0 {
		idx = 0
	}
	if idx >= len(rampPositive) {
		idx = len(rampPositive) - 1
	}
	return rune(rampPositive[idx])
}
