package widgets

import (
	"math"
	"strings"

	"github.com/charmbracelet/x/ansi"

	"github.com/jask/teakit/core"
)

// VStack stacks children top to bottom. Children that render empty, such
// as hidden controllable widgets, take no rows.
type VStack struct {
	Items   []core.Renderable
	Spacing int
}

func (v VStack) Render(width, height int) string {
	if len(v.Items) == 0 || width <= 0 {
		return ""
	}
	blocks := make([]string, 0, len(v.Items))
	for _, item := range v.Items {
		if item == nil {
			continue
		}
		if out := item.Render(width, height); out != "" {
			blocks = append(blocks, out)
		}
	}
	sep := "\n" + strings.Repeat("\n", max(0, v.Spacing))
	out := strings.Join(blocks, sep)
	if height > 0 {
		lines := strings.Split(out, "\n")
		if len(lines) > height {
			out = strings.Join(lines[:height], "\n")
		}
	}
	return out
}

// HStack lays children out left to right, splitting the width by Ratios
// when given and evenly otherwise.
type HStack struct {
	Items  []core.Renderable
	Ratios []float64
	Gap    int
}

func (h HStack) Render(width, height int) string {
	if len(h.Items) == 0 || width <= 0 {
		return ""
	}
	gapTotal := max(0, h.Gap*(len(h.Items)-1))
	usable := max(1, width-gapTotal)
	widths := splitWidths(usable, len(h.Items), h.Ratios)
	rendered := make([][]string, len(h.Items))
	maxLines := 0
	for i, item := range h.Items {
		if item == nil {
			continue
		}
		part := strings.Split(item.Render(max(1, widths[i]), height), "\n")
		rendered[i] = part
		maxLines = max(maxLines, len(part))
	}
	out := make([]string, 0, maxLines)
	for line := 0; line < maxLines; line++ {
		cols := make([]string, len(rendered))
		for i := range rendered {
			if line < len(rendered[i]) {
				cols[i] = padRight(rendered[i][line], widths[i])
			} else {
				cols[i] = strings.Repeat(" ", widths[i])
			}
		}
		out = append(out, strings.Join(cols, strings.Repeat(" ", h.Gap)))
	}
	return strings.Join(out, "\n")
}

func splitWidths(total, n int, ratios []float64) []int {
	if n <= 0 {
		return nil
	}
	if len(ratios) != n {
		width := total / n
		out := make([]int, n)
		for i := range out {
			out[i] = width
		}
		for i := 0; i < total%n; i++ {
			out[i]++
		}
		return out
	}
	sum := 0.0
	for _, r := range ratios {
		if r <= 0 {
			r = 1
		}
		sum += r
	}
	out := make([]int, n)
	used := 0
	for i := range out {
		r := ratios[i]
		if r <= 0 {
			r = 1
		}
		w := int(math.Floor((r / sum) * float64(total)))
		out[i] = w
		used += w
	}
	for i := 0; used < total; i = (i + 1) % n {
		out[i]++
		used++
	}
	return out
}

func padRight(s string, width int) string {
	if width <= 0 {
		return ""
	}
	s = ansi.Truncate(s, width, "")
	w := ansi.StringWidth(s)
	if w >= width {
		return s
	}
	return s + strings.Repeat(" ", width-w)
}
