package main

import "fyne.io/fyne/v2"

// insetColumn stacks objects top to bottom at their minimum size. Every
// object sits left-aligned in its own cell with the same padding on all
// four sides.
type insetColumn struct {
	inset float32
}

func newInsetColumn(inset float32) fyne.Layout {
	return &insetColumn{inset: inset}
}

func (c *insetColumn) Layout(objects []fyne.CanvasObject, _ fyne.Size) {
	y := float32(0)
	for _, o := range objects {
		if !o.Visible() {
			continue
		}
		min := o.MinSize()
		o.Move(fyne.NewPos(c.inset, y+c.inset))
		o.Resize(min)
		y += min.Height + 2*c.inset
	}
}

func (c *insetColumn) MinSize(objects []fyne.CanvasObject) fyne.Size {
	w, h := float32(0), float32(0)
	for _, o := range objects {
		if !o.Visible() {
			continue
		}
		min := o.MinSize()
		if min.Width > w {
			w = min.Width
		}
		h += min.Height + 2*c.inset
	}
	if h == 0 {
		return fyne.NewSize(0, 0)
	}
	return fyne.NewSize(w+2*c.inset, h)
}
