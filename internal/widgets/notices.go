package widgets

import (
	"github.com/jask/smartattend/internal/notify"
)

// RenderToasts stacks toasts in the top-right corner of base, newest last.
func RenderToasts(base string, toasts []notify.Toast, width, height int) string {
	if len(toasts) == 0 || width <= 0 || height <= 0 {
		return base
	}
	canvas := fitCanvas(base, width, height)
	y := 1
	for _, t := range toasts {
		style := toastStyle
		if t.IsErr {
			style = toastErrStyle
		}
		card := style.MaxWidth(max(10, width/2)).Render(t.Message)
		lines := splitToLines(card, 0)
		x := max(0, width-maxLineWidth(lines)-1)
		canvas = overlayAt(canvas, card, x, y, width, height)
		y += len(lines)
		if y >= height {
			break
		}
	}
	return canvas
}

// RenderAlert draws a blocking alert above base.
func RenderAlert(base, msg string, width, height int) string {
	body := alertStyle.Render("Alert") + "\n\n" + textStyle.Render(msg) + "\n\n" + mutedStyle.Render("enter: OK")
	return RenderPopup(base, body, width, height)
}
