package systems

// worldToScreen maps the server's y-up, centre-origin coordinates onto a
// y-down surface of the given size.
func worldToScreen(x, y float64, width, height int) (float64, float64) {
	return x + float64(width)/2, float64(height)/2 - y
}
