package spectrum

// PlotLabels carries axis and title text for a Renderer.
type PlotLabels struct {
	X     string
	Y     string
	Title string
}

// Renderer draws a y-over-x curve. It is invoked after the spectrum has been
// computed; x and y must be treated as read-only.
type Renderer func(x, y []float64, labels PlotLabels) error

// DefaultLabels are the labels Fourier passes to its renderer.
var DefaultLabels = PlotLabels{
	X:     "f(Hz)",
	Y:     "|P1(f)|",
	Title: "FFT",
}
