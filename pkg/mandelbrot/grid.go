package mandelbrot

// Linspace returns n evenly spaced samples over r, both ends included.
// A single sample sits at r.Min.
func Linspace(r Range, n int) []float64 {
	if n <= 0 {
		return nil
	}
	samples := make([]float64, n)
	samples[0] = r.Min
	if n == 1 {
		return samples
	}
	step := (r.Max - r.Min) / float64(n-1)
	for i := 1; i < n-1; i += 1 {
		samples[i] = r.Min + float64(i)*step
	}
	samples[n-1] = r.Max
	return samples
}

// Coordinates builds the n x n grid of sample points, [row][col].
// Rows walk the imaginary axis and columns walk the real axis.
func Coordinates(real, imag Range, n int) [][]complex128 {
	re := Linspace(real, n)
	im := Linspace(imag, n)

	grid := make([][]complex128, n)
	for row := 0; row < n; row += 1 {
		grid[row] = make([]complex128, n)
		for col := 0; col < n; col += 1 {
			grid[row][col] = complex(re[col], im[row])
		}
	}
	return grid
}
