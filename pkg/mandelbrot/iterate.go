package mandelbrot

// EscapeCount runs z = z^2 + c starting from z = c and returns how many
// updates completed before |z| exceeded 2. The check runs before each
// update, so |c| > 2 gives 0. A point still bounded after lim updates
// gives lim.
func EscapeCount(c complex128, lim uint) uint {
	cre, cim := real(c), imag(c)
	zre, zim := cre, cim
	var it uint = 0
	for ; zre*zre+zim*zim <= 4; it += 1 {
		if it == lim {
			return lim
		}
		// z = z ^ 2 + c
		copyZre := zre
		zre = zre*zre - zim*zim + cre
		zim = copyZre*zim*2 + cim
	}
	return it
}
