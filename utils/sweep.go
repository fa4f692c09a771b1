package utils

// Map applies f to every element of ts.
func Map[T, U any](ts []T, f func(T) U) []U {
	us := make([]U, len(ts))
	for i, v := range ts {
		us[i] = f(v)
	}
	return us
}

// Doublings returns from, 2*from, 4*from, ... up to and including to.
func Doublings(from, to int) []int {
	var out []int
	for n := from; n > 0 && n <= to; n *= 2 {
		out = append(out, n)
	}
	return out
}

// DoublingRates returns from, 2*from, 4*from, ... while the value does not
// exceed limit by more than a rounding error.
func DoublingRates(from, limit float64) []float64 {
	var out []float64
	for r := from; r > 0 && r-limit <= 1e-10; r *= 2 {
		out = append(out, r)
	}
	return out
}

// Steps returns start, start+step, ... strictly below limit. Values are
// computed from the index so rounding does not accumulate.
func Steps(start, step, limit float64) []float64 {
	var out []float64
	for i := 0; ; i++ {
		v := start + float64(i)*step
		if v >= limit || step <= 0 && i > 0 {
			return out
		}
		out = append(out, v)
	}
}
