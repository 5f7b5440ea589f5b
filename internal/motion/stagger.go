package motion

import "math"

// StaggerDelay returns the entrance delay for the child at index, rounded to
// the millisecond. Negative indexes get no delay.
func StaggerDelay(index int, step float64) float64 {
	if index <= 0 || step <= 0 {
		return 0
	}
	return math.Round(float64(index)*step*1000) / 1000
}
