// internal/utils/math.go
package utils

// ClampInt ограничивает v диапазоном [min, max].
func ClampInt(min, max, v int) int {
	if v < min {
		return min
	}
	if v > max {
		return max
	}
	return v
}
