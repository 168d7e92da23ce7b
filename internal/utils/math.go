// internal/utils/math.go
package utils

// Abs32 возвращает модуль числа
func Abs32(x float32) float32 {
	if x < 0 {
		return -x
	}
	return x
}

// Min32 возвращает меньшее из двух чисел
func Min32(a, b float32) float32 {
	if a < b {
		return a
	}
	return b
}
