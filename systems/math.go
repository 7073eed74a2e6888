package systems

// clampFloat clamps v between minVal and maxVal.
func clampFloat(v, minVal, maxVal float64) float64 {
	if v < minVal {
		return minVal
	}
	if v > maxVal {
		return maxVal
	}
	return v
}

// sign returns 1 for true and -1 for false.
func sign(positive bool) float64 {
	if positive {
		return 1
	}
	return -1
}
