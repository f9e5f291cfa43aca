package chart

import "gonum.org/v1/plot/vg"

// InchesToPixels converts a figure dimension to raster pixels at dpi.
func InchesToPixels(inches float64, dpi int) int {
	return int(inches*float64(dpi) + 0.5)
}

// inches converts a figure dimension to a vg.Length.
func inches(v float64) vg.Length {
	return vg.Length(v) * vg.Inch
}
