package models

// ChartSeries describes one stacked series of the volume chart.
type ChartSeries struct {
	// Name is the legend label.
	Name string `json:"name" yaml:"name"`
	// Color is the RGB hex fill, e.g. "1F77B4".
	Color string `json:"color" yaml:"color"`
}

// ChartSpec describes the rendered volume chart.
type ChartSpec struct {
	// Title is the chart title (may be empty).
	Title string `json:"title,omitempty" yaml:"title"`
	// XAxisTitle is the X-axis title.
	XAxisTitle string `json:"x_axis_title" yaml:"x_axis_title"`
	// YAxisTitle is the Y-axis title.
	YAxisTitle string `json:"y_axis_title" yaml:"y_axis_title"`
	// Received is the bottom series.
	Received ChartSeries `json:"received" yaml:"received"`
	// Answered is the series stacked on top of Received.
	Answered ChartSeries `json:"answered" yaml:"answered"`
	// WidthInches and HeightInches are the figure size.
	WidthInches  float64 `json:"width_inches" yaml:"width_inches"`
	HeightInches float64 `json:"height_inches" yaml:"height_inches"`
	// DPI is the raster resolution.
	DPI int `json:"dpi" yaml:"dpi"`
	// W and H are the rendered size in pixels, set after rendering.
	W *int `json:"w,omitempty" yaml:"-"`
	H *int `json:"h,omitempty" yaml:"-"`
}

// DefaultChartSpec returns the 12x6 inch, 300 DPI chart layout.
func DefaultChartSpec() ChartSpec {
	return ChartSpec{
		XAxisTitle:   "Savaitė",
		YAxisTitle:   "Kiekis",
		Received:     ChartSeries{Name: "Gautų dokumentų kiekis", Color: "1F77B4"},
		Answered:     ChartSeries{Name: "Atsakytų dokumentų kiekis", Color: "FF7F0E"},
		WidthInches:  12,
		HeightInches: 6,
		DPI:          300,
	}
}
