package models

// ChartSpec is a Plotly-compatible figure: the browser passes Data and Layout
// straight to Plotly.react.
type ChartSpec struct {
	Data   []Trace `json:"data"`
	Layout Layout  `json:"layout"`
}

// Trace is one visual encoding over the shared month axis.
type Trace struct {
	Type         string    `json:"type"` // "bar" or "scatter"
	Name         string    `json:"name"`
	Mode         string    `json:"mode,omitempty"`
	X            []string  `json:"x"`
	Y            []float64 `json:"y"`
	Text         []string  `json:"text"`
	TextPosition string    `json:"textposition,omitempty"`
	Opacity      float64   `json:"opacity,omitempty"`
	Marker       *Marker   `json:"marker,omitempty"`
	Line         *Line     `json:"line,omitempty"`
}

// Marker styles bars or points.
type Marker struct {
	Color  string `json:"color,omitempty"`
	Size   int    `json:"size,omitempty"`
	Symbol string `json:"symbol,omitempty"`
	Line   *Line  `json:"line,omitempty"`
}

// Line styles a line trace or a marker outline.
type Line struct {
	Color string  `json:"color,omitempty"`
	Width float64 `json:"width,omitempty"`
}

// Layout carries titles and chrome.
type Layout struct {
	Title        Title  `json:"title"`
	XAxis        Axis   `json:"xaxis"`
	YAxis        Axis   `json:"yaxis"`
	Legend       Legend `json:"legend"`
	PlotBGColor  string `json:"plot_bgcolor,omitempty"`
	PaperBGColor string `json:"paper_bgcolor,omitempty"`
	Margin       Margin `json:"margin"`
}

// Title is a chart or axis title.
type Title struct {
	Text    string  `json:"text"`
	X       float64 `json:"x,omitempty"`
	Y       float64 `json:"y,omitempty"`
	XAnchor string  `json:"xanchor,omitempty"`
	YAnchor string  `json:"yanchor,omitempty"`
}

// Axis describes one chart axis.
type Axis struct {
	Title     Title  `json:"title"`
	ShowGrid  bool   `json:"showgrid"`
	GridColor string `json:"gridcolor,omitempty"`
	ZeroLine  bool   `json:"zeroline"`
	TickAngle int    `json:"tickangle,omitempty"`
}

// Legend positions the trace legend.
type Legend struct {
	Orientation string  `json:"orientation,omitempty"`
	X           float64 `json:"x"`
	Y           float64 `json:"y"`
	XAnchor     string  `json:"xanchor,omitempty"`
	YAnchor     string  `json:"yanchor,omitempty"`
}

// Margin is the plot margin in pixels.
type Margin struct {
	T int `json:"t"`
	B int `json:"b"`
	L int `json:"l"`
	R int `json:"r"`
}
