package main

import (
	"fmt"
	"math"
	"strconv"
)

type ChartKind string

const (
	ChartBars  ChartKind = "bars"
	ChartGauge ChartKind = "gauge"
	ChartDelta ChartKind = "delta"
	ChartStat  ChartKind = "stat"
)

var validChartKinds = map[ChartKind]bool{
	ChartBars:  true,
	ChartGauge: true,
	ChartDelta: true,
	ChartStat:  true,
}

// Chart is a fixed before/after comparison (bars, delta) or a single
// highlighted figure (gauge, stat).
type Chart struct {
	Kind   ChartKind `yaml:"kind" json:"kind"`
	Title  string    `yaml:"title" json:"title"`
	Before Measure   `yaml:"before" json:"before"`
	After  Measure   `yaml:"after" json:"after"`
	Value  Measure   `yaml:"value" json:"value"`
}

type Measure struct {
	Label string  `yaml:"label" json:"label,omitempty"`
	Value float64 `yaml:"value" json:"value"`
	Unit  string  `yaml:"unit" json:"unit,omitempty"`
}

// Text formats the value with its unit: short units are attached ("72h",
// "-85%"), word units are spaced ("45 min").
func (m Measure) Text() string {
	v := strconv.FormatFloat(m.Value, 'f', -1, 64)
	switch {
	case m.Unit == "":
		return v
	case len([]rune(m.Unit)) <= 1:
		return v + m.Unit
	default:
		return v + " " + m.Unit
	}
}

const (
	barAreaHeight = 200
	barMinHeight  = 28
	barWidth      = 80
	barGap        = 48
	barLabelSpace = 24

	gaugeRadius = 80
	gaugeStroke = 12
)

type bar struct {
	Label  string
	Text   string
	X      int
	Y      int
	CX     int
	LabelY int
	Width  int
	Height int
	Fill   string
}

type gauge struct {
	Text          string
	Radius        int
	Stroke        int
	Size          int
	Center        int
	Circumference float64
	Dash          float64
}

type chartView struct {
	Chart
	Bars    []bar
	Width   int
	Height  int
	Gauge   *gauge
	Speedup string
}

func newChartView(c Chart) chartView {
	v := chartView{Chart: c}
	switch c.Kind {
	case ChartBars:
		v.Bars = layoutBars(c.Before, c.After)
		v.Width = 2*barWidth + 3*barGap
		v.Height = barAreaHeight + barLabelSpace
		v.Speedup = speedup(c.Before.Value, c.After.Value)
	case ChartDelta:
		v.Speedup = speedup(c.Before.Value, c.After.Value)
	case ChartGauge:
		v.Gauge = newGauge(c.Value)
	}
	return v
}

// layoutBars scales both bars against the larger of the two values.
func layoutBars(before, after Measure) []bar {
	maxValue := math.Max(math.Abs(before.Value), math.Abs(after.Value))
	bars := make([]bar, 0, 2)
	for i, m := range []Measure{before, after} {
		h := barMinHeight
		if maxValue > 0 {
			h = int(math.Round(math.Abs(m.Value) / maxValue * barAreaHeight))
		}
		if h < barMinHeight {
			h = barMinHeight
		}
		fill := "#1e3a8a"
		if i == 1 {
			fill = "#3b82f6"
		}
		bars = append(bars, bar{
			Label:  m.Label,
			Text:   m.Text(),
			X:      barGap + i*(barWidth+barGap),
			Y:      barAreaHeight - h,
			CX:     barGap + i*(barWidth+barGap) + barWidth/2,
			LabelY: barAreaHeight + barLabelSpace - 6,
			Width:  barWidth,
			Height: h,
			Fill:   fill,
		})
	}
	return bars
}

func newGauge(m Measure) *gauge {
	pct := math.Min(math.Max(m.Value, 0), 100)
	circ := 2 * math.Pi * gaugeRadius
	return &gauge{
		Text:          m.Text(),
		Radius:        gaugeRadius,
		Stroke:        gaugeStroke,
		Size:          2 * (gaugeRadius + gaugeStroke),
		Center:        gaugeRadius + gaugeStroke,
		Circumference: math.Round(circ*100) / 100,
		Dash:          math.Round(circ*pct) / 100,
	}
}

// speedup describes how many times smaller after is than before. It is empty
// when the comparison does not make sense.
func speedup(before, after float64) string {
	if before <= 0 || after <= 0 || after >= before {
		return ""
	}
	return fmt.Sprintf("%s× faster", strconv.FormatFloat(math.Round(before/after*10)/10, 'f', -1, 64))
}
