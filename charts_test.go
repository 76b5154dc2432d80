package main

import (
	"math"
	"testing"
)

func TestMeasureText(t *testing.T) {
	tests := []struct {
		m    Measure
		want string
	}{
		{Measure{Value: 45, Unit: "min"}, "45 min"},
		{Measure{Value: 30, Unit: "days"}, "30 days"},
		{Measure{Value: 72, Unit: "h"}, "72h"},
		{Measure{Value: -85, Unit: "%"}, "-85%"},
		{Measure{Value: 18}, "18"},
		{Measure{Value: 2.5, Unit: "×"}, "2.5×"},
	}
	for _, tt := range tests {
		if got := tt.m.Text(); got != tt.want {
			t.Errorf("Text(%+v) = %q, want %q", tt.m, got, tt.want)
		}
	}
}

func TestLayoutBars(t *testing.T) {
	bars := layoutBars(Measure{Label: "Traditional Search", Value: 45, Unit: "min"}, Measure{Label: "RAG System", Value: 8, Unit: "min"})
	if len(bars) != 2 {
		t.Fatalf("expected 2 bars, got %d", len(bars))
	}
	if bars[0].Height != barAreaHeight || bars[0].Y != 0 {
		t.Errorf("larger bar should fill the area: %+v", bars[0])
	}
	if bars[1].Height != 36 || bars[1].Y != barAreaHeight-36 {
		t.Errorf("smaller bar: got height %d y %d", bars[1].Height, bars[1].Y)
	}
	if bars[0].Text != "45 min" || bars[1].Label != "RAG System" {
		t.Errorf("labels: %+v", bars)
	}
	if bars[1].X <= bars[0].X+bars[0].Width {
		t.Error("bars overlap")
	}
}

func TestLayoutBarsMinimumHeight(t *testing.T) {
	bars := layoutBars(Measure{Value: 100}, Measure{Value: 1})
	if bars[1].Height != barMinHeight {
		t.Errorf("expected minimum height %d, got %d", barMinHeight, bars[1].Height)
	}

	bars = layoutBars(Measure{}, Measure{})
	for i, b := range bars {
		if b.Height != barMinHeight {
			t.Errorf("bar %d: expected minimum height for zero values, got %d", i, b.Height)
		}
	}
}

func TestGauge(t *testing.T) {
	g := newGauge(Measure{Value: 18, Unit: "%"})
	if g.Text != "18%" {
		t.Errorf("text: got %q", g.Text)
	}
	circ := 2 * math.Pi * gaugeRadius
	if math.Abs(g.Circumference-circ) > 0.01 {
		t.Errorf("circumference: got %v, want %v", g.Circumference, circ)
	}
	if math.Abs(g.Dash-circ*0.18) > 0.01 {
		t.Errorf("dash: got %v, want %v", g.Dash, circ*0.18)
	}
	if g.Center != gaugeRadius+gaugeStroke || g.Size != 2*g.Center {
		t.Errorf("geometry: %+v", g)
	}

	if g := newGauge(Measure{Value: 150}); math.Abs(g.Dash-g.Circumference) > 0.01 {
		t.Errorf("over 100%% should fill the ring: %+v", g)
	}
	if g := newGauge(Measure{Value: -5}); g.Dash != 0 {
		t.Errorf("negative should be empty: %+v", g)
	}
}

func TestSpeedup(t *testing.T) {
	tests := []struct {
		before, after float64
		want          string
	}{
		{30, 5, "6× faster"},
		{45, 8, "5.6× faster"},
		{72, 4, "18× faster"},
		{5, 30, ""},
		{0, 1, ""},
		{10, 0, ""},
		{10, 10, ""},
	}
	for _, tt := range tests {
		if got := speedup(tt.before, tt.after); got != tt.want {
			t.Errorf("speedup(%v, %v) = %q, want %q", tt.before, tt.after, got, tt.want)
		}
	}
}

func TestNewChartView(t *testing.T) {
	v := newChartView(Chart{Kind: ChartBars, Before: Measure{Value: 30}, After: Measure{Value: 5}})
	if len(v.Bars) != 2 || v.Width == 0 || v.Height == 0 || v.Speedup == "" {
		t.Errorf("bars view incomplete: %+v", v)
	}

	v = newChartView(Chart{Kind: ChartGauge, Value: Measure{Value: 18}})
	if v.Gauge == nil || v.Bars != nil {
		t.Errorf("gauge view: %+v", v)
	}

	v = newChartView(Chart{Kind: ChartStat, Value: Measure{Value: -85, Unit: "%"}})
	if v.Gauge != nil || v.Bars != nil || v.Speedup != "" {
		t.Errorf("stat view should carry no geometry: %+v", v)
	}
}
