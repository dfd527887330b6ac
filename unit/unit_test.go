// SPDX-License-Identifier: Unlicense OR MIT

package unit_test

import (
	"testing"

	"boxui.org/unit"
)

func TestMetricPx(t *testing.T) {
	var m unit.Metric
	tests := []struct {
		v   unit.Value
		exp int
	}{
		{unit.Px(12.4), 12},
		{unit.Px(12.5), 13},
		{unit.In(1), 96},
		{unit.Cm(2.54), 96},
		{unit.Mm(25.4), 96},
	}
	for _, tc := range tests {
		if got := m.Px(tc.v); got != tc.exp {
			t.Errorf("Px(%v) = %d, want %d", tc.v, got, tc.exp)
		}
	}

	hidpi := unit.Metric{PxPerInch: 192}
	if got := hidpi.Px(unit.In(0.5)); got != 96 {
		t.Errorf("Px(0.5in) at 192ppi = %d, want 96", got)
	}
}

func TestMetricPxPanicsOnPercent(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("expected panic converting a percent value")
		}
	}()
	unit.Metric{}.Px(unit.Parent(50))
}

func TestValueOf(t *testing.T) {
	if got := unit.Parent(50).Of(801); got != 401 {
		t.Errorf("50%% of 801 = %d, want 401", got)
	}
	if got := unit.Content(100).Of(120); got != 120 {
		t.Errorf("100%% of 120 = %d, want 120", got)
	}
}

func TestValueKinds(t *testing.T) {
	for _, v := range []unit.Value{unit.Px(1), unit.Mm(1), unit.Cm(1), unit.In(1)} {
		if !v.IsAbsolute() || v.IsPercent() {
			t.Errorf("%v should be absolute", v)
		}
	}
	for _, v := range []unit.Value{unit.Parent(1), unit.Root(1), unit.Content(1), unit.Available(1), unit.OfWidth(1)} {
		if v.IsAbsolute() || !v.IsPercent() {
			t.Errorf("%v should be a percent", v)
		}
	}
	if got := unit.Available(50).String(); got != "50%avail" {
		t.Errorf("String() = %q", got)
	}
}
