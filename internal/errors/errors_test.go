package errors

import (
	"fmt"
	"testing"
)

func TestErrorFormatting(t *testing.T) {
	plain := New(TypeInput, "bad longitude")
	if got := plain.Error(); got != "[INPUT_ERROR] bad longitude" {
		t.Errorf("Error() = %q", got)
	}

	cause := fmt.Errorf("file vanished")
	wrapped := Wrap(TypeParsing, "failed to read chart", cause)
	if got := wrapped.Error(); got != "[PARSING_ERROR] failed to read chart: file vanished" {
		t.Errorf("Error() = %q", got)
	}
	if wrapped.Unwrap() != cause {
		t.Error("Unwrap() lost the cause")
	}
}

func TestHasTypeAndIsType(t *testing.T) {
	err := MissingChartData("sunrise")
	if !err.HasType(TypeMissingChartData) {
		t.Error("HasType() missed its own type")
	}
	if err.HasType(TypeInput) {
		t.Error("HasType() matched a foreign type")
	}

	if !IsType(err, TypeMissingChartData) {
		t.Error("IsType() missed a typed error")
	}
	if IsType(err, TypeInput) {
		t.Error("IsType() matched a foreign type")
	}
	if IsType(fmt.Errorf("plain"), TypeInput) {
		t.Error("IsType() matched an untyped error")
	}
	if IsType(nil, TypeInput) {
		t.Error("IsType() matched nil")
	}
}

func TestConstructors(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want Type
	}{
		{"input", Input("planet %q unknown", "Pluto"), TypeInput},
		{"unsupported planet", UnsupportedPlanet("Yuddha Bala", "Sun"), TypeUnsupportedPlanet},
		{"missing chart data", MissingChartData("ascendant"), TypeMissingChartData},
		{"degenerate geometry", DegenerateGeometry("zero-length hora"), TypeDegenerateGeometry},
		{"config", Config("bad config", nil), TypeConfig},
		{"internal", Internal("lookup failed", nil), TypeInternal},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.err.Type != tt.want {
				t.Errorf("type = %s, want %s", tt.err.Type, tt.want)
			}
			if tt.err.Message == "" {
				t.Error("message is empty")
			}
		})
	}
}

func TestWithContext(t *testing.T) {
	err := Input("out of range").WithContext("longitude", 400.0)
	if err.Context["longitude"] != 400.0 {
		t.Errorf("context = %v", err.Context)
	}
}
