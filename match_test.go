package fontkit

import "testing"

func props(style Style, weight Weight, stretch Stretch) Properties {
	return Properties{Style: style, Weight: weight, Stretch: stretch}
}

func TestMatchEmpty(t *testing.T) {
	if i, ok := Match(nil, DefaultProperties()); ok || i != -1 {
		t.Fatalf("Match(nil) = %d, %v; want -1, false", i, ok)
	}
}

func TestMatchExact(t *testing.T) {
	candidates := []Properties{
		props(StyleNormal, WeightNormal, StretchNormal),
		props(StyleItalic, WeightNormal, StretchNormal),
		props(StyleNormal, WeightBold, StretchNormal),
	}
	i, ok := Match(candidates, props(StyleNormal, WeightBold, StretchNormal))
	if !ok || i != 2 {
		t.Fatalf("Match = %d, %v; want 2, true", i, ok)
	}
}

func TestMatchStyleSubstitution(t *testing.T) {
	candidates := []Properties{
		props(StyleNormal, WeightNormal, StretchNormal),
		props(StyleOblique, WeightNormal, StretchNormal),
	}
	// Italic queries accept oblique before normal.
	i, ok := Match(candidates, props(StyleItalic, WeightNormal, StretchNormal))
	if !ok || i != 1 {
		t.Fatalf("italic query matched %d, %v; want 1, true", i, ok)
	}
}

func TestMatchWeightPivot(t *testing.T) {
	tests := []struct {
		name    string
		weights []Weight
		query   Weight
		want    int
	}{
		{"regular prefers medium over light", []Weight{WeightLight, WeightMedium, WeightBold}, WeightNormal, 1},
		{"regular prefers light over bold", []Weight{WeightLight, WeightBold}, WeightNormal, 0},
		{"medium prefers regular over semibold", []Weight{WeightNormal, WeightSemiBold}, WeightMedium, 0},
		{"light prefers thin over regular", []Weight{WeightThin, WeightNormal}, WeightLight, 0},
		{"bold prefers black over regular", []Weight{WeightNormal, WeightBlack}, WeightBold, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			candidates := make([]Properties, len(tt.weights))
			for i, w := range tt.weights {
				candidates[i] = props(StyleNormal, w, StretchNormal)
			}
			i, ok := Match(candidates, props(StyleNormal, tt.query, StretchNormal))
			if !ok || i != tt.want {
				t.Fatalf("Match = %d, %v; want %d, true", i, ok, tt.want)
			}
		})
	}
}

func TestMatchStretchDirection(t *testing.T) {
	candidates := []Properties{
		props(StyleNormal, WeightNormal, StretchCondensed),
		props(StyleNormal, WeightNormal, StretchExpanded),
	}
	// Normal queries break stretch ties toward the narrow side.
	i, ok := Match(candidates, props(StyleNormal, WeightNormal, StretchNormal))
	if !ok || i != 0 {
		t.Fatalf("normal stretch matched %d, %v; want 0, true", i, ok)
	}
	i, ok = Match(candidates, props(StyleNormal, WeightNormal, StretchUltraExpanded))
	if !ok || i != 1 {
		t.Fatalf("expanded stretch matched %d, %v; want 1, true", i, ok)
	}
}
