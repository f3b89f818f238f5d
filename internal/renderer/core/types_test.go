package core

import "testing"

func TestColorFromHex(t *testing.T) {
	tests := []struct {
		in      string
		want    Color
		wantErr bool
	}{
		{"#ff8000", ColorFromRGB(255, 128, 0), false},
		{"ff8000", ColorFromRGB(255, 128, 0), false},
		{"#f80", ColorFromRGB(255, 136, 0), false},
		{"#000", ColorBlack, false},
		{"#ff80", Color{}, true},
		{"#gggggg", Color{}, true},
		{"", Color{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ColorFromHex(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ColorFromHex(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			}
			if !tt.wantErr && !got.Equals(tt.want) {
				t.Errorf("ColorFromHex(%q) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestColorEquals(t *testing.T) {
	tests := []struct {
		name string
		a, b Color
		want bool
	}{
		{"default", ColorDefault, ColorDefault, true},
		{"default vs black", ColorDefault, ColorBlack, false},
		{"indexed ignores G and B", Color{R: 3, G: 1, Indexed: true}, ColorFromIndex(3), true},
		{"indexed vs rgb", ColorFromIndex(0), ColorBlack, false},
		{"rgb", ColorFromRGB(1, 2, 3), ColorFromRGB(1, 2, 3), true},
	}

	for _, tt := range tests {
		if got := tt.a.Equals(tt.b); got != tt.want {
			t.Errorf("%s: Equals = %v, want %v", tt.name, got, tt.want)
		}
	}
}

func TestColorString(t *testing.T) {
	if got := ColorFromRGB(255, 0, 16).String(); got != "#ff0010" {
		t.Errorf("String = %q", got)
	}
	if got := ColorDefault.String(); got != "default" {
		t.Errorf("String = %q", got)
	}
}

func TestStyleBuilders(t *testing.T) {
	s := NewStyle(ColorRed).Bold().Reverse()
	if !s.Attributes.Has(AttrBold) || !s.Attributes.Has(AttrReverse) {
		t.Errorf("attributes = %b", s.Attributes)
	}
	if s.Attributes.Has(AttrDim) {
		t.Error("dim should not be set")
	}
	if !s.Background.IsDefault() {
		t.Error("background should be default")
	}
	if s.Equals(DefaultStyle()) {
		t.Error("styled should differ from default")
	}
}

func TestScreenRect(t *testing.T) {
	r := RectFromSize(1, 2, 3, 4)
	if r.Width() != 4 || r.Height() != 3 {
		t.Errorf("size = %dx%d, want 4x3", r.Width(), r.Height())
	}
	if !r.Contains(2, 1) || r.Contains(6, 1) || r.Contains(2, 4) {
		t.Error("Contains uses inclusive top-left, exclusive bottom-right")
	}
	if !(ScreenRect{Top: 5, Bottom: 2}).IsEmpty() {
		t.Error("inverted rect should be empty")
	}
}
