package star

import (
	"testing"
)

func TestClassOf(t *testing.T) {
	tests := []struct {
		spect  string
		want   Class
		wantOK bool
	}{
		{"O9.5V", ClassO, true},
		{"B8Ia", ClassB, true},
		{"A1V", ClassA, true},
		{"F5IV-V", ClassF, true},
		{"G2V", ClassG, true},
		{"K1V", ClassK, true},
		{"M3.5Ve", ClassM, true},
		{"DA2", "", false},
		{"C6", "", false},
		{"k", "", false},
		{"g2v", "", false},
		{"", "", false},
		{" G2V", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.spect, func(t *testing.T) {
			got, ok := ClassOf(tt.spect)
			if ok != tt.wantOK {
				t.Fatalf("ClassOf(%q) ok = %v, want %v", tt.spect, ok, tt.wantOK)
			}
			if ok && got != tt.want {
				t.Errorf("ClassOf(%q) = %q, want %q", tt.spect, got, tt.want)
			}
		})
	}
}

func TestClasses_Order(t *testing.T) {
	got := Classes()
	want := []Class{ClassO, ClassB, ClassA, ClassF, ClassG, ClassK, ClassM}
	if len(got) != len(want) {
		t.Fatalf("len(Classes()) = %d, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Classes()[%d] = %q, want %q", i, got[i], want[i])
		}
	}
}

func TestClasses_ReturnsCopy(t *testing.T) {
	got := Classes()
	got[0] = "X"
	if Classes()[0] != ClassO {
		t.Error("mutating Classes() result changed the palette")
	}
}

func TestColor(t *testing.T) {
	if got := ClassG.Color(); got != "rgb(255, 227, 180)" {
		t.Errorf("ClassG.Color() = %q", got)
	}
	if got := ClassM.Color(); got != "rgb(255, 103, 15)" {
		t.Errorf("ClassM.Color() = %q", got)
	}
	if got := Class("D").Color(); got != "" {
		t.Errorf("Class(D).Color() = %q, want empty", got)
	}
	for _, c := range Classes() {
		if c.Color() == "" {
			t.Errorf("class %q has no colour", c)
		}
	}
}
