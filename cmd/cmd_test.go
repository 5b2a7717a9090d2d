package cmd

import (
	"testing"

	"trendclip/internal/model"
	"trendclip/internal/wizard"
)

func TestValidURL(t *testing.T) {
	tests := []struct {
		in      string
		wantErr bool
	}{
		{"http://localhost:8000", false},
		{" https://api.example.com ", false},
		{"localhost:8000", true},
		{"", true},
	}
	for _, tt := range tests {
		if err := validURL(tt.in); (err != nil) != tt.wantErr {
			t.Errorf("validURL(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
		}
	}
}

func TestRequired(t *testing.T) {
	check := required("Bucket name")
	if err := check("  "); err == nil {
		t.Error("blank value should be rejected")
	}
	if err := check("clips"); err != nil {
		t.Errorf("required() error = %v", err)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 10); got != "short" {
		t.Errorf("truncate() = %q", got)
	}
	if got := truncate("abcdefghij", 5); got != "abcd…" {
		t.Errorf("truncate() = %q, want abcd…", got)
	}
}

func TestCommandsRegistered(t *testing.T) {
	want := map[string]bool{"wizard": false, "once": false, "categories": false, "setup": false, "exports": false}
	for _, c := range rootCmd.Commands() {
		if _, ok := want[c.Name()]; ok {
			want[c.Name()] = true
		}
	}
	for name, found := range want {
		if !found {
			t.Errorf("command %q not registered", name)
		}
	}
}

func TestCopyItemLabels(t *testing.T) {
	pkg := &model.ContentPackage{Graphics: []string{"g1", "g2"}}

	tests := []struct {
		name string
		view wizard.ContentView
		want int
	}{
		{"noPackage", wizard.ContentView{Tab: wizard.TabScript}, 0},
		{"script", wizard.ContentView{Tab: wizard.TabScript, Package: pkg}, 3},
		{"graphics", wizard.ContentView{Tab: wizard.TabGraphics, Package: pkg}, 2},
		{"emptyThumbnails", wizard.ContentView{Tab: wizard.TabThumbnails, Package: pkg}, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := len(copyItemLabels(tt.view)); got != tt.want {
				t.Errorf("len(copyItemLabels()) = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestSelectCopyItemEmptyTab(t *testing.T) {
	v := wizard.ContentView{Tab: wizard.TabThumbnails, Package: &model.ContentPackage{}}

	_, ok, err := selectCopyItem(v)
	if err != nil {
		t.Fatalf("selectCopyItem() error = %v", err)
	}
	if ok {
		t.Error("empty tab should offer nothing to copy")
	}
}

func TestParseCopyChoice(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantOK  bool
		wantErr bool
	}{
		{"", 0, false, false},
		{"2", 2, true, false},
		{"x", 0, false, true},
	}
	for _, tt := range tests {
		got, ok, err := parseCopyChoice(tt.in)
		if (err != nil) != tt.wantErr || ok != tt.wantOK || got != tt.want {
			t.Errorf("parseCopyChoice(%q) = %d, %t, %v", tt.in, got, ok, err)
		}
	}
}
