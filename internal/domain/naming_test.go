package domain

import "testing"

func TestPascalCase(t *testing.T) {
	tests := map[string]string{
		"activity_main":    "ActivityMain",
		"item":             "Item",
		"fragment_home_v2": "FragmentHomeV2",
		"already_Upper":    "AlreadyUpper",
		"":                 "",
	}
	for in, want := range tests {
		if got := PascalCase(in); got != want {
			t.Errorf("PascalCase(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestSimpleClassName(t *testing.T) {
	if got := SimpleClassName("com.example.ui.HomeFragment"); got != "HomeFragment" {
		t.Errorf("got %q", got)
	}
	if got := SimpleClassName("HomeFragment"); got != "HomeFragment" {
		t.Errorf("got %q", got)
	}
}

func TestIsClassFile(t *testing.T) {
	tests := []struct {
		path string
		want bool
	}{
		{"/src/main/java/com/example/HomeFragment.kt", true},
		{"/src/main/java/com/example/HomeFragment.java", true},
		{"/src/main/java/com/example/HomeFragmentTest.kt", false},
		{"/src/main/res/layout/HomeFragment.xml", false},
	}
	for _, tt := range tests {
		if got := IsClassFile(tt.path, "HomeFragment"); got != tt.want {
			t.Errorf("IsClassFile(%q) = %v, want %v", tt.path, got, tt.want)
		}
	}
}

func TestResourceID(t *testing.T) {
	for in, want := range map[string]string{
		"@+id/homeFragment": "homeFragment",
		"@id/homeFragment":  "homeFragment",
		"homeFragment":      "homeFragment",
	} {
		if got := ResourceID(in); got != want {
			t.Errorf("ResourceID(%q) = %q, want %q", in, got, want)
		}
	}
}
