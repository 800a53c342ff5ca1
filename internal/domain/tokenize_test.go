package domain

import (
	"reflect"
	"testing"
)

func TestTokenize(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{"empty", "", []string{}},
		{"punctuation only", "(){}.;", []string{}},
		{"qualified reference", "R.drawable.ic_logo", []string{"drawable", "ic_logo", "r"}},
		{"resource reference", `android:src="@drawable/ic_logo"`, []string{"android", "drawable", "ic_logo", "src"}},
		{"lower-cases", "ActivityMainBinding.inflate", []string{"activitymainbinding", "inflate"}},
		{"de-duplicates", "foo foo FOO", []string{"foo"}},
		{"kotlin method reference", "FooBinding::bind", []string{"bind", "foobinding"}},
		{"symbols split", "a→b", []string{"a", "b"}},
		{"underscore kept", "snake_case_name", []string{"snake_case_name"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Tokenize(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Tokenize(%q) = %v, want %v", tt.text, got, tt.want)
			}
		})
	}
}
