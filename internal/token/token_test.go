package token_test

import (
	"reflect"
	"testing"

	"github.com/KaramelBytes/wordheat/internal/token"
)

func TestTokenize(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"empty", "", nil},
		{"punctuation only", "!?.,;: --", nil},
		{"simple", "Hello, hello world!", []string{"Hello", "hello", "world"}},
		{"digits and underscore", "foo_bar2 baz-qux", []string{"foo_bar2", "baz", "qux"}},
		{"case preserved", "When in the Course", []string{"When", "in", "the", "Course"}},
		{"accented letters split", "café au lait", []string{"caf", "au", "lait"}},
		{"newlines are delimiters", "one\ntwo\n", []string{"one", "two"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := token.Tokenize(tc.in)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("Tokenize(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}
