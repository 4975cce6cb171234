package chunker

import (
	"reflect"
	"strings"
	"testing"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name string
		text string
		max  int
		want []string
	}{
		{
			name: "blank lines dropped before grouping",
			text: "A\n\nB\nC\nD",
			max:  2,
			want: []string{"A\nB", "C\nD"},
		},
		{
			name: "short document is one chunk",
			text: "Question 1. What is 2+2?\nA. 3\tB. 4",
			max:  50,
			want: []string{"Question 1. What is 2+2?\nA. 3\tB. 4"},
		},
		{
			name: "trailing partial chunk kept",
			text: "A\nB\nC",
			max:  2,
			want: []string{"A\nB", "C"},
		},
		{
			name: "empty document",
			text: "",
			max:  50,
			want: nil,
		},
		{
			name: "all-blank document",
			text: "\n \n\t\n",
			max:  50,
			want: nil,
		},
		{
			name: "whitespace-only lines dropped, content lines untrimmed",
			text: "  A  \n   \nB",
			max:  50,
			want: []string{"  A  \nB"},
		},
		{
			name: "non-positive limit uses default",
			text: "A\nB",
			max:  0,
			want: []string{"A\nB"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := Split(tc.text, tc.max)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("Split(%q, %d) = %#v, want %#v", tc.text, tc.max, got, tc.want)
			}
		})
	}
}

// Concatenating all chunks must reproduce the non-blank lines of the input
// in order, split only at chunk boundaries.
func TestSplitPreservesLines(t *testing.T) {
	var lines []string
	for i := 0; i < 127; i++ {
		lines = append(lines, strings.Repeat("x", i%7+1))
	}
	text := strings.Join(lines, "\n\n")

	chunks := Split(text, 50)
	if len(chunks) != 3 {
		t.Fatalf("expected 3 chunks for 127 lines at max 50, got %d", len(chunks))
	}

	var rejoined []string
	for _, c := range chunks {
		rejoined = append(rejoined, strings.Split(c, "\n")...)
	}
	if !reflect.DeepEqual(rejoined, lines) {
		t.Fatal("rejoined chunk lines differ from input lines")
	}
}
