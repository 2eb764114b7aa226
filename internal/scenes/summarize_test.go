package scenes

import "testing"

func TestCondense(t *testing.T) {
	cases := []struct {
		name      string
		fragments []string
		want      string
	}{
		{
			name:      "joins with single space",
			fragments: []string{"Title: Rehearsal", "INT. KITCHEN", "They argue."},
			want:      "Title: Rehearsal INT. KITCHEN They argue.",
		},
		{
			name:      "drops blank fragments",
			fragments: []string{"", "  ", "only this"},
			want:      "only this",
		},
		{
			name:      "trims fragment edges",
			fragments: []string{"  padded  ", "text"},
			want:      "padded text",
		},
		{
			name:      "all blank",
			fragments: []string{"", "   "},
			want:      "",
		},
		{
			name:      "nil input",
			fragments: nil,
			want:      "",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Condense(tc.fragments); got != tc.want {
				t.Fatalf("Condense(%v) = %q, want %q", tc.fragments, got, tc.want)
			}
		})
	}
}
