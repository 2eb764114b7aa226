package s3

import "testing"

func TestApplyPrefix(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		prefix string
		key    string
		want   string
	}{
		{name: "no prefix", prefix: "", key: "session/file.pdf", want: "session/file.pdf"},
		{name: "simple prefix", prefix: "root", key: "session/file.pdf", want: "root/session/file.pdf"},
		{name: "prefix trailing slash", prefix: "root/", key: "session/file.pdf", want: "root/session/file.pdf"},
		{name: "prefix and key slashes", prefix: "/root/", key: "/session/file.pdf", want: "root/session/file.pdf"},
		{name: "nested prefix", prefix: "root/sub", key: "session/file.pdf", want: "root/sub/session/file.pdf"},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			if got := applyPrefix(tt.prefix, tt.key); got != tt.want {
				t.Fatalf("applyPrefix(%q, %q) = %q, want %q", tt.prefix, tt.key, got, tt.want)
			}
		})
	}
}
