package integrations

import "testing"

func TestNormalizeRepoURL(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"already canonical", "https://github.com/acme/widget", "https://github.com/acme/widget"},
		{"git suffix", "https://github.com/acme/widget.git", "https://github.com/acme/widget"},
		{"git+https", "git+https://github.com/acme/widget.git", "https://github.com/acme/widget"},
		{"git+ssh", "git+ssh://git@github.com/acme/widget.git", "https://github.com/acme/widget"},
		{"ssh", "ssh://git@github.com/acme/widget", "https://github.com/acme/widget"},
		{"scp style", "git@github.com:acme/widget.git", "https://github.com/acme/widget"},
		{"git protocol", "git://github.com/acme/widget.git", "https://github.com/acme/widget"},
		{"other host", "git@gitlab.com:acme/widget", "https://gitlab.com/acme/widget"},
		{"unrecognized passes through", "svn://example.com/acme/widget", "svn://example.com/acme/widget"},
		{"whitespace", "  https://github.com/acme/widget  ", "https://github.com/acme/widget"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizeRepoURL(tt.in); got != tt.want {
				t.Errorf("NormalizeRepoURL(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
