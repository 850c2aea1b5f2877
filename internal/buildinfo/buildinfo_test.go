package buildinfo

import "testing"

func TestShort(t *testing.T) {
	defer func(v, c string) { Version, Commit = v, c }(Version, Commit)

	Version, Commit = "dev", "unknown"
	if got := Short(); got != "dev" {
		t.Fatalf("defaults: got %q", got)
	}

	Commit = "0123456789abcdef"
	if got := Short(); got != "0123456" {
		t.Fatalf("commit: got %q", got)
	}

	Version = "v1.2.0"
	if got := Short(); got != "v1.2.0" {
		t.Fatalf("version: got %q", got)
	}
	if got := Title("cubescene"); got != "cubescene (v1.2.0)" {
		t.Fatalf("title: got %q", got)
	}
}
