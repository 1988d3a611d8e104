package console

import (
	"bytes"
	"testing"
)

func TestLogger(t *testing.T) {
	cases := []struct {
		level  Level
		colour bool
		want   string
	}{
		{INFO, false, "[-] hello 1\n"},
		{WARN, false, "[!] hello 1\n"},
		{ERROR, false, "[X] hello 1\n"},
		{SUCCESS, false, "[+] hello 1\n"},
		{Level(42), false, "[-] hello 1\n"},
		{INFO, true, "\x1b[34m[-] hello 1\x1b[0m\n"},
		{WARN, true, "\x1b[33m[!] hello 1\x1b[0m\n"},
		{ERROR, true, "\x1b[31m[X] hello 1\x1b[0m\n"},
		{SUCCESS, true, "\x1b[32m[+] hello 1\x1b[0m\n"},
	}

	for i, tc := range cases {
		var buf bytes.Buffer
		NewLogger(&buf, tc.colour).Log(tc.level, "hello %d", 1)
		if got := buf.String(); got != tc.want {
			t.Errorf("%d: %s: Got %q, want %q", i, tc.level, got, tc.want)
		}
	}
}

func TestLoggerHelpers(t *testing.T) {
	var buf bytes.Buffer
	lg := NewLogger(&buf, false)

	lg.Infof("a")
	lg.Warnf("b")
	lg.Errorf("c")
	lg.Successf("d")

	if got, want := buf.String(), "[-] a\n[!] b\n[X] c\n[+] d\n"; got != want {
		t.Errorf("Got %q, want %q", got, want)
	}
}
