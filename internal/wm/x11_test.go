package wm

import "testing"

func TestParseClientLine(t *testing.T) {
	tests := []struct {
		name string
		line string
		want Window
		ok   bool
	}{
		{
			name: "regular window",
			line: "0x03a00007  0 firefox.Firefox       host Mozilla Firefox",
			want: Window{ID: "0x03a00007", Class: "Firefox", Title: "Mozilla Firefox", Workspace: "0"},
			ok:   true,
		},
		{
			name: "title with spaces kept intact",
			line: "0x04200003  1 code.Code             host fuzzy.go - hypr-switch - Visual Studio Code",
			want: Window{ID: "0x04200003", Class: "Code", Title: "fuzzy.go - hypr-switch - Visual Studio Code", Workspace: "1"},
			ok:   true,
		},
		{
			name: "empty title",
			line: "0x05000001  2 kitty.kitty           host",
			want: Window{ID: "0x05000001", Class: "kitty", Workspace: "2"},
			ok:   true,
		},
		{
			name: "sticky dock is dropped",
			line: "0x01e00004 -1 polybar.Polybar       host polybar-main",
			ok:   false,
		},
		{
			name: "blank line",
			line: "",
			ok:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := parseClientLine(tt.line)
			if ok != tt.ok {
				t.Fatalf("parseClientLine(%q) ok = %v, want %v", tt.line, ok, tt.ok)
			}
			if ok && got != tt.want {
				t.Fatalf("parseClientLine(%q) = %+v, want %+v", tt.line, got, tt.want)
			}
		})
	}
}

func TestWindowIDEquals(t *testing.T) {
	if !windowIDEquals("0x03a00007", 0x03a00007) {
		t.Fatal("hex id should equal its numeric value")
	}
	if windowIDEquals("0x03a00007", 1) {
		t.Fatal("different ids should not be equal")
	}
	if windowIDEquals("garbage", 1) {
		t.Fatal("unparseable id should never be equal")
	}
}
