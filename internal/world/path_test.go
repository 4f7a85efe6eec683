package world

import (
	"testing"

	"github.com/pixil98/go-testutil"
)

func TestChildDir(t *testing.T) {
	tests := map[string]struct {
		base string
		name string
		exp  string
	}{
		"from home":          {base: Home, name: "trash", exp: "trash/"},
		"from nested dir":    {base: "trash/", name: "old", exp: "trash/old/"},
		"base missing slash": {base: "trash", name: "old", exp: "trash/old/"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, "path", ChildDir(tt.base, tt.name), tt.exp)
		})
	}
}

func TestChildFile(t *testing.T) {
	tests := map[string]struct {
		base string
		name string
		exp  string
	}{
		"from home":       {base: Home, name: "notes.txt", exp: "notes.txt"},
		"from dir":        {base: "trash/", name: ".hidden", exp: "trash/.hidden"},
		"from nested dir": {base: "system/logs/", name: "core.sys", exp: "system/logs/core.sys"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, "path", ChildFile(tt.base, tt.name), tt.exp)
		})
	}
}

func TestParent(t *testing.T) {
	tests := map[string]struct {
		path string
		exp  string
	}{
		"home stays home":       {path: Home, exp: Home},
		"single segment":        {path: "trash/", exp: Home},
		"two segments":          {path: "system/logs/", exp: "system/"},
		"missing trailing dash": {path: "system/logs", exp: "system/"},
	}

	for name, tt := range tests {
		t.Run(name, func(t *testing.T) {
			testutil.AssertEqual(t, "parent", Parent(tt.path), tt.exp)
		})
	}
}

func TestChildDirParentRoundTrip(t *testing.T) {
	// cd into any subdirectory then back up must land exactly at home
	for _, name := range []string{"trash", "system", "deep"} {
		testutil.AssertEqual(t, "round trip "+name, Parent(ChildDir(Home, name)), Home)
	}
}

func TestIsDirPath(t *testing.T) {
	testutil.AssertEqual(t, "home", IsDirPath(Home), true)
	testutil.AssertEqual(t, "dir", IsDirPath("trash/"), true)
	testutil.AssertEqual(t, "file", IsDirPath("notes.txt"), false)
}
