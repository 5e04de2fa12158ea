package shm

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatName(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"foo", "/foo"},
		{"/foo", "/foo"},
		{"/a/b/c", "/abc"},
		{"a/b/c", "/abc"},
		{"", "/"},
		{"///", "/"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatName(tc.in), "FormatName(%q)", tc.in)
	}
}

func TestFormatNameTruncates(t *testing.T) {
	long := strings.Repeat("x", NameMax*2)
	got := FormatName(long)
	assert.Len(t, got, NameMax)
	assert.Equal(t, "/"+long[:NameMax-1], got)
}

func TestFormatNameIdempotent(t *testing.T) {
	for _, in := range []string{"foo", "/a/b/c", "", strings.Repeat("y", 500)} {
		once := FormatName(in)
		assert.Equal(t, once, FormatName(once))
	}
}
