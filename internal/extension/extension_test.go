package extension

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToken(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"pdf", "PDF document, version 1.4", "PDF"},
		{"leading space", "  PNG image data", "PNG"},
		{"tab separated", "JPEG\timage data", "JPEG"},
		{"single word", "data", "data"},
		{"empty", "", ""},
		{"blank", " \n", ""},
		{"glued token", "XYZdata some text", "XYZdata"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Token(tt.in))
		})
	}
}

func TestResolve_Hits(t *testing.T) {
	table := Default()
	tests := []struct {
		desc string
		want string
	}{
		{"PDF document, version 1.7", ".pdf"},
		{"ASCII text", ".txt"},
		{"ASCII text, with CRLF line terminators", ".txt"},
		{"PNG image data, 16 x 16, 8-bit/color RGBA, non-interlaced", ".png"},
		{"JPEG image data, JFIF standard 1.01", ".jpg"},
	}
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			r := table.Resolve(tt.desc)
			require.True(t, r.OK())
			assert.Equal(t, tt.want, r.String())
			assert.Equal(t, tt.want, r.Extension())
			assert.True(t, strings.HasPrefix(r.String(), "."))
			ext, _ := table.Lookup(Token(tt.desc))
			assert.Equal(t, "."+ext, r.String())
		})
	}
}

func TestResolve_MissReturnsFullDescription(t *testing.T) {
	table := Default()
	tests := []string{
		"XYZdata some text",
		"pdf document", // lookup is case-sensitive
		"UTF-8 Unicode text",
		"data",
		"",
	}
	for _, desc := range tests {
		t.Run(desc, func(t *testing.T) {
			r := table.Resolve(desc)
			assert.False(t, r.OK())
			assert.Equal(t, desc, r.String(), "miss must surface the raw description, not the token")
			assert.Equal(t, "", r.Extension())
			assert.False(t, strings.HasPrefix(r.String(), "."))
		})
	}
}

func TestNewTable_RejectsBadEntries(t *testing.T) {
	_, err := NewTable(map[string]string{"PDF": ".pdf"})
	assert.Error(t, err, "leading dot")

	_, err = NewTable(map[string]string{"": "bin"})
	assert.Error(t, err, "empty key")

	_, err = NewTable(map[string]string{"GIF image": "gif"})
	assert.Error(t, err, "key with whitespace can never match a token")

	_, err = NewTable(map[string]string{"GIF": ""})
	assert.Error(t, err, "empty value")
}

func TestNewTable_IsACopy(t *testing.T) {
	src := map[string]string{"GIF": "gif"}
	table, err := NewTable(src)
	require.NoError(t, err)

	src["GIF"] = "changed"
	src["TIFF"] = "tif"
	ext, ok := table.Lookup("GIF")
	assert.True(t, ok)
	assert.Equal(t, "gif", ext)
	_, ok = table.Lookup("TIFF")
	assert.False(t, ok)
}

func TestDefault_Descriptors(t *testing.T) {
	table := Default()
	assert.Equal(t, []string{"ASCII", "JPEG", "PDF", "PNG"}, table.Descriptors())
	assert.Equal(t, 4, table.Len())
	for _, d := range table.Descriptors() {
		ext, _ := table.Lookup(d)
		assert.False(t, strings.HasPrefix(ext, "."), d)
	}
}
