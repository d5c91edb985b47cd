package page_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/markview/pkg/render/page"
)

func TestParseColor(t *testing.T) {
	t.Parallel()

	c, err := page.ParseColor("#2c3e50")
	require.NoError(t, err)
	assert.Equal(t, page.Color{R: 0x2c, G: 0x3e, B: 0x50}, c)
	assert.Equal(t, "#2c3e50", c.Hex())

	c, err = page.ParseColor("FFFFFF")
	require.NoError(t, err)
	assert.Equal(t, page.Color{R: 255, G: 255, B: 255}, c)

	for _, bad := range []string{"", "#fff", "#zzzzzz", "#1234567"} {
		_, err := page.ParseColor(bad)
		assert.Error(t, err, bad)
	}
}

func TestStyle_HeadingClamps(t *testing.T) {
	t.Parallel()

	s := page.DefaultStyle()
	assert.Equal(t, "Heading1", s.Heading(0).Name)
	assert.Equal(t, "Heading6", s.Heading(9).Name)
}
