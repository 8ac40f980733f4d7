package logo

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLookup(t *testing.T) {
	s := NewService(map[string]string{
		"daraz":  "/logos/daraz-logo.png",
		"Amazon": "/logos/amazon-logo.png",
		"empty":  "",
	}, "")

	assert.Equal(t, "/logos/daraz-logo.png", s.Lookup("daraz"))
	assert.Equal(t, "/logos/daraz-logo.png", s.Lookup("DARAZ"))
	assert.Equal(t, "/logos/amazon-logo.png", s.Lookup("amazon"))
	assert.Equal(t, DefaultLogo, s.Lookup("empty"))
	assert.Equal(t, DefaultLogo, s.Lookup("unknown"))
	assert.Equal(t, DefaultLogo, s.Default())
}

func TestLookup_CustomFallback(t *testing.T) {
	s := NewService(nil, "/static/none.png")

	assert.Equal(t, "/static/none.png", s.Lookup("daraz"))
}
