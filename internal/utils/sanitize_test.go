package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeText(t *testing.T) {
	t.Run("plain text passes through", func(t *testing.T) {
		assert.Equal(t, "hello world", SanitizeText("hello world"))
	})

	t.Run("tags are stripped", func(t *testing.T) {
		assert.Equal(t, "bold", SanitizeText("<b>bold</b>"))
		assert.Equal(t, "link", SanitizeText(`<a href="https://evil.example">link</a>`))
	})

	t.Run("script content is dropped entirely", func(t *testing.T) {
		assert.Equal(t, "", SanitizeText(`<script>alert(1)</script>`))
	})
}
