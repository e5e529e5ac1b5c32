package upload

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidateDocument(t *testing.T) {
	pdf := []byte("%PDF-1.4\n1 0 obj\nendobj\n%%EOF\n")

	t.Run("pdf passes", func(t *testing.T) {
		result := ValidateDocument("resume.pdf", pdf)
		assert.True(t, result.Valid)
		assert.Equal(t, ".pdf", result.Extension)
		assert.Equal(t, "application/pdf", result.ContentType)
	})

	t.Run("extension casing is ignored", func(t *testing.T) {
		result := ValidateDocument("Resume.PDF", pdf)
		assert.True(t, result.Valid)
	})

	t.Run("extension outside the whitelist", func(t *testing.T) {
		result := ValidateDocument("resume.exe", []byte("MZ\x90\x00\x03\x00"))
		assert.False(t, result.Valid)
		assert.Contains(t, result.Error, "not allowed")
	})

	t.Run("renamed executable does not pass as pdf", func(t *testing.T) {
		result := ValidateDocument("resume.pdf", []byte("MZ\x90\x00\x03\x00\x04\x00"))
		assert.False(t, result.Valid)
		assert.Contains(t, result.Error, "does not match")
	})

	t.Run("docx zip container passes", func(t *testing.T) {
		data := append([]byte{0x50, 0x4B, 0x03, 0x04}, make([]byte, 64)...)
		result := ValidateDocument("resume.docx", data)
		assert.True(t, result.Valid)
	})

	t.Run("legacy doc passes despite octet-stream sniff", func(t *testing.T) {
		data := append([]byte{0xD0, 0xCF, 0x11, 0xE0, 0xA1, 0xB1, 0x1A, 0xE1}, make([]byte, 64)...)
		result := ValidateDocument("resume.doc", data)
		assert.True(t, result.Valid)
	})

	t.Run("no extension", func(t *testing.T) {
		result := ValidateDocument("resume", pdf)
		assert.False(t, result.Valid)
	})

	t.Run("truncated file", func(t *testing.T) {
		result := ValidateDocument("resume.pdf", []byte("%P"))
		assert.False(t, result.Valid)
	})
}

func TestValidateImage(t *testing.T) {
	t.Run("png passes", func(t *testing.T) {
		data := append([]byte{0x89, 0x50, 0x4E, 0x47, 0x0D, 0x0A, 0x1A, 0x0A}, make([]byte, 32)...)
		result := ValidateImage("avatar.png", data)
		assert.True(t, result.Valid)
		assert.Equal(t, "image/png", result.ContentType)
	})

	t.Run("documents are not images", func(t *testing.T) {
		result := ValidateImage("avatar.pdf", []byte("%PDF-1.4\n"))
		assert.False(t, result.Valid)
	})
}
