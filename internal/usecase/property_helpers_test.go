package usecase

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		title string
		want  string
	}{
		{"Lekki Phase 1 Duplex", "lekki-phase-1-duplex"},
		{"  Spacious   3-Bed Flat!  ", "spacious-3-bed-flat"},
		{"UPPERCASE TITLE", "uppercase-title"},
		{"trailing punctuation...", "trailing-punctuation"},
		{"!!!", ""},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, slugify(tt.title), "slugify(%q)", tt.title)
	}
}
