package metallum_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ironsmile/grimoire/src/metallum"
)

func TestImagePath(t *testing.T) {
	tests := []struct {
		id       string
		kind     metallum.ImageKind
		expected string
	}{
		{id: "528471", kind: metallum.LogoImage, expected: "/images/5/2/8/4/528471_logo.jpg"},
		{id: "528471", kind: metallum.CoverImage, expected: "/images/5/2/8/4/528471.jpg"},
		{id: "12", kind: metallum.CoverImage, expected: "/images/1/2/12.jpg"},
		{id: "2426", kind: metallum.LogoImage, expected: "/images/2/4/2/6/2426_logo.jpg"},
		{id: "7", kind: metallum.LogoImage, expected: "/images/7/7_logo.jpg"},
	}

	for _, test := range tests {
		assert.Equal(t, test.expected, metallum.ImagePath(test.id, test.kind))
	}
}
