package metallum_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ironsmile/grimoire/src/metallum"
)

// TestParseLinkFragment checks that links are extracted from the HTML fragments
// found in search results.
func TestParseLinkFragment(t *testing.T) {
	tests := []struct {
		desc     string
		fragment string
		expected metallum.Link
	}{
		{
			desc:     "relative link",
			fragment: `<a href="/bands/Adramelech/2426">Adramelech</a>`,
			expected: metallum.Link{Href: "/bands/Adramelech/2426", Text: "Adramelech"},
		},
		{
			desc: "absolute link with surrounding markup",
			fragment: `<a href="https://www.metal-archives.com/albums/Adramelech/Human_Extermination/73550">` +
				` Human Extermination </a> <!-- 3.65 -->`,
			expected: metallum.Link{
				Href: "https://www.metal-archives.com/albums/Adramelech/Human_Extermination/73550",
				Text: "Human Extermination",
			},
		},
		{
			desc:     "escaped text",
			fragment: `<a href="/bands/Mot%C3%B6rhead/203" title="x">Mot&ouml;rhead &amp; Co</a>`,
			expected: metallum.Link{Href: "/bands/Mot%C3%B6rhead/203", Text: "Motörhead & Co"},
		},
	}

	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			link, err := metallum.ParseLinkFragment(test.fragment)
			require.NoError(t, err)
			assert.Equal(t, test.expected, link)
		})
	}
}

// TestParseLinkFragmentErrors makes sure malformed fragments produce structure
// errors which mention the fragment.
func TestParseLinkFragmentErrors(t *testing.T) {
	tests := []struct {
		desc     string
		fragment string
	}{
		{desc: "no anchor", fragment: `<span>Adramelech</span>`},
		{desc: "plain text", fragment: `Adramelech`},
		{desc: "no href", fragment: `<a name="2426">Adramelech</a>`},
		{desc: "empty href", fragment: `<a href=" ">Adramelech</a>`},
	}

	for _, test := range tests {
		t.Run(test.desc, func(t *testing.T) {
			_, err := metallum.ParseLinkFragment(test.fragment)
			require.Error(t, err)
			assert.True(t, errors.Is(err, metallum.ErrStructure))

			var structErr *metallum.StructureError
			require.True(t, errors.As(err, &structErr))
			assert.Equal(t, test.fragment, structErr.Fragment)
			assert.Contains(t, err.Error(), test.fragment)
		})
	}
}

func TestIDFromHref(t *testing.T) {
	assert.Equal(t, "2426", metallum.IDFromHref("/bands/Adramelech/2426"))
	assert.Equal(t, "73550", metallum.IDFromHref(
		"https://www.metal-archives.com/albums/Adramelech/Human_Extermination/73550",
	))
	assert.Equal(t, "123", metallum.IDFromHref("123"))
	assert.Equal(t, "", metallum.IDFromHref("/bands/Adramelech/"))
}

// TestBestMatch checks that the first of many candidates is always chosen.
func TestBestMatch(t *testing.T) {
	candidates := []metallum.SearchHit{
		{
			Artist:      metallum.Link{Href: "/bands/Death/141", Text: "Death"},
			Release:     metallum.Link{Href: "/albums/Death/Human/606", Text: "Human"},
			ReleaseType: "Full-length",
		},
		{
			Artist:      metallum.Link{Href: "/bands/Death/141", Text: "Death"},
			Release:     metallum.Link{Href: "/albums/Death/Human/999", Text: "Human"},
			ReleaseType: "Single",
		},
	}

	for i := 0; i < 3; i++ {
		hit := metallum.BestMatch(candidates)
		assert.Equal(t, candidates[0], hit)
		assert.Equal(t, "606", hit.ReleaseID())
		assert.Equal(t, "141", hit.ArtistID())
	}

	assert.Equal(t, candidates[1], metallum.BestMatch(candidates[1:]))
}
