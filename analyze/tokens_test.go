package analyze_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/fwojciec/pagespec"
	"github.com/fwojciec/pagespec/analyze"
	"github.com/fwojciec/pagespec/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCanonicalizeTokens_ExcludesTransparentColors(t *testing.T) {
	t.Parallel()

	raw := &analyze.RawTokens{
		Colors: []string{
			"rgb(255, 0, 0)",
			"rgba(0, 0, 0, 0)",
			"rgba(0,0,0,0)",
			"rgb(255, 0, 0)",
		},
	}

	tokens := analyze.CanonicalizeTokens(raw)

	assert.Equal(t, []string{"rgb(255, 0, 0)"}, tokens.Colors)
}

func TestCanonicalizeTokens_ExcludesZeroSpacing(t *testing.T) {
	t.Parallel()

	raw := &analyze.RawTokens{
		Spacing: []string{"0px", "8px", "16px", "8px", "0px"},
	}

	tokens := analyze.CanonicalizeTokens(raw)

	assert.Equal(t, []string{"16px", "8px"}, tokens.Spacing)
	assert.NotContains(t, tokens.Spacing, "0px")
}

func TestCanonicalizeTokens_ExcludesShadowNone(t *testing.T) {
	t.Parallel()

	raw := &analyze.RawTokens{
		Shadows: []string{"none", "rgba(0, 0, 0, 0.1) 0px 2px 4px 0px", "none"},
	}

	tokens := analyze.CanonicalizeTokens(raw)

	assert.Equal(t, []string{"rgba(0, 0, 0, 0.1) 0px 2px 4px 0px"}, tokens.BoxShadows)
}

func TestCanonicalizeTokens_GradientsBySubstring(t *testing.T) {
	t.Parallel()

	raw := &analyze.RawTokens{
		Backgrounds: []string{
			"none",
			`url("https://example.com/bg.png")`,
			"linear-gradient(rgb(255, 0, 0), rgb(0, 0, 255))",
			`linear-gradient(rgb(0, 0, 0), rgb(0, 0, 0)), url("x.png")`,
		},
	}

	tokens := analyze.CanonicalizeTokens(raw)

	// A gradient layered with an image still qualifies by substring match.
	assert.Equal(t, []string{
		`linear-gradient(rgb(0, 0, 0), rgb(0, 0, 0)), url("x.png")`,
		"linear-gradient(rgb(255, 0, 0), rgb(0, 0, 255))",
	}, tokens.Gradients)
}

func TestCanonicalizeTokens_Idempotent(t *testing.T) {
	t.Parallel()

	raw := &analyze.RawTokens{
		Colors:  []string{"rgb(1, 2, 3)", "rgb(1, 2, 3)", "rgb(4, 5, 6)"},
		Fonts:   []string{"Arial | 400", "Arial | 400", "Arial | 700"},
		Spacing: []string{"4px", "4px"},
	}

	first := analyze.CanonicalizeTokens(raw)
	second := analyze.CanonicalizeTokens(raw)

	assert.Equal(t, first, second)
	assert.Len(t, first.Colors, 2)
	assert.Len(t, first.Fonts, 2)
	assert.Len(t, first.Spacing, 1)
}

func TestCanonicalizeTokens_EmptySetsAreNonNil(t *testing.T) {
	t.Parallel()

	tokens := analyze.CanonicalizeTokens(&analyze.RawTokens{})

	assert.NotNil(t, tokens.Colors)
	assert.NotNil(t, tokens.Fonts)
	assert.NotNil(t, tokens.Spacing)
	assert.NotNil(t, tokens.BorderRadii)
	assert.NotNil(t, tokens.BoxShadows)
	assert.NotNil(t, tokens.Gradients)
}

func TestCollectTokens(t *testing.T) {
	t.Parallel()

	session := &mock.Session{
		EvalFn: func(_ context.Context, js string, out any) error {
			raw := analyze.RawTokens{
				Colors:  []string{"rgb(10, 20, 30)", "rgba(0, 0, 0, 0)"},
				Fonts:   []string{"Georgia, serif | 400"},
				Spacing: []string{"0px", "12px"},
				Radii:   []string{"0px", "4px"},
				Shadows: []string{"none"},
			}
			data, err := json.Marshal(raw)
			require.NoError(t, err)
			return json.Unmarshal(data, out)
		},
	}

	tokens, err := analyze.CollectTokens(context.Background(), session)

	require.NoError(t, err)
	assert.Equal(t, []string{"rgb(10, 20, 30)"}, tokens.Colors)
	assert.Equal(t, []string{"Georgia, serif | 400"}, tokens.Fonts)
	assert.Equal(t, []string{"12px"}, tokens.Spacing)
	// Border radii have no zero-exclusion rule: only the listed rules apply.
	assert.Equal(t, []string{"0px", "4px"}, tokens.BorderRadii)
	assert.Empty(t, tokens.BoxShadows)
}

// Scenario: a page where every element's background is fully transparent
// contributes nothing to the color set from backgrounds.
func TestCanonicalizeTokens_TransparentBackgroundsOnly(t *testing.T) {
	t.Parallel()

	raw := &analyze.RawTokens{
		Colors: []string{"rgba(0, 0, 0, 0)", "rgba(0, 0, 0, 0)", "rgba(0, 0, 0, 0)"},
	}

	tokens := analyze.CanonicalizeTokens(raw)

	assert.Empty(t, tokens.Colors)
}

var _ pagespec.Session = (*mock.Session)(nil)
