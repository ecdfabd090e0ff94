package analyze

import (
	"context"
	"sort"
	"strings"

	"github.com/fwojciec/pagespec"
)

// tokensJS gathers raw style values across every element in one pass.
// Filtering and deduplication happen Go-side so the rules are testable
// without a browser.
const tokensJS = `() => {
	const out = {
		colors: [],
		fonts: [],
		spacing: [],
		radii: [],
		shadows: [],
		backgrounds: []
	};
	for (const el of document.querySelectorAll('*')) {
		const s = getComputedStyle(el);
		out.colors.push(s.color, s.backgroundColor, s.borderColor);
		out.fonts.push(s.fontFamily + ' | ' + s.fontWeight);
		out.spacing.push(
			s.marginTop, s.marginRight, s.marginBottom, s.marginLeft,
			s.paddingTop, s.paddingRight, s.paddingBottom, s.paddingLeft
		);
		out.radii.push(s.borderRadius);
		out.shadows.push(s.boxShadow);
		out.backgrounds.push(s.backgroundImage);
	}
	return JSON.stringify(out);
}`

// RawTokens mirrors the JSON produced by tokensJS.
type RawTokens struct {
	Colors      []string `json:"colors"`
	Fonts       []string `json:"fonts"`
	Spacing     []string `json:"spacing"`
	Radii       []string `json:"radii"`
	Shadows     []string `json:"shadows"`
	Backgrounds []string `json:"backgrounds"`
}

// CollectTokens produces the deduplicated design-token sets for the
// rendered document.
func CollectTokens(ctx context.Context, session pagespec.Session) (*pagespec.DesignTokens, error) {
	var raw RawTokens
	if err := session.Eval(ctx, tokensJS, &raw); err != nil {
		return nil, err
	}
	return CanonicalizeTokens(&raw), nil
}

// CanonicalizeTokens applies the token exclusion rules, deduplicates, and
// sorts each set for deterministic output. Rules: fully transparent colors
// and zero-length spacing are dropped, box-shadow "none" is dropped, and a
// background-image contributes to the gradient set only when its value
// contains the substring "gradient".
func CanonicalizeTokens(raw *RawTokens) *pagespec.DesignTokens {
	tokens := &pagespec.DesignTokens{
		Colors:      dedupe(raw.Colors, excludeTransparent),
		Fonts:       dedupe(raw.Fonts, nil),
		Spacing:     dedupe(raw.Spacing, excludeZeroLength),
		BorderRadii: dedupe(raw.Radii, nil),
		BoxShadows:  dedupe(raw.Shadows, excludeNone),
		Gradients:   dedupe(raw.Backgrounds, requireGradient),
	}
	return tokens
}

func excludeTransparent(v string) bool {
	return v == "rgba(0, 0, 0, 0)" || v == "rgba(0,0,0,0)"
}

func excludeZeroLength(v string) bool {
	return v == "0px"
}

func excludeNone(v string) bool {
	return v == "none"
}

// requireGradient inverts the usual exclusion sense: only values containing
// "gradient" qualify. An element layering a gradient with an image still
// qualifies by substring match.
func requireGradient(v string) bool {
	return !strings.Contains(v, "gradient")
}

// dedupe returns the distinct non-empty values of in, minus those matched
// by exclude, sorted ascending.
func dedupe(in []string, exclude func(string) bool) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, v := range in {
		if v == "" {
			continue
		}
		if exclude != nil && exclude(v) {
			continue
		}
		if _, ok := seen[v]; ok {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
