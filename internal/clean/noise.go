package clean

import (
	"strings"
	"unicode"
)

// NoiseTags are removed together with their whole subtree.
var NoiseTags = []string{
	"script", "style", "noscript", "template", "iframe",
	"nav", "footer", "header", "aside",
}

// AllowedElements survive sanitizing (without attributes). Anything else is
// flattened to its text.
var AllowedElements = []string{"body", "article", "p", "div"}

// NoiseMarkers are matched against class and id values, case-insensitively.
// Markers shorter than minSubstringMarker only match a whole segment of the
// value so that "header" or "download" do not count as "ad".
var NoiseMarkers = []string{
	"ad", "ads",
	"banner", "popup", "cookie", "consent",
	"social", "share", "follow", "subscribe",
	"comment", "sidebar",
}

const minSubstringMarker = 4

// adStems mark ad containers when a segment starts with them, so that
// "advertisement" or "adslot2" match while "address" does not.
var adStems = []string{"advert", "adsense", "adsbygoogle", "adslot", "adunit", "adcontainer"}

// IsNoise reports whether a class or id attribute value names a noise
// container.
func IsNoise(value string) bool {
	value = strings.TrimSpace(value)
	if value == "" {
		return false
	}
	lower := strings.ToLower(value)
	var segs []string
	for _, m := range NoiseMarkers {
		if len(m) >= minSubstringMarker {
			if strings.Contains(lower, m) {
				return true
			}
			continue
		}
		if segs == nil {
			segs = segments(value)
		}
		for _, s := range segs {
			if s == m {
				return true
			}
		}
	}
	if segs == nil {
		segs = segments(value)
	}
	for _, s := range segs {
		for _, stem := range adStems {
			if strings.HasPrefix(s, stem) {
				return true
			}
		}
	}
	return false
}

// segments splits an attribute value on separators and camel-case
// boundaries and lowercases the parts: "top_AdBox sidebar-x" gives
// [top ad box sidebar x].
func segments(value string) []string {
	var out []string
	var cur []rune
	flush := func() {
		if len(cur) > 0 {
			out = append(out, strings.ToLower(string(cur)))
			cur = cur[:0]
		}
	}
	runes := []rune(value)
	for i, r := range runes {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			flush()
			continue
		}
		if unicode.IsUpper(r) && len(cur) > 0 {
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || (unicode.IsUpper(prev) && nextLower) {
				flush()
			}
		}
		cur = append(cur, r)
	}
	flush()
	return out
}
