package sorter

import "strings"

// Category is the group an import line belongs to
type Category int

const (
	StandardLibrary Category = iota
	Platform
	ThirdParty
	None
)

// categoryRank fixes the grouping order explicitly rather than relying
// on the declaration order of Category.
var categoryRank = map[Category]int{
	StandardLibrary: 0,
	Platform:        1,
	ThirdParty:      2,
	None:            3,
}

// Rank returns the category's position in the grouping order
func (c Category) Rank() int {
	return categoryRank[c]
}

func (c Category) String() string {
	switch c {
	case StandardLibrary:
		return "stdlib"
	case Platform:
		return "platform"
	case ThirdParty:
		return "thirdparty"
	default:
		return "none"
	}
}

// thirdPartyPrefixes are matched as the start of a quoted import path
var thirdPartyPrefixes = []string{
	`"github.com/`,
	`"gopkg.in/`,
	`"golang.org/`,
	`"pault.ag/`,
}

const platformPrefix = `"platform/`

func isThirdParty(text string) bool {
	for _, prefix := range thirdPartyPrefixes {
		if strings.Contains(text, prefix) {
			return true
		}
	}
	return false
}

func isPlatform(text string) bool {
	return strings.Contains(text, platformPrefix)
}

// Classify maps a line to exactly one category. Removed lines, blank
// lines and pure comment lines map to None.
func Classify(line Line) Category {
	if line.Removed {
		return None
	}
	if isThirdParty(line.Text) {
		return ThirdParty
	}
	if isPlatform(line.Text) {
		return Platform
	}
	if line.IsBlank() {
		return None
	}
	if strings.HasPrefix(stripSpaces(line.Text), "//") {
		return None
	}
	return StandardLibrary
}
