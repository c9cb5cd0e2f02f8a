package names

import "strings"

// variationGroups are known spellings of the same name, including
// cross-language forms common in the source records. Membership is
// checked lower-cased.
var variationGroups = [][]string{
	{"ann", "anne", "anna"},
	{"catherine", "katherine", "kathryn", "katharine"},
	{"charles", "carl", "karl"},
	{"elizabeth", "elisabeth"},
	{"frederick", "fredrick", "friedrich"},
	{"george", "georg"},
	{"henry", "heinrich", "hendrick"},
	{"jacob", "jakob"},
	{"john", "johann", "johannes", "jan"},
	{"margaret", "margret", "margarete", "margaretha"},
	{"mary", "marie", "maria"},
	{"peter", "pieter", "petrus"},
	{"sarah", "sara"},
	{"susan", "susanna", "susannah", "susanne"},
	{"william", "wilhelm", "willem"},
	{"miller", "mueller", "muller"},
	{"smith", "schmidt", "schmitt"},
}

var variationIndex = map[string]int{}

func init() {
	for i, group := range variationGroups {
		for _, name := range group {
			variationIndex[name] = i
		}
	}
}

// sameVariationGroup reports whether both components belong to the same
// known-variation group.
func sameVariationGroup(x, y string) bool {
	gx, ok := variationIndex[strings.ToLower(x)]
	if !ok {
		return false
	}
	gy, ok := variationIndex[strings.ToLower(y)]
	return ok && gx == gy
}
