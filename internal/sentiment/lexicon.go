package sentiment

// Word valences on the [-4, 4] scale used by VADER-style lexicons.
// The list is trimmed to vocabulary that shows up in event feedback.
var lexicon = map[string]float64{
	// positive
	"amazing":       2.8,
	"awesome":       3.1,
	"best":          3.2,
	"better":        1.9,
	"brilliant":     2.8,
	"clear":         1.4,
	"delightful":    2.8,
	"engaging":      1.9,
	"enjoyed":       2.0,
	"enjoyable":     1.9,
	"excellent":     2.7,
	"excited":       2.1,
	"exciting":      2.2,
	"fantastic":     2.6,
	"fascinating":   2.3,
	"fine":          0.8,
	"fun":           2.3,
	"glad":          1.7,
	"good":          1.9,
	"great":         3.1,
	"happy":         2.7,
	"helpful":       1.8,
	"impressive":    2.3,
	"informative":   1.7,
	"insightful":    2.1,
	"inspiring":     2.4,
	"interesting":   1.7,
	"liked":         1.8,
	"love":          3.2,
	"loved":         2.9,
	"memorable":     1.6,
	"nice":          1.8,
	"outstanding":   3.1,
	"perfect":       2.7,
	"pleasant":      2.0,
	"recommend":     1.6,
	"smooth":        1.3,
	"superb":        3.0,
	"thanks":        1.9,
	"thoughtful":    1.8,
	"useful":        1.9,
	"valuable":      2.1,
	"well":          1.1,
	"wonderful":     2.7,
	"wow":           2.8,

	// negative
	"annoying":       -1.8,
	"awful":          -2.0,
	"bad":            -2.5,
	"boring":         -1.3,
	"broken":         -1.8,
	"chaotic":        -1.7,
	"confusing":      -1.5,
	"crowded":        -0.9,
	"disappointed":   -2.0,
	"disappointing":  -2.1,
	"disorganized":   -1.8,
	"dull":           -1.7,
	"frustrating":    -2.1,
	"hate":           -2.7,
	"hated":          -2.6,
	"horrible":       -2.5,
	"lacking":        -1.2,
	"late":           -0.8,
	"mediocre":       -0.7,
	"messy":          -1.4,
	"noisy":          -1.1,
	"poor":           -2.1,
	"pointless":      -1.9,
	"rude":           -2.2,
	"slow":           -1.0,
	"terrible":       -2.1,
	"tedious":        -1.4,
	"unclear":        -1.3,
	"unhelpful":      -1.8,
	"uninteresting":  -1.5,
	"unorganized":    -1.6,
	"unprofessional": -2.2,
	"useless":        -1.8,
	"waste":          -1.8,
	"wasted":         -1.9,
	"worst":          -3.1,
	"worse":          -2.1,
	"wrong":          -1.7,
}

// Boosters intensify the valence of the following word.
var boosters = map[string]float64{
	"absolutely":   0.293,
	"completely":   0.293,
	"especially":   0.293,
	"extremely":    0.293,
	"incredibly":   0.293,
	"particularly": 0.293,
	"really":       0.293,
	"so":           0.293,
	"super":        0.293,
	"totally":      0.293,
	"truly":        0.293,
	"very":         0.293,
	"almost":       -0.293,
	"barely":       -0.293,
	"hardly":       -0.293,
	"kind":         -0.293, // "kind of"
	"kinda":        -0.293,
	"slightly":     -0.293,
	"somewhat":     -0.293,
	"sort":         -0.293, // "sort of"
}

// Negators flip and dampen the valence of a nearby word.
var negators = map[string]bool{
	"aint":    true,
	"cannot":  true,
	"cant":    true,
	"didnt":   true,
	"doesnt":  true,
	"dont":    true,
	"isnt":    true,
	"never":   true,
	"no":      true,
	"none":    true,
	"not":     true,
	"nothing": true,
	"wasnt":   true,
	"werent":  true,
	"without": true,
	"wont":    true,
	"wouldnt": true,
}
