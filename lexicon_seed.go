package sentiment

// DefaultSeed returns the built-in English seed tables. Valences follow the
// [-4, +4] scale of human-rated sentiment lexicons.
func DefaultSeed() LexiconSeed {
	return LexiconSeed{
		Words:        englishWords(),
		Boosters:     englishBoosters(),
		Negations:    englishNegations(),
		Idioms:       englishIdioms(),
		Contrastives: []string{"but"},
	}
}

func englishWords() map[string]float64 {
	return map[string]float64{
		// Strong positive
		"love":        3.2,
		"loved":       2.9,
		"loves":       2.7,
		"loving":      2.9,
		"lovely":      2.8,
		"best":        3.2,
		"great":       3.1,
		"awesome":     3.1,
		"superb":      3.1,
		"perfectly":   3.2,
		"outstanding": 3.0,
		"magnificent": 2.9,
		"beautiful":   2.9,
		"amazing":     2.8,
		"brilliant":   2.8,
		"delightful":  2.8,
		"joy":         2.8,
		"win":         2.8,
		"wow":         2.8,
		"successful":  2.8,

		// Moderate positive
		"wonderful":   2.7,
		"excellent":   2.7,
		"perfect":     2.7,
		"happy":       2.7,
		"success":     2.7,
		"happiness":   2.6,
		"fantastic":   2.6,
		"positive":    2.6,
		"fabulous":    2.4,
		"enjoying":    2.4,
		"kind":        2.4,
		"winning":     2.4,
		"yay":         2.4,
		"enjoyed":     2.3,
		"fun":         2.3,
		"pleasant":    2.3,
		"impressive":  2.3,
		"enjoy":       2.2,
		"exciting":    2.2,
		"handsome":    2.2,
		"peaceful":    2.2,
		"pretty":      2.2,
		"relaxed":     2.2,
		"care":        2.2,
		"friendly":    2.2,
		"impressed":   2.1,
		"proud":       2.1,
		"like":        2.0,
		"glad":        2.0,
		"grateful":    2.0,
		"favorite":    2.0,
		"satisfying":  2.0,
		"haha":        2.0,
		"good":        1.9,
		"better":      1.9,
		"funny":       1.9,
		"enjoyable":   1.9,
		"hope":        1.9,
		"thanks":      1.9,
		"easy":        1.9,
		"nice":        1.8,
		"liked":       1.8,
		"likes":       1.8,
		"satisfied":   1.8,
		"helpful":     1.8,
		"lol":         1.8,
		"smart":       1.7,
		"yes":         1.7,
		"recommend":   1.5,
		"thank":       1.5,
		"comfortable": 1.5,
		"excited":     1.4,
		"badass":      1.4,
		"cool":        1.3,
		"calm":        1.3,

		// Mild positive
		"ok":    1.2,
		"okay":  0.9,
		"worth": 0.9,
		"fine":  0.8,

		// Strong negative
		"kill":       -3.7,
		"hated":      -3.2,
		"worst":      -3.1,
		"ugly":       -3.1,
		"hate":       -2.7,
		"dreadful":   -2.7,
		"nightmare":  -2.7,
		"shit":       -2.6,
		"nasty":      -2.6,
		"bad":        -2.5,
		"horrible":   -2.5,
		"fail":       -2.5,
		"ass":        -2.5,
		"stupid":     -2.4,
		"disgusting": -2.4,
		"hurt":       -2.4,

		// Moderate negative
		"disappointment": -2.3,
		"failure":        -2.3,
		"failed":         -2.3,
		"angry":          -2.3,
		"dumb":           -2.3,
		"pain":           -2.3,
		"sick":           -2.3,
		"disappointing":  -2.2,
		"wasted":         -2.2,
		"miserable":      -2.2,
		"afraid":         -2.2,
		"fear":           -2.2,
		"bomb":           -2.2,
		"terrible":       -2.1,
		"worse":          -2.1,
		"sad":            -2.1,
		"poor":           -2.1,
		"wrong":          -2.1,
		"cry":            -2.1,
		"awful":          -2.0,
		"rude":           -2.0,
		"disappointed":   -1.9,
		"hates":          -1.9,
		"painful":        -1.9,
		"scared":         -1.9,
		"worry":          -1.9,
		"regret":         -1.9,
		"weak":           -1.9,
		"useless":        -1.8,
		"waste":          -1.8,
		"unhappy":        -1.8,
		"stress":         -1.8,
		"lame":           -1.8,
		"annoying":       -1.7,
		"problem":        -1.7,
		"problems":       -1.7,
		"damn":           -1.7,
		"annoyed":        -1.6,
		"upset":          -1.6,
		"crap":           -1.6,

		// Mild negative
		"sucks":         -1.5,
		"sux":           -1.5,
		"mess":          -1.5,
		"broken":        -1.5,
		"unfortunately": -1.4,
		"stressed":      -1.4,
		"boring":        -1.3,
		"lost":          -1.3,
		"loss":          -1.3,
		"no":            -1.2,
		"worried":       -1.2,
		"complaint":     -1.2,
		"bored":         -1.1,
		"expensive":     -0.9,

		// Emoticons
		":)":  2.0,
		":-)": 1.3,
		":D":  2.3,
		";)":  0.9,
		"<3":  1.9,
		":(":  -1.9,
		":-(": -1.5,
		":/":  -1.4,
		":'(": -2.0,
	}
}

func englishBoosters() map[string]float64 {
	boosters := map[string]float64{}
	for _, w := range []string{
		"absolutely", "amazingly", "awfully", "completely", "considerably",
		"decidedly", "deeply", "effing", "enormously", "entirely", "especially",
		"exceptionally", "extremely", "fabulously", "flipping", "flippin",
		"fricking", "frickin", "frigging", "friggin", "fully", "greatly", "hella",
		"highly", "hugely", "incredibly", "intensely", "majorly", "more", "most",
		"particularly", "purely", "quite", "really", "remarkably", "so",
		"substantially", "thoroughly", "totally", "tremendously", "uber",
		"unbelievably", "unusually", "utterly", "very",
	} {
		boosters[w] = boostIncrement
	}
	for _, w := range []string{
		"almost", "barely", "hardly", "just enough", "kind of", "kinda", "kindof",
		"kind-of", "less", "little", "marginally", "occasionally", "partly",
		"scarcely", "slightly", "somewhat", "sort of", "sorta", "sortof", "sort-of",
	} {
		boosters[w] = boostDecrement
	}
	return boosters
}

func englishNegations() []string {
	return []string{
		"aint", "arent", "cannot", "cant", "couldnt", "darent", "didnt", "doesnt",
		"ain't", "aren't", "can't", "couldn't", "daren't", "didn't", "doesn't",
		"dont", "hadnt", "hasnt", "havent", "isnt", "mightnt", "mustnt", "neither",
		"don't", "hadn't", "hasn't", "haven't", "isn't", "mightn't", "mustn't",
		"neednt", "needn't", "never", "none", "nope", "nor", "not", "nothing",
		"nowhere", "oughtnt", "shant", "shouldnt", "uhuh", "wasnt", "werent",
		"oughtn't", "shan't", "shouldn't", "uh-uh", "wasn't", "weren't",
		"without", "wont", "wouldnt", "won't", "wouldn't", "rarely", "seldom",
		"despite", "no",
	}
}

func englishIdioms() map[string]float64 {
	return map[string]float64{
		"the shit":      3,
		"the bomb":      3,
		"bad ass":       1.5,
		"bus stop":      0,
		"yeah right":    -2,
		"kiss of death": -1.5,
		"to die for":    3,
		"beating heart": 3.1,
	}
}
