package namegen

// SymbolIDs lists every rune that expands through the symbol table inside a
// symbol group.
const SymbolIDs = "svVcBCimMDd"

var symbols = map[rune][]string{
	// generic syllable
	's': {"ach", "ack", "ad", "age", "ald", "ale", "an", "ang", "ar", "ard",
		"as", "ash", "at", "ath", "augh", "aw", "ban", "bel", "bur", "cer",
		"cha", "che", "dan", "dar", "del", "den", "dra", "dyn", "ech", "eld",
		"elm", "em", "en", "end", "eng", "enth", "er", "ess", "est", "et",
		"gar", "gha", "hat", "hin", "hon", "ia", "ight", "ild", "im", "ina",
		"ine", "ing", "ir", "is", "iss", "it", "kal", "kel", "kim", "kin",
		"ler", "lor", "lye", "mor", "mos", "nal", "ny", "nys", "old", "om",
		"on", "or", "orm", "os", "ough", "per", "pol", "qua", "que", "rad",
		"rak", "ran", "ray", "ril", "ris", "rod", "roth", "ryn", "sam",
		"say", "ser", "shy", "skel", "sul", "tai", "tan", "tas", "ther",
		"tia", "tin", "ton", "tor", "tur", "um", "und", "unt", "urn", "usk",
		"ust", "ver", "ves", "vor", "war", "wor", "yer"},
	// vowel
	'v': {"a", "e", "i", "o", "u", "y"},
	// vowel or vowel combination
	'V': {"a", "e", "i", "o", "u", "y", "ae", "ai", "au", "ay", "ea", "ee",
		"ei", "eu", "ey", "ia", "ie", "oe", "oi", "oo", "ou", "ui"},
	// consonant
	'c': {"b", "c", "d", "f", "g", "h", "j", "k", "l", "m", "n", "p", "q", "r",
		"s", "t", "v", "w", "x", "y", "z"},
	// consonant or combination suitable for beginning a word
	'B': {"b", "bl", "br", "c", "ch", "chr", "cl", "cr", "d", "dr", "f", "g",
		"h", "j", "k", "l", "ll", "m", "n", "p", "ph", "qu", "r", "rh", "s",
		"sch", "sh", "sl", "sm", "sn", "st", "str", "sw", "t", "th", "thr",
		"tr", "v", "w", "wh", "y", "z", "zh"},
	// consonant or combination suitable anywhere in a word
	'C': {"b", "c", "ch", "ck", "d", "f", "g", "gh", "h", "k", "l", "ld", "ll",
		"lt", "m", "n", "nd", "nn", "nt", "p", "ph", "q", "r", "rd", "rr",
		"rt", "s", "sh", "ss", "st", "t", "th", "v", "w", "y", "z"},
	// insult
	'i': {"air", "ankle", "ball", "beef", "bone", "bum", "bumble", "bump",
		"cheese", "clod", "clot", "clown", "corn", "dip", "dolt", "doof",
		"dork", "dumb", "face", "finger", "foot", "fumble", "goof",
		"grumble", "head", "knock", "knocker", "knuckle", "loaf", "lump",
		"lunk", "meat", "muck", "munch", "nit", "numb", "pin", "puff",
		"skull", "snark", "sneeze", "thimble", "twerp", "twit", "wad",
		"wimp", "wipe"},
	// mushy name
	'm': {"baby", "booble", "bunker", "cuddle", "cuddly", "cutie", "doodle",
		"foofie", "gooble", "honey", "kissie", "lover", "lovey", "moofie",
		"mooglie", "moopie", "moopsie", "nookum", "poochie", "poof",
		"poofie", "pookie", "schmoopie", "schnoogle", "schnookie",
		"schnookum", "smooch", "smoochie", "smoosh", "snoogle", "snoogy",
		"snookie", "snookum", "snuggy", "sweetie", "woogle", "woogy",
		"wookie", "wookum", "wuddle", "wuddly", "wuggy", "wunny"},
	// mushy name ending
	'M': {"boo", "bunch", "bunny", "cake", "cakes", "cute", "darling",
		"dumpling", "dumplings", "face", "foof", "goo", "head", "kin",
		"kins", "lips", "love", "mush", "pie", "poo", "pooh", "pook", "pums"},
	// consonant suited for a stupid person's name
	'D': {"b", "bl", "br", "cl", "d", "f", "fl", "fr", "g", "gh", "gl", "gr",
		"h", "j", "k", "kl", "m", "n", "p", "th", "w"},
	// syllable suited for a stupid person's name, begins with a vowel
	'd': {"elch", "idiot", "ob", "og", "ok", "olph", "olt", "omph", "ong",
		"onk", "oo", "oob", "oof", "oog", "ook", "ooz", "org", "ork", "orm",
		"oron", "ub", "uck", "ug", "ulf", "ult", "um", "umb", "ump", "umph",
		"un", "unb", "ung", "unk", "unph", "unt", "uzz"},
}

// Symbol returns a copy of the expansion list for a symbol identifier.
// The second result is false for runes that are not symbol identifiers.
func Symbol(id rune) ([]string, bool) {
	list, ok := symbols[id]
	if !ok {
		return nil, false
	}
	out := make([]string, len(list))
	copy(out, list)
	return out, true
}

// symbolNodes holds one prebuilt choice per symbol. Trees are immutable, so
// every compiled pattern shares them.
var symbolNodes = func() map[rune]*Generator {
	nodes := make(map[rune]*Generator, len(symbols))
	for id, list := range symbols {
		children := make([]*Generator, len(list))
		for i, s := range list {
			children[i] = Literal(s)
		}
		nodes[id] = Choice(children...)
	}
	return nodes
}()
