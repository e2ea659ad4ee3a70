package policy

import "golang.org/x/text/language"

// Per-language stopword lists. These are deliberately small: stopword
// density is a coarse prose-vs-chrome signal, not an IR ranking feature,
// and the top few dozen function words carry nearly all of it.
var stopwordLists = map[string][]string{
	"en": {
		"a", "about", "all", "also", "an", "and", "are", "as", "at", "be",
		"because", "but", "by", "can", "could", "do", "for", "from", "had",
		"has", "have", "he", "her", "his", "if", "in", "is", "it", "its",
		"not", "of", "on", "or", "she", "so", "than", "that", "the", "their",
		"then", "there", "these", "they", "this", "to", "was", "we", "were",
		"which", "who", "will", "with", "would", "you", "your",
	},
	"de": {
		"aber", "als", "auch", "auf", "aus", "bei", "bis", "das", "dass",
		"dem", "den", "der", "des", "die", "ein", "eine", "einen", "er",
		"es", "für", "hat", "ich", "im", "in", "ist", "mit", "nach", "nicht",
		"noch", "nur", "oder", "sich", "sie", "sind", "so", "über", "und",
		"von", "war", "werden", "wie", "wir", "zu", "zum", "zur",
	},
	"fr": {
		"au", "aux", "avec", "ce", "ces", "dans", "de", "des", "du", "elle",
		"en", "est", "et", "il", "ils", "je", "la", "le", "les", "mais",
		"ne", "pas", "plus", "pour", "que", "qui", "sa", "se", "ses", "son",
		"sont", "sur", "un", "une", "vous",
	},
	"es": {
		"al", "como", "con", "de", "del", "el", "ella", "en", "es", "esta",
		"este", "ha", "la", "las", "lo", "los", "más", "no", "para", "pero",
		"por", "que", "se", "son", "su", "sus", "también", "un", "una", "y",
	},
	"it": {
		"al", "anche", "che", "come", "con", "da", "dei", "del", "della",
		"di", "e", "gli", "ha", "il", "in", "la", "le", "lo", "ma", "non",
		"per", "più", "si", "sono", "su", "un", "una", "uno",
	},
	"pt": {
		"ao", "as", "com", "como", "da", "das", "de", "do", "dos", "e",
		"em", "mais", "mas", "na", "não", "no", "os", "ou", "para", "por",
		"que", "se", "sua", "um", "uma",
	},
	"nl": {
		"aan", "als", "bij", "dat", "de", "die", "dit", "een", "en", "er",
		"het", "in", "is", "maar", "met", "niet", "of", "ook", "op", "te",
		"van", "voor", "wordt", "zijn",
	},
	"ru": {
		"в", "во", "да", "для", "же", "за", "и", "из", "или", "к", "как",
		"на", "не", "но", "о", "он", "она", "от", "по", "при", "с", "так",
		"также", "то", "что", "это", "я",
	},
	"ja": {
		"の", "に", "は", "を", "た", "が", "で", "て", "と", "し", "れ",
		"さ", "ある", "いる", "も", "する", "から", "な", "こと", "です",
		"ます", "ない", "この", "その",
	},
	"zh": {
		"的", "一", "是", "在", "不", "了", "有", "和", "人", "这", "中",
		"大", "为", "上", "个", "国", "我", "以", "要", "他", "们", "与",
		"也", "就", "都", "而", "及", "于", "对",
	},
}

// iso3Aliases maps ISO 639-3 codes that x/text does not fold onto the
// two-letter codes used above (language detectors report these).
var iso3Aliases = map[string]string{
	"cmn": "zh",
	"zho": "zh",
}

// DefaultLanguage is the stopword set used when no language can be
// determined.
const DefaultLanguage = "en"

var (
	stopwordSets   map[string]map[string]struct{}
	stopwordCodes  []string
	stopwordTags   []language.Tag
	stopwordsMatch language.Matcher
)

func init() {
	stopwordSets = make(map[string]map[string]struct{}, len(stopwordLists))
	for code, words := range stopwordLists {
		set := make(map[string]struct{}, len(words))
		for _, w := range words {
			set[w] = struct{}{}
		}
		stopwordSets[code] = set
	}

	// The default language must come first: the matcher falls back to the
	// first tag when nothing matches.
	stopwordCodes = []string{DefaultLanguage}
	for code := range stopwordLists {
		if code != DefaultLanguage {
			stopwordCodes = append(stopwordCodes, code)
		}
	}
	stopwordTags = make([]language.Tag, len(stopwordCodes))
	for i, code := range stopwordCodes {
		stopwordTags[i] = language.MustParse(code)
	}
	stopwordsMatch = language.NewMatcher(stopwordTags)
}

// Stopwords resolves a declared or detected language code (BCP 47 or
// ISO 639) to a stopword set. Unknown or unsupported languages fall back
// to the default set. The returned map is shared; callers must not modify it.
func Stopwords(lang string) (set map[string]struct{}, code string) {
	if alias, ok := iso3Aliases[lang]; ok {
		lang = alias
	}
	if lang != "" {
		if tag, err := language.Parse(lang); err == nil {
			if _, idx, conf := stopwordsMatch.Match(tag); conf >= language.High {
				code = stopwordCodes[idx]
				return stopwordSets[code], code
			}
		}
	}
	return stopwordSets[DefaultLanguage], DefaultLanguage
}
