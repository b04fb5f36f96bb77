package relay

const (
	PairBenglishBangla  = "benglish-bangla"
	PairHinglishHindi   = "hinglish-hindi"
	PairBenglishEnglish = "benglish-english"
	PairHinglishEnglish = "hinglish-english"

	DefaultPair = PairBenglishBangla
)

var conversionInstructions = map[string]string{
	PairBenglishBangla:  "Convert Bengali words written in English/Latin letters into proper Bangla script. DO NOT translate English words - keep them as-is. Only convert Bengali words.",
	PairHinglishHindi:   "Convert Hindi words written in English/Latin letters into proper Devanagari/Hindi script. DO NOT translate English words - keep them as-is. Only convert Hindi words.",
	PairBenglishEnglish: "Translate Benglish (Bengali in English/Latin letters) into proper English translation.",
	PairHinglishEnglish: "Translate Hinglish (Hindi in English/Latin letters) into proper English translation.",
}

const grammarInstruction = "You are a professional grammar checker and editor. Your task is to check the grammar, spelling, and punctuation of the given text and provide ONLY the corrected version. Do not explain the corrections, do not add any comments, and do not change the meaning of the text. Just return the corrected text exactly as it should be written."

// LookupInstruction returns the instruction for pair, falling back to
// benglish-bangla for anything unrecognized.
func LookupInstruction(pair string) string {
	if s, ok := conversionInstructions[pair]; ok {
		return s
	}
	return conversionInstructions[DefaultPair]
}

func KnownPair(pair string) bool {
	_, ok := conversionInstructions[pair]
	return ok
}

func ConversionPrompt(pair, text string) string {
	return LookupInstruction(pair) + "\n\nConvert: " + text
}

func GrammarPrompt(text string) string {
	return grammarInstruction + "\n\nText to check and correct:\n" + text
}
