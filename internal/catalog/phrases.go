package catalog

// PhraseSituation selects a phrase bank for an NPC line.
type PhraseSituation string

const (
	PhraseGiftThanks    PhraseSituation = "gift_thanks"
	PhraseGiftExcited   PhraseSituation = "gift_excited"
	PhraseBirthdayReply PhraseSituation = "birthday_reply"
	PhraseNewYearReply  PhraseSituation = "new_year_reply"
	PhraseAdvice        PhraseSituation = "advice"
	PhraseCollabAsk     PhraseSituation = "collab_ask"
)

// phrases maps behavior model → situation → lines. Falls back to the
// "default" model when a specific bank is missing.
var phrases = map[string]map[PhraseSituation][]string{
	"default": {
		PhraseGiftThanks:    {"Thank you, that's thoughtful of you.", "Oh, you didn't have to! Thanks."},
		PhraseGiftExcited:   {"No way, this is exactly what I wanted!", "You really get me. Thank you so much!"},
		PhraseBirthdayReply: {"You remembered! That means a lot.", "Thanks for the birthday wishes!"},
		PhraseNewYearReply:  {"Happy New Year to you too! Let's make it a good one.", "Same to you! May this year bring great stages."},
		PhraseAdvice:        {"Keep your core tight on the turns, it changes everything.", "Film yourself from the side once in a while. It's humbling."},
		PhraseCollabAsk:     {"I've had a song stuck in my head for weeks. Cover it with me?", "Want to try a joint stage? I think our styles would mix well."},
	},
	"Burner": {
		PhraseGiftThanks:  {"Fuel for the grind. Appreciated."},
		PhraseGiftExcited: {"This is going straight into my practice bag. Thank you!"},
		PhraseAdvice:      {"Stop saving energy for the ending. Burn through the whole run."},
	},
	"Perfectionist": {
		PhraseGiftThanks:  {"Thoughtful. I'll put it to precise use."},
		PhraseGiftExcited: {"Exactly the right choice. I'm impressed."},
		PhraseAdvice:      {"Your lines are late by half a count. Fix the half count first."},
	},
	"Sunshine": {
		PhraseGiftThanks:  {"Aww, thank you!! You're the best!"},
		PhraseGiftExcited: {"AAAH I love it so much!! Thank you!!"},
		PhraseAdvice:      {"Smile while you drill! It tricks your body into lasting longer."},
	},
	"SilentPro": {
		PhraseGiftThanks:  {"...thanks. Really."},
		PhraseGiftExcited: {"...this is perfect. How did you know?"},
		PhraseAdvice:      {"Watch the floor less. Trust your feet."},
	},
}

// Phrase picks a line for the behavior model and situation, using the given
// pick function (an index chooser) so callers control randomness.
func Phrase(model string, situation PhraseSituation, pick func(n int) int) string {
	bank := phrases[model][situation]
	if len(bank) == 0 {
		bank = phrases["default"][situation]
	}
	if len(bank) == 0 {
		return ""
	}
	return bank[pick(len(bank))]
}

// PositiveComments and NegativeComments are public-reaction pools for
// completed covers.
var PositiveComments = []string{
	"The sync on this is unreal.",
	"Center energy from start to finish!",
	"I've watched this five times already.",
	"The costume fits the concept perfectly.",
	"This is cleaner than the original, don't @ me.",
	"Facial expressions on point!",
	"Algorithm finally did something right bringing me here.",
	"That chorus formation change gave me chills.",
}

var NegativeComments = []string{
	"The timing drifts after the first chorus.",
	"Costume doesn't really match the concept, honestly.",
	"Feels under-rehearsed compared to their last one.",
	"Camera work is doing a lot of the heavy lifting here.",
	"Expected more after the teaser.",
}
