package reply

import (
	"fmt"
	"regexp"

	"github.com/sandevgo/bodai/internal/core"
)

// Trigger is a command prefix. The payload is whatever follows the first
// occurrence of Keyword.
type Trigger struct {
	Phrase  string
	Keyword string
}

type ProfileTrigger struct {
	Phrase   string
	Category core.Category
}

type Pattern struct {
	Regexp    *regexp.Regexp
	Responses []string
}

// Phrase maps a key to a fixed response.
type Phrase struct {
	Key      string
	Response string
}

// Lexicon carries every language-dependent string of the reply chain.
// Phrases, keys and markers are written folded: lowercase, no diacritics.
type Lexicon struct {
	Language    string
	Personality string

	MemorizeTriggers []Trigger
	MemorizeEmpty    string
	MemorizeDone     string

	ProfileTriggers []ProfileTrigger
	ProfileNoted    string

	ForgetTrigger Trigger
	ForgetEmpty   string
	ForgetDone    string
	ForgetNone    string

	Patterns []Pattern
	Canned   []Phrase

	ProfileQueries []string
	ProfileEmpty   string
	ProfileSummary string
	ProfileClauses map[core.Category]string
	ClauseJoiner   string

	PersonalQueries []string
	PersonalMarkers []string

	LikingMarkers []string
	OutingMarkers []string
	EatingMarkers []string
	RecallUnclear string
	RecallLiking  string
	RecallOuting  string
	RecallEating  string
	RecallHedge   string
	RecallPlain   string

	PositiveMoods     []string
	NegativeMoods     []string
	PositiveWithLike  string
	Positive          string
	ComfortItem       string
	NegativeComfort   string
	NegativeWithPlace string
	Negative          string
	SmallTalk         []Phrase
	StillLearning     string
}

// LexiconFor returns the built-in lexicon for a language code.
func LexiconFor(language string) (*Lexicon, error) {
	switch language {
	case "en", "":
		return English(), nil
	case "ro":
		return Romanian(), nil
	}
	return nil, fmt.Errorf("unsupported language %q", language)
}

func English() *Lexicon {
	return &Lexicon{
		Language:    "en",
		Personality: "empathetic, curious and attentive, but concise",

		MemorizeTriggers: []Trigger{
			{Phrase: "remember that", Keyword: "that"},
			{Phrase: "note that", Keyword: "that"},
			{Phrase: "save as", Keyword: "as"},
		},
		MemorizeEmpty: "Tell me exactly what you want me to remember.",
		MemorizeDone:  "Noted: %s",

		ProfileTriggers: []ProfileTrigger{
			{Phrase: "my hobby is", Category: core.CategoryHobby},
			{Phrase: "my hobbies are", Category: core.CategoryHobby},
			{Phrase: "i prefer", Category: core.CategoryPreference},
			{Phrase: "i live in", Category: core.CategoryLocation},
			{Phrase: "i am from", Category: core.CategoryLocation},
			{Phrase: "my name is", Category: core.CategoryIdentity},
			{Phrase: "i work as", Category: core.CategoryProfession},
		},
		ProfileNoted: "I noted in your profile that %s %s.",

		ForgetTrigger: Trigger{Phrase: "forget that", Keyword: "that"},
		ForgetEmpty:   "Tell me what you want me to forget.",
		ForgetDone:    "I forgot: %s",
		ForgetNone:    "I found nothing to forget.",

		Patterns: []Pattern{
			{Regexp: regexp.MustCompile(`\b(hello|hi|hey)\b`), Responses: []string{"Hi!", "Hello, I'm BODAI."}},
			{Regexp: regexp.MustCompile(`\b(thanks?|thank you)\b`), Responses: []string{"You're welcome!", "Anytime."}},
			{Regexp: regexp.MustCompile(`\bwho are you\b`), Responses: []string{"I'm BODAI, your personal assistant."}},
		},
		Canned: []Phrase{
			{Key: "good morning", Response: "Good morning! I'm BODAI."},
			{Key: "good evening", Response: "Good evening! How was your day?"},
			{Key: "how are you", Response: "I'm fine, thank you! And you?"},
			{Key: "what are you doing", Response: "Not much, just listening to you. What are you up to?"},
			{Key: "what's up", Response: "All good here! What's new with you?"},
		},

		ProfileQueries: []string{"what do you know about me", "about me"},
		ProfileEmpty:   "I don't know much about you yet. Tell me what you like or where you live. 🙂",
		ProfileSummary: "Here is what I know about you: %s.",
		ProfileClauses: map[core.Category]string{
			core.CategoryHobby:      "you like %s",
			core.CategoryLocation:   "you live in %s",
			core.CategoryProfession: "you work as %s",
			core.CategoryPreference: "you prefer %s",
			core.CategoryIdentity:   "your name is %s",
		},
		ClauseJoiner: ", ",

		PersonalQueries: []string{" about me", " about you", " do you remember", " what do i ", " my ", " me "},
		PersonalMarkers: []string{" i ", " my ", " i'm ", " prefer", " like", " love"},

		LikingMarkers: []string{"i like", "i love"},
		OutingMarkers: []string{"i went", "i was at", "i went out"},
		EatingMarkers: []string{"i ate"},
		RecallUnclear: "I don't think that's what you meant. Could you be a bit more specific?",
		RecallLiking:  "I remember you enjoyed it when you said: '%s'. ☕ Do you still like it as much?",
		RecallOuting:  "I remember when you said: '%s'. Was it a good day?",
		RecallEating:  "I remember you said '%s'. Did you like it?",
		RecallHedge:   "I think you mean something you told me: '%s'. 😊",
		RecallPlain:   "I remember: %s",

		PositiveMoods:     []string{"good", "happy", "great", "excellent", "perfect"},
		NegativeMoods:     []string{"tired", "sad", "bored", "stressed", "bad", "angry"},
		PositiveWithLike:  "Glad to hear it! Maybe later you can enjoy a bit of %s 😄",
		Positive:          "Glad to hear you're doing well! 😊",
		ComfortItem:       "coffee",
		NegativeComfort:   "Sorry you feel that way... Maybe a good coffee would help a little ☕",
		NegativeWithPlace: "Sorry to hear that... Maybe a walk around %s would do you good. 🌳",
		Negative:          "Sorry you feel that way... If you want, we can talk for a bit. 💬",
		SmallTalk: []Phrase{
			{Key: "what are you doing", Response: "I'm processing your requests 😄 What are you doing?"},
			{Key: "how are you", Response: "I'm fine, thanks! Glad we're talking."},
			{Key: "hello", Response: "Hello again! What's new with you?"},
			{Key: "hey", Response: "Hello again! What's new with you?"},
			{Key: "no", Response: "Got it, no problem. 😊"},
			{Key: "yes", Response: "Glad to hear that! 😄"},
		},
		StillLearning: "I'm still learning to think in more complex ways. Remember, I'm %s. Tell me something about yourself!",
	}
}

func Romanian() *Lexicon {
	return &Lexicon{
		Language:    "ro",
		Personality: "empatic, curios și atent, dar concis",

		MemorizeTriggers: []Trigger{
			{Phrase: "tine minte ca", Keyword: "ca"},
			{Phrase: "noteaza ca", Keyword: "ca"},
			{Phrase: "salveaza ca", Keyword: "ca"},
		},
		MemorizeEmpty: "Spune-mi exact ce vrei să țin minte.",
		MemorizeDone:  "Am notat: %s",

		ProfileTriggers: []ProfileTrigger{
			{Phrase: "imi place", Category: core.CategoryHobby},
			{Phrase: "prefer", Category: core.CategoryPreference},
			{Phrase: "locuiesc in", Category: core.CategoryLocation},
			{Phrase: "sunt din", Category: core.CategoryLocation},
			{Phrase: "ma numesc", Category: core.CategoryIdentity},
			{Phrase: "lucrez ca", Category: core.CategoryProfession},
		},
		ProfileNoted: "Am notat în profilul tău că %s %s.",

		ForgetTrigger: Trigger{Phrase: "uita ca", Keyword: "ca"},
		ForgetEmpty:   "Spune-mi ce vrei să uit.",
		ForgetDone:    "Am uitat: %s",
		ForgetNone:    "Nu am găsit nimic de uitat.",

		Patterns: []Pattern{
			{Regexp: regexp.MustCompile(`\b(salut|buna|hello|hi)\b`), Responses: []string{"Salut!", "Bună, eu sunt BODAI."}},
			{Regexp: regexp.MustCompile(`\b(multumesc|merci|thanks?)\b`), Responses: []string{"Cu plăcere!", "Oricând."}},
			{Regexp: regexp.MustCompile(`\b(cine esti|what are you)\b`), Responses: []string{"Sunt BODAI, asistentul tău personal."}},
		},
		Canned: []Phrase{
			{Key: "salut", Response: "Bună, eu sunt BODAI."},
			{Key: "buna", Response: "Salut! Ce mai faci?"},
			{Key: "ce faci", Response: "Sunt bine, tu ce faci?"},
			{Key: "cum esti", Response: "Sunt bine, mulțumesc! Tu?"},
			{Key: "cine esti", Response: "Sunt BODAI, asistentul tău personal."},
		},

		ProfileQueries: []string{"ce stii despre mine", "despre mine"},
		ProfileEmpty:   "Încă nu știu prea multe despre tine. Spune-mi ce îți place sau unde locuiești. 🙂",
		ProfileSummary: "Știu despre tine că %s.",
		ProfileClauses: map[core.Category]string{
			core.CategoryHobby:      "îți place %s",
			core.CategoryLocation:   "locuiești în %s",
			core.CategoryProfession: "lucrezi ca %s",
			core.CategoryPreference: "preferi %s",
			core.CategoryIdentity:   "te numești %s",
		},
		ClauseJoiner: ", ",

		PersonalQueries: []string{"despre mine", "despre tine", "iti amintesti", "eu", "mie", "ce stii despre mine"},
		PersonalMarkers: []string{"imi ", "am ", "m-am", "prefer", "plac"},

		LikingMarkers: []string{"imi place"},
		OutingMarkers: []string{"am fost", "am iesit"},
		EatingMarkers: []string{"am mancat"},
		RecallUnclear: "Nu cred că te refereai la asta. Poți detalia puțin mai clar?",
		RecallLiking:  "Îmi amintesc că ți-a plăcut când ai spus: '%s'. ☕ Încă îți mai place la fel de mult?",
		RecallOuting:  "Îmi amintesc când ai spus: '%s'. A fost o zi frumoasă?",
		RecallEating:  "Îmi amintesc că ai spus '%s'. Ți-a plăcut?",
		RecallHedge:   "Cred că te referi la ceva ce mi-ai spus: '%s'. 😊",
		RecallPlain:   "Îmi amintesc: %s",

		PositiveMoods:     []string{"bine", "fericit", "super", "excelent", "perfect"},
		NegativeMoods:     []string{"obosit", "trist", "plictisit", "stresat", "rau", "nervos"},
		PositiveWithLike:  "Mă bucur să aud asta! Poate mai târziu te bucuri și de puțin %s 😄",
		Positive:          "Mă bucur să aud că ești bine! 😊",
		ComfortItem:       "cafea",
		NegativeComfort:   "Îmi pare rău că te simți așa... Poate o cafea bună te-ar ajuta puțin ☕",
		NegativeWithPlace: "Îmi pare rău să aud asta... Poate o plimbare prin %s ți-ar prinde bine. 🌳",
		Negative:          "Îmi pare rău că te simți așa... Dacă vrei, putem vorbi puțin. 💬",
		SmallTalk: []Phrase{
			{Key: "ce faci", Response: "Lucrez la procesarea cererilor tale 😄 Tu ce faci?"},
			{Key: "cum esti", Response: "Sunt bine, mulțumesc! Mă bucur că vorbim."},
			{Key: "salut", Response: "Salut din nou! Ce mai e nou la tine?"},
			{Key: "buna", Response: "Salut din nou! Ce mai e nou la tine?"},
			{Key: "nu", Response: "Am înțeles, nicio problemă. 😊"},
			{Key: "da", Response: "Mă bucur să aud asta! 😄"},
		},
		StillLearning: "Încă învăț să gândesc mai complex. Țin minte că sunt %s. Povestește-mi ceva despre tine!",
	}
}
