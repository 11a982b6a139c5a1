package skill

import (
	"bitbucket.org/sotavant/sensei-skill/internal/models"
	"bitbucket.org/sotavant/sensei-skill/internal/speech"
	"strings"
)

const (
	IntentWorkX  = "WorkXIntent"
	IntentYes    = "AMAZON.YesIntent"
	IntentNo     = "AMAZON.NoIntent"
	IntentHelp   = "AMAZON.HelpIntent"
	IntentStop   = "StopIntent"
	IntentCancel = "AMAZON.CancelIntent"

	SlotWork = "Work"

	AttrSpeechOutput = "speechOutput"
	AttrRepromptText = "repromptText"
)

const (
	skillTitle     = "Sensei Assistant"
	welcomeSpeech  = "Welcome! I am Sensei Assistant. Would you like to order coffee or would you like to send an email?"
	welcomePrompt  = "Please tell me what you would like to do. Order coffee or send a email?"
	offerSpeech    = "Would you like to order coffee or would you like to send an email?"
	somethingElse  = "Would you like something else?"
	helpSpeech     = "I can help you out with two things. Ordering coffee and sending an email. "
	goodbyeSpeech  = "Good bye!"
	coffeeSpeech   = "I will get you some coffee"
	emailSpeech    = "I will send an email to example123@gmail.com"
	fallbackSpeech = "Sorry, I can't do that for you!"
)

// intentFunc answers one intent. It returns the attributes for the envelope and must not modify attrs.
type intentFunc func(intent *models.Intent, attrs map[string]string) (map[string]string, models.SpeechletResponse)

func intentTable() map[string]intentFunc {
	return map[string]intentFunc{
		IntentWorkX:  workChoice,
		IntentYes:    yes,
		IntentNo:     no,
		IntentHelp:   help,
		IntentStop:   finish,
		IntentCancel: finish,
	}
}

func welcome() (map[string]string, models.SpeechletResponse) {
	attrs := map[string]string{
		AttrSpeechOutput: welcomeSpeech,
		AttrRepromptText: welcomePrompt,
	}
	return attrs, speech.WithCard(skillTitle, welcomeSpeech, welcomePrompt, false)
}

func workChoice(intent *models.Intent, attrs map[string]string) (map[string]string, models.SpeechletResponse) {
	// пустой или отсутствующий слот уходит в ветку по умолчанию
	work, _ := intent.Slot(SlotWork)

	switch strings.ToLower(work) {
	case "coffee":
		return attrs, speech.WithCard("Coffee", coffeeSpeech, somethingElse, false)
	case "email":
		return attrs, speech.WithCard("Email", emailSpeech, somethingElse, false)
	default:
		return attrs, speech.WithCard("Can't do that!", fallbackSpeech, offerSpeech, false)
	}
}

func yes(_ *models.Intent, attrs map[string]string) (map[string]string, models.SpeechletResponse) {
	return attrs, speech.WithoutCard(offerSpeech, offerSpeech, false)
}

func no(intent *models.Intent, attrs map[string]string) (map[string]string, models.SpeechletResponse) {
	return finish(intent, attrs)
}

func help(_ *models.Intent, attrs map[string]string) (map[string]string, models.SpeechletResponse) {
	if attrs == nil {
		attrs = map[string]string{}
	}
	return attrs, speech.WithoutCard(helpSpeech, helpSpeech, false)
}

func finish(_ *models.Intent, attrs map[string]string) (map[string]string, models.SpeechletResponse) {
	return attrs, speech.WithoutCard(goodbyeSpeech, "", true)
}
