package models

type RequestType string

const (
	TypeSessionStartedRequest RequestType = "SessionStartedRequest"
	TypeLaunchRequest         RequestType = "LaunchRequest"
	TypeIntentRequest         RequestType = "IntentRequest"
	TypeSessionEndedRequest   RequestType = "SessionEndedRequest"
)

const (
	SpeechTypePlainText = "PlainText"
	CardTypeSimple      = "Simple"
	Version             = "1.0"
)

// Request описывает запрос платформы на один ход диалога.
type Request struct {
	Version string      `json:"version"`
	Session Session     `json:"session"`
	Request TurnRequest `json:"request"`
}

type Session struct {
	New         bool              `json:"new"`
	SessionID   string            `json:"sessionId"`
	Application Application       `json:"application"`
	User        User              `json:"user"`
	Attributes  map[string]string `json:"attributes,omitempty"`
}

type Application struct {
	ApplicationID string `json:"applicationId"`
}

type User struct {
	UserID string `json:"userId"`
}

type TurnRequest struct {
	Type      RequestType `json:"type"`
	RequestID string      `json:"requestId"`
	Timestamp string      `json:"timestamp,omitempty"`
	Locale    string      `json:"locale,omitempty"`
	// Reason is set only on SessionEndedRequest.
	Reason string  `json:"reason,omitempty"`
	Intent *Intent `json:"intent,omitempty"`
}

type Intent struct {
	Name  string          `json:"name"`
	Slots map[string]Slot `json:"slots,omitempty"`
}

type Slot struct {
	Name  string `json:"name"`
	Value string `json:"value,omitempty"`
}

// Slot returns the value of the named slot and whether it was supplied with a value.
func (i *Intent) Slot(name string) (string, bool) {
	if i == nil {
		return "", false
	}
	s, ok := i.Slots[name]
	if !ok || s.Value == "" {
		return "", false
	}
	return s.Value, true
}

// Response описывает ответ навыка.
type Response struct {
	Version           string            `json:"version"`
	SessionAttributes map[string]string `json:"sessionAttributes"`
	Response          SpeechletResponse `json:"response"`
}

type SpeechletResponse struct {
	OutputSpeech     OutputSpeech `json:"outputSpeech"`
	Card             *Card        `json:"card,omitempty"`
	Reprompt         Reprompt     `json:"reprompt"`
	ShouldEndSession bool         `json:"shouldEndSession"`
}

type OutputSpeech struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

type Card struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Content string `json:"content"`
}

type Reprompt struct {
	OutputSpeech OutputSpeech `json:"outputSpeech"`
}
