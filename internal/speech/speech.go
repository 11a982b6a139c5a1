// Package speech builds the speechlet responses and envelopes returned to the voice platform.
package speech

import (
	"bitbucket.org/sotavant/sensei-skill/internal/models"
)

// WithCard returns a response that speaks output and shows a simple card with the same text.
func WithCard(title, output, reprompt string, shouldEnd bool) models.SpeechletResponse {
	resp := WithoutCard(output, reprompt, shouldEnd)
	resp.Card = &models.Card{
		Type:    models.CardTypeSimple,
		Title:   title,
		Content: output,
	}
	return resp
}

// WithoutCard returns a response with no card field at all.
func WithoutCard(output, reprompt string, shouldEnd bool) models.SpeechletResponse {
	return models.SpeechletResponse{
		OutputSpeech: plainText(output),
		Reprompt: models.Reprompt{
			OutputSpeech: plainText(reprompt),
		},
		ShouldEndSession: shouldEnd,
	}
}

// Envelope wraps attrs and resp into a versioned platform response.
func Envelope(attrs map[string]string, resp models.SpeechletResponse) models.Response {
	return models.Response{
		Version:           models.Version,
		SessionAttributes: attrs,
		Response:          resp,
	}
}

func plainText(text string) models.OutputSpeech {
	return models.OutputSpeech{Type: models.SpeechTypePlainText, Text: text}
}
