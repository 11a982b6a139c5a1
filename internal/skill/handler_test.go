package skill_test

import (
	"bitbucket.org/sotavant/sensei-skill/internal/models"
	"bitbucket.org/sotavant/sensei-skill/internal/skill"
	"bitbucket.org/sotavant/sensei-skill/internal/skill/mock"
	"context"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

func intentRequest(name string, slots map[string]models.Slot, attrs map[string]string) models.Request {
	return models.Request{
		Version: "1.0",
		Session: models.Session{
			SessionID:   "amzn1.echo-api.session.1",
			Application: models.Application{ApplicationID: "amzn1.ask.skill.1"},
			Attributes:  attrs,
		},
		Request: models.TurnRequest{
			Type:      models.TypeIntentRequest,
			RequestID: "amzn1.echo-api.request.1",
			Intent:    &models.Intent{Name: name, Slots: slots},
		},
	}
}

func TestLaunch(t *testing.T) {
	h := skill.NewHandler(nil)

	res := h.Handle(context.Background(), models.Request{
		Request: models.TurnRequest{Type: models.TypeLaunchRequest},
	})

	require.Equal(t, skill.OutcomeEnvelope, res.Outcome)
	require.NotNil(t, res.Envelope)

	env := res.Envelope
	assert.Equal(t, "1.0", env.Version)
	assert.Equal(t, "Welcome! I am Sensei Assistant. Would you like to order coffee or would you like to send an email?", env.Response.OutputSpeech.Text)
	assert.Equal(t, "Please tell me what you would like to do. Order coffee or send a email?", env.Response.Reprompt.OutputSpeech.Text)
	require.NotNil(t, env.Response.Card)
	assert.Equal(t, "Sensei Assistant", env.Response.Card.Title)
	assert.False(t, env.Response.ShouldEndSession)
	assert.Equal(t, map[string]string{
		skill.AttrSpeechOutput: env.Response.OutputSpeech.Text,
		skill.AttrRepromptText: env.Response.Reprompt.OutputSpeech.Text,
	}, env.SessionAttributes)
}

func TestWorkChoice(t *testing.T) {
	h := skill.NewHandler(nil)
	attrs := map[string]string{"speechOutput": "previous"}

	testCases := []struct {
		name           string
		slots          map[string]models.Slot
		expectedSpeech string
		expectedTitle  string
		expectedPrompt string
	}{
		{
			name:           "coffee_mixed_case",
			slots:          map[string]models.Slot{"Work": {Name: "Work", Value: "Coffee"}},
			expectedSpeech: "I will get you some coffee",
			expectedTitle:  "Coffee",
			expectedPrompt: "Would you like something else?",
		},
		{
			name:           "email_upper_case",
			slots:          map[string]models.Slot{"Work": {Name: "Work", Value: "EMAIL"}},
			expectedSpeech: "I will send an email to example123@gmail.com",
			expectedTitle:  "Email",
			expectedPrompt: "Would you like something else?",
		},
		{
			name:           "unsupported_value",
			slots:          map[string]models.Slot{"Work": {Name: "Work", Value: "banana"}},
			expectedSpeech: "Sorry, I can't do that for you!",
			expectedTitle:  "Can't do that!",
			expectedPrompt: "Would you like to order coffee or would you like to send an email?",
		},
		{
			name:           "slot_without_value",
			slots:          map[string]models.Slot{"Work": {Name: "Work"}},
			expectedSpeech: "Sorry, I can't do that for you!",
			expectedTitle:  "Can't do that!",
			expectedPrompt: "Would you like to order coffee or would you like to send an email?",
		},
		{
			name:           "no_slots",
			slots:          nil,
			expectedSpeech: "Sorry, I can't do that for you!",
			expectedTitle:  "Can't do that!",
			expectedPrompt: "Would you like to order coffee or would you like to send an email?",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			res := h.Handle(context.Background(), intentRequest(skill.IntentWorkX, tc.slots, attrs))

			require.Equal(t, skill.OutcomeEnvelope, res.Outcome, res.Failure)
			resp := res.Envelope.Response
			assert.Equal(t, tc.expectedSpeech, resp.OutputSpeech.Text)
			assert.Equal(t, tc.expectedPrompt, resp.Reprompt.OutputSpeech.Text)
			require.NotNil(t, resp.Card)
			assert.Equal(t, tc.expectedTitle, resp.Card.Title)
			assert.Equal(t, tc.expectedSpeech, resp.Card.Content)
			assert.False(t, resp.ShouldEndSession)
			assert.Equal(t, attrs, res.Envelope.SessionAttributes)
		})
	}
}

func TestYesIsIdempotent(t *testing.T) {
	h := skill.NewHandler(nil)
	attrs := map[string]string{"speechOutput": "previous"}
	req := intentRequest(skill.IntentYes, nil, attrs)

	first := h.Handle(context.Background(), req)
	second := h.Handle(context.Background(), req)

	require.Equal(t, skill.OutcomeEnvelope, first.Outcome)
	assert.Equal(t, first, second)
	assert.Nil(t, first.Envelope.Response.Card)
	assert.Equal(t, "Would you like to order coffee or would you like to send an email?", first.Envelope.Response.OutputSpeech.Text)
	assert.Equal(t, first.Envelope.Response.OutputSpeech, first.Envelope.Response.Reprompt.OutputSpeech)
	assert.False(t, first.Envelope.Response.ShouldEndSession)
	assert.Equal(t, map[string]string{"speechOutput": "previous"}, attrs)
}

func TestHelp(t *testing.T) {
	h := skill.NewHandler(nil)

	t.Run("absent_attributes", func(t *testing.T) {
		res := h.Handle(context.Background(), intentRequest(skill.IntentHelp, nil, nil))

		require.Equal(t, skill.OutcomeEnvelope, res.Outcome)
		require.NotNil(t, res.Envelope.SessionAttributes)
		assert.Empty(t, res.Envelope.SessionAttributes)
		assert.Nil(t, res.Envelope.Response.Card)
		assert.Equal(t, "I can help you out with two things. Ordering coffee and sending an email. ", res.Envelope.Response.OutputSpeech.Text)
		assert.False(t, res.Envelope.Response.ShouldEndSession)
	})

	t.Run("existing_attributes", func(t *testing.T) {
		attrs := map[string]string{"repromptText": "x"}
		res := h.Handle(context.Background(), intentRequest(skill.IntentHelp, nil, attrs))

		require.Equal(t, skill.OutcomeEnvelope, res.Outcome)
		assert.Equal(t, attrs, res.Envelope.SessionAttributes)
	})
}

func TestFinish(t *testing.T) {
	h := skill.NewHandler(nil)

	// AMAZON.NoIntent сравнивается с именем интента, как и остальные ветки
	for _, name := range []string{skill.IntentStop, skill.IntentCancel, skill.IntentNo} {
		t.Run(name, func(t *testing.T) {
			res := h.Handle(context.Background(), intentRequest(name, nil, nil))

			require.Equal(t, skill.OutcomeEnvelope, res.Outcome)
			resp := res.Envelope.Response
			assert.Equal(t, "Good bye!", resp.OutputSpeech.Text)
			assert.Equal(t, "", resp.Reprompt.OutputSpeech.Text)
			assert.Nil(t, resp.Card)
			assert.True(t, resp.ShouldEndSession)
		})
	}
}

func TestFailures(t *testing.T) {
	h := skill.NewHandler(nil)

	t.Run("unrecognized_intent", func(t *testing.T) {
		res := h.Handle(context.Background(), intentRequest("FooIntent", nil, nil))

		assert.Equal(t, skill.OutcomeFailure, res.Outcome)
		assert.Nil(t, res.Envelope)
		assert.Contains(t, res.Failure, "Exception:")
		assert.Contains(t, res.Failure, "unrecognized intent")
		assert.Contains(t, res.Failure, "FooIntent")
	})

	t.Run("intent_request_without_intent", func(t *testing.T) {
		res := h.Handle(context.Background(), models.Request{
			Request: models.TurnRequest{Type: models.TypeIntentRequest},
		})

		assert.Equal(t, skill.OutcomeFailure, res.Outcome)
		assert.Nil(t, res.Envelope)
		assert.Contains(t, res.Failure, "Exception:")
	})
}

func TestSessionLifecycle(t *testing.T) {
	t.Run("new_session_started_once", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		lc := mock.NewMockLifecycle(ctrl)

		req := models.Request{
			Session: models.Session{New: true, SessionID: "s1"},
			Request: models.TurnRequest{Type: models.TypeLaunchRequest, RequestID: "r1"},
		}
		lc.EXPECT().SessionStarted(gomock.Any(), "r1", req.Session).Times(1)

		res := skill.NewHandler(lc).Handle(context.Background(), req)
		assert.Equal(t, skill.OutcomeEnvelope, res.Outcome)
	})

	t.Run("existing_session_not_started", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		lc := mock.NewMockLifecycle(ctrl)

		res := skill.NewHandler(lc).Handle(context.Background(), intentRequest(skill.IntentYes, nil, nil))
		assert.Equal(t, skill.OutcomeEnvelope, res.Outcome)
	})

	t.Run("session_ended", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		lc := mock.NewMockLifecycle(ctrl)

		req := models.Request{
			Request: models.TurnRequest{Type: models.TypeSessionEndedRequest, RequestID: "r2", Reason: "USER_INITIATED"},
		}
		lc.EXPECT().SessionEnded(gomock.Any(), req.Request, req.Session).Times(1)

		res := skill.NewHandler(lc).Handle(context.Background(), req)
		assert.Equal(t, skill.OutcomeEmpty, res.Outcome)
		assert.Nil(t, res.Envelope)
		assert.Empty(t, res.Failure)
	})

	t.Run("panic_becomes_failure", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		lc := mock.NewMockLifecycle(ctrl)

		lc.EXPECT().
			SessionStarted(gomock.Any(), gomock.Any(), gomock.Any()).
			Do(func(context.Context, string, models.Session) { panic("boom") })

		res := skill.NewHandler(lc).Handle(context.Background(), models.Request{
			Session: models.Session{New: true},
			Request: models.TurnRequest{Type: models.TypeLaunchRequest},
		})
		assert.Equal(t, skill.OutcomeFailure, res.Outcome)
		assert.Equal(t, "Exception: boom", res.Failure)
	})
}

func TestUnknownRequestType(t *testing.T) {
	h := skill.NewHandler(nil)

	for _, typ := range []models.RequestType{models.TypeSessionStartedRequest, "idunno"} {
		t.Run(string(typ), func(t *testing.T) {
			res := h.Handle(context.Background(), models.Request{Request: models.TurnRequest{Type: typ}})

			assert.Equal(t, skill.OutcomeEmpty, res.Outcome)
			assert.Nil(t, res.Envelope)
		})
	}
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "envelope", skill.OutcomeEnvelope.String())
	assert.Equal(t, "empty", skill.OutcomeEmpty.String())
	assert.Equal(t, "failure", skill.OutcomeFailure.String())
	assert.Equal(t, "outcome(7)", skill.Outcome(7).String())
}
