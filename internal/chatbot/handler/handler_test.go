package handler

import (
	"net/http"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"schemesathi/internal/chatbot"
	"schemesathi/internal/chatbot/handler/mocks"
	"schemesathi/internal/eligibility"
	"schemesathi/internal/platform/logger"
	"schemesathi/pkg/testutil"
)

func newTestHandler(t *testing.T) (http.Handler, *mocks.MockService, *mocks.MockProfileFinder) {
	t.Helper()
	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)
	mockChat := mocks.NewMockService(ctrl)
	mockProfiles := mocks.NewMockProfileFinder(ctrl)

	h := New(mockChat, mockProfiles, logger.NewNop())
	r := chi.NewRouter()
	h.Register(r)
	return r, mockChat, mockProfiles
}

func TestHandleMessage(t *testing.T) {
	greetingResponse := chatbot.Response{
		Text:         "Namaste!",
		QuickReplies: []string{"Check my eligibility"},
	}

	t.Run("anonymous caller gets no profile lookup", func(t *testing.T) {
		router, mockChat, _ := newTestHandler(t)

		mockChat.EXPECT().
			HandleMessage(gomock.Any(), "hello", nil, "en").
			Return(chatbot.Classification{Category: chatbot.CategoryGreeting}, greetingResponse)

		req := testutil.NewJSONRequest(t, http.MethodPost, "/v1/chat/message", MessageRequest{Message: "hello"})
		req = testutil.WithLanguage(req, "en")
		rr := testutil.DoRequest(router, req)

		testutil.AssertStatusOK(t, rr)
		resp := testutil.UnmarshalResponse[MessageResponse](t, rr)
		assert.Equal(t, chatbot.CategoryGreeting, resp.Category)
		assert.Equal(t, "Namaste!", resp.Text)
	})

	t.Run("authenticated caller gets their profile", func(t *testing.T) {
		router, mockChat, mockProfiles := newTestHandler(t)

		profile := &eligibility.Profile{Age: 45, Occupation: "Farmer"}
		mockProfiles.EXPECT().Find(gomock.Any(), "user-1").Return(profile, nil)
		mockChat.EXPECT().
			HandleMessage(gomock.Any(), "am i eligible", profile, "hi").
			Return(chatbot.Classification{Category: chatbot.CategoryEligibility}, greetingResponse)

		req := testutil.NewJSONRequest(t, http.MethodPost, "/v1/chat/message", MessageRequest{Message: "am i eligible"})
		req = testutil.WithUserID(req, "user-1")
		req = testutil.WithLanguage(req, "hi")
		rr := testutil.DoRequest(router, req)

		testutil.AssertStatusOK(t, rr)
	})

	t.Run("profile store failure degrades to anonymous", func(t *testing.T) {
		router, mockChat, mockProfiles := newTestHandler(t)

		mockProfiles.EXPECT().Find(gomock.Any(), "user-1").Return(nil, assert.AnError)
		mockChat.EXPECT().
			HandleMessage(gomock.Any(), "hello", nil, gomock.Any()).
			Return(chatbot.Classification{Category: chatbot.CategoryGreeting}, greetingResponse)

		req := testutil.NewJSONRequest(t, http.MethodPost, "/v1/chat/message", MessageRequest{Message: "hello"})
		req = testutil.WithUserID(req, "user-1")
		rr := testutil.DoRequest(router, req)

		testutil.AssertStatusOK(t, rr)
	})

	t.Run("empty message is a validation error", func(t *testing.T) {
		router, _, _ := newTestHandler(t)

		req := testutil.NewJSONRequest(t, http.MethodPost, "/v1/chat/message", MessageRequest{Message: "   "})
		rr := testutil.DoRequest(router, req)

		testutil.AssertStatusAndError(t, rr, http.StatusBadRequest, "validation_error")
	})

	t.Run("named scheme classification carries the scheme ID", func(t *testing.T) {
		router, mockChat, _ := newTestHandler(t)

		mockChat.EXPECT().
			HandleMessage(gomock.Any(), "tell me about pm kisan", nil, gomock.Any()).
			Return(
				chatbot.Classification{Category: chatbot.CategorySpecificScheme, SchemeID: "PM-KISAN"},
				chatbot.Response{Text: "PM-KISAN details", Schemes: []chatbot.SchemeRef{{ID: "PM-KISAN", Name: "PM-KISAN"}}},
			)

		req := testutil.NewJSONRequest(t, http.MethodPost, "/v1/chat/message", MessageRequest{Message: "tell me about pm kisan"})
		rr := testutil.DoRequest(router, req)

		testutil.AssertStatusOK(t, rr)
		resp := testutil.UnmarshalResponse[MessageResponse](t, rr)
		assert.Equal(t, "PM-KISAN", resp.SchemeID)
		assert.Len(t, resp.Schemes, 1)
	})
}
