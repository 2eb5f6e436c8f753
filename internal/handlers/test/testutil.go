package test

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/diegoclair/campaign-reminder-bot/internal/domain/command"
	"github.com/diegoclair/campaign-reminder-bot/internal/domain/service"
	"github.com/diegoclair/campaign-reminder-bot/internal/handlers"
	"github.com/diegoclair/campaign-reminder-bot/mocks"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
)

const SigningSecret = "test-signing-secret"

type ServiceMocks struct {
	CampaignServiceMock *mocks.MockCampaignService
	OneshotServiceMock  *mocks.MockOneshotService
	AccessPolicyMock    *mocks.MockAccessPolicy
	RoleLookupMock      *mocks.MockRoleLookup
}

var (
	DiscordInvocation = command.Invocation{Prefix: "$", HelpCommand: "help"}
	SlackInvocation   = command.Invocation{Prefix: "/", HelpCommand: "eventhelp"}
)

func GetRouterTest(t *testing.T, inv command.Invocation, mentions handlers.Mentions) (m ServiceMocks, router *handlers.Router, ctrl *gomock.Controller) {
	t.Helper()

	ctrl = gomock.NewController(t)
	m = ServiceMocks{
		CampaignServiceMock: mocks.NewMockCampaignService(ctrl),
		OneshotServiceMock:  mocks.NewMockOneshotService(ctrl),
		AccessPolicyMock:    mocks.NewMockAccessPolicy(ctrl),
		RoleLookupMock:      mocks.NewMockRoleLookup(ctrl),
	}

	services := &service.Instance{
		Campaign: m.CampaignServiceMock,
		Oneshot:  m.OneshotServiceMock,
		Policy:   m.AccessPolicyMock,
	}

	router = handlers.NewRouter(services, inv, mentions, zap.NewNop().Sugar())
	return
}

func GetHandlerTest(t *testing.T) (m ServiceMocks, handler *handlers.SlackHandler, ctrl *gomock.Controller) {
	t.Helper()

	m, router, ctrl := GetRouterTest(t, SlackInvocation, handlers.SlackMentions{})
	handler = handlers.NewSlackHandler(router, m.RoleLookupMock, SigningSecret, zap.NewNop().Sugar())
	return
}

// CreateSlackRequest creates a properly signed Slack slash command request
func CreateSlackRequest(t *testing.T, command, text, channelID, userID, teamID, signingSecret string) *http.Request {
	t.Helper()

	// Create form data matching Slack's slash command format
	form := url.Values{
		"token":        {"test-token"},
		"team_id":      {teamID},
		"team_domain":  {"test-team"},
		"channel_id":   {channelID},
		"channel_name": {"game-night"},
		"user_id":      {userID},
		"user_name":    {"test-user"},
		"command":      {command},
		"text":         {text},
		"response_url": {"https://hooks.slack.com/commands/test"},
		"trigger_id":   {"test-trigger-id"},
	}

	body := form.Encode()

	req, err := http.NewRequest(http.MethodPost, "/slack/commands", strings.NewReader(body))
	require.NoError(t, err)

	// Set content type
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	// Generate Slack signature
	timestamp := strconv.FormatInt(time.Now().Unix(), 10)
	req.Header.Set("X-Slack-Request-Timestamp", timestamp)

	sig := generateSlackSignature(signingSecret, timestamp, body)
	req.Header.Set("X-Slack-Signature", sig)

	return req
}

func generateSlackSignature(signingSecret, timestamp, body string) string {
	baseString := fmt.Sprintf("v0:%s:%s", timestamp, body)
	h := hmac.New(sha256.New, []byte(signingSecret))
	h.Write([]byte(baseString))
	signature := hex.EncodeToString(h.Sum(nil))
	return fmt.Sprintf("v0=%s", signature)
}

func CreateTestRecorder() *httptest.ResponseRecorder {
	return httptest.NewRecorder()
}
