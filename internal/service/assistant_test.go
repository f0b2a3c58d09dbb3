package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/lakshitavyas02/jarvis-voice-assistant/internal/action"
	"github.com/lakshitavyas02/jarvis-voice-assistant/internal/config"
	"github.com/lakshitavyas02/jarvis-voice-assistant/internal/intent"
	"github.com/lakshitavyas02/jarvis-voice-assistant/internal/llm"
	"github.com/lakshitavyas02/jarvis-voice-assistant/internal/model"
	"github.com/lakshitavyas02/jarvis-voice-assistant/internal/session"
)

type fakeCompleter struct {
	mu     sync.Mutex
	calls  int
	system string
	turns  []model.Turn
	reply  string
	err    error
	deltas []string
}

func (f *fakeCompleter) Complete(_ context.Context, system string, turns []model.Turn) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.system = system
	f.turns = turns
	if f.err != nil {
		return "", f.err
	}
	return f.reply, nil
}

func (f *fakeCompleter) CompleteStream(ctx context.Context, system string, turns []model.Turn, onThinking, onContent func(string) error) (string, error) {
	if f.err != nil {
		return f.Complete(ctx, system, turns)
	}
	if err := onThinking("hmm"); err != nil {
		return "", err
	}
	for _, d := range f.deltas {
		if err := onContent(d); err != nil {
			return "", err
		}
	}
	return f.Complete(ctx, system, turns)
}

type recordingFolders struct{ names []string }

func (r *recordingFolders) Create(name string) string {
	r.names = append(r.names, name)
	return "Created folder '" + name + "' at /tmp/" + name
}

type recordingApps struct{ apps []string }

func (r *recordingApps) Open(app string) string {
	r.apps = append(r.apps, app)
	return "Opening " + app
}

type recordingLog struct {
	mu      sync.Mutex
	entries []*model.Interaction
	err     error
}

func (r *recordingLog) LogInteraction(_ context.Context, in *model.Interaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, in)
	return r.err
}

type fixture struct {
	assistant *Assistant
	completer *fakeCompleter
	folders   *recordingFolders
	apps      *recordingApps
	log       *recordingLog
	sessions  *session.Manager
}

func newFixture(t *testing.T, completer Completer) *fixture {
	t.Helper()
	logger := zaptest.NewLogger(t)
	f := &fixture{
		folders:  &recordingFolders{},
		apps:     &recordingApps{},
		log:      &recordingLog{},
		sessions: session.NewManager(10, time.Minute),
	}
	if fc, ok := completer.(*fakeCompleter); ok {
		f.completer = fc
	}
	f.assistant = NewAssistant(Dependencies{
		Composer:     NewComposer(ComposerConfig{Persona: "You are Jarvis."}, Sources{Clock: fixedClock()}, logger),
		Completer:    completer,
		Sessions:     f.sessions,
		Folders:      f.folders,
		Apps:         f.apps,
		Interactions: f.log,
	}, logger)
	return f
}

func TestAssistant_Website(t *testing.T) {
	f := newFixture(t, &fakeCompleter{reply: "unused"})

	reply := f.assistant.Handle(context.Background(), "", "Jarvis, open youtube and play music")
	assert.Equal(t, "Opening Youtube for you", reply.Message)
	require.NotNil(t, reply.Action)
	assert.Equal(t, model.ActionOpenWebsite, reply.Action.Type)
	assert.Equal(t, "https://youtube.com", reply.Action.URL)
	assert.Equal(t, 0, f.completer.calls)

	_, ok := f.sessions.Get(session.DefaultID)
	assert.False(t, ok, "actions do not touch history")

	require.Len(t, f.log.entries, 1)
	assert.Equal(t, "website_open", f.log.entries[0].Intent)
	assert.Equal(t, "https://youtube.com", f.log.entries[0].URL)
}

func TestAssistant_SystemActions(t *testing.T) {
	f := newFixture(t, &fakeCompleter{})
	ctx := context.Background()

	assert.Equal(t, "Created folder 'Projects' at /tmp/Projects", f.assistant.Handle(ctx, "", `create folder "Projects"`).Message)
	assert.Equal(t, action.MissingFolderName, f.assistant.Handle(ctx, "", "create folder").Message)
	assert.Equal(t, "Opening calculator", f.assistant.Handle(ctx, "", "open calculator").Message)
	assert.Equal(t, action.MissingAppName, f.assistant.Handle(ctx, "", "launch app").Message)

	assert.Equal(t, []string{"Projects"}, f.folders.names)
	assert.Equal(t, []string{"calculator"}, f.apps.apps)
	assert.Nil(t, f.assistant.Handle(ctx, "", "open notepad").Action)
	assert.Equal(t, 0, f.completer.calls)
}

func TestAssistant_UnsupportedSystemCommand(t *testing.T) {
	f := newFixture(t, &fakeCompleter{reply: "unused"})

	reply := f.assistant.Handle(context.Background(), "", "launch apple music")
	assert.Equal(t, UnsupportedSystemCommand, reply.Message)
	assert.Equal(t, model.IntentSystemUnsupported, reply.Intent.Kind)
	assert.Empty(t, f.apps.apps)
	assert.Equal(t, 0, f.completer.calls)

	_, ok := f.sessions.Get(session.DefaultID)
	assert.False(t, ok, "unsupported commands do not touch history")
}

func TestAssistant_CustomRouter(t *testing.T) {
	f := newFixture(t, &fakeCompleter{})
	f.assistant.router = intent.NewRouterWithRules([]intent.Rule{{
		Name: "system",
		Match: func(intent.Utterance) (model.Intent, bool) {
			return model.Intent{Kind: model.IntentSystemUnsupported}, true
		},
	}})

	reply := f.assistant.Handle(context.Background(), "", "reboot the mainframe")
	assert.Equal(t, UnsupportedSystemCommand, reply.Message)
}

func TestAssistant_Conversation(t *testing.T) {
	f := newFixture(t, &fakeCompleter{reply: "It is 3:04 PM, sir."})

	reply := f.assistant.Handle(context.Background(), "s1", "What time is it?")
	assert.Equal(t, "It is 3:04 PM, sir.", reply.Message)
	assert.Nil(t, reply.Action)

	assert.Contains(t, f.completer.system, "You are Jarvis.\n\nCurrent time information")
	require.Len(t, f.completer.turns, 1)
	assert.Equal(t, model.Turn{Role: model.RoleUser, Content: "What time is it?"}, f.completer.turns[0])

	s, ok := f.sessions.Get("s1")
	require.True(t, ok)
	assert.Equal(t, []model.Turn{
		{Role: model.RoleUser, Content: "What time is it?"},
		{Role: model.RoleAssistant, Content: "It is 3:04 PM, sir."},
	}, s.Turns())

	require.Len(t, f.log.entries, 1)
	assert.Equal(t, []string{"clock"}, f.log.entries[0].Snippets)
	assert.False(t, f.log.entries[0].Failed)
}

func TestAssistant_HistoryCapped(t *testing.T) {
	f := newFixture(t, &fakeCompleter{reply: "ok"})
	for i := 0; i < 8; i++ {
		f.assistant.Handle(context.Background(), "", fmt.Sprintf("message %d", i))
	}

	assert.LessOrEqual(t, len(f.completer.turns), 10)
	assert.Equal(t, "message 7", f.completer.turns[len(f.completer.turns)-1].Content)

	s, _ := f.sessions.Get("")
	assert.Equal(t, 10, s.Len())
}

func TestAssistant_CompletionFailure(t *testing.T) {
	f := newFixture(t, &fakeCompleter{err: errors.New("quota exceeded")})

	reply := f.assistant.Handle(context.Background(), "", "tell me a joke")
	assert.Equal(t, "I'm sorry, I'm having trouble processing that request. Error: quota exceeded", reply.Message)

	s, ok := f.sessions.Get("")
	require.True(t, ok)
	assert.Equal(t, 1, s.Len(), "user turn kept, no assistant turn")
	assert.True(t, f.log.entries[0].Failed)
}

func TestAssistant_DisabledCompletionClient(t *testing.T) {
	client := llm.NewClient(&config.OpenAIConfig{APIBase: "https://api.openai.com/v1", Timeout: 1}, zaptest.NewLogger(t))
	f := newFixture(t, client)

	reply := f.assistant.Handle(context.Background(), "", "hello there")
	assert.Equal(t, "I'm sorry, I'm having trouble processing that request. Error: OpenAI API is not enabled (missing API key)", reply.Message)
}

func TestAssistant_InteractionLogErrorIgnored(t *testing.T) {
	f := newFixture(t, &fakeCompleter{reply: "hi"})
	f.log.err = errors.New("db down")

	reply := f.assistant.Handle(context.Background(), "", "hello")
	assert.Equal(t, "hi", reply.Message)
}

func TestAssistant_Stream(t *testing.T) {
	f := newFixture(t, &fakeCompleter{reply: "Good evening", deltas: []string{"Good ", "evening"}})

	var events []string
	reply, err := f.assistant.Stream(context.Background(), "", "hello", func(event string, data any) error {
		events = append(events, event+":"+data.(map[string]string)["content"])
		return nil
	})
	require.NoError(t, err)
	assert.Equal(t, "Good evening", reply.Message)
	assert.Equal(t, []string{"thinking:hmm", "chunk:Good ", "chunk:evening"}, events)
}

func TestAssistant_StreamEmitFailure(t *testing.T) {
	f := newFixture(t, &fakeCompleter{reply: "x", deltas: []string{"x"}})

	gone := errors.New("client disconnected")
	_, err := f.assistant.Stream(context.Background(), "", "hello", func(string, any) error { return gone })
	assert.ErrorIs(t, err, gone)
}
