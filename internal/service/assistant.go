package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/lakshitavyas02/jarvis-voice-assistant/internal/action"
	"github.com/lakshitavyas02/jarvis-voice-assistant/internal/intent"
	"github.com/lakshitavyas02/jarvis-voice-assistant/internal/llm"
	"github.com/lakshitavyas02/jarvis-voice-assistant/internal/metrics"
	"github.com/lakshitavyas02/jarvis-voice-assistant/internal/model"
	"github.com/lakshitavyas02/jarvis-voice-assistant/internal/session"
)

// UnsupportedSystemCommand is the reply for a system trigger no handler understands
const UnsupportedSystemCommand = "I'm not sure how to handle that system command"

const apologyFormat = "I'm sorry, I'm having trouble processing that request. Error: %v"

const interactionLogTimeout = 2 * time.Second

// Completer produces the assistant's next turn
type Completer interface {
	Complete(ctx context.Context, system string, turns []model.Turn) (string, error)
	CompleteStream(ctx context.Context, system string, turns []model.Turn, onThinking, onContent func(string) error) (string, error)
}

// FolderCreator creates folders and describes the result
type FolderCreator interface {
	Create(name string) string
}

// AppLauncher opens local applications and describes the result
type AppLauncher interface {
	Open(app string) string
}

// InteractionLogger persists handled utterances
type InteractionLogger interface {
	LogInteraction(ctx context.Context, in *model.Interaction) error
}

// EmitFunc receives streaming events ("thinking", "chunk")
type EmitFunc func(event string, data any) error

// Dependencies wires an Assistant
type Dependencies struct {
	Router       *intent.Router
	Composer     *Composer
	Completer    Completer
	Sessions     *session.Manager
	Folders      FolderCreator
	Apps         AppLauncher
	Interactions InteractionLogger // optional
}

// Assistant routes an utterance to an action or to the language model
type Assistant struct {
	router       *intent.Router
	composer     *Composer
	completer    Completer
	sessions     *session.Manager
	folders      FolderCreator
	apps         AppLauncher
	interactions InteractionLogger
	logger       *zap.Logger
}

// NewAssistant creates an assistant from deps
func NewAssistant(deps Dependencies, logger *zap.Logger) *Assistant {
	router := deps.Router
	if router == nil {
		router = intent.NewRouter()
	}
	return &Assistant{
		router:       router,
		composer:     deps.Composer,
		completer:    deps.Completer,
		sessions:     deps.Sessions,
		folders:      deps.Folders,
		apps:         deps.Apps,
		interactions: deps.Interactions,
		logger:       logger.With(zap.String("component", "assistant")),
	}
}

// Sessions exposes the session manager
func (a *Assistant) Sessions() *session.Manager {
	return a.sessions
}

// Handle answers one utterance
func (a *Assistant) Handle(ctx context.Context, sessionID, text string) *model.Reply {
	reply, _ := a.handle(ctx, sessionID, text, nil)
	return reply
}

// Stream answers one utterance, emitting completion deltas as they arrive.
// The error is non-nil only when emit failed.
func (a *Assistant) Stream(ctx context.Context, sessionID, text string, emit EmitFunc) (*model.Reply, error) {
	return a.handle(ctx, sessionID, text, emit)
}

func (a *Assistant) handle(ctx context.Context, sessionID, text string, emit EmitFunc) (*model.Reply, error) {
	started := time.Now()
	sessionID = session.Normalize(sessionID)
	u := intent.NewUtterance(text)
	in := a.router.Classify(u)
	metrics.ChatRequests.WithLabelValues(in.Kind.String()).Inc()

	a.logger.Debug("utterance classified",
		zap.String("session_id", sessionID),
		zap.String("intent", in.Kind.String()),
		zap.String("rule", in.Rule))

	reply := &model.Reply{Intent: in}
	var (
		names     []string
		failed    bool
		streamErr error
	)

	switch {
	case in.Kind == model.IntentWebsiteOpen:
		reply.Message, reply.Action = action.OpenWebsite(in.Site, in.URL)
	case in.Kind.IsSystemAction():
		reply.Message = a.systemAction(in)
		a.logger.Info("system action handled",
			zap.String("session_id", sessionID),
			zap.String("intent", in.Kind.String()),
			zap.String("param", in.Param))
	default:
		reply.Message, names, failed, streamErr = a.converse(ctx, sessionID, u, emit)
	}

	a.logInteraction(ctx, &model.Interaction{
		SessionID: sessionID,
		Intent:    in.Kind.String(),
		Message:   u.Raw,
		Response:  reply.Message,
		Action:    actionType(reply.Action),
		URL:       actionURL(reply.Action),
		Snippets:  names,
		Failed:    failed,
		LatencyMS: time.Since(started).Milliseconds(),
		CreatedAt: started.UTC(),
	})
	return reply, streamErr
}

// systemAction runs a local side effect. Session history is not touched.
func (a *Assistant) systemAction(in model.Intent) string {
	switch in.Kind {
	case model.IntentFolderCreate:
		if in.Missing {
			return action.MissingFolderName
		}
		return a.folders.Create(in.Param)
	case model.IntentAppLaunch:
		if in.Missing {
			return action.MissingAppName
		}
		return a.apps.Open(in.Param)
	default:
		return UnsupportedSystemCommand
	}
}

// converse runs the conversational path. The user turn stays in history even
// when the completion fails.
func (a *Assistant) converse(ctx context.Context, sessionID string, u intent.Utterance, emit EmitFunc) (msg string, names []string, failed bool, streamErr error) {
	sess := a.sessions.GetOrCreate(sessionID)
	sess.Append(model.RoleUser, u.Raw)

	bundle := a.composer.Compose(ctx, u, sess.Turns())
	system := bundle.SystemPrompt()

	var (
		out string
		err error
	)
	if emit == nil {
		out, err = a.completer.Complete(ctx, system, bundle.Turns)
	} else {
		forward := func(event string) func(string) error {
			return func(s string) error {
				if err := emit(event, map[string]string{"content": s}); err != nil {
					streamErr = err
					return err
				}
				return nil
			}
		}
		out, err = a.completer.CompleteStream(ctx, system, bundle.Turns, forward("thinking"), forward("chunk"))
	}

	if err != nil {
		outcome := metrics.OutcomeError
		if errors.Is(err, llm.ErrDisabled) {
			outcome = metrics.OutcomeDisabled
		}
		metrics.CompletionRequests.WithLabelValues(outcome).Inc()
		a.logger.Warn("completion failed", zap.String("session_id", sessionID), zap.Error(err))
		return fmt.Sprintf(apologyFormat, err), bundle.Names, true, streamErr
	}

	metrics.CompletionRequests.WithLabelValues(metrics.OutcomeOK).Inc()
	sess.Append(model.RoleAssistant, out)
	return out, bundle.Names, false, nil
}

func (a *Assistant) logInteraction(ctx context.Context, in *model.Interaction) {
	if a.interactions == nil {
		return
	}
	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), interactionLogTimeout)
	defer cancel()
	if err := a.interactions.LogInteraction(ctx, in); err != nil {
		a.logger.Warn("failed to log interaction", zap.Error(err))
	}
}

func actionType(act *model.Action) string {
	if act == nil {
		return ""
	}
	return act.Type
}

func actionURL(act *model.Action) string {
	if act == nil {
		return ""
	}
	return act.URL
}
