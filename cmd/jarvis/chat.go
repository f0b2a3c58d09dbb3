package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lakshitavyas02/jarvis-voice-assistant/internal/model"
	"github.com/lakshitavyas02/jarvis-voice-assistant/internal/session"
)

var chatCmd = &cobra.Command{
	Use:   "chat",
	Short: "Start an interactive conversation",
	Long: `Start an interactive conversation. Type /reset to clear the history
and /exit (or quit) to leave.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		jarvis, _, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		defer jarvis.Close()

		id := sessionID
		if id == "" {
			id = session.NewID()
		}
		handle := func(text string) *model.Reply {
			return jarvis.Assistant.Handle(cmd.Context(), id, text)
		}
		reset := func() { jarvis.Sessions.Reset(id) }

		return repl(cmd.InOrStdin(), cmd.OutOrStdout(), handle, reset)
	},
}

// repl reads one utterance per line until EOF or an exit command
func repl(in io.Reader, out io.Writer, handle func(string) *model.Reply, reset func()) error {
	fmt.Fprintln(out, hintStyle.Render("Type /exit to leave, /reset to clear the conversation."))

	sc := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, promptStyle.Render("You: "))
		if !sc.Scan() {
			fmt.Fprintln(out)
			return sc.Err()
		}

		text := strings.TrimSpace(sc.Text())
		switch strings.ToLower(text) {
		case "":
			continue
		case "/exit", "exit", "quit":
			return nil
		case "/reset":
			reset()
			fmt.Fprintln(out, hintStyle.Render("Conversation cleared."))
			continue
		}

		renderReply(out, handle(text))
	}
}
