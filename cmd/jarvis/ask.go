package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var askStream bool

var askCmd = &cobra.Command{
	Use:   "ask <message>",
	Short: "Send a single message",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		message := strings.TrimSpace(strings.Join(args, " "))
		if message == "" {
			return fmt.Errorf("no message provided")
		}

		jarvis, _, err := bootstrap(cmd.Context())
		if err != nil {
			return err
		}
		defer jarvis.Close()

		out := cmd.OutOrStdout()
		if !askStream {
			renderReply(out, jarvis.Assistant.Handle(cmd.Context(), sessionID, message))
			return nil
		}

		streamed := false
		reply, err := jarvis.Assistant.Stream(cmd.Context(), sessionID, message, func(event string, data any) error {
			if event != "chunk" {
				return nil
			}
			if !streamed {
				fmt.Fprint(out, nameStyle.Render("Jarvis:")+" ")
				streamed = true
			}
			fmt.Fprint(out, data.(map[string]string)["content"])
			return nil
		})
		if err != nil {
			return err
		}
		if streamed {
			fmt.Fprintln(out)
			return nil
		}
		renderReply(out, reply)
		return nil
	},
}

func init() {
	askCmd.Flags().BoolVar(&askStream, "stream", false, "Stream the reply as it is generated")
}
