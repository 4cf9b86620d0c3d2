package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dyslexicore/dyslexicore-cli/internal/chat"
	"github.com/dyslexicore/dyslexicore-cli/internal/model"
)

func newChatCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "chat",
		Short: "Talk to the Smart Companion",
		RunE: func(cmd *cobra.Command, args []string) error {
			fmt.Println(app.Chat.Greeting(app.Session.User().FirstName))
			fmt.Println("\nQuick questions:")
			for _, q := range chat.QuickQuestions() {
				fmt.Printf("  - %s\n", q)
			}
			fmt.Println("\nType a question, or q to leave.")

			scanner := bufio.NewScanner(os.Stdin)
			for {
				fmt.Print("> ")
				if !scanner.Scan() {
					return scanner.Err()
				}
				line := strings.TrimSpace(scanner.Text())
				if line == "q" || line == "quit" {
					return nil
				}

				reply, err := app.Chat.Send(cmd.Context(), line)
				if err != nil {
					if errors.Is(err, model.ErrEmptyMessage) {
						continue
					}
					if errors.Is(err, context.Canceled) {
						return nil
					}
					return err
				}
				fmt.Println(reply.Text)
			}
		},
	}
}
