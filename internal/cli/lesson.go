package cli

import (
	"bufio"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/dyslexicore/dyslexicore-cli/internal/lesson"
	"github.com/dyslexicore/dyslexicore-cli/internal/model"
)

func newLessonCmd() *cobra.Command {
	var wordList string

	cmd := &cobra.Command{
		Use:   "lesson",
		Short: "Build CVC words letter by letter",
		RunE: func(cmd *cobra.Command, args []string) error {
			var words []string
			if wordList != "" {
				loaded, err := app.Storage.GetWordList(cmd.Context(), wordList)
				if err != nil {
					if errors.Is(err, model.ErrEmptyWordList) {
						return fmt.Errorf("word list %q not found or empty", wordList)
					}
					return err
				}
				words = loaded
			}

			built, err := lesson.NewLesson(words, app.Random)
			if err != nil {
				return err
			}
			return runLesson(built)
		},
	}

	cmd.Flags().StringVar(&wordList, "words", "", "Name of a stored word list (default: built-in Short A set)")

	return cmd
}

func runLesson(built *lesson.Lesson) error {
	fmt.Println("CVC Word Explorer: cycle the three letter blocks to spell each word.")
	fmt.Println("Commands: 1/2/3 cycle a block, check, hint, skip, q")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		snap := built.Snapshot()
		if snap.Complete {
			return nil
		}
		fmt.Printf("\nWord %d of %d: spell %s\n", snap.Index+1, snap.Total, snap.TargetWord)
		fmt.Printf("[ %s ] [ %s ] [ %s ]\n", snap.Slots[0], snap.Slots[1], snap.Slots[2])

		if !scanner.Scan() {
			return scanner.Err()
		}

		switch strings.TrimSpace(strings.ToLower(scanner.Text())) {
		case "1":
			built.Cycle(lesson.SlotFirstConsonant)
		case "2":
			built.Cycle(lesson.SlotVowel)
		case "3":
			built.Cycle(lesson.SlotLastConsonant)
		case "check", "c":
			result, err := built.Check()
			if err != nil {
				return err
			}
			fmt.Println(result.Feedback)
		case "hint", "h":
			built.Hint()
		case "skip", "s":
			built.SkipToEnd()
		case "q", "quit":
			return nil
		default:
			fmt.Println("Commands: 1/2/3 cycle a block, check, hint, skip, q")
		}
	}
}
