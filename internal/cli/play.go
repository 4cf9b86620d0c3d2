package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"
	"sync"

	"github.com/spf13/cobra"

	"github.com/dyslexicore/dyslexicore-cli/internal/game"
	"github.com/dyslexicore/dyslexicore-cli/internal/model"
)

func newPlayCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Play the mini-games",
	}

	cmd.AddCommand(newPlayAssessmentCmd())
	cmd.AddCommand(newPlayScreeningCmd())
	cmd.AddCommand(newPlayTypingCmd())

	return cmd
}

func newPlayAssessmentCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "assessment",
		Short: "Play the Phoneme Bubbles assessment",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTimedGame(cmd, game.AssessmentConfig(), &game.AssessmentSubmitter{Client: app.Backend})
		},
	}
}

func newPlayScreeningCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "screening",
		Short: "Play the Star Tracker screening",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTimedGame(cmd, game.ScreeningConfig(), &game.ScreeningSubmitter{Client: app.Backend})
		},
	}
}

// runTimedGame drives one round of a countdown game on the terminal. Typing
// the target's label scores a hit, anything else a miss, and "q" abandons
// the round.
func runTimedGame(cmd *cobra.Command, cfg game.Config, submitter game.Submitter) error {
	if !app.Session.IsAuthenticated() {
		fmt.Println("Playing as guest; this round won't be saved.")
		submitter = &game.NopSubmitter{}
	}

	engine := game.NewEngine(cfg, app.Random)

	// The event loop owns the engine, so the stdin reader matches input
	// against a label mirrored out of OnUpdate rather than touching it
	var mu sync.Mutex
	var label string

	finished := make(chan model.RoundResult, 1)
	runner := game.NewRunner(engine, app.Clock, submitter, app.Logger, game.Events{
		OnUpdate: func(snap game.Snapshot) {
			mu.Lock()
			label = snap.Target.Label
			mu.Unlock()
			if snap.Status == model.RoundPlaying {
				fmt.Printf("[%2ds] type %q  (score %d)\n", snap.RemainingTime, snap.Target.Label, snap.Score)
			}
		},
		OnFinish: func(_ game.Snapshot, result model.RoundResult) {
			finished <- result
		},
	})

	fmt.Printf("%s: type the shown label and press enter. %d seconds, q quits.\n", cfg.TestType, cfg.DurationSec)

	go func() {
		scanner := bufio.NewScanner(os.Stdin)
		for scanner.Scan() {
			line := strings.TrimSpace(scanner.Text())
			switch {
			case line == "q" || line == "quit":
				runner.Quit()
				return
			case line == "":
				continue
			default:
				mu.Lock()
				target := label
				mu.Unlock()
				if strings.EqualFold(line, target) {
					runner.Hit()
				} else {
					runner.Miss()
				}
			}
		}
	}()

	if err := runner.Run(cmd.Context()); err != nil {
		return err
	}

	select {
	case result := <-finished:
		out.Print(result)
	default:
		out.PrintMessage("Round abandoned.")
	}

	// Let the fire-and-forget upload settle before the process exits
	<-runner.SubmitDone()
	return nil
}

func newPlayTypingCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "typing",
		Short: "Play Typing Quest",
		RunE: func(cmd *cobra.Command, args []string) error {
			quest := game.NewTypingQuest(game.DefaultTypingWords, app.Random)
			quest.Start()

			fmt.Println("Typing Quest: type each word and press enter. q quits.")

			scanner := bufio.NewScanner(os.Stdin)
			for {
				snap := quest.Snapshot()
				fmt.Printf("Level %d (%d%%)  score %d  word: %s\n", snap.Level, snap.LevelProgress, snap.Score, snap.CurrentWord)

				if !scanner.Scan() {
					break
				}
				line := strings.TrimSpace(scanner.Text())
				if line == "q" || line == "quit" {
					break
				}

				quest.Type(line)
				if quest.Snapshot().Incorrect {
					fmt.Println("Not quite, try again!")
				}
			}

			quest.Finish()
			final := quest.Snapshot()
			out.PrintMessage(fmt.Sprintf("Great typing! Final score %d, level %d.", final.Score, final.Level))
			return scanner.Err()
		},
	}
}
