package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/manifoldco/promptui"
	"github.com/spf13/cobra"

	"github.com/omkar-nanda-ditstek/AI/internal/observability"
	"github.com/omkar-nanda-ditstek/AI/internal/service"
	"github.com/omkar-nanda-ditstek/AI/internal/types"
)

const (
	promptContinue = "Next question"
	promptFinish   = "Finish interview"
)

var interviewCmd = &cobra.Command{
	Use:   "interview FILE",
	Short: "Run an interactive interview for a resume",
	Long:  "Parse a resume, ask the seeded questions and then adaptive follow-ups in the terminal, and print the final analysis.",
	Args:  cobra.ExactArgs(1),
	RunE:  runInterviewCmd,
}

var interviewMaxQuestions int

func init() {
	interviewCmd.Flags().IntVarP(&interviewMaxQuestions, "max-questions", "n", 10, "Stop after this many answers")
	interviewCmd.Flags().String("provider", "gemini", "Generation provider (gemini, vertex, ollama, openai, simple)")
	rootCmd.AddCommand(interviewCmd)
}

// answerer collects candidate input.
type answerer interface {
	// Answer asks question and returns the reply. errFinish ends the
	// interview early.
	Answer(question types.GeneratedQuestion) (string, error)
	// Continue asks whether to go past the seeded questions.
	Continue() (bool, error)
}

var errFinish = errors.New("interview finished by candidate")

type promptAnswerer struct{}

func (promptAnswerer) Answer(q types.GeneratedQuestion) (string, error) {
	prompt := promptui.Prompt{
		Label: fmt.Sprintf("[%s] %s", q.Type, q.Question),
		Validate: func(s string) error {
			if strings.TrimSpace(s) == "" {
				return errors.New("answer cannot be empty")
			}
			return nil
		},
	}
	answer, err := prompt.Run()
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
		return "", errFinish
	}
	return answer, err
}

func (promptAnswerer) Continue() (bool, error) {
	sel := promptui.Select{
		Label: "Seeded questions done. Proceed?",
		Items: []string{promptContinue, promptFinish},
	}
	_, choice, err := sel.Run()
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return choice == promptContinue, nil
}

func runInterviewCmd(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	a, err := newApp(ctx, appConfig, appLogger)
	if err != nil {
		return err
	}
	defer a.Close()

	return runInterview(ctx, a.svc, args[0], promptAnswerer{}, cmd.OutOrStdout(), interviewMaxQuestions)
}

// runInterview drives one interview session for the resume at path.
//
//nolint:errcheck // writing to the terminal; errors are not recoverable
func runInterview(ctx context.Context, svc *service.Service, path string, in answerer, out io.Writer, maxQuestions int) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read resume: %w", err)
	}

	upload, err := svc.UploadResume(ctx, filepath.Base(path), data)
	if err != nil {
		return err
	}

	printer := observability.NewPrinter(out)
	printer.PrintProfile(&upload.Profile)
	fmt.Fprintf(out, "Session: %s\n\n", upload.SessionID)

	seeded := len(upload.Questions)
	for answered := 0; answered < maxQuestions; answered++ {
		if answered == seeded {
			more, err := in.Continue()
			if err != nil {
				return err
			}
			if !more {
				break
			}
		}

		q, err := svc.NextQuestion(ctx, upload.SessionID)
		if err != nil {
			return err
		}

		answer, err := in.Answer(q)
		if errors.Is(err, errFinish) {
			break
		}
		if err != nil {
			return err
		}

		res, err := svc.SubmitAnswer(ctx, upload.SessionID, types.AnswerRequest{QuestionID: q.ID, Answer: answer})
		if err != nil {
			return err
		}
		fmt.Fprintf(out, "\n%s\n", res.Acknowledgment)
		printer.PrintScore(res.Score)
		fmt.Fprintln(out)
	}

	analysis, err := svc.SubmitInterview(ctx, types.SubmitInterviewRequest{SessionID: upload.SessionID})
	if err != nil {
		return err
	}
	printer.PrintAnalysis(analysis)
	return nil
}
