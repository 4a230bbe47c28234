package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/omkar-nanda-ditstek/AI/internal/patterns"
	"github.com/omkar-nanda-ditstek/AI/internal/types"
)

var trainCmd = &cobra.Command{
	Use:   "train",
	Short: "Add a custom interview pattern to the training file",
	Long:  "Record a skill question and a keyword-triggered response in the JSON or YAML training file used by the interviewer.",
	RunE:  runTrain,
}

var (
	trainFile     string
	trainSkill    string
	trainQuestion string
	trainKeywords []string
	trainResponse string
)

func init() {
	trainCmd.Flags().StringVarP(&trainFile, "file", "f", "", "Training file (default from config)")
	trainCmd.Flags().StringVar(&trainSkill, "skill", "", "Skill the question targets (required)")
	trainCmd.Flags().StringVar(&trainQuestion, "question", "", "Question to ask candidates with the skill (required)")
	trainCmd.Flags().StringSliceVar(&trainKeywords, "keywords", nil, "Answer keywords that trigger the response (required)")
	trainCmd.Flags().StringVar(&trainResponse, "response", "", "Reply given when an answer contains a keyword (required)")
	_ = trainCmd.MarkFlagRequired("skill")
	_ = trainCmd.MarkFlagRequired("question")
	_ = trainCmd.MarkFlagRequired("keywords")
	_ = trainCmd.MarkFlagRequired("response")
	rootCmd.AddCommand(trainCmd)
}

func runTrain(cmd *cobra.Command, _ []string) error {
	path := trainFile
	if path == "" {
		path = appConfig.Interview.TrainingFile
	}
	ex := types.TrainingExample{
		Skill:    trainSkill,
		Question: trainQuestion,
		Keywords: trainKeywords,
		Response: trainResponse,
	}

	total, err := addTrainingExample(path, ex)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Added pattern for %s to %s (%d skills)\n", ex.Skill, path, total)
	return nil
}

// addTrainingExample stores ex in the file at path and returns the number of
// trained skills.
func addTrainingExample(path string, ex types.TrainingExample) (int, error) {
	if path == "" {
		return 0, errors.New("training file is required (set --file or interview.training-file)")
	}

	store, err := patterns.Load(path)
	if err != nil {
		return 0, err
	}
	if err := store.AddExample(ex); err != nil {
		return 0, err
	}
	if err := store.Save(); err != nil {
		return 0, err
	}
	return len(store.Snapshot().InterviewPatterns), nil
}
