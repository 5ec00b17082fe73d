package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"stackguides/internal/feedback"
)

var feedbackCmd = &cobra.Command{
	Use:   "feedback",
	Short: "Cast and inspect article votes from the terminal",
	Long: `Talks to a running guide server's feedback endpoints. Votes are
recorded in the local ledger, so each article accepts at most one vote
from this machine.`,
}

var feedbackLikeCmd = &cobra.Command{
	Use:   "like <articleId>",
	Short: "Record a like for an article",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		exitOnError(castVote(args[0], feedback.ActionLike))
	},
}

var feedbackDislikeCmd = &cobra.Command{
	Use:   "dislike <articleId>",
	Short: "Record a dislike for an article",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		exitOnError(castVote(args[0], feedback.ActionDislike))
	},
}

var feedbackStatsCmd = &cobra.Command{
	Use:   "stats <articleId>",
	Short: "Show an article's vote counts",
	Args:  cobra.ExactArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		exitOnError(showStats(args[0]))
	},
}

func init() {
	feedbackCmd.AddCommand(feedbackLikeCmd)
	feedbackCmd.AddCommand(feedbackDislikeCmd)
	feedbackCmd.AddCommand(feedbackStatsCmd)
	rootCmd.AddCommand(feedbackCmd)
}

func castVote(articleID string, action feedback.Action) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	ledger, err := feedback.NewFileLedger(cfg.LedgerDir)
	if err != nil {
		return err
	}

	voter := feedback.NewVoter(articleID, feedback.NewClient(cfg.FeedbackURL), ledger)
	ctx := context.Background()
	voter.Init(ctx)

	if voter.HasVoted() {
		fmt.Printf("Already voted %q on %s from this machine.\n", voter.UserVote(), articleID)
		return nil
	}

	voter.CastVote(ctx, action)
	if msg := voter.Err(); msg != "" {
		return fmt.Errorf("%s", msg)
	}

	fmt.Printf("Recorded %s for %s. Likes: %d\n", action, articleID, voter.LikeCount())
	return nil
}

func showStats(articleID string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	client := feedback.NewClient(cfg.FeedbackURL)
	counts, err := client.Stats(context.Background(), articleID)
	if err != nil {
		return err
	}

	fmt.Printf("%s: %d likes, %d dislikes\n", articleID, counts.Likes, counts.Dislikes)
	return nil
}
