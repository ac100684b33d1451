package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/akunal1/smart-resume-backend/pkg/assistant"
	"github.com/akunal1/smart-resume-backend/pkg/config"
	"github.com/akunal1/smart-resume-backend/pkg/intent"
	"github.com/akunal1/smart-resume-backend/pkg/llm"
	"github.com/akunal1/smart-resume-backend/pkg/llm/perplexity"
	"github.com/akunal1/smart-resume-backend/pkg/logger"
	"github.com/akunal1/smart-resume-backend/pkg/resume"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("12"))
	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("10")).
			Bold(true)
	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("7"))
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("9"))
)

type options struct {
	resumePath string
	userName   string
	verbose    bool
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cfg := config.Load()

	root := &cobra.Command{
		Use:           "assistantctl",
		Short:         "Inspect and exercise the resume assistant",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&opts.resumePath, "resume", cfg.ResumeDataPath, "path to the resume JSON record")
	root.PersistentFlags().StringVar(&opts.userName, "user-name", "", "visitor name used for name questions")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "log at debug level")

	root.AddCommand(
		newClassifyCmd(opts),
		newContextCmd(opts),
		newAskCmd(opts, cfg),
	)
	return root
}

func newClassifyCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "classify <query>",
		Short: "Show which intent a query maps to",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			query := strings.Join(args, " ")
			in := intent.Classify(query, nil)
			// A nil gateway never leaves the process: model intents get the demo reply.
			resp := assistant.NewService(nil, placeholder{}, "", nil).Ask(cmd.Context(), assistant.Request{
				Query:    query,
				Mode:     assistant.ModeText,
				UserName: opts.userName,
			})
			out := cmd.OutOrStdout()
			field(out, "Intent", string(in))
			field(out, "Model", yesNo(in.NeedsModel()))
			popup := "-"
			if resp.Metadata.ShowMeetingPopup != nil {
				popup = yesNo(*resp.Metadata.ShowMeetingPopup)
			}
			field(out, "Meeting popup", popup)
			return nil
		},
	}
}

func newContextCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "context",
		Short: "Print the resume context sent to the model",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			p, err := resume.NewProvider(cmd.Context(), resume.NewFileStore(opts.resumePath))
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), p.Context())
			return nil
		},
	}
}

func newAskCmd(opts *options, cfg config.Config) *cobra.Command {
	return &cobra.Command{
		Use:   "ask <query>",
		Short: "Run a query through the full assistant",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := resume.NewProvider(cmd.Context(), resume.NewFileStore(opts.resumePath))
			if err != nil {
				return err
			}
			level := "warn"
			if opts.verbose {
				level = "debug"
			}
			log := logger.New(level, "console")
			defer func() { _ = log.Sync() }()

			var gateway llm.Gateway = perplexity.New(cfg.PerplexityAPIKey, cfg.PerplexityBaseURL, cfg.PerplexityModel, cfg.LLMTimeout)
			svc := assistant.NewService(gateway, p, cfg.PublicBaseURL+"/api/assistant/download", log)
			resp := svc.Ask(cmd.Context(), assistant.Request{
				Query:    strings.Join(args, " "),
				Mode:     assistant.ModeText,
				UserName: opts.userName,
			})
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, titleStyle.Render(p.FullName()))
			fmt.Fprintln(out, resp.Message)
			fmt.Fprintln(out)
			field(out, "Model", resp.Metadata.Model)
			field(out, "Tokens", fmt.Sprintf("%d prompt / %d completion", resp.Metadata.Usage.PromptTokens, resp.Metadata.Usage.CompletionTokens))
			log.Debug("ask finished", zap.Int("total_tokens", resp.Metadata.Usage.TotalTokens))
			return nil
		},
	}
}

// placeholder lets classify run without a resume on disk.
type placeholder struct{}

func (placeholder) FullName() string { return "Resume Owner" }
func (placeholder) Context() string  { return "" }

func field(w io.Writer, label, value string) {
	fmt.Fprintf(w, "%s %s\n", labelStyle.Render(label+":"), valueStyle.Render(value))
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
