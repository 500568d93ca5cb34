package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/sozercan/truthlens/internal/analyzer"
	"github.com/sozercan/truthlens/internal/render"
	"github.com/sozercan/truthlens/internal/ui"
)

// ErrAnalysisFailed is returned after an alert has been printed.
var ErrAnalysisFailed = errors.New("analysis failed")

// alertLog collects alerts so the command can report them and fail.
type alertLog struct {
	msgs []string
}

func (a *alertLog) Alert(msg string) {
	a.msgs = append(a.msgs, msg)
}

func newAnalyzeCommand(opts *rootOptions) *cobra.Command {
	var (
		articleURL string
		videoURL   string
	)

	cmd := &cobra.Command{
		Use:   "analyze [text...]",
		Short: "Check text, an article URL or a video URL",
		Long: `Submit content to the analysis workflow and print the verdict.

Text given as arguments is checked for misinformation; --url checks an article
instead when no text is given. --video runs the deepfake check on a video URL.`,
		Example: `  truthlens analyze "Scientists confirm the moon is made of cheese"
  truthlens analyze --url https://example.com/story
  truthlens analyze --video https://example.com/clip.mp4`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := opts.loadConfig(cmd.ErrOrStderr())
			if err != nil {
				return err
			}

			backend, err := newBackend(cfg)
			if err != nil {
				return err
			}

			term := render.NewTerminal(!opts.noColor)
			alerts := &alertLog{}
			form := analyzer.Form{
				Control: ui.NewSubmitControl("analyze", "Analyze", "Analyzing..."),
				Results: render.TerminalSink{Terminal: term, Out: cmd.OutOrStdout()},
				Alerts:  alerts,
			}

			a := analyzer.New(backend)
			if cmd.Flags().Changed("video") {
				a.SubmitVideoAnalysis(cmd.Context(), form, videoURL)
			} else {
				a.SubmitTextAnalysis(cmd.Context(), form, strings.Join(args, " "), articleURL)
			}

			for _, msg := range alerts.msgs {
				fmt.Fprintln(cmd.ErrOrStderr(), term.Alert(msg))
			}
			if len(alerts.msgs) > 0 {
				cmd.SilenceErrors = true
				return ErrAnalysisFailed
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&articleURL, "url", "u", "", "article URL to check when no text is given")
	cmd.Flags().StringVar(&videoURL, "video", "", "video URL to check for deepfakes")
	return cmd
}
