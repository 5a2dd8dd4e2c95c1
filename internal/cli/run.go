package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/phanxgames/marquee"
	"github.com/phanxgames/marquee/cue"
)

func newRunCmd(opts *options) *cobra.Command {
	var (
		scriptPath string
		skipIntro  bool
	)
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Open the carousel in a window",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			f, err := opts.load()
			if err != nil {
				return err
			}
			stage, err := marquee.NewStage(marquee.SampleItems(), f.Carousel)
			if err != nil {
				return err
			}
			stage.ScreenshotDir = f.ScreenshotDir
			stage.OnSelect(func(it marquee.Item) {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "selected %d %q\n", it.ID, it.Title)
			})

			if scriptPath != "" {
				runner, err := loadScript(scriptPath)
				if err != nil {
					return err
				}
				stage.SetScript(runner)
			}
			if skipIntro {
				stage.Loader().Skip()
			}

			if f.Audio.Enabled {
				player := cue.NewPlayer(cue.Options{Volume: f.Audio.Volume})
				if err := player.Init(); err != nil {
					_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "[marquee] warning: audio disabled: %v\n", err)
				} else {
					defer func() { _ = player.Close() }()
					stage.SetCuePlayer(player)
				}
			}
			return marquee.Run(stage, f.Window)
		},
	}
	cmd.Flags().StringVar(&scriptPath, "script", "", "gesture script (JSON) to replay after the intro")
	cmd.Flags().BoolVar(&skipIntro, "skip-intro", false, "start without waiting for Enter on the intro curtain")
	return cmd
}

func loadScript(path string) (*marquee.ScriptRunner, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read script: %w", err)
	}
	return marquee.LoadScript(data)
}
