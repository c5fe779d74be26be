package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/google/uuid"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"promptline"
	"promptline/internal/config"
	"promptline/internal/termstyle"
)

func newDemoCmd() *cobra.Command {
	var (
		configPath string
		promptText string
		ticks      int
		intervalMS int
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Render the prompt/status region and drive live status updates",
		Long: "demo configures the terminal, renders the prompt and status lines, patches\n" +
			"the status line a few times, lets a burst of ordinary output scroll through\n" +
			"while the region is suspended, then restores the terminal on exit.",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(configPath)
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("prompt") {
				cfg.Prompt = promptText
			}
			if cmd.Flags().Changed("ticks") {
				cfg.Ticks = ticks
			}
			if cmd.Flags().Changed("interval-ms") {
				cfg.IntervalMS = intervalMS
			}
			return runDemo(cfg)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to a YAML config file")
	cmd.Flags().StringVar(&promptText, "prompt", "> ", "prompt text")
	cmd.Flags().IntVar(&ticks, "ticks", 5, "number of status updates")
	cmd.Flags().IntVar(&intervalMS, "interval-ms", 500, "delay between updates in milliseconds")

	return cmd
}

func runDemo(cfg *config.Config) error {
	// Style plain printed lines only when the terminal has a color profile.
	output := termenv.NewOutput(os.Stdout)
	termstyle.SetEnabled(output.Profile != termenv.Ascii)

	if err := promptline.ConfigureForPrompt(); err != nil {
		fmt.Fprintf(os.Stderr, "warning: terminal configuration failed: %v\n", err)
	}
	defer promptline.RestoreTerminalSettings()

	// The terminal must be restored on every exit path, including signals.
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-sigCh:
			promptline.RestoreTerminalSettings()
			os.Exit(130)
		case <-done:
		}
	}()

	sessionID := uuid.NewString()[:8]
	status := func(tick int) string {
		return fmt.Sprintf("[%s] %s | tick %d", sessionID, cfg.Status, tick)
	}
	interval := time.Duration(cfg.IntervalMS) * time.Millisecond

	promptline.RenderPrompt(cfg.Prompt, status(0))
	for i := 1; i <= cfg.Ticks; i++ {
		time.Sleep(interval)
		promptline.UpdateStatusLine(status(i))
	}

	// Let a burst of ordinary output scroll through, then bring the
	// region back with a fresh render.
	promptline.SuspendPromptUpdates()
	for i := 1; i <= 3; i++ {
		fmt.Println(termstyle.Dim(fmt.Sprintf("background output line %d", i)))
	}
	promptline.ResumePromptUpdates()
	promptline.RenderPrompt(cfg.Prompt, status(cfg.Ticks))
	time.Sleep(interval)

	fmt.Println()
	fmt.Println(termstyle.Green("demo finished"))
	return nil
}
