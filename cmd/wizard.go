package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"

	"trendclip/internal/app"
	"trendclip/internal/clipboard"
	"trendclip/internal/model"
	"trendclip/internal/view"
	"trendclip/internal/wizard"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"github.com/pkg/browser"
	"github.com/spf13/cobra"
)

var errQuit = errors.New("quit")

const (
	choiceBack  = "back"
	choiceRetry = "retry"
	choiceQuit  = "quit"
)

var wizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Build a content package step by step",
	Long:  `Interactively pick a category, a trending headline and a video length, then review, copy, regenerate or export the generated content.`,
	Args:  cobra.NoArgs,
	RunE:  runWizard,
}

func init() {
	rootCmd.AddCommand(wizardCmd)
}

func runWizard(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	service, err := loadService(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = service.Close() }()

	w := service.Wizard()
	for {
		if ctx.Err() != nil {
			return nil
		}

		fmt.Println()
		fmt.Println(view.Progress(w.Router.Current()))
		if verbose {
			fmt.Println(view.Debug(w.Store.Snapshot()))
		}

		switch w.Router.Current() {
		case wizard.StepCategory:
			err = promptCategory(w)
		case wizard.StepHeadline:
			err = promptHeadline(ctx, w)
		case wizard.StepLength:
			err = promptLength(ctx, w)
		case wizard.StepContent:
			err = promptContent(ctx, service, w)
		}

		if errors.Is(err, errQuit) || errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		if err != nil {
			return err
		}
	}
}

func withSpinner(ctx context.Context, title string, fn func()) {
	_ = spinner.New().
		Title(title).
		Context(ctx).
		Action(fn).
		Run()
}

func promptCategory(w *wizard.Wizard) error {
	options := make([]huh.Option[string], 0, len(w.Category.Options())+1)
	for _, c := range w.Category.Options() {
		options = append(options, huh.NewOption(c.Name, c.ID))
	}
	options = append(options, huh.NewOption("Quit", choiceQuit))

	var choice string
	if err := huh.NewSelect[string]().
		Title("Choose a news category").
		Options(options...).
		Value(&choice).
		Run(); err != nil {
		return err
	}

	if choice == choiceQuit {
		return errQuit
	}
	return w.Category.Select(choice)
}

func promptHeadline(ctx context.Context, w *wizard.Wizard) error {
	var status wizard.Status[[]model.Headline]
	withSpinner(ctx, "Loading headlines...", func() {
		status = w.Headlines.Enter(ctx)
	})

	fmt.Println(view.HeadlinesTitle(w.Store.Snapshot().Category))

	for {
		if len(status.Value) == 0 {
			fmt.Println(view.Headlines(status))
			return promptEmptyHeadlines(w)
		}

		options := make([]huh.Option[string], 0, len(status.Value)+1)
		for i, h := range status.Value {
			label := h.Title
			if h.Source != "" {
				label = fmt.Sprintf("%s (%s)", h.Title, h.Source)
			}
			options = append(options, huh.NewOption(fmt.Sprintf("%d. %s", i+1, label), h.ID))
		}
		options = append(options, huh.NewOption("Back to categories", choiceBack))

		var id string
		if err := huh.NewSelect[string]().
			Title("Select a headline").
			Options(options...).
			Value(&id).
			Run(); err != nil {
			return err
		}

		if id == choiceBack {
			w.Router.Back()
			return nil
		}

		selected, err := promptHeadlineAction(w, id, status.Value)
		if err != nil || selected {
			return err
		}
	}
}

func promptEmptyHeadlines(w *wizard.Wizard) error {
	var choice string
	if err := huh.NewSelect[string]().
		Title("Nothing to show").
		Options(
			huh.NewOption("Try again", choiceRetry),
			huh.NewOption("Back to categories", choiceBack),
		).
		Value(&choice).
		Run(); err != nil {
		return err
	}
	if choice == choiceBack {
		w.Router.Back()
	}
	return nil
}

// promptHeadlineAction reports whether the headline was selected.
func promptHeadlineAction(w *wizard.Wizard, id string, list []model.Headline) (bool, error) {
	for i, h := range list {
		if h.ID == id {
			fmt.Println(view.HeadlineCard(i+1, h))
			break
		}
	}

	const (
		actionGenerate = "generate"
		actionRead     = "read"
	)

	var action string
	if err := huh.NewSelect[string]().
		Title("What next?").
		Options(
			huh.NewOption("Generate video content", actionGenerate),
			huh.NewOption("Read original article", actionRead),
			huh.NewOption("Back to headlines", choiceBack),
		).
		Value(&action).
		Run(); err != nil {
		return false, err
	}

	switch action {
	case actionGenerate:
		return true, w.Headlines.Select(id)
	case actionRead:
		if url, ok := w.Headlines.ArticleURL(id); ok {
			fmt.Println(infoStyle.Render("Opening " + url))
			if err := browser.OpenURL(url); err != nil {
				slog.Warn("Failed to open browser", "url", url, "error", err)
			}
		}
	}
	return false, nil
}

func promptLength(ctx context.Context, w *wizard.Wizard) error {
	if !w.Length.Enter() {
		slog.Info("No headline selected, returning to headlines")
		return nil
	}

	st := w.Store.Snapshot()
	pending, _ := w.Length.Pending()
	fmt.Println(view.LengthOptions(*st.Headline, pending, w.Length.Status()))

	options := make([]huh.Option[string], 0, len(w.Length.Options())+1)
	for _, l := range w.Length.Options() {
		options = append(options, huh.NewOption(l.Label(), string(l)))
	}
	options = append(options, huh.NewOption("Back to headlines", choiceBack))

	var choice string
	if err := huh.NewSelect[string]().
		Title("How long should the video be?").
		Options(options...).
		Value(&choice).
		Run(); err != nil {
		return err
	}

	if choice == choiceBack {
		w.Length.Reset()
		w.Router.Back()
		return nil
	}

	var err error
	withSpinner(ctx, "Generating video ideas...", func() {
		err = w.Length.Select(ctx, model.VideoLength(choice))
	})

	var stepErr *wizard.StepError
	if errors.As(err, &stepErr) || errors.Is(err, wizard.ErrBusy) {
		// Shown inline by LengthOptions on the next pass.
		return nil
	}
	return err
}

const (
	actionTabScript     = "tab:script"
	actionTabGraphics   = "tab:graphics"
	actionTabThumbnails = "tab:thumbnails"
	actionCopyAll       = "copy-all"
	actionCopyItem      = "copy-item"
	actionRegenerate    = "regenerate"
	actionExport        = "export"
	actionStartOver     = "start-over"
)

func promptContent(ctx context.Context, service *app.Service, w *wizard.Wizard) error {
	w.Content.Mount()

	var v wizard.ContentView
	withSpinner(ctx, "Generating content...", func() {
		v = w.Content.Ensure(ctx)
	})

	if v.Blocked {
		slog.Warn("Content needs a headline and a video length, returning to length selection")
		w.Content.Unmount()
		w.Router.Go(wizard.StepLength)
		return nil
	}

	for {
		fmt.Println(view.Content(v))

		action, err := selectContentAction(v)
		if err != nil {
			return err
		}

		switch action {
		case actionTabScript:
			w.Content.SetTab(wizard.TabScript)
		case actionTabGraphics:
			w.Content.SetTab(wizard.TabGraphics)
		case actionTabThumbnails:
			w.Content.SetTab(wizard.TabThumbnails)
		case actionCopyAll:
			reportCopy(w.Content.Copy(v.Tab, wizard.CopyAll))
		case actionCopyItem:
			item, ok, err := selectCopyItem(v)
			if err != nil {
				return err
			}
			if ok {
				reportCopy(w.Content.Copy(v.Tab, item))
			}
		case actionRegenerate:
			withSpinner(ctx, "Regenerating content...", func() {
				_, err = w.Content.Regenerate(ctx)
			})
			if err != nil {
				slog.Debug("Regenerate failed", "error", err)
			}
		case actionExport:
			locations, err := service.Export(ctx)
			if err != nil {
				fmt.Println(view.Error(err))
				break
			}
			for _, loc := range locations {
				fmt.Println(successStyle.Render("✓ " + loc))
			}
		case actionStartOver:
			w.StartOver()
			w.Content.Unmount()
			return nil
		case choiceBack:
			w.Content.Unmount()
			w.Router.Go(wizard.StepLength)
			return nil
		case choiceQuit:
			return errQuit
		}

		v = w.Content.View()
	}
}

func selectContentAction(v wizard.ContentView) (string, error) {
	var options []huh.Option[string]
	if v.Package != nil {
		options = append(options,
			huh.NewOption("Show video script", actionTabScript),
			huh.NewOption("Show graphics ideas", actionTabGraphics),
			huh.NewOption("Show thumbnail concepts", actionTabThumbnails),
			huh.NewOption("Copy all from this tab", actionCopyAll),
		)
		if len(copyItemLabels(v)) > 0 {
			options = append(options, huh.NewOption("Copy one entry", actionCopyItem))
		}
		options = append(options, huh.NewOption("Export package", actionExport))
	}
	if v.Phase == wizard.ContentReady || v.Phase == wizard.ContentErrored {
		options = append(options, huh.NewOption("Regenerate content", actionRegenerate))
	}
	options = append(options,
		huh.NewOption("Start over", actionStartOver),
		huh.NewOption("Back to video length", choiceBack),
		huh.NewOption("Quit", choiceQuit),
	)

	var action string
	err := huh.NewSelect[string]().
		Title("Content").
		Options(options...).
		Value(&action).
		Run()
	return action, err
}

// copyItemLabels lists the entries of the active tab that can be copied one
// at a time.
func copyItemLabels(v wizard.ContentView) []string {
	if v.Package == nil {
		return nil
	}
	switch v.Tab {
	case wizard.TabScript:
		return []string{"Introduction", "Body", "Conclusion"}
	case wizard.TabGraphics:
		return v.Package.Graphics
	case wizard.TabThumbnails:
		return v.Package.Thumbnails
	default:
		return nil
	}
}

// selectCopyItem reports false when there was nothing to choose.
func selectCopyItem(v wizard.ContentView) (int, bool, error) {
	labels := copyItemLabels(v)
	if len(labels) == 0 {
		return 0, false, nil
	}

	options := make([]huh.Option[string], 0, len(labels))
	for i, label := range labels {
		options = append(options, huh.NewOption(truncate(label, 60), strconv.Itoa(i)))
	}

	var choice string
	if err := huh.NewSelect[string]().
		Title("Copy which entry?").
		Options(options...).
		Value(&choice).
		Run(); err != nil {
		return 0, false, err
	}
	return parseCopyChoice(choice)
}

func parseCopyChoice(choice string) (int, bool, error) {
	if choice == "" {
		return 0, false, nil
	}
	item, err := strconv.Atoi(choice)
	if err != nil {
		return 0, false, fmt.Errorf("copy entry %q: %w", choice, err)
	}
	return item, true, nil
}

func reportCopy(method clipboard.Method, err error) {
	if err != nil {
		fmt.Println(warnStyle.Render(err.Error()))
		return
	}
	switch method {
	case clipboard.MethodSystem:
		fmt.Println(successStyle.Render("✓ Copied to clipboard"))
	case clipboard.MethodOSC52:
		fmt.Println(successStyle.Render("✓ Copied through the terminal"))
	case clipboard.MethodManual:
		fmt.Println(infoStyle.Render("Clipboard unavailable, copy the text above"))
	default:
		fmt.Println(infoStyle.Render("Nothing to copy"))
	}
}

func truncate(s string, n int) string {
	r := []rune(s)
	if len(r) <= n {
		return s
	}
	return string(r[:n-1]) + "…"
}
