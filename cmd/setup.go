package cmd

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"
	"time"

	"trendclip/internal/backend"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/huh/spinner"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
)

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212")).MarginBottom(1)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warnStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("39"))
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "Interactive setup for TrendClip",
	Long:  `Point TrendClip at its backend, create the export directory and write a .env file.`,
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(cmd *cobra.Command, args []string) error {
	fmt.Println(titleStyle.Render("📰 TrendClip Setup"))

	steps := []struct {
		name string
		fn   func() error
	}{
		{"Creating directories", createDirectories},
		{"Configuring environment", configureEnv},
	}

	for _, step := range steps {
		if err := step.fn(); err != nil {
			return fmt.Errorf("%s: %w", step.name, err)
		}
	}

	return nil
}

func createDirectories() error {
	dirs := []string{"output"}
	for _, dir := range dirs {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("create %s: %w", dir, err)
		}
	}
	fmt.Println(successStyle.Render("✓ Created directories"))
	return nil
}

func configureEnv() error {
	if _, err := os.Stat(".env"); err == nil {
		var overwrite bool
		if err := huh.NewConfirm().
			Title("Found existing .env file").
			Description("Overwrite?").
			Value(&overwrite).
			Run(); err != nil {
			return err
		}
		if !overwrite {
			fmt.Println(infoStyle.Render("Kept existing .env"))
			return nil
		}
	}

	env := make(map[string]string)

	if err := configureBackend(env); err != nil {
		return err
	}

	if err := configureGCS(env); err != nil {
		return err
	}

	return writeEnvFile(env)
}

func configureBackend(env map[string]string) error {
	baseURL := backend.DefaultBaseURL
	country := backend.DefaultCountry

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Backend URL").
				Description("Where the TrendClip API is running").
				Value(&baseURL).
				Validate(validURL),
			huh.NewInput().
				Title("News country").
				Description("Two-letter country code for trending headlines").
				Value(&country).
				Validate(required("Country")),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	env["TRENDCLIP_BACKEND_URL"] = strings.TrimSpace(baseURL)
	env["TRENDCLIP_COUNTRY"] = strings.ToLower(strings.TrimSpace(country))

	if err := checkBackend(env["TRENDCLIP_BACKEND_URL"], env["TRENDCLIP_COUNTRY"]); err != nil {
		fmt.Println(warnStyle.Render(fmt.Sprintf("Backend check failed: %v", err)))
		fmt.Println(infoStyle.Render("Settings are saved anyway; start the backend before running the wizard."))
	}
	return nil
}

func checkBackend(baseURL, country string) error {
	client := backend.NewClient(backend.Options{BaseURL: baseURL})
	return runWithSpinner("Checking backend", func() error {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		_, err := client.TrendingNews(ctx, "general", country)
		return err
	})
}

func configureGCS(env map[string]string) error {
	var setup bool
	if err := huh.NewConfirm().
		Title("Export to Google Cloud Storage?").
		Description("Exported packages are always written to ./output; a bucket adds a remote copy").
		Value(&setup).
		Run(); err != nil || !setup {
		return err
	}

	fmt.Println(infoStyle.Render(`
Exports use application default credentials unless a key file is given.
Run "gcloud auth application-default login" or create a service account key at
https://console.cloud.google.com/iam-admin/serviceaccounts
`))

	var bucket, credentials string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Bucket name").
				Value(&bucket).
				Validate(required("Bucket name")),
			huh.NewInput().
				Title("Service account key file (optional)").
				Placeholder("/path/to/key.json").
				Value(&credentials),
		),
	)

	if err := form.Run(); err != nil {
		return err
	}

	env["GCS_BUCKET"] = strings.TrimPrefix(strings.TrimSpace(bucket), "gs://")
	if credentials = strings.TrimSpace(credentials); credentials != "" {
		env["GOOGLE_APPLICATION_CREDENTIALS"] = credentials
	}
	return nil
}

func writeEnvFile(env map[string]string) error {
	f, err := os.Create(".env")
	if err != nil {
		return err
	}
	defer func() { _ = f.Close() }()

	order := []string{
		"TRENDCLIP_BACKEND_URL",
		"TRENDCLIP_COUNTRY",
		"GCS_BUCKET",
		"GOOGLE_APPLICATION_CREDENTIALS",
	}

	for _, key := range order {
		if val, ok := env[key]; ok && val != "" {
			_, _ = fmt.Fprintf(f, "%s=%s\n", key, val)
		}
	}

	fmt.Println(successStyle.Render("✓ Created .env file"))
	printNextSteps()
	return nil
}

func printNextSteps() {
	fmt.Println()
	fmt.Println(titleStyle.Render("Next steps:"))
	fmt.Println("  1. Start the TrendClip backend")
	fmt.Println("  2. Run: trendclip wizard")
	fmt.Println("  3. Or script it: trendclip once -c technology -l 30s --export")
}

func required(field string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", field)
		}
		return nil
	}
}

func validURL(s string) error {
	u, err := url.Parse(strings.TrimSpace(s))
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("enter a full URL such as %s", backend.DefaultBaseURL)
	}
	return nil
}

func runWithSpinner(title string, fn func() error) error {
	var err error
	_ = spinner.New().
		Title(title).
		Action(func() { err = fn() }).
		Run()
	if err != nil {
		return err
	}
	fmt.Println(successStyle.Render("✓ " + title))
	return nil
}
