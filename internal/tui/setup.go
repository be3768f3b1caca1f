package tui

import (
	"errors"
	"net/url"
	"strings"

	"github.com/theirongolddev/goaltrack/internal/config"
	"github.com/theirongolddev/goaltrack/internal/model"
	"github.com/theirongolddev/goaltrack/internal/tui/theme"

	"github.com/charmbracelet/huh"
)

// SetupValues backs the first-run wizard.
type SetupValues struct {
	Environment     string
	ProdHost        string
	LocalURL        string
	Theme           string
	DefaultCategory string
	DefaultTab      string
}

// SetupValuesFrom seeds the wizard with an existing config.
func SetupValuesFrom(cfg config.Config) *SetupValues {
	v := &SetupValues{
		Environment:     cfg.API.Environment,
		ProdHost:        cfg.API.ProdHost,
		LocalURL:        cfg.API.LocalURL,
		Theme:           cfg.Appearance.Theme,
		DefaultCategory: cfg.General.DefaultCategory,
		DefaultTab:      cfg.General.DefaultTab,
	}
	if v.Environment != config.EnvProduction {
		v.Environment = "development"
	}
	if v.LocalURL == "" {
		v.LocalURL = config.DefaultLocalURL
	}
	if v.DefaultCategory == "" {
		v.DefaultCategory = model.CategoryAll.Slug()
	}
	if v.DefaultTab == "" {
		v.DefaultTab = "all"
	}
	return v
}

// Apply writes the wizard answers onto cfg.
func (v *SetupValues) Apply(cfg config.Config) config.Config {
	cfg.API.Environment = v.Environment
	cfg.API.ProdHost = strings.TrimSpace(v.ProdHost)
	cfg.API.LocalURL = strings.TrimSpace(v.LocalURL)
	cfg.Appearance.Theme = v.Theme
	cfg.General.DefaultCategory = v.DefaultCategory
	cfg.General.DefaultTab = v.DefaultTab
	return cfg
}

// NewSetupForm builds the first-run wizard. The production host is only
// asked for when the production environment is chosen.
func NewSetupForm(v *SetupValues) *huh.Form {
	var themeOpts []huh.Option[string]
	for _, name := range theme.Names() {
		themeOpts = append(themeOpts, huh.NewOption(name, name))
	}

	catOpts := []huh.Option[string]{huh.NewOption("All categories", model.CategoryAll.Slug())}
	catOpts = append(catOpts, categoryOptions()...)

	var tabOpts []huh.Option[string]
	for t := model.TabAll; t < model.TabCount; t++ {
		tabOpts = append(tabOpts, huh.NewOption(t.String(), t.String()))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewNote().
				Title("goaltrack setup").
				Description("Choose which Goal Service to talk to."),
			huh.NewSelect[string]().
				Title("Environment").
				Options(
					huh.NewOption("Development (local server)", "development"),
					huh.NewOption("Production", config.EnvProduction),
				).
				Value(&v.Environment),
		),
		huh.NewGroup(
			huh.NewInput().
				Title("Production API host").
				Description("Host name only, e.g. goals.example.com").
				Value(&v.ProdHost).
				Validate(func(s string) error {
					s = strings.TrimSpace(s)
					if s == "" {
						return errors.New("a host is required in production")
					}
					if strings.Contains(s, "/") {
						return errors.New("enter the host without a scheme or path")
					}
					return nil
				}),
		).WithHideFunc(func() bool { return v.Environment != config.EnvProduction }),
		huh.NewGroup(
			huh.NewInput().
				Title("Local API URL").
				Value(&v.LocalURL).
				Validate(validateURL),
		).WithHideFunc(func() bool { return v.Environment == config.EnvProduction }),
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Theme").
				Options(themeOpts...).
				Value(&v.Theme),
			huh.NewSelect[string]().
				Title("Default category").
				Options(catOpts...).
				Value(&v.DefaultCategory),
			huh.NewSelect[string]().
				Title("Default tab").
				Options(tabOpts...).
				Value(&v.DefaultTab),
		),
	)
}

func validateURL(s string) error {
	u, err := url.Parse(strings.TrimSpace(s))
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errors.New("enter an http(s) URL")
	}
	return nil
}
