package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"menucontainer/internal/config"
	"menucontainer/internal/drawer"
	"menucontainer/internal/panel"
	"menucontainer/internal/storyboard"
	"menucontainer/internal/telemetry"
	"menucontainer/internal/ui"
)

type options struct {
	configPath string
	storyboard string
}

func parseFlags() options {
	var opts options
	flag.StringVar(&opts.configPath, "config", "", "config file (default ~/.config/menucontainer/config.toml)")
	flag.StringVar(&opts.storyboard, "storyboard", "", "panel wiring file; overrides ui.storyboard")

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: menucontainer [flags]\n\n")
		fmt.Fprintf(os.Stderr, "A page with slide-out side panels. Drag the page with the mouse,\n")
		fmt.Fprintf(os.Stderr, "or press SPC for commands.\n\n")
		fmt.Fprintf(os.Stderr, "Flags:\n")
		flag.PrintDefaults()
	}
	flag.Parse()
	return opts
}

// registry lists the content a storyboard can name.
func registry() storyboard.Registry {
	pages := ui.DefaultPages()
	reg := storyboard.Registry{
		"menu":   func() (panel.Content, error) { return ui.NewMenuView(pages), nil },
		"status": func() (panel.Content, error) { return ui.NewInfoView(), nil },
	}
	for _, p := range pages {
		reg[strings.ToLower(p.Title)] = func() (panel.Content, error) { return ui.NewPageView(p), nil }
	}
	reg["home"] = reg[strings.ToLower(pages[0].Title)]
	return reg
}

func defaultStoryboard() *storyboard.Storyboard {
	return &storyboard.Storyboard{Segues: map[string]string{
		storyboard.CentralSegue: "home",
		storyboard.LeftSegue:    "menu",
		storyboard.RightSegue:   "status",
	}}
}

func run(opts options) error {
	loader := config.NewLoader(opts.configPath)
	cfg, err := loader.Load()
	if err != nil {
		return err
	}

	if cfg.UI.LogFile != "" {
		f, err := tea.LogToFile(cfg.UI.LogFile, "menucontainer")
		if err != nil {
			return fmt.Errorf("log file: %w", err)
		}
		defer f.Close()
	}

	ctx := context.Background()
	tp, err := telemetry.New(ctx, cfg.Telemetry.Endpoint, cfg.Telemetry.ServiceName)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := tp.Shutdown(shutdownCtx); err != nil {
			log.Printf("main: telemetry shutdown: %v", err)
		}
	}()

	sb := defaultStoryboard()
	path := opts.storyboard
	if path == "" {
		path = cfg.UI.Storyboard
	}
	if path != "" {
		if sb, err = storyboard.Load(path); err != nil {
			return err
		}
	}
	wiring, err := sb.Resolve(registry())
	if err != nil {
		return err
	}

	model, err := ui.NewAppModel(cfg, wiring,
		drawer.WithTracer(tp.Tracer()),
		drawer.WithContext(ctx),
	)
	if err != nil {
		var werr *drawer.WiringError
		if errors.As(err, &werr) {
			return fmt.Errorf("panel wiring: %w", err)
		}
		return err
	}
	model.Recorder = tp.Recorder()
	log.Printf("main: started config=%q storyboard=%q telemetry=%v", loader.File(), path, tp.Enabled())

	p := tea.NewProgram(model.AsTeaModel(), tea.WithAltScreen(), tea.WithMouseCellMotion())
	if loader.File() != "" {
		changes := loader.Watch()
		go func() {
			for c := range changes {
				p.Send(ui.ConfigChangedMsg{Config: c.Config, Err: c.Err})
			}
		}()
	}
	_, err = p.Run()
	return err
}

func main() {
	opts := parseFlags()
	if err := run(opts); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
