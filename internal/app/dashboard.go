package app

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"weatherdash.app/internal/adapters/infrastructure"
	"weatherdash.app/internal/adapters/scratch"
	"weatherdash.app/internal/adapters/tui"
	"weatherdash.app/internal/config"
	"weatherdash.app/internal/core/dashboard"
	"weatherdash.app/internal/core/preferences"
	"weatherdash.app/internal/core/suggestion"
	"weatherdash.app/internal/core/weather"
	"weatherdash.app/internal/ports"
	"weatherdash.app/pkg/logger"
)

// Dashboard is the terminal front-end process. It logs to a file so the
// screen belongs to the TUI.
type Dashboard struct {
	config     *config.Config
	logger     *infrastructure.FileLoggerAdapter
	container  *DependencyContainer
	scratch    *scratch.SQLiteStore
	controller *dashboard.Controller
	notifier   *tui.Notifier
}

func NewDashboard(cfg *config.Config) (*Dashboard, error) {
	fileLogger, err := infrastructure.NewFileLoggerAdapter(cfg.Dashboard.LogFilePath, logger.ParseLevel(cfg.LogLevel))
	if err != nil {
		return nil, fmt.Errorf("open dashboard log: %w", err)
	}

	d := &Dashboard{config: cfg, logger: fileLogger, notifier: tui.NewNotifier()}
	if err := d.initialize(); err != nil {
		d.Close()
		return nil, err
	}
	return d, nil
}

func (d *Dashboard) initialize() error {
	container, err := NewDependencyContainer(d.config, DependencyOptions{Logger: d.logger, SkipCache: true, Quiet: true})
	if err != nil {
		return fmt.Errorf("create dependency container: %w", err)
	}
	d.container = container
	p := container.ApplicationPorts()

	store, err := scratch.Open(d.config.Dashboard.ScratchPath)
	if err != nil {
		return fmt.Errorf("open scratch store: %w", err)
	}
	d.scratch = store

	weatherUseCase, err := weather.NewUseCase(weather.UseCaseDependencies{
		WeatherProvider: p.WeatherProvider,
		Logger:          p.Logger,
		Metrics:         p.Metrics,
	})
	if err != nil {
		return fmt.Errorf("create weather use case: %w", err)
	}

	preferenceUseCase, err := preferences.NewUseCase(preferences.UseCaseDependencies{
		Repository: p.PreferenceRepository,
		Logger:     p.Logger,
		Metrics:    p.Metrics,
	})
	if err != nil {
		return fmt.Errorf("create preference use case: %w", err)
	}

	controller, err := dashboard.NewController(dashboard.ControllerDependencies{
		Weather:           weatherUseCase,
		Preferences:       preferenceUseCase,
		Geolocator:        p.Geolocator,
		Scratch:           store,
		Logger:            p.Logger,
		EnvironmentAPIKey: p.ConfigProvider.GetWeatherConfig().APIKey,
		OnChange:          d.notifier.Notify,
	})
	if err != nil {
		return fmt.Errorf("create dashboard controller: %w", err)
	}
	d.controller = controller

	p.Logger.Info("Dashboard initialized",
		ports.F("preferenceStore", d.config.Store.Type.String()),
		ports.F("scratchPath", d.config.Dashboard.ScratchPath))
	return nil
}

// Run shows the dashboard until the user quits or ctx is cancelled
func (d *Dashboard) Run(ctx context.Context) error {
	model, err := tui.NewModel(tui.ModelDependencies{
		Context:    ctx,
		Controller: d.controller,
		Suggester:  suggestion.NewEngine(nil),
		Notifier:   d.notifier,
	})
	if err != nil {
		return fmt.Errorf("create terminal model: %w", err)
	}

	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil && ctx.Err() == nil {
		return fmt.Errorf("run dashboard: %w", err)
	}
	return nil
}

// Close releases the scratch store, connections and the log file
func (d *Dashboard) Close() {
	if d.scratch != nil {
		if err := d.scratch.Close(); err != nil {
			d.logger.Warn("Error closing scratch store", ports.F("error", err))
		}
	}
	if d.container != nil {
		if err := d.container.Cleanup(); err != nil {
			d.logger.Warn("Error releasing resources", ports.F("error", err))
		}
	}
	_ = d.logger.Close()
}
