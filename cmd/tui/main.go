package main

import (
	"context"
	"flag"
	"log"
	"os/signal"
	"syscall"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rovshanmuradov/marginal/internal/config"
	"github.com/rovshanmuradov/marginal/internal/logger"
	"github.com/rovshanmuradov/marginal/internal/ui"
	"github.com/rovshanmuradov/marginal/internal/ui/screen"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// AppModel represents the main TUI application model
type AppModel struct {
	calculator *screen.CalculatorScreen
	width      int
	height     int
}

// NewAppModel creates a new application model
func NewAppModel(calculator *screen.CalculatorScreen) *AppModel {
	return &AppModel{calculator: calculator}
}

// Init initializes the application
func (m *AppModel) Init() tea.Cmd {
	return m.calculator.Init()
}

// Update handles application-level updates
func (m *AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if size, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = size.Width
		m.height = size.Height
	}

	_, cmd := m.calculator.Update(msg)
	return m, cmd
}

// View renders the application
func (m *AppModel) View() string {
	if m.width == 0 || m.height == 0 {
		return "Initializing..."
	}
	return m.calculator.View()
}

func main() {
	configPath := flag.String("config", "configs/config.json", "Path to config file")
	flag.Parse()

	rootCtx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.LoadConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger, closeLog, err := logger.CreateTUILogger(cfg.DebugLogging, cfg.LogFile)
	if err != nil {
		log.Fatalf("Failed to init logger: %v", err)
	}
	defer func() {
		_ = closeLog()
	}()

	appLogger.Info("Starting margin calculator TUI",
		zap.String("default_leverage", cfg.DefaultLeverage),
		zap.String("default_order", cfg.DefaultOrder))

	// A crashed UI comes back with a fresh, empty form.
	recovery := ui.NewRecoveryHandler(appLogger, func() (tea.Model, []tea.ProgramOption) {
		calculator := screen.NewCalculatorScreen(cfg.InitialForm(), appLogger)
		return ui.NewSafeUIWrapper(NewAppModel(calculator), appLogger), []tea.ProgramOption{
			tea.WithAltScreen(),
			tea.WithoutSignalHandler(),
		}
	})

	g, ctx := errgroup.WithContext(rootCtx)
	g.Go(func() error {
		defer stop()
		return recovery.RunWithRecovery()
	})
	g.Go(func() error {
		<-ctx.Done()
		recovery.Stop()
		return nil
	})

	if err := g.Wait(); err != nil {
		appLogger.Error("TUI application failed", zap.Error(err))
		return
	}
	appLogger.Info("Shutting down TUI application")
}
