package bootstrap

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"

	historyinadapter "innerwork/internal/modules/history/adapter/in"
	historyin "innerwork/internal/modules/history/port/in"
	historyusecase "innerwork/internal/modules/history/usecase"
	insightsinadapter "innerwork/internal/modules/insights/adapter/in"
	insightsin "innerwork/internal/modules/insights/port/in"
	insightsusecase "innerwork/internal/modules/insights/usecase"
	journalinadapter "innerwork/internal/modules/journal/adapter/in"
	journaloutadapter "innerwork/internal/modules/journal/adapter/out"
	journalin "innerwork/internal/modules/journal/port/in"
	journalservice "innerwork/internal/modules/journal/service"
	journalusecase "innerwork/internal/modules/journal/usecase"
	recorderinadapter "innerwork/internal/modules/recorder/adapter/in"
	recorderoutadapter "innerwork/internal/modules/recorder/adapter/out"
	recorderservice "innerwork/internal/modules/recorder/service"
	recorderusecase "innerwork/internal/modules/recorder/usecase"
	ritualinadapter "innerwork/internal/modules/ritual/adapter/in"
	ritualoutadapter "innerwork/internal/modules/ritual/adapter/out"
	ritualin "innerwork/internal/modules/ritual/port/in"
	ritualservice "innerwork/internal/modules/ritual/service"
	ritualusecase "innerwork/internal/modules/ritual/usecase"
	"innerwork/internal/platform/clock"
	"innerwork/internal/platform/config"
	"innerwork/internal/platform/id"
	uiapp "innerwork/internal/ui/app"
)

type App struct {
	JournalCLI  journalinadapter.CLIHandler
	RitualCLI   ritualinadapter.CLIHandler
	HistoryCLI  historyinadapter.CLIHandler
	InsightsCLI insightsinadapter.CLIHandler
	RecorderCLI recorderinadapter.CLIHandler

	journal  journalin.Usecase
	ritual   ritualin.Usecase
	history  historyin.Usecase
	insights insightsin.Usecase
}

func New(cfg config.Config) (*App, error) {
	clk := clock.SystemClock{}
	ids := id.RandomHex{}

	entryProjector, err := journaloutadapter.NewSQLiteEntryProjector(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("new entry projector: %w", err)
	}
	journalUC := journalusecase.NewInteractor(
		journalservice.NewJournalService(clk, ids),
		journaloutadapter.NewVaultEntryStore(cfg.JournalPath),
		entryProjector,
		journaloutadapter.NewFilePromptStateStore(cfg.StatePath),
		journaloutadapter.NewFileMediaStore(cfg.MediaPath),
	)

	sessionProjector, err := ritualoutadapter.NewSQLiteSessionProjector(cfg.DBPath)
	if err != nil {
		return nil, fmt.Errorf("new session projector: %w", err)
	}
	ritualUC := ritualusecase.NewInteractor(
		ritualservice.NewRitualService(clk, ids),
		ritualoutadapter.NewVaultSessionStore(cfg.JournalPath),
		sessionProjector,
		ritualoutadapter.NewFileDayStateStore(cfg.StatePath),
	)

	historyUC := historyusecase.NewInteractor(journalUC, ritualUC)
	insightsUC := insightsusecase.NewInteractor(journalUC, ritualUC, clk)

	recorderUC := recorderusecase.NewInteractor(recorderservice.NewRecorderService(
		recorderoutadapter.NewFileManifestStore(cfg.JournalPath),
		recorderoutadapter.NewGRPCHost(),
	))

	return &App{
		JournalCLI:  journalinadapter.NewCLIHandler(journalUC),
		RitualCLI:   ritualinadapter.NewCLIHandler(ritualUC),
		HistoryCLI:  historyinadapter.NewCLIHandler(historyUC),
		InsightsCLI: insightsinadapter.NewCLIHandler(insightsUC),
		RecorderCLI: recorderinadapter.NewCLIHandler(recorderUC),
		journal:     journalUC,
		ritual:      ritualUC,
		history:     historyUC,
		insights:    insightsUC,
	}, nil
}

func RunTUI(journalPath string, app *App) error {
	model := uiapp.NewModel(journalPath, app.journal, app.ritual, app.history, app.insights)
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err := program.Run()
	return err
}
