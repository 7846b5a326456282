package app

import (
	"context"
	"fmt"
	"time"

	tea "charm.land/bubbletea/v2"
	"charm.land/lipgloss/v2"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/weakspot/internal/reference"
	"github.com/abhisek/weakspot/internal/router"
	"github.com/abhisek/weakspot/internal/screen"
	"github.com/abhisek/weakspot/internal/screens/dashboard"
	"github.com/abhisek/weakspot/internal/screens/diagnosis"
	"github.com/abhisek/weakspot/internal/screens/feedback"
	"github.com/abhisek/weakspot/internal/screens/login"
	"github.com/abhisek/weakspot/internal/screens/nofocus"
	"github.com/abhisek/weakspot/internal/screens/pack"
	quizscreen "github.com/abhisek/weakspot/internal/screens/quiz"
	"github.com/abhisek/weakspot/internal/screens/ratings"
	"github.com/abhisek/weakspot/internal/session"
	"github.com/abhisek/weakspot/internal/store"
	"github.com/abhisek/weakspot/internal/studypack"
	"github.com/abhisek/weakspot/internal/ui/layout"
)

// notesPollInterval is how often the package view checks for AI notes.
const notesPollInterval = 250 * time.Millisecond

// Options holds the dependencies of the TUI. Every field is optional.
type Options struct {
	SessionID string
	// Events persists ratings and quiz results when set.
	Events store.EventRepo
	// Notes generates AI study notes when it has a provider.
	Notes *studypack.Service
	// ReferencePath is the reference CSV. Empty uses the built-in sample.
	ReferencePath string
	Logger        *zap.Logger
}

// referenceLoadedMsg carries the background reference load.
type referenceLoadedMsg struct {
	Summary *reference.Summary
	Err     error
}

// notesTickMsg polls the notes service.
type notesTickMsg struct{}

// effects runs the side effects of session transitions.
type effects struct {
	ctx     context.Context
	opts    Options
	logger  *zap.Logger
	polling bool
}

// AppModel is the root Bubble Tea model.
type AppModel struct {
	fx     *effects
	router *router.Router
	width  int
	height int
}

func newAppModel(ctx context.Context, opts Options) AppModel {
	if opts.SessionID == "" {
		opts.SessionID = uuid.NewString()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	fx := &effects{
		ctx:    ctx,
		opts:   opts,
		logger: logger.With(zap.String("session_id", opts.SessionID)),
	}
	return AppModel{
		fx:     fx,
		router: router.New(session.New(opts.SessionID), fx.newScreen, fx.onTransition),
	}
}

func (m AppModel) Init() tea.Cmd {
	return tea.Batch(m.router.Init(), m.fx.loadReference())
}

func (m AppModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyPressMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

	case referenceLoadedMsg:
		return m, m.router.Apply(session.ReferenceLoaded{Summary: msg.Summary, Err: msg.Err})

	case notesTickMsg:
		return m, m.pollNotes()
	}

	return m, m.router.Update(msg)
}

// pollNotes forwards finished notes to the package screen. Polling stops
// once notes arrive or the learner leaves the package view.
func (m AppModel) pollNotes() tea.Cmd {
	if res, ok := m.fx.opts.Notes.ConsumeNotes(); ok {
		m.fx.polling = false
		if res.Err != nil {
			m.fx.logger.Warn("study notes failed", zap.Error(res.Err))
		}
		return m.router.Update(pack.NotesMsg{Result: res})
	}
	if m.router.State().View != session.ViewPackage {
		m.fx.polling = false
		return nil
	}
	return notesTick()
}

func notesTick() tea.Cmd {
	return tea.Tick(notesPollInterval, func(time.Time) tea.Msg { return notesTickMsg{} })
}

func (m AppModel) View() tea.View {
	v := tea.NewView(m.frame())
	v.AltScreen = true
	return v
}

// frame renders header, active screen and footer for the current size.
func (m AppModel) frame() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	if layout.IsTooSmall(m.width, m.height) {
		return layout.RenderMinSizeMessage(m.width, m.height)
	}

	title := ""
	var hints []layout.KeyHint
	if active := m.router.Active(); active != nil {
		title = active.Title()
		if hp, ok := active.(screen.KeyHintProvider); ok {
			hints = hp.KeyHints()
		}
	}
	hints = append(hints, layout.KeyHint{Key: "Ctrl+C", Description: "Quit"})

	header := layout.RenderHeader(title, m.router.State().Learner, m.width)
	footer := layout.RenderFooter(hints, m.width)

	contentHeight := max(m.height-lipgloss.Height(header)-lipgloss.Height(footer), 0)
	content := m.router.View(m.width, contentHeight)

	return layout.RenderFrame(header, content, footer, m.width, m.height)
}

// newScreen maps a rendered view model to its screen.
func (fx *effects) newScreen(model session.Screen) screen.Screen {
	switch m := model.(type) {
	case session.LoginScreen:
		return login.New(m)
	case session.SubjectFormScreen:
		return ratings.New(m)
	case session.DiagnosisScreen:
		return diagnosis.New(m)
	case session.PackageScreen:
		return pack.New(m, fx.opts.Notes.Enabled())
	case session.QuizScreen:
		return quizscreen.New(m)
	case session.FeedbackScreen:
		return feedback.New(m)
	case session.DashboardScreen:
		return dashboard.New(m)
	case session.NoSubjectInFocus:
		return nofocus.New(m)
	default:
		panic(fmt.Sprintf("app: no screen for %T", model))
	}
}

// onTransition persists submissions and results and starts notes
// generation when a subject's package opens.
func (fx *effects) onTransition(prev, next session.State, e session.Event) tea.Cmd {
	if next.Notice != "" && next.Notice != prev.Notice {
		fx.logger.Debug("event not applied", zap.String("event", fmt.Sprintf("%T", e)), zap.String("view", prev.View.String()))
	}

	var cmds []tea.Cmd
	if _, ok := e.(session.RatingsSubmitted); ok && next.View == session.ViewDiagnosis && prev.View != session.ViewDiagnosis {
		cmds = append(cmds, fx.persistDiagnosis(next))
	}
	if next.Result != nil && prev.Result != next.Result {
		cmds = append(cmds, fx.persistResult(next))
	}
	if next.View == session.ViewPackage && (prev.View != session.ViewPackage || prev.Focus != next.Focus) {
		cmds = append(cmds, fx.requestNotes(next))
	}
	return tea.Batch(cmds...)
}

func (fx *effects) persistDiagnosis(s session.State) tea.Cmd {
	repo := fx.opts.Events
	if repo == nil {
		return nil
	}
	submission := uuid.NewString()
	perfs := s.Performances
	return func() tea.Msg {
		for _, p := range perfs {
			err := repo.AppendDiagnosis(fx.ctx, store.DiagnosisEventData{
				SessionID:    s.SessionID,
				SubmissionID: submission,
				Learner:      s.Learner,
				SubjectID:    p.ID,
				SubjectName:  p.Name,
				Difficulty:   p.Difficulty,
				Confidence:   p.Confidence,
				IsWeak:       p.IsWeak,
			})
			if err != nil {
				fx.logger.Error("failed to record diagnosis", zap.String("subject", p.Name), zap.Error(err))
				return nil
			}
		}
		fx.logger.Info("diagnosis recorded", zap.String("submission_id", submission), zap.Int("subjects", len(perfs)))
		return nil
	}
}

func (fx *effects) persistResult(s session.State) tea.Cmd {
	repo := fx.opts.Events
	if repo == nil {
		return nil
	}
	r := *s.Result
	return func() tea.Msg {
		err := repo.AppendQuizResult(fx.ctx, store.QuizEventData{
			SessionID:      s.SessionID,
			Learner:        s.Learner,
			SubjectID:      r.SubjectID,
			SubjectName:    r.SubjectName,
			Score:          r.Score,
			TotalQuestions: r.TotalQuestions,
			PassMark:       r.PassMark,
			Band:           string(r.Band),
		})
		if err != nil {
			fx.logger.Error("failed to record quiz result", zap.String("subject", r.SubjectName), zap.Error(err))
			return nil
		}
		fx.logger.Info("quiz result recorded",
			zap.String("subject", r.SubjectName),
			zap.Int("score", r.Score),
			zap.String("band", string(r.Band)),
		)
		return nil
	}
}

func (fx *effects) requestNotes(s session.State) tea.Cmd {
	if !fx.opts.Notes.Enabled() {
		return nil
	}
	subject, ok := s.FocusedSubject()
	if !ok {
		return nil
	}
	input := studypack.NotesInput{
		Subject:    subject.Name,
		Difficulty: subject.Difficulty,
		Confidence: subject.Confidence,
		IsWeak:     subject.IsWeak,
		Topics:     studypack.Build(subject.Name).Topics,
	}
	if r, ok := s.LastResult(subject.ID); ok {
		input.LastResult = &r
	}
	fx.opts.Notes.RequestNotes(fx.ctx, input)
	if fx.polling {
		return nil
	}
	fx.polling = true
	return notesTick()
}

func (fx *effects) loadReference() tea.Cmd {
	path := fx.opts.ReferencePath
	return func() tea.Msg {
		start := time.Now()
		ds, err := reference.Load(fx.ctx, path)
		if err != nil {
			fx.logger.Warn("reference data unavailable", zap.String("path", path), zap.Error(err))
			return referenceLoadedMsg{Err: err}
		}
		sum := reference.Summarize(ds.Records)
		fx.logger.Info("reference data loaded",
			zap.String("source", ds.Source),
			zap.Int("records", len(ds.Records)),
			zap.Int("skipped", ds.Skipped),
			zap.Int("unknown_bands", ds.UnknownBands),
			zap.Duration("elapsed", time.Since(start)),
		)
		return referenceLoadedMsg{Summary: &sum}
	}
}

// Run starts the Bubble Tea program and blocks until it exits.
func Run(ctx context.Context, opts Options) error {
	p := tea.NewProgram(newAppModel(ctx, opts), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running tui: %w", err)
	}
	return nil
}
