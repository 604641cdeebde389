package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"weatherdash.app/internal/core/dashboard"
)

// stateChangedMsg tells the model to re-read the controller state
type stateChangedMsg struct{}

// settledMsg is sent when a dispatched event chain has finished
type settledMsg struct{}

// Notifier bridges controller state changes into the bubbletea loop. Bursts
// of changes coalesce into one pending signal; the model always renders the
// controller's latest state.
type Notifier struct {
	ch chan struct{}
}

func NewNotifier() *Notifier {
	return &Notifier{ch: make(chan struct{}, 1)}
}

// Notify is suitable as dashboard.ControllerDependencies.OnChange
func (n *Notifier) Notify(dashboard.State) {
	select {
	case n.ch <- struct{}{}:
	default:
	}
}

func (n *Notifier) wait() tea.Cmd {
	return func() tea.Msg {
		<-n.ch
		return stateChangedMsg{}
	}
}
