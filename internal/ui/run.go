package ui

import (
	"io"

	tea "github.com/charmbracelet/bubbletea"

	"spacelint/internal/driver"
)

// Run drives a driver operation while a progress view renders its events.
// op receives the sink to pass in driver.Options; the view closes once op
// returns.
func Run[T any](out io.Writer, title string, op func(sink driver.ProgressSink) (T, error)) (T, error) {
	type outcome struct {
		val T
		err error
	}
	events := make(chan driver.Event, 256)
	done := make(chan outcome, 1)

	go func() {
		val, err := op(driver.ChannelSink{Ch: events})
		close(events)
		done <- outcome{val: val, err: err}
	}()

	program := tea.NewProgram(NewProgressModel(title, nil, events), tea.WithOutput(out), tea.WithInput(nil))
	_, uiErr := program.Run()
	if uiErr != nil {
		// Keep draining so the worker never blocks on a full channel.
		for range events {
		}
	}
	res := <-done
	if uiErr != nil {
		return res.val, uiErr
	}
	return res.val, res.err
}
