package main

import (
	"context"

	tea "github.com/charmbracelet/bubbletea"

	"rtlil/internal/driver"
	"rtlil/internal/ui"
)

type checkOutcome struct {
	result *driver.CheckResult
	err    error
}

// runCheckWithUI runs CheckFiles in the background and renders its events
// until the run finishes.
func runCheckWithUI(ctx context.Context, title string, files []string, opts driver.CheckOptions) (*driver.CheckResult, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan checkOutcome, 1)

	go func() {
		opts.Progress = driver.ChannelSink{Ch: events}
		res, err := driver.CheckFiles(ctx, files, opts)
		outcomeCh <- checkOutcome{result: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(title, files, events)
	program := tea.NewProgram(model, tea.WithContext(ctx))
	_, uiErr := program.Run()
	// UI закрылся раньше времени (ctrl+c): останавливаем проверку и дочитываем
	// события, иначе воркеры встанут на полном канале
	cancel()
	go func() {
		for range events {
		}
	}()
	outcome := <-outcomeCh
	if uiErr != nil && outcome.err == nil {
		return outcome.result, uiErr
	}
	return outcome.result, outcome.err
}
