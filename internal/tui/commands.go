package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/nikbrunner/todo/internal/exporter"
	"github.com/nikbrunner/todo/internal/model"
)

// yankedMsg reports the result of a clipboard write.
type yankedMsg struct {
	text string
	err  error
}

// exportedMsg reports the result of an HTML export.
type exportedMsg struct {
	path string
	err  error
}

// yankCmd copies text to the clipboard outside the update loop.
func yankCmd(copyText func(string) error, text string) tea.Cmd {
	return func() tea.Msg {
		return yankedMsg{text: text, err: copyText(text)}
	}
}

// exportCmd writes a snapshot of the list as HTML outside the update loop.
func exportCmd(list model.List, opts Options) tea.Cmd {
	return func() tea.Msg {
		path, err := exporter.DefaultExportPath(opts.ExportDir)
		if err != nil {
			return exportedMsg{err: fmt.Errorf("export path: %w", err)}
		}
		err = exporter.WriteHTML(path, list, exporter.Options{
			Title:       opts.Title,
			Placeholder: opts.Placeholder,
		})
		return exportedMsg{path: path, err: err}
	}
}

func (a *App) handleYanked(msg yankedMsg) {
	if msg.err != nil {
		a.logger.Error("clipboard write failed", "err", msg.err)
		a.setStatus(fmt.Sprintf("Copy failed: %v", msg.err), true)
		return
	}
	a.setStatus(fmt.Sprintf("Copied %q", msg.text), false)
}

func (a *App) handleExported(msg exportedMsg) {
	if msg.err != nil {
		a.logger.Error("export failed", "err", msg.err)
		a.setStatus(fmt.Sprintf("Export failed: %v", msg.err), true)
		return
	}
	a.logger.Info("exported", "path", msg.path, "items", a.list.Len())
	a.setStatus("Exported to "+msg.path, false)
}

func (a *App) setStatus(text string, isError bool) {
	a.status = text
	a.statusError = isError
}
