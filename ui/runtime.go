package ui

import (
	"bsp-inspector/bsp"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
)

func Start(path string, file bsp.Struct) error {
	lumpBrowser := CreateLumpBrowser(path, file)
	if err := tea.NewProgram(lumpBrowser).Start(); err != nil {
		return errors.Wrap(err, "ui.Start error")
	}
	return nil
}
