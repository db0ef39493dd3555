package ui

import (
	"fmt"

	"bsp-inspector/bsp"
	"bsp-inspector/bsp/blump"
	"bsp-inspector/ds"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/samber/lo"
)

const (
	DefaultPageSize = 16
	headerLines     = 6
)

// LumpBrowser lists the lump directory of one decoded file and lets the user
// scroll through it.
type LumpBrowser struct {
	path      string
	file      bsp.Struct
	cursor    int
	pageSize  int
	hideEmpty bool
}

func CreateLumpBrowser(path string, file bsp.Struct) LumpBrowser {
	return LumpBrowser{
		path:     path,
		file:     file,
		cursor:   0,
		pageSize: DefaultPageSize,
	}
}

// visibleIndexes returns the lump indexes that are listed, in order.
func (s LumpBrowser) visibleIndexes() []int {
	indexes := ds.MakeRange(0, blump.NumLumps, 1)
	if !s.hideEmpty {
		return indexes
	}
	return lo.Filter(
		indexes,
		func(index int, _ int) bool {
			return !s.file.Header.Lumps[index].IsEmpty()
		},
	)
}

// Selected returns the lump index under the cursor, or -1 when nothing is listed.
func (s LumpBrowser) Selected() int {
	indexes := s.visibleIndexes()
	if len(indexes) == 0 {
		return -1
	}
	return indexes[s.cursor]
}

func (s LumpBrowser) clampCursor(cursor int) int {
	last := len(s.visibleIndexes()) - 1
	if cursor > last {
		cursor = last
	}
	if cursor < 0 {
		cursor = 0
	}
	return cursor
}

func (s LumpBrowser) View() string {
	header := s.file.Header
	output := "BSP INSPECTOR\n\n"
	output += "File: " + s.path + "\n"
	output += fmt.Sprintf(
		"Ident: %q  Version: %d  Map revision: %d\n",
		header.IdentString(), header.Version, header.MapRevision,
	)
	output += "Digest: " + s.file.Digest + "\n\n"

	indexes := s.visibleIndexes()
	if len(indexes) == 0 {
		output += "No lump points anywhere.\n"
	}
	start := s.cursor - s.cursor%s.pageSize
	end := lo.Min([]int{start + s.pageSize, len(indexes)})
	for i := start; i < end; i++ {
		marker := "  "
		if i == s.cursor {
			marker = "> "
		}
		index := indexes[i]
		output += marker + bsp.DescribeLump(index, header.Lumps[index]) + "\n"
	}

	filter := "all lumps"
	if s.hideEmpty {
		filter = "non-empty lumps"
	}
	output += fmt.Sprintf(
		"\n%d/%d (%s) | up/down: move, e: toggle empty, q: quit\n",
		lo.Min([]int{s.cursor + 1, len(indexes)}), len(indexes), filter,
	)
	return output
}

func (s LumpBrowser) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		if msg.Height > headerLines+3 {
			s.pageSize = msg.Height - headerLines - 3
		}
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return s, tea.Quit
		case "up", "k":
			s.cursor = s.clampCursor(s.cursor - 1)
		case "down", "j":
			s.cursor = s.clampCursor(s.cursor + 1)
		case "home", "g":
			s.cursor = 0
		case "end", "G":
			s.cursor = s.clampCursor(blump.NumLumps)
		case "e":
			selected := s.Selected()
			s.hideEmpty = !s.hideEmpty
			s.cursor = s.clampCursor(lo.IndexOf(s.visibleIndexes(), selected))
		}
	}
	return s, nil
}

func (s LumpBrowser) Init() tea.Cmd {
	return nil
}
