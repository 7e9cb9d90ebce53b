package tui

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"

	list "github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"

	"sgthelper/internal/watch"
)

type fileItem struct {
	title, desc string
	path        string
}

func (f fileItem) Title() string       { return f.title }
func (f fileItem) Description() string { return f.desc }
func (f fileItem) FilterValue() string { return f.title }

// inputExts are the extensions offered by the file sidebar.
var inputExts = map[string]bool{".txt": true, ".sgt": true, ".in": true, ".dat": true, "": true}

func (m *Model) refreshDir() {
	entries, err := os.ReadDir(m.cwd)
	if err != nil {
		m.status = "read dir error: " + err.Error()
		return
	}
	var items []list.Item
	for _, e := range entries {
		name := e.Name()
		if e.IsDir() || strings.HasPrefix(name, ".") {
			continue
		}
		ext := strings.ToLower(filepath.Ext(name))
		if inputExts[ext] {
			items = append(items, fileItem{title: name, desc: ext, path: filepath.Join(m.cwd, name)})
		}
	}
	sort.SliceStable(items, func(i, j int) bool { return items[i].(fileItem).Title() < items[j].(fileItem).Title() })
	m.l.SetItems(items)
	if len(items) == 0 {
		m.status = "no input files in current directory"
	}
}

// loadFile replaces an editor's text with the file at p.
func (m *Model) loadFile(editor int, p string) bool {
	data, err := os.ReadFile(p)
	if err != nil {
		m.status = "load error: " + err.Error()
		log.Printf("load: %v", err)
		return false
	}
	m.editors[editor].SetValue(strings.TrimRight(string(data), "\n"))
	m.paths[editor] = p
	m.status = fmt.Sprintf("loaded %s into %s", filepath.Base(p), editorRoles[editor])
	return true
}

type fileChangedMsg watch.Change

// waitForChange blocks on the watcher for the next file change.
func (m Model) waitForChange() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	ch, done := m.watcher.Changes(), m.watcher.Done()
	return func() tea.Msg {
		select {
		case c, ok := <-ch:
			if !ok {
				return nil
			}
			return fileChangedMsg(c)
		case <-done:
			return nil
		}
	}
}

func (m *Model) applyChange(c fileChangedMsg) {
	for i, role := range editorRoles {
		if role == c.Role {
			if m.loadFile(i, c.Path) {
				m.render()
				m.status = "reloaded " + filepath.Base(c.Path) + ": " + m.status
			}
			return
		}
	}
}
