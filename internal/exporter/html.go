package exporter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/nikbrunner/todo/internal/model"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// Options controls the static text of the rendered page.
type Options struct {
	Title       string
	Placeholder string
}

// DefaultOptions returns the labels used by the interactive UI.
func DefaultOptions() Options {
	return Options{
		Title:       "Todo App",
		Placeholder: "What do you want to do?",
	}
}

// DefaultExportPath returns the default export file path inside dir.
// An empty dir means ~/Downloads.
// Format: todo-export-YYYY-MM-DD.html
func DefaultExportPath(dir string) (string, error) {
	if dir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", err
		}
		dir = filepath.Join(home, "Downloads")
	}
	filename := fmt.Sprintf("todo-export-%s.html", time.Now().Format("2006-01-02"))
	return filepath.Join(dir, filename), nil
}

// RenderHTML renders the list as the element tree of the todo page:
// heading, new-item input with add button, clear-all button, and one
// <li> per item holding either its text or its edit field.
func RenderHTML(list model.List, opts Options) (string, error) {
	body := element(atom.Div, nil)
	body.AppendChild(element(atom.H1, nil, text(opts.Title)))
	body.AppendChild(element(atom.Input, []html.Attribute{
		{Key: "placeholder", Val: opts.Placeholder},
		{Key: "value", Val: list.Input},
	}))
	body.AppendChild(element(atom.Button, nil, text("Add Todo")))
	body.AppendChild(element(atom.Div, nil,
		element(atom.Button, nil, text("Delete all Todos!")),
	))

	ul := element(atom.Ul, nil)
	for _, todo := range list.Items {
		ul.AppendChild(renderItem(todo))
	}
	body.AppendChild(ul)

	doc := &html.Node{Type: html.DocumentNode}
	doc.AppendChild(&html.Node{Type: html.DoctypeNode, Data: "html"})
	doc.AppendChild(element(atom.Html, nil,
		element(atom.Head, nil,
			element(atom.Meta, []html.Attribute{{Key: "charset", Val: "utf-8"}}),
			element(atom.Title, nil, text(opts.Title)),
		),
		element(atom.Body, nil, body),
	))

	var b strings.Builder
	if err := html.Render(&b, doc); err != nil {
		return "", fmt.Errorf("render html: %w", err)
	}
	b.WriteString("\n")
	return b.String(), nil
}

// renderItem renders one <li>: the text span, or the edit field while editing.
func renderItem(todo model.Todo) *html.Node {
	var content *html.Node
	if todo.Editing {
		content = element(atom.Input, []html.Attribute{
			{Key: "type", Val: "text"},
			{Key: "value", Val: todo.Draft},
		})
	} else {
		content = element(atom.Span, nil, text(todo.Text))
	}

	return element(atom.Li, []html.Attribute{{Key: "data-id", Val: todo.ID}},
		content,
		element(atom.Button, nil, text("X")),
	)
}

func element(a atom.Atom, attrs []html.Attribute, children ...*html.Node) *html.Node {
	n := &html.Node{
		Type:     html.ElementNode,
		DataAtom: a,
		Data:     a.String(),
		Attr:     attrs,
	}
	for _, c := range children {
		n.AppendChild(c)
	}
	return n
}

func text(s string) *html.Node {
	return &html.Node{Type: html.TextNode, Data: s}
}

// WriteHTML renders the list and writes it to path, creating the directory.
func WriteHTML(path string, list model.List, opts Options) error {
	doc, err := RenderHTML(list, opts)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("create export dir: %w", err)
	}
	if err := os.WriteFile(path, []byte(doc), 0644); err != nil {
		return fmt.Errorf("write export: %w", err)
	}
	return nil
}
