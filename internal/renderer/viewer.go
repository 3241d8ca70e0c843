package renderer

import "github.com/pkg/browser"

// Viewer shows a rendered chart file to the user.
type Viewer interface {
	Open(path string) error
}

// BrowserViewer opens charts with the desktop's default handler for the file type.
type BrowserViewer struct{}

func (BrowserViewer) Open(path string) error {
	return browser.OpenFile(path)
}
