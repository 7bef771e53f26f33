package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/datasheet"
	"github.com/iw2rmb/datasheet/internal/sheetfile"
	"github.com/iw2rmb/datasheet/internal/watch"
	"github.com/iw2rmb/datasheet/sheet"
)

func main() {
	var (
		path        = flag.String("file", "", "sheet to open (.toml or .csv)")
		watchFile   = flag.Bool("watch", false, "reload the sheet when it changes on disk")
		logPath     = flag.String("log", "", "write debug logs to this file")
		showVersion = flag.Bool("version", false, "print the version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Println(datasheet.VersionTag())
		return
	}
	if err := run(*path, *watchFile, *logPath); err != nil {
		_, _ = os.Stderr.WriteString(err.Error() + "\n")
		os.Exit(1)
	}
}

func run(path string, watchFile bool, logPath string) error {
	if logPath != "" {
		f, err := tea.LogToFile(logPath, "datasheet")
		if err != nil {
			return err
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	doc := sampleSheet()
	if path != "" {
		s, err := sheetfile.Load(path)
		switch {
		case err == nil:
			doc = s
		case errors.Is(err, os.ErrNotExist):
			log.Printf("%s does not exist, starting from the sample sheet", path)
		default:
			return err
		}
	}

	var clip sheet.Clipboard
	if sys := (sheet.SystemClipboard{}); sys.Available() {
		clip = sys
	} else {
		log.Printf("no system clipboard, using an in-process one")
		clip = &localClipboard{}
	}

	m := newModel(doc, path, clip)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	if watchFile && path != "" {
		w, err := watch.Start(ctx, path, 0)
		if err != nil {
			return err
		}
		m.watcher = w
	}

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion())
	_, err := p.Run()
	return err
}

// localClipboard backs copy and paste when no system clipboard is present.
type localClipboard struct {
	text string
}

func (c *localClipboard) ReadText() (string, error) { return c.text, nil }
func (c *localClipboard) WriteText(s string) error  { c.text = s; return nil }
