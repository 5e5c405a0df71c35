package app

import (
	"fmt"
	"image"
	"log"

	"github.com/jmigpin/scrollview/driver"
	"github.com/jmigpin/scrollview/util/fswatcher"
	"github.com/jmigpin/scrollview/util/imageutil"
	"github.com/jmigpin/scrollview/util/uiutil"
	"github.com/jmigpin/scrollview/util/uiutil/widget"
)

const margin = 10

// Window content: a root rectangle holding one viewport over an image.
type App struct {
	Root     *widget.Rectangle
	Ctx      *widget.Context
	Viewport *widget.Viewport
	Content  *widget.ImageBox

	opt *Options
}

func NewApp(opt *Options) (*App, error) {
	a := &App{opt: opt, Ctx: widget.NewContext()}

	a.Root = widget.NewRectangle("bg")
	theme := widget.DefaultTheme()
	if opt.isTerminal() {
		theme.ScrollTrack.Thickness = 2
		theme.ScrollTrack.IdleThickness = 1
	}
	a.Root.SetTheme(theme)

	img, err := a.contentImage()
	if err != nil {
		return nil, err
	}
	a.Viewport = widget.NewViewport(a.Ctx, a.Root, img.Bounds().Size(), opt.ViewSize)
	a.Viewport.Move(image.Point{a.margin(), a.margin()})
	a.Content = widget.NewImageBox(img)
	a.Viewport.Append(a.Content)
	return a, nil
}

func (a *App) margin() int {
	if a.opt.isTerminal() {
		return 1
	}
	return margin
}

func (a *App) contentImage() (*image.RGBA, error) {
	if a.opt.ImageFilename != "" {
		return LoadImage(a.opt.ImageFilename)
	}
	face := widget.TreeThemeFont(a.Root.Embed()).Face()
	fg := a.Root.TreeThemePaletteColor("fg")
	return GenerateContent(a.opt.ContentSize, face, fg), nil
}

//----------

// Fits the viewport and its tracks inside the window bounds.
func (a *App) Layout(r image.Rectangle) {
	st, _ := widget.TreeScrollTrackTheme(a.Root.Embed())
	m := a.margin()
	size := r.Size().Sub(image.Point{2*m + st.Thickness, 2*m + st.Thickness})
	size = imageutil.MaxPoint(size, image.Point{1, 1})
	a.Viewport.Move(r.Min.Add(image.Point{m, m}))
	a.Viewport.Resize(size)
}

// Reloads the content image. Keeps the current content on error.
func (a *App) Reload() error {
	img, err := a.contentImage()
	if err != nil {
		return err
	}
	a.Content.SetImage(img)
	a.Viewport.SetContentSize(img.Bounds().Size())
	a.Viewport.MarkNeedsPaint()
	return nil
}

//----------

func Run(opt *Options) error {
	a, err := NewApp(opt)
	if err != nil {
		return err
	}

	win, err := driver.NewWindow(opt.Driver)
	if err != nil {
		return fmt.Errorf("window: %w", err)
	}

	ui := uiutil.NewBasicUI(win, opt.WindowName, a.Root, a.Ctx)
	defer ui.Close()
	ui.OnResize = a.Layout

	a.Viewport.ViewRectChanged.Connect(func(r image.Rectangle) {
		win.SetWindowName(fmt.Sprintf("%s %v", opt.WindowName, r.Min))
	})

	if opt.Watch && opt.ImageFilename != "" {
		w, err := fswatcher.NewFileWatcher(opt.ImageFilename)
		if err != nil {
			return fmt.Errorf("watch: %w", err)
		}
		defer w.Close()
		go watchLoop(w, ui, a)
	}

	ui.EventLoop()
	return nil
}

// Reloads on the UI goroutine.
func watchLoop(w *fswatcher.FileWatcher, ui *uiutil.BasicUI, a *App) {
	for ev := range w.Events() {
		switch t := ev.(type) {
		case error:
			log.Print(t)
		case *fswatcher.Event:
			ui.RunOnUIThread(func() {
				if err := a.Reload(); err != nil {
					log.Print(err)
				}
			})
		}
	}
}
