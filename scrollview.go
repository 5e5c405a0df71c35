// Scrollable view over a large image, with animated scroll tracks.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/jmigpin/scrollview/app"
	"github.com/jmigpin/scrollview/util/flagutil"
	"github.com/jmigpin/scrollview/util/uiutil/widget"
)

func main() {
	log.SetFlags(log.Llongfile)

	opt := app.DefaultOptions()
	flag.StringVar(&opt.Driver, "driver", "x11", "window driver: x11 or tcell")
	flag.Var(flagutil.SizeFlag(&opt.ViewSize), "size", "initial view size, WxH")
	flag.Var(flagutil.SizeFlag(&opt.ContentSize), "content", "generated content size, WxH")
	flag.StringVar(&opt.ImageFilename, "image", "", "png/jpeg `filename` to show instead of the generated content")
	flag.BoolVar(&opt.Watch, "watch", false, "reload the image when the file changes")
	flag.Var(flagutil.BoolFuncFlag(func(s string) error {
		widget.SetVerbose(s == "true")
		return nil
	}), "verbose", "log widget state transitions")
	flag.Parse()

	if err := app.Run(opt); err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}
