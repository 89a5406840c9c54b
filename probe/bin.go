package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	"github.com/ZenLiuCN/dlfcn"
	"github.com/ZenLiuCN/dlfcn/pool"
	"github.com/davecgh/go-spew/spew"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		log.Fatalf("failure %s", err)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Usage = "dynamic library probe"
	app.Name = "probe"
	app.Description = "load dynamic libraries and resolve their exports through dlfcn"
	app.Flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "debug",
			Aliases: []string{"d"},
		},
		&cli.BoolFlag{
			Name:  "dump",
			Usage: "dump results",
		},
	}
	app.Before = func(ctx *cli.Context) error {
		dlfcn.SetDebug(ctx.Bool("debug"))
		return nil
	}
	app.Commands = []*cli.Command{
		{
			Name:   "open",
			Action: open,
			Usage:  "try to load each library, the search path can be extended by DLFCN_PATH",
			Args:   true,
		},
		{
			Name:   "sym",
			Action: sym,
			Flags: []cli.Flag{
				&cli.StringFlag{Name: "lib", Aliases: []string{"l"}, Usage: "library to search, main image when omitted"},
			},
			Usage: "resolve symbol names or ordinals",
			Args:  true,
		},
		{
			Name:   "ordinal",
			Action: ordinal,
			Usage:  "show how each argument is looked up",
			Args:   true,
		},
	}
	return app
}

type result struct {
	Name    string
	Path    string
	Symbol  string
	Address uintptr
	Error   string
}

func report(ctx *cli.Context, r result) {
	if ctx.Bool("dump") {
		spew.Fdump(ctx.App.Writer, r)
		return
	}
	switch {
	case r.Error != "":
		_, _ = fmt.Fprintf(ctx.App.Writer, "%s\t%s\n", r.Name, r.Error)
	case r.Symbol != "":
		_, _ = fmt.Fprintf(ctx.App.Writer, "%s\t%s\t0x%x\n", r.Name, r.Symbol, r.Address)
	default:
		_, _ = fmt.Fprintf(ctx.App.Writer, "%s\t%s\n", r.Name, r.Path)
	}
}

// lookupPath find name under DLFCN_PATH or beside the executable, else returns name for the native search.
func lookupPath(name string) string {
	if name == "" || filepath.IsAbs(name) {
		return name
	}
	var paths []string
	if v := os.Getenv("DLFCN_PATH"); v != "" {
		paths = append(paths, filepath.SplitList(v)...)
	}
	if execPath, err := os.Executable(); err == nil {
		paths = append(paths, filepath.Dir(execPath))
	}
	for _, v := range paths {
		n := filepath.Join(v, name)
		if _, err := os.Stat(n); err == nil {
			return n
		}
	}
	return name
}

func open(ctx *cli.Context) (err error) {
	libs := ctx.Args().Slice()
	if len(libs) == 0 {
		return fmt.Errorf("missing library list")
	}
	failed := 0
	for _, name := range libs {
		p := lookupPath(name)
		h, e := dlfcn.Open(p, dlfcn.RTLD_NOW)
		r := result{Name: name, Path: p}
		if e != nil {
			failed++
			msg, _ := dlfcn.Dlerror()
			r.Error = fmt.Sprintf("%s (%v)", msg, e)
		} else if e = dlfcn.Close(h); e != nil {
			return fmt.Errorf("close %s: %w", name, e)
		}
		report(ctx, r)
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d libraries failed to load", failed, len(libs))
	}
	return
}

func sym(ctx *cli.Context) (err error) {
	names := ctx.Args().Slice()
	if len(names) == 0 {
		return fmt.Errorf("missing symbol list")
	}
	lib := ctx.String("lib")
	p := pool.NewPool()
	defer func() {
		if e := p.Close(); e != nil && err == nil {
			err = e
		}
	}()
	if err = p.Load(lib, lookupPath(lib)); err != nil {
		return fmt.Errorf("load %q: %w", lib, err)
	}
	failed := 0
	for _, name := range names {
		r := result{Name: lib, Symbol: dlfcn.ParseSymbol(name).String()}
		if r.Name == "" {
			r.Name = "<self>"
		}
		s, e := p.Lookup(lib, name)
		if e != nil {
			failed++
			r.Error = e.Error()
		}
		r.Address = uintptr(s)
		report(ctx, r)
	}
	dlfcn.LastError()
	if failed > 0 {
		return fmt.Errorf("%d of %d symbols missing", failed, len(names))
	}
	return
}

func ordinal(ctx *cli.Context) (err error) {
	for _, s := range ctx.Args().Slice() {
		if n, ok := dlfcn.ParseOrdinal(s); ok {
			_, _ = fmt.Fprintf(ctx.App.Writer, "%q\tordinal %d\n", s, n)
		} else {
			_, _ = fmt.Fprintf(ctx.App.Writer, "%q\tname\n", s)
		}
	}
	return
}
