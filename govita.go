// This file is part of govita.
//
// govita is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// govita is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with govita.  If not, see <https://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"runtime"
	"time"

	"github.com/govita/govita/app"
	"github.com/govita/govita/config"
	"github.com/govita/govita/cpu/hle"
	"github.com/govita/govita/curated"
	"github.com/govita/govita/demo"
	"github.com/govita/govita/display"
	"github.com/govita/govita/gui/sdlimgui"
	"github.com/govita/govita/imports"
	"github.com/govita/govita/kernel"
	"github.com/govita/govita/loader"
	"github.com/govita/govita/logger"
	"github.com/govita/govita/memory"
	"github.com/govita/govita/modalflag"
	"github.com/govita/govita/paths"
	"github.com/govita/govita/performance"
	"github.com/govita/govita/renderer"
	"github.com/govita/govita/signals"
	"github.com/govita/govita/statsview"
	"github.com/govita/govita/termhost"
	"github.com/govita/govita/touch"
	"github.com/govita/govita/userinput"
	"github.com/govita/govita/version"
	"golang.org/x/sync/errgroup"
)

// SDL requires that the window is created and serviced by the thread that
// started the program
func init() {
	runtime.LockOSThread()
}

// #mainthread
func main() {
	err := launch(os.Args[1:], os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "* error: %v\n", err)
	}
	os.Exit(int(app.ExitCodeOf(err)))
}

// launch parses the command line and runs the selected mode.
func launch(args []string, output io.Writer) error {
	md := &modalflag.Modes{Output: output}
	md.NewArgs(args)
	md.NewMode()
	md.AddSubModes("RUN", "HEADLESS", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return nil
	case modalflag.ParseError:
		return err
	}

	switch md.Mode() {
	case "RUN":
		return run(md, output, false)
	case "HEADLESS":
		return run(md, output, true)
	case "VERSION":
		return showVersion(md, output)
	}

	return nil
}

func showVersion(md *modalflag.Modes, output io.Writer) error {
	md.NewMode()
	revision := md.AddBool("revision", false, "display revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	fmt.Fprintln(output, version.Title())
	if *revision {
		_, rev, _ := version.Version()
		fmt.Fprintln(output, rev)
	}

	return nil
}

func run(md *modalflag.Modes, output io.Writer, headless bool) error {
	md.NewMode()
	md.AdditionalHelp("settings can also be given with GOVITA_* environment variables. the prefs\nflag takes precedence")

	prefsString := md.AddString("prefs", "", "settings in the form 'key::value; key::value'")
	profile := md.AddString("profile", "none", "run with profiling: CPU, MEM (comma separated)")
	memviz := md.AddBool("memviz", false, "write a graph of the thread registry once the program has started")
	colour := md.AddBool("colour", false, "colourise echoed log output")
	stats := new(bool)
	if statsview.Available() {
		stats = md.AddBool("statsview", false, fmt.Sprintf("run stats server (%s)", statsview.Address))
	}

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	cfg, err := config.Load(nil, *prefsString)
	if err != nil {
		return curated.Errorf(app.InitConfigFailed, err)
	}

	prf, err := performance.ParseProfile(*profile)
	if err != nil {
		return curated.Errorf(app.InitConfigFailed, err)
	}

	if cfg.LogEcho.Get().(bool) {
		if *colour {
			logger.SetEcho(logger.NewColorizer(output), false)
		} else {
			logger.SetEcho(output, false)
		}
	} else {
		logger.SetEcho(nil, false)
	}
	logger.Logf(logger.Allow, "govita", "%s: %s", version.Title(), cfg)

	if *stats {
		statsview.Launch(output)
	}

	var profileDir string
	if prf != performance.ProfileNone {
		profileDir, err = paths.ResourcePath("profiles", "")
		if err != nil {
			return err
		}
	}

	return performance.RunProfiler(prf, profileDir, paths.UniqueFilename("govita", "", time.Now()), func() error {
		if headless {
			return runHeadless(cfg, *memviz)
		}
		return runWindowed(cfg, *memviz)
	})
}

// system is every component of a running program.
type system struct {
	host  *app.Host
	entry loader.Entry
	rate  int
}

func newSystem(cfg *config.Config, backend renderer.Backend, win app.Window) (*system, error) {
	sig := signals.NewSignals(cfg.DebugUI.Get().(bool), cfg.Touch.Get().(bool))
	pipeline := renderer.NewState(backend, cfg.MaxPending.Get().(int))
	disp := display.NewDisplay()
	tch := touch.NewTouch(sig)

	tab := imports.NewTable(imports.Env{
		Signals:  sig,
		Display:  disp,
		Pipeline: pipeline,
		Touch:    tch,
	})

	mem, err := memory.NewMemory(uint32(cfg.MemorySize.Get().(int)))
	if err != nil {
		return nil, curated.Errorf(app.InitConfigFailed, err)
	}
	routines := hle.NewTable()
	k := kernel.NewKernel(mem, routines, tab.CallImport)

	entry, err := demo.NewProgram(routines).Load(k)
	if err != nil {
		return nil, err
	}

	return &system{
		host:  app.NewHost(k, sig, pipeline, disp, tch, win),
		entry: entry,
		rate:  cfg.VblankRate.Get().(int),
	}, nil
}

// start the backend and vblank goroutines
func (sys *system) start() *errgroup.Group {
	g := &errgroup.Group{}
	g.Go(func() error {
		sys.host.Pipeline.ProcessBatches()
		return nil
	})
	g.Go(func() error {
		return sys.host.Display.RunVblank(sys.rate, sys.host.EndFrame)
	})
	return g
}

// stop every guest thread and wait for every goroutine started by start()
func (sys *system) stop(g *errgroup.Group) error {
	sys.host.Shutdown.Shutdown()
	sys.host.Kernel.Wait()
	return g.Wait()
}

// write the thread registry graph to the resource directory
func (sys *system) visualise(enabled bool) {
	if !enabled {
		return
	}

	filename, err := paths.ResourcePath("memviz", paths.UniqueFilename("registry", sys.entry.TitleID, time.Now())+".dot")
	if err != nil {
		logger.Log(logger.Allow, "memviz", err)
		return
	}

	f, err := os.Create(filename)
	if err != nil {
		logger.Log(logger.Allow, "memviz", err)
		return
	}
	defer f.Close()

	sys.host.Kernel.Visualise(f)
	logger.Logf(logger.Allow, "memviz", "thread registry written to %s", filename)
}

func runWindowed(cfg *config.Config, memviz bool) error {
	img, err := sdlimgui.NewSdlImgui(float32(cfg.WindowScale.Get().(float64)))
	if err != nil {
		return err
	}

	var backend renderer.Backend = img.Backend()
	if cfg.BackendKind() == renderer.Null {
		backend = &renderer.NullBackend{}
	}

	sys, err := newSystem(cfg, backend, img)
	if err != nil {
		_ = img.Destroy()
		return err
	}
	img.Attach(sys.host)

	g := sys.start()

	// bootstrap runs in its own goroutine because the error dialog and the
	// pipeline both need the main thread to be serviced
	bootstrap := make(chan error, 1)
	go func() {
		bootstrap <- app.RunApp(sys.host, sys.entry)
	}()

	var bootErr error
	booted := false

	for img.Service() {
		sys.host.UpdateWindowTitle(time.Now())

		if !booted {
			select {
			case bootErr = <-bootstrap:
				booted = true
			default:
			}
			if booted {
				if bootErr != nil {
					break
				}
				sys.visualise(memviz)
			}
		}
	}

	// release the backend goroutine if it is waiting for the main thread
	img.Stop()

	err = sys.stop(g)
	if !booted {
		bootErr = <-bootstrap
	}

	if destroyErr := img.Destroy(); destroyErr != nil {
		logger.Log(logger.Allow, "sdlimgui", destroyErr)
	}

	if bootErr != nil {
		return bootErr
	}
	return err
}

func runHeadless(cfg *config.Config, memviz bool) error {
	if cfg.BackendKind() != renderer.Null {
		logger.Logf(logger.Allow, "govita", "%s backend not available when headless. using %s", cfg.BackendKind(), renderer.Null)
	}

	sys, err := newSystem(cfg, &renderer.NullBackend{}, termhost.NewWindow(os.Stderr))
	if err != nil {
		return err
	}

	tty, err := termhost.Open(termhost.DefaultDevice)
	if err != nil {
		return err
	}
	defer tty.Close()

	events := userinput.NewChannel(16)

	g := sys.start()
	g.Go(func() error {
		return tty.Run(events)
	})

	err = app.RunApp(sys.host, sys.entry)
	if err != nil {
		tty.Stop()
		_ = sys.stop(g)
		return err
	}
	sys.visualise(memviz)

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	defer signal.Stop(intChan)

	ticker := time.NewTicker(10 * time.Millisecond)
	defer ticker.Stop()

	for sys.host.HandleEvents(events) {
		select {
		case <-intChan:
			events.Push(userinput.EventQuit{})
		case <-ticker.C:
		}
		sys.host.UpdateWindowTitle(time.Now())
	}

	tty.Stop()
	return sys.stop(g)
}
