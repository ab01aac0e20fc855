// Command inspect shows the classes and live objects of a demo bindkit
// registry, interactively on a terminal or as a plain dump otherwise.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"golang.org/x/term"

	"github.com/substratelabs/bindkit/class"
	"github.com/substratelabs/bindkit/object"
	"github.com/substratelabs/bindkit/ownership"
)

type demoNode struct {
	object.Base
}

// Sprite is a demo class with the full contract surface: constructor,
// properties, and a reflected method.
type Sprite struct {
	frame int
}

func (*Sprite) ClassName() string { return "Sprite" }

func (s *Sprite) Init(owner object.Ref[demoNode, ownership.Shared]) { s.frame = 1 }

func (*Sprite) RegisterProperties(b *class.Builder) {
	b.Property("frame", 0)
	b.Property("speed", 1.0)
}

func (s *Sprite) Advance(owner *demoNode, args []any) any {
	s.frame++
	return s.frame
}

// Camera has no zero-argument constructor; instances come from Emplace.
type Camera struct {
	zoom float64
}

func (*Camera) ClassName() string { return "Camera" }

func (c *Camera) RegisterMethods(b *class.Builder) {
	class.RefMethod(b, "zoom", func(owner object.Ref[demoNode, ownership.Shared], self *Camera, args []any) any {
		return self.zoom
	})
}

func main() {
	var (
		plain   = flag.Bool("plain", false, "Dump registry state without the interactive UI")
		verbose = flag.Bool("verbose", false, "Log registration and object lifecycle to stderr")
	)
	flag.Parse()

	var opts []object.Option
	if *verbose {
		logger, err := zap.NewDevelopment()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		defer logger.Sync()
		class.SetLogger(logger)
		opts = append(opts, object.WithLogger(logger))
	}

	rt := object.NewRuntime(opts...)
	defer rt.Close()

	reg, err := buildDemoRegistry(rt)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	if *plain || !term.IsTerminal(int(os.Stdout.Fd())) {
		dump(reg, rt)
		return
	}

	p := tea.NewProgram(newInspectModel(reg, rt), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func buildDemoRegistry(rt *object.Runtime) (*class.Registry, error) {
	reg := class.NewRegistry(rt)

	if _, err := class.Register[Sprite, demoNode](reg); err != nil {
		return nil, err
	}
	if _, err := class.Register[Camera, demoNode](reg); err != nil {
		return nil, err
	}

	for i := 0; i < 3; i++ {
		if _, err := class.NewInstance[Sprite, demoNode](rt); err != nil {
			return nil, err
		}
	}
	if _, err := class.Emplace[Camera, demoNode](rt, &Camera{zoom: 2.5}); err != nil {
		return nil, err
	}
	return reg, nil
}

func dump(reg *class.Registry, rt *object.Runtime) {
	counts := liveCounts(rt)
	for _, def := range reg.Definitions() {
		fmt.Printf("%s (%d live)\n", def.Name(), counts[def.Name()])
		for _, p := range def.Properties() {
			fmt.Printf("  property %s = %v\n", p.Name, p.Default)
		}
		for _, m := range def.MethodNames() {
			fmt.Printf("  method %s\n", m)
		}
	}
	fmt.Printf("%d objects live\n", rt.Len())
}

func liveCounts(rt *object.Runtime) map[string]int {
	counts := make(map[string]int)
	rt.Each(func(id object.ID, class string) bool {
		if class != "" {
			counts[class]++
		}
		return true
	})
	return counts
}

func matchesFilter(name, filter string) bool {
	return strings.Contains(strings.ToLower(name), strings.ToLower(filter))
}
