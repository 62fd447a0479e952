// Package interactive provides the interactive command-line interface
// for genicam-shell.
package interactive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"maps"
	"slices"
	"strconv"
	"strings"
	"time"

	"github.com/chzyer/readline"

	"github.com/genicam-go/genicam/pkg/acquisition"
	"github.com/genicam-go/genicam/pkg/camera"
	"github.com/genicam-go/genicam/pkg/config"
	"github.com/genicam-go/genicam/pkg/feature"
	"github.com/genicam-go/genicam/pkg/sfnc"
)

// FrameTimeout bounds each frame wait of the grab command.
const FrameTimeout = 2 * time.Second

// Shell handles interactive mode for genicam-shell.
type Shell struct {
	reg *camera.Registry
	rl  *readline.Instance
	out io.Writer

	// current is the camera selected with open.
	current *camera.Camera
}

// New creates a new interactive shell. Attach a registry with SetRegistry
// before calling Run.
func New() (*Shell, error) {
	rl, err := readline.NewEx(&readline.Config{
		Prompt:          "genicam> ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
		AutoComplete:    completer(),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create readline: %w", err)
	}
	s := newShell(nil, rl.Stdout())
	s.rl = rl
	return s, nil
}

// SetRegistry sets the cameras the shell works on.
func (s *Shell) SetRegistry(reg *camera.Registry) {
	s.reg = reg
}

func newShell(reg *camera.Registry, out io.Writer) *Shell {
	return &Shell{reg: reg, out: out}
}

func completer() *readline.PrefixCompleter {
	return readline.NewPrefixCompleter(
		readline.PcItem("list"),
		readline.PcItem("update"),
		readline.PcItem("open"),
		readline.PcItem("close"),
		readline.PcItem("features"),
		readline.PcItem("get"),
		readline.PcItem("set"),
		readline.PcItem("exec"),
		readline.PcItem("describe"),
		readline.PcItem("dump"),
		readline.PcItem("load"),
		readline.PcItem("read"),
		readline.PcItem("info"),
		readline.PcItem("grab"),
		readline.PcItem("help"),
		readline.PcItem("quit"),
	)
}

// Stdout returns a writer that properly coordinates with the readline input.
// Use this for log output to avoid interfering with the command prompt.
func (s *Shell) Stdout() io.Writer {
	return s.out
}

// Run starts the interactive command loop.
func (s *Shell) Run(ctx context.Context, cancel context.CancelFunc) {
	defer s.rl.Close()

	s.printHelp()

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		line, err := s.rl.Readline()
		if err != nil {
			// EOF or interrupt
			if errors.Is(err, readline.ErrInterrupt) {
				continue
			}
			fmt.Fprintln(s.out, "Exiting...")
			cancel()
			return
		}

		if s.Exec(ctx, line) {
			cancel()
			return
		}
	}
}

// Exec runs one command line. It returns true when the shell should exit.
func (s *Shell) Exec(ctx context.Context, line string) bool {
	input := strings.TrimSpace(line)
	if input == "" {
		return false
	}

	parts := strings.Fields(input)
	cmd := strings.ToLower(parts[0])
	args := parts[1:]

	switch cmd {
	case "help", "?":
		s.printHelp()

	case "list", "ls":
		s.cmdList()

	case "update":
		s.cmdUpdate(ctx)

	case "open", "o":
		s.cmdOpen(ctx, args)

	case "close":
		s.cmdClose()

	case "features", "f":
		s.cmdFeatures(args)

	case "get", "g":
		s.cmdGet(args)

	case "set", "s":
		s.cmdSet(args)

	case "exec", "x":
		s.cmdExec(args)

	case "describe", "d":
		s.cmdDescribe(args)

	case "dump":
		s.cmdDump(ctx, args)

	case "load":
		s.cmdLoad(ctx, args)

	case "read":
		s.cmdRead(args)

	case "info":
		s.cmdInfo(ctx, args)

	case "grab":
		s.cmdGrab(ctx, args)

	case "quit", "exit", "q":
		s.closeCurrent()
		fmt.Fprintln(s.out, "Exiting...")
		return true

	default:
		fmt.Fprintf(s.out, "Unknown command: %s (type 'help' for commands)\n", cmd)
	}
	return false
}

func (s *Shell) printHelp() {
	fmt.Fprintln(s.out, `
GenICam Shell Commands:
  Cameras:
    list                     - List cameras found by the last update
    update                   - Rediscover cameras
    open <serial|id|index>   - Open a camera and select it
    close                    - Close the selected camera

  Features:
    features [text]          - List features (optionally containing text)
    get <name>               - Read a feature value
    set <name> <value>       - Write a feature value
    exec <name>              - Execute a command feature
    describe <name>          - Show feature metadata and the standard definition

  Configuration:
    dump [-f] [path]         - Save the camera configuration (default path per camera)
    load [path]              - Apply a saved configuration
    read [path]              - Show a saved configuration without applying it
    info [-f] [path]         - Write a description of every feature

  Acquisition:
    grab [n]                 - Acquire n frames (default 1)

  General:
    help                     - Show this help
    quit                     - Exit shell`)
}

// cmdList handles the list command.
func (s *Shell) cmdList() {
	cams := s.reg.Cameras()
	if len(cams) == 0 {
		fmt.Fprintln(s.out, "No cameras (run 'update')")
		return
	}

	fmt.Fprintf(s.out, "\nCameras (%d):\n", len(cams))
	fmt.Fprintln(s.out, "-------------------------------------------")
	for idx, c := range cams {
		status := "closed"
		if c.Initialized() {
			status = "open"
		}
		marker := " "
		if c == s.current {
			marker = "*"
		}
		info := c.Info()
		fmt.Fprintf(s.out, "%s %d. %s  %s %s  [%s]\n", marker, idx, info.ID, info.Vendor, info.Model, status)
		if info.UserID != "" {
			fmt.Fprintf(s.out, "      User ID: %s\n", info.UserID)
		}
	}
}

// cmdUpdate handles the update command.
func (s *Shell) cmdUpdate(ctx context.Context) {
	n, err := s.reg.Update(ctx)
	if err != nil {
		fmt.Fprintf(s.out, "Update failed: %v\n", err)
		return
	}
	if s.current != nil && !s.current.Initialized() {
		s.current = nil
	}
	fmt.Fprintf(s.out, "Found %d camera(s)\n", n)
}

// cmdOpen handles the open command.
func (s *Shell) cmdOpen(ctx context.Context, args []string) {
	if len(args) < 1 {
		fmt.Fprintln(s.out, "Usage: open <serial|id|index>")
		return
	}

	c, err := s.lookup(args[0])
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}

	if !c.Initialized() {
		if err := c.Initialize(ctx); err != nil {
			fmt.Fprintf(s.out, "Open failed: %v\n", err)
			return
		}
	}
	s.current = c

	m, _ := c.Features()
	fmt.Fprintf(s.out, "Opened %s (%d features)\n", c.ID(), m.Len())
}

func (s *Shell) lookup(key string) (*camera.Camera, error) {
	if idx, err := strconv.Atoi(key); err == nil {
		return s.reg.At(idx)
	}
	return s.reg.Get(key)
}

// cmdClose handles the close command.
func (s *Shell) cmdClose() {
	if s.current == nil {
		fmt.Fprintln(s.out, "No camera open")
		return
	}
	id := s.current.ID()
	if err := s.closeCurrent(); err != nil {
		fmt.Fprintf(s.out, "Close failed: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "Closed %s\n", id)
}

func (s *Shell) closeCurrent() error {
	if s.current == nil {
		return nil
	}
	c := s.current
	s.current = nil
	if !c.Initialized() {
		return nil
	}
	return c.Close()
}

// features returns the feature map of the selected camera, printing a hint
// when there is none.
func (s *Shell) features() (*feature.Map, bool) {
	if s.current == nil {
		fmt.Fprintln(s.out, "No camera open (use 'open <serial|index>')")
		return nil, false
	}
	m, err := s.current.Features()
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return nil, false
	}
	return m, true
}

// cmdFeatures handles the features command.
func (s *Shell) cmdFeatures(args []string) {
	m, ok := s.features()
	if !ok {
		return
	}

	var opts feature.FilterOptions
	if len(args) > 0 {
		opts.Contains = args[0]
	}
	nodes := m.Filter(opts)
	if len(nodes) == 0 {
		fmt.Fprintln(s.out, "No matching features")
		return
	}

	for _, n := range nodes {
		access, err := n.AccessMode()
		if err != nil {
			fmt.Fprintf(s.out, "  %-28s %-12s ERR  %v\n", n.Name(), n.Kind(), err)
			continue
		}
		value := "-"
		if v, ok := n.(feature.Valued); ok && access.CanRead() {
			if raw, err := v.Value(); err == nil {
				value = feature.FormatValue(raw)
			}
		}
		fmt.Fprintf(s.out, "  %-28s %-12s %-3s  %s\n", n.Name(), n.Kind(), access, value)
	}
}

// cmdGet handles the get command.
func (s *Shell) cmdGet(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(s.out, "Usage: get <name>")
		return
	}
	m, ok := s.features()
	if !ok {
		return
	}

	v, err := m.Valued(args[0])
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	raw, err := v.Value()
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}

	unit := ""
	if f, ok := v.(*feature.Float); ok && f.Unit() != "" {
		unit = " " + f.Unit()
	}
	fmt.Fprintf(s.out, "%s = %s%s\n", v.Name(), feature.FormatValue(raw), unit)
}

// cmdSet handles the set command.
func (s *Shell) cmdSet(args []string) {
	if len(args) < 2 {
		fmt.Fprintln(s.out, "Usage: set <name> <value>")
		return
	}
	m, ok := s.features()
	if !ok {
		return
	}

	v, err := m.Valued(args[0])
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	// String values may contain spaces.
	text := strings.Join(args[1:], " ")
	value, err := feature.ParseValue(v.Kind(), text)
	if err != nil {
		fmt.Fprintf(s.out, "Invalid value: %v\n", err)
		return
	}
	if err := v.SetValue(value); err != nil {
		fmt.Fprintf(s.out, "Write failed: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "%s set to %s\n", v.Name(), feature.FormatValue(value))
}

// cmdExec handles the exec command.
func (s *Shell) cmdExec(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(s.out, "Usage: exec <name>")
		return
	}
	m, ok := s.features()
	if !ok {
		return
	}

	cmd, err := m.Command(args[0])
	if err != nil {
		fmt.Fprintf(s.out, "Error: %v\n", err)
		return
	}
	if err := cmd.Execute(); err != nil {
		fmt.Fprintf(s.out, "Execute failed: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "%s executed\n", cmd.Name())
}

// cmdDescribe handles the describe command.
func (s *Shell) cmdDescribe(args []string) {
	if len(args) < 1 {
		fmt.Fprintln(s.out, "Usage: describe <name>")
		return
	}
	name := args[0]

	if s.current != nil {
		if m, err := s.current.Features(); err == nil {
			if n, err := m.Get(name); err == nil {
				fmt.Fprintf(s.out, "\n%s (%s)\n", n.DisplayName(), n.Kind())
				fmt.Fprintln(s.out, "-------------------------------------------")
				if access, err := n.AccessMode(); err == nil {
					fmt.Fprintf(s.out, "  Access:      %s\n", access)
				}
				fmt.Fprintf(s.out, "  Visibility:  %s\n", n.Visibility())
				if n.Description() != "" {
					fmt.Fprintf(s.out, "  Description: %s\n", n.Description())
				}
				s.printConstraints(n)
			}
		}
	}

	def, ok := sfnc.Lookup(name)
	if !ok {
		fmt.Fprintf(s.out, "  %s is not a standard feature (SFNC %s)\n", name, sfnc.Version)
		return
	}
	fmt.Fprintf(s.out, "  Standard:    %s / %s, %s %s\n", def.Category, def.Name, def.Kind, def.Access)
	if def.Unit != "" {
		fmt.Fprintf(s.out, "  Unit:        %s\n", def.Unit)
	}
	if len(def.Symbols) > 0 {
		fmt.Fprintf(s.out, "  Symbols:     %s\n", strings.Join(def.Symbols, ", "))
	}
	if def.Description != "" {
		fmt.Fprintf(s.out, "  SFNC:        %s\n", def.Description)
	}
}

func (s *Shell) printConstraints(n feature.Node) {
	switch x := n.(type) {
	case *feature.Integer:
		if r, err := x.Range(); err == nil {
			fmt.Fprintf(s.out, "  Range:       %d .. %d step %d\n", r.Min, r.Max, r.Inc)
		}
	case *feature.Float:
		if r, err := x.Range(); err == nil {
			fmt.Fprintf(s.out, "  Range:       %g .. %g\n", r.Min, r.Max)
		}
	case *feature.Enumeration:
		if symbols, err := x.ValidValues(); err == nil {
			fmt.Fprintf(s.out, "  Valid:       %s\n", strings.Join(symbols, ", "))
		}
	}
}

// splitForce separates a leading -f flag from the optional path argument.
func splitForce(args []string) (path string, force bool) {
	for _, a := range args {
		if a == "-f" {
			force = true
			continue
		}
		path = a
	}
	return path, force
}

// cmdDump handles the dump command.
func (s *Shell) cmdDump(ctx context.Context, args []string) {
	if s.current == nil {
		fmt.Fprintln(s.out, "No camera open")
		return
	}
	path, force := splitForce(args)
	written, err := s.current.DumpConfig(ctx, path, force)
	if err != nil {
		if errors.Is(err, config.ErrFileExists) {
			fmt.Fprintf(s.out, "%v (use 'dump -f' to overwrite)\n", err)
			return
		}
		fmt.Fprintf(s.out, "Dump failed: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "Configuration written to %s\n", written)
}

// cmdLoad handles the load command.
func (s *Shell) cmdLoad(ctx context.Context, args []string) {
	if s.current == nil {
		fmt.Fprintln(s.out, "No camera open")
		return
	}
	path, _ := splitForce(args)
	res, err := s.current.LoadConfig(ctx, path)
	if err != nil {
		fmt.Fprintf(s.out, "Load failed: %v\n", err)
		return
	}

	fmt.Fprintf(s.out, "Applied %d, skipped %d, failed %d (%d pass(es))\n",
		len(res.Applied), len(res.Skipped), len(res.Errors), res.Passes)
	for _, name := range slices.Sorted(maps.Keys(res.Skipped)) {
		fmt.Fprintf(s.out, "  skipped %s: %s\n", name, res.Skipped[name])
	}
	for _, name := range slices.Sorted(maps.Keys(res.Errors)) {
		fmt.Fprintf(s.out, "  failed  %s: %v\n", name, res.Errors[name])
	}
}

// cmdRead handles the read command.
func (s *Shell) cmdRead(args []string) {
	if s.current == nil {
		fmt.Fprintln(s.out, "No camera selected")
		return
	}
	path, _ := splitForce(args)
	snap, err := s.current.ReadConfig(path)
	if err != nil {
		fmt.Fprintf(s.out, "Read failed: %v\n", err)
		return
	}
	for _, e := range snap.Entries() {
		fmt.Fprintf(s.out, "  %-28s %s\n", e.Name, feature.FormatValue(e.Value))
	}
}

// cmdInfo handles the info command.
func (s *Shell) cmdInfo(ctx context.Context, args []string) {
	if s.current == nil {
		fmt.Fprintln(s.out, "No camera open")
		return
	}
	path, force := splitForce(args)
	written, err := s.current.DumpInfo(ctx, path, force, feature.FilterOptions{})
	if err != nil {
		fmt.Fprintf(s.out, "Info failed: %v\n", err)
		return
	}
	fmt.Fprintf(s.out, "Feature description written to %s\n", written)
}

// cmdGrab handles the grab command.
func (s *Shell) cmdGrab(ctx context.Context, args []string) {
	if s.current == nil {
		fmt.Fprintln(s.out, "No camera open")
		return
	}
	count := 1
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 {
			fmt.Fprintf(s.out, "Invalid frame count: %s\n", args[0])
			return
		}
		count = n
	}

	err := s.current.Acquire(ctx, func(sess *acquisition.Session) error {
		fmt.Fprintf(s.out, "Session %s\n", sess.ID())
		for i := 0; i < count; i++ {
			f, err := sess.GetFrame(FrameTimeout)
			if err != nil {
				return err
			}
			s.printFrame(f)
		}
		return nil
	})
	if err != nil {
		fmt.Fprintf(s.out, "Acquisition failed: %v\n", err)
	}
}

func (s *Shell) printFrame(f *acquisition.Frame) {
	fmt.Fprintf(s.out, "  Frame %d: %dx%d %s, %d bytes", f.ID, f.Width, f.Height, f.PixelFormat, len(f.Payload))
	if r, err := f.ValidRange(); err == nil {
		fmt.Fprintf(s.out, ", range %d..%d", r.Min, r.Max)
	}
	fmt.Fprintln(s.out)
	if v, ok := f.Metadata[sfnc.ExposureTime]; ok {
		fmt.Fprintf(s.out, "      %s: %s\n", sfnc.ExposureTime, feature.FormatValue(v))
	}
}
