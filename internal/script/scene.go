package script

import (
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"
	"strconv"
	"strings"
	"time"

	lua "github.com/yuin/gopher-lua"

	"github.com/dshills/linkdraw/internal/diagram"
	"github.com/dshills/linkdraw/internal/geom"
)

// DefaultScene is the built-in example scene.
//
//go:embed scenes/default.lua
var DefaultScene string

// DefaultTimeout bounds how long a scene may run.
const DefaultTimeout = 2 * time.Second

// Option configures a scene run.
type Option func(*runner)

// WithTimeout sets the time limit. Zero or negative disables it.
func WithTimeout(d time.Duration) Option {
	return func(r *runner) {
		r.timeout = d
	}
}

// WithOutput sends the output of print to w. By default it is discarded.
func WithOutput(w io.Writer) Option {
	return func(r *runner) {
		if w != nil {
			r.out = w
		}
	}
}

type runner struct {
	timeout time.Duration
	out     io.Writer
}

// Run executes a scene script against model. source names the script in
// errors. Nothing is applied to model unless the script succeeds.
func Run(ctx context.Context, model *diagram.Model, source, code string, opts ...Option) error {
	r := runner{timeout: DefaultTimeout, out: io.Discard}
	for _, opt := range opts {
		opt(&r)
	}

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	L := newState(r.out)
	defer L.Close()
	L.SetContext(ctx)

	s := newScene(model)
	s.install(L)

	fn, err := L.Load(strings.NewReader(code), source)
	if err != nil {
		return newScriptError(source, code, err)
	}
	L.Push(fn)
	if err := L.PCall(0, lua.MultRet, nil); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			if errors.Is(ctxErr, context.DeadlineExceeded) {
				ctxErr = ErrTimeout
			}
			return &ScriptError{Source: source, Message: ctxErr.Error(), Err: ctxErr}
		}
		return newScriptError(source, code, err)
	}

	if err := s.apply(); err != nil {
		return &ScriptError{Source: source, Message: err.Error(), Err: err}
	}
	return nil
}

// RunFile reads and runs the scene at path.
func RunFile(ctx context.Context, model *diagram.Model, path string, opts ...Option) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading scene %s: %w", path, err)
	}
	return Run(ctx, model, path, string(data), opts...)
}

// RunDefault seeds model with DefaultScene.
func RunDefault(ctx context.Context, model *diagram.Model) error {
	return Run(ctx, model, "default.lua", DefaultScene)
}

// scene stages declarations until the script finishes.
type scene struct {
	model   *diagram.Model
	cleared bool

	nodes []stagedNode
	links [][2]string
}

type stagedNode struct {
	label string
	pos   geom.Point
}

func newScene(model *diagram.Model) *scene {
	return &scene{model: model}
}

func (s *scene) install(L *lua.LState) {
	L.SetGlobal("node", L.NewFunction(s.luaNode))
	L.SetGlobal("link", L.NewFunction(s.luaLink))
	L.SetGlobal("clear", L.NewFunction(s.luaClear))
}

func (s *scene) hasNode(label string) bool {
	for _, n := range s.nodes {
		if n.label == label {
			return true
		}
	}
	if s.cleared {
		return false
	}
	_, ok := s.model.NodeByLabel(label)
	return ok
}

func (s *scene) hasLink(from, to string) bool {
	for _, l := range s.links {
		if l[0] == from && l[1] == to {
			return true
		}
	}
	if s.cleared {
		return false
	}
	for _, l := range s.model.Links() {
		if l.Source.Label == from && l.Target.Label == to {
			return true
		}
	}
	return false
}

func (s *scene) luaNode(L *lua.LState) int {
	label := L.CheckString(1)
	x := float64(L.CheckNumber(2))
	y := float64(L.CheckNumber(3))

	if label == "" {
		L.ArgError(1, "label must not be empty")
	}
	if s.hasNode(label) {
		L.RaiseError("node %q already exists", label)
	}
	s.nodes = append(s.nodes, stagedNode{label: label, pos: geom.Pt(x, y)})
	L.Push(lua.LString(label))
	return 1
}

func (s *scene) luaLink(L *lua.LState) int {
	from := L.CheckString(1)
	to := L.CheckString(2)

	switch {
	case !s.hasNode(from):
		L.RaiseError("unknown node %q", from)
	case !s.hasNode(to):
		L.RaiseError("unknown node %q", to)
	case from == to:
		L.RaiseError("%s: %q", diagram.ErrSelfLink, from)
	case s.hasLink(from, to):
		L.RaiseError("%s: %q -> %q", diagram.ErrDuplicateLink, from, to)
	}
	s.links = append(s.links, [2]string{from, to})
	return 0
}

func (s *scene) luaClear(L *lua.LState) int {
	s.cleared = true
	s.nodes = nil
	s.links = nil
	return 0
}

// apply commits the staged scene. Declarations were checked as they were
// made, so an error here means the model changed underneath the script.
func (s *scene) apply() error {
	if s.cleared {
		s.model.Clear()
	}
	for _, n := range s.nodes {
		s.model.AddNode(n.label, n.pos)
	}
	for _, l := range s.links {
		from, ok := s.model.NodeByLabel(l[0])
		if !ok {
			return fmt.Errorf("link %s -> %s: %w", l[0], l[1], diagram.ErrUnknownNode)
		}
		to, ok := s.model.NodeByLabel(l[1])
		if !ok {
			return fmt.Errorf("link %s -> %s: %w", l[0], l[1], diagram.ErrUnknownNode)
		}
		if _, err := s.model.AddLink(from, to); err != nil {
			return fmt.Errorf("link %s -> %s: %w", l[0], l[1], err)
		}
	}
	return nil
}

var (
	// "name:12: message" from runtime errors.
	runtimePos = regexp.MustCompile(`^[^\n]*?:(\d+): `)
	// "name line:12(column:3) near ..." from the parser.
	syntaxPos = regexp.MustCompile(`line:(\d+)\(column:\d+\)`)
)

// newScriptError parses the position out of a gopher-lua error. code is
// the script text, used when the parser stops at end of input.
func newScriptError(source, code string, err error) *ScriptError {
	msg := err.Error()
	var apiErr *lua.ApiError
	if errors.As(err, &apiErr) && apiErr.Object != nil {
		msg = apiErr.Object.String()
	}

	serr := &ScriptError{Source: source, Message: strings.TrimSpace(msg), Err: err}
	if m := runtimePos.FindStringSubmatchIndex(msg); m != nil {
		serr.Line, _ = strconv.Atoi(msg[m[2]:m[3]])
		serr.Message = strings.TrimSpace(msg[m[1]:])
	} else if m := syntaxPos.FindStringSubmatch(msg); m != nil {
		serr.Line, _ = strconv.Atoi(m[1])
	} else if strings.Contains(msg, " at EOF:") {
		serr.Line = lastLine(code)
	}
	return serr
}

// lastLine returns the number of the last non-blank line of code.
func lastLine(code string) int {
	trimmed := strings.TrimRight(code, " \t\r\n")
	return strings.Count(trimmed, "\n") + 1
}
