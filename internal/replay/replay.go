package replay

import (
	"bytes"
	"errors"
	"fmt"
	"log/slog"
	"slices"
	"strings"

	"github.com/goccy/go-json"
	"github.com/larynjahor/fstack/container"
	"golang.org/x/exp/maps"
)

var (
	ErrUnknownOp    = errors.New("unknown op")
	ErrMissingValue = errors.New("missing value")
)

type Script struct {
	Capacity int  `json:"capacity,omitempty"`
	Ops      []Op `json:"ops"`
}

type Op struct {
	Op    string          `json:"op"`
	Value json.RawMessage `json:"value,omitempty"`
}

type Result struct {
	Op      string          `json:"op"`
	Value   json.RawMessage `json:"value,omitempty"`
	Present *bool           `json:"present,omitempty"`
	Index   *int            `json:"index,omitempty"`
	Empty   *bool           `json:"empty,omitempty"`
	Size    *Size           `json:"size,omitempty"`
	Output  string          `json:"output,omitempty"`
	Error   string          `json:"error,omitempty"`
}

type Size struct {
	Capacity int  `json:"capacity"`
	Len      int  `json:"len"`
	Full     bool `json:"full"`
}

type Response struct {
	Capacity int               `json:"capacity"`
	Results  []Result          `json:"results"`
	Stack    []json.RawMessage `json:"stack"`
}

// elements are compact JSON text so that equal values compare equal
type stack = container.FixedStack[string]

type handler func(s *stack, op Op, res *Result) error

var handlers = map[string]handler{
	"push":     push,
	"pop":      pop,
	"peek":     peek,
	"is_empty": isEmpty,
	"search":   search,
	"display":  display,
	"size":     size,
}

// Run applies the script to a fresh stack. Stack errors are recorded in the
// op's result and do not stop the replay.
func Run(script Script, defaultCapacity int) (*Response, error) {
	capacity := script.Capacity
	if capacity == 0 {
		capacity = defaultCapacity
	}

	s, err := container.NewFixedStack[string](capacity)
	if err != nil {
		return nil, err
	}

	logger := slog.With(slog.Int("capacity", capacity))
	logger.Info("replaying script", slog.Int("ops", len(script.Ops)))

	resp := &Response{
		Capacity: capacity,
		Results:  make([]Result, 0, len(script.Ops)),
	}

	for i, op := range script.Ops {
		h, ok := handlers[op.Op]
		if !ok {
			return nil, fmt.Errorf("op %d: %w %q, want one of %s", i, ErrUnknownOp, op.Op, strings.Join(opNames(), ", "))
		}

		res := Result{Op: op.Op}

		err := h(s, op, &res)
		switch {
		case errors.Is(err, container.ErrStackOverflow), errors.Is(err, container.ErrStackUnderflow):
			logger.Debug("op failed", slog.Int("index", i), slog.String("op", op.Op), slog.Any("err", err))

			res.Error = err.Error()
		case err != nil:
			return nil, fmt.Errorf("op %d (%s): %w", i, op.Op, err)
		}

		resp.Results = append(resp.Results, res)
	}

	resp.Stack = make([]json.RawMessage, 0, s.Len())

	for _, v := range s.Values() {
		resp.Stack = append(resp.Stack, json.RawMessage(v))
	}

	logger.Info("replayed script", slog.Int("depth", s.Len()))

	return resp, nil
}

func opNames() []string {
	names := maps.Keys(handlers)
	slices.Sort(names)

	return names
}

func element(op Op) (string, error) {
	if len(op.Value) == 0 {
		return "", ErrMissingValue
	}

	var buf bytes.Buffer

	if err := json.Compact(&buf, op.Value); err != nil {
		return "", err
	}

	return buf.String(), nil
}

func push(s *stack, op Op, _ *Result) error {
	v, err := element(op)
	if err != nil {
		return err
	}

	return s.Push(v)
}

func pop(s *stack, _ Op, res *Result) error {
	v, err := s.Pop()
	if err != nil {
		return err
	}

	res.Value = json.RawMessage(v)

	return nil
}

func peek(s *stack, _ Op, res *Result) error {
	v, ok := s.Peek().Get()

	res.Present = &ok
	if ok {
		res.Value = json.RawMessage(v)
	}

	return nil
}

func isEmpty(s *stack, _ Op, res *Result) error {
	empty := s.IsEmpty()
	res.Empty = &empty

	return nil
}

func search(s *stack, op Op, res *Result) error {
	v, err := element(op)
	if err != nil {
		return err
	}

	idx := s.Search(v)
	res.Index = &idx

	return nil
}

func display(s *stack, _ Op, res *Result) error {
	var buf bytes.Buffer

	if err := s.DisplayTo(&buf); err != nil {
		return err
	}

	res.Output = strings.TrimSuffix(buf.String(), "\n")

	return nil
}

func size(s *stack, _ Op, res *Result) error {
	res.Size = &Size{
		Capacity: s.Cap(),
		Len:      s.Len(),
		Full:     s.IsFull(),
	}

	return nil
}
