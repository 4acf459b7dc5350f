package uci

import (
	"fmt"
	"strconv"
	"strings"
)

// entry is implemented by the two UCI option kinds PiCa exposes: Hash
// (a spin) and Info (a check). There is no button/string kind here
// since nothing PiCa configures needs one.
type entry interface {
	describe() string
	setOption(value string) error
	setDefault() error
}

// SpinOption is a UCI "spin" option: an integer bounded by [Min, Max].
// PiCa's only spin option is Hash.
type SpinOption struct {
	Name    string
	Default int
	Min     int
	Max     int

	// Apply stores the new value. Called once with Default when the
	// option set's defaults are applied, and again on every
	// `setoption name <Name> value <n>`.
	Apply func(int) error
}

func (o *SpinOption) describe() string {
	return fmt.Sprintf("option name %s type spin default %d min %d max %d", o.Name, o.Default, o.Min, o.Max)
}

func (o *SpinOption) setOption(value string) error {
	n, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("option %s: %q is not an integer", o.Name, value)
	}
	if n < o.Min || n > o.Max {
		return fmt.Errorf("option %s: %d is out of bounds [%d, %d]", o.Name, n, o.Min, o.Max)
	}
	return o.Apply(n)
}

func (o *SpinOption) setDefault() error {
	return o.Apply(o.Default)
}

// CheckOption is a UCI "check" option: a boolean toggle. PiCa's only
// check option is Info.
type CheckOption struct {
	Name    string
	Default bool

	Apply func(bool) error
}

func (o *CheckOption) describe() string {
	return fmt.Sprintf("option name %s type check default %t", o.Name, o.Default)
}

func (o *CheckOption) setOption(value string) error {
	b, err := strconv.ParseBool(value)
	if err != nil {
		return fmt.Errorf("option %s: %q is not a boolean", o.Name, value)
	}
	return o.Apply(b)
}

func (o *CheckOption) setDefault() error {
	return o.Apply(o.Default)
}

// OptionSet holds the UCI options an engine advertises in response to
// `uci` and accepts through `setoption`.
type OptionSet struct {
	entries map[string]entry
	order   []string // preserves advertisement order
}

// NewOptionSet returns an empty OptionSet.
func NewOptionSet() *OptionSet {
	return &OptionSet{entries: make(map[string]entry)}
}

// AddSpin registers a spin option.
func (s *OptionSet) AddSpin(o *SpinOption) {
	s.add(o.Name, o)
}

// AddCheck registers a check option.
func (s *OptionSet) AddCheck(o *CheckOption) {
	s.add(o.Name, o)
}

func (s *OptionSet) add(name string, e entry) {
	s.entries[name] = e
	s.order = append(s.order, name)
}

// SetDefaults applies every registered option's default value.
func (s *OptionSet) SetDefaults() error {
	for _, name := range s.order {
		if err := s.entries[name].setDefault(); err != nil {
			return err
		}
	}
	return nil
}

// SetOption applies value to the named option.
func (s *OptionSet) SetOption(name, value string) error {
	e, found := s.entries[name]
	if !found {
		return fmt.Errorf("setoption: %q is not a known option", name)
	}
	return e.setOption(value)
}

// String renders every option as one `option name ... type ...` line
// per spec.md §6.1, in registration order, terminated with a newline
// per line.
func (s *OptionSet) String() string {
	var b strings.Builder
	for _, name := range s.order {
		b.WriteString(s.entries[name].describe())
		b.WriteByte('\n')
	}
	return b.String()
}
