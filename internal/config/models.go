package config

import (
	"errors"
	"fmt"
	"unicode/utf8"

	"github.com/muurk/menufsm/internal/fsm"
	"github.com/muurk/menufsm/internal/input"
	"github.com/muurk/menufsm/internal/options"
	"github.com/muurk/menufsm/internal/view"
)

// CurrentVersion is the only configuration file version understood
const CurrentVersion = 1

// File represents the entire configuration file.
// It describes the menu; edited option values are never written back.
type File struct {
	Version   int           `yaml:"version"`
	Renderer  string        `yaml:"renderer,omitempty"`   // "plain" or "styled"
	ExitLabel string        `yaml:"exit_label,omitempty"` // Label of the last menu entry
	Keys      *input.KeyMap `yaml:"keys,omitempty"`       // Defaults to Q/W/E/R plus arrows
	Groups    []GroupDef    `yaml:"groups"`               // One menu entry per group, in order
}

// GroupDef describes one option group and its menu entry
type GroupDef struct {
	Name      string     `yaml:"name"`
	MenuLabel string     `yaml:"menu_label"`
	Label     string     `yaml:"label"`     // Printed before the values, e.g. "Time: "
	Separator string     `yaml:"separator"` // Exactly one character
	Fields    []FieldDef `yaml:"fields"`
}

// FieldDef describes one bounded numeric field. Values are ints so that
// out-of-range input is reported rather than silently truncated.
type FieldDef struct {
	Name  string `yaml:"name"`
	Value int    `yaml:"value"`
	Min   int    `yaml:"min"`
	Max   int    `yaml:"max"`
}

// Default returns the built-in configuration: clock and date groups, the
// Exit entry and the default key map.
func Default() *File {
	keys := input.DefaultKeyMap()
	f := &File{
		Version:   CurrentVersion,
		Renderer:  view.RendererPlain,
		ExitLabel: fsm.DefaultExitLabel,
		Keys:      &keys,
	}
	for _, g := range options.DefaultRegistry().Groups() {
		f.Groups = append(f.Groups, groupDefFrom(g))
	}
	return f
}

func groupDefFrom(g *options.Group) GroupDef {
	def := GroupDef{
		Name:      g.Name(),
		MenuLabel: g.MenuLabel(),
		Label:     g.Label(),
		Separator: string(g.Separator()),
	}
	for i := 0; i < g.Len(); i++ {
		item := g.Item(i)
		def.Fields = append(def.Fields, FieldDef{
			Name:  item.Name(),
			Value: int(item.Value()),
			Min:   int(item.Min()),
			Max:   int(item.Max()),
		})
	}
	return def
}

// Settings is a validated configuration, ready to drive the program
type Settings struct {
	Registry *options.Registry
	Menu     []fsm.MenuItem
	Mapper   *input.Mapper
	Renderer string
}

// Build validates the file and constructs the option registry, menu and key
// mapper. Any problem is returned as a *options.ValidationError and must be
// treated as fatal before the run loop starts.
func (f *File) Build() (*Settings, error) {
	if f.Version != CurrentVersion {
		return nil, options.NewValidationError("version",
			fmt.Sprintf("unsupported config version: %d (expected %d)", f.Version, CurrentVersion))
	}

	switch f.Renderer {
	case "", view.RendererPlain, view.RendererStyled:
	default:
		return nil, options.NewValidationError("renderer",
			fmt.Sprintf("unknown renderer %q (expected %s or %s)", f.Renderer, view.RendererPlain, view.RendererStyled))
	}

	groups := make([]*options.Group, 0, len(f.Groups))
	for i, def := range f.Groups {
		g, err := def.build()
		if err != nil {
			return nil, fmt.Errorf("group %d: %w", i, err)
		}
		groups = append(groups, g)
	}

	registry, err := options.NewRegistry(groups...)
	if err != nil {
		return nil, err
	}

	keys := input.DefaultKeyMap()
	if f.Keys != nil {
		keys = *f.Keys
	}
	mapper, err := input.NewMapper(keys)
	if err != nil {
		return nil, options.NewValidationError("keys", err.Error())
	}

	renderer := f.Renderer
	if renderer == "" {
		renderer = view.RendererPlain
	}

	return &Settings{
		Registry: registry,
		Menu:     fsm.NewMenu(registry, f.ExitLabel),
		Mapper:   mapper,
		Renderer: renderer,
	}, nil
}

func (def GroupDef) build() (*options.Group, error) {
	if utf8.RuneCountInString(def.Separator) != 1 {
		return nil, options.NewValidationError(def.Name+".separator",
			fmt.Sprintf("separator must be exactly one character, got %q", def.Separator))
	}
	separator, _ := utf8.DecodeRuneInString(def.Separator)

	items := make([]*options.Item, 0, len(def.Fields))
	for i, field := range def.Fields {
		path := def.Name + "." + field.Name
		if field.Name == "" {
			path = fmt.Sprintf("%s[%d]", def.Name, i)
		}
		for _, v := range []int{field.Value, field.Min, field.Max} {
			if v < 0 || v > 255 {
				return nil, options.NewValidationError(path, fmt.Sprintf("%d does not fit in 0-255", v))
			}
		}
		item, err := options.NewItem(field.Name, uint8(field.Value), uint8(field.Min), uint8(field.Max))
		if err != nil {
			var vErr *options.ValidationError
			if errors.As(err, &vErr) {
				vErr.Field = path
			}
			return nil, err
		}
		items = append(items, item)
	}

	return options.NewGroup(def.Name, def.MenuLabel, def.Label, separator, items...)
}
