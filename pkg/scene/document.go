package scene

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/viper"
	"go.uber.org/multierr"

	flex "github.com/grindlemire/go-flex"
)

// Document is the file form of a scene. Documents are read with viper, so
// YAML, JSON and TOML all decode into the same structure.
type Document struct {
	Name string  `mapstructure:"name"`
	Root BoxSpec `mapstructure:"root"`
}

// BoxSpec describes one box. Geometry fields accept the forms ParseValue
// understands; numbers are decoded as strings.
type BoxSpec struct {
	ID       string    `mapstructure:"id"`
	X        string    `mapstructure:"x"`
	Y        string    `mapstructure:"y"`
	W        string    `mapstructure:"w"`
	H        string    `mapstructure:"h"`
	Hidden   bool      `mapstructure:"hidden"`
	Flex     *FlexSpec `mapstructure:"flex"`
	Item     *ItemSpec `mapstructure:"item"`
	Children []BoxSpec `mapstructure:"children"`
}

// FlexSpec holds container settings. Empty keywords keep the defaults.
type FlexSpec struct {
	Direction      string    `mapstructure:"direction"`
	Wrap           bool      `mapstructure:"wrap"`
	AlignItems     string    `mapstructure:"align-items"`
	AlignContent   string    `mapstructure:"align-content"`
	JustifyContent string    `mapstructure:"justify-content"`
	Padding        []float64 `mapstructure:"padding"`
}

// ItemSpec holds item settings. A nil Shrink keeps the automatic factor.
type ItemSpec struct {
	Disabled  bool      `mapstructure:"disabled"`
	Grow      float64   `mapstructure:"grow"`
	Shrink    *float64  `mapstructure:"shrink"`
	AlignSelf string    `mapstructure:"align-self"`
	MinWidth  float64   `mapstructure:"min-width"`
	MaxWidth  float64   `mapstructure:"max-width"`
	MinHeight float64   `mapstructure:"min-height"`
	MaxHeight float64   `mapstructure:"max-height"`
	Margin    []float64 `mapstructure:"margin"`
}

// Load reads a scene document from a file. The format follows the file
// extension.
func Load(path string) (*Document, error) {
	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("read scene %s: %w", path, err)
	}
	return unmarshal(v, path)
}

// Decode reads a scene document in the given format ("yaml", "json",
// "toml").
func Decode(r io.Reader, format string) (*Document, error) {
	v := viper.New()
	v.SetConfigType(format)
	if err := v.ReadConfig(r); err != nil {
		return nil, fmt.Errorf("read scene: %w", err)
	}
	return unmarshal(v, format)
}

func unmarshal(v *viper.Viper, name string) (*Document, error) {
	var doc Document
	if err := v.Unmarshal(&doc); err != nil {
		return nil, fmt.Errorf("decode scene %s: %w", name, err)
	}
	return &doc, nil
}

// Validate checks every box of the document and returns all problems.
func (d *Document) Validate() error {
	seen := make(map[string]string)
	if d.Root.ID == "" {
		seen["root"] = "root"
	}
	return d.Root.validate("root", seen)
}

func (s *BoxSpec) validate(path string, seen map[string]string) error {
	var err error
	if s.ID != "" {
		if prev, ok := seen[s.ID]; ok {
			err = multierr.Append(err, fmt.Errorf("%s: duplicate id %q (first used at %s)", path, s.ID, prev))
		} else {
			seen[s.ID] = path
		}
	}
	for _, f := range []struct{ name, value string }{{"x", s.X}, {"y", s.Y}, {"w", s.W}, {"h", s.H}} {
		v, perr := ParseValue(f.value)
		if perr != nil {
			err = multierr.Append(err, fmt.Errorf("%s.%s: %w", path, f.name, perr))
			continue
		}
		if (f.name == "w" || f.name == "h") && v.Unit == UnitFixed && v.Amount < 0 {
			err = multierr.Append(err, fmt.Errorf("%s.%s: negative size %v", path, f.name, v.Amount))
		}
	}
	if s.Flex != nil {
		err = multierr.Append(err, s.Flex.validate(path+".flex"))
	}
	if s.Item != nil {
		err = multierr.Append(err, s.Item.validate(path+".item"))
	}
	for i := range s.Children {
		err = multierr.Append(err, s.Children[i].validate(fmt.Sprintf("%s.children[%d]", path, i), seen))
	}
	return err
}

func (f *FlexSpec) validate(path string) error {
	var err error
	if f.Direction != "" {
		if _, perr := flex.ParseDirection(f.Direction); perr != nil {
			err = multierr.Append(err, fmt.Errorf("%s.direction: %w", path, perr))
		}
	}
	if f.AlignItems != "" {
		if _, perr := flex.ParseAlign(f.AlignItems); perr != nil {
			err = multierr.Append(err, fmt.Errorf("%s.align-items: %w", path, perr))
		}
	}
	if f.AlignContent != "" {
		if _, perr := flex.ParseAlignContent(f.AlignContent); perr != nil {
			err = multierr.Append(err, fmt.Errorf("%s.align-content: %w", path, perr))
		}
	}
	if f.JustifyContent != "" {
		if _, perr := flex.ParseJustify(f.JustifyContent); perr != nil {
			err = multierr.Append(err, fmt.Errorf("%s.justify-content: %w", path, perr))
		}
	}
	if _, perr := edges(f.Padding); perr != nil {
		err = multierr.Append(err, fmt.Errorf("%s.padding: %w", path, perr))
	}
	return err
}

func (it *ItemSpec) validate(path string) error {
	var err error
	check := func(name string, v float64) {
		if v < 0 {
			err = multierr.Append(err, fmt.Errorf("%s.%s: must not be negative, got %v", path, name, v))
		}
	}
	check("grow", it.Grow)
	if it.Shrink != nil {
		check("shrink", *it.Shrink)
	}
	check("min-width", it.MinWidth)
	check("max-width", it.MaxWidth)
	check("min-height", it.MinHeight)
	check("max-height", it.MaxHeight)
	if it.AlignSelf != "" {
		if _, perr := flex.ParseAlign(it.AlignSelf); perr != nil {
			err = multierr.Append(err, fmt.Errorf("%s.align-self: %w", path, perr))
		}
	}
	if _, perr := edges(it.Margin); perr != nil {
		err = multierr.Append(err, fmt.Errorf("%s.margin: %w", path, perr))
	}
	return err
}

// edges expands CSS shorthand: one value for all sides, two for vertical
// and horizontal, or four in top, right, bottom, left order.
func edges(v []float64) (flex.Edges, error) {
	for _, n := range v {
		if n < 0 {
			return flex.Edges{}, fmt.Errorf("must not be negative, got %v", v)
		}
	}
	switch len(v) {
	case 0:
		return flex.Edges{}, nil
	case 1:
		return flex.EdgeAll(v[0]), nil
	case 2:
		return flex.EdgeSymmetric(v[0], v[1]), nil
	case 4:
		return flex.EdgeTRBL(v[0], v[1], v[2], v[3]), nil
	default:
		return flex.Edges{}, fmt.Errorf("want 1, 2 or 4 values, got %d", len(v))
	}
}

// Build validates the document and constructs a scene from it. The scene
// root is the document's root box.
func Build(doc *Document, opts ...flex.TreeOption) (*Scene, error) {
	if err := doc.Validate(); err != nil {
		return nil, err
	}
	s := &Scene{
		tree: flex.NewTree(opts...),
		byID: make(map[string]*Box),
	}
	s.Root = s.build(&doc.Root, "root")
	return s, nil
}

// build creates the subtree of spec. Settings are applied before children
// are attached, so each container is dirtied once.
func (s *Scene) build(spec *BoxSpec, fallbackID string) *Box {
	id := spec.ID
	if id == "" && fallbackID != "" {
		id = fallbackID
	}
	b := s.NewBox(id)
	// Validated already.
	b.x, _ = ParseValue(spec.X)
	b.y, _ = ParseValue(spec.Y)
	b.w, _ = ParseValue(spec.W)
	b.h, _ = ParseValue(spec.H)
	b.hidden = spec.Hidden

	if it := spec.Item; it != nil {
		cfg := s.tree.Item(b)
		cfg.SetGrow(it.Grow)
		if it.Shrink != nil {
			cfg.SetShrink(*it.Shrink)
		}
		if it.AlignSelf != "" {
			a, _ := flex.ParseAlign(it.AlignSelf)
			cfg.SetAlignSelf(a)
		}
		cfg.SetMinWidth(it.MinWidth)
		cfg.SetMaxWidth(it.MaxWidth)
		cfg.SetMinHeight(it.MinHeight)
		cfg.SetMaxHeight(it.MaxHeight)
		m, _ := edges(it.Margin)
		cfg.SetMargin(m)
		if it.Disabled {
			s.tree.SetItemEnabled(b, false)
		}
	}

	if f := spec.Flex; f != nil {
		cfg := s.tree.Container(b)
		if f.Direction != "" {
			d, _ := flex.ParseDirection(f.Direction)
			cfg.SetDirection(d)
		}
		cfg.SetWrap(f.Wrap)
		if f.AlignItems != "" {
			a, _ := flex.ParseAlign(f.AlignItems)
			cfg.SetAlignItems(a)
		}
		if f.AlignContent != "" {
			a, _ := flex.ParseAlignContent(f.AlignContent)
			cfg.SetAlignContent(a)
		}
		if f.JustifyContent != "" {
			j, _ := flex.ParseJustify(f.JustifyContent)
			cfg.SetJustifyContent(j)
		}
		p, _ := edges(f.Padding)
		cfg.SetPadding(p)
	}

	children := make([]*Box, 0, len(spec.Children))
	for i := range spec.Children {
		children = append(children, s.build(&spec.Children[i], ""))
	}
	if len(children) > 0 {
		b.AddChild(children...)
	}
	if spec.Flex != nil {
		s.tree.SetFlexEnabled(b, true)
	}
	return b
}

// String summarizes the document.
func (d *Document) String() string {
	var count func(*BoxSpec) int
	count = func(s *BoxSpec) int {
		n := 1
		for i := range s.Children {
			n += count(&s.Children[i])
		}
		return n
	}
	name := d.Name
	if name == "" {
		name = "scene"
	}
	return fmt.Sprintf("%s (%d boxes)", strings.TrimSpace(name), count(&d.Root))
}
