package scene

import (
	"fmt"
	"io"
	"text/tabwriter"

	jsoniter "github.com/json-iterator/go"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Result is the resolved geometry of one box.
type Result struct {
	ID     string  `json:"id"`
	Parent string  `json:"parent,omitempty"`
	Depth  int     `json:"depth"`
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	W      float64 `json:"w"`
	H      float64 `json:"h"`
	WorldX float64 `json:"worldX"`
	WorldY float64 `json:"worldY"`
	Hidden bool    `json:"hidden,omitempty"`
}

// Results lists the resolved geometry of every box, parents first.
func (s *Scene) Results() []Result {
	var out []Result
	s.Walk(func(b *Box) bool {
		r := b.Layout()
		w := b.WorldRect()
		res := Result{
			ID:     b.ID,
			Depth:  b.Depth(),
			X:      r.X,
			Y:      r.Y,
			W:      r.Width,
			H:      r.Height,
			WorldX: w.X,
			WorldY: w.Y,
			Hidden: b.hidden,
		}
		if b.parent != nil {
			res.Parent = b.parent.ID
		}
		out = append(out, res)
		return true
	})
	return out
}

// WriteJSON writes the results as an indented JSON array.
func (s *Scene) WriteJSON(w io.Writer) error {
	data, err := json.MarshalIndent(s.Results(), "", "  ")
	if err != nil {
		return fmt.Errorf("marshal results: %w", err)
	}
	data = append(data, '\n')
	_, err = w.Write(data)
	return err
}

// WriteText writes one aligned line per box: id, x, y, w, h relative to
// the parent. Children are indented below their parent.
func (s *Scene) WriteText(w io.Writer) error {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, r := range s.Results() {
		id := r.ID
		for i := 0; i < r.Depth; i++ {
			id = "  " + id
		}
		if r.Hidden {
			id += " (hidden)"
		}
		fmt.Fprintf(tw, "%s\t%g\t%g\t%g\t%g\n", id, r.X, r.Y, r.W, r.H)
	}
	return tw.Flush()
}
