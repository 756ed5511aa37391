package animator

// TagTransient marks primitives that are replaced on every tick.
const TagTransient = "spoke"

// Font describes overlay text. Hosts map Family to whatever face they carry.
type Font struct {
	Family string
	Size   float64
	Bold   bool
}

// Surface is a retained drawing surface with tagged primitives.
type Surface interface {
	Line(x1, y1, x2, y2 float64, c RGB, width float64, tag string)
	Circle(cx, cy, r float64, outline RGB, width float64, tag string)
	Disc(cx, cy, r float64, fill RGB, tag string)
	Text(x, y float64, s string, c RGB, f Font)
	Clear(tag string)
}

// Host owns the window the surface lives in.
type Host interface {
	Close()
}

type Kind int

const (
	KindLine Kind = iota
	KindCircle
	KindDisc
	KindText
)

func (k Kind) String() string {
	switch k {
	case KindLine:
		return "line"
	case KindCircle:
		return "circle"
	case KindDisc:
		return "disc"
	case KindText:
		return "text"
	}
	return "unknown"
}

// Command is one recorded primitive. Lines use X1..Y2; circles, discs and
// text use X1, Y1 as their anchor.
type Command struct {
	Kind   Kind
	X1, Y1 float64
	X2, Y2 float64
	Radius float64
	Color  RGB
	Width  float64
	Text   string
	Font   Font
	Tag    string
}

// DisplayList is an in-memory Surface. Commands are kept in paint order;
// later commands are drawn on top.
type DisplayList struct {
	cmds []Command
}

func NewDisplayList() *DisplayList {
	return &DisplayList{}
}

func (d *DisplayList) Line(x1, y1, x2, y2 float64, c RGB, width float64, tag string) {
	d.cmds = append(d.cmds, Command{Kind: KindLine, X1: x1, Y1: y1, X2: x2, Y2: y2, Color: c, Width: width, Tag: tag})
}

func (d *DisplayList) Circle(cx, cy, r float64, outline RGB, width float64, tag string) {
	d.cmds = append(d.cmds, Command{Kind: KindCircle, X1: cx, Y1: cy, Radius: r, Color: outline, Width: width, Tag: tag})
}

func (d *DisplayList) Disc(cx, cy, r float64, fill RGB, tag string) {
	d.cmds = append(d.cmds, Command{Kind: KindDisc, X1: cx, Y1: cy, Radius: r, Color: fill, Tag: tag})
}

func (d *DisplayList) Text(x, y float64, s string, c RGB, f Font) {
	d.cmds = append(d.cmds, Command{Kind: KindText, X1: x, Y1: y, Color: c, Text: s, Font: f})
}

// Clear drops every command carrying tag. Untagged commands are never
// cleared.
func (d *DisplayList) Clear(tag string) {
	if tag == "" {
		return
	}
	kept := d.cmds[:0]
	for _, c := range d.cmds {
		if c.Tag != tag {
			kept = append(kept, c)
		}
	}
	clear(d.cmds[len(kept):])
	d.cmds = kept
}

// Each walks the commands in paint order.
func (d *DisplayList) Each(fn func(Command)) {
	for _, c := range d.cmds {
		fn(c)
	}
}

// Commands returns a copy of the recorded commands.
func (d *DisplayList) Commands() []Command {
	out := make([]Command, len(d.cmds))
	copy(out, d.cmds)
	return out
}

// Count returns how many commands carry tag.
func (d *DisplayList) Count(tag string) int {
	n := 0
	for _, c := range d.cmds {
		if c.Tag == tag {
			n++
		}
	}
	return n
}

func (d *DisplayList) Len() int { return len(d.cmds) }
