package termstyle

// Palette is a terminal color number as passed to the setaf capability.
type Palette int

const (
	Red    Palette = 1
	Green  Palette = 2
	Orange Palette = 3
	Blue   Palette = 4
	Purple Palette = 5
)

func (p Palette) String() string {
	switch p {
	case Red:
		return "red"
	case Green:
		return "green"
	case Orange:
		return "orange"
	case Blue:
		return "blue"
	case Purple:
		return "purple"
	}
	return "unknown"
}
