// Package contrast turns classified palette colours into black/white
// contrast utility rules.
package contrast

// Contrast colour literals.
const (
	Black = "black"
	White = "white"
)

// Dimension is a CSS property family that gets contrast utilities.
type Dimension interface {
	// Name is the theme key used to enable the dimension and resolve its variants.
	Name() string
	// Selector returns the utility selector for a colour name.
	Selector(colourName string) string
	// Declarations returns the declarations applying colour.
	Declarations(colour string) map[string]string
}

// dimension is the fixed implementation behind the exported dimensions.
type dimension struct {
	name     string
	prefix   string
	pseudo   string
	property string
}

func (d dimension) Name() string {
	return d.name
}

func (d dimension) Selector(colourName string) string {
	return "." + d.prefix + "-" + EscapeClass(colourName) + "-contrast" + d.pseudo
}

func (d dimension) Declarations(colour string) map[string]string {
	return map[string]string{d.property: colour}
}

// The four contrast dimensions.
var (
	BackgroundColor  Dimension = dimension{name: "backgroundColor", prefix: "bg", property: "background-color"}
	BorderColor      Dimension = dimension{name: "borderColor", prefix: "border", property: "border-color"}
	PlaceholderColor Dimension = dimension{name: "placeholderColor", prefix: "placeholder", pseudo: "::placeholder", property: "color"}
	TextColor        Dimension = dimension{name: "textColor", prefix: "text", property: "color"}
)

// Dimensions returns the contrast dimensions in generation order.
func Dimensions() []Dimension {
	return []Dimension{BackgroundColor, BorderColor, PlaceholderColor, TextColor}
}

// DimensionByName looks up a dimension by its theme key.
func DimensionByName(name string) (Dimension, bool) {
	for _, d := range Dimensions() {
		if d.Name() == name {
			return d, true
		}
	}
	return nil, false
}
