// Package model defines the value types shared by the furniture layout
// engine: dimensions, structural components, materials, and the product
// configuration aggregate. All dimensions and positions are in centimeters.
package model

import "github.com/google/uuid"

// Position3D is a point in 3D space, in cm. For cabinets and consoles the
// origin is the front-bottom-left corner of the carcass; for tables the
// origin is the center of the tabletop's top face, with Y growing upward.
type Position3D struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Size3D is an axis-aligned extent in cm.
type Size3D struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Depth  float64 `json:"depth"`
}

// Dimensions holds the overall requested dimensions of a product, in cm.
type Dimensions struct {
	Width  float64 `json:"width"`
	Height float64 `json:"height"`
	Depth  float64 `json:"depth"`
}

// ComponentType identifies the structural role of a component.
type ComponentType int

const (
	ComponentDivider ComponentType = iota // vertical panel separating compartments
	ComponentShelf                        // horizontal panel bounding a row
	ComponentLeg
	ComponentTabletop
	ComponentPanel // frame side, top, bottom, or back panel
	ComponentDoor
	ComponentDrawer
	ComponentBrace // stretcher added when a span exceeds the support limit
	ComponentAccessory
)

func (t ComponentType) String() string {
	switch t {
	case ComponentDivider:
		return "Divider"
	case ComponentShelf:
		return "Shelf"
	case ComponentLeg:
		return "Leg"
	case ComponentTabletop:
		return "Tabletop"
	case ComponentPanel:
		return "Panel"
	case ComponentDoor:
		return "Door"
	case ComponentDrawer:
		return "Drawer"
	case ComponentBrace:
		return "Brace"
	default:
		return "Accessory"
	}
}

// Material is a surface material name, e.g. "wood" or "metal".
type Material string

// Color is a finish color name, e.g. "oak" or "walnut".
type Color string

const (
	MaterialWood  Material = "wood"
	MaterialMetal Material = "metal"
	MaterialGlass Material = "glass"
	MaterialMDF   Material = "mdf"

	ColorOak    Color = "oak"
	ColorWalnut Color = "walnut"
	ColorBirch  Color = "birch"
	ColorWhite  Color = "white"
	ColorBlack  Color = "black"
)

// Component is one structural piece of an assembled product. Components are
// value objects: every assembly run produces a fresh list and the previous
// one is discarded wholesale, so positions and sizes are never mutated in
// place. Position is the center of the component's axis-aligned box.
type Component struct {
	ID       string        `json:"id"`
	Type     ComponentType `json:"type"`
	Label    string        `json:"label"`
	Position Position3D    `json:"position"`
	Size     Size3D        `json:"size"`
	Material Material      `json:"material"`
	Color    Color         `json:"color"`
	Visible  bool          `json:"visible"`
}

// NewComponent creates a component with a fresh 8-char id.
func NewComponent(t ComponentType, label string, pos Position3D, size Size3D, mat Material, col Color) Component {
	return Component{
		ID:       uuid.New().String()[:8],
		Type:     t,
		Label:    label,
		Position: pos,
		Size:     size,
		Material: mat,
		Color:    col,
		Visible:  true,
	}
}

// Bounds returns the min and max corners of the component's box.
func (c Component) Bounds() (min, max Position3D) {
	min = Position3D{
		X: c.Position.X - c.Size.Width/2,
		Y: c.Position.Y - c.Size.Height/2,
		Z: c.Position.Z - c.Size.Depth/2,
	}
	max = Position3D{
		X: c.Position.X + c.Size.Width/2,
		Y: c.Position.Y + c.Size.Height/2,
		Z: c.Position.Z + c.Size.Depth/2,
	}
	return min, max
}

// FaceArea returns the area of the component's largest face in cm²,
// used by the pricing estimator as the visible panel surface.
func (c Component) FaceArea() float64 {
	wh := c.Size.Width * c.Size.Height
	wd := c.Size.Width * c.Size.Depth
	hd := c.Size.Height * c.Size.Depth
	area := wh
	if wd > area {
		area = wd
	}
	if hd > area {
		area = hd
	}
	return area
}

// MaterialGroup collects the components sharing one (material, color) pair.
// Groups are fully derived and rebuilt after every assembly.
type MaterialGroup struct {
	Material     Material `json:"material"`
	Color        Color    `json:"color"`
	ComponentIDs []string `json:"component_ids"`
}
