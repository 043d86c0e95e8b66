package architect

import (
	"architect/pkg/game/generator"
)

// RoomTypeDescriptor is one entry of the room-type catalog. MaxDepth <= 0
// means no upper bound. The built-in "rectangular" ignores its own filters:
// it is the fallback when nothing else fits, so it is always eligible.
type RoomTypeDescriptor struct {
	Name      string
	Shape     generator.ShapeFunc
	MinDepth  int
	MaxDepth  int
	Weight    int
	MinWidth  int
	MinHeight int
}

// RoomTypeRectangular is the always-eligible fallback room type
const RoomTypeRectangular = "rectangular"

// defaultRoomTypes returns the contractual built-in catalog
func defaultRoomTypes() []RoomTypeDescriptor {
	return []RoomTypeDescriptor{
		{Name: RoomTypeRectangular, Shape: generator.ShapeRectangle, Weight: 100, MinWidth: 3, MinHeight: 3},
		{Name: "cross", Shape: generator.ShapeCross, Weight: 30, MinDepth: 2, MinWidth: 7, MinHeight: 7},
		{Name: "circular", Shape: generator.ShapeCircle, Weight: 20, MinDepth: 3, MinWidth: 5, MinHeight: 5},
		{Name: "chunky", Shape: generator.ShapeChunky, Weight: 15, MinDepth: 4, MinWidth: 7, MinHeight: 7},
	}
}

// RegisterRoomType upserts a descriptor: a later registration of the same
// name replaces the earlier one in place, keeping its position in the
// registration order the weighted draw walks.
func (a *Architect) RegisterRoomType(desc RoomTypeDescriptor) {
	for i := range a.roomTypes {
		if a.roomTypes[i].Name == desc.Name {
			a.roomTypes[i] = desc
			return
		}
	}
	a.roomTypes = append(a.roomTypes, desc)
}

// RoomType returns the registered descriptor by name, or nil
func (a *Architect) RoomType(name string) *RoomTypeDescriptor {
	for i := range a.roomTypes {
		if a.roomTypes[i].Name == name {
			return &a.roomTypes[i]
		}
	}
	return nil
}

// eligibleRoomType checks a descriptor's depth and size filters against the
// selection inputs
func eligibleRoomType(desc *RoomTypeDescriptor, depth, width, height int) bool {
	if desc.Name == RoomTypeRectangular {
		return true
	}
	if depth < desc.MinDepth {
		return false
	}
	if desc.MaxDepth > 0 && depth > desc.MaxDepth {
		return false
	}
	return width >= desc.MinWidth && height >= desc.MinHeight
}

// SelectRoomTypeForDepth filters the catalog by depth and region size, then
// draws from the eligible set weighted by descriptor weight, walking
// registration order. An empty eligible set returns "rectangular".
func (a *Architect) SelectRoomTypeForDepth(depth, width, height int) string {
	total := 0
	for i := range a.roomTypes {
		if eligibleRoomType(&a.roomTypes[i], depth, width, height) && a.roomTypes[i].Weight > 0 {
			total += a.roomTypes[i].Weight
		}
	}
	if total == 0 {
		return RoomTypeRectangular
	}

	roll := a.rng.Float64() * float64(total)
	for i := range a.roomTypes {
		desc := &a.roomTypes[i]
		if !eligibleRoomType(desc, depth, width, height) || desc.Weight <= 0 {
			continue
		}
		roll -= float64(desc.Weight)
		if roll <= 0 {
			return desc.Name
		}
	}
	return RoomTypeRectangular
}
