package factory

import (
	"fmt"
	"image/color"
	"math"

	"github.com/automoto/vinehop/archetypes"
	"github.com/automoto/vinehop/components"
	cfg "github.com/automoto/vinehop/config"
	"github.com/automoto/vinehop/shared/gamemath"
	"github.com/automoto/vinehop/shared/leveldata"
	"github.com/automoto/vinehop/systems"
	"github.com/automoto/vinehop/tags"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateDestructible spawns a breakable prop: a root holding one container,
// which holds a Cols x Rows x Layers grid of pieces filling the box.
//
// Pieces of a mesh prop get no collider here; one is built from the mesh when
// the piece breaks off.
func CreateDestructible(ecs *ecs.ECS, d leveldata.Destructible) *donburi.Entry {
	root := archetypes.Destructible.Spawn(ecs)

	box := gamemath.AABB{Min: d.Min, Max: d.Max}
	components.Transform.SetValue(root, components.NewTransform(box.Center()))
	components.Collider.SetValue(root, components.ColliderData{
		Bounds:  box,
		Shape:   components.ShapeBox,
		Enabled: true,
		Layer:   cfg.LayerDestructible,
	})
	systems.AddObject(ecs.World, root, box, tags.ResolvDestructible)

	container := archetypes.Part.Spawn(ecs)
	components.Transform.SetValue(container, components.NewTransform(box.Center()))
	cd := components.PartData{
		Name:   d.Container,
		Root:   root.Entity(),
		Parent: root.Entity(),
	}

	size := box.Max.Sub(box.Min)
	cell := mgl64.Vec3{
		size.X() / float64(d.Cols),
		size.Y() / float64(d.Rows),
		size.Z() / float64(d.Layers),
	}
	half := cell.Mul(0.5)

	for i := 0; i < d.Cols; i++ {
		for j := 0; j < d.Rows; j++ {
			for k := 0; k < d.Layers; k++ {
				centre := box.Min.Add(mgl64.Vec3{
					(float64(i) + 0.5) * cell.X(),
					(float64(j) + 0.5) * cell.Y(),
					(float64(k) + 0.5) * cell.Z(),
				})
				piece := createPiece(ecs, d, fmt.Sprintf("%s_%d_%d_%d", d.Name, i, j, k), centre, half)
				components.Part.SetValue(piece, components.PartData{
					Name:   components.Part.Get(piece).Name,
					Root:   root.Entity(),
					Parent: container.Entity(),
				})
				cd.Children = append(cd.Children, piece.Entity())
			}
		}
	}
	components.Part.SetValue(container, cd)

	components.Destructible.SetValue(root, components.DestructibleData{
		State: components.Intact,
		Parts: []donburi.Entity{container.Entity()},
	})
	return root
}

func createPiece(ecs *ecs.ECS, d leveldata.Destructible, name string, centre, half mgl64.Vec3) *donburi.Entry {
	var piece *donburi.Entry
	if d.WithMesh {
		piece = archetypes.Part.Spawn(ecs, components.Visual)
	} else {
		piece = archetypes.Part.Spawn(ecs, components.Visual, components.Collider)
		components.Collider.SetValue(piece, components.ColliderData{
			Bounds: gamemath.BoxFromCenter(centre, half),
			Shape:  components.ShapeBox,
			Layer:  cfg.LayerDestructible,
		})
	}

	components.Transform.SetValue(piece, components.NewTransform(centre))
	components.Part.SetValue(piece, components.PartData{Name: name})
	components.Visual.SetValue(piece, components.VisualData{
		Color:       pieceColor(centre),
		Alpha:       1,
		HalfExtents: half,
		HasMesh:     d.WithMesh,
		HasMaterial: d.WithMaterial,
	})
	return piece
}

// pieceColor varies the crate brown per piece so the grid reads when drawn.
func pieceColor(centre mgl64.Vec3) color.RGBA {
	c := cfg.Brown
	shade := uint8(int(math.Abs(centre.X()*7+centre.Y()*11+centre.Z()*13)) % 30)
	c.R -= shade
	c.G -= shade / 2
	return c
}
