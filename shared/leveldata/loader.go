package leveldata

import (
	"fmt"
	"io/fs"
	"strconv"
	"strings"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/lafriks/go-tiled"
)

// Object property defaults, in metres.
const (
	defaultHeight      = 1.0
	defaultVineHeight  = 4.0
	defaultVineRadius  = 0.3
	defaultPlatformMin = -2.0
	defaultPlatformMax = 2.0
	defaultPlatformSpd = 2.0
	defaultContainer   = "caja"
)

// Load parses a TMX file into a level. It takes an fs.FS so callers can pass
// embed.FS (game) or os.DirFS (tests). One tile edge is one metre.
func Load(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}
	if levelMap.TileWidth <= 0 || levelMap.TileHeight <= 0 {
		return nil, fmt.Errorf("load TMX %s: tile size %dx%d", tmxPath, levelMap.TileWidth, levelMap.TileHeight)
	}

	p := parser{
		ppmX: float64(levelMap.TileWidth),
		ppmZ: float64(levelMap.TileHeight),
	}
	level := &Level{
		Name:  tmxPath,
		Width: float64(levelMap.Width),
		Depth: float64(levelMap.Height),
	}

	spawnFound := false
	for _, og := range levelMap.ObjectGroups {
		for _, o := range og.Objects {
			if err := p.object(level, og.Name, o, &spawnFound); err != nil {
				return nil, fmt.Errorf("load TMX %s: %s object %q: %w", tmxPath, og.Name, o.Name, err)
			}
		}
	}
	if !spawnFound {
		return nil, fmt.Errorf("load TMX %s: no PlayerSpawn object", tmxPath)
	}
	return level, nil
}

type parser struct {
	ppmX, ppmZ float64
}

func (p parser) object(level *Level, group string, o *tiled.Object, spawnFound *bool) error {
	props := o.Properties
	switch group {
	case "Solids":
		b, err := p.box(o)
		if err != nil {
			return err
		}
		level.Solids = append(level.Solids, b)
	case "DeadZones":
		b, err := p.box(o)
		if err != nil {
			return err
		}
		level.DeadZones = append(level.DeadZones, b)
	case "Hazards":
		b, err := p.box(o)
		if err != nil {
			return err
		}
		level.Hazards = append(level.Hazards, b)
	case "Platforms":
		b, err := p.box(o)
		if err != nil {
			return err
		}
		pl := Platform{Box: b}
		if pl.Axis, err = axisProperty(props.GetString("axis")); err != nil {
			return err
		}
		if pl.Min, err = floatProperty(props, "min", defaultPlatformMin); err != nil {
			return err
		}
		if pl.Max, err = floatProperty(props, "max", defaultPlatformMax); err != nil {
			return err
		}
		if pl.Speed, err = floatProperty(props, "speed", defaultPlatformSpd); err != nil {
			return err
		}
		if pl.Max < pl.Min {
			return fmt.Errorf("max %v below min %v", pl.Max, pl.Min)
		}
		level.Platforms = append(level.Platforms, pl)
	case "Vines":
		base, err := p.point(o, "bottom")
		if err != nil {
			return err
		}
		v := Vine{Base: base}
		if v.Height, err = floatProperty(props, "height", defaultVineHeight); err != nil {
			return err
		}
		if v.Radius, err = floatProperty(props, "radius", defaultVineRadius); err != nil {
			return err
		}
		level.Vines = append(level.Vines, v)
	case "Collectibles":
		pos, err := p.point(o, "elevation")
		if err != nil {
			return err
		}
		c := Collectible{Position: pos, Item: props.GetString("item")}
		switch kind := strings.ToLower(props.GetString("kind")); kind {
		case "", "normal":
		case "special":
			c.Special = true
			if c.Item == "" {
				return fmt.Errorf("special collectible without item")
			}
		default:
			return fmt.Errorf("unknown collectible kind %q", kind)
		}
		level.Collectibles = append(level.Collectibles, c)
	case "Destructibles":
		b, err := p.box(o)
		if err != nil {
			return err
		}
		d := Destructible{
			Name:         o.Name,
			Container:    props.GetString("container"),
			Box:          b,
			WithMesh:     props.GetBool("mesh"),
			WithMaterial: props.GetString("material") != "false",
		}
		if d.Container == "" {
			d.Container = defaultContainer
		}
		if d.Cols, err = intProperty(props, "cols", 2); err != nil {
			return err
		}
		if d.Rows, err = intProperty(props, "rows", 2); err != nil {
			return err
		}
		if d.Layers, err = intProperty(props, "layers", 1); err != nil {
			return err
		}
		level.Destructibles = append(level.Destructibles, d)
	case "Enemies":
		pos, err := p.point(o, "elevation")
		if err != nil {
			return err
		}
		en := Enemy{Position: pos}
		if en.RoamRadius, err = floatProperty(props, "roamRadius", 0); err != nil {
			return err
		}
		if en.DetectionRadius, err = floatProperty(props, "detectionRadius", 0); err != nil {
			return err
		}
		if en.RoamRadius < 0 || en.DetectionRadius < 0 {
			return fmt.Errorf("negative radius")
		}
		level.Enemies = append(level.Enemies, en)
	case "PlayerSpawn":
		pos, err := p.point(o, "elevation")
		if err != nil {
			return err
		}
		level.Spawn = pos
		*spawnFound = true
	}
	return nil
}

// box reads a rectangle object with optional bottom and height properties.
func (p parser) box(o *tiled.Object) (Box, error) {
	bottom, err := floatProperty(o.Properties, "bottom", 0)
	if err != nil {
		return Box{}, err
	}
	height, err := floatProperty(o.Properties, "height", defaultHeight)
	if err != nil {
		return Box{}, err
	}
	if o.Width <= 0 || o.Height <= 0 || height <= 0 {
		return Box{}, fmt.Errorf("empty volume %vx%vx%v", o.Width, o.Height, height)
	}
	return Box{
		Min: mgl64.Vec3{o.X / p.ppmX, bottom, o.Y / p.ppmZ},
		Max: mgl64.Vec3{(o.X + o.Width) / p.ppmX, bottom + height, (o.Y + o.Height) / p.ppmZ},
	}, nil
}

// point reads a point object, or the centre of a rectangle, with its height
// taken from the named property.
func (p parser) point(o *tiled.Object, heightProp string) (mgl64.Vec3, error) {
	y, err := floatProperty(o.Properties, heightProp, 0)
	if err != nil {
		return mgl64.Vec3{}, err
	}
	return mgl64.Vec3{(o.X + o.Width/2) / p.ppmX, y, (o.Y + o.Height/2) / p.ppmZ}, nil
}

func floatProperty(props tiled.Properties, name string, def float64) (float64, error) {
	raw := props.GetString(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("property %s: %w", name, err)
	}
	return v, nil
}

func intProperty(props tiled.Properties, name string, def int) (int, error) {
	raw := props.GetString(name)
	if raw == "" {
		return def, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("property %s: %w", name, err)
	}
	if v < 1 {
		return 0, fmt.Errorf("property %s: %d is not positive", name, v)
	}
	return v, nil
}

func axisProperty(raw string) (mgl64.Vec3, error) {
	switch strings.ToLower(raw) {
	case "", "y":
		return mgl64.Vec3{0, 1, 0}, nil
	case "x":
		return mgl64.Vec3{1, 0, 0}, nil
	case "z":
		return mgl64.Vec3{0, 0, 1}, nil
	}
	return mgl64.Vec3{}, fmt.Errorf("unknown axis %q", raw)
}
