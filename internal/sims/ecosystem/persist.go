package ecosystem

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
)

// ErrNoWorld is returned by Load when the input holds no <world> element.
var ErrNoWorld = errors.New("ecosystem: save data has no world element")

// LoadReport summarises what Load reconstructed and what it dropped.
type LoadReport struct {
	Tiles    int
	Plants   int
	Seeds    int
	Droplets int
	Skipped  int
}

type saveWorld struct {
	XMLName  xml.Name      `xml:"world"`
	Width    string        `xml:"width,attr"`
	Height   string        `xml:"height,attr"`
	Seed     string        `xml:"seed,attr"`
	Tiles    []saveTile    `xml:"tile"`
	Plants   []savePlant   `xml:"plant"`
	Seeds    []saveSeed    `xml:"seed"`
	Droplets []saveDroplet `xml:"droplet"`
}

type saveTile struct {
	X        string `xml:"x,attr"`
	Y        string `xml:"y,attr"`
	Terrain  string `xml:"terrain,attr"`
	Humidity string `xml:"humidity,attr"`
}

type savePlant struct {
	Type         string `xml:"type,attr"`
	X            string `xml:"x,attr"`
	Y            string `xml:"y,attr"`
	Size         string `xml:"size,attr"`
	MatureHeight string `xml:"matureHeight,attr"`
	Health       string `xml:"health,attr"`
	Water        string `xml:"water,attr"`
	GrowthTimer  string `xml:"growthTimer,attr"`
	Mature       string `xml:"mature,attr"`
}

type saveSeed struct {
	Type string `xml:"type,attr"`
	X    string `xml:"x,attr"`
	Y    string `xml:"y,attr"`
	DX   string `xml:"dx,attr"`
	DY   string `xml:"dy,attr"`
	Life string `xml:"life,attr"`
}

type saveDroplet struct {
	X  string `xml:"x,attr"`
	Y  string `xml:"y,attr"`
	DX string `xml:"dx,attr"`
	DY string `xml:"dy,attr"`
}

// Save writes the full world state as XML.
func (w *World) Save(out io.Writer) error {
	doc := saveWorld{
		Width:  strconv.Itoa(w.w),
		Height: strconv.Itoa(w.h),
		Seed:   strconv.FormatInt(w.cfg.Seed, 10),
	}
	for _, t := range w.tiles.Cells() {
		doc.Tiles = append(doc.Tiles, saveTile{
			X:        strconv.Itoa(t.X),
			Y:        strconv.Itoa(t.Y),
			Terrain:  t.Terrain.String(),
			Humidity: formatFloat(t.Humidity),
		})
	}
	for _, p := range w.plants {
		if p.dead {
			continue
		}
		doc.Plants = append(doc.Plants, savePlant{
			Type:         p.Type.String(),
			X:            strconv.Itoa(p.X),
			Y:            strconv.Itoa(p.Y),
			Size:         strconv.Itoa(p.Size),
			MatureHeight: strconv.Itoa(p.MatureHeight),
			Health:       formatFloat(p.Health),
			Water:        formatFloat(p.Water),
			GrowthTimer:  formatFloat(p.GrowthTimer),
			Mature:       strconv.FormatBool(p.Mature),
		})
	}
	for _, s := range w.seeds {
		doc.Seeds = append(doc.Seeds, saveSeed{
			Type: s.Type.String(),
			X:    formatFloat(s.X),
			Y:    formatFloat(s.Y),
			DX:   formatFloat(s.DX),
			DY:   formatFloat(s.DY),
			Life: formatFloat(s.Life),
		})
	}
	for _, d := range w.droplets {
		doc.Droplets = append(doc.Droplets, saveDroplet{
			X:  formatFloat(d.X),
			Y:  formatFloat(d.Y),
			DX: formatFloat(d.DX),
			DY: formatFloat(d.DY),
		})
	}

	if _, err := io.WriteString(out, xml.Header); err != nil {
		return fmt.Errorf("write save header: %w", err)
	}
	enc := xml.NewEncoder(out)
	enc.Indent("", "  ")
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode world: %w", err)
	}
	return enc.Close()
}

// Load replaces the world state with the XML read from in. The grid is sized
// first, then tiles, plants, seeds and droplets are restored in that order.
// Missing or malformed fields take their defaults; records that cannot be
// placed are skipped. On error the world is left untouched.
func (w *World) Load(in io.Reader) (LoadReport, error) {
	var doc saveWorld
	if err := xml.NewDecoder(in).Decode(&doc); err != nil {
		if errors.Is(err, io.EOF) {
			return LoadReport{}, ErrNoWorld
		}
		return LoadReport{}, fmt.Errorf("decode world: %w", err)
	}

	cfg := w.cfg
	cfg.Width = parseInt(doc.Width, DefaultConfig().Width)
	cfg.Height = parseInt(doc.Height, DefaultConfig().Height)
	if !validDimension(cfg.Width) {
		cfg.Width = DefaultConfig().Width
	}
	if !validDimension(cfg.Height) {
		cfg.Height = DefaultConfig().Height
	}
	cfg.Seed = parseInt64(doc.Seed, cfg.Seed)
	fresh := NewWithConfig(cfg)

	var report LoadReport
	for _, st := range doc.Tiles {
		t, ok := fresh.tiles.At(parseInt(st.X, -1), parseInt(st.Y, -1))
		if !ok {
			report.Skipped++
			continue
		}
		terrain, ok := ParseTerrain(st.Terrain)
		if !ok {
			report.Skipped++
			continue
		}
		t.Terrain = terrain
		t.Humidity = clamp01(parseFloat(st.Humidity, 0))
		fresh.rederiveTerrain(t)
		report.Tiles++
	}
	fresh.ledger = Ledger{}

	for _, sp := range doc.Plants {
		pt, ok := ParsePlantType(sp.Type)
		if !ok {
			report.Skipped++
			continue
		}
		info := pt.Info()
		p := Plant{
			Type:         pt,
			X:            parseInt(sp.X, -1),
			Y:            parseInt(sp.Y, -1),
			Size:         parseInt(sp.Size, 1),
			MatureHeight: parseInt(sp.MatureHeight, info.MatureHeightMin),
			Health:       parseFloat(sp.Health, 1),
			Water:        parseFloat(sp.Water, 0),
			Mature:       parseBool(sp.Mature, false),
			GrowthTimer:  parseFloat(sp.GrowthTimer, math.NaN()),
		}
		if math.IsNaN(p.GrowthTimer) {
			p.GrowthTimer = fresh.rng.FloatRange(info.GrowthTimeMin, info.GrowthTimeMax)
		}
		if p.MatureHeight < 1 {
			p.MatureHeight = info.MatureHeightMin
		}
		p.Size = max(1, min(p.Size, p.MatureHeight))
		if fresh.addPlant(p) == NoPlant {
			report.Skipped++
			continue
		}
		report.Plants++
	}

	for _, ss := range doc.Seeds {
		pt, ok := ParsePlantType(ss.Type)
		if !ok {
			report.Skipped++
			continue
		}
		fresh.seeds = append(fresh.seeds, Seed{
			Type: pt,
			X:    parseFloat(ss.X, 0),
			Y:    parseFloat(ss.Y, 0),
			DX:   parseFloat(ss.DX, 0),
			DY:   parseFloat(ss.DY, 0),
			Life: parseFloat(ss.Life, pt.Info().SeedLife),
		})
		report.Seeds++
	}

	for _, sd := range doc.Droplets {
		fresh.droplets = append(fresh.droplets, Droplet{
			X:  parseFloat(sd.X, 0),
			Y:  parseFloat(sd.Y, 0),
			DX: parseFloat(sd.DX, 0),
			DY: parseFloat(sd.DY, -cfg.Params.DropletSpeed),
		})
		report.Droplets++
	}

	fresh.rebuildDisplay()
	*w = *fresh
	return report, nil
}

// SaveFile writes the world to path.
func (w *World) SaveFile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create save %s: %w", path, err)
	}
	if err := w.Save(f); err != nil {
		f.Close()
		return fmt.Errorf("save %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close save %s: %w", path, err)
	}
	return nil
}

// LoadFile replaces the world with the save stored at path.
func (w *World) LoadFile(path string) (LoadReport, error) {
	f, err := os.Open(path)
	if err != nil {
		return LoadReport{}, fmt.Errorf("open save %s: %w", path, err)
	}
	defer f.Close()
	report, err := w.Load(f)
	if err != nil {
		return report, fmt.Errorf("load %s: %w", path, err)
	}
	return report, nil
}

func formatFloat(v float64) string { return strconv.FormatFloat(v, 'g', -1, 64) }

func parseFloat(s string, def float64) float64 {
	if parsed, err := strconv.ParseFloat(s, 64); err == nil && !math.IsNaN(parsed) && !math.IsInf(parsed, 0) {
		return parsed
	}
	return def
}

func parseInt(s string, def int) int {
	if parsed, err := strconv.Atoi(s); err == nil {
		return parsed
	}
	return def
}

func parseInt64(s string, def int64) int64 {
	if parsed, err := strconv.ParseInt(s, 10, 64); err == nil {
		return parsed
	}
	return def
}

func parseBool(s string, def bool) bool {
	if parsed, err := strconv.ParseBool(s); err == nil {
		return parsed
	}
	return def
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
