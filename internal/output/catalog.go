package output

import (
	"fmt"

	geojson "github.com/paulmach/go.geojson"
	billy "gopkg.in/src-d/go-billy.v4"

	"cratersim/internal/sims/craters"
)

// Catalog builds a GeoJSON feature collection with one point per crater in
// terrain coordinates. Each feature carries its step, radius and whether it
// is still visible.
func Catalog(all, visible []craters.Crater) *geojson.FeatureCollection {
	remaining := make(map[craters.Crater]int, len(visible))
	for _, c := range visible {
		remaining[c]++
	}
	// Duplicates are matched latest first since later copies cannot have
	// been buried by the same impact.
	isVisible := make([]bool, len(all))
	for i := len(all) - 1; i >= 0; i-- {
		if remaining[all[i]] > 0 {
			remaining[all[i]]--
			isVisible[i] = true
		}
	}

	fc := geojson.NewFeatureCollection()
	for i, c := range all {
		f := geojson.NewPointFeature([]float64{c.X, c.Y})
		f.SetProperty("step", i)
		f.SetProperty("radius", c.Radius)
		f.SetProperty("visible", isVisible[i])
		fc.AddFeature(f)
	}
	return fc
}

// WriteCatalog writes Catalog(all, visible) to name.
func WriteCatalog(fs billy.Filesystem, name string, all, visible []craters.Crater) error {
	data, err := Catalog(all, visible).MarshalJSON()
	if err != nil {
		return fmt.Errorf("encode catalog: %w", err)
	}
	file, err := fs.Create(name)
	if err != nil {
		return err
	}
	if _, err := file.Write(data); err != nil {
		file.Close()
		return err
	}
	return file.Close()
}
