package curve

import "github.com/vovakirdan/spacefill/internal/registry"

func init() {
	registry.Register(registry.Info{
		ID:       KindHilbert,
		Title:    "Hilbert curve",
		MinOrder: 0,
		MaxOrder: MaxOrder,
	}, func(order int) (registry.Curve, error) {
		c, err := NewHilbert(order)
		if err != nil {
			return nil, err
		}
		return c, nil
	})

	registry.Register(registry.Info{
		ID:       KindMoore,
		Title:    "Moore curve",
		MinOrder: 2,
		MaxOrder: MaxOrder,
	}, func(order int) (registry.Curve, error) {
		c, err := NewMoore(order)
		if err != nil {
			return nil, err
		}
		return c, nil
	})
}
