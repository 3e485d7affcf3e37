package render

import (
	"testing"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/leterax/go-orrery/pkg/control"
	"github.com/leterax/go-orrery/pkg/frame"
	"github.com/leterax/go-orrery/pkg/scene"
)

func TestDrawListFiltersLayers(t *testing.T) {
	s := scene.New()
	geo := scene.NewSphereGeometry(1, 8, 6)

	planet := scene.NewNode("planet", geo, scene.Material{})
	marker := scene.NewNode("marker", geo, scene.Material{})
	marker.Layers = scene.MinimapLayer
	group := scene.NewNode("group", nil, scene.Material{})
	moon := scene.NewNode("moon", geo, scene.Material{})
	both := scene.NewNode("both", geo, scene.Material{})
	both.Layers = scene.MainLayer | scene.MinimapLayer

	s.Add(planet)
	s.Add(marker)
	s.Add(group)
	group.Add(moon)
	planet.Add(both)

	names := func(nodes []*scene.Node) []string {
		var out []string
		for _, n := range nodes {
			out = append(out, n.Name)
		}
		return out
	}

	tests := []struct {
		name   string
		layers scene.Layers
		want   []string
	}{
		{"main", scene.MainLayer, []string{"planet", "both", "moon"}},
		{"minimap", scene.MinimapLayer, []string{"both", "marker"}},
		{"all", scene.MainLayer | scene.MinimapLayer, []string{"planet", "both", "marker", "moon"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := names(DrawList(s.Root, tt.layers))
			if len(got) != len(tt.want) {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Fatalf("got %v, want %v", got, tt.want)
				}
			}
		})
	}
}

func TestMinimapOrigin(t *testing.T) {
	tests := []struct {
		main frame.Size
		x, y int
	}{
		{frame.Size{W: 1920, H: 1080}, 1920 - 200 - MinimapMargin, 1080 - 200 - MinimapMargin},
		{frame.Size{W: 800, H: 600}, 800 - 200 - MinimapMargin, 600 - 200 - MinimapMargin},
		{frame.Size{W: 150, H: 100}, 0, 0},
	}
	for _, tt := range tests {
		x, y := MinimapOrigin(tt.main, frame.MinimapSize)
		if x != tt.x || y != tt.y {
			t.Errorf("MinimapOrigin(%v) = %d,%d want %d,%d", tt.main, x, y, tt.x, tt.y)
		}
	}
}

func TestKeyBindings(t *testing.T) {
	tests := []struct {
		key  glfw.Key
		want control.Action
	}{
		{glfw.KeySpace, control.ActionToggle},
		{glfw.KeyR, control.ActionReset},
		{glfw.KeyUp, control.ActionLookUp},
		{glfw.KeyQ, control.ActionMoveUp},
		{glfw.KeyE, control.ActionMoveDown},
		{glfw.KeyZ, control.ActionNone},
		{KeyQuit, control.ActionNone},
	}
	for _, tt := range tests {
		if got := ActionFor(tt.key); got != tt.want {
			t.Errorf("ActionFor(%v) = %v, want %v", tt.key, got, tt.want)
		}
	}
}
