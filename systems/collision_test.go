package systems

import (
	"math"
	"testing"

	"github.com/moakya/Graphical-Autonomous-Robot-Simulator/components"
)

func TestWallCollision(t *testing.T) {
	tests := []struct {
		name   string
		pose   components.Pose
		radius float64
		want   components.Kind
	}{
		{"inside", components.Pose{X: 600, Y: 400}, 20, components.KindUndefined},
		{"right", components.Pose{X: 1190, Y: 400}, 20, components.KindRightWall},
		{"left", components.Pose{X: 10, Y: 400}, 20, components.KindLeftWall},
		{"bottom", components.Pose{X: 600, Y: 940}, 20, components.KindBottomWall},
		{"top", components.Pose{X: 600, Y: 5}, 20, components.KindTopWall},
		{"corner prefers right", components.Pose{X: 1190, Y: 5}, 20, components.KindRightWall},
		{"exactly touching", components.Pose{X: 1180, Y: 400}, 20, components.KindRightWall},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WallCollision(tt.pose, tt.radius, 1200, 950); got != tt.want {
				t.Errorf("WallCollision = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSnapFromWall(t *testing.T) {
	tests := []struct {
		name  string
		wall  components.Kind
		start components.Pose
		want  components.Pose
	}{
		{"right", components.KindRightWall, components.Pose{X: 1195, Y: 400}, components.Pose{X: 1200 - 25, Y: 400}},
		{"left", components.KindLeftWall, components.Pose{X: -4, Y: 400}, components.Pose{X: 25, Y: 400}},
		{"bottom", components.KindBottomWall, components.Pose{X: 600, Y: 949}, components.Pose{X: 600, Y: 950 - 25}},
		{"top", components.KindTopWall, components.Pose{X: 600, Y: 1}, components.Pose{X: 600, Y: 25}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := tt.start
			SnapFromWall(&p, 20, tt.wall, 1200, 950, 5)
			if p != tt.want {
				t.Errorf("pose = %+v, want %+v", p, tt.want)
			}
		})
	}
}

func TestSeparateFrom(t *testing.T) {
	tests := []struct {
		name   string
		mobile components.Pose
		other  components.Pose
	}{
		{"horizontal", components.Pose{X: 110, Y: 100}, components.Pose{X: 100, Y: 100}},
		{"diagonal", components.Pose{X: 105, Y: 95}, components.Pose{X: 100, Y: 100}},
		{"coincident", components.Pose{X: 100, Y: 100}, components.Pose{X: 100, Y: 100}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := tt.mobile
			SeparateFrom(&m, 15, tt.other, 20, 3)
			if d := m.DistanceTo(tt.other); math.Abs(d-38) > 1e-9 {
				t.Errorf("distance after separation = %v, want 38", d)
			}
		})
	}
}

func TestOverlapping(t *testing.T) {
	a := components.Pose{X: 0, Y: 0}
	if !Overlapping(a, 10, components.Pose{X: 20}, 10) {
		t.Error("touching discs should overlap")
	}
	if Overlapping(a, 10, components.Pose{X: 20.01}, 10) {
		t.Error("separated discs should not overlap")
	}
}

func TestArcWindow(t *testing.T) {
	var m components.Motion
	p := components.Pose{Theta: 10}

	BeginArc(&p, &m, 2)

	if p.Theta != 190 || !m.Colliding || m.ArcTicks != 2 {
		t.Fatalf("after BeginArc: pose %+v motion %+v", p, m)
	}
	if !StepArc(&m) || !StepArc(&m) {
		t.Error("expected two ticks inside the arc window")
	}
	if StepArc(&m) {
		t.Error("arc window should have closed")
	}
	if m.Colliding {
		t.Error("Colliding should clear when the window closes")
	}
}
