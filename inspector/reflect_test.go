package inspector

import (
	"testing"

	"github.com/moakya/Graphical-Autonomous-Robot-Simulator/components"
)

func TestParseTag(t *testing.T) {
	tests := []struct {
		tag     string
		widget  Widget
		options map[string]string
	}{
		{"", WidgetAuto, nil},
		{"label", WidgetLabel, nil},
		{"label,fmt:%.1f", WidgetLabel, map[string]string{"fmt": "%.1f"}},
		{"bar,max:20", WidgetBar, map[string]string{"max": "20"}},
		{"angle", WidgetAngle, nil},
		{"skip", WidgetSkip, nil},
		{"unknown", WidgetAuto, nil},
	}

	for _, tt := range tests {
		t.Run(tt.tag, func(t *testing.T) {
			widget, options := ParseTag(tt.tag)
			if widget != tt.widget {
				t.Errorf("widget = %v, want %v", widget, tt.widget)
			}
			for k, v := range tt.options {
				if options[k] != v {
					t.Errorf("option %s = %q, want %q", k, options[k], v)
				}
			}
		})
	}
}

func TestExtractFieldsHonorsTags(t *testing.T) {
	body := &components.Body{Radius: 15, Color: components.Color{R: 1}}
	fields := ExtractFields(body)

	if len(fields) != 1 {
		t.Fatalf("got %d fields, want 1 (color skipped)", len(fields))
	}
	if fields[0].Name != "Radius" || fields[0].Widget != WidgetLabel {
		t.Errorf("field = %+v", fields[0])
	}
	if got := FormatValue(fields[0].Value, fields[0].Options["fmt"]); got != "15.0" {
		t.Errorf("formatted = %q, want 15.0", got)
	}
}

func TestExtractFieldsAutoDetect(t *testing.T) {
	h := components.Hunger{Hungry: true, DeathTicks: 12}
	fields := ExtractFields(h)

	byName := make(map[string]Field, len(fields))
	for _, f := range fields {
		byName[f.Name] = f
	}
	if byName["Hungry"].Widget != WidgetBool {
		t.Errorf("Hungry widget = %v, want bool", byName["Hungry"].Widget)
	}
	if byName["DeathTicks"].Value != 12 {
		t.Errorf("DeathTicks = %v, want 12", byName["DeathTicks"].Value)
	}
}

func TestExtractSectionsSkipsEmpty(t *testing.T) {
	r := &components.Robot{Behavior: components.BehaviorLove}
	sections := ExtractSections([]interface{}{
		&components.Identity{ID: 3, Kind: components.KindRobot, Name: "Robot-Love-1"},
		r,
		42,
	})

	if len(sections) != 2 {
		t.Fatalf("got %d sections, want 2", len(sections))
	}
	if sections[0].Title != "Identity" || sections[1].Title != "Robot" {
		t.Errorf("titles = %q, %q", sections[0].Title, sections[1].Title)
	}
	if len(sections[1].Fields) != 1 {
		t.Errorf("robot fields = %d, want behavior only", len(sections[1].Fields))
	}
	if got := FormatValue(sections[1].Fields[0].Value, ""); got != "Love" {
		t.Errorf("behavior = %q, want Love", got)
	}
}

func TestGetFloatSlice(t *testing.T) {
	values, ok := GetFloatSlice([4]float64{1, 2, 3, 4})
	if !ok || len(values) != 4 || values[3] != 4 {
		t.Errorf("GetFloatSlice = %v, %v", values, ok)
	}
	if _, ok := GetFloatSlice([]string{"a"}); ok {
		t.Error("string slice accepted")
	}
}

func TestGetMax(t *testing.T) {
	if GetMax(map[string]string{"max": "20"}) != 20 {
		t.Error("max option ignored")
	}
	if GetMax(nil) != 1 {
		t.Error("default max should be 1")
	}
}
