package schedule

import (
	_ "embed"
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

//go:embed default_day.yaml
var defaultDayYAML []byte

type templateFile struct {
	Slots []templateSlot `yaml:"slots"`
}

type templateSlot struct {
	Time  string `yaml:"time"`
	Kind  string `yaml:"kind"`
	Label string `yaml:"label"`
}

var (
	defaultTemplateOnce sync.Once
	defaultTemplate     []TimeSlot
)

// DefaultDayTemplate returns the built-in slot layout used to seed new
// days: a standard school day of open slots with a break and an admin
// period.
func DefaultDayTemplate() []TimeSlot {
	defaultTemplateOnce.Do(func() {
		tpl, err := parseTemplate(defaultDayYAML)
		if err != nil {
			// The embedded template is part of the build; a parse
			// failure here is a programming error.
			panic(fmt.Sprintf("embedded day template: %v", err))
		}
		defaultTemplate = tpl
	})
	out := make([]TimeSlot, len(defaultTemplate))
	copy(out, defaultTemplate)
	return out
}

// LoadDayTemplate reads a custom day template from a YAML file.
func LoadDayTemplate(path string) ([]TimeSlot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read day template: %w", err)
	}
	tpl, err := parseTemplate(data)
	if err != nil {
		return nil, fmt.Errorf("parse day template %s: %w", path, err)
	}
	return tpl, nil
}

func parseTemplate(data []byte) ([]TimeSlot, error) {
	var tf templateFile
	if err := yaml.Unmarshal(data, &tf); err != nil {
		return nil, err
	}
	if len(tf.Slots) == 0 {
		return nil, fmt.Errorf("template defines no slots")
	}
	slots := make([]TimeSlot, 0, len(tf.Slots))
	for i, ts := range tf.Slots {
		if ts.Time == "" || ts.Label == "" {
			return nil, fmt.Errorf("template slot %d: time and label are required", i)
		}
		kind := SlotKind(ts.Kind)
		switch kind {
		case SlotFree, SlotBreak, SlotAdmin:
		case "":
			kind = SlotFree
		default:
			return nil, fmt.Errorf("template slot %d: unsupported kind %q", i, ts.Kind)
		}
		slots = append(slots, TimeSlot{Time: ts.Time, Kind: kind, Label: ts.Label})
	}
	return slots, nil
}
