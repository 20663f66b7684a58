package domain

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// Enums serialize as their names in both YAML scenario files and JSON output.

func (pc PhaseCategory) MarshalYAML() (interface{}, error) { return pc.String(), nil }

func (pc *PhaseCategory) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	parsed, ok := ParsePhaseCategory(name)
	if !ok {
		return fmt.Errorf("unknown phase category %q", name)
	}
	*pc = parsed
	return nil
}

func (pc PhaseCategory) MarshalJSON() ([]byte, error) { return quoted(pc.String()), nil }

func (pc *PhaseCategory) UnmarshalJSON(data []byte) error {
	name, err := unquoted(data)
	if err != nil {
		return err
	}
	parsed, ok := ParsePhaseCategory(name)
	if !ok {
		return fmt.Errorf("unknown phase category %q", name)
	}
	*pc = parsed
	return nil
}

func (c Certainty) MarshalYAML() (interface{}, error) { return c.String(), nil }

func (c *Certainty) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	parsed, ok := ParseCertainty(name)
	if !ok {
		return fmt.Errorf("unknown certainty %q", name)
	}
	*c = parsed
	return nil
}

func (c Certainty) MarshalJSON() ([]byte, error) { return quoted(c.String()), nil }

func (c *Certainty) UnmarshalJSON(data []byte) error {
	name, err := unquoted(data)
	if err != nil {
		return err
	}
	parsed, ok := ParseCertainty(name)
	if !ok {
		return fmt.Errorf("unknown certainty %q", name)
	}
	*c = parsed
	return nil
}

func (f Flexibility) MarshalYAML() (interface{}, error) { return f.String(), nil }

func (f *Flexibility) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	parsed, ok := ParseFlexibility(name)
	if !ok {
		return fmt.Errorf("unknown flexibility %q", name)
	}
	*f = parsed
	return nil
}

func (f Flexibility) MarshalJSON() ([]byte, error) { return quoted(f.String()), nil }

func (f *Flexibility) UnmarshalJSON(data []byte) error {
	name, err := unquoted(data)
	if err != nil {
		return err
	}
	parsed, ok := ParseFlexibility(name)
	if !ok {
		return fmt.Errorf("unknown flexibility %q", name)
	}
	*f = parsed
	return nil
}

func (ds DebtStrategy) MarshalYAML() (interface{}, error) { return ds.String(), nil }

func (ds *DebtStrategy) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	parsed, ok := ParseDebtStrategy(name)
	if !ok {
		return fmt.Errorf("unknown debt strategy %q", name)
	}
	*ds = parsed
	return nil
}

func (ds DebtStrategy) MarshalJSON() ([]byte, error) { return quoted(ds.String()), nil }

func (ds *DebtStrategy) UnmarshalJSON(data []byte) error {
	name, err := unquoted(data)
	if err != nil {
		return err
	}
	parsed, ok := ParseDebtStrategy(name)
	if !ok {
		return fmt.Errorf("unknown debt strategy %q", name)
	}
	*ds = parsed
	return nil
}

func (gt GoalType) MarshalYAML() (interface{}, error) { return gt.String(), nil }

func (gt *GoalType) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	parsed, ok := ParseGoalType(name)
	if !ok {
		return fmt.Errorf("unknown goal type %q", name)
	}
	*gt = parsed
	return nil
}

func (gt GoalType) MarshalJSON() ([]byte, error) { return quoted(gt.String()), nil }

func (gt *GoalType) UnmarshalJSON(data []byte) error {
	name, err := unquoted(data)
	if err != nil {
		return err
	}
	parsed, ok := ParseGoalType(name)
	if !ok {
		return fmt.Errorf("unknown goal type %q", name)
	}
	*gt = parsed
	return nil
}

func (s Sex) MarshalYAML() (interface{}, error) { return s.String(), nil }

func (s *Sex) UnmarshalYAML(value *yaml.Node) error {
	var name string
	if err := value.Decode(&name); err != nil {
		return err
	}
	parsed, err := ParseSex(name)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

func (s Sex) MarshalJSON() ([]byte, error) { return quoted(s.String()), nil }

func (s *Sex) UnmarshalJSON(data []byte) error {
	name, err := unquoted(data)
	if err != nil {
		return err
	}
	parsed, err := ParseSex(name)
	if err != nil {
		return err
	}
	*s = parsed
	return nil
}

func quoted(name string) []byte {
	return []byte(`"` + name + `"`)
}

func unquoted(data []byte) (string, error) {
	if len(data) < 2 || data[0] != '"' || data[len(data)-1] != '"' {
		return "", fmt.Errorf("expected quoted string, got %s", data)
	}
	return string(data[1 : len(data)-1]), nil
}
