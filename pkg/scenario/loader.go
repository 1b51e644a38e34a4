package scenario

import (
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"
)

// Format selects the document syntax for Parse.
type Format string

const (
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// document represents the structure of a scenario file.
type document struct {
	Steps []any `yaml:"steps" json:"steps"`
}

// Load reads a scenario file (YAML or JSON, chosen by extension) and returns its steps.
func Load(path string) ([]Step, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read scenario: %w", err)
	}

	format := FormatYAML
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		format = FormatJSON
	}

	steps, err := Parse(data, format)
	if err != nil {
		return nil, fmt.Errorf("failed to load %s: %w", path, err)
	}
	return steps, nil
}

// Parse decodes a scenario document.
func Parse(data []byte, format Format) ([]Step, error) {
	var doc document

	if format == FormatJSON {
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse scenario json: %w", err)
		}
	} else {
		// Default to YAML
		if err := yaml.Unmarshal(data, &doc); err != nil {
			return nil, fmt.Errorf("failed to parse scenario yaml: %w", err)
		}
	}

	if len(doc.Steps) == 0 {
		return nil, fmt.Errorf("%w: scenario has no steps", ErrInvalidStep)
	}

	steps := make([]Step, 0, len(doc.Steps))
	for i, raw := range doc.Steps {
		step, err := decodeStep(raw)
		if err != nil {
			return nil, fmt.Errorf("step %d: %w", i+1, err)
		}
		steps = append(steps, step)
	}
	return steps, nil
}

// ParseLine decodes a single "op [value]" command such as "append 4".
func ParseLine(line string) (Step, error) {
	fields := strings.Fields(line)
	switch len(fields) {
	case 0:
		return Step{}, fmt.Errorf("%w: empty command", ErrInvalidStep)
	case 1, 2:
	default:
		return Step{}, fmt.Errorf("%w: too many arguments in %q", ErrInvalidStep, line)
	}

	step := Step{Op: Op(strings.ToLower(fields[0]))}
	if len(fields) == 2 {
		value, err := strconv.Atoi(fields[1])
		if err != nil {
			return Step{}, fmt.Errorf("%w: %q is not an integer", ErrInvalidStep, fields[1])
		}
		step.Value = value
	}
	return validate(step, len(fields) == 2)
}

func decodeStep(raw any) (Step, error) {
	switch v := raw.(type) {
	case string:
		// Bare op name, e.g. "- print"
		return validate(Step{Op: Op(v)}, false)
	case map[string]any:
		return decodeFields(normalize(v))
	}
	return Step{}, fmt.Errorf("%w: unsupported step type %T", ErrInvalidStep, raw)
}

// normalize turns the short form {"append": 2} into {"op": "append", "value": 2}.
func normalize(fields map[string]any) map[string]any {
	if _, ok := fields["op"]; ok || len(fields) != 1 {
		return fields
	}
	out := make(map[string]any, 2)
	for op, value := range fields {
		out["op"] = op
		if value != nil {
			out["value"] = value
		}
	}
	return out
}

func decodeFields(fields map[string]any) (Step, error) {
	if _, ok := fields["op"]; !ok {
		return Step{}, fmt.Errorf("%w: missing op", ErrInvalidStep)
	}

	value, hasValue := fields["value"]
	if err := checkRange(value); err != nil {
		return Step{}, err
	}

	var step Step
	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:      &step,
		ErrorUnused: true,
	})
	if err != nil {
		return Step{}, err
	}
	if err := decoder.Decode(fields); err != nil {
		var mErr *mapstructure.Error
		if errors.As(err, &mErr) {
			return Step{}, fmt.Errorf("%w: %s", ErrInvalidStep, strings.Join(mErr.Errors, "; "))
		}
		return Step{}, fmt.Errorf("%w: %v", ErrInvalidStep, err)
	}

	return validate(step, hasValue)
}

// checkRange rejects numbers that would not survive conversion to int.
// yaml.v3 yields uint64 or float64 for integers past int64, JSON always yields float64.
func checkRange(value any) error {
	switch v := value.(type) {
	case float64:
		if v != math.Trunc(v) {
			return fmt.Errorf("%w: value %v is not an integer", ErrInvalidStep, v)
		}
		if v < math.MinInt || v >= math.MaxInt {
			return fmt.Errorf("%w: value %v is out of range", ErrInvalidStep, v)
		}
	case uint64:
		if v > math.MaxInt {
			return fmt.Errorf("%w: value %d is out of range", ErrInvalidStep, v)
		}
	}
	return nil
}

func validate(step Step, hasValue bool) (Step, error) {
	if !step.Op.Valid() {
		return Step{}, fmt.Errorf("%w: %q", ErrUnknownOp, step.Op)
	}
	if step.Op.NeedsValue() && !hasValue {
		return Step{}, fmt.Errorf("%w: %s needs a value", ErrInvalidStep, step.Op)
	}
	if !step.Op.NeedsValue() && hasValue {
		return Step{}, fmt.Errorf("%w: %s takes no value", ErrInvalidStep, step.Op)
	}
	return step, nil
}
