package collapse

import (
	"errors"
	"fmt"
	"math"
	"regexp"

	"github.com/mitchellh/mapstructure"
)

var (
	ErrInvalidBaseHeight = errors.New("collapse: baseHeight must be a finite, non-negative number")
	ErrInvalidTag        = errors.New("collapse: invalid element tag")
)

var tagPattern = regexp.MustCompile(`^[a-z][a-z0-9]*(-[a-z0-9]+)*$`)

// Props are the attributes a host passes to the component, e.g. decoded from
// a template or a JSON payload.
type Props struct {
	// When controls the collapse.
	When bool `mapstructure:"when"`

	// BaseHeight is the collapsed height in px.
	BaseHeight float64 `mapstructure:"baseHeight"`

	// As is the element tag to render instead of "div".
	As string `mapstructure:"as"`

	// Attrs holds every other attribute, to be forwarded to the element.
	Attrs map[string]any `mapstructure:",remain"`
}

// DecodeProps decodes loosely typed props. Numbers and booleans may be given
// as strings.
func DecodeProps(raw map[string]any) (Props, error) {
	props := Props{As: "div"}

	decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &props,
	})
	if err != nil {
		return Props{}, fmt.Errorf("collapse: creating props decoder: %w", err)
	}

	if err := decoder.Decode(raw); err != nil {
		return Props{}, fmt.Errorf("collapse: decoding props: %w", err)
	}

	if props.BaseHeight < 0 || math.IsNaN(props.BaseHeight) || math.IsInf(props.BaseHeight, 0) {
		return Props{}, fmt.Errorf("%w: got %v", ErrInvalidBaseHeight, props.BaseHeight)
	}

	if !tagPattern.MatchString(props.As) {
		return Props{}, fmt.Errorf("%w: %q", ErrInvalidTag, props.As)
	}

	return props, nil
}
