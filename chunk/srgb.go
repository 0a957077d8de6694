package chunk

import "github.com/pkg/errors"

// RenderingIntent enumerates the four sRGB rendering intents.
type RenderingIntent uint8

const (
	Perceptual          RenderingIntent = 0
	RelativeColorimetric RenderingIntent = 1
	Saturation          RenderingIntent = 2
	AbsoluteColorimetric RenderingIntent = 3
)

var renderingIntentNames = map[RenderingIntent]string{
	Perceptual:           "Perceptual",
	RelativeColorimetric: "Relative colorimetric",
	Saturation:           "Saturation",
	AbsoluteColorimetric: "Absolute colorimetric",
}

// String implements fmt.Stringer.
func (r RenderingIntent) String() string {
	if s, ok := renderingIntentNames[r]; ok {
		return s
	}
	return "unknown"
}

// DecodeSRGB decodes an sRGB payload's single rendering-intent byte.
func DecodeSRGB(payload []byte) (RenderingIntent, error) {
	if len(payload) < 1 {
		return 0, errors.New("srgb: empty payload")
	}
	v := RenderingIntent(payload[0])
	if _, ok := renderingIntentNames[v]; !ok {
		return v, errors.Errorf("srgb: rendering intent %d out of range", payload[0])
	}
	return v, nil
}

func decodeSRGB(payload []byte) (Attributes, error) {
	intent, err := DecodeSRGB(payload)
	return Attributes{"rendering_intent": intent.String(), "rendering_intent_value": uint8(intent)}, err
}
