package chunk

import "github.com/pkg/errors"

var stereoLayouts = map[uint8]string{
	0: "cross-fuse",
	1: "diverging-fuse",
}

// DecodeStereo decodes an sTER payload's single layout byte.
func DecodeStereo(payload []byte) (uint8, error) {
	if len(payload) < 1 {
		return 0, errors.New("stereo: empty payload")
	}
	layout := payload[0]
	if _, ok := stereoLayouts[layout]; !ok {
		return layout, errors.Errorf("stereo: layout %d out of range", layout)
	}
	return layout, nil
}

func decodeStereo(payload []byte) (Attributes, error) {
	layout, err := DecodeStereo(payload)
	if err != nil {
		return Attributes{}, err
	}
	return Attributes{"layout": layout, "layout_name": stereoLayouts[layout]}, nil
}
