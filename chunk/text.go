package chunk

import "bytes"

// TextEntry is the decoded form of a tEXt payload.
type TextEntry struct {
	Keyword string
	Text    string
}

// DecodeText splits a tEXt payload on its null separator into keyword and
// text. A payload missing the separator is treated as a keyword with an
// empty text string rather than rejected (see DESIGN.md's resolution of
// spec.md's open question on this).
func DecodeText(payload []byte) TextEntry {
	if i := bytes.IndexByte(payload, 0); i >= 0 {
		return TextEntry{Keyword: string(payload[:i]), Text: string(payload[i+1:])}
	}
	return TextEntry{Keyword: string(payload), Text: ""}
}

func decodeText(payload []byte) (Attributes, error) {
	e := DecodeText(payload)
	return Attributes{"keyword": e.Keyword, "text": e.Text}, nil
}
