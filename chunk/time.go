package chunk

import (
	stdtime "time"

	"github.com/pkg/errors"

	"github.com/mjaworski/chunkpng/bitio"
)

// Timestamp is the decoded form of a tIME payload.
type Timestamp struct {
	Year                     uint16
	Month, Day               uint8
	Hour, Minute, Second     uint8
}

// DecodeTime decodes a tIME payload's u16 year and five u8 fields.
func DecodeTime(payload []byte) (Timestamp, error) {
	if len(payload) < 7 {
		return Timestamp{}, errors.Errorf("time: payload too short (%d bytes)", len(payload))
	}
	return Timestamp{
		Year:   bitio.Uint16(payload[0:2]),
		Month:  payload[2],
		Day:    payload[3],
		Hour:   payload[4],
		Minute: payload[5],
		Second: payload[6],
	}, nil
}

// ToTime converts the timestamp to a UTC time.Time. Second 60 (leap
// second) rolls into the following minute the way time.Date normalizes
// out-of-range fields.
func (t Timestamp) ToTime() stdtime.Time {
	return stdtime.Date(int(t.Year), stdtime.Month(t.Month), int(t.Day), int(t.Hour), int(t.Minute), int(t.Second), 0, stdtime.UTC)
}

func decodeTime(payload []byte) (Attributes, error) {
	t, err := DecodeTime(payload)
	if err != nil {
		return Attributes{}, err
	}
	return Attributes{
		"year": t.Year, "month": t.Month, "day": t.Day,
		"hour": t.Hour, "minute": t.Minute, "second": t.Second,
	}, nil
}
