package service

import "encoding/json"

// jsonCodec carries the plain Go messages in this package over Connect.
// Connect's built-in JSON codec only handles protobuf messages.
type jsonCodec struct {
	name string
}

const (
	codecNameJSON        = "json"
	codecNameJSONCharset = "json; charset=utf-8"
)

func (c jsonCodec) Name() string { return c.name }

func (jsonCodec) Marshal(msg any) ([]byte, error) {
	return json.Marshal(msg)
}

func (jsonCodec) Unmarshal(data []byte, msg any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, msg)
}
