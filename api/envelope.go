package api

import (
	"encoding/json"
	"math"
	"strconv"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

const bodyExcerptLimit = 500

// Pagination is the paging block that list endpoints may return instead of
// (or in addition to) a flat count.
type Pagination struct {
	Total int `json:"total"`
	Page  int `json:"page"`
	Limit int `json:"limit"`
}

// Envelope is the JSON response shape shared by all CLMS endpoints.
type Envelope struct {
	Success    bool            `json:"success"`
	Message    string          `json:"message"`
	Count      int             `json:"count"`
	Data       json.RawMessage `json:"data"`
	Pagination *Pagination     `json:"pagination"`
}

// Response is the outcome of one CLMS request. Body always holds the raw
// response bytes; Envelope is best-effort decoded from them, so a non-JSON
// error page simply leaves it zero-valued.
type Response struct {
	Status   int
	Body     []byte
	Envelope Envelope
}

// Data returns the envelope's data payload as a dynamically typed value.
// Missing or undecodable data yields a null value, never a panic.
func (r *Response) Data() ldvalue.Value {
	if len(r.Envelope.Data) == 0 {
		return ldvalue.Null()
	}
	return ldvalue.Parse(r.Envelope.Data)
}

// DataField returns one named field of the data object.
func (r *Response) DataField(name string) ldvalue.Value {
	return r.Data().GetByKey(name)
}

// IDValue returns data.id exactly as the server sent it. CLMS is not
// consistent about whether identifiers are numbers or strings, so fixtures
// keep the raw value for request bodies and use ID() for URL paths.
func (r *Response) IDValue() ldvalue.Value {
	return r.DataField("id")
}

// ID returns data.id rendered as a path segment, or "" if absent.
func (r *Response) ID() string {
	return IDString(r.IDValue())
}

// IDString renders an identifier value as a string for use in a URL path.
func IDString(v ldvalue.Value) string {
	switch v.Type() {
	case ldvalue.StringType:
		return v.StringValue()
	case ldvalue.NumberType:
		f := v.Float64Value()
		if f == math.Trunc(f) {
			return strconv.FormatInt(int64(f), 10)
		}
		return strconv.FormatFloat(f, 'f', -1, 64)
	default:
		return ""
	}
}

// BodyExcerpt returns the response body truncated to a size that is safe to
// embed in a failure message.
func (r *Response) BodyExcerpt() string {
	if len(r.Body) <= bodyExcerptLimit {
		return string(r.Body)
	}
	return string(r.Body[:bodyExcerptLimit]) + "...(truncated)"
}
