package types

// Attribute is an observability tag on a Response; metadata only, never
// control flow.
type Attribute struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

// Response is the envelope a state-changing call hands back to the host:
// the outbound messages to dispatch plus attribute tags for indexing.
type Response struct {
	Messages   []Msg       `json:"messages"`
	Attributes []Attribute `json:"attributes"`
}

func NewResponse() *Response {
	return &Response{}
}

func (r *Response) AddMessage(msg Msg) *Response {
	r.Messages = append(r.Messages, msg)
	return r
}

func (r *Response) AddAttribute(key, value string) *Response {
	r.Attributes = append(r.Attributes, Attribute{Key: key, Value: value})
	return r
}
