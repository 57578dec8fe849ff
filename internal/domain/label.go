package domain

// Label is a single concept detected in an uploaded image. Confidence is on
// the detection service's 0..1 scale.
type Label struct {
	Name       string  `json:"name"`
	Confidence float64 `json:"confidence"`
}

// Image carries the raw bytes of an upload for the duration of one pipeline
// run. Nothing outlives the request that produced it.
type Image struct {
	Data     []byte
	MIMEType string
	Name     string
}
