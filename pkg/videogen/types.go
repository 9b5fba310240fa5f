package videogen

import "time"

// videoRequest is the request body for the predictLongRunning endpoint.
type videoRequest struct {
	Instances  []instance  `json:"instances"`
	Parameters *parameters `json:"parameters,omitempty"`
}

type instance struct {
	Prompt          string           `json:"prompt"`
	Image           *imagePayload    `json:"image,omitempty"`
	LastFrame       *imagePayload    `json:"lastFrame,omitempty"`
	ReferenceImages []referenceImage `json:"referenceImages,omitempty"`
}

// imagePayload carries image bytes as base64 on the wire.
type imagePayload struct {
	BytesBase64Encoded string `json:"bytesBase64Encoded"`
	MIMEType           string `json:"mimeType"`
}

type referenceImage struct {
	Image         imagePayload `json:"image"`
	ReferenceType string       `json:"referenceType"`
}

type parameters struct {
	DurationSeconds int `json:"durationSeconds,omitempty"`
}

// operation is a long-running video generation job.
type operation struct {
	Name     string             `json:"name"`
	Done     bool               `json:"done"`
	Error    *operationError    `json:"error,omitempty"`
	Response *operationResponse `json:"response,omitempty"`
}

type operationError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type operationResponse struct {
	GenerateVideoResponse *generateVideoResponse `json:"generateVideoResponse,omitempty"`
}

type generateVideoResponse struct {
	GeneratedSamples []generatedSample `json:"generatedSamples"`
}

type generatedSample struct {
	Video videoFile `json:"video"`
}

type videoFile struct {
	URI                string `json:"uri,omitempty"`
	BytesBase64Encoded string `json:"bytesBase64Encoded,omitempty"`
}

// Result is one generated video with its job metadata.
type Result struct {
	VideoData      []byte
	OperationName  string
	Prompt         string
	Duration       int
	GenerationTime time.Duration
}
