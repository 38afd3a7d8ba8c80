package dto

// SampleRequest is one observation in a prediction request
type SampleRequest struct {
	PetalLength float64 `json:"petal_length"`
	PetalWidth  float64 `json:"petal_width"`
}

// PredictRequest is the payload for POST /api/models/predict
type PredictRequest struct {
	JobID   string          `json:"jobId"`
	Samples []SampleRequest `json:"samples" binding:"required"`
}

// PredictResponse is the outcome of a billed prediction call
type PredictResponse struct {
	JobID         string   `json:"jobId"`
	Predictions   []string `json:"predictions"`
	Cost          string   `json:"cost"`
	ResultBalance string   `json:"resultBalance,omitempty"`
	Replayed      bool     `json:"replayed,omitempty"`
}

// EnqueueResponse acknowledges an asynchronously submitted job
type EnqueueResponse struct {
	JobID  string `json:"jobId"`
	Status string `json:"status"`
}

// PredictionHistoryItem is one stored prediction in API form
type PredictionHistoryItem struct {
	JobID       string   `json:"jobId"`
	Predictions []string `json:"predictions"`
	Cost        string   `json:"cost"`
	CreatedAt   string   `json:"createdAt"`
}

// PredictionListResponse is the response for the prediction history endpoint
type PredictionListResponse struct {
	UserID      uint64                  `json:"userId"`
	Predictions []PredictionHistoryItem `json:"predictions"`
}

// ModelInfoResponse describes an available model
type ModelInfoResponse struct {
	Name   string   `json:"name"`
	Cost   string   `json:"cost"`
	Labels []string `json:"labels"`
}
