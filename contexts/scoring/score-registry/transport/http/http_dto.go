package http

type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type AttributeDTO struct {
	Key   string `json:"key"`
	Value string `json:"value"`
}

type InstantiateRequest struct{}

type InstantiateResponse struct {
	Status string `json:"status"`
	Data   struct {
		Owner          string `json:"owner"`
		InstanceID     string `json:"instance_id"`
		InstantiatedAt string `json:"instantiated_at"`
	} `json:"data"`
}

type UpdateScoreRequest struct {
	User  string `json:"user"`
	Score uint32 `json:"score"`
}

type UpdateScoreResponse struct {
	Status     string         `json:"status"`
	Attributes []AttributeDTO `json:"attributes"`
}

type OwnerResponse struct {
	Status string `json:"status"`
	Data   struct {
		Owner string `json:"owner"`
	} `json:"data"`
}

type ScoreResponse struct {
	Status string `json:"status"`
	Data   struct {
		User  string `json:"user"`
		Score uint32 `json:"score"`
	} `json:"data"`
}

type ScoreEntryDTO struct {
	User  string `json:"user"`
	Score uint32 `json:"score"`
}

type ListScoresResponse struct {
	Status string          `json:"status"`
	Data   []ScoreEntryDTO `json:"data"`
}

type InfoResponse struct {
	Status string `json:"status"`
	Data   struct {
		Name           string `json:"name"`
		Version        string `json:"version"`
		InstanceID     string `json:"instance_id"`
		InstantiatedAt string `json:"instantiated_at"`
	} `json:"data"`
}
