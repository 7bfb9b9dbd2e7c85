package dto

// Reference-data result statuses. "ok" and "empty" come from a live fetch;
// "cached" means the upstream directory failed and the last persisted copy
// is being served.
const (
	ReferenceStatusOK     = "ok"
	ReferenceStatusEmpty  = "empty"
	ReferenceStatusCached = "cached"
)

type ReferenceOptionResponse struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

type ReferenceDataResponse struct {
	Kind    string                    `json:"kind"`
	Status  string                    `json:"status"`
	Options []ReferenceOptionResponse `json:"options"`
}
