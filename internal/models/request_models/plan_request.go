package request_models

type PlanTripRequest struct {
	Mood string `json:"mood" form:"mood"`
}
