package models

type AddCartItemRequest struct {
	OptionID int64 `json:"option_id" validate:"required,gt=0"`
}

// Quantity is not bounded below: the engine reports values
// under 1 as rejected and the handler turns that into a validation error.
type SetQuantityRequest struct {
	OptionID int64 `json:"option_id" validate:"required,gt=0"`
	Quantity int   `json:"quantity"`
}

type UpdateModifiersRequest struct {
	Message      *string `json:"message,omitempty" validate:"omitempty,max=500"`
	Rush         *bool   `json:"rush,omitempty"`
	ExtraService *bool   `json:"extra_service,omitempty"`
}
