package dto

type GiftRequest struct {
	Name           string `json:"name" validate:"required,min=2,max=200"`
	Description    string `json:"description,omitempty" validate:"max=500"`
	Category       string `json:"category,omitempty" validate:"omitempty,oneof=kitchen home bedroom bathroom feeding clothing nursery bath toys travel experience other"`
	Priority       string `json:"priority,omitempty" validate:"omitempty,oneof=high medium low"`
	EstimatedPrice string `json:"estimatedPrice,omitempty" validate:"max=50"`
	Notes          string `json:"notes,omitempty" validate:"max=200"`
	Order          int    `json:"order" validate:"min=0"`
	IsReceived     bool   `json:"isReceived"`
	ReceivedFrom   string `json:"receivedFrom,omitempty" validate:"max=100"`
}

type MarkReceivedRequest struct {
	ReceivedFrom string `json:"receivedFrom,omitempty" validate:"max=100"`
	Notes        string `json:"notes,omitempty" validate:"max=200"`
}

type ListGiftsQuery struct {
	Category string `query:"category" validate:"omitempty,oneof=all kitchen home bedroom bathroom feeding clothing nursery bath toys travel experience other"`
	Received string `query:"received" validate:"omitempty,oneof=true false"`
}
