package types

type SignupRequest struct {
	Name          string    `json:"name" validate:"required"`
	Password      string    `json:"password" validate:"required"`
	Location      string    `json:"location"`
	SkillsOffered []string  `json:"skillsOffered"`
	SkillsWanted  []string  `json:"skillsWanted"`
	Availability  []string  `json:"availability"`
	IsPublic      *FlexBool `json:"isPublic" swaggertype:"boolean"`
}

type LoginRequest struct {
	Name     string `json:"name" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type CreateSwapRequest struct {
	SenderID     string `json:"senderId" validate:"required"`
	SenderName   string `json:"senderName" validate:"required"`
	ReceiverID   string `json:"receiverId" validate:"required"`
	ReceiverName string `json:"receiverName" validate:"required"`
	SkillOffered string `json:"skillOffered" validate:"required"`
	SkillWanted  string `json:"skillWanted" validate:"required"`
}

type UpdateSwapStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=accepted rejected completed" enums:"accepted,rejected,completed"`
}

type SubmitFeedbackRequest struct {
	SwapRequestID string `json:"swapRequestId" validate:"required"`
	GiverID       string `json:"giverId" validate:"required"`
	ReceiverID    string `json:"receiverId" validate:"required"`
	Rating        int    `json:"rating" validate:"required"`
	Comment       string `json:"comment"`
}

type BanRequest struct {
	IsBanned *FlexBool `json:"isBanned" validate:"required" swaggertype:"integer" enums:"0,1"`
}

// PlatformMessageRequest requires the key; an empty message clears the announcement.
type PlatformMessageRequest struct {
	Message *string `json:"message" validate:"required"`
}
