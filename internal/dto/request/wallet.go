package request

type AddMoneyRequest struct {
	Amount float64 `json:"amount" validate:"required,gt=0"`
}

type RedeemPointsRequest struct {
	Points int `json:"points" validate:"required,min=1"`
}

type ApplyReferralRequest struct {
	Code string `json:"code" validate:"required,min=4,max=16"`
}

type PayBookingRequest struct {
	BookingID string `json:"booking_id" validate:"required"`
}
