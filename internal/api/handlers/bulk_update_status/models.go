package bulk_update_status

// Массовые действия персонала над бронированиями
const (
	ActionConfirm = "confirm"
	ActionCancel  = "cancel"
)

// BulkStatusRequest HTTP request model
type BulkStatusRequest struct {
	BookingIDs []int64 `json:"bookingIds"`
	Action     string  `json:"action"` // "confirm" | "cancel"
}

// BulkStatusResponse HTTP response model
type BulkStatusResponse struct {
	Updated int64 `json:"updated"`
}
