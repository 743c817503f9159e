package get_available_slots

import (
	"time"

	"github.com/tadbeer-it/TDB-FieldService/internal/domain"
	getAvailableSlots "github.com/tadbeer-it/TDB-FieldService/internal/usecase/get_available_slots"
)

// SlotResponse availability of one catalog slot
type SlotResponse struct {
	StartTime string `json:"startTime"` // "09:00 AM"
	Taken     bool   `json:"taken"`
}

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date        string         `json:"date"` // "2026-09-15"
	ClientID    int64          `json:"clientId"`
	DayBlocked  bool           `json:"dayBlocked"`
	FullyBooked bool           `json:"fullyBooked"`
	Slots       []SlotResponse `json:"slots"`
}

// ToUseCaseRequest builds the use case request, parsing the date
func ToUseCaseRequest(userID, clientID int64, dateStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getAvailableSlots.Request{
		UserID:   userID,
		ClientID: clientID,
		Date:     date,
	}, nil
}

// FromUseCaseResponse converts the use case response to the HTTP model
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]SlotResponse, 0, len(resp.Slots))
	for _, slot := range resp.Slots {
		slots = append(slots, SlotResponse{
			StartTime: slot.StartTime.String(),
			Taken:     slot.Taken,
		})
	}

	return &AvailableSlotsResponse{
		Date:        resp.Date.Format(domain.DateFormat),
		ClientID:    resp.ClientID,
		DayBlocked:  resp.DayBlocked,
		FullyBooked: resp.FullyBooked,
		Slots:       slots,
	}
}
