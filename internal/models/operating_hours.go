package models

import "fmt"

// OperatingHours is the inclusive hour range a restaurant is open, e.g. 10..22.
type OperatingHours struct {
	Open  int `json:"open"`
	Close int `json:"close"`
}

// DefaultOperatingHours matches the dashboard's 10 AM to 10 PM charts.
var DefaultOperatingHours = OperatingHours{Open: 10, Close: 22}

func NewOperatingHours(open, close int) (OperatingHours, error) {
	h := OperatingHours{Open: open, Close: close}
	if open < 0 || close > 23 || open > close {
		return OperatingHours{}, fmt.Errorf("invalid operating hours %d..%d: must satisfy 0 <= open <= close <= 23", open, close)
	}
	return h, nil
}

// Contains reports whether hour falls inside the window.
func (h OperatingHours) Contains(hour int) bool {
	return hour >= h.Open && hour <= h.Close
}

// Hours lists every hour of the window in ascending order.
func (h OperatingHours) Hours() []int {
	hours := make([]int, 0, h.Close-h.Open+1)
	for hour := h.Open; hour <= h.Close; hour++ {
		hours = append(hours, hour)
	}
	return hours
}
