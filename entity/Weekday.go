package entity

// Weekday numbers follow the order form field names: 1=monday .. 5=friday.
const (
	Monday = 1
	Friday = 5
)

var weekdayNames = map[int]string{
	1: "monday",
	2: "tuesday",
	3: "wednesday",
	4: "thursday",
	5: "friday",
}

func WeekdayName(n int) string {
	return weekdayNames[n]
}

func WeekdayNames() []string {
	return []string{"monday", "tuesday", "wednesday", "thursday", "friday"}
}
