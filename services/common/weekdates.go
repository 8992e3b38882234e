package common

import "time"

// GameDateLayout is the YYYYMMDD format matchup game dates are stored in.
const GameDateLayout = "20060102"

// CurrentWeekDates maps the pick'em week's day labels to YYYYMMDD dates.
// The week is anchored on the most recent Thursday; game days run
// Thursday through Monday.
func CurrentWeekDates(now time.Time) map[string]string {
	daysSinceThursday := (int(now.Weekday()) - int(time.Thursday) + 7) % 7
	thursday := now.AddDate(0, 0, -daysSinceThursday)

	labels := []string{"thursday", "friday", "saturday", "sunday", "monday"}
	weekDates := make(map[string]string, len(labels))
	for i, label := range labels {
		weekDates[label] = thursday.AddDate(0, 0, i).Format(GameDateLayout)
	}
	return weekDates
}
