package progress

import "time"

// DateLayout is the calendar-date format stored in LastPlayed.
const DateLayout = "2006-01-02"

// UpdateStreak advances the daily streak for a session starting at now.
// Playing again on the same day changes nothing, playing the next day
// extends the streak, and any longer gap (or no previous play) restarts
// it at 1. LastPlayed is set to today in every case.
func (d *Document) UpdateStreak(now time.Time) {
	today := now.Format(DateLayout)
	if d.LastPlayed == today {
		return
	}

	yesterday := now.AddDate(0, 0, -1).Format(DateLayout)
	if d.LastPlayed == yesterday {
		d.Streak++
	} else {
		d.Streak = 1
	}
	d.LastPlayed = today
}
