package helpers

import (
	"time"
)

const DateLayout = "2006-01-02"

// WeekRange возвращает первый и последний день недели, начинающейся с startDate (YYYY-MM-DD)
func WeekRange(startDate string) (from, to string, err error) {
	start, err := time.Parse(DateLayout, startDate)
	if err != nil {
		return "", "", err
	}
	return start.Format(DateLayout), start.AddDate(0, 0, 6).Format(DateLayout), nil
}
