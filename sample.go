package main

import (
	"math/rand"
	"time"
)

const sampleSeed = 20240601

// sampleRows generates ten days of demo reports ending at asOf. The seed is
// fixed so repeated runs produce the same dataset, with two planted
// patterns: Mike Davis skips equipment maintenance every third calendar
// day, and Sarah Johnson stops submitting reports over the last three days.
func sampleRows(asOf time.Time) []RawRow {
	employees := []string{"John Smith", "Sarah Johnson", "Mike Davis", "Emily Brown", "David Wilson"}
	tasks := []string{
		"Daily Safety Check",
		"Equipment Maintenance",
		"Quality Control Review",
		"Inventory Count",
		"Team Meeting Attendance",
		"Report Submission",
		"Customer Follow-up",
	}

	rng := rand.New(rand.NewSource(sampleSeed))
	start := dateOnly(asOf).AddDate(0, 0, -9)

	var rows []RawRow
	line := 1
	for _, employee := range employees {
		for day := 0; day < 10; day++ {
			date := start.AddDate(0, 0, day)

			picked := append([]string{}, tasks...)
			rng.Shuffle(len(picked), func(i, j int) {
				picked[i], picked[j] = picked[j], picked[i]
			})
			picked = picked[:3+rng.Intn(2)]

			for _, task := range picked {
				status := "Done"
				if rng.Float64() < 0.15 {
					status = "Not Done"
				}
				if employee == "Mike Davis" && task == "Equipment Maintenance" && date.Day()%3 == 0 {
					status = "Not Done"
				}
				if employee == "Sarah Johnson" && task == "Report Submission" && day >= 7 {
					status = "Not Done"
				}
				rows = append(rows, RawRow{
					Employee: employee,
					Task:     task,
					Date:     date.Format("2006-01-02"),
					Status:   status,
					Line:     line,
				})
				line++
			}
		}
	}
	return rows
}
