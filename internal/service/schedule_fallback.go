package service

import (
	"github.com/fernvaleriano/coachpilot/pkg/entity"
)

// focusOptions rotates the day focus per intensity so that repeated
// intensities within a week hit different muscle groups.
var focusOptions = map[entity.Intensity][]string{
	entity.IntensityHard:     {"upper push", "lower", "upper pull", "full body"},
	entity.IntensityModerate: {"upper body", "lower body", "full body", "cardio"},
	entity.IntensityEasy:     {"cardio", "mobility", "active recovery"},
	entity.IntensityDeload:   {"mobility", "light cardio"},
	entity.IntensityPeak:     {"lower (test day)", "upper (test day)", "full body (test day)"},
	entity.IntensityRest:     {""},
}

// fallbackTemplate picks the base week by readiness tier. A nil average
// (no readiness history at all) gets the conservative template.
func fallbackTemplate(avgReadiness *int) []entity.Intensity {
	switch {
	case avgReadiness != nil && *avgReadiness >= 75:
		return []entity.Intensity{
			entity.IntensityModerate, entity.IntensityHard, entity.IntensityEasy,
			entity.IntensityHard, entity.IntensityModerate, entity.IntensityPeak,
			entity.IntensityRest,
		}
	case avgReadiness != nil && *avgReadiness >= 55:
		return []entity.Intensity{
			entity.IntensityModerate, entity.IntensityModerate, entity.IntensityEasy,
			entity.IntensityModerate, entity.IntensityRest, entity.IntensityHard,
			entity.IntensityRest,
		}
	default:
		return []entity.Intensity{
			entity.IntensityEasy, entity.IntensityModerate, entity.IntensityRest,
			entity.IntensityEasy, entity.IntensityRest, entity.IntensityModerate,
			entity.IntensityRest,
		}
	}
}

// generateFallbackSchedule builds the deterministic week used whenever the
// planner is unavailable or returns unusable output. The base template is
// rotated so its peak (or last hard day when the template has no peak) lands
// on the preferred peak day, then today's slot is overwritten with today's
// actual recommendation.
func generateFallbackSchedule(avgReadiness *int, peakDay, todayDow int, todayIntensity entity.Intensity) []entity.DayPlan {
	template := fallbackTemplate(avgReadiness)

	currentPeakIdx := -1
	for i, v := range template {
		if v == entity.IntensityPeak {
			currentPeakIdx = i
			break
		}
	}
	if currentPeakIdx < 0 {
		for i := len(template) - 1; i >= 0; i-- {
			if template[i] == entity.IntensityHard {
				currentPeakIdx = i
				break
			}
		}
	}

	shift := peakDay - currentPeakIdx
	rotated := make([]entity.Intensity, 7)
	for i := 0; i < 7; i++ {
		rotated[i] = template[((i-shift)%7+7)%7]
	}

	if todayIntensity != "" {
		rotated[todayDow] = todayIntensity
	}

	schedule := make([]entity.DayPlan, 0, 7)
	for day := 0; day < 7; day++ {
		intensity := rotated[day]
		options := focusOptions[intensity]
		if len(options) == 0 {
			options = []string{""}
		}

		var notes string
		switch {
		case day < todayDow:
			notes = "Completed"
		case day == todayDow:
			notes = "Today"
		}

		schedule = append(schedule, entity.DayPlan{
			Day:       day,
			Intensity: intensity,
			Focus:     options[day%len(options)],
			Notes:     notes,
		})
	}
	return schedule
}
