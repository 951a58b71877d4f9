package planner

import (
	"fmt"
	"strings"

	"github.com/fernvaleriano/coachpilot/pkg/clock"
)

// buildPrompt renders the instruction contract for the weekly plan. The
// service is told to return a bare JSON array; ExtractPlan tolerates fenced
// or prefixed output anyway.
func buildPrompt(req PlanRequest) string {
	var b strings.Builder

	b.WriteString("You are an expert fitness coach creating a weekly workout intensity schedule.\n\n")
	b.WriteString("Context:\n")
	fmt.Fprintf(&b, "- Today is %s (day %d of the week, 0=Sunday)\n", clock.DayName(req.TodayDow), req.TodayDow)
	fmt.Fprintf(&b, "- Week starts on %s\n", req.WeekStart.Format("2006-01-02"))

	if req.AvgReadiness != nil {
		fmt.Fprintf(&b, "- Client's average readiness score (last 7 days): %d/100\n", *req.AvgReadiness)
	} else {
		b.WriteString("- Client's average readiness score (last 7 days): No data\n")
	}

	if req.TodayScore != nil {
		fmt.Fprintf(&b, "- Today's readiness: %d/100 (%s)\n", *req.TodayScore, req.TodayIntensity)
	} else {
		b.WriteString("- Today's readiness: Not assessed yet\n")
	}

	if len(req.ReadinessTrend) > 0 {
		points := make([]string, 0, len(req.ReadinessTrend))
		for _, p := range req.ReadinessTrend {
			points = append(points, fmt.Sprintf("%s: %d", p.Date.Format("2006-01-02"), p.Score))
		}
		fmt.Fprintf(&b, "- Recent readiness trend: %s\n", strings.Join(points, ", "))
	} else {
		b.WriteString("- Recent readiness trend: No data\n")
	}

	if len(req.RecentWorkouts) > 0 {
		entries := make([]string, 0, len(req.RecentWorkouts))
		for _, w := range req.RecentWorkouts {
			name := w.Name
			if name == "" {
				name = "Workout"
			}
			rating := "N/A"
			if w.Rating != nil {
				rating = fmt.Sprintf("%d", *w.Rating)
			}
			entries = append(entries, fmt.Sprintf("%s: %s (rating: %s)", w.Date.Format("2006-01-02"), name, rating))
		}
		fmt.Fprintf(&b, "- Recent workouts: %s\n", strings.Join(entries, ", "))
	} else {
		b.WriteString("- Recent workouts: No recent workouts\n")
	}

	program := req.ActiveProgram
	if program == "" {
		program = "None"
	}
	fmt.Fprintf(&b, "- Active program: %s\n", program)

	if req.PreferredPeakDay != nil {
		fmt.Fprintf(&b, "- Preferred peak performance day: %s\n", clock.DayName(*req.PreferredPeakDay))
	} else {
		b.WriteString("- Preferred peak performance day: Saturday (default)\n")
	}

	b.WriteString(`
Create a 7-day intensity schedule. For each day (0-6, Sunday-Saturday), assign:
- intensity: one of "rest", "deload", "easy", "moderate", "hard", "peak"
- focus: muscle group or workout type (e.g., "upper push", "lower", "full body", "cardio", "mobility")
- notes: brief coaching note

Rules:
1. Place the "peak" day on or near the preferred peak day
2. Never place "hard" or "peak" days back-to-back
3. Include at least 1-2 rest days
4. If readiness is below 50, reduce overall intensity
5. Adjust remaining days in the week based on today's readiness
6. For days already passed this week, mark them as "completed" in notes

Return ONLY valid JSON array, no markdown:
[{"day": 0, "intensity": "rest", "focus": "", "notes": "Recovery day"}, ...]`)

	return b.String()
}
