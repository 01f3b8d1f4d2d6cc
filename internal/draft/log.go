package draft

import (
	"strconv"
	"time"

	"github.com/AbhradeepRoy/Ayush/pkg/model"
)

// LogDraft is an uncommitted daily log as typed into the tracker form
type LogDraft struct {
	Date     Text `json:"date"`
	Sleep    Text `json:"sleep"`
	Water    Text `json:"water"`
	Steps    Text `json:"steps"`
	Mood     Text `json:"mood"`
	Diet     Text `json:"diet"`
	Symptoms Text `json:"symptoms"`
}

type logFields struct {
	Date  string  `json:"date" validate:"required,datetime=2006-01-02"`
	Sleep float64 `json:"sleep" validate:"gte=0,lte=24"`
	Water float64 `json:"water" validate:"gte=0"`
	Steps int     `json:"steps" validate:"gte=0"`
	Mood  string  `json:"mood" validate:"required,mood"`
}

// NewLogDraft returns the tracker form defaults for the day of now
func NewLogDraft(now time.Time) LogDraft {
	return LogDraft{
		Date:  Text(now.Format(model.DateLayout)),
		Sleep: "8",
		Water: "2",
		Steps: "5000",
		Mood:  Text(model.MoodHappy),
	}
}

// Commit parses and validates the draft into a DailyLog
func (d LogDraft) Commit() (model.DailyLog, error) {
	var fe fieldErrors
	typed := logFields{
		Date: d.Date.String(),
		Mood: d.Mood.String(),
	}
	parseFloat(&fe, "sleep", d.Sleep, &typed.Sleep)
	parseFloat(&fe, "water", d.Water, &typed.Water)
	parseInt(&fe, "steps", d.Steps, &typed.Steps)
	check(typed, &fe)

	if err := fe.err(); err != nil {
		return model.DailyLog{}, err
	}

	log := model.DailyLog{
		Date:  typed.Date,
		Sleep: typed.Sleep,
		Water: typed.Water,
		Steps: typed.Steps,
		Mood:  model.Mood(typed.Mood),
		Diet:  d.Diet.String(),
	}
	if s := d.Symptoms.String(); s != "" {
		log.Symptoms = &s
	}
	return log, nil
}

// LogDraftFrom mirrors an existing log back into form text
func LogDraftFrom(l model.DailyLog) LogDraft {
	d := LogDraft{
		Date:  Text(l.Date),
		Sleep: formatFloat(l.Sleep),
		Water: formatFloat(l.Water),
		Steps: Text(strconv.Itoa(l.Steps)),
		Mood:  Text(l.Mood),
		Diet:  Text(l.Diet),
	}
	if l.Symptoms != nil {
		d.Symptoms = Text(*l.Symptoms)
	}
	return d
}
