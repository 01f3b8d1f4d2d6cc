package draft

import (
	"strconv"

	"github.com/AbhradeepRoy/Ayush/pkg/model"
)

// ProfileDraft is an uncommitted edit of the settings form. Empty fields
// keep the value of the profile the draft is committed onto.
type ProfileDraft struct {
	Name      Text `json:"name"`
	Age       Text `json:"age"`
	Gender    Text `json:"gender"`
	Height    Text `json:"height"`
	Weight    Text `json:"weight"`
	Lifestyle Text `json:"lifestyle"`
	Language  Text `json:"language"`
}

type profileFields struct {
	Name      string  `json:"name" validate:"required"`
	Age       int     `json:"age" validate:"gt=0,lte=150"`
	Gender    string  `json:"gender" validate:"required,gender"`
	Height    float64 `json:"height" validate:"gt=0"`
	Weight    float64 `json:"weight" validate:"gt=0"`
	Lifestyle string  `json:"lifestyle" validate:"required,lifestyle"`
	Language  string  `json:"language" validate:"required,language"`
}

// NewProfileDraft mirrors p into form text
func NewProfileDraft(p model.UserProfile) ProfileDraft {
	return ProfileDraft{
		Name:      Text(p.Name),
		Age:       Text(strconv.Itoa(p.Age)),
		Gender:    Text(p.Gender),
		Height:    formatFloat(p.Height),
		Weight:    formatFloat(p.Weight),
		Lifestyle: Text(p.Lifestyle),
		Language:  Text(p.Language),
	}
}

// Commit merges the draft onto base and validates the result. The medical
// history summary is always carried over from base.
func (d ProfileDraft) Commit(base model.UserProfile) (model.UserProfile, error) {
	var fe fieldErrors
	typed := profileFields{
		Name:      pick(d.Name, base.Name),
		Age:       base.Age,
		Gender:    pick(d.Gender, string(base.Gender)),
		Height:    base.Height,
		Weight:    base.Weight,
		Lifestyle: pick(d.Lifestyle, string(base.Lifestyle)),
		Language:  pick(d.Language, base.Language),
	}
	if d.Age.String() != "" {
		parseInt(&fe, "age", d.Age, &typed.Age)
	}
	if d.Height.String() != "" {
		parseFloat(&fe, "height", d.Height, &typed.Height)
	}
	if d.Weight.String() != "" {
		parseFloat(&fe, "weight", d.Weight, &typed.Weight)
	}
	check(typed, &fe)

	if err := fe.err(); err != nil {
		return model.UserProfile{}, err
	}

	return model.UserProfile{
		Name:                  typed.Name,
		Age:                   typed.Age,
		Gender:                model.Gender(typed.Gender),
		Height:                typed.Height,
		Weight:                typed.Weight,
		Lifestyle:             model.Lifestyle(typed.Lifestyle),
		Language:              typed.Language,
		MedicalHistorySummary: base.MedicalHistorySummary,
	}, nil
}

func pick(t Text, fallback string) string {
	if s := t.String(); s != "" {
		return s
	}
	return fallback
}
