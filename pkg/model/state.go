package model

import "slices"

// WithProfile returns a copy of s whose profile is replaced wholesale by p
func (s HealthState) WithProfile(p UserProfile) HealthState {
	next := s.Clone()
	next.Profile = p
	return next
}

// WithLog returns a copy of s with l appended to the end of the log sequence
func (s HealthState) WithLog(l DailyLog) HealthState {
	next := s.Clone()
	next.DailyLogs = append(next.DailyLogs, cloneLog(l))
	return next
}

// WithMessage returns a copy of s with m appended to the end of the message sequence
func (s HealthState) WithMessage(m ChatMessage) HealthState {
	next := s.Clone()
	next.Messages = append(next.Messages, m)
	return next
}

// WithToggledDisplayMode returns a copy of s with the light/dark flag flipped
func (s HealthState) WithToggledDisplayMode() HealthState {
	next := s.Clone()
	next.DisplayMode = s.DisplayMode.Toggle()
	return next
}

// Clone returns a deep copy that shares no mutable memory with s
func (s HealthState) Clone() HealthState {
	logs := make([]DailyLog, len(s.DailyLogs), len(s.DailyLogs)+1)
	for i, l := range s.DailyLogs {
		logs[i] = cloneLog(l)
	}
	msgs := make([]ChatMessage, len(s.Messages), len(s.Messages)+1)
	copy(msgs, s.Messages)
	return HealthState{
		Profile:     s.Profile,
		DailyLogs:   logs,
		Messages:    msgs,
		DisplayMode: s.DisplayMode,
	}
}

// LatestLog returns the most recently appended log, if any
func (s HealthState) LatestLog() (DailyLog, bool) {
	if len(s.DailyLogs) == 0 {
		return DailyLog{}, false
	}
	return s.DailyLogs[len(s.DailyLogs)-1], true
}

// Toggle returns the opposite mode. Anything other than dark toggles to dark.
func (m DisplayMode) Toggle() DisplayMode {
	if m == DisplayModeDark {
		return DisplayModeLight
	}
	return DisplayModeDark
}

// LastLogs returns the final n logs in insertion order, or all of them when fewer exist
func LastLogs(logs []DailyLog, n int) []DailyLog {
	if n <= 0 || len(logs) == 0 {
		return []DailyLog{}
	}
	if len(logs) <= n {
		return slices.Clone(logs)
	}
	return slices.Clone(logs[len(logs)-n:])
}

func cloneLog(l DailyLog) DailyLog {
	if l.Symptoms != nil {
		s := *l.Symptoms
		l.Symptoms = &s
	}
	return l
}
