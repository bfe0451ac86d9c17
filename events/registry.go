package events

var typeToName = [eventTypeCount]string{
	EventRollRequest:  "RollRequest",
	EventRollStarted:  "RollStarted",
	EventDieBounced:   "DieBounced",
	EventRollSettled:  "RollSettled",
	EventHistoryClear: "HistoryClear",
}

// String returns the registered name of the event type
func (t EventType) String() string {
	if t < 0 || t >= eventTypeCount {
		return "Unknown"
	}
	return typeToName[t]
}
