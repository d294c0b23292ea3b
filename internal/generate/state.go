package generate

// State is a step of a generation run. States run in declaration order.
type State int

const (
	CollectFolder State = iota
	ValidateFolder
	CollectPageDetails
	Sanitize
	Render
	Write
	InspectRouter
	Report
	done
)

var stateNames = [...]string{
	CollectFolder:      "CollectFolder",
	ValidateFolder:     "ValidateFolder",
	CollectPageDetails: "CollectPageDetails",
	Sanitize:           "Sanitize",
	Render:             "Render",
	Write:              "Write",
	InspectRouter:      "InspectRouter",
	Report:             "Report",
	done:               "Done",
}

// String returns the state name.
func (s State) String() string {
	if s < 0 || int(s) >= len(stateNames) {
		return "Unknown"
	}
	return stateNames[s]
}

// guarded reports whether failures in s are reported as generation errors.
func (s State) guarded() bool {
	return s >= CollectPageDetails && s <= Write
}
