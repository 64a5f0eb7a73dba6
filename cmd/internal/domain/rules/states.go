package rules

// IndianStates are the state codes selectable during onboarding.
var IndianStates = []string{
	"AP", "AR", "AS", "BR", "CT", "GA", "GJ", "HR", "HP", "JH",
	"KA", "KL", "MP", "MH", "MN", "ML", "MZ", "NL", "OR", "PB",
	"RJ", "SK", "TN", "TG", "TR", "UP", "UT", "WB", "DL",
}

var stateSet = func() map[string]bool {
	set := make(map[string]bool, len(IndianStates))
	for _, code := range IndianStates {
		set[code] = true
	}
	return set
}()

func IsValidState(code string) bool {
	return stateSet[code]
}
