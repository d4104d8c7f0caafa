package enums

import "fmt"

// Condition describes the physical state of an inventory line.
type Condition string

const (
	ConditionNew     Condition = "NEW"
	ConditionOpenBox Condition = "OPEN_BOX"
	ConditionUsed    Condition = "USED"
)

var validConditions = []Condition{
	ConditionNew,
	ConditionOpenBox,
	ConditionUsed,
}

// IsValid reports whether the value matches the canonical condition enum.
func (c Condition) IsValid() bool {
	for _, candidate := range validConditions {
		if candidate == c {
			return true
		}
	}
	return false
}

func (c Condition) String() string {
	return string(c)
}

// ParseCondition converts the raw string to Condition.
func ParseCondition(value string) (Condition, error) {
	for _, candidate := range validConditions {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid condition %q", value)
}
