package domain

// DefaultWeeklyTarget is used when no weekly goal has been stored
const DefaultWeeklyTarget = 5

// Profile holds optional user details shown in the header
type Profile struct {
	Email string `json:"email" validate:"email"`
	Name  string `json:"name" validate:"maxLen:64"`
}

// IsEmpty reports whether no profile details were set
func (p Profile) IsEmpty() bool {
	return p.Name == "" && p.Email == ""
}

// WeeklyGoal is the number of focus sessions targeted per week
type WeeklyGoal struct {
	TargetSessions int
}

// NewWeeklyGoal validates a target; it must be positive
func NewWeeklyGoal(target int) (WeeklyGoal, error) {
	if target <= 0 {
		return WeeklyGoal{}, ErrInvalidGoal
	}
	return WeeklyGoal{TargetSessions: target}, nil
}

// DefaultWeeklyGoal returns the goal used when nothing is stored
func DefaultWeeklyGoal() WeeklyGoal {
	return WeeklyGoal{TargetSessions: DefaultWeeklyTarget}
}
