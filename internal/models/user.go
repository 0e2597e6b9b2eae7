package models

// User is the single session identity. There is no account registry and no
// multi-account switching; whoever is logged in owns all local data.
type User struct {
	ID          string `json:"id"`
	Email       string `json:"email"`
	Name        string `json:"name"`
	FitnessGoal string `json:"fitness_goal,omitempty"`
	Avatar      string `json:"avatar,omitempty"`
}

// UserPatch carries partial updates for the user profile. Nil fields retain
// the prior value.
type UserPatch struct {
	Email       *string `json:"email,omitempty"`
	Name        *string `json:"name,omitempty"`
	FitnessGoal *string `json:"fitness_goal,omitempty"`
	Avatar      *string `json:"avatar,omitempty"`
}

// Apply merges the patch into u.
func (p UserPatch) Apply(u *User) {
	if p.Email != nil {
		u.Email = *p.Email
	}
	if p.Name != nil {
		u.Name = *p.Name
	}
	if p.FitnessGoal != nil {
		u.FitnessGoal = *p.FitnessGoal
	}
	if p.Avatar != nil {
		u.Avatar = *p.Avatar
	}
}
