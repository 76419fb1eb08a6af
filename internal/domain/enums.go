package domain

// ResourceKind identifies a kind of row the mutation protocol operates on.
type ResourceKind string

const (
	ResourceAccount      ResourceKind = "account"
	ResourceProfile      ResourceKind = "profile"
	ResourceSleepRecord  ResourceKind = "sleep_record"
	ResourceSportRecord  ResourceKind = "sport_record"
	ResourceMealRecord   ResourceKind = "meal_record"
	ResourceMealItem     ResourceKind = "meal_item"
	ResourceComment      ResourceKind = "comment"
	ResourceFriendEdge   ResourceKind = "friend_edge"
	ResourceFood         ResourceKind = "food"
	ResourceRefreshToken ResourceKind = "refresh_token"
)

func (k ResourceKind) String() string { return string(k) }

// ActivityKind is the tag of an activity reference used by comments.
type ActivityKind string

const (
	ActivitySleep ActivityKind = "sleep"
	ActivitySport ActivityKind = "sport"
	ActivityMeal  ActivityKind = "meal"
)

func (k ActivityKind) String() string { return string(k) }

func (k ActivityKind) IsValid() bool {
	switch k {
	case ActivitySleep, ActivitySport, ActivityMeal:
		return true
	}
	return false
}

// Resource returns the record kind an activity tag points at.
func (k ActivityKind) Resource() ResourceKind {
	switch k {
	case ActivitySleep:
		return ResourceSleepRecord
	case ActivitySport:
		return ResourceSportRecord
	case ActivityMeal:
		return ResourceMealRecord
	}
	return ""
}

// Gender is stored on the profile and selects the calorie factor.
type Gender string

const (
	GenderMale   Gender = "male"
	GenderFemale Gender = "female"
)

func (g Gender) String() string { return string(g) }

func (g Gender) IsValid() bool {
	return g == GenderMale || g == GenderFemale
}

// MealType is the slot of the day a meal record belongs to.
type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
)

func (m MealType) String() string { return string(m) }

func (m MealType) IsValid() bool {
	switch m {
	case MealBreakfast, MealLunch, MealDinner:
		return true
	}
	return false
}

// MealSource records how a meal record was entered.
type MealSource string

const (
	MealSourceManual MealSource = "manual"
	MealSourceAI     MealSource = "ai"
)

func (s MealSource) String() string { return string(s) }

func (s MealSource) IsValid() bool {
	return s == MealSourceManual || s == MealSourceAI
}

// EdgeStatus is the lifecycle state of a friend edge.
type EdgeStatus string

const (
	EdgePending  EdgeStatus = "pending"
	EdgeAccepted EdgeStatus = "accepted"
	EdgeRejected EdgeStatus = "rejected"
)

func (s EdgeStatus) String() string { return string(s) }

func (s EdgeStatus) IsValid() bool {
	switch s {
	case EdgePending, EdgeAccepted, EdgeRejected:
		return true
	}
	return false
}

// IsActive reports whether the edge counts toward the one-active-edge-per-pair rule.
func (s EdgeStatus) IsActive() bool {
	return s == EdgePending || s == EdgeAccepted
}

// EdgeAction is a transition requested on an existing edge.
type EdgeAction string

const (
	EdgeAccept EdgeAction = "accept"
	EdgeReject EdgeAction = "reject"
	EdgeCancel EdgeAction = "cancel"
	EdgeRemove EdgeAction = "remove"
)

func (a EdgeAction) String() string { return string(a) }

func (a EdgeAction) IsValid() bool {
	switch a {
	case EdgeAccept, EdgeReject, EdgeCancel, EdgeRemove:
		return true
	}
	return false
}
