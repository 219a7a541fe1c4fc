package domain

// UserRole determines access level.
type UserRole string

const (
	UserRoleUser  UserRole = "user"
	UserRoleAdmin UserRole = "admin"
)

func (r UserRole) String() string { return string(r) }

func (r UserRole) IsValid() bool {
	switch r {
	case UserRoleUser, UserRoleAdmin:
		return true
	}
	return false
}

func (r UserRole) IsAdmin() bool {
	return r == UserRoleAdmin
}

// Difficulty is the recipe difficulty level.
type Difficulty string

const (
	DifficultyEasy   Difficulty = "Easy"
	DifficultyMedium Difficulty = "Medium"
	DifficultyHard   Difficulty = "Hard"
)

// DefaultDifficulty is applied when a recipe is created without one.
const DefaultDifficulty = DifficultyMedium

func (d Difficulty) String() string { return string(d) }

func (d Difficulty) IsValid() bool {
	switch d {
	case DifficultyEasy, DifficultyMedium, DifficultyHard:
		return true
	}
	return false
}

// ActivityAction is the recipe lifecycle event shown in the activity feed.
type ActivityAction string

const (
	ActivityCreated ActivityAction = "created"
	ActivityUpdated ActivityAction = "updated"
	ActivityDeleted ActivityAction = "deleted"
)

func (a ActivityAction) String() string { return string(a) }

func (a ActivityAction) IsValid() bool {
	switch a {
	case ActivityCreated, ActivityUpdated, ActivityDeleted:
		return true
	}
	return false
}

// TargetKind identifies the kind of entity an operation or audit record
// refers to.
type TargetKind string

const (
	TargetUser     TargetKind = "user"
	TargetRecipe   TargetKind = "recipe"
	TargetCategory TargetKind = "category"
)

func (k TargetKind) String() string { return string(k) }

func (k TargetKind) IsValid() bool {
	switch k {
	case TargetUser, TargetRecipe, TargetCategory:
		return true
	}
	return false
}

// Operation is a lifecycle transition checked by the authorization gate.
type Operation string

const (
	OpUpdate     Operation = "update"
	OpSoftDelete Operation = "soft_delete"
	OpRestore    Operation = "restore"
	OpHardDelete Operation = "hard_delete"
	OpActivate   Operation = "activate"
	OpDeactivate Operation = "deactivate"
	OpSetRole    Operation = "set_role"
)

func (o Operation) String() string { return string(o) }

func (o Operation) IsValid() bool {
	switch o {
	case OpUpdate, OpSoftDelete, OpRestore, OpHardDelete, OpActivate, OpDeactivate, OpSetRole:
		return true
	}
	return false
}

// IsAccountAction reports whether o is an administrative action on a user
// account, which is subject to self and admin protection.
func (o Operation) IsAccountAction() bool {
	switch o {
	case OpSoftDelete, OpRestore, OpHardDelete, OpActivate, OpDeactivate, OpSetRole:
		return true
	}
	return false
}

// AuditAction is the code stored with every admin audit record.
type AuditAction string

const (
	AuditUserActivated     AuditAction = "USER_ACTIVATED"
	AuditUserDeactivated   AuditAction = "USER_DEACTIVATED"
	AuditUserSoftDeleted   AuditAction = "USER_SOFT_DELETED"
	AuditUserRestored      AuditAction = "USER_RESTORED"
	AuditUserHardDeleted   AuditAction = "USER_HARD_DELETED"
	AuditUserRoleChanged   AuditAction = "USER_ROLE_CHANGED"
	AuditRecipeSoftDeleted AuditAction = "RECIPE_SOFT_DELETED"
	AuditRecipeRestored    AuditAction = "RECIPE_RESTORED"
	AuditRecipeHardDeleted AuditAction = "RECIPE_HARD_DELETED"
	AuditCategoryCreated   AuditAction = "CATEGORY_CREATED"
	AuditCategoryUpdated   AuditAction = "CATEGORY_UPDATED"
	AuditCategoryDeleted   AuditAction = "CATEGORY_DELETED"
)

func (a AuditAction) String() string { return string(a) }

// RecordStatus filters listings by soft-delete state.
type RecordStatus string

const (
	RecordStatusAll     RecordStatus = "all"
	RecordStatusActive  RecordStatus = "active"
	RecordStatusDeleted RecordStatus = "deleted"
)

func (s RecordStatus) IsValid() bool {
	switch s {
	case RecordStatusAll, RecordStatusActive, RecordStatusDeleted:
		return true
	}
	return false
}

// UserStatus filters the admin user listing.
type UserStatus string

const (
	UserStatusAll      UserStatus = "all"
	UserStatusActive   UserStatus = "active"
	UserStatusInactive UserStatus = "inactive"
	UserStatusDeleted  UserStatus = "deleted"
)

func (s UserStatus) IsValid() bool {
	switch s {
	case UserStatusAll, UserStatusActive, UserStatusInactive, UserStatusDeleted:
		return true
	}
	return false
}
