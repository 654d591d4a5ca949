package constants

// ContextKeyUserID is the key used for the authenticated user ID in both the
// session store and the gin context.
const ContextKeyUserID = "user_id"

const MinPasswordLength = 8

// Pagination
const (
	MinPageSize     = 1
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// DefaultDailyPostLimit is the number of tasks a poster may create per
// calendar date unless overridden by config.
const DefaultDailyPostLimit = 5

// Match scoring weights. With an 11-tag vocabulary the maximum score is
// 11*7 + 20 = 97, so a score never exceeds 100.
const (
	MatchSkillWeight = 7
	MatchCityBonus   = 20
)

// DefaultCompletionNotes is recorded when a volunteer completes a task
// without leaving notes.
const DefaultCompletionNotes = "Task completed"

// MaxAISuggestedSkills caps how many tags the AI suggester may return.
const MaxAISuggestedSkills = 5
